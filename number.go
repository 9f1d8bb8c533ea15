package jsonschema

// validateNumber runs the number-typed leaf keywords: multipleOf, minimum,
// maximum, exclusiveMinimum, exclusiveMaximum. Bound comparisons
// resolve each *Rat schema literal down to float64 to compare against the
// AST's always-float64 Node.NumberValue.
func (ctx *validationContext) validateNumber(node *Node, schema *Schema, result *ValidationResult) {
	v := node.NumberValue

	if schema.MultipleOf != nil {
		divisor, ok := schema.MultipleOf.Float64()
		if ok && divisor != 0 {
			if remainder := multipleOfRemainder(v, divisor); remainder > 1e-9 && (divisor-remainder) > 1e-9 {
				result.addProblem(Problem{
					Node: node, Schema: schema, Keyword: "multipleOf",
					Message: "value is not a multiple of " + FormatRat(schema.MultipleOf), Severity: SeverityError,
				})
			}
		}
	}

	min, hasMin := numberBound(schema.Minimum)
	max, hasMax := numberBound(schema.Maximum)
	exclusiveMin, hasExclusiveMin := numberBound(schema.ExclusiveMinimum)
	exclusiveMax, hasExclusiveMax := numberBound(schema.ExclusiveMaximum)
	exclusiveMinRat, exclusiveMaxRat := schema.ExclusiveMinimum, schema.ExclusiveMaximum

	if ctx.v.Dialect.SupportsBooleanExclusiveBounds() {
		if hasMin && schema.ExclusiveMinimumBool != nil && *schema.ExclusiveMinimumBool {
			hasExclusiveMin, exclusiveMin = true, min
			exclusiveMinRat = schema.Minimum
			hasMin = false
		}
		if hasMax && schema.ExclusiveMaximumBool != nil && *schema.ExclusiveMaximumBool {
			hasExclusiveMax, exclusiveMax = true, max
			exclusiveMaxRat = schema.Maximum
			hasMax = false
		}
	}

	switch {
	case hasMin && v < min:
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "minimum",
			Message: "value is below the minimum of " + FormatRat(schema.Minimum), Severity: SeverityError,
		})
	case hasExclusiveMin && v <= exclusiveMin:
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "exclusiveMinimum",
			Message: "value is at or below the exclusive minimum of " + FormatRat(exclusiveMinRat), Severity: SeverityError,
		})
	}

	switch {
	case hasMax && v > max:
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "maximum",
			Message: "value is above the maximum of " + FormatRat(schema.Maximum), Severity: SeverityError,
		})
	case hasExclusiveMax && v >= exclusiveMax:
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "exclusiveMaximum",
			Message: "value is at or above the exclusive maximum of " + FormatRat(exclusiveMaxRat), Severity: SeverityError,
		})
	}
}

func numberBound(r *Rat) (float64, bool) {
	if r == nil {
		return 0, false
	}
	return r.Float64()
}
