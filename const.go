package jsonschema

// validateConst checks the "const" keyword, distinguishing an explicit
// `const: null` from the keyword's absence via ConstValue.IsSet. Reference:
// https://json-schema.org/draft/2020-12/json-schema-validation#name-const
func (ctx *validationContext) validateConst(node *Node, schema *Schema, result *ValidationResult) {
	if schema.Const == nil || !schema.Const.IsSet {
		return
	}
	result.EnumValues = []any{schema.Const.Value}

	if ctx.v.Options.CallFromAutoComplete && node.Kind == KindString {
		if s, ok := schema.Const.Value.(string); ok && len(node.StringValue) <= len(s) &&
			s[:len(node.StringValue)] == node.StringValue {
			result.PrimaryValueMatches++
			result.EnumValueMatch = true
			return
		}
	}

	if nodeEqualsValue(node, schema.Const.Value) {
		result.PrimaryValueMatches++
		result.EnumValueMatch = true
		return
	}

	result.addProblem(Problem{
		Node: node, Schema: schema, Keyword: "const",
		Message: "value must be " + formatScalarForMessage(schema.Const.Value),
		Severity: SeverityError,
	})
}

func formatScalarForMessage(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return "\"" + val + "\""
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		f, ok := toPlainFloat(v)
		if ok {
			return FormatRat(NewRat(f))
		}
		return "value"
	}
}
