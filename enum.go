package jsonschema

// validateEnum checks the "enum" keyword against an AST node. Reference:
// https://json-schema.org/draft/2020-12/json-schema-validation#name-enum
//
// CallFromAutoComplete relaxes string matching to a prefix check: a
// completion pass validating a half-typed string like "rea" against
// enum ["read","write"] should not flag it as invalid, it should instead let
// the host's completion offer the remaining enum values.
func (ctx *validationContext) validateEnum(node *Node, schema *Schema, result *ValidationResult) {
	if len(schema.Enum) == 0 {
		return
	}
	result.EnumValues = schema.Enum

	for _, candidate := range schema.Enum {
		if ctx.v.Options.CallFromAutoComplete && node.Kind == KindString {
			if s, ok := candidate.(string); ok && len(node.StringValue) <= len(s) &&
				s[:len(node.StringValue)] == node.StringValue {
				result.EnumValueMatch = true
				return
			}
		}
		if nodeEqualsValue(node, candidate) {
			result.EnumValueMatch = true
			return
		}
	}

	result.addProblem(Problem{
		Node: node, Schema: schema, Keyword: "enum",
		Message: "value is not accepted. Valid values: " + formatEnumValues(schema.Enum),
		Severity: SeverityError,
		Data:     map[string]any{"values": schema.Enum},
	})
}

func formatEnumValues(values []any) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += formatScalarForMessage(v)
	}
	return out
}
