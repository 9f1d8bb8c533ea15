package jsonschema

// validateAllOf checks the "allOf" keyword: the instance must satisfy
// every sub-schema. Reference:
// https://json-schema.org/draft/2020-12/json-schema-core#name-allof
//
// Unlike anyOf/oneOf there is no branching to arbitrate: every sub-schema's
// problems and evaluated state merge directly into result.
func (ctx *validationContext) validateAllOf(node *Node, schema *Schema, result *ValidationResult, title string) {
	for _, sub := range schema.AllOf {
		ctx.validateNode(node, sub, result, title)
	}
}
