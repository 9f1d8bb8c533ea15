package jsonschema

// validateDeprecation reports a hint-severity problem when a property value
// matches a schema marked "deprecated" (standard keyword, draft 2019-09+)
// or carrying the editor extension "deprecationMessage" - used to render a
// strikethrough/warning in hover without treating the document as invalid.
func (ctx *validationContext) validateDeprecation(node *Node, schema *Schema, result *ValidationResult) {
	switch {
	case schema.DeprecationMessage != nil:
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "deprecationMessage",
			Message: *schema.DeprecationMessage, Severity: SeverityHint,
		})
	case schema.Deprecated != nil && *schema.Deprecated:
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "deprecated",
			Message: "value is deprecated", Severity: SeverityHint,
		})
	}

	if schema.DoNotSuggest != nil && *schema.DoNotSuggest && ctx.v.Options.CallFromAutoComplete {
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "doNotSuggest",
			Message: "value should not be suggested", Severity: SeverityHint,
		})
	}
}
