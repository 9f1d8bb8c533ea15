package jsonschema

// validateNot checks the "not" keyword: the instance is valid only if it
// fails to validate against the sub-schema. Reference:
// https://json-schema.org/draft/2020-12/json-schema-core#name-not
//
// A "not" branch that matches is reported to the collector as Inverted so a
// hover/completion host can still see which schema the document matched,
// even though the match itself is the problem.
func (ctx *validationContext) validateNot(node *Node, schema *Schema, result *ValidationResult, title string) {
	branch := result.Fork()
	sub := ctx.collector.newSub()
	branchCtx := &validationContext{v: ctx.v, collector: sub, titles: ctx.titles}
	branchCtx.validateNode(node, schema.Not, branch, title)

	if !branch.HasProblems() {
		spliceSub(ctx.collector, sub, true)
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "not",
			Message: "value must not match the given schema", Severity: SeverityError,
		})
	}
}
