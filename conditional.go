package jsonschema

// validateConditional checks "if"/"then"/"else": "if" is evaluated purely
// to decide which branch applies and never itself contributes problems to
// result, treating "if" as a predicate rather than an assertion. Reference:
// https://json-schema.org/draft/2020-12/json-schema-core#name-if
func (ctx *validationContext) validateConditional(node *Node, schema *Schema, result *ValidationResult, title string) {
	ifBranch := result.Fork()
	sub := ctx.collector.newSub()
	ifCtx := &validationContext{v: ctx.v, collector: sub, titles: ctx.titles}
	ifCtx.validateNode(node, schema.If, ifBranch, title)

	if !ifBranch.HasProblems() {
		result.mergeEvaluated(ifBranch)
		spliceSub(ctx.collector, sub, false)
		if schema.Then != nil {
			ctx.validateNode(node, schema.Then, result, title)
		}
		return
	}

	if schema.Else != nil {
		ctx.validateNode(node, schema.Else, result, title)
	}
}
