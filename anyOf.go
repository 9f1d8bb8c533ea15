package jsonschema

// validateAnyOf checks the "anyOf" keyword: the instance must satisfy at
// least one sub-schema. Reference:
// https://json-schema.org/draft/2020-12/json-schema-core#name-anyof
//
// Each branch is evaluated into its own forked ValidationResult so a
// failing alternative's problems never leak into the final output. If at
// least one branch is clean, every clean branch contributes its
// evaluated properties/items and collected schemas, and best-match
// arbitration picks the single branch whose match counters are added. If
// none is clean, only the best branch's problems and evaluated state are
// merged, followed by an "anyOf" problem.
func (ctx *validationContext) validateAnyOf(node *Node, schema *Schema, result *ValidationResult, title string) {
	branches := make([]*ValidationResult, len(schema.AnyOf))
	subs := make([]SchemaCollector, len(schema.AnyOf))
	anyValid := false

	for i, sub := range schema.AnyOf {
		branch := result.Fork()
		subs[i] = ctx.collector.newSub()
		branchCtx := &validationContext{v: ctx.v, collector: subs[i], titles: ctx.titles}
		branchCtx.validateNode(node, sub, branch, title)
		branches[i] = branch
		if !branch.HasProblems() {
			anyValid = true
		}
	}

	best := bestMatch(branches, ctx.v.Options)
	if best < 0 {
		return
	}

	if anyValid {
		for i, b := range branches {
			if !b.HasProblems() {
				result.mergeEvaluated(b)
				spliceSub(ctx.collector, subs[i], false)
			}
		}
		result.PropertiesMatches += branches[best].PropertiesMatches
		result.PropertiesValueMatches += branches[best].PropertiesValueMatches
		result.PrimaryValueMatches += branches[best].PrimaryValueMatches
		if branches[best].EnumValueMatch {
			result.EnumValueMatch = true
		}
		return
	}

	result.Merge(branches[best])
	spliceSub(ctx.collector, subs[best], false)
	result.addProblem(Problem{
		Node: node, Schema: schema, Keyword: "anyOf",
		Message: "value does not match any of the allowed schemas", Severity: SeverityError,
	})
}
