package jsonschema

import "strconv"

// validateOneOf checks the "oneOf" keyword: the instance must satisfy
// exactly one sub-schema. Reference:
// https://json-schema.org/draft/2020-12/json-schema-core#name-oneof
//
// Unlike anyOf, matching more than one branch is itself an error (the
// schema author intended the alternatives to be mutually exclusive), so
// this reports which indexes matched rather than falling back to
// best-match arbitration in the multiple-match case.
func (ctx *validationContext) validateOneOf(node *Node, schema *Schema, result *ValidationResult, title string) {
	branches := make([]*ValidationResult, len(schema.OneOf))
	subs := make([]SchemaCollector, len(schema.OneOf))
	var validIndexes []int

	for i, sub := range schema.OneOf {
		branch := result.Fork()
		subs[i] = ctx.collector.newSub()
		branchCtx := &validationContext{v: ctx.v, collector: subs[i], titles: ctx.titles}
		branchCtx.validateNode(node, sub, branch, title)
		branches[i] = branch
		if !branch.HasProblems() {
			validIndexes = append(validIndexes, i)
		}
	}

	switch len(validIndexes) {
	case 1:
		result.mergeEvaluated(branches[validIndexes[0]])
		spliceSub(ctx.collector, subs[validIndexes[0]], false)
		chosen := branches[validIndexes[0]]
		result.PropertiesMatches += chosen.PropertiesMatches
		result.PropertiesValueMatches += chosen.PropertiesValueMatches
		result.PrimaryValueMatches += chosen.PrimaryValueMatches
		if chosen.EnumValueMatch {
			result.EnumValueMatch = true
		}
	case 0:
		best := bestMatch(branches, ctx.v.Options)
		if best >= 0 {
			result.Merge(branches[best])
			spliceSub(ctx.collector, subs[best], false)
		}
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "oneOf",
			Message: "value does not match exactly one allowed schema", Severity: SeverityError,
		})
	default:
		matched := make([]*ValidationResult, len(validIndexes))
		for i, idx := range validIndexes {
			result.mergeEvaluated(branches[idx])
			spliceSub(ctx.collector, subs[idx], false)
			matched[i] = branches[idx]
		}
		if best := bestMatch(matched, ctx.v.Options); best >= 0 {
			result.PropertiesMatches += matched[best].PropertiesMatches
			result.PropertiesValueMatches += matched[best].PropertiesValueMatches
			result.PrimaryValueMatches += matched[best].PrimaryValueMatches
			if matched[best].EnumValueMatch {
				result.EnumValueMatch = true
			}
		}

		matchList := ""
		for i, idx := range validIndexes {
			if i > 0 {
				matchList += ", "
			}
			matchList += strconv.Itoa(idx)
		}
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "oneOf",
			Message: "value matches more than one allowed schema (indexes " + matchList + ")",
			Severity: SeverityError,
		})
	}
}
