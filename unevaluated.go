package jsonschema

// validateUnevaluated runs unevaluatedProperties/unevaluatedItems, which
// only exist in 2019-09 and 2020-12 and must run strictly after
// every other keyword on this node and its allOf/anyOf/oneOf/if branches
// has had a chance to mark its properties/items evaluated, since these two
// keywords are defined in terms of "not claimed by anything else".
func (ctx *validationContext) validateUnevaluated(node *Node, schema *Schema, result *ValidationResult) {
	if schema.UnevaluatedProperties != nil && node.Kind == KindObject {
		ctx.applyUnevaluatedProperties(node, schema, result)
	}
	if schema.UnevaluatedItems != nil && node.Kind == KindArray {
		ctx.applyUnevaluatedItems(node, schema, result)
	}
}

// applyUnevaluatedProperties walks the merge-key-expanded seen list (the
// same work list checkPropertiesAndPatterns/checkAdditionalProperties use),
// not node.Properties directly, so a YAML "<<" merge key itself is never
// mistaken for an unevaluated property and the properties it contributes
// are judged on their own names.
func (ctx *validationContext) applyUnevaluatedProperties(node *Node, schema *Schema, result *ValidationResult) {
	allowAll := schema.UnevaluatedProperties.IsAllowAll()
	denyAll := schema.UnevaluatedProperties.IsDenyAll()

	for _, s := range expandProperties(node) {
		if s.value == nil || result.EvaluatedProperties[s.name] {
			continue
		}
		switch {
		case allowAll:
			result.EvaluatedProperties[s.name] = true
		case denyAll:
			result.addProblem(Problem{
				Node: s.value, Schema: schema, Keyword: "unevaluatedProperties",
				Message: "property \"" + s.name + "\" is not described by any applicable schema", Severity: SeverityError,
			})
		default:
			ctx.validateNode(s.value, schema.UnevaluatedProperties, result, "")
			result.EvaluatedProperties[s.name] = true
		}
	}
}

func (ctx *validationContext) applyUnevaluatedItems(node *Node, schema *Schema, result *ValidationResult) {
	evaluated := result.EvaluatedItemsByNode[node]
	allowAll := schema.UnevaluatedItems.IsAllowAll()
	denyAll := schema.UnevaluatedItems.IsDenyAll()

	for i, item := range node.Items {
		if evaluated != nil && evaluated[i] {
			continue
		}
		switch {
		case allowAll:
		case denyAll:
			result.addProblem(Problem{
				Node: item, Schema: schema, Keyword: "unevaluatedItems",
				Message: "item is not described by any applicable schema", Severity: SeverityError,
			})
		default:
			ctx.validateNode(item, schema.UnevaluatedItems, result, "")
		}
	}
}
