package jsonschema

import "strconv"

// validateArray runs the array-typed leaf keywords. "items"
// is the dialect hotspot: draft-04/07/2019-09 treat an array-valued
// "items" as a positional tuple (paired with "additionalItems" for the
// tail), while 2020-12 moved the tuple form to "prefixItems" and made
// "items" always a single schema applied to every element beyond the
// prefix.
func (ctx *validationContext) validateArray(node *Node, schema *Schema, result *ValidationResult) {
	ctx.validateItems(node, schema, result)
	ctx.validateContains(node, schema, result)
	ctx.validateUniqueItems(node, schema, result)

	count := float64(len(node.Items))
	if schema.MaxItems != nil && count > *schema.MaxItems {
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "maxItems",
			Message: "array has more items than the allowed maximum", Severity: SeverityError,
		})
	}
	if schema.MinItems != nil && count < *schema.MinItems {
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "minItems",
			Message: "array has fewer items than the required minimum", Severity: SeverityError,
		})
	}
}

func (ctx *validationContext) validateItems(node *Node, schema *Schema, result *ValidationResult) {
	evaluated := result.EvaluatedItemsByNode[node]
	if evaluated == nil {
		evaluated = map[int]bool{}
		result.EvaluatedItemsByNode[node] = evaluated
	}

	if ctx.v.Dialect.SupportsPrefixItems() {
		if schema.Items.IsDenyAll() && len(node.Items) > len(schema.PrefixItems) {
			for i, item := range node.Items {
				if i < len(schema.PrefixItems) {
					ctx.validateNode(item, schema.PrefixItems[i], result, "")
					evaluated[i] = true
				}
			}
			result.addProblem(Problem{
				Node: node, Schema: schema, Keyword: "items",
				Message: "too many items, expected " + strconv.Itoa(len(schema.PrefixItems)) + " or fewer", Severity: SeverityError,
			})
			return
		}
		for i, item := range node.Items {
			if i < len(schema.PrefixItems) {
				ctx.validateNode(item, schema.PrefixItems[i], result, "")
				evaluated[i] = true
				continue
			}
			if schema.Items != nil {
				ctx.validateNode(item, schema.Items, result, "")
				evaluated[i] = true
			}
		}
		return
	}

	// draft-04/07/2019-09 tuple form: "items" as an array is positional,
	// "additionalItems" governs the tail. UnmarshalJSON decodes an array
	// "items" into schema.PrefixItems (handled first below) and a single
	// "items" schema into schema.Items, which applies to every element.
	if len(schema.PrefixItems) > 0 {
		for i, item := range node.Items {
			if i < len(schema.PrefixItems) {
				ctx.validateNode(item, schema.PrefixItems[i], result, "")
				evaluated[i] = true
				continue
			}
			if !schema.AdditionalItems.IsAllowAll() {
				if schema.AdditionalItems.IsDenyAll() {
					result.addProblem(Problem{
						Node: item, Schema: schema, Keyword: "additionalItems",
						Message: "array has more items than the tuple schema allows", Severity: SeverityError,
					})
				} else {
					ctx.validateNode(item, schema.AdditionalItems, result, "")
				}
			}
			evaluated[i] = true
		}
		return
	}

	if schema.Items != nil {
		for i, item := range node.Items {
			ctx.validateNode(item, schema.Items, result, "")
			evaluated[i] = true
		}
	}
}

func (ctx *validationContext) validateContains(node *Node, schema *Schema, result *ValidationResult) {
	if schema.Contains == nil {
		return
	}

	evaluated := result.EvaluatedItemsByNode[node]
	if evaluated == nil {
		evaluated = map[int]bool{}
		result.EvaluatedItemsByNode[node] = evaluated
	}

	matchCount := 0
	for i, item := range node.Items {
		branch := result.Fork()
		sub := ctx.collector.newSub()
		branchCtx := &validationContext{v: ctx.v, collector: sub, titles: ctx.titles}
		branchCtx.validateNode(item, schema.Contains, branch, "")
		if !branch.HasProblems() {
			matchCount++
			evaluated[i] = true
			spliceSub(ctx.collector, sub, false)
		}
	}

	min := 1.0
	if schema.MinContains != nil {
		min = *schema.MinContains
	}
	max := -1.0
	if schema.MaxContains != nil {
		max = *schema.MaxContains
	}

	if float64(matchCount) < min {
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "contains",
			Message: "array does not contain enough items matching the required schema", Severity: SeverityError,
		})
	}
	if max >= 0 && float64(matchCount) > max {
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "maxContains",
			Message: "array contains too many items matching the given schema", Severity: SeverityError,
		})
	}
}

func (ctx *validationContext) validateUniqueItems(node *Node, schema *Schema, result *ValidationResult) {
	if schema.UniqueItems == nil || !*schema.UniqueItems {
		return
	}
	values := make([]any, len(node.Items))
	for i, item := range node.Items {
		values[i] = nodeToValue(item)
	}
	for i := 1; i < len(values); i++ {
		for j := 0; j < i; j++ {
			if deepEqualValues(values[i], values[j]) {
				result.addProblem(Problem{
					Node: node.Items[i], Schema: schema, Keyword: "uniqueItems",
					Message: "array has duplicate items", Severity: SeverityError,
				})
				return
			}
		}
	}
}
