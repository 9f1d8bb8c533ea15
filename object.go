package jsonschema

import "strings"

// validateObject runs the seven phases of object validation:
// merge-key expansion, required, properties/patternProperties,
// additionalProperties, maxProperties/minProperties, dependencies
// (draft-07) or dependentRequired/dependentSchemas (2019+), propertyNames.
func (ctx *validationContext) validateObject(node *Node, schema *Schema, result *ValidationResult) {
	seen := expandProperties(node)

	ctx.checkRequired(node, schema, seen, result)
	matchedByName := ctx.checkPropertiesAndPatterns(node, schema, seen, result)
	ctx.checkAdditionalProperties(node, schema, seen, matchedByName, result)
	ctx.checkPropertyCount(node, schema, seen, result)
	ctx.checkDependencies(node, schema, seen, result)
	ctx.checkPropertyNames(node, schema, seen, result)
}

// seenKey is one property as it participates in object validation: its
// name, the value node to validate, and whether it arrived via YAML merge
// key (<<) expansion rather than being written directly.
type seenKey struct {
	name    string
	value   *Node
	merged  bool
}

// expandProperties builds the seen-keys work list for an object node,
// expanding `<<: *anchor` / `<<: [*a, *b]` merge keys (grounded on YAML's
// merge-key convention) in
// declaration order with later explicit keys overriding earlier merged
// ones, the way YAML itself resolves merge conflicts.
func expandProperties(node *Node) []seenKey {
	var stack []*Property
	var direct []*Property
	for _, p := range node.Properties {
		if p.Key != nil && p.Key.Kind == KindString && p.Key.StringValue == "<<" {
			stack = append(stack, p)
			continue
		}
		direct = append(direct, p)
	}

	byName := map[string]seenKey{}
	var order []string

	addKey := func(k seenKey) {
		if _, exists := byName[k.name]; !exists {
			order = append(order, k.name)
		}
		byName[k.name] = k
	}

	for _, p := range stack {
		for _, mergeSource := range mergeSources(p.Value) {
			for _, mp := range mergeSource.Properties {
				if mp.Key == nil || mp.Key.Kind != KindString {
					continue
				}
				addKey(seenKey{name: mp.Key.StringValue, value: mp.Value, merged: true})
			}
		}
	}

	for _, p := range direct {
		if p.Key == nil || p.Key.Kind != KindString {
			continue
		}
		addKey(seenKey{name: p.Key.StringValue, value: p.Value, merged: false})
	}

	out := make([]seenKey, len(order))
	for i, name := range order {
		out[i] = byName[name]
	}
	return out
}

// mergeSources resolves a "<<" value to the one or more object nodes it
// merges in: a single mapping, or a sequence of mappings.
func mergeSources(v *Node) []*Node {
	if v == nil {
		return nil
	}
	if v.Kind == KindObject {
		return []*Node{v}
	}
	if v.Kind == KindArray {
		var out []*Node
		for _, item := range v.Items {
			if item != nil && item.Kind == KindObject {
				out = append(out, item)
			}
		}
		return out
	}
	return nil
}

func findSeen(seen []seenKey, name string) (*Node, bool) {
	for _, s := range seen {
		if s.name == name {
			return s.value, true
		}
	}
	return nil, false
}

func (ctx *validationContext) checkRequired(node *Node, schema *Schema, seen []seenKey, result *ValidationResult) {
	reportOn := node
	if owning := node.OwningProperty(); owning != nil && owning.Key != nil {
		reportOn = owning.Key
	}
	for _, name := range schema.Required {
		if _, ok := findSeen(seen, name); !ok {
			result.addProblem(Problem{
				Node: reportOn, Schema: schema, Keyword: "required",
				Message: "object is missing required property \"" + name + "\"", Severity: SeverityError,
				Data: map[string]any{"property": name},
			})
		}
	}
}

// checkPropertiesAndPatterns validates each seen property against its
// matching "properties" and "patternProperties" sub-schemas, returning the
// set of property names that were matched by at least one of the two so
// checkAdditionalProperties knows what's left over.
func (ctx *validationContext) checkPropertiesAndPatterns(node *Node, schema *Schema, seen []seenKey, result *ValidationResult) map[string]bool {
	matched := map[string]bool{}

	for _, s := range seen {
		if s.value == nil {
			continue
		}
		var propMatched bool

		if schema.Properties != nil {
			if sub, ok := (*schema.Properties)[s.name]; ok {
				ctx.validateNode(s.value, sub, result, "")
				propMatched = true
				result.PropertiesMatches++
				if !s.merged {
					result.EvaluatedProperties[s.name] = true
				}
			}
		}

		if schema.PatternProperties != nil {
			for pattern, sub := range *schema.PatternProperties {
				re := compileSafeRegexp(pattern)
				if re == nil || !re.MatchString(s.name) {
					continue
				}
				ctx.validateNode(s.value, sub, result, "")
				propMatched = true
				if !s.merged {
					result.EvaluatedProperties[s.name] = true
				}
			}
		}

		if propMatched {
			matched[s.name] = true
			result.PropertiesValueMatches++
		}
	}

	return matched
}

// checkAdditionalProperties enforces additionalProperties against whatever
// properties/patternProperties left unmatched, attaching a "did you mean"
// suggestion list for editor diagnostics when the schema has
// named properties a misspelled key could plausibly have meant.
//
// Only an additionalProperties keyword actually present in this schema
// object claims a property as evaluated: a schema that omits
// additionalProperties entirely still allows unmatched properties through
// (the keyword's default), but leaves them unclaimed so unevaluatedProperties
// elsewhere in the same applicator group can still see and validate them.
func (ctx *validationContext) checkAdditionalProperties(node *Node, schema *Schema, seen []seenKey, matched map[string]bool, result *ValidationResult) {
	explicit := schema.AdditionalProperties != nil
	deny := schema.AdditionalProperties.IsDenyAll() || ctx.v.Options.DisableAdditionalProperties

	var unexpected []seenKey
	for _, s := range seen {
		if matched[s.name] || s.value == nil {
			continue
		}
		switch {
		case deny:
			unexpected = append(unexpected, s)
		case !explicit:
			// No additionalProperties keyword here: validation allows it,
			// but evaluation is left unclaimed.
		case schema.AdditionalProperties.IsAllowAll():
			if !s.merged {
				result.EvaluatedProperties[s.name] = true
			}
		default:
			ctx.validateNode(s.value, schema.AdditionalProperties, result, "")
			if !s.merged {
				result.EvaluatedProperties[s.name] = true
			}
		}
	}

	if len(unexpected) == 0 {
		return
	}

	names := make([]string, len(unexpected))
	for i, s := range unexpected {
		names[i] = s.name
	}

	result.addProblem(Problem{
		Node: node, Schema: schema, Keyword: "additionalProperties",
		Message:  "object has unexpected properties: " + strings.Join(sortedStrings(names), ", "),
		Severity: SeverityError,
		Data: map[string]any{
			"properties":  names,
			"suggestions": suggestPropertyNamesByValue(unexpected, schema),
		},
	})
}

// suggestPropertyNamesByValue is suggestPropertyNames narrowed per unexpected
// key to known properties whose own sub-schema would accept the kind of
// value actually written - no point suggesting a property typo fix that the
// schema would immediately reject for being the wrong type.
func suggestPropertyNamesByValue(unexpected []seenKey, schema *Schema) map[string]string {
	known := knownPropertyNames(schema)
	if len(known) == 0 {
		return nil
	}
	suggestions := map[string]string{}
	for _, u := range unexpected {
		compatible := known
		if schema.Properties != nil {
			compatible = make([]string, 0, len(known))
			for _, name := range known {
				if acceptsType((*schema.Properties)[name], u.value.Kind) {
					compatible = append(compatible, name)
				}
			}
		}
		for name, best := range suggestPropertyNames([]string{u.name}, compatible) {
			suggestions[name] = best
		}
	}
	if len(suggestions) == 0 {
		return nil
	}
	return suggestions
}

func knownPropertyNames(schema *Schema) []string {
	if schema.Properties == nil {
		return nil
	}
	names := make([]string, 0, len(*schema.Properties))
	for name := range *schema.Properties {
		names = append(names, name)
	}
	return sortedStrings(names)
}

// suggestPropertyNames proposes a replacement for each unexpected key by
// nearest Levenshtein distance among the schema's known property names,
// the same "did you mean" affordance a language server offers for typos.
func suggestPropertyNames(unexpected, known []string) map[string]string {
	if len(known) == 0 {
		return nil
	}
	suggestions := map[string]string{}
	for _, name := range unexpected {
		best := ""
		bestDist := -1
		for _, candidate := range known {
			d := levenshtein(name, candidate)
			if d <= 2 && (bestDist == -1 || d < bestDist) {
				best, bestDist = candidate, d
			}
		}
		if best != "" {
			suggestions[name] = best
		}
	}
	if len(suggestions) == 0 {
		return nil
	}
	return suggestions
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func (ctx *validationContext) checkPropertyCount(node *Node, schema *Schema, seen []seenKey, result *ValidationResult) {
	count := float64(len(seen))
	if schema.MaxProperties != nil && count > *schema.MaxProperties {
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "maxProperties",
			Message: "object has more properties than the allowed maximum", Severity: SeverityError,
		})
	}
	if schema.MinProperties != nil && count < *schema.MinProperties {
		result.addProblem(Problem{
			Node: node, Schema: schema, Keyword: "minProperties",
			Message: "object has fewer properties than the required minimum", Severity: SeverityError,
		})
	}
}

// checkDependencies handles draft-07's "dependencies" (either a schema or a
// property-name list per key) and, for 2019+ dialects, the split
// dependentRequired/dependentSchemas keywords that replaced it.
func (ctx *validationContext) checkDependencies(node *Node, schema *Schema, seen []seenKey, result *ValidationResult) {
	for name, dep := range schema.Dependencies {
		if _, present := findSeen(seen, name); !present {
			continue
		}
		if dep.Schema != nil {
			ctx.validateNode(node, dep.Schema, result, "")
			continue
		}
		for _, required := range dep.PropertyNames {
			if _, ok := findSeen(seen, required); !ok {
				result.addProblem(Problem{
					Node: node, Schema: schema, Keyword: "dependencies",
					Message: "property \"" + name + "\" requires property \"" + required + "\" to also be present",
					Severity: SeverityError,
				})
			}
		}
	}

	if !ctx.v.Dialect.SupportsUnevaluated() {
		return
	}

	for name, required := range schema.DependentRequired {
		if _, present := findSeen(seen, name); !present {
			continue
		}
		for _, req := range required {
			if _, ok := findSeen(seen, req); !ok {
				result.addProblem(Problem{
					Node: node, Schema: schema, Keyword: "dependentRequired",
					Message: "property \"" + name + "\" requires property \"" + req + "\" to also be present",
					Severity: SeverityError,
				})
			}
		}
	}

	for name, sub := range schema.DependentSchemas {
		if _, present := findSeen(seen, name); !present {
			continue
		}
		ctx.validateNode(node, sub, result, "")
	}
}

func (ctx *validationContext) checkPropertyNames(node *Node, schema *Schema, seen []seenKey, result *ValidationResult) {
	if schema.PropertyNames == nil {
		return
	}
	for _, p := range node.Properties {
		if p.Key == nil {
			continue
		}
		ctx.validateNode(p.Key, schema.PropertyNames, result, "")
	}
}
