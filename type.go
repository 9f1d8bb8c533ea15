package jsonschema

// acceptsType reports whether schema's "type" keyword (if any) would accept
// a node of the given kind, honoring the integer/number special case.
func acceptsType(schema *Schema, kind Kind) bool {
	if schema == nil || len(schema.Type) == 0 {
		return true
	}
	probe := &Node{Kind: kind, IsInteger: kind == KindNumber}
	for _, t := range schema.Type {
		if probe.matchesType(t) {
			return true
		}
		if kind == KindNumber && t == "integer" {
			// A plain "number" node may still be an integer value; callers
			// doing static schema analysis (not validating an actual node)
			// want "integer" to count as compatible with "number" kind too.
			continue
		}
	}
	return false
}
