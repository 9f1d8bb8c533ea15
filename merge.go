package jsonschema

// ExpandMergeKeys returns the flattened property list a YAML `<<` merge-key
// object resolves to, for hosts that want merge-key-aware property lookup
// outside of validation itself (e.g. rendering a hover tooltip for a
// property that only exists via inheritance). Validation itself calls the
// unexported expandProperties with the same semantics; this is the public
// entry point for everyone else.
func ExpandMergeKeys(node *Node) []*Property {
	if node == nil || node.Kind != KindObject {
		return nil
	}
	seen := expandProperties(node)
	out := make([]*Property, 0, len(seen))
	for _, s := range seen {
		out = append(out, &Property{
			Key:   &Node{Kind: KindString, StringValue: s.name},
			Value: s.value,
		})
	}
	return out
}
