package jsonschema

import (
	"github.com/goccy/go-yaml/ast"
)

// FromYAMLNode adapts a github.com/goccy/go-yaml/ast tree into the Node
// model the validator consumes. Hosts that already parse documents with
// goccy/go-yaml (as the wider yaml-language-server stack does) can use this
// instead of writing their own AST bridge.
//
// Quoting and flow-style are transparent to the validator: only the decoded
// value and its source span matter.
func FromYAMLNode(n ast.Node) *Node {
	return fromYAMLNode(n, nil)
}

func fromYAMLNode(n ast.Node, parent *Node) *Node {
	if n == nil {
		return nil
	}

	switch v := n.(type) {
	case *ast.DocumentNode:
		return fromYAMLNode(v.Body, parent)
	case *ast.TagNode:
		return fromYAMLNode(v.Value, parent)
	case *ast.MappingNode:
		return fromYAMLMapping(v, parent)
	case *ast.MappingValueNode:
		// A lone mapping-value node (single-entry map) is wrapped so callers
		// always see a KindObject at the top.
		wrapper := &ast.MappingNode{BaseNode: v.BaseNode, Values: []*ast.MappingValueNode{v}}
		return fromYAMLMapping(wrapper, parent)
	case *ast.SequenceNode:
		node := &Node{Kind: KindArray, Offset: yamlOffset(v), Length: yamlLength(v), Parent: parent, Source: v}
		for _, item := range v.Values {
			node.Items = append(node.Items, fromYAMLNode(item, node))
		}
		return node
	case *ast.StringNode:
		return &Node{Kind: KindString, Offset: yamlOffset(v), Length: yamlLength(v), Parent: parent, Source: v, StringValue: v.Value}
	case *ast.LiteralNode:
		return &Node{Kind: KindString, Offset: yamlOffset(v), Length: yamlLength(v), Parent: parent, Source: v, StringValue: v.String()}
	case *ast.IntegerNode:
		f, _ := toFloat64(v.Value)
		return &Node{Kind: KindNumber, Offset: yamlOffset(v), Length: yamlLength(v), Parent: parent, Source: v, NumberValue: f, IsInteger: true}
	case *ast.FloatNode:
		return &Node{Kind: KindNumber, Offset: yamlOffset(v), Length: yamlLength(v), Parent: parent, Source: v, NumberValue: v.Value, IsInteger: v.Value == float64(int64(v.Value))}
	case *ast.BoolNode:
		return &Node{Kind: KindBoolean, Offset: yamlOffset(v), Length: yamlLength(v), Parent: parent, Source: v, BoolValue: v.Value}
	case *ast.NullNode:
		return &Node{Kind: KindNull, Offset: yamlOffset(v), Length: yamlLength(v), Parent: parent, Source: v}
	case *ast.AnchorNode:
		return fromYAMLNode(v.Value, parent)
	case *ast.AliasNode:
		return fromYAMLNode(v.Value, parent)
	default:
		// Comments, directives, and anything else the validator has no
		// opinion about collapse to an empty string node so traversal never
		// panics on an unexpected shape.
		return &Node{Kind: KindString, Offset: yamlOffset(n), Length: yamlLength(n), Parent: parent, Source: n}
	}
}

func fromYAMLMapping(m *ast.MappingNode, parent *Node) *Node {
	node := &Node{Kind: KindObject, Offset: yamlOffset(m), Length: yamlLength(m), Parent: parent, Source: m}
	for _, mv := range m.Values {
		keyNode := fromYAMLNode(mv.Key, node)
		prop := &Property{Key: keyNode}
		colonOffset := keyNode.End()
		if tk := mv.GetToken(); tk != nil && tk.Position != nil {
			colonOffset = tk.Position.Offset
		}
		prop.ColonOffset = colonOffset
		prop.Value = fromYAMLNode(mv.Value, node)
		node.Properties = append(node.Properties, prop)
	}
	return node
}

func yamlOffset(n ast.Node) int {
	tk := n.GetToken()
	if tk == nil || tk.Position == nil {
		return 0
	}
	return tk.Position.Offset
}

func yamlLength(n ast.Node) int {
	tk := n.GetToken()
	if tk == nil {
		return 0
	}
	return len(tk.Value)
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
