package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandMergeKeys_SingleAnchor(t *testing.T) {
	base := objectNode(prop("color", strNode("red")), prop("size", strNode("large")))
	doc := objectNode(
		prop("<<", base),
		prop("size", strNode("small")),
	)

	props := ExpandMergeKeys(doc)
	byName := map[string]*Node{}
	for _, p := range props {
		byName[p.Key.StringValue] = p.Value
	}

	require.Contains(t, byName, "color")
	require.Contains(t, byName, "size")
	assert.Equal(t, "red", byName["color"].StringValue)
	assert.Equal(t, "small", byName["size"].StringValue, "a directly declared key overrides the merged one")
}

func TestExpandMergeKeys_SequenceOfAnchors(t *testing.T) {
	a := objectNode(prop("a", strNode("1")))
	b := objectNode(prop("b", strNode("2")))
	doc := objectNode(prop("<<", arrayNode(a, b)))

	props := ExpandMergeKeys(doc)
	require.Len(t, props, 2)
}

func TestValidateObject_MergeKeyPropertiesValidated(t *testing.T) {
	schema := mustSchema(t, `{
		"type": "object",
		"properties": {"color": {"enum": ["red", "blue"]}},
		"additionalProperties": false
	}`)
	v := NewValidator("draft-07", Options{})

	base := objectNode(prop("color", strNode("green")))
	doc := objectNode(prop("<<", base))

	problems := v.ValidateDocument(doc, schema)
	require.Len(t, problems, 1, "a property arriving only via merge key is still validated against its schema")
	assert.Equal(t, "enum", problems[0].Keyword)
}

func TestValidateObject_MergedPropertyDoesNotCountAsEvaluated(t *testing.T) {
	schema := mustSchema(t, `{
		"type": "object",
		"allOf": [{"properties": {"color": {"type": "string"}}}],
		"unevaluatedProperties": false
	}`)
	v := NewValidator("2020-12", Options{})

	base := objectNode(prop("color", strNode("green")))
	doc := objectNode(prop("<<", base))

	problems := v.ValidateDocument(doc, schema)
	require.Len(t, problems, 1, "a merged (not directly declared) property is never marked evaluated, per object.go's seenKey.merged flag")
	assert.Equal(t, "unevaluatedProperties", problems[0].Keyword)
}

func TestPropertyNames(t *testing.T) {
	schema := mustSchema(t, `{"type": "object", "propertyNames": {"pattern": "^[a-z]+$"}}`)
	v := NewValidator("draft-07", Options{})

	doc := objectNode(prop("Bad-Key", strNode("x")))
	problems := v.ValidateDocument(doc, schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "pattern", problems[0].Keyword)
}

func TestMaxMinProperties(t *testing.T) {
	schema := mustSchema(t, `{"type": "object", "minProperties": 2, "maxProperties": 2}`)
	v := NewValidator("draft-07", Options{})

	problems := v.ValidateDocument(objectNode(prop("a", strNode("x"))), schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "minProperties", problems[0].Keyword)

	problems = v.ValidateDocument(objectNode(prop("a", strNode("x")), prop("b", strNode("y")), prop("c", strNode("z"))), schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "maxProperties", problems[0].Keyword)
}
