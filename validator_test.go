package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strNode(s string) *Node {
	return &Node{Kind: KindString, StringValue: s, Offset: 0, Length: len(s)}
}

func numNode(f float64, integer bool) *Node {
	return &Node{Kind: KindNumber, NumberValue: f, IsInteger: integer, Length: 1}
}

func boolNode(b bool) *Node {
	return &Node{Kind: KindBoolean, BoolValue: b, Length: 1}
}

func nullNode() *Node {
	return &Node{Kind: KindNull, Length: 1}
}

func arrayNode(items ...*Node) *Node {
	n := &Node{Kind: KindArray, Items: items, Length: 1}
	for _, it := range items {
		it.Parent = n
	}
	return n
}

func objectNode(pairs ...*Property) *Node {
	n := &Node{Kind: KindObject, Properties: pairs, Length: 1}
	for _, p := range pairs {
		if p.Value != nil {
			p.Value.Parent = n
		}
	}
	return n
}

func prop(key string, value *Node) *Property {
	return &Property{Key: strNode(key), Value: value}
}

func mustSchema(t *testing.T, src string) *Schema {
	t.Helper()
	s, err := CompileSchemaBytes([]byte(src))
	require.NoError(t, err)
	return s
}

func TestValidateDocument_TypeMismatch(t *testing.T) {
	schema := mustSchema(t, `{"type": "string"}`)
	v := NewValidator("draft-07", Options{})
	problems := v.ValidateDocument(numNode(1, true), schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "type", problems[0].Keyword)
	assert.Equal(t, SeverityError, problems[0].Severity)
}

func TestValidateDocument_RequiredAndAdditionalProperties(t *testing.T) {
	schema := mustSchema(t, `{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"required": ["name"],
		"additionalProperties": false
	}`)
	v := NewValidator("draft-07", Options{})

	doc := objectNode(prop("extra", strNode("x")))
	problems := v.ValidateDocument(doc, schema)

	var keywords []string
	for _, p := range problems {
		keywords = append(keywords, p.Keyword)
	}
	assert.Contains(t, keywords, "required")
	assert.Contains(t, keywords, "additionalProperties")
}

func TestValidateDocument_AdditionalPropertiesSuggestion(t *testing.T) {
	schema := mustSchema(t, `{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"additionalProperties": false
	}`)
	v := NewValidator("draft-07", Options{})

	doc := objectNode(prop("nam", strNode("x")))
	problems := v.ValidateDocument(doc, schema)

	require.Len(t, problems, 1)
	assert.Equal(t, "additionalProperties", problems[0].Keyword)
	suggestions, ok := problems[0].Data["suggestions"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "name", suggestions["nam"])
}

func TestValidateDocument_EnumAndConst(t *testing.T) {
	schema := mustSchema(t, `{"enum": ["red", "green", "blue"]}`)
	v := NewValidator("draft-07", Options{})

	problems := v.ValidateDocument(strNode("yellow"), schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "enum", problems[0].Keyword)

	problems = v.ValidateDocument(strNode("red"), schema)
	assert.Empty(t, problems)

	constSchema := mustSchema(t, `{"const": null}`)
	problems = v.ValidateDocument(nullNode(), constSchema)
	assert.Empty(t, problems)
	problems = v.ValidateDocument(boolNode(false), constSchema)
	require.Len(t, problems, 1)
	assert.Equal(t, "const", problems[0].Keyword)
}

func TestValidateDocument_NumberBounds(t *testing.T) {
	schema := mustSchema(t, `{"type": "number", "minimum": 0, "maximum": 10, "multipleOf": 0.1}`)
	v := NewValidator("draft-07", Options{})

	problems := v.ValidateDocument(numNode(-1, false), schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "minimum", problems[0].Keyword)

	problems = v.ValidateDocument(numNode(2.5, false), schema)
	assert.Empty(t, problems, "2.5 is a clean multiple of 0.1 once float drift is accounted for")
}

func TestValidateDocument_Draft04BooleanExclusiveBounds(t *testing.T) {
	schema := mustSchema(t, `{"type": "number", "minimum": 5, "exclusiveMinimum": true}`)
	v := NewValidator("draft-04", Options{})

	problems := v.ValidateDocument(numNode(5, true), schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "exclusiveMinimum", problems[0].Keyword)

	problems = v.ValidateDocument(numNode(5.5, false), schema)
	assert.Empty(t, problems)
}

func TestValidateDocument_StringKeywords(t *testing.T) {
	schema := mustSchema(t, `{
		"type": "string", "minLength": 2, "maxLength": 4,
		"pattern": "^[a-z]+$", "format": "email"
	}`)
	v := NewValidator("draft-07", Options{})

	problems := v.ValidateDocument(strNode("a"), schema)
	var keywords []string
	for _, p := range problems {
		keywords = append(keywords, p.Keyword)
	}
	assert.Contains(t, keywords, "minLength")

	problems = v.ValidateDocument(strNode("ABCDE"), schema)
	keywords = nil
	for _, p := range problems {
		keywords = append(keywords, p.Keyword)
	}
	assert.Contains(t, keywords, "maxLength")
	assert.Contains(t, keywords, "pattern")

	problems = v.ValidateDocument(strNode("abcd"), schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "format", problems[0].Keyword)
	assert.Equal(t, SeverityWarning, problems[0].Severity)
}

func TestValidateDocument_ErrorMessageOverride(t *testing.T) {
	schema := mustSchema(t, `{"type": "string", "pattern": "^[a-z]+$", "errorMessage": "letters only, please"}`)
	v := NewValidator("draft-07", Options{})
	problems := v.ValidateDocument(strNode("ABC"), schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "letters only, please", problems[0].Message)
}

func TestValidateDocument_ArrayTuple2020(t *testing.T) {
	schema := mustSchema(t, `{
		"type": "array",
		"prefixItems": [{"type": "string"}, {"type": "number"}],
		"items": {"type": "boolean"}
	}`)
	v := NewValidator("2020-12", Options{})

	doc := arrayNode(strNode("a"), numNode(1, true), boolNode(true), boolNode(false))
	problems := v.ValidateDocument(doc, schema)
	assert.Empty(t, problems)

	bad := arrayNode(strNode("a"), numNode(1, true), strNode("not bool"))
	problems = v.ValidateDocument(bad, schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "type", problems[0].Keyword)
}

func TestValidateDocument_ArrayPrefixItemsDenyAllExcess(t *testing.T) {
	schema := mustSchema(t, `{
		"prefixItems": [{"type": "integer"}, {"type": "string"}],
		"items": false
	}`)
	v := NewValidator("2020-12", Options{})

	doc := arrayNode(numNode(1, true), strNode("x"), boolNode(true))
	problems := v.ValidateDocument(doc, schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "items", problems[0].Keyword)
	assert.Equal(t, "too many items, expected 2 or fewer", problems[0].Message)
	assert.Equal(t, doc, problems[0].Node)

	ok := arrayNode(numNode(1, true), strNode("x"))
	assert.Empty(t, v.ValidateDocument(ok, schema))
}

func TestValidateDocument_ArrayTupleLegacy(t *testing.T) {
	schema := mustSchema(t, `{
		"type": "array",
		"items": [{"type": "string"}, {"type": "number"}],
		"additionalItems": false
	}`)
	v := NewValidator("draft-07", Options{})

	ok := arrayNode(strNode("a"), numNode(1, true))
	assert.Empty(t, v.ValidateDocument(ok, schema))

	tooMany := arrayNode(strNode("a"), numNode(1, true), boolNode(true))
	problems := v.ValidateDocument(tooMany, schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "additionalItems", problems[0].Keyword)
}

func TestValidateDocument_Contains(t *testing.T) {
	schema := mustSchema(t, `{"type": "array", "contains": {"type": "number"}, "minContains": 2}`)
	v := NewValidator("draft-07", Options{})

	doc := arrayNode(strNode("a"), numNode(1, true))
	problems := v.ValidateDocument(doc, schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "contains", problems[0].Keyword)

	doc = arrayNode(numNode(1, true), numNode(2, true))
	assert.Empty(t, v.ValidateDocument(doc, schema))
}

func TestValidateDocument_UniqueItems(t *testing.T) {
	schema := mustSchema(t, `{"type": "array", "uniqueItems": true}`)
	v := NewValidator("draft-07", Options{})

	doc := arrayNode(numNode(1, true), numNode(1, true))
	problems := v.ValidateDocument(doc, schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "uniqueItems", problems[0].Keyword)
}

func TestValidateDocument_AnyOfBestMatch(t *testing.T) {
	schema := mustSchema(t, `{
		"anyOf": [
			{"type": "object", "properties": {"kind": {"const": "a"}, "x": {"type": "string"}}, "required": ["kind"]},
			{"type": "object", "properties": {"kind": {"const": "b"}, "y": {"type": "number"}}, "required": ["kind"]}
		]
	}`)
	v := NewValidator("draft-07", Options{})

	doc := objectNode(prop("kind", strNode("a")), prop("x", numNode(1, true)))
	problems := v.ValidateDocument(doc, schema)
	require.Len(t, problems, 2, "neither branch is fully clean: the best branch's own problem plus the generic anyOf mismatch")
	assert.Equal(t, "type", problems[0].Keyword, "best match (its const on kind matched) should be the 'a' branch, reporting x's type mismatch")
	assert.Equal(t, "anyOf", problems[1].Keyword)
}

func TestValidateDocument_AnyOfNoMatch(t *testing.T) {
	schema := mustSchema(t, `{"anyOf": [{"type": "string"}, {"type": "number"}]}`)
	v := NewValidator("draft-07", Options{})
	problems := v.ValidateDocument(boolNode(true), schema)
	require.NotEmpty(t, problems)
	assert.Equal(t, "anyOf", problems[len(problems)-1].Keyword)
}

func TestValidateDocument_OneOfExclusiveMatch(t *testing.T) {
	schema := mustSchema(t, `{"oneOf": [{"type": "number", "multipleOf": 3}, {"type": "number", "multipleOf": 5}]}`)
	v := NewValidator("draft-07", Options{})

	assert.Empty(t, v.ValidateDocument(numNode(9, true), schema))
	assert.Empty(t, v.ValidateDocument(numNode(10, true), schema))

	problems := v.ValidateDocument(numNode(15, true), schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "oneOf", problems[0].Keyword)
	assert.Contains(t, problems[0].Message, "more than one")
}

func TestValidateDocument_Not(t *testing.T) {
	schema := mustSchema(t, `{"not": {"type": "string"}}`)
	v := NewValidator("draft-07", Options{})

	assert.Empty(t, v.ValidateDocument(numNode(1, true), schema))

	problems := v.ValidateDocument(strNode("x"), schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "not", problems[0].Keyword)
}

func TestValidateDocument_IfThenElse(t *testing.T) {
	schema := mustSchema(t, `{
		"if": {"properties": {"kind": {"const": "a"}}},
		"then": {"required": ["x"]},
		"else": {"required": ["y"]}
	}`)
	v := NewValidator("draft-07", Options{})

	problems := v.ValidateDocument(objectNode(prop("kind", strNode("a"))), schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "required", problems[0].Keyword)
	assert.Equal(t, "x", problems[0].Data["property"])

	problems = v.ValidateDocument(objectNode(prop("kind", strNode("b"))), schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "y", problems[0].Data["property"])
}

func TestValidateDocument_AllOf(t *testing.T) {
	schema := mustSchema(t, `{"allOf": [{"type": "number"}, {"minimum": 10}]}`)
	v := NewValidator("draft-07", Options{})

	problems := v.ValidateDocument(numNode(5, true), schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "minimum", problems[0].Keyword)
}

func TestValidateDocument_UnevaluatedPropertiesDialectGated(t *testing.T) {
	schema := mustSchema(t, `{
		"type": "object",
		"properties": {"a": {"type": "string"}},
		"unevaluatedProperties": false
	}`)

	doc := objectNode(prop("a", strNode("x")), prop("b", strNode("y")))

	v07 := NewValidator("draft-07", Options{})
	assert.Empty(t, v07.ValidateDocument(doc, schema), "unevaluatedProperties does not exist before 2019-09")

	v2019 := NewValidator("2019-09", Options{})
	problems := v2019.ValidateDocument(doc, schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "unevaluatedProperties", problems[0].Keyword)
}

func TestValidateDocument_UnevaluatedPropertiesViaAllOf(t *testing.T) {
	schema := mustSchema(t, `{
		"type": "object",
		"allOf": [{"properties": {"a": {"type": "string"}}}],
		"unevaluatedProperties": false
	}`)
	v := NewValidator("2020-12", Options{})

	doc := objectNode(prop("a", strNode("x")))
	assert.Empty(t, v.ValidateDocument(doc, schema), "a property claimed via allOf counts as evaluated")
}

func TestValidateDocument_DependentRequired2019(t *testing.T) {
	schema := mustSchema(t, `{
		"type": "object",
		"dependentRequired": {"credit_card": ["billing_address"]}
	}`)
	v := NewValidator("2019-09", Options{})

	doc := objectNode(prop("credit_card", strNode("1234")))
	problems := v.ValidateDocument(doc, schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "dependentRequired", problems[0].Keyword)
}

func TestValidateDocument_DependenciesDraft07(t *testing.T) {
	schema := mustSchema(t, `{
		"type": "object",
		"dependencies": {"credit_card": ["billing_address"]}
	}`)
	v := NewValidator("draft-07", Options{})

	doc := objectNode(prop("credit_card", strNode("1234")))
	problems := v.ValidateDocument(doc, schema)
	require.Len(t, problems, 1)
	assert.Equal(t, "dependencies", problems[0].Keyword)
}

func TestValidateDocument_DeprecationHint(t *testing.T) {
	schema := mustSchema(t, `{"type": "string", "deprecated": true}`)
	v := NewValidator("draft-07", Options{})
	problems := v.ValidateDocument(strNode("x"), schema)
	require.Len(t, problems, 1)
	assert.Equal(t, SeverityHint, problems[0].Severity)
	assert.False(t, problems[0].Severity == SeverityError)
}

func TestValidateDocument_DialectOverride(t *testing.T) {
	schema := mustSchema(t, `{
		"_dialect": "draft-04",
		"type": "number", "minimum": 5, "exclusiveMinimum": true
	}`)
	v := NewValidator("draft-07", Options{})

	problems := v.ValidateDocument(numNode(5, true), schema)
	require.Len(t, problems, 1, "the _dialect override should make this schema's exclusiveMinimum a boolean flag even though the Validator itself is draft-07")
	assert.Equal(t, "exclusiveMinimum", problems[0].Keyword)
}

func TestValidateDocument_CallFromAutoCompleteRelaxesConst(t *testing.T) {
	schema := mustSchema(t, `{"const": "enabled"}`)
	v := NewValidator("draft-07", Options{CallFromAutoComplete: true})
	assert.Empty(t, v.ValidateDocument(strNode("ena"), schema))

	strict := NewValidator("draft-07", Options{})
	problems := strict.ValidateDocument(strNode("ena"), schema)
	require.Len(t, problems, 1)
}

func TestValidateDocument_BooleanSchemas(t *testing.T) {
	allowAll := mustSchema(t, `true`)
	denyAll := mustSchema(t, `false`)
	v := NewValidator("draft-07", Options{})

	assert.Empty(t, v.ValidateDocument(strNode("anything"), allowAll))

	problems := v.ValidateDocument(strNode("anything"), denyAll)
	require.Len(t, problems, 1)
	assert.Equal(t, "false", problems[0].Keyword)
}

func TestGetMatchingSchemas(t *testing.T) {
	schema := mustSchema(t, `{
		"type": "object",
		"properties": {"name": {"type": "string"}}
	}`)
	v := NewValidator("draft-07", Options{})

	nameValue := strNode("bob")
	nameValue.Offset, nameValue.Length = 10, 3
	doc := objectNode(&Property{Key: strNode("name"), Value: nameValue})
	doc.Offset, doc.Length = 0, 20

	matches := v.GetMatchingSchemas(doc, schema, 11, nil)
	require.NotEmpty(t, matches)
	found := false
	for _, m := range matches {
		if m.Node == nameValue {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGetMatchingSchemas_Exclude(t *testing.T) {
	schema := mustSchema(t, `{
		"type": "object",
		"properties": {"name": {"type": "string"}}
	}`)
	v := NewValidator("draft-07", Options{})

	nameValue := strNode("bob")
	nameValue.Offset, nameValue.Length = 10, 3
	doc := objectNode(&Property{Key: strNode("name"), Value: nameValue})
	doc.Offset, doc.Length = 0, 20

	matches := v.GetMatchingSchemas(doc, schema, 11, nameValue)
	for _, m := range matches {
		assert.NotEqual(t, nameValue, m.Node, "excluded node must not appear in the results")
	}
}
