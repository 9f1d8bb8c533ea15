package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSchemaBytes_BooleanForms(t *testing.T) {
	allowAll := mustSchema(t, `true`)
	assert.True(t, allowAll.IsAllowAll())
	assert.False(t, allowAll.IsDenyAll())

	denyAll := mustSchema(t, `false`)
	assert.True(t, denyAll.IsDenyAll())
	assert.False(t, denyAll.IsAllowAll())
}

func TestSchema_ExtraFieldsPreserved(t *testing.T) {
	schema := mustSchema(t, `{"type": "string", "x-custom-widget": "dropdown"}`)
	require.NotNil(t, schema.Extra)
	assert.Equal(t, "dropdown", schema.Extra["x-custom-widget"])

	out, err := schema.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(out), "x-custom-widget")
}

func TestSchema_DefinitionsFallBackToDefs(t *testing.T) {
	schema := mustSchema(t, `{"definitions": {"pos": {"type": "number", "minimum": 0}}}`)
	require.Contains(t, schema.Defs, "pos")
	assert.Equal(t, SchemaType{"number"}, schema.Defs["pos"].Type)
}

func TestSchema_ConstNullVsAbsent(t *testing.T) {
	withNull := mustSchema(t, `{"const": null}`)
	require.NotNil(t, withNull.Const)
	assert.True(t, withNull.Const.IsSet)
	assert.Nil(t, withNull.Const.Value)

	without := mustSchema(t, `{"type": "string"}`)
	assert.Nil(t, without.Const)
}

func TestSchema_ItemsArrayVsObjectPolymorphism(t *testing.T) {
	tuple := mustSchema(t, `{"items": [{"type": "string"}, {"type": "number"}]}`)
	assert.Len(t, tuple.PrefixItems, 2)
	assert.Nil(t, tuple.Items)

	list := mustSchema(t, `{"items": {"type": "string"}}`)
	assert.Nil(t, list.PrefixItems)
	require.NotNil(t, list.Items)
	assert.Equal(t, SchemaType{"string"}, list.Items.Type)
}

func TestSchema_ValidateRegexSyntaxReportsBadPattern(t *testing.T) {
	schema := mustSchema(t, `{
		"properties": {"name": {"pattern": "[unterminated"}}
	}`)
	err := schema.ValidateRegexSyntax()
	require.Error(t, err)

	var patternErr *RegexPatternError
	for _, e := range err.(multiError) {
		if pe, ok := e.(*RegexPatternError); ok {
			patternErr = pe
		}
	}
	require.NotNil(t, patternErr)
	assert.Equal(t, "#/properties/name/pattern", patternErr.Location)
}

func TestSchema_ValidateRegexSyntaxHandlesCycles(t *testing.T) {
	schema := mustSchema(t, `{"$defs": {"node": {"pattern": "^a+$"}}}`)
	// Manually introduce a cycle the way a resolved $ref graph could.
	schema.Defs["node"].AdditionalProperties = schema.Defs["node"]

	assert.NotPanics(t, func() {
		_ = schema.ValidateRegexSyntax()
	})
}

func TestParseDialect(t *testing.T) {
	assert.Equal(t, Draft04, ParseDialect("draft-04"))
	assert.Equal(t, Draft07, ParseDialect("draft-07"))
	assert.Equal(t, Draft2019, ParseDialect("2019-09"))
	assert.Equal(t, Draft2020, ParseDialect("2020-12"))
	assert.Equal(t, Draft07, ParseDialect(""), "an empty dialect name defaults to draft-07")
	assert.Equal(t, Draft07, ParseDialect("nonsense"))
}

func TestDialect_Capabilities(t *testing.T) {
	assert.True(t, Draft2019.SupportsUnevaluated())
	assert.True(t, Draft2020.SupportsUnevaluated())
	assert.False(t, Draft07.SupportsUnevaluated())

	assert.True(t, Draft2020.SupportsPrefixItems())
	assert.False(t, Draft2019.SupportsPrefixItems())

	assert.True(t, Draft04.SupportsBooleanExclusiveBounds())
	assert.False(t, Draft07.SupportsBooleanExclusiveBounds())
}

func TestNewRat_FormatRat(t *testing.T) {
	r := NewRat(3.5)
	require.NotNil(t, r)
	assert.Equal(t, "3.5", FormatRat(r))

	intRat := NewRat(10)
	assert.Equal(t, "10", FormatRat(intRat))

	assert.Equal(t, "null", FormatRat(nil))
}
