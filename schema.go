package jsonschema

import (
	"maps"
	"regexp"
	"slices"
	"strconv"

	"github.com/goccy/go-json"
)

// knownSchemaFields lists every keyword this validator understands, plus the
// editor-facing extensions named in the data model. Anything else found on a
// schema object is preserved verbatim in Extra rather than silently dropped,
// mirroring how a real schema service round-trips author-supplied metadata
// it doesn't recognize.
var knownSchemaFields = map[string]struct{}{
	"$id": {}, "$schema": {}, "$ref": {}, "$dynamicRef": {}, "$anchor": {},
	"$dynamicAnchor": {}, "$defs": {}, "definitions": {}, "$comment": {},

	"allOf": {}, "anyOf": {}, "oneOf": {}, "not": {}, "if": {}, "then": {}, "else": {},
	"dependentSchemas": {}, "dependencies": {}, "prefixItems": {}, "items": {}, "additionalItems": {},
	"contains": {}, "properties": {}, "patternProperties": {}, "additionalProperties": {},
	"propertyNames": {}, "unevaluatedItems": {}, "unevaluatedProperties": {},

	"type": {}, "enum": {}, "const": {}, "multipleOf": {}, "maximum": {},
	"exclusiveMaximum": {}, "minimum": {}, "exclusiveMinimum": {}, "maxLength": {},
	"minLength": {}, "pattern": {}, "maxItems": {}, "minItems": {}, "uniqueItems": {},
	"maxContains": {}, "minContains": {}, "maxProperties": {}, "minProperties": {},
	"required": {}, "dependentRequired": {},

	"format":           {},
	"contentEncoding":  {},
	"contentMediaType": {},
	"contentSchema":    {},

	"title": {}, "description": {}, "default": {}, "deprecated": {}, "readOnly": {},
	"writeOnly": {}, "examples": {},

	// Editor-facing extensions.
	"errorMessage": {}, "patternErrorMessage": {}, "deprecationMessage": {},
	"defaultSnippets": {}, "markdownDescription": {}, "enumDescriptions": {},
	"url": {}, "closestTitle": {}, "_dialect": {}, "filePatternAssociation": {},
	"doNotSuggest": {},
}

// Schema is a JSON Schema document node. Unlike a compiler-owned schema
// object that resolves $ref/$dynamicRef/$id against a live registry, a
// Schema here arrives already fully resolved: the validator
// never looks anything up by URI, it only walks the tree it was given.
type Schema struct {
	compiledPattern *regexp.Regexp

	ID     string             `json:"$id,omitempty"`
	Schema string             `json:"$schema,omitempty"`
	Ref    string             `json:"$ref,omitempty"`
	Defs   map[string]*Schema `json:"$defs,omitempty"`

	// Boolean holds the value when this schema is the literal `true`/`false`
	// form. IsAllowAll/IsDenyAll are the normalized accessors validator.go
	// uses rather than comparing this field directly.
	Boolean *bool `json:"-"`

	AllOf []*Schema `json:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`

	If   *Schema `json:"if,omitempty"`
	Then *Schema `json:"then,omitempty"`
	Else *Schema `json:"else,omitempty"`

	DependentSchemas  map[string]*Schema          `json:"dependentSchemas,omitempty"`
	Dependencies      map[string]*DependencyValue `json:"dependencies,omitempty"`
	DependentRequired map[string][]string         `json:"dependentRequired,omitempty"`

	PrefixItems     []*Schema `json:"prefixItems,omitempty"`
	Items           *Schema   `json:"items,omitempty"`
	AdditionalItems *Schema   `json:"additionalItems,omitempty"`
	Contains        *Schema   `json:"contains,omitempty"`
	MinContains     *float64  `json:"minContains,omitempty"`
	MaxContains     *float64  `json:"maxContains,omitempty"`

	Properties           *SchemaMap `json:"properties,omitempty"`
	PatternProperties    *SchemaMap `json:"patternProperties,omitempty"`
	AdditionalProperties *Schema    `json:"additionalProperties,omitempty"`
	PropertyNames        *Schema    `json:"propertyNames,omitempty"`

	UnevaluatedItems      *Schema `json:"unevaluatedItems,omitempty"`
	UnevaluatedProperties *Schema `json:"unevaluatedProperties,omitempty"`

	Type  SchemaType  `json:"type,omitempty"`
	Enum  []any       `json:"enum,omitempty"`
	Const *ConstValue `json:"const,omitempty"`

	MultipleOf *Rat `json:"multipleOf,omitempty"`
	Maximum    *Rat `json:"maximum,omitempty"`
	Minimum    *Rat `json:"minimum,omitempty"`

	// ExclusiveMaximum/ExclusiveMinimum are decoded by hand in UnmarshalJSON,
	// not by the Alias pass: draft-04 writes these as booleans (see
	// ExclusiveMinimumBool/ExclusiveMaximumBool below) and Rat.UnmarshalJSON
	// has no bool case, so leaving the json tag live would fail the whole
	// schema decode on a draft-04 boolean-exclusive-bound document.
	ExclusiveMaximum *Rat `json:"-"`
	ExclusiveMinimum *Rat `json:"-"`

	// Draft-04 boolean exclusive-bound flags: only meaningful
	// when the Validator's Dialect is Draft04, where exclusiveMinimum and
	// exclusiveMaximum modify minimum/maximum rather than standing alone.
	ExclusiveMinimumBool *bool `json:"-"`
	ExclusiveMaximumBool *bool `json:"-"`

	MaxLength *float64 `json:"maxLength,omitempty"`
	MinLength *float64 `json:"minLength,omitempty"`
	Pattern   *string  `json:"pattern,omitempty"`
	Format    *string  `json:"format,omitempty"`

	MaxItems    *float64 `json:"maxItems,omitempty"`
	MinItems    *float64 `json:"minItems,omitempty"`
	UniqueItems *bool    `json:"uniqueItems,omitempty"`

	MaxProperties *float64 `json:"maxProperties,omitempty"`
	MinProperties *float64 `json:"minProperties,omitempty"`
	Required      []string `json:"required,omitempty"`

	ContentEncoding  *string `json:"contentEncoding,omitempty"`
	ContentMediaType *string `json:"contentMediaType,omitempty"`
	ContentSchema    *Schema `json:"contentSchema,omitempty"`

	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Default     any     `json:"default,omitempty"`
	Deprecated  *bool   `json:"deprecated,omitempty"`
	ReadOnly    *bool   `json:"readOnly,omitempty"`
	WriteOnly   *bool   `json:"writeOnly,omitempty"`
	Examples    []any   `json:"examples,omitempty"`

	// Editor extensions.
	ErrorMessage           *string  `json:"errorMessage,omitempty"`
	PatternErrorMessage    *string  `json:"patternErrorMessage,omitempty"`
	DeprecationMessage     *string  `json:"deprecationMessage,omitempty"`
	DefaultSnippets        []any    `json:"defaultSnippets,omitempty"`
	MarkdownDescription    *string  `json:"markdownDescription,omitempty"`
	EnumDescriptions       []string `json:"enumDescriptions,omitempty"`
	URL                    *string  `json:"url,omitempty"`
	Dialect                *string  `json:"_dialect,omitempty"`
	FilePatternAssociation *string  `json:"filePatternAssociation,omitempty"`
	DoNotSuggest           *bool    `json:"doNotSuggest,omitempty"`

	// Extra keywords this validator does not understand, preserved for
	// round-tripping by a schema service that re-serializes schemas.
	Extra map[string]any `json:"-"`
}

// DependencyValue represents one entry of a draft-07 "dependencies" map,
// which is either a list of required property names or a schema.
type DependencyValue struct {
	PropertyNames []string
	Schema        *Schema
}

func (d *DependencyValue) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		d.PropertyNames = names
		return nil
	}
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	d.Schema = &s
	return nil
}

// IsAllowAll reports whether a sub-schema slot (additionalProperties,
// items, unevaluatedProperties, ...) is the normalized "true"/absent form.
func (s *Schema) IsAllowAll() bool {
	return s == nil || (s.Boolean != nil && *s.Boolean)
}

// IsDenyAll reports whether a sub-schema slot is the normalized "false" form.
func (s *Schema) IsDenyAll() bool {
	return s != nil && s.Boolean != nil && !*s.Boolean
}

// EffectiveTitle returns the schema's own title, used when propagating
// closestTitle down the tree (validator.go keeps this in a side table
// instead of mutating Schema, to keep a Schema tree safely shareable).
func (s *Schema) EffectiveTitle() string {
	if s != nil && s.Title != nil {
		return *s.Title
	}
	return ""
}

// newSchema parses a JSON schema document into a Schema tree.
func newSchema(jsonSchema []byte) (*Schema, error) {
	schema := &Schema{}
	if err := json.Unmarshal(jsonSchema, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// CompileSchemaBytes parses a JSON-encoded schema document. The name
// mirrors what hosts expect from a schema-loading entry point even though
// no $ref/anchor resolution happens here: that is an external
// collaborator's job, performed before the bytes reach this function.
func CompileSchemaBytes(data []byte) (*Schema, error) {
	return newSchema(data)
}

// ValidateRegexSyntax validates every pattern/patternProperties regular
// expression in the schema tree before it is used to validate any document,
// so a malformed schema is reported once up front rather than failing
// closed silently on every document.
func (s *Schema) ValidateRegexSyntax() error {
	if s == nil {
		return nil
	}
	visited := make(map[*Schema]bool)
	errs := s.collectRegexErrors(nil, visited)
	if len(errs) == 0 {
		return nil
	}
	return joinErrors(append([]error{ErrRegexValidation}, errs...))
}

func (s *Schema) collectRegexErrors(pathTokens []string, visited map[*Schema]bool) []error {
	if s == nil || visited[s] {
		return nil
	}
	visited[s] = true

	var errs []error
	if s.Pattern != nil {
		if err := compilePattern(*s.Pattern); err != nil {
			errs = append(errs, &RegexPatternError{
				Keyword: "pattern", Location: jsonPointerPath(slices.Concat(pathTokens, []string{"pattern"})),
				Pattern: *s.Pattern, Err: err,
			})
		}
	}
	if s.PatternProperties != nil {
		for pattern, sub := range *s.PatternProperties {
			tokens := slices.Concat(pathTokens, []string{"patternProperties", pattern})
			if err := compilePattern(pattern); err != nil {
				errs = append(errs, &RegexPatternError{
					Keyword: "patternProperties", Location: jsonPointerPath(tokens), Pattern: pattern, Err: err,
				})
				continue
			}
			errs = append(errs, sub.collectRegexErrors(tokens, visited)...)
		}
	}

	addSchema := func(child *Schema, token string) {
		if child == nil {
			return
		}
		errs = append(errs, child.collectRegexErrors(slices.Concat(pathTokens, []string{token}), visited)...)
	}
	addSchemaMap := func(m map[string]*Schema, prefix string) {
		for key, sub := range m {
			errs = append(errs, sub.collectRegexErrors(slices.Concat(pathTokens, []string{prefix, key}), visited)...)
		}
	}
	addSchemaSlice := func(children []*Schema, prefix string) {
		for i, child := range children {
			errs = append(errs, child.collectRegexErrors(slices.Concat(pathTokens, []string{prefix, strconv.Itoa(i)}), visited)...)
		}
	}

	if s.Properties != nil {
		addSchemaMap(map[string]*Schema(*s.Properties), "properties")
	}
	addSchemaMap(s.Defs, "$defs")
	addSchemaMap(s.DependentSchemas, "dependentSchemas")

	addSchema(s.AdditionalProperties, "additionalProperties")
	addSchema(s.UnevaluatedProperties, "unevaluatedProperties")
	addSchema(s.UnevaluatedItems, "unevaluatedItems")
	addSchema(s.PropertyNames, "propertyNames")
	addSchema(s.ContentSchema, "contentSchema")
	addSchema(s.Items, "items")
	addSchema(s.AdditionalItems, "additionalItems")
	addSchema(s.Contains, "contains")
	addSchema(s.Not, "not")
	addSchema(s.If, "if")
	addSchema(s.Then, "then")
	addSchema(s.Else, "else")

	addSchemaSlice(s.PrefixItems, "prefixItems")
	addSchemaSlice(s.AllOf, "allOf")
	addSchemaSlice(s.AnyOf, "anyOf")
	addSchemaSlice(s.OneOf, "oneOf")

	return errs
}

func compilePattern(pattern string) error {
	if pattern == "" {
		return nil
	}
	_, err := regexp.Compile(pattern)
	return err
}

// CompiledPattern returns the compiled s.Pattern. A Schema decoded by
// UnmarshalJSON carries it precompiled; for a Schema built in code it is
// compiled on each call and not stored, so validation never writes to a
// Schema. Compilation fails closed (see compileSafeRegexp in string.go)
// rather than propagating the error, so a malformed pattern never panics
// validation.
func (s *Schema) CompiledPattern() *regexp.Regexp {
	if s.Pattern == nil {
		return nil
	}
	if s.compiledPattern != nil {
		return s.compiledPattern
	}
	return compileSafeRegexp(*s.Pattern)
}

// UnmarshalJSON decodes a schema document, handling the boolean-schema form
// and the draft-07-vs-2020-12 "items" polymorphism:
// an array value maps to PrefixItems (tuple form, paired with
// additionalItems), an object value maps to Items (list form).
func (s *Schema) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		s.Boolean = &b
		return nil
	}

	type Alias Schema
	aux := &struct {
		Items json.RawMessage `json:"items,omitempty"`
		*Alias
	}{Alias: (*Alias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(aux.Items) > 0 {
		trimmed := trimLeadingSpace(aux.Items)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(aux.Items, &s.PrefixItems); err != nil {
				return err
			}
		} else {
			if err := json.Unmarshal(aux.Items, &s.Items); err != nil {
				return err
			}
		}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if defsData, ok := raw["definitions"]; ok && s.Defs == nil {
		var defs map[string]*Schema
		if err := json.Unmarshal(defsData, &defs); err != nil {
			return err
		}
		s.Defs = defs
	}

	if constData, ok := raw["const"]; ok {
		s.Const = &ConstValue{}
		if err := s.Const.UnmarshalJSON(constData); err != nil {
			return err
		}
	}

	// exclusiveMinimum/exclusiveMaximum take either form depending on
	// dialect: draft-04 writes them as booleans that modify minimum/maximum,
	// draft-07+ writes them as independent numeric bounds.
	// Try the boolean form first; fall back to the numeric Rat form.
	// number.go's draft-04 path consumes the bool fields.
	if v, ok := raw["exclusiveMinimum"]; ok {
		var asBool bool
		if err := json.Unmarshal(v, &asBool); err == nil {
			s.ExclusiveMinimumBool = &asBool
		} else {
			s.ExclusiveMinimum = &Rat{}
			if err := s.ExclusiveMinimum.UnmarshalJSON(v); err != nil {
				return err
			}
		}
	}
	if v, ok := raw["exclusiveMaximum"]; ok {
		var asBool bool
		if err := json.Unmarshal(v, &asBool); err == nil {
			s.ExclusiveMaximumBool = &asBool
		} else {
			s.ExclusiveMaximum = &Rat{}
			if err := s.ExclusiveMaximum.UnmarshalJSON(v); err != nil {
				return err
			}
		}
	}

	if s.Pattern != nil {
		s.compiledPattern = compileSafeRegexp(*s.Pattern)
	}

	return s.collectExtraFields(data)
}

func trimLeadingSpace(b []byte) []byte {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t' || b[i] == '\n' || b[i] == '\r') {
		i++
	}
	return b[i:]
}

func (s *Schema) collectExtraFields(raw []byte) error {
	var all map[string]any
	if err := json.Unmarshal(raw, &all); err != nil {
		return err
	}
	for key := range knownSchemaFields {
		delete(all, key)
	}
	if len(all) > 0 {
		s.Extra = all
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Schema, round-tripping the
// boolean form and the manually-handled const field.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.Boolean != nil {
		return json.Marshal(*s.Boolean)
	}

	type Alias Schema
	alias := (*Alias)(s)
	data, err := json.Marshal(alias)
	if err != nil {
		return nil, err
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	if s.Const != nil {
		result["const"] = s.Const.Value
	}
	if s.ExclusiveMinimumBool != nil {
		result["exclusiveMinimum"] = *s.ExclusiveMinimumBool
	} else if s.ExclusiveMinimum != nil {
		result["exclusiveMinimum"] = s.ExclusiveMinimum
	}
	if s.ExclusiveMaximumBool != nil {
		result["exclusiveMaximum"] = *s.ExclusiveMaximumBool
	} else if s.ExclusiveMaximum != nil {
		result["exclusiveMaximum"] = s.ExclusiveMaximum
	}
	maps.Copy(result, s.Extra)
	return json.Marshal(result)
}

// SchemaMap is a map of property/pattern name to sub-schema.
type SchemaMap map[string]*Schema

func (sm *SchemaMap) UnmarshalJSON(data []byte) error {
	m := make(map[string]*Schema)
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*sm = SchemaMap(m)
	return nil
}

// SchemaType holds one or more JSON Schema primitive type names.
type SchemaType []string

func (st SchemaType) MarshalJSON() ([]byte, error) {
	if len(st) == 1 {
		return json.Marshal(st[0])
	}
	return json.Marshal([]string(st))
}

func (st *SchemaType) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*st = SchemaType{single}
		return nil
	}
	var multi []string
	if err := json.Unmarshal(data, &multi); err == nil {
		*st = SchemaType(multi)
		return nil
	}
	return ErrInvalidJSONSchemaType
}

// ConstValue distinguishes an explicit `"const": null` from the absence of
// a const keyword entirely.
type ConstValue struct {
	Value any
	IsSet bool
}

func (cv *ConstValue) UnmarshalJSON(data []byte) error {
	if cv == nil {
		return ErrNilConstValue
	}
	cv.IsSet = true
	if string(data) == "null" {
		cv.Value = nil
		return nil
	}
	return json.Unmarshal(data, &cv.Value)
}

func (cv ConstValue) MarshalJSON() ([]byte, error) {
	if cv.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(cv.Value)
}

func jsonPointerPath(tokens []string) string {
	out := "#"
	for _, t := range tokens {
		out += "/" + escapeJSONPointerToken(t)
	}
	return out
}

func escapeJSONPointerToken(t string) string {
	out := make([]byte, 0, len(t))
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case '~':
			out = append(out, '~', '0')
		case '/':
			out = append(out, '~', '1')
		default:
			out = append(out, t[i])
		}
	}
	return string(out)
}

func joinErrors(errs []error) error {
	return multiError(errs)
}

type multiError []error

func (m multiError) Error() string {
	if len(m) == 0 {
		return ""
	}
	s := m[0].Error()
	for _, e := range m[1:] {
		s += "; " + e.Error()
	}
	return s
}

func (m multiError) Unwrap() []error { return m }
