package jsonschema

import "strings"

// Dialect selects which JSON Schema draft's keyword semantics apply. A
// single Validator carries a Dialect field rather than the four variants
// being separate struct types: every keyword's
// evaluation branches on it internally instead of the caller selecting a
// different vtable, which keeps dispatch to one switch per keyword instead
// of one interface call per keyword.
type Dialect int

const (
	Draft04 Dialect = iota
	Draft07
	Draft2019
	Draft2020
)

func (d Dialect) String() string {
	switch d {
	case Draft04:
		return "draft-04"
	case Draft07:
		return "draft-07"
	case Draft2019:
		return "2019-09"
	case Draft2020:
		return "2020-12"
	default:
		return "unknown"
	}
}

// SupportsUnevaluated reports whether this dialect defines
// unevaluatedProperties/unevaluatedItems/dependentSchemas/dependentRequired:
// 2019-09 and 2020-12 only.
func (d Dialect) SupportsUnevaluated() bool {
	return d == Draft2019 || d == Draft2020
}

// SupportsPrefixItems reports whether "items" takes the 2020-12 list form
// paired with prefixItems, as opposed to the draft-04/07/2019-09 tuple form
// where "items" itself is the array.
func (d Dialect) SupportsPrefixItems() bool {
	return d == Draft2020
}

// SupportsBooleanExclusiveBounds reports whether exclusiveMinimum/Maximum
// are booleans modifying minimum/maximum (draft-04) as opposed to
// standalone numeric bounds (draft-07 and later).
func (d Dialect) SupportsBooleanExclusiveBounds() bool {
	return d == Draft04
}

// dialectFromSchemaURI maps a "$schema" URI to the Dialect it identifies,
// falling back to Draft07 (the most common real-world default) when the URI
// is absent or unrecognized.
func dialectFromSchemaURI(uri string) Dialect {
	switch {
	case strings.Contains(uri, "draft-04"):
		return Draft04
	case strings.Contains(uri, "draft-07"):
		return Draft07
	case strings.Contains(uri, "2019-09"):
		return Draft2019
	case strings.Contains(uri, "2020-12"):
		return Draft2020
	default:
		return Draft07
	}
}

// ParseDialect maps a user-facing dialect name (as accepted by the CLI
// harness or a schema's "_dialect" override) to a Dialect, defaulting to
// Draft07 for an unrecognized or empty name.
func ParseDialect(name string) Dialect {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "draft-04", "draft4", "4":
		return Draft04
	case "draft-07", "draft7", "7":
		return Draft07
	case "2019-09", "draft2019-09", "2019":
		return Draft2019
	case "2020-12", "draft2020-12", "2020":
		return Draft2020
	default:
		return Draft07
	}
}

// NewValidator builds a Validator for the named dialect. An empty name
// resolves to Draft07.
func NewValidator(dialectName string, opts Options) *Validator {
	return &Validator{Dialect: ParseDialect(dialectName), Options: opts}
}

// effectiveSchema resolves a schema's "_dialect" sub-schema override:
// a schema embedded in a compound document (e.g. a Kubernetes
// CRD bundle mixing OpenAPI and plain JSON Schema fragments) can declare
// its own dialect that applies only while that sub-schema and its
// descendants are being validated.
func effectiveSchema(v *Validator, s *Schema) Dialect {
	if s != nil && s.Dialect != nil {
		return ParseDialect(*s.Dialect)
	}
	return v.Dialect
}
