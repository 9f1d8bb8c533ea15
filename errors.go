package jsonschema

import "errors"

// Errors returned by schema document decoding (Schema.UnmarshalJSON and
// friends). These surface during schema loading, before any document
// validation begins.
var (
	// ErrInvalidJSONSchemaType is returned when the "type" keyword is
	// neither a string nor an array of strings.
	ErrInvalidJSONSchemaType = errors.New("invalid json schema type")

	// ErrNilConstValue is returned if UnmarshalJSON is invoked on a nil
	// *ConstValue receiver.
	ErrNilConstValue = errors.New("const value receiver is nil")

	// ErrUnsupportedRatValue is returned when a numeric schema keyword's
	// raw JSON value cannot be converted to *big.Rat (not a number or a
	// numeric string).
	ErrUnsupportedRatValue = errors.New("unsupported numeric value")

	// ErrInvalidRatValue is returned when a numeric string cannot be parsed
	// as an exact rational.
	ErrInvalidRatValue = errors.New("invalid numeric value")

	// ErrIPv6AddressNotEnclosed and ErrInvalidIPv6Address are returned while
	// parsing "uri"/"uri-reference" format values whose host looks like an
	// IPv6 literal.
	ErrIPv6AddressNotEnclosed = errors.New("ipv6 address is not enclosed in brackets")
	ErrInvalidIPv6Address     = errors.New("invalid ipv6 address")
)

// ErrRegexValidation wraps one or more RegexPatternError values found while
// validating a schema document's "pattern"/"patternProperties" regular
// expressions before any document is validated against it.
var ErrRegexValidation = errors.New("schema contains invalid regular expressions")

// RegexPatternError describes a single invalid regex found in a schema
// document, located by a JSON-Pointer-shaped path from the schema root.
type RegexPatternError struct {
	Keyword  string
	Location string
	Pattern  string
	Err      error
}

func (e *RegexPatternError) Error() string {
	return e.Keyword + " at " + e.Location + ": invalid pattern " + e.Pattern + ": " + e.Err.Error()
}

func (e *RegexPatternError) Unwrap() error { return e.Err }
