package jsonschema

// Options tunes validation behavior for the host environment. The zero value
// is the generic, non-Kubernetes, strict configuration.
type Options struct {
	// IsKubernetes selects the Kubernetes-flavored best-match arbitration
	// ordering for anyOf/oneOf: propertiesMatches takes priority
	// over enum/primary-value matches, reflecting how Kubernetes API objects
	// are commonly discriminated by which fields are present rather than by
	// an explicit enum discriminator.
	IsKubernetes bool

	// DisableAdditionalProperties, when true, treats every object schema as
	// if additionalProperties were false even when the schema omits it or
	// sets it to true. Used by hosts that want to flag unknown keys by
	// default regardless of what individual schemas declare.
	DisableAdditionalProperties bool

	// URI names the document being validated. The validator does not read
	// it; the fallback label for diagnostic "source" fields is the
	// defaultURI argument of ToDiagnostics.
	URI string

	// CallFromAutoComplete relaxes string/enum/const leaf comparisons to
	// prefix matching instead of exact matching, so a validation pass run
	// to shape completion candidates doesn't report a half-typed value as
	// invalid.
	CallFromAutoComplete bool
}
