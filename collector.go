package jsonschema

// ApplicableSchema records one schema that was found to apply to a node
// during validation, for hosts that need to know which sub-schemas matched
// a given document position (hover inspection, hole-shaped completion).
// Inverted marks a schema reached through a "not" branch: it matched, but
// its match means the document is invalid there.
type ApplicableSchema struct {
	Node    *Node
	Schema  *Schema
	Inverted bool
}

// SchemaCollector receives ApplicableSchema records during traversal. Most
// validation calls use noopCollector, paying nothing for the bookkeeping;
// GetMatchingSchemas passes a *collectingSchemas wired to a target offset.
type SchemaCollector interface {
	Add(match ApplicableSchema)
	// newSub returns a collector scoped to a descent into an exploratory
	// sub-schema (used by anyOf/oneOf/not/if branch exploration), isolated
	// from the parent's own recorded matches: the branch may be discarded,
	// so nothing it records should land in the parent's sink until the
	// caller knows the branch's fate. Use drainSub/spliceSub to fold its
	// matches back in once that's decided.
	newSub() SchemaCollector
}

type noopCollector struct{}

func (noopCollector) Add(ApplicableSchema)    {}
func (noopCollector) newSub() SchemaCollector { return noopCollector{} }

// NoopCollector is the shared no-op SchemaCollector instance, used whenever
// a caller only wants ValidationResult's diagnostics and doesn't care which
// schemas matched along the way.
var NoopCollector SchemaCollector = noopCollector{}

// collectingSchemas gathers every ApplicableSchema whose Node contains a
// target offset, powering hover and hole-completion queries.
// exclude, when set, drops records for that exact node so a host that
// already has the schema for a position can ask what else applies there.
type collectingSchemas struct {
	focusOffset int
	exclude     *Node
	matches     *[]ApplicableSchema
}

// NewCollectingSchemas returns a SchemaCollector that records every schema
// applicable to the document position at offset, other than exclude (which
// may be nil).
func NewCollectingSchemas(offset int, exclude *Node) (SchemaCollector, *[]ApplicableSchema) {
	matches := &[]ApplicableSchema{}
	return &collectingSchemas{focusOffset: offset, exclude: exclude, matches: matches}, matches
}

func (c *collectingSchemas) Add(match ApplicableSchema) {
	if match.Node != nil && !match.Node.Contains(c.focusOffset) {
		return
	}
	if c.exclude != nil && match.Node == c.exclude {
		return
	}
	*c.matches = append(*c.matches, match)
}

func (c *collectingSchemas) newSub() SchemaCollector {
	return &collectingSchemas{focusOffset: c.focusOffset, exclude: c.exclude, matches: &[]ApplicableSchema{}}
}

// drainSub returns the ApplicableSchema records a newSub() collector
// accumulated. Returns nil for a noopCollector sub, since nothing is ever
// recorded there.
func drainSub(sub SchemaCollector) []ApplicableSchema {
	cs, ok := sub.(*collectingSchemas)
	if !ok {
		return nil
	}
	return *cs.matches
}

// spliceSub folds a newSub() collector's recorded matches into dst, once
// the branch's fate (kept, discarded, inverted) is known. invert flips
// each match's Inverted flag, used when the branch being folded in is a
// "not" exploration: everything found while probing it matched, and that
// match is the reason the document is invalid there.
func spliceSub(dst SchemaCollector, sub SchemaCollector, invert bool) {
	for _, m := range drainSub(sub) {
		if invert {
			m.Inverted = !m.Inverted
		}
		dst.Add(m)
	}
}
