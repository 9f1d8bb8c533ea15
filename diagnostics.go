package jsonschema

import "strings"

// Diagnostic is the host-facing form of a Problem: a Range instead of a
// byte span, and a rendered "source" label identifying which schema
// produced it, the way an editor attributes a squiggle to "yaml-schema:
// https://json.schemastore.org/foo.json" rather than a bare message.
type Diagnostic struct {
	Range    Range
	Message  string
	Severity Severity
	Source   string
	Data     map[string]any
}

// ToDiagnostics converts accumulated Problems into Diagnostics against doc,
// merging duplicate messages at the same Range (common when oneOf arbitrates
// between several close schemas and multiple branches fail the same way)
// and labeling each with its originating schema.
func ToDiagnostics(problems []Problem, doc TextDocument, defaultURI string) []Diagnostic {
	type key struct {
		r Range
		m string
	}
	merged := map[key]*Diagnostic{}
	order := make([]key, 0, len(problems))

	for _, p := range problems {
		if p.Node == nil {
			continue
		}
		r := Range{Start: doc.PositionAt(p.Node.Offset), End: doc.PositionAt(p.Node.End())}
		k := key{r: r, m: p.Message}
		source := schemaSource(p.Schema, defaultURI)

		if existing, ok := merged[k]; ok {
			if !strings.Contains(existing.Source, source) {
				existing.Source = existing.Source + " | " + source
			}
			continue
		}
		d := &Diagnostic{Range: r, Message: p.Message, Severity: p.Severity, Source: source, Data: p.Data}
		merged[k] = d
		order = append(order, k)
	}

	out := make([]Diagnostic, 0, len(order))
	for _, k := range order {
		out = append(out, *merged[k])
	}
	return out
}

// schemaSource renders the "yaml-schema: <label>" attribution an editor
// shows alongside a diagnostic, preferring the schema's own title, then its
// url/$id, then the validator's configured default URI.
func schemaSource(s *Schema, defaultURI string) string {
	label := defaultURI
	switch {
	case s == nil:
	case s.Title != nil && *s.Title != "":
		label = *s.Title
	case s.URL != nil && *s.URL != "":
		label = *s.URL
	case s.ID != "":
		label = s.ID
	}
	if label == "" {
		return "yaml-schema"
	}
	return "yaml-schema: " + label
}
