package jsonschema

import "strings"

const suppressDirective = "yaml-lint-disable"

// ApplySuppressions filters problems per the `# yaml-lint-disable [specifiers]`
// comment convention: a comment on the line immediately before a
// problem's reported line suppresses that problem if the comment names no
// specifiers (suppress everything on the next line) or if one of its
// specifiers is a substring of the problem's message. The filter is
// monotone, it can only remove problems, never add them, and a problem
// reported on line 0 (which has no preceding line to carry a directive) is
// never suppressed.
//
// commentsByLine maps a zero-based line number to the raw text of every
// comment found on that line, as the host's parser collected them; this
// validator does not parse comments itself since the AST model carries no
// comment nodes.
func ApplySuppressions(problems []Problem, doc TextDocument, commentsByLine map[int]string) []Problem {
	if len(commentsByLine) == 0 {
		return problems
	}

	out := make([]Problem, 0, len(problems))
	for _, p := range problems {
		if suppressed(p, doc, commentsByLine) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func suppressed(p Problem, doc TextDocument, commentsByLine map[int]string) bool {
	if p.Node == nil {
		return false
	}
	line := doc.PositionAt(p.Node.Offset).Line
	if line <= 0 {
		return false
	}
	comment, ok := commentsByLine[line-1]
	if !ok {
		return false
	}
	specifiers, ok := parseSuppressDirective(comment)
	if !ok {
		return false
	}
	if len(specifiers) == 0 {
		return true
	}
	message := strings.ToLower(p.Message)
	for _, spec := range specifiers {
		if strings.Contains(message, strings.ToLower(spec)) {
			return true
		}
	}
	return false
}

func parseSuppressDirective(comment string) ([]string, bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "#"))
	if !strings.HasPrefix(strings.ToLower(trimmed), suppressDirective) {
		return nil, false
	}
	rest := strings.TrimSpace(trimmed[len(suppressDirective):])
	if rest == "" {
		return nil, true
	}
	parts := strings.Split(rest, ",")
	specifiers := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			specifiers = append(specifiers, s)
		}
	}
	return specifiers, true
}
