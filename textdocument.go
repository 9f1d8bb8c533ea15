package jsonschema

import "strings"

// plainTextDocument is a minimal TextDocument backed by precomputed line
// start offsets, the same bookkeeping an editor's document model keeps for
// O(log n) offset<->position conversion. Hosts with a richer document model
// (e.g. one already tracking incremental edits) implement TextDocument
// themselves; this is what the CLI harness and tests use.
type plainTextDocument struct {
	text       string
	lineStarts []int
}

// NewPlainTextDocument builds a TextDocument over a complete in-memory text,
// splitting on '\n' the way LSP's line/character positions are defined.
func NewPlainTextDocument(text string) TextDocument {
	doc := &plainTextDocument{text: text, lineStarts: []int{0}}
	for i, c := range text {
		if c == '\n' {
			doc.lineStarts = append(doc.lineStarts, i+1)
		}
	}
	return doc
}

func (d *plainTextDocument) GetText() string { return d.text }

func (d *plainTextDocument) PositionAt(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(d.text) {
		offset = len(d.text)
	}
	line := searchLineStart(d.lineStarts, offset)
	return Position{Line: line, Character: offset - d.lineStarts[line]}
}

func (d *plainTextDocument) OffsetAt(pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(d.lineStarts) {
		return len(d.text)
	}
	offset := d.lineStarts[pos.Line] + pos.Character
	lineEnd := len(d.text)
	if pos.Line+1 < len(d.lineStarts) {
		lineEnd = d.lineStarts[pos.Line+1]
	}
	if offset > lineEnd {
		offset = lineEnd
	}
	return offset
}

// searchLineStart finds the greatest index i such that lineStarts[i] <= offset.
func searchLineStart(lineStarts []int, offset int) int {
	lo, hi := 0, len(lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// LineComments extracts `# yaml-lint-disable ...` style comments from a raw
// YAML source text, keyed by zero-based line number, for use with
// ApplySuppressions. This is a textual scan rather than an AST walk since
// the AST model carries no comment nodes.
func LineComments(text string) map[int]string {
	out := map[int]string{}
	for i, line := range strings.Split(text, "\n") {
		idx := strings.IndexByte(line, '#')
		if idx == -1 {
			continue
		}
		out[i] = strings.TrimSpace(line[idx:])
	}
	return out
}
