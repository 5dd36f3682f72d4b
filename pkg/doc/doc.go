package doc

import (
	"strings"
	"unicode/utf8"
)

// Document is the markdown source currently held by the editor, plus the
// path it was loaded from (empty for unsaved buffers).
type Document struct {
	Path string
	Text string
}

// IsBlank reports whether the document is empty or whitespace-only.
func (d Document) IsBlank() bool {
	return strings.TrimSpace(d.Text) == ""
}

// Span is a half-open character range [Start, End) over a document's text.
// Offsets count runes, matching cursor positions in the editor.
type Span struct {
	Start int
	End   int
}

// IsEmpty reports whether the span selects nothing.
func (s Span) IsEmpty() bool { return s.End <= s.Start }

// Len returns the number of selected characters.
func (s Span) Len() int {
	if s.IsEmpty() {
		return 0
	}
	return s.End - s.Start
}

// Clamp constrains the span to the given text length and normalizes a
// reversed span. The result is always valid for Extract/Splice on text of
// that length.
func (s Span) Clamp(text string) Span {
	n := utf8.RuneCountInString(text)
	out := s
	if out.Start > out.End {
		out.Start, out.End = out.End, out.Start
	}
	if out.Start < 0 {
		out.Start = 0
	}
	if out.End > n {
		out.End = n
	}
	if out.Start > n {
		out.Start = n
	}
	if out.End < out.Start {
		out.End = out.Start
	}
	return out
}

// Extract returns the selected text. The span is clamped first, so stale
// offsets from a shrunken document never panic.
func (s Span) Extract(text string) string {
	s = s.Clamp(text)
	if s.IsEmpty() {
		return ""
	}
	r := []rune(text)
	return string(r[s.Start:s.End])
}

// Splice replaces the span within text with replacement and returns the
// resulting string.
func (s Span) Splice(text, replacement string) string {
	s = s.Clamp(text)
	r := []rune(text)
	var b strings.Builder
	b.Grow(len(text) + len(replacement))
	b.WriteString(string(r[:s.Start]))
	b.WriteString(replacement)
	b.WriteString(string(r[s.End:]))
	return b.String()
}

// Append joins extra onto text separated by exactly one blank line.
func Append(text, extra string) string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return extra
	}
	return text + "\n\n" + extra
}

// Title derives a display title from the document: the first non-empty
// line with leading markdown heading markers stripped.
func (d Document) Title() string {
	for _, line := range strings.Split(d.Text, "\n") {
		t := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
		if t != "" {
			return t
		}
	}
	return "untitled"
}

// WordCount counts whitespace-separated words.
func (d Document) WordCount() int {
	return len(strings.Fields(d.Text))
}
