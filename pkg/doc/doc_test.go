package doc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanClamp(t *testing.T) {
	text := "Hello world"

	tests := []struct {
		name string
		in   Span
		want Span
	}{
		{"inside", Span{0, 5}, Span{0, 5}},
		{"reversed", Span{5, 0}, Span{0, 5}},
		{"negative start", Span{-3, 4}, Span{0, 4}},
		{"past end", Span{6, 40}, Span{6, 11}},
		{"fully past end", Span{40, 50}, Span{11, 11}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Clamp(text))
		})
	}
}

func TestSpanExtractAndSplice(t *testing.T) {
	text := "Hello world"

	assert.Equal(t, "Hello", Span{0, 5}.Extract(text))
	assert.Equal(t, "Hey there world", Span{0, 5}.Splice(text, "Hey there"))
	assert.Equal(t, "Hello planet", Span{6, 11}.Splice(text, "planet"))

	// Multibyte text is addressed by rune, not byte.
	uni := "héllo wörld"
	assert.Equal(t, "héllo", Span{0, 5}.Extract(uni))
	assert.Equal(t, "hey wörld", Span{0, 5}.Splice(uni, "hey"))

	// Stale span on a shrunken document degrades instead of panicking.
	assert.Equal(t, "rld", Span{8, 30}.Extract(text))
}

func TestAppend(t *testing.T) {
	assert.Equal(t, "Start.\n\nMore text.", Append("Start.", "More text."))
	assert.Equal(t, "Start.\n\nMore text.", Append("Start.\n", "More text."))
	assert.Equal(t, "More text.", Append("", "More text."))
}

func TestTitleAndWordCount(t *testing.T) {
	d := Document{Text: "# My Draft\n\nSome body text here."}
	assert.Equal(t, "My Draft", d.Title())
	// whitespace-separated fields, so the "#" marker counts as one
	assert.Equal(t, 7, d.WordCount())

	assert.Equal(t, "untitled", Document{Text: "  \n\n"}.Title())
	assert.True(t, Document{Text: " \t\n"}.IsBlank())
	assert.False(t, Document{Text: "x"}.IsBlank())
}

func TestHash(t *testing.T) {
	a := Document{Path: "/tmp/a.md", Text: "same content"}
	b := Document{Path: "/tmp/b.md", Text: "same content"}
	c := Document{Path: "/tmp/a.md", Text: "other content"}

	t.Run("path does not affect the hash", func(t *testing.T) {
		assert.Equal(t, a.Hash(), b.Hash())
	})
	t.Run("content does", func(t *testing.T) {
		assert.NotEqual(t, a.Hash(), c.Hash())
	})
	t.Run("text helper matches", func(t *testing.T) {
		assert.Equal(t, a.Hash(), HashText("same content"))
	})
}
