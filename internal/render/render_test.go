package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLBasics(t *testing.T) {
	out, err := HTML("# Title\n\nSome **bold** text.")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestHTMLHardLineBreaks(t *testing.T) {
	out, err := HTML("line one\nline two")
	require.NoError(t, err)
	assert.Contains(t, out, "<br", "single newlines render as visible breaks")
}

func TestHTMLGFMTables(t *testing.T) {
	out, err := HTML("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")

	out, err = HTML("~~gone~~")
	require.NoError(t, err)
	assert.Contains(t, out, "<del>gone</del>")
}

func TestHTMLIdempotentForUnchangedInput(t *testing.T) {
	const src = "# Doc\n\n- one\n- two\n\n`code`"
	first, err := HTML(src)
	require.NoError(t, err)
	second, err := HTML(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestHTMLOrErrorNeverEmptyHands(t *testing.T) {
	out := HTMLOrError("plain text")
	assert.Contains(t, out, "plain text")
}

func TestPage(t *testing.T) {
	p := Page("My <Draft>", "<p>hi</p>", 2)
	assert.True(t, strings.HasPrefix(p, "<!doctype html>"))
	assert.Contains(t, p, "<title>My &lt;Draft&gt;</title>")
	assert.Contains(t, p, `content="2"`)
	assert.Contains(t, p, "<p>hi</p>")

	assert.NotContains(t, Page("t", "b", 0), "http-equiv")
}
