package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// md is built once; goldmark converters are safe for concurrent use.
// GFM plus hard line breaks matches the preview semantics of the editor:
// a single newline in the source is a visible break in the preview.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(ghtml.WithHardWraps()),
)

// HTML converts markdown to an HTML fragment.
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion: %w", err)
	}
	return buf.String(), nil
}

// HTMLOrError converts markdown and substitutes an inline error block when
// conversion fails, mirroring the terminal renderer's degradation.
func HTMLOrError(markdown string) string {
	out, err := HTML(markdown)
	if err != nil {
		return "<pre>preview unavailable: " + html.EscapeString(err.Error()) + "</pre>"
	}
	return out
}

// Page wraps an HTML fragment in a minimal standalone document. A positive
// refreshSeconds adds a meta refresh so a browser tracks file changes.
func Page(title, body string, refreshSeconds int) string {
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	if refreshSeconds > 0 {
		fmt.Fprintf(&b, "<meta http-equiv=\"refresh\" content=\"%d\">\n", refreshSeconds)
	}
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("<style>body{max-width:48rem;margin:2rem auto;padding:0 1rem;font-family:sans-serif;line-height:1.6}pre{overflow-x:auto;padding:.5rem;background:#f4f4f4}</style>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
