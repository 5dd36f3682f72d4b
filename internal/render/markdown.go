// Package render turns markdown into the two preview forms the tool needs:
// ANSI text for the editor's preview pane (glamour) and HTML for the
// render/serve commands (goldmark). A renderer failure never propagates;
// callers always get something to display.
package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Terminal renders markdown for the preview pane, word-wrapped to width.
// On failure it degrades to an inline error message so the editor keeps
// running.
func Terminal(markdown string, width int) string {
	if width < 10 {
		width = 10
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return renderFailure(err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return renderFailure(err)
	}
	return out
}

func renderFailure(err error) string {
	return fmt.Sprintf("(preview unavailable: %v)", err)
}
