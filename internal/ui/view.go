package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	paneFocusStyle = paneStyle.
			BorderForeground(lipgloss.Color("62"))
	paneTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading…"
	}

	editor := m.renderPane("editor", m.ta.View(), m.focus == focusEditor)
	previewTitle := "preview"
	if m.summary != "" {
		previewTitle = "preview · summary"
	}
	preview := m.renderPane(previewTitle, m.preview.View(), m.focus == focusPreview)

	body := lipgloss.JoinHorizontal(lipgloss.Top, editor, preview)
	if m.picker.active {
		body = lipgloss.Place(m.width, lipgloss.Height(body), lipgloss.Center, lipgloss.Center, m.picker.view())
	}

	return body + "\n" + m.statusLine() + "\n" + m.helpLine()
}

func (m Model) renderPane(title, content string, focused bool) string {
	style := paneStyle
	if focused {
		style = paneFocusStyle
	}
	return style.Width(m.paneWidth()).Render(paneTitleStyle.Render(title) + "\n" + content)
}

func (m Model) statusLine() string {
	d := m.Document()

	name := d.Path
	if name == "" {
		name = "(unsaved)"
	}
	if m.dirty {
		name += " *"
	}

	left := fmt.Sprintf("%s · %d words · tone: %s", name, d.WordCount(), m.tone)
	if sel := m.Selection(); !sel.IsEmpty() {
		left += fmt.Sprintf(" · sel: %d", sel.Len())
	}

	status := m.status
	if m.busy {
		status = m.spin.View() + status
	}

	line := infoStyle.Render(left) + "  " + statusStyle.Render(status)
	if m.width > 0 {
		line = wordwrap.String(line, m.width)
	}
	return line
}

func (m Model) helpLine() string {
	ks := m.keys
	parts := []string{
		ks.Mark.Help().Key + " " + ks.Mark.Help().Desc,
		ks.ChangeTone.Help().Key + " " + ks.ChangeTone.Help().Desc,
		ks.Refine.Help().Key + " " + ks.Refine.Help().Desc,
		ks.FixGrammar.Help().Key + " " + ks.FixGrammar.Help().Desc,
		ks.Summarize.Help().Key + " " + ks.Summarize.Help().Desc,
		ks.Continue.Help().Key + " " + ks.Continue.Help().Desc,
		ks.PickTone.Help().Key + " " + ks.PickTone.Help().Desc,
		ks.Save.Help().Key + " " + ks.Save.Help().Desc,
		ks.Quit.Help().Key + " " + ks.Quit.Help().Desc,
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
