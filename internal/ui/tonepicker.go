package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inkdraft/inkdraft/internal/ops"
	"github.com/inkdraft/inkdraft/internal/util"
)

// tonePicker is a small overlay: type to fuzzy-filter the tone list,
// up/down to move, enter to pick.
type tonePicker struct {
	active  bool
	query   string
	cursor  int
	matches []string
	current ops.Tone
}

func newTonePicker(current ops.Tone) tonePicker {
	return tonePicker{current: current, matches: ops.ToneNames()}
}

func (p *tonePicker) open(current ops.Tone) {
	p.active = true
	p.query = ""
	p.cursor = 0
	p.current = current
	p.matches = ops.ToneNames()
}

func (p *tonePicker) close() {
	p.active = false
}

// update handles one key press. It returns the chosen tone and true when a
// selection was made.
func (p *tonePicker) update(msg tea.KeyMsg) (ops.Tone, bool) {
	switch msg.String() {
	case "esc", "ctrl+p":
		p.close()
	case "enter":
		if len(p.matches) > 0 {
			t, err := ops.ParseTone(p.matches[p.cursor])
			if err == nil {
				p.close()
				return t, true
			}
		}
		p.close()
	case "up", "ctrl+k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "ctrl+j":
		if p.cursor < len(p.matches)-1 {
			p.cursor++
		}
	case "backspace":
		if p.query != "" {
			r := []rune(p.query)
			p.query = string(r[:len(r)-1])
			p.refilter()
		}
	default:
		if msg.Type == tea.KeyRunes {
			p.query += string(msg.Runes)
			p.refilter()
		}
	}
	return "", false
}

func (p *tonePicker) refilter() {
	p.matches = util.RankMatches(p.query, ops.ToneNames(), 0)
	if p.cursor >= len(p.matches) {
		p.cursor = 0
	}
}

var (
	pickerBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	pickerSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	pickerCurrentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

func (p tonePicker) view() string {
	var b strings.Builder
	b.WriteString("tone: " + p.query + "▌\n")
	if len(p.matches) == 0 {
		b.WriteString("  (no match)\n")
	}
	for i, name := range p.matches {
		line := "  " + name
		if ops.Tone(name) == p.current {
			line += " " + pickerCurrentStyle.Render("(current)")
		}
		if i == p.cursor {
			line = pickerSelectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n↑/↓ move • enter pick • esc cancel")
	return pickerBoxStyle.Render(b.String())
}
