package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkdraft/inkdraft/internal/ops"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.refreshPreview()
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case genResultMsg:
		return m.handleGenResult(msg)

	case savedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
			return m, nil
		}
		m.dirty = false
		if msg.snapshot {
			m.status = "saved " + msg.path + " (snapshot recorded)"
		} else {
			m.status = "saved " + msg.path
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "copied to clipboard"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updatePanes(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The tone picker swallows everything while open.
	if m.picker.active {
		if tone, picked := m.picker.update(msg); picked {
			m.tone = tone
			m.status = "tone set to " + string(tone)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.dirty && m.opts.AutosaveQuit && m.opts.Path != "" {
			return m, tea.Sequence(m.saveCmd(), tea.Quit)
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Save):
		return m, m.saveCmd()

	case key.Matches(msg, m.keys.FocusNext):
		if m.focus == focusEditor {
			m.focus = focusPreview
			m.ta.Blur()
		} else {
			m.focus = focusEditor
			m.ta.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keys.Mark):
		if m.selecting {
			m.clearSelection()
			m.status = "selection cleared"
		} else {
			m.selecting = true
			m.selAnchor = m.cursorOffset()
			m.status = "selection started; move the cursor to extend"
		}
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		switch {
		case m.summary != "":
			m.summary = ""
			m.refreshPreview()
			m.status = "summary dismissed"
		case m.selecting:
			m.clearSelection()
			m.status = "selection cleared"
		}
		return m, nil

	case key.Matches(msg, m.keys.PickTone):
		m.picker.open(m.tone)
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if m.summary != "" {
			return m, copyCmd(m.summary)
		}
		return m, copyCmd(m.ta.Value())
	}

	// AI tools: single-flight guard first, then per-op validation.
	if isToolKey(msg, m.keys) {
		if m.busy {
			m.status = fmt.Sprintf("still working on %s", m.pendingOp)
			return m, nil
		}
		d := m.Document()
		switch {
		case key.Matches(msg, m.keys.ChangeTone):
			task, err := ops.ChangeTone(d, m.Selection(), m.tone)
			return m, m.startTask(task, err)
		case key.Matches(msg, m.keys.Refine):
			task, err := ops.Refine(d, m.Selection())
			return m, m.startTask(task, err)
		case key.Matches(msg, m.keys.FixGrammar):
			task, err := ops.FixGrammar(d)
			return m, m.startTask(task, err)
		case key.Matches(msg, m.keys.Summarize):
			task, err := ops.Summarize(d)
			return m, m.startTask(task, err)
		case key.Matches(msg, m.keys.Continue):
			task, err := ops.ContinueWriting(d)
			return m, m.startTask(task, err)
		}
	}

	return m.updatePanes(msg)
}

func isToolKey(msg tea.KeyMsg, k keyMap) bool {
	return key.Matches(msg, k.ChangeTone) || key.Matches(msg, k.Refine) ||
		key.Matches(msg, k.FixGrammar) || key.Matches(msg, k.Summarize) ||
		key.Matches(msg, k.Continue)
}

// updatePanes forwards remaining messages into the focused pane and keeps
// the preview-freshness invariant: any edit invalidates the summary
// override and recomputes the live render.
func (m Model) updatePanes(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusPreview {
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}
	m.ta, cmd = m.ta.Update(msg)
	if m.ta.Value() != m.lastText {
		m.dirty = true
		m.noteMutation()
	}
	return m, cmd
}

func (m Model) handleGenResult(msg genResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		// The document and preview stay exactly as they were.
		m.status = fmt.Sprintf("%s failed: %v", msg.task.Kind, msg.err)
		return m, nil
	}

	res := msg.task.Apply(m.Document(), msg.text)
	if msg.task.Kind == ops.KindSummarize {
		m.summary = res.Summary
		m.refreshPreview()
		m.status = "summary in preview (esc to dismiss)"
		return m, nil
	}

	m.setDocument(res.Text)
	m.status = msg.task.Kind.String() + " done"
	return m, nil
}

func (m *Model) layout() {
	w := m.paneWidth()
	h := m.height - 4
	if h < 3 {
		h = 3
	}
	m.ta.SetWidth(w)
	m.ta.SetHeight(h)
	m.preview.Width = w
	m.preview.Height = h
}
