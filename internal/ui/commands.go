package ui

import (
	"context"
	"errors"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkdraft/inkdraft/internal/ops"
	"github.com/inkdraft/inkdraft/internal/render"
)

var errNoPath = errors.New("no file path; start the editor with a file argument")

// renderPreview is swappable so state-machine tests skip the heavy
// terminal renderer.
var renderPreview = render.Terminal

// genResultMsg carries the outcome of one generation call back into the
// update loop.
type genResultMsg struct {
	task ops.Task
	text string
	err  error
}

type savedMsg struct {
	path     string
	snapshot bool
	err      error
}

type copiedMsg struct {
	err error
}

// startTask enforces the single-flight invariant and launches the
// generation call off the update loop. buildErr is the validation result
// from the ops constructor.
func (m *Model) startTask(task ops.Task, buildErr error) tea.Cmd {
	if buildErr != nil {
		// Precondition failure: no network call, busy stays false.
		m.status = buildErr.Error()
		return nil
	}
	m.busy = true
	m.pendingOp = task.Kind
	m.status = task.Kind.String() + "…"

	gen := m.opts.Gen
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		text, err := gen.Generate(context.Background(), task.Instruction, task.Payload)
		return genResultMsg{task: task, text: text, err: err}
	})
}

// saveCmd writes the document to disk and records a snapshot.
func (m *Model) saveCmd() tea.Cmd {
	d := m.Document()
	snaps := m.opts.Snapshots
	keep := m.opts.KeepSnapshots
	return func() tea.Msg {
		if d.Path == "" {
			return savedMsg{err: errNoPath}
		}
		if err := os.WriteFile(d.Path, []byte(d.Text), 0o600); err != nil {
			return savedMsg{err: err}
		}
		msg := savedMsg{path: d.Path}
		if snaps != nil {
			_, saved, err := snaps.Save(context.Background(), d.Path, d.Text)
			if err == nil && saved {
				msg.snapshot = true
				if keep > 0 {
					_, _ = snaps.Prune(context.Background(), d.Path, keep)
				}
			}
		}
		return msg
	}
}

// copyCmd puts text on the system clipboard.
func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
