// Package ui is the editor: a textarea pane, a live markdown preview pane,
// and the AI writing tools. It owns the controller state the tool revolves
// around: the document, the selection, the tone setting, the transient
// summary override, and the single-flight busy flag for generation calls.
package ui

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inkdraft/inkdraft/internal/ops"
	"github.com/inkdraft/inkdraft/internal/store"
	"github.com/inkdraft/inkdraft/pkg/doc"
)

// Generator is the slice of the genai client the editor needs; tests
// substitute a fake.
type Generator interface {
	Generate(ctx context.Context, instruction, payload string) (string, error)
}

// Snapshotter is the slice of the snapshot store the editor needs.
type Snapshotter interface {
	Save(ctx context.Context, docPath, content string) (store.Snapshot, bool, error)
	Prune(ctx context.Context, docPath string, keep int) (int64, error)
}

// Options configures a new editor model.
type Options struct {
	Path string // file the document was loaded from ("" for a new buffer)
	Text string // initial document text

	Gen       Generator
	Snapshots Snapshotter // nil disables snapshots
	Log       *log.Logger

	Tone          ops.Tone
	WrapWidth     int
	KeepSnapshots int
	AutosaveQuit  bool
}

type focusArea int

const (
	focusEditor focusArea = iota
	focusPreview
)

// Model is the Bubble Tea model for the editor.
type Model struct {
	opts Options

	ta      textarea.Model
	preview viewport.Model
	spin    spinner.Model
	picker  tonePicker
	keys    keyMap

	focus focusArea
	tone  ops.Tone

	// selection anchor; selecting is true after the user sets a mark.
	selAnchor int
	selecting bool

	// summary holds the transient preview override; any document
	// mutation clears it.
	summary string

	// busy is the single-flight guard: at most one generation call may
	// be outstanding, and tool keys are rejected while it is set.
	busy      bool
	pendingOp ops.Kind

	status   string
	dirty    bool
	lastText string

	width  int
	height int
	ready  bool

	quitting bool
}

// New constructs the editor model.
func New(opts Options) Model {
	if opts.Tone == "" {
		opts.Tone = ops.DefaultTone
	}
	if opts.WrapWidth <= 0 {
		opts.WrapWidth = 80
	}

	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetValue(opts.Text)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := Model{
		opts:     opts,
		ta:       ta,
		spin:     sp,
		picker:   newTonePicker(opts.Tone),
		keys:     defaultKeyMap(),
		tone:     opts.Tone,
		status:   "ready",
		lastText: opts.Text,
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Document returns the current document state.
func (m Model) Document() doc.Document {
	return doc.Document{Path: m.opts.Path, Text: m.ta.Value()}
}

// Selection returns the active selection span, or an empty span when no
// mark is set.
func (m Model) Selection() doc.Span {
	if !m.selecting {
		return doc.Span{}
	}
	cur := m.cursorOffset()
	return doc.Span{Start: m.selAnchor, End: cur}.Clamp(m.ta.Value())
}

// cursorOffset converts the textarea cursor position to a rune offset in
// the document. LineInfo describes the soft-wrapped visual line the cursor
// sits on; StartColumn+ColumnOffset recovers the rune column within the
// logical line regardless of wrapping.
func (m Model) cursorOffset() int {
	row := m.ta.Line()
	lines := strings.Split(m.ta.Value(), "\n")
	off := 0
	for i := 0; i < row && i < len(lines); i++ {
		off += utf8.RuneCountInString(lines[i]) + 1
	}
	li := m.ta.LineInfo()
	return off + li.StartColumn + li.ColumnOffset
}

// setDocument replaces the document text after an AI operation, keeping the
// invariant that the preview is recomputed and any summary override dies
// with the mutation.
func (m *Model) setDocument(text string) {
	m.ta.SetValue(text)
	m.dirty = true
	m.clearSelection()
	m.noteMutation()
}

// noteMutation records that the document changed: the summary override is
// invalidated and the preview refreshed.
func (m *Model) noteMutation() {
	m.summary = ""
	m.lastText = m.ta.Value()
	m.refreshPreview()
}

func (m *Model) clearSelection() {
	m.selecting = false
	m.selAnchor = 0
}

// refreshPreview recomputes the preview pane from the summary override or
// the live document.
func (m *Model) refreshPreview() {
	src := m.ta.Value()
	if m.summary != "" {
		src = m.summary
	}
	m.preview.SetContent(renderPreview(src, m.previewWrap()))
}

func (m Model) previewWrap() int {
	w := m.paneWidth() - 2
	if m.opts.WrapWidth < w {
		w = m.opts.WrapWidth
	}
	if w < 10 {
		w = 10
	}
	return w
}

func (m Model) paneWidth() int {
	if m.width <= 0 {
		return 40
	}
	return m.width/2 - 2
}
