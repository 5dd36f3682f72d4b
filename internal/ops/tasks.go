// Package ops defines the AI-assisted text operations: each one validates
// its precondition, builds the instruction/payload pair for the generation
// client, and knows how to merge the generated text back into the document.
package ops

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/inkdraft/inkdraft/pkg/doc"
)

// Kind identifies one of the five operations.
type Kind int

const (
	KindChangeTone Kind = iota
	KindRefine
	KindFixGrammar
	KindSummarize
	KindContinue
)

func (k Kind) String() string {
	switch k {
	case KindChangeTone:
		return "change tone"
	case KindRefine:
		return "refine selection"
	case KindFixGrammar:
		return "fix grammar & flow"
	case KindSummarize:
		return "summarize"
	case KindContinue:
		return "continue writing"
	}
	return "unknown"
}

// MinSelectionChars is the minimum trimmed selection length for the
// selection-based operations.
const MinSelectionChars = 5

// ValidationError is a precondition failure. It is surfaced as a status
// message; no network call is made and nothing is retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrSelectionTooShort = &ValidationError{Message: fmt.Sprintf("select at least %d characters first", MinSelectionChars)}
	ErrBlankDocument     = &ValidationError{Message: "the document is empty; write something first"}
)

// IsValidation reports whether err is a precondition failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Task is a validated operation ready to hand to the generation client.
type Task struct {
	Kind        Kind
	Tone        Tone
	Span        doc.Span
	Instruction string
	Payload     string
}

// Result of applying a generation result to a document. Summary is set only
// by KindSummarize, which leaves Text equal to the input document.
type Result struct {
	Text    string
	Summary string
}

// ChangeTone rewrites the selection in the target tone.
func ChangeTone(d doc.Document, sel doc.Span, tone Tone) (Task, error) {
	selected, err := requireSelection(d, sel)
	if err != nil {
		return Task{}, err
	}
	return Task{
		Kind: KindChangeTone,
		Tone: tone,
		Span: sel.Clamp(d.Text),
		Instruction: fmt.Sprintf(
			"Rewrite the text in a %s tone. Preserve the meaning and any markdown formatting. Reply with the rewritten text only, no commentary.",
			tone),
		Payload: selected,
	}, nil
}

// Refine improves clarity and word choice of the selection.
func Refine(d doc.Document, sel doc.Span) (Task, error) {
	selected, err := requireSelection(d, sel)
	if err != nil {
		return Task{}, err
	}
	return Task{
		Kind: KindRefine,
		Span: sel.Clamp(d.Text),
		Instruction: "Refine the text: improve clarity, flow, and word choice without changing its meaning. " +
			"Preserve markdown formatting. Reply with the refined text only.",
		Payload: selected,
	}, nil
}

// FixGrammar corrects grammar and awkward phrasing across the whole document.
func FixGrammar(d doc.Document) (Task, error) {
	if err := requireDocument(d); err != nil {
		return Task{}, err
	}
	return Task{
		Kind: KindFixGrammar,
		Instruction: "Fix all grammar, spelling, and awkward phrasing in the markdown document. " +
			"Keep the structure and formatting intact. Reply with the corrected document only.",
		Payload: d.Text,
	}, nil
}

// Summarize produces a short markdown summary shown as a transient preview
// override; the document itself is never mutated.
func Summarize(d doc.Document) (Task, error) {
	if err := requireDocument(d); err != nil {
		return Task{}, err
	}
	return Task{
		Kind: KindSummarize,
		Instruction: "Summarize the markdown document in a few short bullet points. " +
			"Reply in markdown, starting with a '## Summary' heading.",
		Payload: d.Text,
	}, nil
}

// ContinueWriting appends a continuation to the document.
func ContinueWriting(d doc.Document) (Task, error) {
	if err := requireDocument(d); err != nil {
		return Task{}, err
	}
	return Task{
		Kind: KindContinue,
		Instruction: "Continue writing the markdown document in the same voice and style. " +
			"Reply with the continuation only; do not repeat the existing text.",
		Payload: d.Text,
	}, nil
}

// Apply merges generated text back into the document according to the
// task's kind.
func (t Task) Apply(d doc.Document, generated string) Result {
	switch t.Kind {
	case KindChangeTone, KindRefine:
		return Result{Text: t.Span.Splice(d.Text, generated)}
	case KindFixGrammar:
		return Result{Text: generated}
	case KindSummarize:
		return Result{Text: d.Text, Summary: generated}
	case KindContinue:
		return Result{Text: doc.Append(d.Text, generated)}
	}
	return Result{Text: d.Text}
}

func requireSelection(d doc.Document, sel doc.Span) (string, error) {
	selected := sel.Extract(d.Text)
	if utf8.RuneCountInString(strings.TrimSpace(selected)) < MinSelectionChars {
		return "", ErrSelectionTooShort
	}
	return selected, nil
}

func requireDocument(d doc.Document) error {
	if d.IsBlank() {
		return ErrBlankDocument
	}
	return nil
}
