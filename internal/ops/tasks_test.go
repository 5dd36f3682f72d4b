package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkdraft/inkdraft/pkg/doc"
)

func TestSelectionPreconditions(t *testing.T) {
	// "abcd" is exactly 4 trimmed characters; " abcd  " trims to the same.
	d := doc.Document{Text: " abcd  and more text"}

	_, err := ChangeTone(d, doc.Span{Start: 0, End: 7}, ToneCasual)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.ErrorIs(t, err, ErrSelectionTooShort)

	_, err = Refine(d, doc.Span{Start: 0, End: 7})
	assert.ErrorIs(t, err, ErrSelectionTooShort)

	// Exactly 5 trimmed characters proceeds.
	d5 := doc.Document{Text: "abcde rest"}
	task, err := ChangeTone(d5, doc.Span{Start: 0, End: 5}, ToneCasual)
	require.NoError(t, err)
	assert.Equal(t, "abcde", task.Payload)
	assert.Contains(t, task.Instruction, "casual")
}

func TestDocumentPreconditions(t *testing.T) {
	for _, text := range []string{"", "   \n\t "} {
		for _, build := range []func(doc.Document) (Task, error){
			FixGrammar,
			Summarize,
			ContinueWriting,
		} {
			_, err := build(doc.Document{Text: text})
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.ErrorIs(t, err, ErrBlankDocument)
		}
	}
}

func TestChangeToneApply(t *testing.T) {
	d := doc.Document{Text: "Hello world"}
	task, err := ChangeTone(d, doc.Span{Start: 0, End: 5}, ToneCasual)
	require.NoError(t, err)
	assert.Equal(t, "Hello", task.Payload)

	res := task.Apply(d, "Hey there")
	assert.Equal(t, "Hey there world", res.Text)
	assert.Empty(t, res.Summary)
}

func TestFixGrammarApplyReplacesDocument(t *testing.T) {
	d := doc.Document{Text: "teh original"}
	task, err := FixGrammar(d)
	require.NoError(t, err)
	assert.Equal(t, "teh original", task.Payload)

	res := task.Apply(d, "the corrected")
	assert.Equal(t, "the corrected", res.Text)
}

func TestSummarizeDoesNotMutateDocument(t *testing.T) {
	d := doc.Document{Text: "A long document."}
	task, err := Summarize(d)
	require.NoError(t, err)

	res := task.Apply(d, "## Summary\n\n- short")
	assert.Equal(t, d.Text, res.Text, "summarize leaves the document alone")
	assert.Equal(t, "## Summary\n\n- short", res.Summary)
}

func TestContinueWritingAppendsWithSeparator(t *testing.T) {
	d := doc.Document{Text: "Start."}
	task, err := ContinueWriting(d)
	require.NoError(t, err)

	res := task.Apply(d, "More text.")
	assert.Equal(t, "Start.\n\nMore text.", res.Text)
}

func TestParseTone(t *testing.T) {
	for _, name := range ToneNames() {
		got, err := ParseTone(name)
		require.NoError(t, err)
		assert.Equal(t, Tone(name), got)
	}
	_, err := ParseTone("sarcastic")
	assert.Error(t, err)
	assert.Equal(t, ToneProfessional, DefaultTone)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "summarize", KindSummarize.String())
	assert.Equal(t, "change tone", KindChangeTone.String())
}
