package ops

import "fmt"

// Tone is a named writing-style target for the Change Tone operation.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneAcademic     Tone = "academic"
	TonePersuasive   Tone = "persuasive"
	ToneWitty        Tone = "witty"
)

// DefaultTone applies until the user picks another one.
const DefaultTone = ToneProfessional

// Tones lists all selectable tones in display order.
func Tones() []Tone {
	return []Tone{ToneProfessional, ToneCasual, ToneAcademic, TonePersuasive, ToneWitty}
}

// ToneNames returns the tone names as plain strings, for completion and
// fuzzy filtering.
func ToneNames() []string {
	ts := Tones()
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	return out
}

// ParseTone validates a user-supplied tone name.
func ParseTone(s string) (Tone, error) {
	for _, t := range Tones() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tone %q (expected one of professional, casual, academic, persuasive, witty)", s)
}
