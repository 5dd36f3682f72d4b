package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Save       key.Binding
	Quit       key.Binding
	Mark       key.Binding
	FocusNext  key.Binding
	Copy       key.Binding
	PickTone   key.Binding
	ChangeTone key.Binding
	Refine     key.Binding
	FixGrammar key.Binding
	Summarize  key.Binding
	Continue   key.Binding
	Dismiss    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
		Mark:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "mark selection")),
		FocusNext:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Copy:       key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "copy")),
		PickTone:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "pick tone")),
		ChangeTone: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "change tone")),
		Refine:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refine")),
		FixGrammar: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "fix grammar")),
		Summarize:  key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "summarize")),
		Continue:   key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "continue")),
		Dismiss:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
	}
}
