package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/keytest/internal/model"
	"github.com/verte-zerg/keytest/internal/typing"
)

type keyMap struct {
	Quit        key.Binding
	SwitchMode  key.Binding
	ToggleTheme key.Binding
	ClearLog    key.Binding

	PrevDuration key.Binding
	NextDuration key.Binding
	PrevVocab    key.Binding
	NextVocab    key.Binding
	Start        key.Binding
	Reset        key.Binding
	Again        key.Binding
	Copy         key.Binding
	History      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		SwitchMode:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "switch mode")),
		ToggleTheme:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		ClearLog:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear log")),
		PrevDuration: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "shorter")),
		NextDuration: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "longer")),
		PrevVocab:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev text")),
		NextVocab:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next text")),
		Start:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Reset:        key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Again:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "another test")),
		Copy:         key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy result")),
		History:      key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "history")),
	}
}

// bindings returns the help entries that apply in the given mode and phase.
func (k keyMap) bindings(mode model.Mode, phase typing.Phase) []key.Binding {
	global := []key.Binding{k.SwitchMode, k.ToggleTheme, k.Quit}
	if mode == model.ModeKeyboard {
		return append([]key.Binding{k.ClearLog}, global...)
	}
	var local []key.Binding
	switch phase {
	case typing.PhaseIdle:
		local = []key.Binding{k.Start, k.PrevDuration, k.NextDuration, k.PrevVocab, k.NextVocab, k.History}
	case typing.PhaseActive:
		local = []key.Binding{k.Reset}
	case typing.PhaseFinished:
		local = []key.Binding{k.Again, k.Copy, k.History}
	}
	return append(local, global...)
}

// helpKeys adapts a binding list to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding {
	return h
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{h}
}
