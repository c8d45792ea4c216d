package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextPreset   key.Binding
	ToggleMode   key.Binding
	ToggleDerive key.Binding
	EditSeed     key.Binding
	Save         key.Binding
	Help         key.Binding
	Quit         key.Binding
	Confirm      key.Binding
	Cancel       key.Binding
}

var defaultKeys = keyMap{
	NextPreset: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "next preset"),
	),
	ToggleMode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "toggle mode"),
	),
	ToggleDerive: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "toggle derive"),
	),
	EditSeed: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit seed"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save theme"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply seed"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPreset, k.ToggleMode, k.EditSeed, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPreset, k.ToggleMode, k.ToggleDerive},
		{k.EditSeed, k.Confirm, k.Cancel},
		{k.Save, k.Help, k.Quit},
	}
}
