package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the program-level bindings. Editing keys belong to the
// editor. It satisfies help.KeyMap.
type KeyMap struct {
	Quit key.Binding

	FontSmaller key.Binding
	FontLarger  key.Binding
	NextFont    key.Binding
	Density     key.Binding
	Theme       key.Binding

	ExportText key.Binding
	ExportHTML key.Binding
	Clear      key.Binding

	Confirm key.Binding
	Retry   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),

		FontSmaller: key.NewBinding(key.WithKeys("alt+-"), key.WithHelp("alt+-", "smaller")),
		FontLarger:  key.NewBinding(key.WithKeys("alt+=", "alt++"), key.WithHelp("alt+=", "larger")),
		NextFont:    key.NewBinding(key.WithKeys("alt+f"), key.WithHelp("alt+f", "font")),
		Density:     key.NewBinding(key.WithKeys("alt+d"), key.WithHelp("alt+d", "density")),
		Theme:       key.NewBinding(key.WithKeys("alt+t"), key.WithHelp("alt+t", "theme")),

		ExportText: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "export")),
		ExportHTML: key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "export html")),
		Clear:      key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "clear")),

		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		Retry:   key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "try again")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FontSmaller, k.FontLarger, k.NextFont, k.Density, k.Theme, k.ExportText, k.Clear, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FontSmaller, k.FontLarger, k.NextFont, k.Density, k.Theme},
		{k.ExportText, k.ExportHTML, k.Clear, k.Quit},
	}
}
