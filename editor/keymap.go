package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the editing bindings. It satisfies help.KeyMap.
type KeyMap struct {
	// Caret movement.
	Left, Right, Up, Down key.Binding
	WordLeft, WordRight   key.Binding
	LineStart, LineEnd    key.Binding
	DocStart, DocEnd      key.Binding
	PageUp, PageDown      key.Binding

	// Selection.
	SelectLeft, SelectRight, SelectUp, SelectDown key.Binding
	SelectAll                                     key.Binding

	// Editing.
	Backspace, Delete, Newline key.Binding
	Copy, Cut, Paste           key.Binding
}

func DefaultKeyMap() KeyMap {
	bind := func(help string, desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
	}
	return KeyMap{
		Left:  bind("←", "back", "left"),
		Right: bind("→", "forward", "right"),
		Up:    bind("↑", "row up", "up"),
		Down:  bind("↓", "row down", "down"),

		// Terminals disagree on which modifier reaches us with arrows.
		WordLeft:  bind("alt+←", "word back", "alt+left", "ctrl+left"),
		WordRight: bind("alt+→", "word forward", "alt+right", "ctrl+right"),

		LineStart: bind("home", "line start", "home", "ctrl+a"),
		LineEnd:   bind("end", "line end", "end", "ctrl+e"),
		DocStart:  bind("ctrl+home", "top", "ctrl+home"),
		DocEnd:    bind("ctrl+end", "bottom", "ctrl+end"),
		PageUp:    bind("pgup", "page up", "pgup"),
		PageDown:  bind("pgdn", "page down", "pgdown"),

		SelectLeft:  bind("shift+←", "extend back", "shift+left"),
		SelectRight: bind("shift+→", "extend forward", "shift+right"),
		SelectUp:    bind("shift+↑", "extend up", "shift+up"),
		SelectDown:  bind("shift+↓", "extend down", "shift+down"),
		SelectAll:   bind("ctrl+l", "select all", "ctrl+l"),

		Backspace: bind("⌫", "erase back", "backspace", "ctrl+h"),
		Delete:    bind("del", "erase forward", "delete"),
		Newline:   bind("enter", "new line", "enter"),

		Copy:  bind("ctrl+c", "copy", "ctrl+c"),
		Cut:   bind("ctrl+x", "cut", "ctrl+x"),
		Paste: bind("ctrl+v", "paste", "ctrl+v"),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SelectAll, k.Copy, k.Cut, k.Paste}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.WordLeft, k.WordRight},
		{k.LineStart, k.LineEnd, k.DocStart, k.DocEnd, k.PageUp, k.PageDown},
		{k.SelectLeft, k.SelectRight, k.SelectUp, k.SelectDown, k.SelectAll},
		{k.Backspace, k.Delete, k.Newline, k.Copy, k.Cut, k.Paste},
	}
}
