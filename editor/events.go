package editor

import "github.com/iw2rmb/mono/buffer"

// ChangeEvent is emitted through Config.OnChange after an Update that changed
// the text, the cursor, or the selection.
type ChangeEvent struct {
	Version uint64

	// TextChanged is false for pure cursor or selection moves.
	TextChanged bool

	// Cursor is a flat grapheme offset.
	Cursor    int
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	Text string
}

func buildChangeEvent(b *buffer.Buffer, textChanged bool) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		TextChanged: textChanged,
		Cursor:      b.Cursor(),
		Text:        b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
