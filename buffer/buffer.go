package buffer

import (
	"github.com/iw2rmb/mono/internal/grapheme"
)

type selectionState struct {
	active bool
	anchor int
	end    int
}

// Buffer is the pure document state: text, cursor, and selection.
//
// Version changes on any observable change (text, cursor, or selection);
// TextVersion only when the text itself changes.
type Buffer struct {
	clusters []string

	version     uint64
	textVersion uint64

	cursor int
	sel    selectionState
}

// New returns a buffer holding text with the cursor at the start.
func New(text string) *Buffer {
	return &Buffer{clusters: grapheme.Split(text)}
}

func (b *Buffer) Text() string { return grapheme.Join(b.clusters) }

// Len returns the document length in grapheme clusters.
func (b *Buffer) Len() int { return len(b.clusters) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) TextVersion() uint64 { return b.textVersion }

// Cursor returns the caret as a flat grapheme offset.
func (b *Buffer) Cursor() int { return b.cursor }

// SetCursor moves the caret to off (clamped) and clears the selection.
func (b *Buffer) SetCursor(off int) {
	next := clampInt(off, 0, len(b.clusters))
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the raw selection anchor/end without normalization.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

// SetSelection selects r (clamped) and places the cursor at r.End.
func (b *Buffer) SetSelection(r Range) {
	r = ClampRange(r, len(b.clusters))
	next := selectionState{active: true, anchor: r.Start, end: r.End}
	if r.IsEmpty() {
		next = selectionState{}
	}
	if next == b.sel && b.cursor == r.End {
		return
	}
	b.sel = next
	b.cursor = r.End
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selectionState{}
	b.version++
}

// SelectedText returns the text of the active selection, or "".
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return grapheme.Join(b.clusters[r.Start:r.End])
}

// SetText replaces the whole document and places the cursor at its end.
func (b *Buffer) SetText(text string) {
	next := grapheme.Split(text)
	if grapheme.Join(next) == b.Text() {
		b.SetCursor(len(b.clusters))
		return
	}
	b.clusters = next
	b.cursor = len(next)
	b.sel = selectionState{}
	b.version++
	b.textVersion++
}
