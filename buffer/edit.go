package buffer

import (
	"github.com/iw2rmb/mono/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.replace(r, s)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == 0 {
		return
	}
	b.replace(Range{Start: b.cursor - 1, End: b.cursor}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor >= len(b.clusters) {
		return
	}
	b.replace(Range{Start: b.cursor, End: b.cursor + 1}, "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.replace(r, "")
}

func (b *Buffer) replace(r Range, text string) {
	r = NormalizeRange(ClampRange(r, len(b.clusters)))
	ins := grapheme.Split(text)
	if r.IsEmpty() && len(ins) == 0 {
		return
	}

	out := make([]string, 0, len(b.clusters)-r.Len()+len(ins))
	out = append(out, b.clusters[:r.Start]...)
	out = append(out, ins...)
	out = append(out, b.clusters[r.End:]...)

	// Re-split so clusters that merge across the edit boundary (for example a
	// combining mark typed after a letter) stay canonical.
	joined := grapheme.Join(out)
	b.clusters = grapheme.Split(joined)
	b.cursor = clampInt(grapheme.Count(grapheme.Join(out[:r.Start+len(ins)])), 0, len(b.clusters))
	b.sel = selectionState{}
	b.version++
	b.textVersion++
}
