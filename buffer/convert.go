package buffer

import "github.com/iw2rmb/mono/internal/grapheme"

// LineCount returns the number of logical lines (at least 1).
func (b *Buffer) LineCount() int {
	return len(b.lineStarts())
}

// PosOf converts a flat offset (clamped) to a row/col position.
func (b *Buffer) PosOf(off int) Pos {
	off = clampInt(off, 0, len(b.clusters))
	starts := b.lineStarts()
	row := 0
	for i, s := range starts {
		if s > off {
			break
		}
		row = i
	}
	return Pos{Row: row, GraphemeCol: off - starts[row]}
}

// OffsetOf converts a row/col position to a flat offset. Both coordinates
// are clamped into the document.
func (b *Buffer) OffsetOf(p Pos) int {
	starts := b.lineStarts()
	row := clampInt(p.Row, 0, len(starts)-1)
	col := clampInt(p.GraphemeCol, 0, b.lineLenFrom(starts, row))
	return starts[row] + col
}

func (b *Buffer) lineLen(row int) int {
	starts := b.lineStarts()
	if row < 0 || row >= len(starts) {
		return 0
	}
	return b.lineLenFrom(starts, row)
}

func (b *Buffer) lineLenFrom(starts []int, row int) int {
	if row+1 < len(starts) {
		// Exclude the line break that ends the row.
		return starts[row+1] - 1 - starts[row]
	}
	return len(b.clusters) - starts[row]
}

func (b *Buffer) lineStarts() []int {
	starts := []int{0}
	for i, c := range b.clusters {
		if grapheme.IsNewline(c) {
			starts = append(starts, i+1)
		}
	}
	return starts
}
