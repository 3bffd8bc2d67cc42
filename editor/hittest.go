package editor

import "github.com/iw2rmb/mono/bionic"

// screenToPosition maps viewport-local cell coordinates to a caret position
// in the rendered tree.
//
// (0,0) is the top-left of the visible content region. Spacer rows map to
// the row above them, the left margin to the row start, and cells past the
// row end to the row's end position. A click on the right half of a cell
// places the caret after it.
func (m *Model) screenToPosition(x, y int) bionic.Position {
	l := m.ensureLayout()
	if len(l.rows) == 0 {
		return bionic.Position{Node: m.doc.tree}
	}

	screenRow := maxInt(m.viewport.YOffset+y, 0)
	row := l.rows[clampInt(screenRow/maxInt(l.spacing, 1), 0, len(l.rows)-1)]

	col := x - l.margin
	if col <= 0 || len(row.cells) == 0 {
		if len(row.cells) == 0 {
			return row.eol
		}
		return row.cells[0].pos
	}
	for i, c := range row.cells {
		if col >= c.col+c.width {
			continue
		}
		if c.width > 1 && col-c.col >= (c.width+1)/2 {
			if i+1 < len(row.cells) {
				return row.cells[i+1].pos
			}
			return row.eol
		}
		return c.pos
	}
	return row.eol
}

// screenToOffset maps viewport-local cell coordinates to a flat offset.
func (m *Model) screenToOffset(x, y int) int {
	return bionic.CaretOffset(m.doc.tree, m.screenToPosition(x, y))
}

// offsetToScreen maps a flat offset to viewport-local cell coordinates.
// ok is false when the coordinate is scrolled out of view.
func (m *Model) offsetToScreen(offset int) (x, y int, ok bool) {
	l := m.ensureLayout()
	row, col := l.cursorCell(offset)
	x = l.margin + col
	y = row*l.spacing - m.viewport.YOffset

	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if y < 0 || y >= h {
		return x, y, false
	}
	if x < 0 || (m.viewport.Width > 0 && x >= m.viewport.Width) {
		return x, y, false
	}
	return x, y, true
}

// CursorScreenPos returns the cursor's viewport-local cell coordinates.
func (m Model) CursorScreenPos() (x, y int, ok bool) {
	return (&m).offsetToScreen(m.caretOffset())
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
