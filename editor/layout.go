package editor

import (
	"math"

	"github.com/iw2rmb/mono/bionic"
	"github.com/iw2rmb/mono/internal/grapheme"
	"github.com/iw2rmb/mono/prefs"
)

// Measure is the wrap width, in cells, at the default font size.
const Measure = 70

// MeasureFor maps a font size to a wrap width: larger type fits fewer
// columns on a line.
func MeasureFor(fontSize int) int {
	if fontSize <= 0 {
		fontSize = prefs.DefaultFontSize
	}
	return int(math.Round(float64(Measure*prefs.DefaultFontSize) / float64(fontSize)))
}

// Spacing returns the number of screen rows each visual row occupies.
func Spacing(d prefs.Density) int {
	if d == prefs.DensityDense {
		return 1
	}
	return 2
}

// layoutCell is one grapheme cluster placed on a visual row.
type layoutCell struct {
	text  string
	off   int
	pos   bionic.Position
	emph  bool
	col   int
	width int
}

// layoutRow is one visual row. [start,end) are the flat offsets it shows;
// the line break that ends a logical line is not part of the row.
type layoutRow struct {
	cells []layoutCell
	start int
	end   int
	width int

	// hard is set on the last row of a logical line.
	hard bool

	// eol is where a click past the last cell lands.
	eol bionic.Position
}

type layoutKey struct {
	textVersion uint64
	plain       bool
	measure     int
	margin      int
	spacing     int
	tabWidth    int
}

type layoutCache struct {
	valid bool
	key   layoutKey

	rows    []layoutRow
	measure int
	margin  int
	spacing int
}

func (m *Model) layoutKey() layoutKey {
	measure := MeasureFor(m.cfg.Prefs.FontSize)
	margin := 0
	if w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize(); w > 0 {
		if measure > w {
			measure = w
		}
		margin = (w - measure) / 2
	}
	return layoutKey{
		textVersion: m.doc.textVersion,
		plain:       m.doc.plain,
		measure:     measure,
		margin:      margin,
		spacing:     Spacing(m.cfg.Prefs.Density),
		tabWidth:    m.cfg.TabWidth,
	}
}

func (m *Model) ensureLayout() layoutCache {
	key := m.layoutKey()
	if m.layout.valid && m.layout.key == key {
		return m.layout
	}

	m.layout = layoutCache{
		valid:   true,
		key:     key,
		rows:    buildRows(m.doc.tree, key.measure, key.tabWidth),
		measure: key.measure,
		margin:  key.margin,
		spacing: key.spacing,
	}
	return m.layout
}

// buildRows lays the text of tree out in rows no wider than measure.
// Whitespace may hang past the measure; words wider than the measure are
// split at cluster boundaries.
func buildRows(tree *bionic.Node, measure, tabWidth int) []layoutRow {
	type flatCell struct {
		text string
		off  int
		pos  bionic.Position
		emph bool
	}

	var cells []flatCell
	off := 0
	bionic.WalkText(tree, func(n *bionic.Node, emph bool) {
		for i, c := range grapheme.Split(n.Text) {
			cells = append(cells, flatCell{text: c, off: off, pos: bionic.Position{Node: n, Offset: i}, emph: emph})
			off++
		}
	})
	docEnd := bionic.RestoreCaretOrEnd(tree, off)

	var (
		rows []layoutRow
		cur  = layoutRow{start: 0}
	)
	closeSoft := func(next int) {
		cur.end = next
		cur.eol = cur.cells[len(cur.cells)-1].pos
		rows = append(rows, cur)
		cur = layoutRow{start: next}
	}
	closeHard := func(end int, eol bionic.Position) {
		cur.end = end
		cur.hard = true
		cur.eol = eol
		rows = append(rows, cur)
		cur = layoutRow{start: end + 1}
	}
	place := func(c flatCell, w int) {
		cur.cells = append(cur.cells, layoutCell{
			text:  c.text,
			off:   c.off,
			pos:   c.pos,
			emph:  c.emph,
			col:   cur.width,
			width: w,
		})
		cur.width += w
	}

	for i := 0; i < len(cells); {
		c := cells[i]
		if grapheme.IsNewline(c.text) {
			closeHard(c.off, c.pos)
			i++
			continue
		}

		space := grapheme.IsSpace(c.text)
		j := i + 1
		for j < len(cells) && !grapheme.IsNewline(cells[j].text) && grapheme.IsSpace(cells[j].text) == space {
			j++
		}

		if space {
			for k := i; k < j; k++ {
				place(cells[k], grapheme.Width(cells[k].text, cur.width, tabWidth))
			}
			i = j
			continue
		}

		wordWidth := 0
		for k := i; k < j; k++ {
			wordWidth += grapheme.Width(cells[k].text, 0, tabWidth)
		}
		if measure > 0 && cur.width > 0 && cur.width+wordWidth > measure {
			closeSoft(c.off)
		}
		for k := i; k < j; k++ {
			w := grapheme.Width(cells[k].text, cur.width, tabWidth)
			if measure > 0 && cur.width > 0 && cur.width+w > measure {
				closeSoft(cells[k].off)
			}
			place(cells[k], w)
		}
		i = j
	}
	closeHard(off, docEnd)
	return rows
}

// cursorCell returns the row index and cell column of a flat offset. An
// offset on a soft break belongs to the start of the following row.
func (c layoutCache) cursorCell(offset int) (row, col int) {
	if len(c.rows) == 0 {
		return 0, 0
	}
	for i, r := range c.rows {
		if offset < r.start {
			continue
		}
		if offset < r.end || (offset == r.end && r.hard) {
			return i, r.colAt(offset)
		}
	}
	last := len(c.rows) - 1
	return last, c.rows[last].width
}

// colAt returns the cell column where offset is drawn within r.
func (r layoutRow) colAt(offset int) int {
	for _, cell := range r.cells {
		if cell.off >= offset {
			return cell.col
		}
	}
	return r.width
}

// screenRows returns the number of screen rows the layout occupies.
func (c layoutCache) screenRows() int {
	return len(c.rows) * c.spacing
}

func (r layoutRow) hasCell(offset int) bool {
	for _, cell := range r.cells {
		if cell.off == offset {
			return true
		}
	}
	return false
}

// offsetAtCol returns the flat offset of the cell at col, or the row end
// when col is past the last cell.
func (r layoutRow) offsetAtCol(col int) int {
	for _, c := range r.cells {
		if col < c.col+c.width {
			return c.off
		}
	}
	if !r.hard && len(r.cells) > 0 {
		return r.cells[len(r.cells)-1].off
	}
	return r.end
}
