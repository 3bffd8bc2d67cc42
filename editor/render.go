package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/mono/internal/grapheme"
)

type cellKind int

const (
	cellText cellKind = iota
	cellEmphasis
	cellSelected
	cellSelectedEmphasis
	cellCursor
	cellCursorEmphasis
)

func (st Style) forKind(k cellKind) lipgloss.Style {
	switch k {
	case cellEmphasis:
		return st.Emphasis
	case cellSelected:
		return st.Selection
	case cellSelectedEmphasis:
		return st.Selection.Bold(true)
	case cellCursor:
		return st.Cursor
	case cellCursorEmphasis:
		return st.Cursor.Bold(true)
	default:
		return st.Text
	}
}

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	l := m.ensureLayout()
	st := m.cfg.Style
	width := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()

	if m.buf.Len() == 0 && m.cfg.Placeholder != "" {
		return m.renderPlaceholder(l, width)
	}

	cursor := m.caretOffset()
	cursorRow, _ := l.cursorCell(cursor)
	sel, selOK := m.buf.Selection()

	blank := padRow(st, "", 0, width)
	out := make([]string, 0, l.screenRows())
	for i, row := range l.rows {
		rowCursor := -1
		if m.focused && i == cursorRow {
			rowCursor = cursor
		}

		var sb strings.Builder
		sb.WriteString(st.Text.Render(strings.Repeat(" ", l.margin)))
		used := l.margin + renderRow(&sb, st, row, rowCursor, sel.Start, sel.End, selOK)
		if rowCursor >= 0 && !row.hasCell(rowCursor) {
			sb.WriteString(st.Cursor.Render(" "))
			used++
		}
		out = append(out, padRow(st, sb.String(), used, width))

		for s := 1; s < l.spacing; s++ {
			out = append(out, blank)
		}
	}
	return strings.Join(out, "\n")
}

// renderRow writes the cells of row, grouping runs that share a style, and
// returns the number of cells written.
func renderRow(sb *strings.Builder, st Style, row layoutRow, cursor, selStart, selEnd int, selOK bool) int {
	var (
		run     strings.Builder
		runKind cellKind
		runLen  int
	)
	flush := func() {
		if runLen == 0 {
			return
		}
		sb.WriteString(st.forKind(runKind).Render(run.String()))
		run.Reset()
		runLen = 0
	}

	for _, c := range row.cells {
		kind := cellText
		switch {
		case c.off == cursor:
			kind = cellCursor
		case selOK && c.off >= selStart && c.off < selEnd:
			kind = cellSelected
		}
		if c.emph {
			kind++
		}
		if kind != runKind {
			flush()
			runKind = kind
		}
		run.WriteString(displayText(c))
		runLen++
	}
	flush()
	return row.width
}

// displayText is what a cell draws: tabs expand to spaces and other control
// clusters draw as blanks.
func displayText(c layoutCell) string {
	if c.text == "\t" || (c.width > 0 && grapheme.IsSpace(c.text)) {
		return strings.Repeat(" ", c.width)
	}
	return c.text
}

func (m *Model) renderPlaceholder(l layoutCache, width int) string {
	st := m.cfg.Style
	clusters := grapheme.Split(m.cfg.Placeholder)

	var sb strings.Builder
	sb.WriteString(st.Text.Render(strings.Repeat(" ", l.margin)))
	first := st.Placeholder
	if m.focused {
		first = st.Cursor
	}
	sb.WriteString(first.Render(clusters[0]))
	sb.WriteString(st.Placeholder.Render(grapheme.Join(clusters[1:])))
	return padRow(st, sb.String(), l.margin+lipgloss.Width(m.cfg.Placeholder), width)
}

// padRow fills a rendered row with background up to width cells.
func padRow(st Style, s string, used, width int) string {
	if width <= 0 || used >= width {
		return s
	}
	return s + st.Text.Render(strings.Repeat(" ", width-used))
}
