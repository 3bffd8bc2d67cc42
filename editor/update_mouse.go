package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mono/buffer"
)

// updateMouse handles the wheel and left-button clicks and drags. Clicks are
// resolved through the rendered tree, so the caret lands where it is drawn.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if tea.MouseEvent(msg).IsWheel() {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if !m.focused || m.buf == nil {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.inside(msg.X, msg.Y) {
			m.press(msg.X, msg.Y, msg.Shift)
		}
	case tea.MouseActionMotion:
		if m.mouseDragging {
			m.drag(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m, nil
}

// press places the caret, or extends the selection with shift held.
func (m *Model) press(x, y int, extend bool) {
	off := m.screenToOffset(x, y)
	m.mouseDragging = true
	if !extend {
		m.mouseAnchor = off
		m.buf.SetCursor(off)
		return
	}
	m.mouseAnchor = m.buf.Cursor()
	if raw, ok := m.buf.SelectionRaw(); ok {
		m.mouseAnchor = raw.Start
	}
	m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: off})
}

// drag extends the selection from the press anchor. Dragging past the top
// or bottom edge scrolls one row.
func (m *Model) drag(x, y int) {
	h := m.viewport.Height
	switch {
	case y < 0:
		m.viewport.ScrollUp(1)
	case h > 0 && y >= h:
		m.viewport.ScrollDown(1)
	}
	x = clampInt(x, 0, max(m.viewport.Width-1, 0))
	y = clampInt(y, 0, max(h-1, 0))

	off := m.screenToOffset(x, y)
	if off == m.mouseAnchor {
		m.buf.SetCursor(off)
		return
	}
	m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: off})
}

func (m Model) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.viewport.Width && y < m.viewport.Height
}
