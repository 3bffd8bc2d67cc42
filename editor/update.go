package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/mono/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Paste {
		if len(msg.Runes) > 0 {
			m.insertPlain(string(msg.Runes))
		}
		return m, nil
	}

	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.moveVisual(-1, false)
	case key.Matches(msg, km.Down):
		m.moveVisual(1, false)

	case key.Matches(msg, km.SelectLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.SelectRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.SelectUp):
		m.moveVisual(-1, true)
	case key.Matches(msg, km.SelectDown):
		m.moveVisual(1, true)

	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.LineStart):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.LineEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})
	case key.Matches(msg, km.PageUp):
		m.moveVisual(-m.pageRows(), false)
	case key.Matches(msg, km.PageDown):
		m.moveVisual(m.pageRows(), false)

	case key.Matches(msg, km.SelectAll):
		m.buf.SetSelection(buffer.Range{Start: 0, End: m.buf.Len()})

	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()
	case key.Matches(msg, km.Newline):
		m.buf.InsertNewline()

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m.cutSelection()
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	default:
		if msg.Type == tea.KeyTab {
			m.buf.InsertText("\t")
			return m, nil
		}
		if msg.Type == tea.KeySpace {
			m.buf.InsertText(" ")
			return m, nil
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.buf.InsertText(string(msg.Runes))
		}
	}

	return m, nil
}

// moveVisual moves the cursor by delta visual rows, keeping its column.
func (m *Model) moveVisual(delta int, extend bool) {
	l := m.ensureLayout()
	if len(l.rows) == 0 || delta == 0 {
		return
	}
	cur := m.buf.Cursor()
	row, col := l.cursorCell(cur)
	target := clampInt(row+delta, 0, len(l.rows)-1)

	var next int
	switch {
	case target == row && delta < 0:
		next = 0
	case target == row && delta > 0:
		next = m.buf.Len()
	default:
		next = l.rows[target].offsetAtCol(col)
	}

	if !extend {
		m.buf.SetCursor(next)
		return
	}
	anchor := cur
	if raw, ok := m.buf.SelectionRaw(); ok {
		anchor = raw.Start
	}
	m.buf.SetSelection(buffer.Range{Start: anchor, End: next})
}

func (m *Model) pageRows() int {
	l := m.ensureLayout()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	return maxInt(h/maxInt(l.spacing, 1), 1)
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s := m.buf.SelectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s := m.buf.SelectedText()
	if s == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		return
	}
	m.buf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.insertPlain(s)
}

// insertPlain inserts pasted text as plain text, replacing the selection.
func (m Model) insertPlain(s string) {
	s = SanitizePaste(s)
	if s == "" {
		return
	}
	m.buf.InsertText(s)
}

// SanitizePaste reduces external text to plain text. Escape sequences are
// stripped, line breaks normalized to \n, and control characters other than
// \n and \t removed. Loaded documents go through it as well.
func SanitizePaste(s string) string {
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0) {
			return -1
		}
		return r
	}, s)
}
