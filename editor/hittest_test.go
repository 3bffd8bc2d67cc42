package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHitTest_ClampsAndYOffset(t *testing.T) {
	m := New(Config{Text: "abc\ndef\nghi", Prefs: densePrefs()})
	m.viewport.YOffset = 1

	if got := m.screenToOffset(2, 0); got != 6 {
		t.Fatalf("offset at (2,0) with yoffset=1: got %d, want %d", got, 6)
	}

	// Clamp x past end of line to the line end.
	if got := m.screenToOffset(999, 0); got != 7 {
		t.Fatalf("offset at (999,0): got %d, want %d", got, 7)
	}

	// Clamp y past the last row.
	if got := m.screenToOffset(1, 99); got != 9 {
		t.Fatalf("offset at (1,99): got %d, want %d", got, 9)
	}
}

func TestHitTest_SpacerRowsMapToRowAbove(t *testing.T) {
	m := New(Config{Text: "abc\ndef"})

	if got := m.screenToOffset(1, 1); got != 1 {
		t.Fatalf("spacer below row 0: got %d, want 1", got)
	}
	if got := m.screenToOffset(1, 2); got != 5 {
		t.Fatalf("row 1: got %d, want 5", got)
	}
}

func TestHitTest_MarginMapsToRowStart(t *testing.T) {
	m := New(Config{Text: "hello", Prefs: densePrefs()})
	m = m.SetSize(80, 5)

	if got := m.screenToOffset(0, 0); got != 0 {
		t.Fatalf("margin click: got %d, want 0", got)
	}
	if got := m.screenToOffset(5+1, 0); got != 1 {
		t.Fatalf("second cell: got %d, want 1", got)
	}
	if got := m.screenToOffset(79, 0); got != 5 {
		t.Fatalf("past end: got %d, want 5", got)
	}
}

func TestHitTest_PositionIsInsideRenderedTree(t *testing.T) {
	m := New(Config{Text: "hello world", Prefs: densePrefs()})

	p := m.screenToPosition(7, 0)
	if p.Node == nil || p.Node.Text != "wor" || p.Offset != 1 {
		t.Fatalf("position: got %+v, want offset 1 in %q", p, "wor")
	}
}

func TestHitTest_EmptyDocument(t *testing.T) {
	m := New(Config{})
	if got := m.screenToOffset(3, 3); got != 0 {
		t.Fatalf("empty document: got %d, want 0", got)
	}
}

func TestMouse_ClickMovesCursorThroughTree(t *testing.T) {
	m := New(Config{Text: "hello world", Prefs: densePrefs()})
	m = m.SetSize(80, 5)

	m, _ = m.Update(tea.MouseMsg{X: 5 + 7, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 5 + 7, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if got := m.Buffer().Cursor(); got != 7 {
		t.Fatalf("cursor after click: got %d, want 7", got)
	}
	caret := m.Caret()
	if caret.Node == nil || caret.Node.Text != "wor" || caret.Offset != 1 {
		t.Fatalf("caret after click: got %+v", caret)
	}
}

func TestMouse_DragSelects(t *testing.T) {
	m := New(Config{Text: "hello world", Prefs: densePrefs()})
	m = m.SetSize(80, 5)

	m, _ = m.Update(tea.MouseMsg{X: 5, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 5 + 5, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 5 + 5, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if got := m.Buffer().SelectedText(); got != "hello" {
		t.Fatalf("selection after drag: got %q, want %q", got, "hello")
	}
}

func TestMouse_OutOfBoundsIgnored(t *testing.T) {
	m := New(Config{Text: "abc"})
	m = m.SetSize(10, 2)
	m, _ = m.Update(tea.MouseMsg{X: 50, Y: 50, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.Buffer().Cursor(); got != 0 {
		t.Fatalf("cursor after out-of-bounds click: got %d, want 0", got)
	}
}

func TestCursorScreenPos(t *testing.T) {
	m := New(Config{Text: "ab\ncd"})
	m = m.SetSize(80, 10)
	m.Buffer().SetCursor(4)
	m, _ = m.Update(nil)

	x, y, ok := m.CursorScreenPos()
	if !ok || x != 5+1 || y != 2 {
		t.Fatalf("cursor screen pos: got (%d,%d,%v), want (6,2,true)", x, y, ok)
	}
}

func TestMouse_DragPastBottomScrolls(t *testing.T) {
	m := New(Config{Text: "a\nb\nc\nd\ne", Prefs: densePrefs()})
	m = m.SetSize(20, 2)

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})

	if got := m.viewport.YOffset; got != 1 {
		t.Fatalf("yoffset after drag past bottom: got %d, want 1", got)
	}
	if got := m.Buffer().SelectedText(); got != "a\nb\n" {
		t.Fatalf("selection after drag: got %q, want %q", got, "a\nb\n")
	}
}
