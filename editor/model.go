package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mono/bionic"
	"github.com/iw2rmb/mono/buffer"
	"github.com/iw2rmb/mono/prefs"
)

// Model is a Bubble Tea component that edits a buffer and renders it in
// bionic-reading form.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model

	doc    document
	layout layoutCache

	lastBufVersion  uint64
	lastTextVersion uint64

	mouseDragging bool
	mouseAnchor   int
}

func New(cfg Config) Model {
	if cfg.Prefs == (prefs.Preferences{}) {
		cfg.Prefs = prefs.Defaults()
	}
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(SanitizePaste(cfg.Text)),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.viewport.Style = cfg.Style.Viewport
	m.viewport.MouseWheelEnabled = true
	// The editor owns the arrow and paging keys.
	m.viewport.KeyMap = viewport.KeyMap{}

	m.transform()
	m.lastBufVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

// Value returns the document text.
func (m Model) Value() string { return m.buf.Text() }

// SetValue replaces the document and moves the cursor to its end. Control
// characters other than \n and \t are dropped and lone \r becomes \n. No
// ChangeEvent is emitted.
func (m Model) SetValue(text string) Model {
	m.buf.SetText(SanitizePaste(text))
	m.syncFromBuffer()
	m.followCursor()
	return m
}

func (m Model) Preferences() prefs.Preferences { return m.cfg.Prefs }

// SetPreferences applies new display preferences and relayouts.
func (m Model) SetPreferences(p prefs.Preferences) Model {
	if p == m.cfg.Prefs {
		return m
	}
	m.cfg.Prefs = p
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Style() Style { return m.cfg.Style }

func (m Model) SetStyle(st Style) Model {
	m.cfg.Style = st
	m.viewport.Style = st.Viewport
	m.rebuildContent()
	return m
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Width() int  { return m.viewport.Width }
func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// WordCount returns the number of whitespace-separated words.
func (m Model) WordCount() int { return bionic.WordCount(m.buf.Text()) }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}

	prevVersion := m.lastBufVersion
	prevTextVersion := m.lastTextVersion
	if m.syncFromBuffer() {
		if _, isMouse := msg.(tea.MouseMsg); !isMouse || m.mouseDragging {
			m.followCursor()
		}
	}
	m.emitChange(prevVersion, prevTextVersion)
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer runs the transform cycle when the buffer changed since the
// last call and reports whether anything was rebuilt.
func (m *Model) syncFromBuffer() bool {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	textVer := m.buf.TextVersion()
	if ver == m.lastBufVersion && textVer == m.lastTextVersion {
		return false
	}
	if textVer != m.lastTextVersion {
		m.transform()
	} else {
		m.placeCaret(m.buf.Cursor())
	}
	m.lastBufVersion = ver
	m.lastTextVersion = textVer
	m.rebuildContent()
	return true
}

func (m *Model) emitChange(prevVersion, prevTextVersion uint64) {
	if m.cfg.OnChange == nil || m.buf == nil {
		return
	}
	if m.buf.Version() == prevVersion && m.buf.TextVersion() == prevTextVersion {
		return
	}
	m.cfg.OnChange(buildChangeEvent(m.buf, m.buf.TextVersion() != prevTextVersion))
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	l := m.ensureLayout()
	row, _ := l.cursorCell(m.caretOffset())
	top := row * l.spacing
	bottom := top + l.spacing - 1

	y := m.viewport.YOffset
	if top < y {
		m.viewport.SetYOffset(top)
		return
	}
	if bottom >= y+h {
		m.viewport.SetYOffset(bottom - h + 1)
	}
}
