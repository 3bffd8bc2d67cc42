// Package app is the mono program: the bionic editor, its status bar, and
// the clear confirmation, wired to the preference store.
package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mono/editor"
	"github.com/iw2rmb/mono/internal/logging"
	"github.com/iw2rmb/mono/prefs"
)

// Placeholder is shown while the document is empty.
const Placeholder = "Start typing…"

// Config configures the program Model.
type Config struct {
	// Store holds the document and preferences. A nil store keeps nothing.
	Store *prefs.Store

	// ExportDir receives exported files. Empty means the working directory.
	ExportDir string

	Clipboard editor.Clipboard
	KeyMap    KeyMap
	Log       *slog.Logger
}

// Model is the top-level Bubble Tea model.
type Model struct {
	cfg  Config
	keys KeyMap
	log  *slog.Logger

	editor editor.Model
	prefs  prefs.Preferences

	width  int
	height int

	confirming bool
	notice     string

	fault *fault
}

func New(cfg Config) Model {
	if cfg.Log == nil {
		cfg.Log = logging.Discard().WithComponent("app")
	}
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:   cfg,
		keys:  cfg.KeyMap,
		log:   cfg.Log,
		fault: &fault{},
	}
	m.load()
	return m
}

// load rebuilds the editor from the store.
func (m *Model) load() {
	st := m.cfg.Store.Load()
	m.prefs = st.Preferences
	m.confirming = false
	m.notice = ""
	m.editor = editor.New(editor.Config{
		Text:        st.Text,
		Prefs:       st.Preferences,
		Style:       editor.StyleFor(st.Theme),
		Placeholder: Placeholder,
		Clipboard:   m.cfg.Clipboard,
		OnChange:    persistText(m.cfg.Store, m.log),
	})
	m.editor = m.editor.SetValue(st.Text)
	m.resize()
}

// persistText saves the document on every text change. Failures are logged
// and never reach the UI.
func persistText(store *prefs.Store, log *slog.Logger) func(editor.ChangeEvent) {
	return func(ev editor.ChangeEvent) {
		if !ev.TextChanged {
			return
		}
		if err := store.SaveText(ev.Text); err != nil {
			log.Warn("persist text", "err", err)
		}
	}
}

func (m Model) Editor() editor.Model { return m.editor }

func (m Model) Preferences() prefs.Preferences { return m.prefs }

// Confirming reports whether the clear confirmation is open.
func (m Model) Confirming() bool { return m.confirming }

// Err returns the fault that put the program into its fallback view.
func (m Model) Err() error { return m.fault.err }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.recordFault(r)
			next, cmd = m, nil
		}
	}()

	if m.fault.err != nil {
		return m.updateFallback(msg)
	}
	return m.update(msg)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.confirming {
			return m.answerConfirm(msg), nil
		}
		if next, ok := m.handleAction(msg); ok {
			return next, nil
		}
		m.notice = ""
	case tea.MouseMsg:
		if m.confirming {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.resize()
	return m, cmd
}

func (m Model) handleAction(msg tea.KeyMsg) (Model, bool) {
	switch {
	case key.Matches(msg, m.keys.FontSmaller):
		return m.setPreferences(m.prefs.DecreaseFontSize()), true
	case key.Matches(msg, m.keys.FontLarger):
		return m.setPreferences(m.prefs.IncreaseFontSize()), true
	case key.Matches(msg, m.keys.NextFont):
		return m.setPreferences(m.prefs.NextFontFamily()), true
	case key.Matches(msg, m.keys.Density):
		return m.setPreferences(m.prefs.ToggleDensity()), true
	case key.Matches(msg, m.keys.Theme):
		return m.setPreferences(m.prefs.ToggleTheme()), true
	case key.Matches(msg, m.keys.ExportText):
		return m.exportText(), true
	case key.Matches(msg, m.keys.ExportHTML):
		return m.exportHTML(), true
	case key.Matches(msg, m.keys.Clear):
		if m.editor.Value() != "" {
			m.confirming = true
			m.notice = ""
		}
		return m, true
	}
	return m, false
}

func (m Model) setPreferences(next prefs.Preferences) Model {
	if next == m.prefs {
		return m
	}
	if err := m.cfg.Store.SavePreferences(m.prefs, next); err != nil {
		m.log.Warn("persist preferences", "err", err)
	}
	if next.Theme != m.prefs.Theme {
		m.editor = m.editor.SetStyle(editor.StyleFor(next.Theme))
	}
	m.prefs = next
	m.editor = m.editor.SetPreferences(next)
	return m
}

// answerConfirm closes the clear confirmation. Only the confirm binding
// clears; every other key declines.
func (m Model) answerConfirm(msg tea.KeyMsg) Model {
	m.confirming = false
	if !key.Matches(msg, m.keys.Confirm) {
		return m
	}
	if err := m.cfg.Store.Clear(); err != nil {
		m.log.Warn("clear stored text", "err", err)
	}
	m.editor = m.editor.SetValue("")
	m.resize()
	return m
}

// resize gives the editor the rows left over by the status bar.
func (m *Model) resize() {
	h := m.height
	if m.statusVisible() {
		h -= statusHeight
	}
	if h < 0 {
		h = 0
	}
	if m.editor.Width() != m.width || m.editor.Height() != h {
		m.editor = m.editor.SetSize(m.width, h)
	}
}

func (m Model) statusVisible() bool { return m.editor.Value() != "" }
