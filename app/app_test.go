package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/mono/export"
	"github.com/iw2rmb/mono/prefs"
)

func newTestModel(t *testing.T, kv prefs.KV) Model {
	t.Helper()
	return New(Config{Store: prefs.NewStore(kv, nil), ExportDir: t.TempDir()})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		if r == ' ' {
			m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func altKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func plainView(m Model) string { return ansi.Strip(m.View()) }

func TestHelloWorldRendersAndPersists(t *testing.T) {
	kv := prefs.NewMemoryKV(nil)
	m := newTestModel(t, kv)

	m = typeText(t, m, "hello world")

	assert.Equal(t, "<strong>hel</strong>lo <strong>wor</strong>ld", m.Editor().Markup().HTML())
	assert.Equal(t, "hello world", kv.Snapshot()[string(prefs.KeyText)])
}

func TestFontSizeFloor(t *testing.T) {
	kv := prefs.NewMemoryKV(nil)
	m := newTestModel(t, kv)
	require.Equal(t, 18, m.Preferences().FontSize)

	m = send(t, m, altKey("-"), altKey("-"), altKey("-"))
	assert.Equal(t, 12, m.Preferences().FontSize)
	assert.Equal(t, 12, m.Editor().Preferences().FontSize)

	m = send(t, m, altKey("-"))
	assert.Equal(t, 12, m.Preferences().FontSize)
	assert.Equal(t, "12", kv.Snapshot()[string(prefs.KeyFontSize)])

	m = send(t, m, altKey("="), altKey("+"))
	assert.Equal(t, 16, m.Preferences().FontSize)
}

func TestThemeToggleTwiceReturns(t *testing.T) {
	kv := prefs.NewMemoryKV(nil)
	m := newTestModel(t, kv)
	orig := m.Preferences().Theme

	m = send(t, m, altKey("t"))
	assert.NotEqual(t, orig, m.Preferences().Theme)
	assert.Equal(t, string(prefs.ThemeLight), kv.Snapshot()[string(prefs.KeyTheme)])

	m = send(t, m, altKey("t"))
	assert.Equal(t, orig, m.Preferences().Theme)
	assert.Equal(t, string(orig), kv.Snapshot()[string(prefs.KeyTheme)])
}

func TestFamilyAndDensityPersist(t *testing.T) {
	kv := prefs.NewMemoryKV(nil)
	m := newTestModel(t, kv)

	m = send(t, m, altKey("f"), altKey("d"))
	assert.Equal(t, prefs.FontGeist, m.Preferences().FontFamily)
	assert.Equal(t, prefs.DensityDense, m.Preferences().Density)
	assert.Equal(t, string(prefs.FontGeist), kv.Snapshot()[string(prefs.KeyFontFamily)])
	assert.Equal(t, string(prefs.DensityDense), kv.Snapshot()[string(prefs.KeyDensity)])
}

func TestClearAccepted(t *testing.T) {
	kv := prefs.NewMemoryKV(nil)
	m := newTestModel(t, kv)
	m = typeText(t, m, "abc")
	require.Contains(t, kv.Snapshot(), string(prefs.KeyText))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlK})
	require.True(t, m.Confirming())

	m = send(t, m, runeKey("y"))
	assert.False(t, m.Confirming())
	assert.Equal(t, "", m.Editor().Value())
	assert.NotContains(t, kv.Snapshot(), string(prefs.KeyText))
}

func TestClearDeclined(t *testing.T) {
	kv := prefs.NewMemoryKV(nil)
	m := newTestModel(t, kv)
	m = typeText(t, m, "abc")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlK}, runeKey("n"))
	assert.False(t, m.Confirming())
	assert.Equal(t, "abc", m.Editor().Value())
	assert.Equal(t, "abc", kv.Snapshot()[string(prefs.KeyText)])
}

func TestClearOnEmptyDocumentIsNoop(t *testing.T) {
	m := newTestModel(t, prefs.NewMemoryKV(nil))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlK})
	assert.False(t, m.Confirming())
}

func TestLoadsPersistedState(t *testing.T) {
	kv := prefs.NewMemoryKV(map[string]string{
		string(prefs.KeyText):     "stored",
		string(prefs.KeyFontSize): "24",
		string(prefs.KeyTheme):    "light",
	})
	m := newTestModel(t, kv)

	assert.Equal(t, "stored", m.Editor().Value())
	assert.Equal(t, 24, m.Preferences().FontSize)
	assert.Equal(t, prefs.ThemeLight, m.Preferences().Theme)
	assert.Equal(t, 6, m.Editor().Buffer().Cursor())
}

func TestStatusBarOnlyWithText(t *testing.T) {
	m := newTestModel(t, prefs.NewMemoryKV(nil))
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 10})

	view := plainView(m)
	assert.NotContains(t, view, "words")
	assert.Contains(t, view, Placeholder)
	assert.Equal(t, 10, m.Editor().Height())

	m = typeText(t, m, "hi there")
	view = plainView(m)
	assert.Contains(t, view, "2 words")
	for _, want := range []string{"18", "Inter", "Loose", "Dark", "alt+- smaller"} {
		assert.Contains(t, view, want)
	}
	assert.Equal(t, 10-statusHeight, m.Editor().Height())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL}, tea.KeyMsg{Type: tea.KeyBackspace})
	m = typeText(t, m, "one")
	assert.Contains(t, plainView(m), "1 word")
}

func TestConfirmDialogRendersOverEditor(t *testing.T) {
	m := newTestModel(t, prefs.NewMemoryKV(nil))
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	m = typeText(t, m, "abc")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlK})

	view := plainView(m)
	assert.Contains(t, view, "Are you sure")
	assert.Contains(t, view, confirmHint)
}

func TestExportWritesFiles(t *testing.T) {
	dir := t.TempDir()
	m := New(Config{Store: prefs.NewStore(prefs.NewMemoryKV(nil), nil), ExportDir: dir})
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 10})
	m = typeText(t, m, "hi")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	data, err := os.ReadFile(filepath.Join(dir, export.TextFileName))
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))
	assert.Contains(t, plainView(m), "Exported")

	m = send(t, m, altKey("s"))
	data, err = os.ReadFile(filepath.Join(dir, export.HTMLFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<strong>h</strong>i")
	assert.Equal(t, "hi", m.Editor().Value())
}

func TestExportEmptyDocumentWritesNothing(t *testing.T) {
	dir := t.TempDir()
	m := New(Config{ExportDir: dir})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	_, err := os.Stat(filepath.Join(dir, export.TextFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, prefs.NewMemoryKV(nil))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// panicKV panics on writes while armed.
type panicKV struct {
	*prefs.MemoryKV
	armed bool
}

func (p *panicKV) Set(key, value string) error {
	if p.armed {
		panic("storage exploded")
	}
	return p.MemoryKV.Set(key, value)
}

func TestPanicShowsFallbackAndRetryRecovers(t *testing.T) {
	kv := &panicKV{MemoryKV: prefs.NewMemoryKV(map[string]string{string(prefs.KeyText): "kept"}), armed: true}
	m := newTestModel(t, kv)
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 10})

	m = typeText(t, m, "x")
	require.Error(t, m.Err())
	assert.Contains(t, m.Err().Error(), "storage exploded")
	assert.Contains(t, plainView(m), fallbackTitle)

	// Input other than retry is ignored.
	m = typeText(t, m, "z")
	require.Error(t, m.Err())

	kv.armed = false
	m = send(t, m, runeKey("r"))
	require.NoError(t, m.Err())
	assert.Equal(t, "kept", m.Editor().Value())
	assert.NotContains(t, plainView(m), fallbackTitle)
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	short := km.ShortHelp()
	require.NotEmpty(t, short)
	assert.Equal(t, "alt+-", short[0].Help().Key)

	var descs []string
	for _, group := range km.FullHelp() {
		for _, b := range group {
			descs = append(descs, b.Help().Desc)
		}
	}
	assert.Contains(t, strings.Join(descs, ","), "export html")
	assert.Contains(t, descs, "clear")
}
