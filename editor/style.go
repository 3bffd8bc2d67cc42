package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/mono/prefs"
)

// Style controls the editor's rendering.
type Style struct {
	// Viewport styles the blank area below the last row.
	Viewport lipgloss.Style

	// Text is the plain remainder of each word and all whitespace.
	Text lipgloss.Style
	// Emphasis is the bold prefix of each word.
	Emphasis lipgloss.Style

	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	Placeholder lipgloss.Style
}

// Palette is the set of colors a theme is built from.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Selection  lipgloss.Color
}

var (
	DarkPalette = Palette{
		Background: lipgloss.Color("#000000"),
		Foreground: lipgloss.Color("#f5f5f5"),
		Muted:      lipgloss.Color("#525252"),
		Selection:  lipgloss.Color("#404040"),
	}
	LightPalette = Palette{
		Background: lipgloss.Color("#ffffff"),
		Foreground: lipgloss.Color("#000000"),
		Muted:      lipgloss.Color("#a3a3a3"),
		Selection:  lipgloss.Color("#d4d4d4"),
	}
)

// PaletteFor returns the palette of theme t.
func PaletteFor(t prefs.Theme) Palette {
	if t == prefs.ThemeLight {
		return LightPalette
	}
	return DarkPalette
}

// StyleFromPalette builds a Style whose cells all carry the palette background.
func StyleFromPalette(p Palette) Style {
	base := lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Background)
	return Style{
		Viewport:    lipgloss.NewStyle().Background(p.Background),
		Text:        base,
		Emphasis:    base.Bold(true),
		Selection:   base.Background(p.Selection),
		Cursor:      lipgloss.NewStyle().Foreground(p.Background).Background(p.Foreground),
		Placeholder: base.Foreground(p.Muted),
	}
}

// StyleFor returns the editor style for theme t.
func StyleFor(t prefs.Theme) Style {
	return StyleFromPalette(PaletteFor(t))
}

func DarkStyle() Style { return StyleFor(prefs.ThemeDark) }

func LightStyle() Style { return StyleFor(prefs.ThemeLight) }
