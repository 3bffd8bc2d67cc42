// Package prefs holds the document text and display preferences and persists
// them in a local key-value store.
//
// Every value is stored as a plain string under a fixed key. Loading never
// fails: a missing or corrupt value falls back to its default, field by field.
package prefs

import (
	"fmt"
	"strconv"
)

// Key is a persistence key.
type Key string

const (
	KeyText       Key = "mono-text"
	KeyFontSize   Key = "mono-fontSize"
	KeyDensity    Key = "mono-density"
	KeyFontFamily Key = "mono-fontFamily"
	KeyTheme      Key = "mono-theme"
)

// Font size bounds, in pixels.
const (
	MinFontSize     = 12
	MaxFontSize     = 32
	FontSizeStep    = 2
	DefaultFontSize = 18
)

// Density is the line spacing of the document, persisted under KeyDensity.
type Density string

const (
	DensityLoose Density = "loose"
	DensityDense Density = "dense"
)

func (d Density) Valid() bool { return d == DensityLoose || d == DensityDense }

// Label is the display name used by the status bar.
func (d Density) Label() string {
	if d == DensityDense {
		return "Dense"
	}
	return "Loose"
}

// Theme selects the dark or light palette.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func (t Theme) Valid() bool { return t == ThemeDark || t == ThemeLight }

func (t Theme) Label() string {
	if t == ThemeLight {
		return "Light"
	}
	return "Dark"
}

// FontFamily is a CSS font-family value from FontFamilies.
type FontFamily string

const (
	FontInter     FontFamily = "Inter"
	FontGeist     FontFamily = "Geist"
	FontSystem    FontFamily = "ui-sans-serif"
	FontGeorgia   FontFamily = "Georgia"
	FontMonospace FontFamily = "ui-monospace"
)

// FontFamilies is the fixed set of selectable families, in menu order.
var FontFamilies = []FontFamily{FontInter, FontGeist, FontSystem, FontGeorgia, FontMonospace}

func (f FontFamily) Valid() bool {
	for _, ff := range FontFamilies {
		if f == ff {
			return true
		}
	}
	return false
}

func (f FontFamily) Label() string {
	switch f {
	case FontSystem:
		return "System"
	case FontMonospace:
		return "Mono"
	default:
		return string(f)
	}
}

// Preferences are the display settings of the editor.
type Preferences struct {
	FontSize   int
	FontFamily FontFamily
	Density    Density
	Theme      Theme
}

// State is everything the store persists.
type State struct {
	Text string
	Preferences
}

// Defaults returns the preferences applied when nothing valid is stored.
func Defaults() Preferences {
	return Preferences{
		FontSize:   DefaultFontSize,
		FontFamily: FontInter,
		Density:    DensityLoose,
		Theme:      ThemeDark,
	}
}

func (p Preferences) IncreaseFontSize() Preferences {
	p.FontSize = clampFontSize(p.FontSize + FontSizeStep)
	return p
}

func (p Preferences) DecreaseFontSize() Preferences {
	p.FontSize = clampFontSize(p.FontSize - FontSizeStep)
	return p
}

// NextFontFamily cycles through FontFamilies.
func (p Preferences) NextFontFamily() Preferences {
	for i, f := range FontFamilies {
		if f == p.FontFamily {
			p.FontFamily = FontFamilies[(i+1)%len(FontFamilies)]
			return p
		}
	}
	p.FontFamily = FontFamilies[0]
	return p
}

func (p Preferences) ToggleDensity() Preferences {
	if p.Density == DensityDense {
		p.Density = DensityLoose
	} else {
		p.Density = DensityDense
	}
	return p
}

func (p Preferences) ToggleTheme() Preferences {
	if p.Theme == ThemeLight {
		p.Theme = ThemeDark
	} else {
		p.Theme = ThemeLight
	}
	return p
}

// ParseFontSize parses a stored font size. Values outside
// [MinFontSize, MaxFontSize] are rejected.
func ParseFontSize(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse font size %q: %w", s, err)
	}
	if n < MinFontSize || n > MaxFontSize {
		return 0, fmt.Errorf("font size %d out of range [%d,%d]", n, MinFontSize, MaxFontSize)
	}
	return n, nil
}

// FormatFontSize renders a font size in its stored decimal form.
func FormatFontSize(n int) string { return strconv.Itoa(n) }

func clampFontSize(n int) int {
	if n < MinFontSize {
		return MinFontSize
	}
	if n > MaxFontSize {
		return MaxFontSize
	}
	return n
}
