package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/mono/buffer"
	"github.com/iw2rmb/mono/prefs"
)

// mark returns a style that wraps its text in l and r, which survives the
// ASCII color profile used under test.
func mark(l, r string) lipgloss.Style {
	return lipgloss.NewStyle().Transform(func(s string) string { return l + s + r })
}

func markedStyle() Style {
	return Style{
		Text:        lipgloss.NewStyle(),
		Emphasis:    mark("[", "]"),
		Selection:   mark("{", "}"),
		Cursor:      mark("|", ""),
		Placeholder: mark("(", ")"),
	}
}

func densePrefs() prefs.Preferences {
	p := prefs.Defaults()
	p.Density = prefs.DensityDense
	return p
}

func stripANSI(s string) string { return ansi.Strip(s) }

func rowText(r layoutRow) string {
	var sb strings.Builder
	for _, c := range r.cells {
		sb.WriteString(c.text)
	}
	return sb.String()
}

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.s = s
	return nil
}

func bufferRange(start, end int) buffer.Range {
	return buffer.Range{Start: start, End: end}
}
