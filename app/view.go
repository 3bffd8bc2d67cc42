package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/mono/editor"
)

const statusHeight = 1

const (
	confirmPrompt = "Are you sure you want to clear all text? This action cannot be undone."
	confirmHint   = "y to clear, any other key to cancel"

	fallbackTitle   = "Something went wrong"
	fallbackMessage = "An unexpected error has occurred. Please try again."
)

func (m Model) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			m.recordFault(r)
			out = m.fallbackView()
		}
	}()

	if m.fault.err != nil {
		return m.fallbackView()
	}

	pal := editor.PaletteFor(m.prefs.Theme)
	body := m.editor.View()
	if m.statusVisible() {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.statusView(pal))
	}
	if m.width > 0 && m.height > 0 {
		body = lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, body,
			lipgloss.WithWhitespaceBackground(pal.Background))
	}
	if m.confirming {
		body = overlay.Composite(m.confirmView(pal), body, overlay.Center, overlay.Center, 0, 0)
	}
	return body
}

func (m Model) statusView(pal editor.Palette) string {
	muted := lipgloss.NewStyle().Foreground(pal.Muted).Background(pal.Background)
	strong := muted.Foreground(pal.Foreground)
	gap := muted.Render("   ")

	p := m.prefs
	parts := []string{
		muted.Render(wordLabel(m.editor.WordCount())),
		strong.Render(strconv.Itoa(p.FontSize)),
		strong.Render(p.FontFamily.Label()),
		strong.Render(p.Density.Label()),
		strong.Render(p.Theme.Label()),
	}
	left := strings.Join(parts, gap)

	right := strong.Render(m.notice)
	if m.notice == "" {
		h := helpFor(pal)
		if m.width > 0 {
			h.Width = max(m.width-lipgloss.Width(left)-lipgloss.Width(gap)-2, 0)
		}
		right = h.ShortHelpView(m.keys.ShortHelp())
	}

	bar := lipgloss.NewStyle().Background(pal.Background).Padding(0, 1)
	if m.width > 0 {
		bar = bar.Width(m.width).MaxWidth(m.width).MaxHeight(statusHeight)
	}
	return bar.Render(left + gap + right)
}

// helpFor returns a help view drawn in the palette's colors.
func helpFor(pal editor.Palette) help.Model {
	h := help.New()
	base := lipgloss.NewStyle().Background(pal.Background)
	h.Styles.ShortKey = base.Foreground(pal.Foreground)
	h.Styles.ShortDesc = base.Foreground(pal.Muted)
	h.Styles.ShortSeparator = base.Foreground(pal.Muted)
	h.Styles.Ellipsis = base.Foreground(pal.Muted)
	return h
}

func wordLabel(n int) string {
	if n == 1 {
		return "1 word"
	}
	return strconv.Itoa(n) + " words"
}

func (m Model) confirmView(pal editor.Palette) string {
	text := lipgloss.NewStyle().Foreground(pal.Foreground).Background(pal.Background)
	hint := text.Foreground(pal.Muted)

	width := 40
	if m.width > 0 && m.width-6 < width {
		width = max(m.width-6, 10)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		text.Width(width).Render(confirmPrompt),
		text.Width(width).Render(""),
		hint.Width(width).Render(confirmHint),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(pal.Muted).
		BorderBackground(pal.Background).
		Background(pal.Background).
		Padding(1, 2).
		Render(body)
}

func (m Model) fallbackView() string {
	pal := editor.PaletteFor(m.prefs.Theme)
	title := lipgloss.NewStyle().Bold(true).Foreground(pal.Foreground).Background(pal.Background)
	muted := lipgloss.NewStyle().Foreground(pal.Muted).Background(pal.Background)

	body := lipgloss.JoinVertical(lipgloss.Center,
		title.Render(fallbackTitle),
		"",
		muted.Render(fallbackMessage),
		"",
		helpFor(pal).ShortHelpView([]key.Binding{m.keys.Retry, m.keys.Quit}),
	)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(pal.Background))
}
