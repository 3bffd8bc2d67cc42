package editor

import "github.com/iw2rmb/mono/prefs"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Display preferences. Font size sets the wrap measure and density the
	// spacing between rows. Theme and family are handled by the host.
	Prefs prefs.Preferences

	Style  Style
	KeyMap KeyMap

	// Placeholder is shown while the document is empty.
	Placeholder string

	// TabWidth in cells. Zero means 4.
	TabWidth int

	// Optional integrations.
	Clipboard Clipboard
	OnChange  func(ChangeEvent)
}
