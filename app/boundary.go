package app

import (
	"fmt"
	"runtime/debug"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// fault is shared by every copy of a Model so that a panic caught in View
// is seen by the next Update.
type fault struct {
	err error
}

func (m Model) recordFault(r any) {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	m.fault.err = fmt.Errorf("recovered panic: %w", err)
	m.log.Error("application error", "err", err, "stack", string(debug.Stack()))
}

// updateFallback handles input while the fallback view is shown. Retry
// rebuilds the editor from the store.
func (m Model) updateFallback(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Retry):
			m.fault.err = nil
			m.load()
		}
	}
	return m, nil
}
