package monitor

import tea "github.com/charmbracelet/bubbletea"

// ViewMode defines what the body of the window shows.
type ViewMode int

const (
	ViewChart ViewMode = iota
	ViewSessions
)

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyRefresh     = "r"
	KeyToggleTable = "t"
	KeyCollapse    = "esc"
	KeyToggleHelp  = "?"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Quitting always wins, even over the help overlay.
	if key == KeyQuit || key == KeyQuitAlt {
		m.quitting = true
		return true, tea.Quit
	}

	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp && key == KeyCollapse {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyRefresh:
		return true, m.refresh()

	case KeyToggleTable:
		if m.viewMode == ViewSessions {
			m.viewMode = ViewChart
		} else {
			m.viewMode = ViewSessions
		}
		return true, nil

	case KeyCollapse:
		m.viewMode = ViewChart
		return true, nil
	}

	// Remaining keys scroll the session table.
	if m.viewMode == ViewSessions {
		var cmd tea.Cmd
		m.sessions, cmd = m.sessions.Update(msg)
		return true, cmd
	}

	return false, nil
}
