package intents

import tea "github.com/charmbracelet/bubbletea"

// Intent represents a high-level action the dashboard can perform. It
// decouples inputs (key chords, mouse, the auto-refresh watcher) from the
// actual capability. Command intents carry no operands: those are resolved
// at dispatch time from the current selection and the saved-selection
// register.
type Intent interface {
	isIntent()
}

func Invoke(intent Intent) tea.Cmd {
	return func() tea.Msg {
		return intent
	}
}
