package test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// Simulate drives model through cmds and every command they spawn until
// none remain. Batches are expanded in order; a quit message stops the
// pump with the model as it stands.
func Simulate(t *testing.T, model tea.Model, cmds ...tea.Cmd) tea.Model {
	t.Helper()
	pending := append([]tea.Cmd{}, cmds...)
	for len(pending) > 0 {
		cmd := pending[0]
		pending = pending[1:]
		if cmd == nil {
			continue
		}
		msg := cmd()
		if msg == nil {
			continue
		}
		switch msg := msg.(type) {
		case tea.BatchMsg:
			pending = append(pending, msg...)
			continue
		case tea.QuitMsg:
			return model
		}
		var next tea.Cmd
		model, next = model.Update(msg)
		pending = append(pending, next)
	}
	return model
}

// Press fakes one key event, named the way bubbletea reports keys.
func Press(name string) tea.Cmd {
	return func() tea.Msg { return KeyMsg(name) }
}

// Keys turns key names into one Press command each.
func Keys(names ...string) []tea.Cmd {
	cmds := make([]tea.Cmd, len(names))
	for i, name := range names {
		cmds[i] = Press(name)
	}
	return cmds
}

// Resize fakes the window size report models wait for before rendering.
func Resize(width, height int) tea.Cmd {
	return func() tea.Msg { return tea.WindowSizeMsg{Width: width, Height: height} }
}

func KeyMsg(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ", "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}
