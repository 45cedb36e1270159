package test

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anthrofract/jjdag/internal/ui/editor"
)

// StubEditor answers free-text prompts from a script. An empty response
// behaves like the user saving an empty file, which cancels the prompt.
type StubEditor struct {
	Responses []string
	next      int
}

func (s *StubEditor) Ask(_ editor.Request, done func(editor.Result) tea.Msg) tea.Cmd {
	var text string
	if s.next < len(s.Responses) {
		text = s.Responses[s.next]
	}
	s.next++
	return func() tea.Msg {
		if text == "" {
			return done(editor.Result{Cancelled: true})
		}
		return done(editor.Result{Text: text})
	}
}
