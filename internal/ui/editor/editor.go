// Package editor collects free-text input by opening the user's editor on a
// temporary file, the same way jj collects commit descriptions.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Request describes one prompt. Prompt is rendered as removable "JJ:"
// comment lines below the buffer; Initial pre-fills the buffer.
type Request struct {
	Prompt  string
	Initial string
}

// Result carries the answer. An empty buffer (after stripping comment lines
// and whitespace) counts as cancelling the prompt.
type Result struct {
	Text      string
	Cancelled bool
	Err       error
}

// Service asks the user for free-text input. done converts the result into
// the message the caller wants back.
type Service interface {
	Ask(request Request, done func(Result) tea.Msg) tea.Cmd
}

// OSService runs a real editor. Command overrides $EDITOR when set;
// with neither set it falls back to vim.
type OSService struct {
	Command string
}

func (s OSService) Ask(request Request, done func(Result) tea.Msg) tea.Cmd {
	file, err := os.CreateTemp("", "jjdag-*.jjdescription")
	if err != nil {
		return func() tea.Msg { return done(Result{Err: err}) }
	}
	path := file.Name()
	_, err = file.WriteString(fileContent(request))
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return func() tea.Msg { return done(Result{Err: err}) }
	}

	editor := s.Command
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vim"
	}

	c := exec.Command(editor, path)
	return tea.ExecProcess(c, func(execErr error) tea.Msg {
		defer os.Remove(path)
		if execErr != nil {
			return done(Result{Err: fmt.Errorf("editor %s: %w", editor, execErr)})
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return done(Result{Err: readErr})
		}
		return done(resultFrom(data))
	})
}

func fileContent(request Request) string {
	var b strings.Builder
	if request.Initial != "" {
		b.WriteString(request.Initial)
		b.WriteString("\n")
	}
	if request.Prompt != "" {
		b.WriteString("\n\nJJ: ")
		b.WriteString(request.Prompt)
		b.WriteString("\n")
		b.WriteString("JJ: Lines starting with \"JJ:\" (like this one) will be removed.\n")
	}
	return b.String()
}

func resultFrom(data []byte) Result {
	var kept []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "JJ:") {
			continue
		}
		kept = append(kept, line)
	}
	text := strings.TrimSpace(strings.Join(kept, "\n"))
	if text == "" {
		return Result{Cancelled: true}
	}
	return Result{Text: text}
}
