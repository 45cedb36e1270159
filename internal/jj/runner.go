package jj

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anthrofract/jjdag/internal/screen"
)

const executable = "jj"

// Runner executes jj commands. The dashboard never touches the
// executable directly, which keeps every command observable in tests.
type Runner interface {
	// Output runs cmd to completion and returns the captured stream
	// selected by cmd.ReadStdout.
	Output(cmd Command) ([]byte, error)
	// Interactive hands the terminal to cmd and resumes the program
	// with the message built by done once the command exits. done
	// receives jj's stderr with non-styling escape sequences removed.
	Interactive(cmd Command, done func(stderr []byte, err error) tea.Msg) tea.Cmd
}

// CommandError is a non-zero exit reported by jj together with what it
// wrote to stderr. Spawn and I/O failures are returned as plain errors
// instead and abort the program.
type CommandError struct {
	Stderr []byte
	Err    error
}

func (e *CommandError) Error() string {
	if len(e.Stderr) > 0 {
		return string(e.Stderr)
	}
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// OSRunner runs commands against the real executable.
type OSRunner struct{}

func (OSRunner) Output(cmd Command) ([]byte, error) {
	c := exec.Command(executable, cmd.Argv()...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		return nil, commandError(stderr.Bytes(), err)
	}
	if cmd.ReadStdout {
		return stdout.Bytes(), nil
	}
	return stderr.Bytes(), nil
}

func (OSRunner) Interactive(cmd Command, done func(stderr []byte, err error) tea.Msg) tea.Cmd {
	c := exec.Command(executable, cmd.Argv()...)
	// stdin and stdout are left for the terminal; jj reports through
	// stderr while its editor or pager owns the screen.
	stderr := &bytes.Buffer{}
	c.Stderr = stderr
	return tea.ExecProcess(c, func(err error) tea.Msg {
		out := []byte(screen.StripNonStyle(stderr.String()))
		if err != nil {
			return done(nil, commandError(out, err))
		}
		return done(out, nil)
	})
}

func commandError(stderr []byte, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{Stderr: bytes.TrimSpace(stderr), Err: err}
	}
	return err
}

// EnsureWorkspaceRoot verifies that repository points into a jj
// workspace and returns the workspace root jj reports.
func EnsureWorkspaceRoot(repository string) (string, error) {
	c := exec.Command(executable,
		"--repository", repository,
		"workspace", "root",
		"--color", "always",
	)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		return "", commandError(stderr.Bytes(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
