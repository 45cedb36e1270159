// Package test holds scripted stand-ins for the dashboard's external
// collaborators, so model tests can assert on the exact jj invocations
// an interaction produces.
package test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anthrofract/jjdag/internal/jj"
)

// CommandRunner is a jj.Runner that plays back scripted results.
// Commands must arrive in the order they were expected.
type CommandRunner struct {
	t        *testing.T
	expected []*Expectation
	next     int
}

type Expectation struct {
	command jj.Command
	output  []byte
	err     error
}

func NewTestCommandRunner(t *testing.T) *CommandRunner {
	return &CommandRunner{t: t}
}

// Expect schedules cmd as the next allowed invocation.
func (r *CommandRunner) Expect(cmd jj.Command) *Expectation {
	e := &Expectation{command: cmd}
	r.expected = append(r.expected, e)
	return e
}

func (e *Expectation) SetOutput(output []byte) *Expectation {
	e.output = output
	return e
}

func (e *Expectation) SetError(err error) *Expectation {
	e.err = err
	return e
}

// Verify fails the test when scheduled expectations were never run.
func (r *CommandRunner) Verify() {
	r.t.Helper()
	if r.next != len(r.expected) {
		r.t.Errorf("ran %d of %d expected commands", r.next, len(r.expected))
	}
}

func (r *CommandRunner) Output(cmd jj.Command) ([]byte, error) {
	e := r.take(cmd, false)
	return e.output, e.err
}

func (r *CommandRunner) Interactive(cmd jj.Command, done func(stderr []byte, err error) tea.Msg) tea.Cmd {
	e := r.take(cmd, true)
	return func() tea.Msg {
		if e.err != nil {
			return done(nil, e.err)
		}
		return done(e.output, nil)
	}
}

func (r *CommandRunner) take(cmd jj.Command, interactive bool) *Expectation {
	r.t.Helper()
	if r.next >= len(r.expected) {
		r.t.Fatalf("unexpected command: %s", cmd)
	}
	e := r.expected[r.next]
	r.next++
	got := strings.Join(cmd.Argv(), " ")
	want := strings.Join(e.command.Argv(), " ")
	if got != want {
		r.t.Fatalf("command %d:\n got %q\nwant %q", r.next, got, want)
	}
	if e.command.Interactive != interactive {
		r.t.Fatalf("command %q: interactive = %v, want %v", cmd, interactive, e.command.Interactive)
	}
	return e
}
