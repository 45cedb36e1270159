package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anthrofract/jjdag/internal/jj"
	"github.com/anthrofract/jjdag/internal/screen"
	"github.com/anthrofract/jjdag/internal/ui/common"
)

// enqueue replaces the queue with cmds and starts the first step. Steps
// run one at a time; the transcript of everything that ran accumulates
// in the info area, and a failing step drops whatever was still queued.
func (m *Model) enqueue(cmds ...jj.Command) tea.Cmd {
	m.accumulator = nil
	m.queue = append([]jj.Command{}, cmds...)
	m.updateQueueInfo()
	return tea.Batch(m.step(), m.spinner.Tick)
}

func (m *Model) step() tea.Cmd {
	cmd := m.queue[0]
	if cmd.Interactive {
		return m.runner.Interactive(cmd, func(stderr []byte, err error) tea.Msg {
			return commandDoneMsg{output: stderr, err: err}
		})
	}
	return func() tea.Msg {
		output, err := m.runner.Output(cmd)
		return commandDoneMsg{output: output, err: err}
	}
}

func (m *Model) stepDone(msg commandDoneMsg) tea.Cmd {
	if len(m.queue) == 0 {
		// A cleared queue drops results of steps still in flight.
		return nil
	}
	cmd := m.queue[0]
	m.queue = m.queue[1:]

	if len(m.accumulator) > 0 {
		m.accumulator = append(m.accumulator, screen.Line{})
	}
	m.accumulator = append(m.accumulator, commandEcho(cmd)...)

	var cmdErr *jj.CommandError
	if msg.err != nil && !errors.As(msg.err, &cmdErr) {
		return m.fatal(msg.err)
	}
	if cmdErr != nil {
		m.accumulator = append(m.accumulator, screen.ParseLines(cmdErr.Stderr)...)
		transcript := m.accumulator
		m.clear()
		m.info = transcript
		return nil
	}

	m.accumulator = append(m.accumulator, screen.ParseLines(msg.output)...)
	if len(m.queue) > 0 {
		m.updateQueueInfo()
		return m.step()
	}

	transcript := m.accumulator
	m.clear()
	m.info = transcript
	if cmd.Resync {
		if err := m.sync(); err != nil {
			return m.recover(err)
		}
	}
	return nil
}

// updateQueueInfo shows what already ran plus the command about to run.
func (m *Model) updateQueueInfo() {
	lines := append([]screen.Line{}, m.accumulator...)
	if len(m.queue) > 0 {
		lines = append(lines, commandEcho(m.queue[0])...)
		lines = append(lines, screen.Line{
			&screen.Segment{Text: m.spinner.View() + " "},
			&screen.Segment{Text: "Running..."},
		})
	}
	m.info = lines
}

func commandEcho(cmd jj.Command) []screen.Line {
	return []screen.Line{
		{
			&screen.Segment{Text: "❯", Style: common.DefaultPalette.Get("echo prompt")},
			&screen.Segment{Text: " " + cmd.String()},
		},
		{},
	}
}
