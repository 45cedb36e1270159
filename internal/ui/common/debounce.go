package common

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	debounceMu sync.Mutex
	debouncers = map[string]context.CancelFunc{}
)

// Debounce waits for duration before running cmd. A newer call with the same
// identifier cancels the pending one.
func Debounce(identifier string, duration time.Duration, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())

	debounceMu.Lock()
	if previous, ok := debouncers[identifier]; ok {
		previous()
	}
	debouncers[identifier] = cancel
	debounceMu.Unlock()

	return func() tea.Msg {
		timer := time.NewTimer(duration)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil
		}

		debounceMu.Lock()
		// A newer call may have cancelled us while the timer slept.
		cancelled := ctx.Err() != nil
		if !cancelled {
			delete(debouncers, identifier)
		}
		debounceMu.Unlock()
		if cancelled {
			return nil
		}

		return cmd()
	}
}
