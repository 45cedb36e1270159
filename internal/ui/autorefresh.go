package ui

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/anthrofract/jjdag/internal/ui/common"
)

// watchRepository starts watching the repository's .jj directory so
// external jj runs show up without a manual refresh. Watching is best
// effort: if the platform or the directory refuses, the dashboard works
// without it.
func (m *Model) watchRepository() tea.Cmd {
	if !m.config.AutoRefresh.Enabled {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil
	}
	if err := watcher.Add(filepath.Join(m.globals.Repository, ".jj")); err != nil {
		watcher.Close()
		return nil
	}
	m.watcher = watcher
	return m.waitForRepositoryChange()
}

func (m *Model) waitForRepositoryChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	watcher := m.watcher
	return func() tea.Msg {
		select {
		case _, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			return fsEventMsg{}
		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fsEventMsg{}
		}
	}
}

// debounceAutoRefresh coalesces the event bursts a single jj command
// produces into one reload.
func (m *Model) debounceAutoRefresh() tea.Cmd {
	duration := time.Duration(m.config.AutoRefresh.DebounceMs) * time.Millisecond
	return common.Debounce("auto-refresh", duration, func() tea.Msg {
		return autoRefreshMsg{}
	})
}
