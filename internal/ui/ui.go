// Package ui is the dashboard's event loop: one model owning the log
// tree, the chord state, the saved-selection register and the command
// queue. Inputs resolve to intents, intents to jj invocations.
package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/anthrofract/jjdag/internal/config"
	"github.com/anthrofract/jjdag/internal/jj"
	"github.com/anthrofract/jjdag/internal/logtree"
	"github.com/anthrofract/jjdag/internal/screen"
	"github.com/anthrofract/jjdag/internal/ui/context"
	"github.com/anthrofract/jjdag/internal/ui/editor"
	"github.com/anthrofract/jjdag/internal/ui/intents"
	"github.com/anthrofract/jjdag/internal/ui/keymap"
)

// savedSelection is the one-slot register behind two-step commands:
// save here, navigate, then act on both ends.
type savedSelection struct {
	changeID string
	filePath string
	position logtree.Position
}

type Model struct {
	runner jj.Runner
	editor editor.Service
	config *config.Config

	globals           jj.GlobalArgs
	revset            string
	displayRepository string

	tree      *logtree.Tree
	nodes     []*logtree.Node
	positions []logtree.Position
	selected  int
	offset    int

	root  *keymap.Node
	chord []string
	saved savedSelection

	queue       []jj.Command
	accumulator []screen.Line
	info        []screen.Line
	spinner     spinner.Model

	watcher *fsnotify.Watcher
	width   int
	height  int
	err     error
}

type (
	commandDoneMsg struct {
		output []byte
		err    error
	}
	editorResultMsg struct {
		result editor.Result
		then   func(text string) tea.Cmd
	}
	fsEventMsg     struct{}
	autoRefreshMsg struct{}
)

// New builds the model and performs the first load synchronously, so a
// bad repository or revset fails before the terminal is taken over.
func New(c context.AppContext, revset string) (*Model, error) {
	m := &Model{
		runner:            c.Runner,
		editor:            c.Editor,
		config:            c.Config,
		globals:           c.Globals,
		revset:            revset,
		displayRepository: formatRepositoryForDisplay(c.Globals.Repository),
		tree:              logtree.New(c.Runner),
		root:              keymap.New(),
		spinner:           spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	if err := m.sync(); err != nil {
		return nil, err
	}
	return m, nil
}

// Err reports the infrastructure failure that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Close releases the repository watcher.
func (m *Model) Close() {
	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("jjdag - "+m.displayRepository),
		m.watchRepository(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case commandDoneMsg:
		return m, m.stepDone(msg)
	case editorResultMsg:
		if msg.result.Err != nil {
			return m, m.fatal(msg.result.Err)
		}
		if msg.result.Cancelled {
			m.setInfoText("Cancelled")
			return m, nil
		}
		return m, msg.then(msg.result.Text)
	case spinner.TickMsg:
		if len(m.queue) == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.updateQueueInfo()
		return m, cmd
	case fsEventMsg:
		return m, tea.Batch(m.waitForRepositoryChange(), m.debounceAutoRefresh())
	case autoRefreshMsg:
		if len(m.queue) > 0 {
			return m, nil
		}
		if err := m.sync(); err != nil {
			return m, m.recover(err)
		}
		return m, nil
	case intents.Intent:
		return m, m.apply(msg)
	}
	return m, nil
}

// handleKey maps the fixed application keys; everything else extends the
// chord. While the queue runs only quitting is honored, so a command's
// result is never attributed to a queue it did not start.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if len(m.queue) > 0 {
		if key == "q" || key == "ctrl+c" {
			return tea.Quit
		}
		return nil
	}
	switch key {
	case "q", "ctrl+c":
		return intents.Invoke(intents.Quit{})
	case "j", "down":
		return intents.Invoke(intents.Navigate{Delta: 1})
	case "k", "up":
		return intents.Invoke(intents.Navigate{Delta: -1})
	case "pgdown":
		return intents.Invoke(intents.Navigate{Delta: 1, Page: true})
	case "pgup":
		return intents.Invoke(intents.Navigate{Delta: -1, Page: true})
	case "l", "right":
		return intents.Invoke(intents.Navigate{Target: intents.TargetNextSibling})
	case "h", "left":
		return intents.Invoke(intents.Navigate{Target: intents.TargetPrevSibling})
	case "K":
		return intents.Invoke(intents.Navigate{Target: intents.TargetParent})
	case "@":
		return intents.Invoke(intents.Navigate{Target: intents.TargetWorkingCopy})
	case " ", "ctrl+r":
		return intents.Invoke(intents.Refresh{})
	case "tab":
		return intents.Invoke(intents.ToggleFold{})
	case "esc":
		return intents.Invoke(intents.Clear{})
	case "L":
		return intents.Invoke(intents.SetRevset{})
	case "I":
		return intents.Invoke(intents.ToggleIgnoreImmutable{})
	case "?":
		return intents.Invoke(intents.ShowHelp{})
	}
	return m.handleChordKey(key)
}

func (m *Model) handleChordKey(key string) tea.Cmd {
	m.chord = append(m.chord, key)
	node := m.root.Lookup(m.chord)
	if node == nil {
		m.chord = m.chord[:len(m.chord)-1]
		m.info = keymap.AppendUnbound(m.info, key)
		return nil
	}
	if node.HasChildren() {
		m.info = node.Help()
	}
	if node.Intent != nil {
		if !node.HasChildren() {
			m.chord = nil
		}
		return intents.Invoke(node.Intent)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if len(m.queue) > 0 {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		return intents.Invoke(intents.Scroll{Delta: 1})
	case tea.MouseButtonWheelUp:
		return intents.Invoke(intents.Scroll{Delta: -1})
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress {
			return intents.Invoke(intents.Click{X: msg.X, Y: msg.Y})
		}
	case tea.MouseButtonRight:
		if msg.Action == tea.MouseActionPress {
			return intents.Invoke(intents.Click{X: msg.X, Y: msg.Y, ToggleFold: true})
		}
	}
	return nil
}

func (m *Model) apply(intent intents.Intent) tea.Cmd {
	switch intent := intent.(type) {
	case intents.Quit:
		return tea.Quit
	case intents.Refresh:
		return m.refresh()
	case intents.Clear:
		m.clear()
		return nil
	case intents.ShowHelp:
		m.info = m.root.FullHelp()
		return nil
	case intents.SetRevset:
		return m.setRevset()
	case intents.ToggleIgnoreImmutable:
		m.globals.IgnoreImmutable = !m.globals.IgnoreImmutable
		return nil
	case intents.SaveSelection:
		return m.saveSelection()
	case intents.Navigate:
		m.navigate(intent)
		return nil
	case intents.ToggleFold:
		if err := m.toggleCurrentFold(); err != nil {
			return m.recover(err)
		}
		return nil
	case intents.Scroll:
		if intent.Delta > 0 {
			m.scrollDownOnce()
		} else {
			m.scrollUpOnce()
		}
		return nil
	case intents.Click:
		m.click(intent)
		if intent.ToggleFold {
			if err := m.toggleCurrentFold(); err != nil {
				return m.recover(err)
			}
		}
		return nil
	}
	return m.build(intent)
}

// sync reloads the tree for the current revset and resets the selection
// to the working copy, unfolded.
func (m *Model) sync() error {
	if err := m.tree.Load(m.globals, m.revset); err != nil {
		return err
	}
	m.nodes, m.positions = m.tree.Flatten()
	m.selected = 0
	m.offset = 0
	if wc := m.tree.WorkingCopy(); wc != nil {
		m.selected = wc.FlatIdx
	}
	return m.toggleCurrentFold()
}

func (m *Model) refresh() tea.Cmd {
	// Repeated refreshes grow a trail of periods, so the notice visibly
	// changes even when the log does not.
	dots := 0
	if text := m.infoText(); strings.HasPrefix(text, "Refreshed") {
		dots = strings.Count(text, ".") + 3
	}
	m.clear()
	if err := m.sync(); err != nil {
		return m.recover(err)
	}
	m.setInfoText("Refreshed" + strings.Repeat(".", dots))
	return nil
}

// clear resets every piece of transient state at once: the notice, the
// register, the chord and the queue.
func (m *Model) clear() {
	m.info = nil
	m.saved = savedSelection{}
	m.chord = nil
	m.queue = nil
	m.accumulator = nil
}

func (m *Model) setRevset() tea.Cmd {
	old := m.revset
	return m.editor.Ask(
		editor.Request{Prompt: "Enter the new revset", Initial: m.revset},
		func(result editor.Result) tea.Msg {
			return editorResultMsg{result: result, then: func(text string) tea.Cmd {
				m.revset = text
				if err := m.sync(); err != nil {
					m.revset = old
					return m.recover(err)
				}
				m.setInfoText("Revset set to '" + m.revset + "'")
				return nil
			}}
		},
	)
}

func (m *Model) saveSelection() tea.Cmd {
	id := m.selectedChangeID()
	if id == "" {
		return m.invalidSelection()
	}
	m.saved = savedSelection{
		changeID: id,
		filePath: m.selectedFilePath(),
		position: m.selectedPosition(),
	}
	return nil
}

func (m *Model) invalidSelection() tea.Cmd {
	m.clear()
	m.setInfoText("Invalid selection")
	return nil
}

func (m *Model) setInfoText(text string) {
	m.info = []screen.Line{{&screen.Segment{Text: text}}}
}

func (m *Model) infoText() string {
	lines := make([]string, len(m.info))
	for i, line := range m.info {
		lines[i] = line.Text()
	}
	return strings.Join(lines, "\n")
}

// recover surfaces a jj failure in the info area. Anything that is not a
// command failure is an infrastructure error and ends the program.
func (m *Model) recover(err error) tea.Cmd {
	var cmdErr *jj.CommandError
	if errors.As(err, &cmdErr) {
		m.info = screen.ParseLines([]byte(err.Error()))
		return nil
	}
	return m.fatal(err)
}

func (m *Model) fatal(err error) tea.Cmd {
	m.err = err
	return tea.Quit
}

func (m *Model) selectedPosition() logtree.Position {
	if m.selected >= len(m.positions) {
		return nil
	}
	return m.positions[m.selected]
}

func (m *Model) selectedChangeID() string {
	if node := m.tree.Revision(m.selectedPosition()); node != nil {
		return node.ChangeID
	}
	return ""
}

func (m *Model) selectedFilePath() string {
	if node := m.tree.File(m.selectedPosition()); node != nil {
		return node.Path
	}
	return ""
}

func (m *Model) selectedIsWorkingCopy() bool {
	node := m.tree.Revision(m.selectedPosition())
	return node != nil && node.WorkingCopy
}

func (m *Model) navigate(intent intents.Navigate) {
	if len(m.nodes) == 0 {
		return
	}
	switch {
	case intent.Target == intents.TargetParent:
		m.selectParent()
	case intent.Target == intents.TargetNextSibling:
		m.selectNextSibling()
	case intent.Target == intents.TargetPrevSibling:
		m.selectPrevSibling()
	case intent.Target == intents.TargetWorkingCopy:
		if wc := m.tree.WorkingCopy(); wc != nil {
			m.selected = wc.FlatIdx
		}
	case intent.Page:
		m.scrollPage(intent.Delta > 0)
	case intent.Delta > 0:
		if m.selected < len(m.nodes)-1 {
			m.selected++
		}
	case intent.Delta < 0:
		if m.selected > 0 {
			m.selected--
		}
	}
}

func (m *Model) selectParent() {
	parent, ok := m.selectedPosition().Parent()
	if !ok {
		return
	}
	if node := m.tree.Node(parent); node != nil {
		m.selected = node.FlatIdx
	}
}

func (m *Model) selectNextSibling() {
	m.selected = m.nextSiblingIdx(m.selectedPosition())
}

// nextSiblingIdx walks past the end of a sibling list into the parent's
// next sibling, so stepping right off the last file of a revision lands
// on the next revision.
func (m *Model) nextSiblingIdx(pos logtree.Position) int {
	if len(pos) == 3 {
		pos, _ = pos.Parent()
	}
	idx := pos[len(pos)-1]
	parent, ok := pos.Parent()
	if !ok {
		return m.tree.Roots[min(idx+1, len(m.tree.Roots)-1)].FlatIdx
	}
	siblings := m.tree.Node(parent).Children
	if idx == len(siblings)-1 {
		return m.nextSiblingIdx(parent)
	}
	return siblings[idx+1].FlatIdx
}

func (m *Model) selectPrevSibling() {
	pos := m.selectedPosition()
	if len(pos) == 3 {
		if file := m.tree.File(pos); file != nil {
			m.selected = file.FlatIdx
		}
		return
	}
	idx := pos[len(pos)-1]
	parent, ok := pos.Parent()
	if !ok {
		m.selected = m.tree.Roots[max(idx-1, 0)].FlatIdx
		return
	}
	parentNode := m.tree.Node(parent)
	if idx == 0 {
		m.selected = parentNode.FlatIdx
		return
	}
	m.selected = parentNode.Children[idx-1].FlatIdx
}

func (m *Model) toggleCurrentFold() error {
	if len(m.nodes) == 0 {
		return nil
	}
	idx, err := m.tree.ToggleFold(m.globals, m.selectedPosition())
	if err != nil {
		return err
	}
	m.nodes, m.positions = m.tree.Flatten()
	m.selected = idx
	return nil
}
