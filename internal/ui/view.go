package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/anthrofract/jjdag/internal/logtree"
	"github.com/anthrofract/jjdag/internal/screen"
	"github.com/anthrofract/jjdag/internal/ui/common"
	"github.com/anthrofract/jjdag/internal/ui/intents"
)

// The log area starts below the header line and the blank line under it.
const logTop = 2

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lines := []string{m.renderHeader(), ""}
	lines = append(lines, m.renderLog(m.logHeight())...)
	if height := m.infoHeight(); height > 0 {
		lines = append(lines, m.renderInfo(height)...)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) logHeight() int {
	return max(m.height-logTop-m.infoHeight(), 0)
}

// infoHeight is the info area's row count: a border, the lines, a blank
// row. The log area keeps at least its own header rows.
func (m *Model) infoHeight() int {
	if len(m.info) == 0 {
		return 0
	}
	return min(len(m.info)+2, max(m.height-logTop, 0))
}

func (m *Model) renderHeader() string {
	label := common.DefaultPalette.Get("header label")
	value := common.DefaultPalette.Get("header value")
	var sb strings.Builder
	sb.WriteString(label.Render("repository: "))
	sb.WriteString(value.Render(m.displayRepository))
	sb.WriteString(label.Render("  revset: "))
	sb.WriteString(value.Render(m.revset))
	if m.globals.IgnoreImmutable {
		sb.WriteString(common.DefaultPalette.Get("header immutable").Render("  --ignore-immutable"))
	}
	return sb.String()
}

func (m *Model) renderLog(height int) []string {
	m.ensureVisible(height)
	savedCommit, savedFile := m.savedFlatIdxs()
	selectionStyle := common.DefaultPalette.Get("selection")
	savedStyle := common.DefaultPalette.Get("saved")
	rows := make([]string, 0, height)
	for i := m.offset; i < len(m.nodes) && len(rows) < height; i++ {
		for _, line := range m.nodes[i].Lines {
			if len(rows) == height {
				break
			}
			line = line.Truncate(m.width)
			switch i {
			case m.selected:
				rows = append(rows, m.highlightRow(line, selectionStyle))
			case savedCommit, savedFile:
				rows = append(rows, m.highlightRow(line, savedStyle))
			default:
				rows = append(rows, line.Render())
			}
		}
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	return rows
}

// highlightRow layers the style's background under the line's own colors
// and pads the row to the full width, so the highlight forms a solid bar.
func (m *Model) highlightRow(line screen.Line, style lipgloss.Style) string {
	if style.GetBold() {
		bolded := make(screen.Line, len(line))
		for i, segment := range line {
			bolded[i] = &screen.Segment{Text: segment.Text, Style: segment.Style.Bold(true)}
		}
		line = bolded
	}
	row := line.RenderOver(style.GetBackground())
	if pad := m.width - ansi.StringWidth(line.Text()); pad > 0 {
		row += style.Render(strings.Repeat(" ", pad))
	}
	return row
}

func (m *Model) renderInfo(height int) []string {
	border := common.DefaultPalette.Get("info border")
	rows := make([]string, 0, height)
	rows = append(rows, border.Render(strings.Repeat("─", m.width)))
	for _, line := range m.info {
		rows = append(rows, line.Truncate(m.width).Render())
	}
	rows = append(rows, "")
	if len(rows) > height {
		rows = rows[:height]
	}
	return rows
}

// ensureVisible pulls the viewport along when the selection has moved
// within scroll padding of either edge. Rows above the selection are
// dropped one node at a time until the selection's last line fits,
// keeping up to scrollPad rows of context below when the log continues.
func (m *Model) ensureVisible(height int) {
	if len(m.nodes) == 0 {
		m.offset = 0
		return
	}
	if m.offset > len(m.nodes)-1 {
		m.offset = len(m.nodes) - 1
	}
	pad := m.scrollPad()
	if m.selected-pad < m.offset {
		m.offset = max(m.selected-pad, 0)
	}
	padLines := 0
	for i := m.selected + 1; i < len(m.nodes) && i <= m.selected+pad; i++ {
		padLines += len(m.nodes[i].Lines)
	}
	for m.offset < m.selected {
		total := padLines
		for i := m.offset; i <= m.selected; i++ {
			total += len(m.nodes[i].Lines)
		}
		if total <= height {
			break
		}
		m.offset++
	}
}

func (m *Model) scrollPad() int {
	return max(m.config.ScrollPadding, 0)
}

// savedFlatIdxs locates the saved revision and the saved file in the
// current flattened rows, -1 for whichever is gone or folded away.
func (m *Model) savedFlatIdxs() (int, int) {
	commit, file := -1, -1
	if m.saved.changeID == "" || m.saved.position == nil {
		return commit, file
	}
	if node := m.tree.Revision(m.saved.position); m.visible(node) {
		commit = node.FlatIdx
	}
	if node := m.tree.File(m.saved.position); m.visible(node) {
		file = node.FlatIdx
	}
	return commit, file
}

// visible reports whether the node is one of the current rows. A stale
// FlatIdx from before a refold still points somewhere, but not at node.
func (m *Model) visible(node *logtree.Node) bool {
	return node != nil && node.FlatIdx < len(m.nodes) && m.nodes[node.FlatIdx] == node
}

// nodeAtLineDistance walks rows from start until distance terminal lines
// have been covered, honoring multi-line nodes, and returns the row
// reached. The walk stops at either end of the list.
func (m *Model) nodeAtLineDistance(distance, start int, down bool) int {
	current := start
	traversed := 0
	for {
		traversed += len(m.nodes[current].Lines)
		if down && current == len(m.nodes)-1 {
			break
		}
		if !down && current == 0 {
			break
		}
		if traversed > distance {
			break
		}
		if down {
			current++
		} else {
			current--
		}
	}
	return current
}

// scrollDownOnce moves the viewport down one row, pushing the selection
// ahead of it when it would leave the padded top edge.
func (m *Model) scrollDownOnce() {
	if len(m.nodes) == 0 {
		return
	}
	if m.selected <= m.offset+m.scrollPad() && m.selected < len(m.nodes)-1 {
		m.selected++
	}
	if m.offset < len(m.nodes)-1 {
		m.offset++
	}
}

// scrollUpOnce moves the viewport up one row, pulling the selection back
// when it would fall off the padded bottom edge.
func (m *Model) scrollUpOnce() {
	if m.offset == 0 {
		return
	}
	lastVisible := m.nodeAtLineDistance(m.logHeight()-1, m.offset, true)
	if m.selected >= lastVisible-1-m.scrollPad() && m.selected > 0 {
		m.selected--
	}
	m.offset--
}

// scrollPage shifts the viewport a full page while keeping the selection
// at the same on-screen position, clamping at either end of the log.
func (m *Model) scrollPage(down bool) {
	if len(m.nodes) == 0 {
		return
	}
	distance := m.selected - m.offset
	targetOffset := m.nodeAtLineDistance(m.logHeight(), m.offset, down)
	targetNode := targetOffset + distance
	if down {
		if targetOffset == len(m.nodes)-1 {
			targetNode = targetOffset
			targetOffset = m.offset
		}
	} else if targetOffset == 0 && m.offset == 0 {
		targetNode = 0
	}
	m.selected = min(targetNode, len(m.nodes)-1)
	m.offset = targetOffset
}

func (m *Model) click(intent intents.Click) {
	if len(m.nodes) == 0 {
		return
	}
	height := m.logHeight()
	if intent.Y < logTop || intent.Y >= logTop+height || intent.X < 0 || intent.X >= m.width {
		return
	}
	m.selected = m.nodeAtLineDistance(intent.Y-logTop, m.offset, true)
}

func formatRepositoryForDisplay(repository string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return repository
	}
	if repository == home {
		return "~"
	}
	if strings.HasPrefix(repository, home+string(os.PathSeparator)) {
		return "~" + repository[len(home):]
	}
	return repository
}
