package keymap

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/anthrofract/jjdag/internal/screen"
	"github.com/anthrofract/jjdag/internal/ui/common"
)

const (
	colWidth         = 26
	maxEntriesPerCol = 14
)

// Help renders the menu listing for n's children.
func (n *Node) Help() []screen.Line {
	return Render(n.Groups())
}

// FullHelp renders the whole commands listing followed by the built-in
// navigation and application keys. Meant for the root node.
func (n *Node) FullHelp() []screen.Line {
	groups := n.Groups()
	groups = append(groups,
		Group{Title: "Navigation", Entries: []Entry{
			{"Tab ", "Toggle folding"},
			{"PgDn", "Move down page"},
			{"PgUp", "Move up page"},
			{"j/↓ ", "Move down"},
			{"k/↑ ", "Move up"},
			{"l/→ ", "Next sibling"},
			{"h/← ", "Prev sibling"},
			{"K", "Select parent"},
			{"@", "Select @ change"},
		}},
		Group{Title: "General", Entries: []Entry{
			{"Spc/Ctrl-r", "Refresh log tree"},
			{"Esc", "Clear app state"},
			{"L", "Set log revset"},
			{"I", "Toggle --ignore-immutable"},
			{"?", "Show help"},
			{"q", "Quit"},
		}},
	)
	return Render(groups)
}

// Render lays groups out in fixed-width columns. A group overflowing
// maxEntriesPerCol wraps into continuation columns with a blank header,
// and short columns are padded with blank cells so rows stay aligned.
func Render(groups []Group) []screen.Line {
	headerStyle := common.DefaultPalette.Get("help header")
	keyStyle := common.DefaultPalette.Get("help key")

	var columns [][]screen.Line
	for _, group := range groups {
		for start := 0; start < len(group.Entries); start += maxEntriesPerCol {
			end := min(start+maxEntriesPerCol, len(group.Entries))
			header := ""
			if start == 0 {
				header = group.Title
			}
			column := []screen.Line{{
				&screen.Segment{Text: pad(header, colWidth), Style: headerStyle},
			}}
			for _, e := range group.Entries[start:end] {
				width := ansi.StringWidth(e.Key) + 1 + ansi.StringWidth(e.Description)
				column = append(column, screen.Line{
					&screen.Segment{Text: e.Key, Style: keyStyle},
					&screen.Segment{Text: " " + e.Description + strings.Repeat(" ", max(colWidth-width, 0))},
				})
			}
			columns = append(columns, column)
		}
	}

	rows := 0
	for _, column := range columns {
		rows = max(rows, len(column))
	}
	lines := make([]screen.Line, 0, rows)
	for i := 0; i < rows; i++ {
		line := screen.Line{&screen.Segment{Text: " "}}
		for _, column := range columns {
			if i < len(column) {
				line = append(line, column[i]...)
			} else {
				line = append(line, &screen.Segment{Text: strings.Repeat(" ", colWidth)})
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func pad(s string, width int) string {
	if n := width - ansi.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

const unboundMarker = " Unbound suffix: "

// AppendUnbound appends the unbound-suffix notice for key to the info
// lines. A notice already at the tail is replaced rather than stacked, and
// the notice is set apart from any other info with one blank line.
func AppendUnbound(info []screen.Line, key string) []screen.Line {
	line := screen.Line{
		&screen.Segment{Text: unboundMarker, Style: common.DefaultPalette.Get("info unbound")},
		&screen.Segment{Text: "'"},
		&screen.Segment{Text: keyLabel(key), Style: common.DefaultPalette.Get("info key")},
		&screen.Segment{Text: "'"},
	}
	if len(info) == 0 {
		return []screen.Line{line}
	}

	first := info[0]
	addBlank := len(first) == 0 || first[0].Text != unboundMarker
	if last := info[len(info)-1]; len(last) > 0 && last[0].Text == unboundMarker {
		// Drop the previous notice and its separating blank line.
		info = info[:len(info)-1]
		if len(info) > 0 {
			info = info[:len(info)-1]
		}
	}
	if addBlank {
		info = append(info, screen.Line{})
	}
	return append(info, line)
}
