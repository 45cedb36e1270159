package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

// Segment is a run of text rendered with a single style.
type Segment struct {
	Text  string
	Style lipgloss.Style
}

func (s *Segment) String() string {
	return s.Style.Render(s.Text)
}

// Line is a sequence of segments that contains no newlines.
type Line []*Segment

// Text returns the unstyled text of the line.
func (l Line) Text() string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Render returns the line with each segment's own style applied.
func (l Line) Render() string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(s.Style.Render(s.Text))
	}
	return sb.String()
}

// RenderOver renders the line with bg layered beneath each segment's
// own style, so colored graph output stays readable on selection rows.
func (l Line) RenderOver(bg lipgloss.TerminalColor) string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(s.Style.Background(bg).Render(s.Text))
	}
	return sb.String()
}

// Truncate clamps the line to width terminal cells. Cuts fall on
// grapheme cluster boundaries, so a wide rune that does not fit is
// dropped whole rather than split.
func (l Line) Truncate(width int) Line {
	truncated := make(Line, 0, len(l))
	remaining := width
	for _, s := range l {
		if remaining <= 0 {
			break
		}
		graphemes := uniseg.NewGraphemes(s.Text)
		var sb strings.Builder
		for graphemes.Next() {
			w := graphemes.Width()
			if w > remaining {
				remaining = 0
				break
			}
			remaining -= w
			sb.WriteString(graphemes.Str())
		}
		if sb.Len() > 0 {
			truncated = append(truncated, &Segment{Text: sb.String(), Style: s.Style})
		}
	}
	return truncated
}

// BreakNewLines splits segments into lines. A segment spanning several
// lines is cut at each newline with its style preserved on every piece.
func BreakNewLines(segments []*Segment) []Line {
	var lines []Line
	current := Line{}
	for _, s := range segments {
		if !strings.Contains(s.Text, "\n") {
			if s.Text != "" {
				current = append(current, s)
			}
			continue
		}
		parts := strings.Split(s.Text, "\n")
		for i, part := range parts {
			if part != "" {
				current = append(current, &Segment{Text: part, Style: s.Style})
			}
			if i < len(parts)-1 {
				lines = append(lines, current)
				current = Line{}
			}
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}
