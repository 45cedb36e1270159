package screen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Parse converts terminal output into styled segments. Only SGR
// sequences contribute styling; every other escape sequence is dropped.
func Parse(data []byte) []*Segment {
	var (
		segments []*Segment
		text     bytes.Buffer
		state    sgrState
	)
	flush := func() {
		if text.Len() == 0 {
			return
		}
		segments = append(segments, &Segment{Text: text.String(), Style: state.style()})
		text.Reset()
	}

	p := ansi.GetParser()
	defer ansi.PutParser(p)

	var decodeState byte
	for len(data) > 0 {
		seq, _, n, newState := ansi.DecodeSequence(data, decodeState, p)
		if n == 0 {
			break
		}
		switch {
		case isSGR(seq):
			flush()
			state.apply(sgrParams(seq))
		case isEscape(seq):
			// cursor movement, OSC titles and the like
		case len(seq) == 1 && seq[0] == '\r':
		default:
			text.Write(seq)
		}
		decodeState = newState
		data = data[n:]
	}
	flush()
	return segments
}

// ParseLines runs Parse and splits the result into lines.
func ParseLines(data []byte) []Line {
	return BreakNewLines(Parse(data))
}

// StripNonStyle removes every escape sequence except SGR styling.
// Interactive jj subcommands drive pagers that emit cursor and screen
// control sequences; those would corrupt the dashboard when echoed.
func StripNonStyle(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	p := ansi.GetParser()
	defer ansi.PutParser(p)

	var decodeState byte
	data := []byte(s)
	for len(data) > 0 {
		seq, _, n, newState := ansi.DecodeSequence(data, decodeState, p)
		if n == 0 {
			break
		}
		if isSGR(seq) || !isEscape(seq) {
			out.Write(seq)
		}
		decodeState = newState
		data = data[n:]
	}
	return out.String()
}

func isSGR(seq []byte) bool {
	if len(seq) < 2 || seq[len(seq)-1] != 'm' {
		return false
	}
	return seq[0] == 0x9b || (seq[0] == ansi.ESC && seq[1] == '[')
}

func isEscape(seq []byte) bool {
	return len(seq) > 0 && (seq[0] == ansi.ESC || (seq[0] >= 0x80 && seq[0] <= 0x9f))
}

func sgrParams(seq []byte) string {
	params := seq[:len(seq)-1]
	if params[0] == 0x9b {
		return string(params[1:])
	}
	return string(params[2:])
}

// sgrState accumulates SGR attributes across sequences. jj colors its
// output with 16/256-palette and truecolor codes depending on the
// user's configuration, so all three forms are handled.
type sgrState struct {
	fg, bg    string
	bold      bool
	faint     bool
	italic    bool
	underline bool
	reverse   bool
	strike    bool
}

func (s *sgrState) style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.fg != "" {
		st = st.Foreground(lipgloss.Color(s.fg))
	}
	if s.bg != "" {
		st = st.Background(lipgloss.Color(s.bg))
	}
	if s.bold {
		st = st.Bold(true)
	}
	if s.faint {
		st = st.Faint(true)
	}
	if s.italic {
		st = st.Italic(true)
	}
	if s.underline {
		st = st.Underline(true)
	}
	if s.reverse {
		st = st.Reverse(true)
	}
	if s.strike {
		st = st.Strikethrough(true)
	}
	return st
}

func (s *sgrState) apply(raw string) {
	if raw == "" {
		*s = sgrState{}
		return
	}
	params := strings.Split(raw, ";")
	for i := 0; i < len(params); i++ {
		if strings.Contains(params[i], ":") {
			s.applyColon(strings.Split(params[i], ":"))
			continue
		}
		if params[i] == "" {
			*s = sgrState{}
			continue
		}
		code, err := strconv.Atoi(params[i])
		if err != nil {
			continue
		}
		switch {
		case code == 0:
			*s = sgrState{}
		case code == 1:
			s.bold = true
		case code == 2:
			s.faint = true
		case code == 3:
			s.italic = true
		case code == 4:
			s.underline = true
		case code == 7:
			s.reverse = true
		case code == 9:
			s.strike = true
		case code == 22:
			s.bold, s.faint = false, false
		case code == 23:
			s.italic = false
		case code == 24:
			s.underline = false
		case code == 27:
			s.reverse = false
		case code == 29:
			s.strike = false
		case code >= 30 && code <= 37:
			s.fg = strconv.Itoa(code - 30)
		case code == 38:
			color, consumed := extendedColor(params[i+1:])
			if color != "" {
				s.fg = color
			}
			i += consumed
		case code == 39:
			s.fg = ""
		case code >= 40 && code <= 47:
			s.bg = strconv.Itoa(code - 40)
		case code == 48:
			color, consumed := extendedColor(params[i+1:])
			if color != "" {
				s.bg = color
			}
			i += consumed
		case code == 49:
			s.bg = ""
		case code >= 90 && code <= 97:
			s.fg = strconv.Itoa(code - 90 + 8)
		case code >= 100 && code <= 107:
			s.bg = strconv.Itoa(code - 100 + 8)
		}
	}
}

func (s *sgrState) applyColon(sub []string) {
	if len(sub) < 2 {
		return
	}
	color, _ := extendedColor(sub[1:])
	if color == "" {
		return
	}
	switch sub[0] {
	case "38":
		s.fg = color
	case "48":
		s.bg = color
	}
}

func extendedColor(params []string) (string, int) {
	if len(params) == 0 {
		return "", 0
	}
	switch params[0] {
	case "5":
		if len(params) >= 2 {
			if n, err := strconv.Atoi(params[1]); err == nil {
				return strconv.Itoa(n), 2
			}
		}
	case "2":
		if len(params) >= 4 {
			r, err1 := strconv.Atoi(params[1])
			g, err2 := strconv.Atoi(params[2])
			b, err3 := strconv.Atoi(params[3])
			if err1 == nil && err2 == nil && err3 == nil {
				return fmt.Sprintf("#%02x%02x%02x", r, g, b), 4
			}
		}
	}
	return "", 0
}
