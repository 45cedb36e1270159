// Package parser turns jj output into the building blocks of the log
// tree: styled display rows and machine-readable revision records.
package parser

import (
	"strings"

	"github.com/anthrofract/jjdag/internal/screen"
)

// RevisionTemplate is passed to `jj log --no-graph` to obtain one
// record per revision, aligned with the rows of the styled log. The
// shortest(8) prefix matches the ids the default log template prints,
// which is what ties the two invocations together.
const RevisionTemplate = `change_id.shortest(8) ++ "\t" ++ if(current_working_copy, "t", "f") ++ "\t" ++ if(description, "t", "f") ++ "\n"`

// Revision is one record produced by RevisionTemplate.
type Revision struct {
	ChangeID       string
	WorkingCopy    bool
	HasDescription bool
}

// ParseRevisions decodes the output of the RevisionTemplate query.
// Malformed lines are skipped rather than failing the whole load.
func ParseRevisions(data []byte) []Revision {
	var revisions []Revision
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) != 3 || fields[0] == "" {
			continue
		}
		revisions = append(revisions, Revision{
			ChangeID:       fields[0],
			WorkingCopy:    fields[1] == "t",
			HasDescription: fields[2] == "t",
		})
	}
	return revisions
}

// Row is the block of consecutive display lines belonging to one
// revision: the line carrying its change id plus everything up to the
// next revision's id line, so graph connectors and elided markers stay
// attached to the revision above them.
type Row struct {
	Revision Revision
	Lines    []screen.Line
}

// SplitRows associates revisions, in graph order, with their display
// lines. Lines before the first id match are folded into the first
// row. A revision whose id never appears (the user's log template
// hides ids, say) gets an empty block instead of derailing the scan.
func SplitRows(lines []screen.Line, revisions []Revision) []Row {
	starts := make([]int, len(revisions))
	pos := 0
	for i, rev := range revisions {
		starts[i] = -1
		for j := pos; j < len(lines); j++ {
			if strings.Contains(lines[j].Text(), rev.ChangeID) {
				starts[i] = j
				pos = j + 1
				break
			}
		}
	}

	rows := make([]Row, len(revisions))
	for i, rev := range revisions {
		rows[i] = Row{Revision: rev}
		if starts[i] < 0 {
			continue
		}
		end := len(lines)
		for j := i + 1; j < len(revisions); j++ {
			if starts[j] >= 0 {
				end = starts[j]
				break
			}
		}
		begin := starts[i]
		if i == 0 {
			begin = 0
		}
		rows[i].Lines = lines[begin:end]
	}
	return rows
}

// FileChange is one line of `jj diff --summary`.
type FileChange struct {
	Status string
	Path   string
	Line   screen.Line
}

// ParseFileChanges decodes a diff summary, keeping the styled line for
// display alongside the path used as a command operand.
func ParseFileChanges(lines []screen.Line) []FileChange {
	var changes []FileChange
	for _, line := range lines {
		text := line.Text()
		status, path, ok := strings.Cut(text, " ")
		if !ok || status == "" || path == "" {
			continue
		}
		changes = append(changes, FileChange{Status: status, Path: path, Line: line})
	}
	return changes
}
