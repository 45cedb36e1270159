// Package logtree maintains the three-level display tree of the
// change graph: revisions, the files they touch, and the diff lines
// of each file. File and diff levels are loaded lazily on first
// unfold.
package logtree

import (
	"github.com/anthrofract/jjdag/internal/jj"
	"github.com/anthrofract/jjdag/internal/parser"
	"github.com/anthrofract/jjdag/internal/screen"
)

type NodeKind int

const (
	KindRevision NodeKind = iota
	KindFile
	KindLine
)

// Position addresses a node as a path of sibling indices: revision,
// then file, then diff line. Positions shift whenever the tree is
// reloaded or refolded, so they are only valid against the flattening
// they came from.
type Position []int

// Parent returns the position one level up.
func (p Position) Parent() (Position, bool) {
	if len(p) <= 1 {
		return nil, false
	}
	return p[:len(p)-1], true
}

// Node is one foldable row block of the log list.
type Node struct {
	Kind NodeKind
	// Lines is the display block: one or more styled lines for a
	// revision, exactly one for files and diff lines.
	Lines    []screen.Line
	Folded   bool
	Children []*Node
	// FlatIdx is the node's index in the most recent Flatten.
	FlatIdx int

	// Revision nodes.
	ChangeID       string
	WorkingCopy    bool
	HasDescription bool

	// File nodes.
	Path string

	loaded bool
}

// Tree is the loadable view model consulted for selection operands
// and rendered as the log list.
type Tree struct {
	runner jj.Runner
	Roots  []*Node
}

func New(runner jj.Runner) *Tree {
	return &Tree{runner: runner}
}

// Load replaces the tree with a fresh snapshot of revset. All fold
// state and lazily loaded children are dropped.
func (t *Tree) Load(globals jj.GlobalArgs, revset string) error {
	styled, err := t.runner.Output(globals.Log(revset))
	if err != nil {
		return err
	}
	machine, err := t.runner.Output(globals.LogNoGraph(revset, parser.RevisionTemplate))
	if err != nil {
		return err
	}

	rows := parser.SplitRows(screen.ParseLines(styled), parser.ParseRevisions(machine))
	t.Roots = make([]*Node, len(rows))
	for i, row := range rows {
		t.Roots[i] = &Node{
			Kind:           KindRevision,
			Lines:          row.Lines,
			Folded:         true,
			ChangeID:       row.Revision.ChangeID,
			WorkingCopy:    row.Revision.WorkingCopy,
			HasDescription: row.Revision.HasDescription,
		}
	}
	return nil
}

// Node resolves pos, or nil when it points outside the tree.
func (t *Tree) Node(pos Position) *Node {
	if len(pos) == 0 || pos[0] >= len(t.Roots) {
		return nil
	}
	node := t.Roots[pos[0]]
	for _, idx := range pos[1:] {
		if idx >= len(node.Children) {
			return nil
		}
		node = node.Children[idx]
	}
	return node
}

// Revision resolves the revision ancestor of pos.
func (t *Tree) Revision(pos Position) *Node {
	if len(pos) == 0 || pos[0] >= len(t.Roots) {
		return nil
	}
	return t.Roots[pos[0]]
}

// File resolves the file ancestor of pos, if pos is at or below the
// file level.
func (t *Tree) File(pos Position) *Node {
	if len(pos) < 2 {
		return nil
	}
	return t.Node(pos[:2])
}

// WorkingCopy returns the revision holding the working copy. This is
// the stable way back to "@" after a reload, when all positions from
// before the reload have gone stale.
func (t *Tree) WorkingCopy() *Node {
	for _, node := range t.Roots {
		if node.WorkingCopy {
			return node
		}
	}
	return nil
}
