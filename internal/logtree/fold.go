package logtree

import (
	"github.com/anthrofract/jjdag/internal/jj"
	"github.com/anthrofract/jjdag/internal/parser"
	"github.com/anthrofract/jjdag/internal/screen"
)

// Flatten returns the visible nodes in display order together with
// their positions, stamping every visible node's FlatIdx. Children of
// folded nodes are not visited.
func (t *Tree) Flatten() ([]*Node, []Position) {
	var (
		nodes     []*Node
		positions []Position
	)
	var walk func(node *Node, pos Position)
	walk = func(node *Node, pos Position) {
		node.FlatIdx = len(nodes)
		nodes = append(nodes, node)
		positions = append(positions, pos)
		if node.Folded {
			return
		}
		for i, child := range node.Children {
			childPos := make(Position, len(pos)+1)
			copy(childPos, pos)
			childPos[len(pos)] = i
			walk(child, childPos)
		}
	}
	for i, root := range t.Roots {
		walk(root, Position{i})
	}
	return nodes, positions
}

// ToggleFold flips the fold state at pos, loading children on the
// first unfold, and returns the flat index to select afterwards. A
// toggle on a diff line acts on its file instead, since line nodes
// have nothing to unfold.
func (t *Tree) ToggleFold(globals jj.GlobalArgs, pos Position) (int, error) {
	if len(pos) == 3 {
		pos, _ = pos.Parent()
	}
	node := t.Node(pos)
	if node == nil {
		return 0, nil
	}

	if node.Folded && !node.loaded {
		if err := t.loadChildren(globals, pos, node); err != nil {
			return 0, err
		}
	}
	node.Folded = !node.Folded

	t.Flatten()
	return node.FlatIdx, nil
}

func (t *Tree) loadChildren(globals jj.GlobalArgs, pos Position, node *Node) error {
	switch node.Kind {
	case KindRevision:
		out, err := t.runner.Output(globals.DiffSummary(node.ChangeID))
		if err != nil {
			return err
		}
		for _, change := range parser.ParseFileChanges(screen.ParseLines(out)) {
			node.Children = append(node.Children, &Node{
				Kind:   KindFile,
				Lines:  []screen.Line{change.Line},
				Folded: true,
				Path:   change.Path,
			})
		}
	case KindFile:
		revision := t.Revision(pos)
		if revision == nil {
			return nil
		}
		out, err := t.runner.Output(globals.DiffFile(revision.ChangeID, node.Path))
		if err != nil {
			return err
		}
		for _, line := range screen.ParseLines(out) {
			node.Children = append(node.Children, &Node{
				Kind:   KindLine,
				Lines:  []screen.Line{line},
				Folded: true,
			})
		}
	}
	node.loaded = true
	return nil
}
