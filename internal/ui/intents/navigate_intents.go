package intents

type NavigationTarget int

const (
	TargetNone NavigationTarget = iota
	TargetParent
	TargetNextSibling
	TargetPrevSibling
	TargetWorkingCopy
)

// Navigate moves the selection. Delta steps through the flattened row list;
// Page scales Delta to a viewport page; Target jumps to a logical
// destination instead.
type Navigate struct {
	Delta  int // +1 down, -1 up
	Page   bool
	Target NavigationTarget
}

func (Navigate) isIntent() {}

// ToggleFold folds or unfolds the selected node. At diff-hunk depth the
// owning file is the node that folds.
type ToggleFold struct{}

func (ToggleFold) isIntent() {}

// Scroll moves the viewport by one row without keeping the selection fixed.
type Scroll struct {
	Delta int // +1 down, -1 up
}

func (Scroll) isIntent() {}

// Click selects the row under the given terminal cell. ToggleFold
// additionally folds or unfolds it (right click).
type Click struct {
	X          int
	Y          int
	ToggleFold bool
}

func (Click) isIntent() {}
