package intents

// Status shows the working copy status.
type Status struct{}

func (Status) isIntent() {}

// Evolog shows how the selected change evolved, optionally with patches.
type Evolog struct {
	Patch bool
}

func (Evolog) isIntent() {}

type InterdiffMode int

const (
	// InterdiffFromSelection diffs from the selection to @.
	InterdiffFromSelection InterdiffMode = iota
	// InterdiffToSelection diffs from @ to the selection.
	InterdiffToSelection
	// InterdiffToDestination diffs from the saved revision to the selection.
	InterdiffToDestination
)

type Interdiff struct {
	Mode InterdiffMode
}

func (Interdiff) isIntent() {}

type ViewMode int

const (
	// ViewDefault shows the selected revision, or the selected file's diff
	// in the difftool.
	ViewDefault ViewMode = iota
	ViewFromSelection
	ViewToSelection
	// ViewToDestination diffs from the saved revision to the selection.
	ViewToDestination
)

type View struct {
	Mode ViewMode
}

func (View) isIntent() {}
