package intents

type AbandonMode int

const (
	AbandonDefault AbandonMode = iota
	AbandonRetainBookmarks
	AbandonRestoreDescendants
)

// Abandon removes the selected revision from the graph.
type Abandon struct {
	Mode AbandonMode
}

func (Abandon) isIntent() {}

type AbsorbMode int

const (
	// AbsorbDefault absorbs the selected revision's changes into mutable
	// ancestors.
	AbsorbDefault AbsorbMode = iota
	// AbsorbInto absorbs the saved revision's changes into the selected
	// revision.
	AbsorbInto
)

type Absorb struct {
	Mode AbsorbMode
}

func (Absorb) isIntent() {}

// Commit describes and finalizes the working copy, restricted to the
// selected file when one is selected.
type Commit struct{}

func (Commit) isIntent() {}

// Describe edits the selected revision's description.
type Describe struct{}

func (Describe) isIntent() {}

type DuplicateMode int

const (
	DuplicateDefault DuplicateMode = iota
	DuplicateOnto
	DuplicateInsertAfter
	DuplicateInsertBefore
)

// Duplicate copies a revision. The default form copies the selected
// revision in place; the destination forms copy the saved revision relative
// to the selected one.
type Duplicate struct {
	Mode DuplicateMode
}

func (Duplicate) isIntent() {}

// Edit makes the selected revision the working copy.
type Edit struct{}

func (Edit) isIntent() {}

type MetaeditAction int

const (
	MetaeditUpdateChangeID MetaeditAction = iota
	MetaeditUpdateAuthorTimestamp
	MetaeditUpdateAuthor
	MetaeditForceRewrite
	MetaeditSetAuthor
	MetaeditSetAuthorTimestamp
)

// Metaedit rewrites metadata of the selected revision. The Set actions
// prompt for their value.
type Metaedit struct {
	Action MetaeditAction
}

func (Metaedit) isIntent() {}

type NewMode int

const (
	NewDefault NewMode = iota
	NewInsertAfter
	NewBefore
	NewAfterTrunk
	// NewAfterTrunkSync fetches from the default remote first, then creates
	// the change on trunk, as one queue.
	NewAfterTrunkSync
)

// New creates a change relative to the selected revision (or trunk).
type New struct {
	Mode NewMode
}

func (New) isIntent() {}

type Direction int

const (
	DirectionNext Direction = iota
	DirectionPrev
)

type NextPrevMode int

const (
	NextPrevDefault NextPrevMode = iota
	NextPrevEdit
	NextPrevNoEdit
	NextPrevConflict
)

// NextPrev moves the working copy along the graph. AskOffset prompts for
// how many steps.
type NextPrev struct {
	Direction Direction
	Mode      NextPrevMode
	AskOffset bool
}

func (NextPrev) isIntent() {}

type ParallelizeSource int

const (
	// ParallelizeSelection covers the selected revision and its immediate
	// successors.
	ParallelizeSelection ParallelizeSource = iota
	// ParallelizeRange covers saved::selected.
	ParallelizeRange
	// ParallelizeRevset prompts for the revset.
	ParallelizeRevset
)

type Parallelize struct {
	Source ParallelizeSource
}

func (Parallelize) isIntent() {}

type RebaseSource int

const (
	// RebaseSourceTree moves the revision and its descendants (--source).
	RebaseSourceTree RebaseSource = iota
	// RebaseSourceBranch moves the whole branch (--branch).
	RebaseSourceBranch
	// RebaseSourceRevisions moves the revision alone (--revisions).
	RebaseSourceRevisions
)

type RebaseInsert int

const (
	RebaseOnto RebaseInsert = iota
	RebaseInsertAfter
	RebaseInsertBefore
)

// Rebase moves the saved revision relative to the selected destination.
type Rebase struct {
	Source RebaseSource
	Insert RebaseInsert
}

func (Rebase) isIntent() {}

// RebaseOntoTrunk moves the selected revision (or its branch) onto trunk().
// Sync fetches from the default remote first, as one queue.
type RebaseOntoTrunk struct {
	Branch bool
	Sync   bool
}

func (RebaseOntoTrunk) isIntent() {}

type RestoreMode int

const (
	RestoreChangesIn RestoreMode = iota
	RestoreChangesInRestoreDescendants
	RestoreFrom
	RestoreInto
	RestoreFromInto
)

// Restore discards changes, restricted to the selected (or saved) file when
// one is selected.
type Restore struct {
	Mode RestoreMode
}

func (Restore) isIntent() {}

type RevertMode int

const (
	// RevertOntoCurrent reverts the selected revision onto @.
	RevertOntoCurrent RevertMode = iota
	// RevertOntoDestination reverts the saved revision onto the selection.
	RevertOntoDestination
	RevertAfterDestination
	RevertBeforeDestination
)

type Revert struct {
	Mode RevertMode
}

func (Revert) isIntent() {}

// Sign signs (or unsigns) the selected revision, or the saved::selected
// range.
type Sign struct {
	Unsign bool
	Range  bool
}

func (Sign) isIntent() {}

type SimplifyParentsMode int

const (
	// SimplifyRevisions simplifies the selected revision alone (-r).
	SimplifyRevisions SimplifyParentsMode = iota
	// SimplifySource includes its descendants (-s).
	SimplifySource
)

type SimplifyParents struct {
	Mode SimplifyParentsMode
}

func (SimplifyParents) isIntent() {}

// Squash folds changes into another revision: the selection into its parent
// by default, or the saved revision into the selection. Whether the default
// form runs interactively depends on whether the source already has a
// description.
type Squash struct {
	Into bool
}

func (Squash) isIntent() {}

// Undo undoes the latest repository operation.
type Undo struct{}

func (Undo) isIntent() {}

// Redo redoes the latest undone operation.
type Redo struct{}

func (Redo) isIntent() {}

// FileTrack prompts for file paths to start tracking.
type FileTrack struct{}

func (FileTrack) isIntent() {}

// FileUntrack stops tracking the selected file. The selection must be a
// file under the working-copy revision.
type FileUntrack struct{}

func (FileUntrack) isIntent() {}
