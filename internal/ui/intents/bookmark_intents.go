package intents

// BookmarkCreate prompts for names and creates them at the selected
// revision.
type BookmarkCreate struct{}

func (BookmarkCreate) isIntent() {}

// BookmarkSet prompts for names and points them at the selected revision.
type BookmarkSet struct{}

func (BookmarkSet) isIntent() {}

// BookmarkDelete prompts for the bookmarks to delete.
type BookmarkDelete struct{}

func (BookmarkDelete) isIntent() {}

// BookmarkRename prompts for the old and the new name.
type BookmarkRename struct{}

func (BookmarkRename) isIntent() {}

// BookmarkTrack prompts for bookmark@remote names to track.
type BookmarkTrack struct{}

func (BookmarkTrack) isIntent() {}

// BookmarkUntrack prompts for bookmark@remote names to untrack.
type BookmarkUntrack struct{}

func (BookmarkUntrack) isIntent() {}

// BookmarkForget prompts for the bookmarks to forget.
type BookmarkForget struct {
	IncludeRemotes bool
}

func (BookmarkForget) isIntent() {}

type BookmarkMoveMode int

const (
	// BookmarkMoveDefault moves the saved bookmark to the selected revision.
	BookmarkMoveDefault BookmarkMoveMode = iota
	// BookmarkMoveAllowBackwards additionally allows moving backwards.
	BookmarkMoveAllowBackwards
	// BookmarkMoveTug moves the closest bookmark on the working copy's
	// ancestry to the selected revision.
	BookmarkMoveTug
)

type BookmarkMove struct {
	Mode BookmarkMoveMode
}

func (BookmarkMove) isIntent() {}
