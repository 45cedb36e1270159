package keymap

import "github.com/anthrofract/jjdag/internal/ui/intents"

// New builds the chord table. Keys are the canonical key names bubbletea
// reports, so chords can be matched directly against incoming key events.
func New() *Node {
	root := &Node{}

	abandon := root.menu("Commands", "a", "Abandon")
	abandon.action("Abandon", "a", "Selection", intents.Abandon{})
	abandon.action("Abandon", "b", "Selection (retain bookmarks)", intents.Abandon{Mode: intents.AbandonRetainBookmarks})
	abandon.action("Abandon", "d", "Selection (restore descendants)", intents.Abandon{Mode: intents.AbandonRestoreDescendants})

	absorb := root.menu("Commands", "A", "Absorb")
	absorb.action("Absorb", "a", "From selection", intents.Absorb{})
	absorb.destination("Absorb", "i", "From selection into destination", "Absorb into", intents.Absorb{Mode: intents.AbsorbInto})

	bookmark := root.menu("Commands", "b", "Bookmark")
	bookmark.action("Bookmark", "c", "Create at selection", intents.BookmarkCreate{})
	move := bookmark.menu("Bookmark", "m", "Move")
	move.destination("Bookmark move", "m", "Selected bookmark to destination", "Move bookmark to", intents.BookmarkMove{})
	move.destination("Bookmark move", "M", "Selected bookmark to destination (allow backwards)", "Move bookmark to, allowing backwards", intents.BookmarkMove{Mode: intents.BookmarkMoveAllowBackwards})
	move.action("Bookmark move", "t", "Tug to selection", intents.BookmarkMove{Mode: intents.BookmarkMoveTug})
	bookmark.action("Bookmark", "r", "Rename", intents.BookmarkRename{})
	bookmark.action("Bookmark", "t", "Track", intents.BookmarkTrack{})
	bookmark.action("Bookmark", "u", "Untrack", intents.BookmarkUntrack{})
	bookmark.action("Bookmark", "d", "Delete", intents.BookmarkDelete{})
	bookmark.action("Bookmark", "f", "Forget", intents.BookmarkForget{})
	bookmark.action("Bookmark", "F", "Forget, including remotes", intents.BookmarkForget{IncludeRemotes: true})
	bookmark.action("Bookmark", "s", "Set to selection", intents.BookmarkSet{})

	commit := root.menu("Commands", "c", "Commit")
	commit.action("Commit", "c", "Selection", intents.Commit{})

	describe := root.menu("Commands", "d", "Describe")
	describe.action("Describe", "d", "Selection", intents.Describe{})

	duplicate := root.menu("Commands", "D", "Duplicate")
	duplicate.action("Duplicate", "d", "Selection", intents.Duplicate{})
	duplicate.destination("Duplicate", "o", "Selection onto destination", "Duplicate onto", intents.Duplicate{Mode: intents.DuplicateOnto})
	duplicate.destination("Duplicate", "a", "Selection insert after destination", "Duplicate insert after", intents.Duplicate{Mode: intents.DuplicateInsertAfter})
	duplicate.destination("Duplicate", "b", "Selection insert before destination", "Duplicate insert before", intents.Duplicate{Mode: intents.DuplicateInsertBefore})

	edit := root.menu("Commands", "e", "Edit")
	edit.action("Edit", "e", "Selection", intents.Edit{})

	evolog := root.menu("Commands", "E", "Evolog")
	evolog.action("Evolog", "e", "Selection", intents.Evolog{})
	evolog.action("Evolog", "E", "Selection (patch)", intents.Evolog{Patch: true})

	file := root.menu("Commands", "f", "File")
	file.action("File", "t", "Track (enter filepath)", intents.FileTrack{})
	file.action("File", "u", "Untrack selection (must be ignored)", intents.FileUntrack{})

	git := root.menu("Commands", "g", "Git")
	fetch := git.menu("Git", "f", "Fetch")
	fetch.action("Git fetch", "f", "Default", intents.GitFetch{})
	fetch.action("Git fetch", "a", "All remotes", intents.GitFetch{Mode: intents.GitFetchAllRemotes})
	fetch.action("Git fetch", "t", "Tracked bookmarks", intents.GitFetch{Mode: intents.GitFetchTracked})
	fetch.action("Git fetch", "b", "Branch by name", intents.GitFetch{Mode: intents.GitFetchBranch})
	fetch.action("Git fetch", "r", "Remote by name", intents.GitFetch{Mode: intents.GitFetchRemote})
	push := git.menu("Git", "p", "Push")
	push.action("Git push", "p", "Default", intents.GitPush{})
	push.action("Git push", "a", "All bookmarks", intents.GitPush{Mode: intents.GitPushAll})
	push.action("Git push", "r", "Bookmarks at selection", intents.GitPush{Mode: intents.GitPushRevision})
	push.action("Git push", "t", "Tracked bookmarks", intents.GitPush{Mode: intents.GitPushTracked})
	push.action("Git push", "d", "Deleted bookmarks", intents.GitPush{Mode: intents.GitPushDeleted})
	push.action("Git push", "c", "New bookmark for selection", intents.GitPush{Mode: intents.GitPushChange})
	push.action("Git push", "n", "New named bookmark for selection", intents.GitPush{Mode: intents.GitPushNamed})
	push.action("Git push", "b", "Bookmark by name", intents.GitPush{Mode: intents.GitPushBookmark})

	interdiff := root.menu("Commands", "i", "Interdiff")
	interdiff.action("Interdiff", "t", "From @ to selection", intents.Interdiff{Mode: intents.InterdiffToSelection})
	interdiff.action("Interdiff", "f", "From selection to @", intents.Interdiff{})
	interdiff.destination("Interdiff", "i", "From selection to destination", "Interdiff to destination", intents.Interdiff{Mode: intents.InterdiffToDestination})

	metaedit := root.menu("Commands", "m", "Metaedit")
	metaedit.action("Metaedit", "c", "Update change-id", intents.Metaedit{})
	metaedit.action("Metaedit", "t", "Update author timestamp to now", intents.Metaedit{Action: intents.MetaeditUpdateAuthorTimestamp})
	metaedit.action("Metaedit", "a", "Update author to configured user", intents.Metaedit{Action: intents.MetaeditUpdateAuthor})
	metaedit.action("Metaedit", "A", "Set author", intents.Metaedit{Action: intents.MetaeditSetAuthor})
	metaedit.action("Metaedit", "T", "Set author timestamp", intents.Metaedit{Action: intents.MetaeditSetAuthorTimestamp})
	metaedit.action("Metaedit", "r", "Force rewrite", intents.Metaedit{Action: intents.MetaeditForceRewrite})

	create := root.menu("Commands", "n", "New")
	create.action("New", "n", "After selection", intents.New{})
	create.action("New", "a", "After selection (rebase children)", intents.New{Mode: intents.NewInsertAfter})
	create.action("New", "b", "Before selection (rebase children)", intents.New{Mode: intents.NewBefore})
	create.action("New", "m", "After trunk", intents.New{Mode: intents.NewAfterTrunk})
	create.action("New", "M", "After trunk (sync)", intents.New{Mode: intents.NewAfterTrunkSync})

	next := root.menu("Commands", "N", "Next")
	next.action("Next", "n", "Next", intents.NextPrev{})
	next.action("Next", "N", "Nth next", intents.NextPrev{AskOffset: true})
	next.action("Next", "e", "Next (edit)", intents.NextPrev{Mode: intents.NextPrevEdit})
	next.action("Next", "E", "Nth next (edit)", intents.NextPrev{Mode: intents.NextPrevEdit, AskOffset: true})
	next.action("Next", "x", "Next (no-edit)", intents.NextPrev{Mode: intents.NextPrevNoEdit})
	next.action("Next", "X", "Nth next (no-edit)", intents.NextPrev{Mode: intents.NextPrevNoEdit, AskOffset: true})
	next.action("Next", "c", "Next conflict", intents.NextPrev{Mode: intents.NextPrevConflict})

	parallelize := root.menu("Commands", "p", "Parallelize")
	parallelize.action("Parallelize", "p", "Selection with parent", intents.Parallelize{})
	parallelize.destination("Parallelize", "P", "From selection to destination", "Parallelize range", intents.Parallelize{Source: intents.ParallelizeRange})
	parallelize.action("Parallelize", "r", "Revset", intents.Parallelize{Source: intents.ParallelizeRevset})

	prev := root.menu("Commands", "P", "Previous")
	prev.action("Previous", "p", "Previous", intents.NextPrev{Direction: intents.DirectionPrev})
	prev.action("Previous", "P", "Nth previous", intents.NextPrev{Direction: intents.DirectionPrev, AskOffset: true})
	prev.action("Previous", "e", "Previous (edit)", intents.NextPrev{Direction: intents.DirectionPrev, Mode: intents.NextPrevEdit})
	prev.action("Previous", "E", "Nth previous (edit)", intents.NextPrev{Direction: intents.DirectionPrev, Mode: intents.NextPrevEdit, AskOffset: true})
	prev.action("Previous", "x", "Previous (no-edit)", intents.NextPrev{Direction: intents.DirectionPrev, Mode: intents.NextPrevNoEdit})
	prev.action("Previous", "X", "Nth previous (no-edit)", intents.NextPrev{Direction: intents.DirectionPrev, Mode: intents.NextPrevNoEdit, AskOffset: true})
	prev.action("Previous", "c", "Previous conflict", intents.NextPrev{Direction: intents.DirectionPrev, Mode: intents.NextPrevConflict})

	squash := root.menu("Commands", "s", "Squash")
	squash.action("Squash", "s", "Selection into parent", intents.Squash{})
	squash.destination("Squash", "i", "Selection into destination", "Squash into", intents.Squash{Into: true})

	root.action("Commands", "t", "Status", intents.Status{})

	sign := root.menu("Commands", "S", "Sign")
	sign.action("Sign", "s", "Selection", intents.Sign{})
	sign.destination("Sign", "S", "From selection to destination", "Sign range", intents.Sign{Range: true})
	sign.action("Sign", "u", "Unsign selection", intents.Sign{Unsign: true})
	sign.destination("Sign", "U", "Unsign from selection to destination", "Unsign range", intents.Sign{Unsign: true, Range: true})

	simplify := root.menu("Commands", "y", "Simplify parents")
	simplify.action("Simplify parents of", "y", "Selection", intents.SimplifyParents{})
	simplify.action("Simplify parents of", "Y", "Selection with descendants", intents.SimplifyParents{Mode: intents.SimplifySource})

	rebase := root.menu("Commands", "r", "Rebase")
	rebase.action("Rebase", "m", "Selection onto trunk", intents.RebaseOntoTrunk{})
	rebase.action("Rebase", "M", "Selected branch onto trunk", intents.RebaseOntoTrunk{Branch: true})
	rebase.destination("Rebase", "o", "Selection onto destination", "Rebase onto", intents.Rebase{})
	rebase.destination("Rebase", "O", "Selected branch onto destination", "Rebase branch onto", intents.Rebase{Source: intents.RebaseSourceBranch})
	rebase.destination("Rebase", "r", "Selection onto destination (no descendants)", "Rebase revision onto", intents.Rebase{Source: intents.RebaseSourceRevisions})
	rebase.destination("Rebase", "a", "Selection after destination", "Rebase after", intents.Rebase{Insert: intents.RebaseInsertAfter})
	rebase.destination("Rebase", "A", "Selection after destination (no descendants)", "Rebase after", intents.Rebase{Source: intents.RebaseSourceRevisions, Insert: intents.RebaseInsertAfter})
	rebase.destination("Rebase", "b", "Selection before destination", "Rebase before", intents.Rebase{Insert: intents.RebaseInsertBefore})
	rebase.destination("Rebase", "B", "Selection before destination (no descendants)", "Rebase before", intents.Rebase{Source: intents.RebaseSourceRevisions, Insert: intents.RebaseInsertBefore})

	restore := root.menu("Commands", "R", "Restore")
	restore.action("Restore", "r", "Changes in selection", intents.Restore{})
	restore.action("Restore", "d", "Changes in selection (restore descendants)", intents.Restore{Mode: intents.RestoreChangesInRestoreDescendants})
	restore.action("Restore", "f", "From selection into @", intents.Restore{Mode: intents.RestoreFrom})
	restore.action("Restore", "i", "From @ into selection", intents.Restore{Mode: intents.RestoreInto})
	restore.destination("Restore", "R", "From selection into destination", "Restore into", intents.Restore{Mode: intents.RestoreFromInto})

	view := root.menu("Commands", "v", "View")
	view.action("View", "v", "Selection", intents.View{})
	view.action("View", "f", "From selection to @", intents.View{Mode: intents.ViewFromSelection})
	view.action("View", "t", "From @ to selection", intents.View{Mode: intents.ViewToSelection})
	view.destination("View", "V", "From selection to destination", "View to destination", intents.View{Mode: intents.ViewToDestination})

	revert := root.menu("Commands", "V", "Revert")
	revert.action("Revert", "v", "Selection onto @", intents.Revert{})
	revert.destination("Revert", "o", "Selection onto destination", "Revert onto", intents.Revert{Mode: intents.RevertOntoDestination})
	revert.destination("Revert", "a", "Selection after destination", "Revert after", intents.Revert{Mode: intents.RevertAfterDestination})
	revert.destination("Revert", "b", "Selection before destination", "Revert before", intents.Revert{Mode: intents.RevertBeforeDestination})

	undo := root.menu("Commands", "u", "Undo")
	undo.action("Undo", "u", "Undo last operation", intents.Undo{})
	undo.action("Undo", "r", "Redo last operation", intents.Redo{})

	return root
}
