package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anthrofract/jjdag/internal/ui/editor"
	"github.com/anthrofract/jjdag/internal/ui/intents"
)

// build resolves a command intent against the current selection and the
// saved-selection register. Operands are read before any prompt opens,
// so what the user acted on is what the command runs against. A missing
// operand surfaces as "Invalid selection" and produces no invocation.
func (m *Model) build(intent intents.Intent) tea.Cmd {
	switch intent := intent.(type) {
	case intents.Abandon:
		return m.buildAbandon(intent)
	case intents.Absorb:
		return m.buildAbsorb(intent)
	case intents.Commit:
		return m.enqueue(m.globals.Commit(m.selectedFilePath()))
	case intents.Describe:
		id := m.selectedChangeID()
		if id == "" {
			return m.invalidSelection()
		}
		return m.enqueue(m.globals.Describe(id))
	case intents.Duplicate:
		return m.buildDuplicate(intent)
	case intents.Edit:
		id := m.selectedChangeID()
		if id == "" {
			return m.invalidSelection()
		}
		return m.enqueue(m.globals.Edit(id))
	case intents.Metaedit:
		return m.buildMetaedit(intent)
	case intents.New:
		return m.buildNew(intent)
	case intents.NextPrev:
		return m.buildNextPrev(intent)
	case intents.Parallelize:
		return m.buildParallelize(intent)
	case intents.Rebase:
		return m.buildRebase(intent)
	case intents.RebaseOntoTrunk:
		return m.buildRebaseOntoTrunk(intent)
	case intents.Restore:
		return m.buildRestore(intent)
	case intents.Revert:
		return m.buildRevert(intent)
	case intents.Sign:
		return m.buildSign(intent)
	case intents.SimplifyParents:
		return m.buildSimplifyParents(intent)
	case intents.Squash:
		return m.buildSquash(intent)
	case intents.Undo:
		return m.enqueue(m.globals.Undo())
	case intents.Redo:
		return m.enqueue(m.globals.Redo())
	case intents.FileTrack:
		return m.prompt("Enter the file path(s) to track", func(path string) tea.Cmd {
			return m.enqueue(m.globals.FileTrack(path))
		})
	case intents.FileUntrack:
		file := m.selectedFilePath()
		if file == "" || !m.selectedIsWorkingCopy() {
			return m.invalidSelection()
		}
		return m.enqueue(m.globals.FileUntrack(file))
	case intents.BookmarkCreate:
		return m.buildBookmarkCreate()
	case intents.BookmarkSet:
		return m.buildBookmarkSet()
	case intents.BookmarkDelete:
		return m.prompt("Enter the bookmark(s) to delete", func(names string) tea.Cmd {
			return m.enqueue(m.globals.BookmarkDelete(names))
		})
	case intents.BookmarkRename:
		return m.prompt("Enter the bookmark to rename", func(oldName string) tea.Cmd {
			return m.prompt("Enter the bookmark to rename to", func(newName string) tea.Cmd {
				return m.enqueue(m.globals.BookmarkRename(oldName, newName))
			})
		})
	case intents.BookmarkTrack:
		return m.prompt("Enter the bookmark@remote to track", func(name string) tea.Cmd {
			return m.enqueue(m.globals.BookmarkTrack(name))
		})
	case intents.BookmarkUntrack:
		return m.prompt("Enter the bookmark@remote to untrack", func(name string) tea.Cmd {
			return m.enqueue(m.globals.BookmarkUntrack(name))
		})
	case intents.BookmarkForget:
		return m.buildBookmarkForget(intent)
	case intents.BookmarkMove:
		return m.buildBookmarkMove(intent)
	case intents.GitFetch:
		return m.buildGitFetch(intent)
	case intents.GitPush:
		return m.buildGitPush(intent)
	case intents.Status:
		return m.enqueue(m.globals.Status())
	case intents.Evolog:
		id := m.selectedChangeID()
		if id == "" {
			return m.invalidSelection()
		}
		return m.enqueue(m.globals.Evolog(id, intent.Patch))
	case intents.Interdiff:
		return m.buildInterdiff(intent)
	case intents.View:
		return m.buildView(intent)
	}
	return nil
}

// prompt opens the editor for one free-text answer and hands it to then.
// A cancelled prompt surfaces as a notice and builds nothing.
func (m *Model) prompt(text string, then func(string) tea.Cmd) tea.Cmd {
	return m.editor.Ask(editor.Request{Prompt: text}, func(result editor.Result) tea.Msg {
		return editorResultMsg{result: result, then: then}
	})
}

func (m *Model) buildAbandon(intent intents.Abandon) tea.Cmd {
	id := m.selectedChangeID()
	if id == "" {
		return m.invalidSelection()
	}
	flag := ""
	switch intent.Mode {
	case intents.AbandonRetainBookmarks:
		flag = "--retain-bookmarks"
	case intents.AbandonRestoreDescendants:
		flag = "--restore-descendants"
	}
	return m.enqueue(m.globals.Abandon(id, flag))
}

func (m *Model) buildAbsorb(intent intents.Absorb) tea.Cmd {
	if intent.Mode == intents.AbsorbInto {
		if m.saved.changeID == "" {
			return m.invalidSelection()
		}
		into := m.selectedChangeID()
		if into == "" {
			return m.invalidSelection()
		}
		return m.enqueue(m.globals.Absorb(m.saved.changeID, into, m.saved.filePath))
	}
	from := m.selectedChangeID()
	if from == "" {
		return m.invalidSelection()
	}
	return m.enqueue(m.globals.Absorb(from, "", m.selectedFilePath()))
}

func (m *Model) buildDuplicate(intent intents.Duplicate) tea.Cmd {
	if intent.Mode == intents.DuplicateDefault {
		id := m.selectedChangeID()
		if id == "" {
			return m.invalidSelection()
		}
		return m.enqueue(m.globals.Duplicate(id, "", ""))
	}
	if m.saved.changeID == "" {
		return m.invalidSelection()
	}
	dest := m.selectedChangeID()
	if dest == "" {
		return m.invalidSelection()
	}
	flag := "--onto"
	switch intent.Mode {
	case intents.DuplicateInsertAfter:
		flag = "--insert-after"
	case intents.DuplicateInsertBefore:
		flag = "--insert-before"
	}
	return m.enqueue(m.globals.Duplicate(m.saved.changeID, flag, dest))
}

func (m *Model) buildMetaedit(intent intents.Metaedit) tea.Cmd {
	id := m.selectedChangeID()
	if id == "" {
		return m.invalidSelection()
	}
	switch intent.Action {
	case intents.MetaeditUpdateAuthorTimestamp:
		return m.enqueue(m.globals.Metaedit(id, "--update-author-timestamp", ""))
	case intents.MetaeditUpdateAuthor:
		return m.enqueue(m.globals.Metaedit(id, "--update-author", ""))
	case intents.MetaeditForceRewrite:
		return m.enqueue(m.globals.Metaedit(id, "--force-rewrite", ""))
	case intents.MetaeditSetAuthor:
		return m.prompt("Enter the author (e.g. 'Name <email@example.com>')", func(author string) tea.Cmd {
			return m.enqueue(m.globals.Metaedit(id, "--author", author))
		})
	case intents.MetaeditSetAuthorTimestamp:
		return m.prompt("Enter the author timestamp (e.g. '2000-01-23T01:23:45-08:00')", func(timestamp string) tea.Cmd {
			return m.enqueue(m.globals.Metaedit(id, "--author-timestamp", timestamp))
		})
	}
	return m.enqueue(m.globals.Metaedit(id, "--update-change-id", ""))
}

func (m *Model) buildNew(intent intents.New) tea.Cmd {
	switch intent.Mode {
	case intents.NewAfterTrunk:
		return m.enqueue(m.globals.New("trunk()"))
	case intents.NewAfterTrunkSync:
		return m.enqueue(m.globals.GitFetch("", ""), m.globals.New("trunk()"))
	}
	id := m.selectedChangeID()
	if id == "" {
		return m.invalidSelection()
	}
	switch intent.Mode {
	case intents.NewInsertAfter:
		return m.enqueue(m.globals.New(id, "--insert-after"))
	case intents.NewBefore:
		return m.enqueue(m.globals.New(id, "--no-edit", "--insert-before"))
	}
	return m.enqueue(m.globals.New(id))
}

func (m *Model) buildNextPrev(intent intents.NextPrev) tea.Cmd {
	direction := "next"
	if intent.Direction == intents.DirectionPrev {
		direction = "prev"
	}
	var mode string
	switch intent.Mode {
	case intents.NextPrevEdit:
		mode = "--edit"
	case intents.NextPrevNoEdit:
		mode = "--no-edit"
	case intents.NextPrevConflict:
		mode = "--conflict"
	}
	if !intent.AskOffset {
		return m.enqueue(m.globals.NextPrev(direction, mode, ""))
	}
	return m.prompt("Enter the offset", func(offset string) tea.Cmd {
		return m.enqueue(m.globals.NextPrev(direction, mode, offset))
	})
}

func (m *Model) buildParallelize(intent intents.Parallelize) tea.Cmd {
	switch intent.Source {
	case intents.ParallelizeRange:
		if m.saved.changeID == "" {
			return m.invalidSelection()
		}
		dest := m.selectedChangeID()
		if dest == "" {
			return m.invalidSelection()
		}
		return m.enqueue(m.globals.Parallelize(m.saved.changeID + "::" + dest))
	case intents.ParallelizeRevset:
		return m.prompt("Enter the revset to parallelize", func(revset string) tea.Cmd {
			return m.enqueue(m.globals.Parallelize(revset))
		})
	}
	id := m.selectedChangeID()
	if id == "" {
		return m.invalidSelection()
	}
	return m.enqueue(m.globals.Parallelize(id + "-::" + id))
}

func (m *Model) buildRebase(intent intents.Rebase) tea.Cmd {
	if m.saved.changeID == "" {
		return m.invalidSelection()
	}
	dest := m.selectedChangeID()
	if dest == "" {
		return m.invalidSelection()
	}
	sourceFlag := "--source"
	switch intent.Source {
	case intents.RebaseSourceBranch:
		sourceFlag = "--branch"
	case intents.RebaseSourceRevisions:
		sourceFlag = "--revisions"
	}
	destFlag := "--onto"
	switch intent.Insert {
	case intents.RebaseInsertAfter:
		destFlag = "--insert-after"
	case intents.RebaseInsertBefore:
		destFlag = "--insert-before"
	}
	return m.enqueue(m.globals.Rebase(sourceFlag, m.saved.changeID, destFlag, dest))
}

func (m *Model) buildRebaseOntoTrunk(intent intents.RebaseOntoTrunk) tea.Cmd {
	id := m.selectedChangeID()
	if id == "" {
		return m.invalidSelection()
	}
	sourceFlag := "--source"
	if intent.Branch {
		sourceFlag = "--branch"
	}
	rebase := m.globals.Rebase(sourceFlag, id, "--onto", "trunk()")
	if intent.Sync {
		return m.enqueue(m.globals.GitFetch("", ""), rebase)
	}
	return m.enqueue(rebase)
}

func (m *Model) buildRestore(intent intents.Restore) tea.Cmd {
	if intent.Mode == intents.RestoreFromInto {
		if m.saved.changeID == "" {
			return m.invalidSelection()
		}
		into := m.selectedChangeID()
		if into == "" {
			return m.invalidSelection()
		}
		flags := []string{"--from", m.saved.changeID, "--into", into}
		return m.enqueue(m.globals.Restore(flags, m.saved.filePath))
	}
	id := m.selectedChangeID()
	if id == "" {
		return m.invalidSelection()
	}
	var flags []string
	switch intent.Mode {
	case intents.RestoreChangesInRestoreDescendants:
		flags = []string{"--changes-in", id, "--restore-descendants"}
	case intents.RestoreFrom:
		flags = []string{"--from", id}
	case intents.RestoreInto:
		flags = []string{"--into", id}
	default:
		flags = []string{"--changes-in", id}
	}
	return m.enqueue(m.globals.Restore(flags, m.selectedFilePath()))
}

func (m *Model) buildRevert(intent intents.Revert) tea.Cmd {
	if intent.Mode == intents.RevertOntoCurrent {
		id := m.selectedChangeID()
		if id == "" {
			return m.invalidSelection()
		}
		return m.enqueue(m.globals.Revert(id, "--onto", "@"))
	}
	if m.saved.changeID == "" {
		return m.invalidSelection()
	}
	dest := m.selectedChangeID()
	if dest == "" {
		return m.invalidSelection()
	}
	destFlag := "--onto"
	switch intent.Mode {
	case intents.RevertAfterDestination:
		destFlag = "--insert-after"
	case intents.RevertBeforeDestination:
		destFlag = "--insert-before"
	}
	return m.enqueue(m.globals.Revert(m.saved.changeID, destFlag, dest))
}

func (m *Model) buildSign(intent intents.Sign) tea.Cmd {
	action := "sign"
	if intent.Unsign {
		action = "unsign"
	}
	if intent.Range {
		if m.saved.changeID == "" {
			return m.invalidSelection()
		}
		dest := m.selectedChangeID()
		if dest == "" {
			return m.invalidSelection()
		}
		return m.enqueue(m.globals.Sign(action, m.saved.changeID+"::"+dest))
	}
	id := m.selectedChangeID()
	if id == "" {
		return m.invalidSelection()
	}
	return m.enqueue(m.globals.Sign(action, id))
}

func (m *Model) buildSimplifyParents(intent intents.SimplifyParents) tea.Cmd {
	id := m.selectedChangeID()
	if id == "" {
		return m.invalidSelection()
	}
	flag := "-r"
	if intent.Mode == intents.SimplifySource {
		flag = "-s"
	}
	return m.enqueue(m.globals.SimplifyParents(id, flag))
}

// buildSquash runs non-interactively when the source has no description
// to carry over, and opens the editor to combine descriptions otherwise.
func (m *Model) buildSquash(intent intents.Squash) tea.Cmd {
	if intent.Into {
		if m.saved.changeID == "" {
			return m.invalidSelection()
		}
		into := m.selectedChangeID()
		if into == "" {
			return m.invalidSelection()
		}
		return m.enqueue(m.globals.SquashIntoInteractive(m.saved.changeID, into, m.saved.filePath))
	}
	revision := m.tree.Revision(m.selectedPosition())
	if revision == nil {
		return m.invalidSelection()
	}
	file := m.selectedFilePath()
	if !revision.HasDescription {
		return m.enqueue(m.globals.SquashNoninteractive(revision.ChangeID, file))
	}
	return m.enqueue(m.globals.SquashInteractive(revision.ChangeID, file))
}

func (m *Model) buildBookmarkCreate() tea.Cmd {
	id := m.selectedChangeID()
	if id == "" {
		return m.invalidSelection()
	}
	return m.prompt("Enter the new bookmark(s)", func(names string) tea.Cmd {
		return m.enqueue(m.globals.BookmarkCreate(names, id))
	})
}

func (m *Model) buildBookmarkSet() tea.Cmd {
	id := m.selectedChangeID()
	if id == "" {
		return m.invalidSelection()
	}
	return m.prompt("Enter the bookmark(s) to set", func(names string) tea.Cmd {
		return m.enqueue(m.globals.BookmarkSet(names, id))
	})
}

func (m *Model) buildBookmarkForget(intent intents.BookmarkForget) tea.Cmd {
	text := "Enter the bookmark(s) to forget"
	if intent.IncludeRemotes {
		text = "Enter the bookmark(s) to forget, including remotes"
	}
	return m.prompt(text, func(names string) tea.Cmd {
		return m.enqueue(m.globals.BookmarkForget(names, intent.IncludeRemotes))
	})
}

func (m *Model) buildBookmarkMove(intent intents.BookmarkMove) tea.Cmd {
	to := m.selectedChangeID()
	if to == "" {
		return m.invalidSelection()
	}
	if intent.Mode == intents.BookmarkMoveTug {
		return m.enqueue(m.globals.BookmarkMove("heads(::@- & bookmarks())", to, false))
	}
	if m.saved.changeID == "" {
		return m.invalidSelection()
	}
	allowBackwards := intent.Mode == intents.BookmarkMoveAllowBackwards
	return m.enqueue(m.globals.BookmarkMove(m.saved.changeID, to, allowBackwards))
}

func (m *Model) buildGitFetch(intent intents.GitFetch) tea.Cmd {
	switch intent.Mode {
	case intents.GitFetchAllRemotes:
		return m.enqueue(m.globals.GitFetch("--all-remotes", ""))
	case intents.GitFetchTracked:
		return m.enqueue(m.globals.GitFetch("--tracked", ""))
	case intents.GitFetchBranch:
		return m.prompt("Enter the branch to fetch", func(branch string) tea.Cmd {
			return m.enqueue(m.globals.GitFetch("-b", branch))
		})
	case intents.GitFetchRemote:
		return m.prompt("Enter the remote to fetch from", func(remote string) tea.Cmd {
			return m.enqueue(m.globals.GitFetch("--remote", remote))
		})
	}
	return m.enqueue(m.globals.GitFetch("", ""))
}

func (m *Model) buildGitPush(intent intents.GitPush) tea.Cmd {
	switch intent.Mode {
	case intents.GitPushAll:
		return m.enqueue(m.globals.GitPush("--all", ""))
	case intents.GitPushTracked:
		return m.enqueue(m.globals.GitPush("--tracked", ""))
	case intents.GitPushDeleted:
		return m.enqueue(m.globals.GitPush("--deleted", ""))
	case intents.GitPushRevision:
		id := m.selectedChangeID()
		if id == "" {
			return m.invalidSelection()
		}
		return m.enqueue(m.globals.GitPush("-r", id))
	case intents.GitPushChange:
		id := m.selectedChangeID()
		if id == "" {
			return m.invalidSelection()
		}
		return m.enqueue(m.globals.GitPush("-c", id))
	case intents.GitPushNamed:
		id := m.selectedChangeID()
		if id == "" {
			return m.invalidSelection()
		}
		return m.prompt("Enter the bookmark name for this revision", func(name string) tea.Cmd {
			return m.enqueue(m.globals.GitPush("--named", name+"="+id))
		})
	case intents.GitPushBookmark:
		return m.prompt("Enter the bookmark to push", func(name string) tea.Cmd {
			return m.enqueue(m.globals.GitPush("-b", name))
		})
	}
	return m.enqueue(m.globals.GitPush("", ""))
}

func (m *Model) buildInterdiff(intent intents.Interdiff) tea.Cmd {
	if intent.Mode == intents.InterdiffToDestination {
		if m.saved.changeID == "" {
			return m.invalidSelection()
		}
		to := m.selectedChangeID()
		if to == "" {
			return m.invalidSelection()
		}
		return m.enqueue(m.globals.Interdiff(m.saved.changeID, to, m.saved.filePath))
	}
	id := m.selectedChangeID()
	if id == "" {
		return m.invalidSelection()
	}
	file := m.selectedFilePath()
	if intent.Mode == intents.InterdiffToSelection {
		return m.enqueue(m.globals.Interdiff("@", id, file))
	}
	return m.enqueue(m.globals.Interdiff(id, "@", file))
}

func (m *Model) buildView(intent intents.View) tea.Cmd {
	if intent.Mode == intents.ViewToDestination {
		if m.saved.changeID == "" {
			return m.invalidSelection()
		}
		to := m.selectedChangeID()
		if to == "" {
			return m.invalidSelection()
		}
		return m.enqueue(m.globals.DiffFromTo(m.saved.changeID, to))
	}
	id := m.selectedChangeID()
	if id == "" {
		return m.invalidSelection()
	}
	switch intent.Mode {
	case intents.ViewFromSelection:
		return m.enqueue(m.globals.DiffFromTo(id, "@"))
	case intents.ViewToSelection:
		return m.enqueue(m.globals.DiffFromTo("@", id))
	}
	if file := m.selectedFilePath(); file != "" {
		return m.enqueue(m.globals.DiffFileInteractive(id, file))
	}
	return m.enqueue(m.globals.Show(id))
}
