package jj

// Constructors for every jj invocation the dashboard issues. Optional
// string arguments use "" for absent. Flag arguments ("--onto",
// "--insert-after", ...) are passed through verbatim so the action
// layer decides the variant and this layer only owns argument order.

// Log renders the change graph for revset with the user's own log
// template, colors included.
func (g GlobalArgs) Log(revset string) Command {
	return g.query("log", "--revisions", revset)
}

// LogNoGraph evaluates template once per revision of revset, in graph
// order, without the graph decoration.
func (g GlobalArgs) LogNoGraph(revset, template string) Command {
	return g.query("log", "--revisions", revset, "--no-graph", "--template", template)
}

func (g GlobalArgs) DiffSummary(changeID string) Command {
	return g.query("diff", "--revisions", changeID, "--summary")
}

func (g GlobalArgs) DiffFile(changeID, file string) Command {
	return g.query("diff", "--revisions", changeID, file)
}

func (g GlobalArgs) DiffFileInteractive(changeID, file string) Command {
	return g.view("diff", "--revisions", changeID, file)
}

func (g GlobalArgs) DiffFromTo(from, to string) Command {
	return g.view("diff", "--from", from, "--to", to)
}

func (g GlobalArgs) Show(changeID string) Command {
	return g.view("show", changeID)
}

func (g GlobalArgs) Status() Command {
	return g.view("status")
}

func (g GlobalArgs) Evolog(changeID string, patch bool) Command {
	if patch {
		return g.view("evolog", "-r", changeID, "--patch")
	}
	return g.view("evolog", "-r", changeID)
}

func (g GlobalArgs) Interdiff(from, to, file string) Command {
	args := []string{"interdiff", "--from", from, "--to", to}
	if file != "" {
		args = append(args, file)
	}
	return g.view(args...)
}

func (g GlobalArgs) Describe(changeID string) Command {
	return g.edit("describe", changeID)
}

func (g GlobalArgs) Commit(file string) Command {
	if file != "" {
		return g.edit("commit", file)
	}
	return g.edit("commit")
}

// Abandon drops changeID. flag may be "--retain-bookmarks" or
// "--restore-descendants".
func (g GlobalArgs) Abandon(changeID, flag string) Command {
	if flag != "" {
		return g.run("abandon", flag, changeID)
	}
	return g.run("abandon", changeID)
}

func (g GlobalArgs) Absorb(from, into, file string) Command {
	args := []string{"absorb", "--from", from}
	if into != "" {
		args = append(args, "--into", into)
	}
	if file != "" {
		args = append(args, file)
	}
	return g.run(args...)
}

// Duplicate copies changeID. destFlag may be "--onto",
// "--insert-after" or "--insert-before"; with an empty destFlag the
// copy lands on the same parents.
func (g GlobalArgs) Duplicate(changeID, destFlag, dest string) Command {
	if destFlag != "" {
		return g.run("duplicate", changeID, destFlag, dest)
	}
	return g.run("duplicate", changeID)
}

func (g GlobalArgs) Edit(changeID string) Command {
	return g.run("edit", changeID)
}

func (g GlobalArgs) FileTrack(path string) Command {
	return g.run("file", "track", path)
}

func (g GlobalArgs) FileUntrack(path string) Command {
	return g.run("file", "untrack", path)
}

func (g GlobalArgs) GitFetch(flag, value string) Command {
	args := []string{"git", "fetch"}
	if flag != "" {
		args = append(args, flag)
	}
	if value != "" {
		args = append(args, value)
	}
	return g.run(args...)
}

func (g GlobalArgs) GitPush(flag, value string) Command {
	args := []string{"git", "push"}
	if flag != "" {
		args = append(args, flag)
	}
	if value != "" {
		args = append(args, value)
	}
	return g.run(args...)
}

// Metaedit rewrites commit metadata of changeID. The value is empty
// for toggle flags such as "--update-change-id" and carries the
// argument of "--author" and "--author-timestamp".
func (g GlobalArgs) Metaedit(changeID, flag, value string) Command {
	if value != "" {
		return g.run("metaedit", flag, value, changeID)
	}
	return g.run("metaedit", flag, changeID)
}

// New creates a change on top of changeID. flags precede the revision
// argument, e.g. New(id, "--insert-after").
func (g GlobalArgs) New(changeID string, flags ...string) Command {
	args := append([]string{"new"}, flags...)
	return g.run(append(args, changeID)...)
}

// NextPrev moves the working copy. direction is "next" or "prev",
// mode may be "--edit", "--no-edit" or "--conflict", offset is a
// decimal count entered by the user.
func (g GlobalArgs) NextPrev(direction, mode, offset string) Command {
	args := []string{direction}
	if mode != "" {
		args = append(args, mode)
	}
	if offset != "" {
		args = append(args, offset)
	}
	return g.run(args...)
}

func (g GlobalArgs) Parallelize(revset string) Command {
	return g.run("parallelize", revset)
}

// Rebase moves source relative to dest. sourceFlag is "--branch",
// "--source" or "--revisions"; destFlag is "--onto", "--insert-after"
// or "--insert-before".
func (g GlobalArgs) Rebase(sourceFlag, source, destFlag, dest string) Command {
	return g.run("rebase", sourceFlag, source, destFlag, dest)
}

func (g GlobalArgs) Restore(flags []string, file string) Command {
	args := append([]string{"restore"}, flags...)
	if file != "" {
		args = append(args, file)
	}
	return g.run(args...)
}

func (g GlobalArgs) Revert(revision, destFlag, dest string) Command {
	return g.run("revert", "-r", revision, destFlag, dest)
}

// Sign signs or strips signatures; action is "sign" or "unsign".
func (g GlobalArgs) Sign(action, revset string) Command {
	return g.run(action, "-r", revset)
}

// SimplifyParents removes redundant parent edges. flag is "-r" for
// the revision alone or "-s" to include descendants.
func (g GlobalArgs) SimplifyParents(changeID, flag string) Command {
	return g.run("simplify-parents", flag, changeID)
}

func (g GlobalArgs) SquashNoninteractive(changeID, file string) Command {
	args := []string{"squash", "--revision", changeID}
	if file != "" {
		args = append(args, file)
	}
	return g.run(args...)
}

func (g GlobalArgs) SquashInteractive(changeID, file string) Command {
	args := []string{"squash", "--revision", changeID}
	if file != "" {
		args = append(args, file)
	}
	return g.edit(args...)
}

func (g GlobalArgs) SquashIntoInteractive(from, into, file string) Command {
	args := []string{"squash", "--from", from, "--into", into}
	if file != "" {
		args = append(args, file)
	}
	return g.edit(args...)
}

func (g GlobalArgs) Undo() Command {
	return g.run("undo")
}

func (g GlobalArgs) Redo() Command {
	return g.run("redo")
}

func (g GlobalArgs) BookmarkCreate(names, changeID string) Command {
	return g.run("bookmark", "create", "--revision", changeID, names)
}

func (g GlobalArgs) BookmarkDelete(names string) Command {
	return g.run("bookmark", "delete", names)
}

func (g GlobalArgs) BookmarkForget(names string, includeRemotes bool) Command {
	if includeRemotes {
		return g.run("bookmark", "forget", "--include-remotes", names)
	}
	return g.run("bookmark", "forget", names)
}

func (g GlobalArgs) BookmarkMove(from, to string, allowBackwards bool) Command {
	args := []string{"bookmark", "move", "--from", from, "--to", to}
	if allowBackwards {
		args = append(args, "--allow-backwards")
	}
	return g.run(args...)
}

func (g GlobalArgs) BookmarkRename(oldName, newName string) Command {
	return g.run("bookmark", "rename", oldName, newName)
}

func (g GlobalArgs) BookmarkSet(names, changeID string) Command {
	return g.run("bookmark", "set", names, "--revision", changeID)
}

func (g GlobalArgs) BookmarkTrack(nameAtRemote string) Command {
	return g.run("bookmark", "track", nameAtRemote)
}

func (g GlobalArgs) BookmarkUntrack(nameAtRemote string) Command {
	return g.run("bookmark", "untrack", nameAtRemote)
}
