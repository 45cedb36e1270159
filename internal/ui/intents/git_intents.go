package intents

type GitFetchMode int

const (
	GitFetchDefault GitFetchMode = iota
	GitFetchAllRemotes
	GitFetchTracked
	// GitFetchBranch prompts for the branch to fetch.
	GitFetchBranch
	// GitFetchRemote prompts for the remote to fetch from.
	GitFetchRemote
)

type GitFetch struct {
	Mode GitFetchMode
}

func (GitFetch) isIntent() {}

type GitPushMode int

const (
	GitPushDefault GitPushMode = iota
	GitPushAll
	GitPushTracked
	GitPushDeleted
	// GitPushRevision pushes the bookmarks pointing at the selected
	// revision.
	GitPushRevision
	// GitPushChange pushes the selected revision under a generated bookmark.
	GitPushChange
	// GitPushNamed prompts for a bookmark name for the selected revision.
	GitPushNamed
	// GitPushBookmark prompts for the bookmark to push.
	GitPushBookmark
)

type GitPush struct {
	Mode GitPushMode
}

func (GitPush) isIntent() {}
