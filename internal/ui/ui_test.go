package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/anthrofract/jjdag/internal/jj"
	"github.com/anthrofract/jjdag/internal/parser"
	"github.com/anthrofract/jjdag/internal/ui/editor"
	"github.com/anthrofract/jjdag/internal/ui/intents"
	"github.com/anthrofract/jjdag/test"
)

func TestMain(m *testing.M) {
	// Styles render as plain text so assertions see what the user reads.
	lipgloss.SetColorProfile(termenv.Ascii)
	goleak.VerifyTestMain(m)
}

const revset = "ancestors(@, 4)"

const styledLog = "@  pqrstuvw me@example.com\n" +
	"│  working on things\n" +
	"○  abcdefgh me@example.com\n" +
	"~  older history\n"

const machineLog = "pqrstuvw\tt\tt\nabcdefgh\tf\tf\n"

// expectLoad schedules the three commands one tree load issues: the two
// log passes plus the diff summary for unfolding the working copy.
func expectLoad(runner *test.CommandRunner, globals jj.GlobalArgs, rev string) {
	runner.Expect(globals.Log(rev)).SetOutput([]byte(styledLog))
	runner.Expect(globals.LogNoGraph(rev, parser.RevisionTemplate)).SetOutput([]byte(machineLog))
	runner.Expect(globals.DiffSummary("pqrstuvw")).SetOutput([]byte("M main.go\n"))
}

func expectSync(runner *test.CommandRunner) {
	expectLoad(runner, test.Globals, revset)
}

// newTestModel builds a model over a two-revision log with the working
// copy unfolded to one file: rows @, main.go, abcdefgh.
func newTestModel(t *testing.T, runner *test.CommandRunner) *Model {
	t.Helper()
	expectSync(runner)
	m, err := New(test.NewTestContext(runner), revset)
	require.NoError(t, err)
	return m
}

func newTestModelWithEditor(t *testing.T, runner *test.CommandRunner, responses ...string) *Model {
	t.Helper()
	expectSync(runner)
	ctx := test.NewTestContext(runner)
	ctx.Editor = &test.StubEditor{Responses: responses}
	m, err := New(ctx, revset)
	require.NoError(t, err)
	return m
}

func TestNew_LoadsTreeAndSelectsWorkingCopy(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()

	m := newTestModel(t, runner)

	require.Len(t, m.nodes, 3)
	assert.Equal(t, 0, m.selected)
	assert.Equal(t, "pqrstuvw", m.selectedChangeID())
	assert.False(t, m.tree.Roots[0].Folded)
}

func TestNew_ReportsLoadFailure(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	runner.Expect(test.Globals.Log(revset)).
		SetError(&jj.CommandError{Stderr: []byte("Error: revset not found\n")})

	_, err := New(test.NewTestContext(runner), revset)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "revset not found")
}

func TestNavigation_RowsSiblingsAndParent(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	test.Simulate(t, m, test.Keys("j", "j")...)
	assert.Equal(t, 2, m.selected)
	test.Simulate(t, m, test.Press("k"))
	assert.Equal(t, 1, m.selected)
	test.Simulate(t, m, test.Press("K"))
	assert.Equal(t, 0, m.selected)

	// Sibling stepping moves revision to revision, past the files.
	test.Simulate(t, m, test.Press("l"))
	assert.Equal(t, 2, m.selected)
	test.Simulate(t, m, test.Press("h"))
	assert.Equal(t, 0, m.selected)

	test.Simulate(t, m, test.Keys("j", "j", "@")...)
	assert.Equal(t, 0, m.selected)
}

func TestChord_MenuHelpAndUnboundSuffix(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	test.Simulate(t, m, test.Press("r"))
	assert.Equal(t, []string{"r"}, m.chord)
	assert.Contains(t, m.infoText(), "Selection onto trunk")

	test.Simulate(t, m, test.Press("z"))
	assert.Equal(t, []string{"r"}, m.chord)
	assert.Contains(t, m.infoText(), "Unbound suffix: ")
	assert.Contains(t, m.infoText(), "'z'")

	test.Simulate(t, m, test.Press("esc"))
	assert.Empty(t, m.chord)
	assert.Empty(t, m.info)
}

func TestChords_BuildExpectedCommands(t *testing.T) {
	tests := []struct {
		name   string
		keys   []string
		cmd    jj.Command
		output string
	}{
		{"abandon", []string{"a", "a"}, test.Globals.Abandon("pqrstuvw", ""), "Abandoned commit\n"},
		{"abandon retain bookmarks", []string{"a", "b"}, test.Globals.Abandon("pqrstuvw", "--retain-bookmarks"), "Abandoned commit\n"},
		{"edit", []string{"e", "e"}, test.Globals.Edit("pqrstuvw"), "Working copy now at: pqrstuvw\n"},
		{"new after selection", []string{"n", "n"}, test.Globals.New("pqrstuvw"), "Working copy now at: zzzzzzzz\n"},
		{"new before selection", []string{"n", "b"}, test.Globals.New("pqrstuvw", "--no-edit", "--insert-before"), "Created new commit\n"},
		{"new after trunk", []string{"n", "m"}, test.Globals.New("trunk()"), "Working copy now at: zzzzzzzz\n"},
		{"describe", []string{"d", "d"}, test.Globals.Describe("pqrstuvw"), ""},
		{"commit", []string{"c", "c"}, test.Globals.Commit(""), ""},
		{"duplicate", []string{"D", "d"}, test.Globals.Duplicate("pqrstuvw", "", ""), "Duplicated 1 commits\n"},
		{"status", []string{"t"}, test.Globals.Status(), ""},
		{"undo", []string{"u", "u"}, test.Globals.Undo(), "Undid operation\n"},
		{"redo", []string{"u", "r"}, test.Globals.Redo(), "Redid operation\n"},
		{"squash with description", []string{"s", "s"}, test.Globals.SquashInteractive("pqrstuvw", ""), ""},
		{"rebase onto trunk", []string{"r", "m"}, test.Globals.Rebase("--source", "pqrstuvw", "--onto", "trunk()"), "Rebased 1 commits\n"},
		{"rebase branch onto trunk", []string{"r", "M"}, test.Globals.Rebase("--branch", "pqrstuvw", "--onto", "trunk()"), "Rebased 2 commits\n"},
		{"simplify parents", []string{"y", "y"}, test.Globals.SimplifyParents("pqrstuvw", "-r"), ""},
		{"simplify parents with descendants", []string{"y", "Y"}, test.Globals.SimplifyParents("pqrstuvw", "-s"), ""},
		{"sign", []string{"S", "s"}, test.Globals.Sign("sign", "pqrstuvw"), "Signed 1 commits\n"},
		{"unsign", []string{"S", "u"}, test.Globals.Sign("unsign", "pqrstuvw"), "Unsigned 1 commits\n"},
		{"parallelize", []string{"p", "p"}, test.Globals.Parallelize("pqrstuvw-::pqrstuvw"), ""},
		{"restore changes in selection", []string{"R", "r"}, test.Globals.Restore([]string{"--changes-in", "pqrstuvw"}, ""), ""},
		{"restore descendants", []string{"R", "d"}, test.Globals.Restore([]string{"--changes-in", "pqrstuvw", "--restore-descendants"}, ""), ""},
		{"restore from selection", []string{"R", "f"}, test.Globals.Restore([]string{"--from", "pqrstuvw"}, ""), ""},
		{"restore into selection", []string{"R", "i"}, test.Globals.Restore([]string{"--into", "pqrstuvw"}, ""), ""},
		{"revert onto current", []string{"V", "v"}, test.Globals.Revert("pqrstuvw", "--onto", "@"), ""},
		{"git fetch", []string{"g", "f", "f"}, test.Globals.GitFetch("", ""), "Fetched into default remote\n"},
		{"git fetch all remotes", []string{"g", "f", "a"}, test.Globals.GitFetch("--all-remotes", ""), ""},
		{"git push", []string{"g", "p", "p"}, test.Globals.GitPush("", ""), "Pushed 1 bookmarks\n"},
		{"git push all", []string{"g", "p", "a"}, test.Globals.GitPush("--all", ""), ""},
		{"git push change", []string{"g", "p", "c"}, test.Globals.GitPush("-c", "pqrstuvw"), ""},
		{"git push revision", []string{"g", "p", "r"}, test.Globals.GitPush("-r", "pqrstuvw"), ""},
		{"evolog", []string{"E", "e"}, test.Globals.Evolog("pqrstuvw", false), ""},
		{"evolog with patch", []string{"E", "E"}, test.Globals.Evolog("pqrstuvw", true), ""},
		{"show", []string{"v", "v"}, test.Globals.Show("pqrstuvw"), ""},
		{"diff from selection", []string{"v", "f"}, test.Globals.DiffFromTo("pqrstuvw", "@"), ""},
		{"diff to selection", []string{"v", "t"}, test.Globals.DiffFromTo("@", "pqrstuvw"), ""},
		{"interdiff from selection", []string{"i", "f"}, test.Globals.Interdiff("pqrstuvw", "@", ""), ""},
		{"interdiff to selection", []string{"i", "t"}, test.Globals.Interdiff("@", "pqrstuvw", ""), ""},
		{"metaedit change id", []string{"m", "c"}, test.Globals.Metaedit("pqrstuvw", "--update-change-id", ""), ""},
		{"metaedit author timestamp", []string{"m", "t"}, test.Globals.Metaedit("pqrstuvw", "--update-author-timestamp", ""), ""},
		{"next", []string{"N", "n"}, test.Globals.NextPrev("next", "", ""), ""},
		{"next conflict", []string{"N", "c"}, test.Globals.NextPrev("next", "--conflict", ""), ""},
		{"previous no-edit", []string{"P", "x"}, test.Globals.NextPrev("prev", "--no-edit", ""), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := test.NewTestCommandRunner(t)
			defer runner.Verify()
			m := newTestModel(t, runner)

			runner.Expect(tt.cmd).SetOutput([]byte(tt.output))
			if tt.cmd.Resync {
				expectSync(runner)
			}

			test.Simulate(t, m, test.Keys(tt.keys...)...)

			assert.Contains(t, m.infoText(), tt.cmd.String())
			assert.Empty(t, m.queue)
			assert.Empty(t, m.chord)
		})
	}
}

func TestChords_FileRowsNarrowTheCommand(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		cmd  jj.Command
	}{
		{"commit selected file", []string{"c", "c"}, test.Globals.Commit("main.go")},
		{"squash selected file", []string{"s", "s"}, test.Globals.SquashInteractive("pqrstuvw", "main.go")},
		{"restore selected file", []string{"R", "r"}, test.Globals.Restore([]string{"--changes-in", "pqrstuvw"}, "main.go")},
		{"file diff in difftool", []string{"v", "v"}, test.Globals.DiffFileInteractive("pqrstuvw", "main.go")},
		{"untrack file", []string{"f", "u"}, test.Globals.FileUntrack("main.go")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := test.NewTestCommandRunner(t)
			defer runner.Verify()
			m := newTestModel(t, runner)

			runner.Expect(tt.cmd).SetOutput(nil)
			if tt.cmd.Resync {
				expectSync(runner)
			}

			test.Simulate(t, m, append([]tea.Cmd{test.Press("j")}, test.Keys(tt.keys...)...)...)

			assert.Contains(t, m.infoText(), tt.cmd.String())
		})
	}
}

func TestSquash_NoDescriptionRunsNoninteractive(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	undescribed := "pqrstuvw\tt\tf\nabcdefgh\tf\tf\n"
	runner.Expect(test.Globals.Log(revset)).SetOutput([]byte(styledLog))
	runner.Expect(test.Globals.LogNoGraph(revset, parser.RevisionTemplate)).SetOutput([]byte(undescribed))
	runner.Expect(test.Globals.DiffSummary("pqrstuvw")).SetOutput([]byte("M main.go\n"))
	m, err := New(test.NewTestContext(runner), revset)
	require.NoError(t, err)

	runner.Expect(test.Globals.SquashNoninteractive("pqrstuvw", "")).SetOutput(nil)
	runner.Expect(test.Globals.Log(revset)).SetOutput([]byte(styledLog))
	runner.Expect(test.Globals.LogNoGraph(revset, parser.RevisionTemplate)).SetOutput([]byte(undescribed))
	runner.Expect(test.Globals.DiffSummary("pqrstuvw")).SetOutput([]byte("M main.go\n"))

	test.Simulate(t, m, test.Keys("s", "s")...)

	assert.Contains(t, m.infoText(), "jj squash --revision pqrstuvw")
}

func TestDestinationPick_SavesThenActsOnBothEnds(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	test.Simulate(t, m, test.Keys("A", "i")...)
	assert.Equal(t, "pqrstuvw", m.saved.changeID)
	assert.Contains(t, m.infoText(), "Select destination")

	runner.Expect(test.Globals.Absorb("pqrstuvw", "abcdefgh", "")).SetOutput([]byte("Absorbed changes\n"))
	expectSync(runner)

	test.Simulate(t, m, test.Keys("j", "j", "enter")...)

	assert.Contains(t, m.infoText(), "jj absorb --from pqrstuvw --into abcdefgh")
	assert.Empty(t, m.saved.changeID)
	assert.Empty(t, m.chord)
}

func TestDestinationPick_RebaseBranchOntoDestination(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	runner.Expect(test.Globals.Rebase("--branch", "pqrstuvw", "--onto", "abcdefgh")).
		SetOutput([]byte("Rebased 3 commits\n"))
	expectSync(runner)

	test.Simulate(t, m, test.Keys("r", "O", "j", "j", "enter")...)

	assert.Contains(t, m.infoText(), "jj rebase --branch pqrstuvw --onto abcdefgh")
	assert.Contains(t, m.infoText(), "Rebased 3 commits")
}

func TestDestinationPick_WithoutSelection(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	runner.Expect(test.Globals.Log(revset)).SetOutput(nil)
	runner.Expect(test.Globals.LogNoGraph(revset, parser.RevisionTemplate)).SetOutput(nil)
	m, err := New(test.NewTestContext(runner), revset)
	require.NoError(t, err)

	test.Simulate(t, m, test.Keys("r", "O")...)

	assert.Contains(t, m.infoText(), "Invalid selection")
	assert.Empty(t, m.chord)
	assert.Empty(t, m.saved.changeID)

	// The chord died with the register, so enter has nothing to finish.
	test.Simulate(t, m, test.Press("enter"))
	assert.Contains(t, m.infoText(), "Unbound suffix: ")
}

func TestBuild_DestinationCommandsRequireRegister(t *testing.T) {
	tests := []struct {
		name   string
		intent intents.Intent
	}{
		{"rebase", intents.Rebase{}},
		{"rebase branch", intents.Rebase{Source: intents.RebaseSourceBranch}},
		{"revert onto", intents.Revert{Mode: intents.RevertOntoDestination}},
		{"squash into", intents.Squash{Into: true}},
		{"absorb into", intents.Absorb{Mode: intents.AbsorbInto}},
		{"duplicate onto", intents.Duplicate{Mode: intents.DuplicateOnto}},
		{"bookmark move", intents.BookmarkMove{}},
		{"interdiff to destination", intents.Interdiff{Mode: intents.InterdiffToDestination}},
		{"view to destination", intents.View{Mode: intents.ViewToDestination}},
		{"parallelize range", intents.Parallelize{Source: intents.ParallelizeRange}},
		{"sign range", intents.Sign{Range: true}},
		{"restore from into", intents.Restore{Mode: intents.RestoreFromInto}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := test.NewTestCommandRunner(t)
			defer runner.Verify()
			m := newTestModel(t, runner)

			cmd := m.build(tt.intent)

			assert.Nil(t, cmd)
			assert.Equal(t, "Invalid selection", m.infoText())
		})
	}
}

func TestQueue_FailureDropsRemainingSteps(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	runner.Expect(test.Globals.GitFetch("", "")).
		SetError(&jj.CommandError{Stderr: []byte("Error: no git remote named 'origin'\n")})

	test.Simulate(t, m, test.Keys("n", "M")...)

	text := m.infoText()
	assert.Contains(t, text, "jj git fetch")
	assert.Contains(t, text, "no git remote named 'origin'")
	assert.NotContains(t, text, "jj new")
	assert.Empty(t, m.queue)
	assert.Nil(t, m.Err())
}

func TestQueue_RunsStepsInOrderThenResyncs(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	runner.Expect(test.Globals.GitFetch("", "")).SetOutput([]byte("Fetched 3 commits\n"))
	runner.Expect(test.Globals.New("trunk()")).SetOutput([]byte("Working copy now at: zyxwvuts\n"))
	expectSync(runner)

	test.Simulate(t, m, test.Keys("n", "M")...)

	text := m.infoText()
	assert.Contains(t, text, "jj git fetch")
	assert.Contains(t, text, "Fetched 3 commits")
	assert.Contains(t, text, "jj new trunk()")
	assert.Contains(t, text, "Working copy now at")
	assert.Empty(t, m.queue)
	assert.Equal(t, 0, m.selected)
}

func TestQueue_InfrastructureFailureEndsProgram(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	runner.Expect(test.Globals.Undo()).SetError(errors.New("exec: jj not found"))

	test.Simulate(t, m, test.Keys("u", "u")...)

	assert.EqualError(t, m.Err(), "exec: jj not found")
}

func TestQueue_InteractiveFailureIsANotice(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	runner.Expect(test.Globals.Status()).
		SetError(&jj.CommandError{Stderr: []byte("Error: broken pipe\n")})

	test.Simulate(t, m, test.Press("t"))

	assert.Contains(t, m.infoText(), "broken pipe")
	assert.Nil(t, m.Err())
}

func TestHandleKey_GatedWhileQueueBusy(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)
	m.queue = []jj.Command{test.Globals.Undo()}

	assert.Nil(t, m.handleKey(test.KeyMsg("j")))
	assert.Equal(t, 0, m.selected)
	assert.Nil(t, m.handleMouse(tea.MouseMsg{Button: tea.MouseButtonWheelDown}))

	quit := m.handleKey(test.KeyMsg("q"))
	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())
}

func TestStepDone_DropsStaleResults(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	assert.Nil(t, m.stepDone(commandDoneMsg{output: []byte("late output")}))
	assert.Empty(t, m.infoText())
}

func TestRefresh_NoticeGrowsTrail(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	expectSync(runner)
	test.Simulate(t, m, test.Press(" "))
	assert.Equal(t, "Refreshed", m.infoText())

	expectSync(runner)
	test.Simulate(t, m, test.Press("ctrl+r"))
	assert.Equal(t, "Refreshed...", m.infoText())

	expectSync(runner)
	test.Simulate(t, m, test.Press(" "))
	assert.Equal(t, "Refreshed......", m.infoText())
}

func TestSetRevset_AppliesAndReloads(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModelWithEditor(t, runner, "all()")

	expectLoad(runner, test.Globals, "all()")

	test.Simulate(t, m, test.Press("L"))

	assert.Equal(t, "all()", m.revset)
	assert.Equal(t, "Revset set to 'all()'", m.infoText())
}

func TestSetRevset_RollsBackOnFailure(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModelWithEditor(t, runner, "bogus(")

	runner.Expect(test.Globals.Log("bogus(")).
		SetError(&jj.CommandError{Stderr: []byte("Error: syntax error in revset\n")})

	test.Simulate(t, m, test.Press("L"))

	assert.Equal(t, revset, m.revset)
	assert.Contains(t, m.infoText(), "syntax error in revset")
	require.Len(t, m.nodes, 3)
}

func TestPrompt_CancelledLeavesStateAlone(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModelWithEditor(t, runner)

	test.Simulate(t, m, test.Press("L"))

	assert.Equal(t, revset, m.revset)
	assert.Equal(t, "Cancelled", m.infoText())
}

func TestPrompt_EditorFailureEndsProgram(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	_, cmd := m.Update(editorResultMsg{result: editor.Result{Err: errors.New("editor exploded")}})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.EqualError(t, m.Err(), "editor exploded")
}

func TestPrompts_CollectAnswersBeforeBuilding(t *testing.T) {
	tests := []struct {
		name      string
		responses []string
		keys      []string
		cmd       jj.Command
	}{
		{"bookmark create", []string{"feature-x"}, []string{"b", "c"}, test.Globals.BookmarkCreate("feature-x", "pqrstuvw")},
		{"bookmark set", []string{"feature-x"}, []string{"b", "s"}, test.Globals.BookmarkSet("feature-x", "pqrstuvw")},
		{"bookmark delete", []string{"stale"}, []string{"b", "d"}, test.Globals.BookmarkDelete("stale")},
		{"bookmark rename", []string{"old-name", "new-name"}, []string{"b", "r"}, test.Globals.BookmarkRename("old-name", "new-name")},
		{"bookmark track", []string{"main@origin"}, []string{"b", "t"}, test.Globals.BookmarkTrack("main@origin")},
		{"bookmark untrack", []string{"main@origin"}, []string{"b", "u"}, test.Globals.BookmarkUntrack("main@origin")},
		{"bookmark forget", []string{"stale"}, []string{"b", "f"}, test.Globals.BookmarkForget("stale", false)},
		{"bookmark forget remotes", []string{"stale"}, []string{"b", "F"}, test.Globals.BookmarkForget("stale", true)},
		{"git fetch branch", []string{"main"}, []string{"g", "f", "b"}, test.Globals.GitFetch("-b", "main")},
		{"git fetch remote", []string{"upstream"}, []string{"g", "f", "r"}, test.Globals.GitFetch("--remote", "upstream")},
		{"git push named", []string{"release"}, []string{"g", "p", "n"}, test.Globals.GitPush("--named", "release=pqrstuvw")},
		{"git push bookmark", []string{"main"}, []string{"g", "p", "b"}, test.Globals.GitPush("-b", "main")},
		{"file track", []string{"vendored.bin"}, []string{"f", "t"}, test.Globals.FileTrack("vendored.bin")},
		{"nth next", []string{"3"}, []string{"N", "N"}, test.Globals.NextPrev("next", "", "3")},
		{"metaedit author", []string{"Test User <test@example.com>"}, []string{"m", "A"}, test.Globals.Metaedit("pqrstuvw", "--author", "Test User <test@example.com>")},
		{"parallelize revset", []string{"abc::xyz"}, []string{"p", "r"}, test.Globals.Parallelize("abc::xyz")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := test.NewTestCommandRunner(t)
			defer runner.Verify()
			m := newTestModelWithEditor(t, runner, tt.responses...)

			runner.Expect(tt.cmd).SetOutput(nil)
			if tt.cmd.Resync {
				expectSync(runner)
			}

			test.Simulate(t, m, test.Keys(tt.keys...)...)

			assert.Contains(t, m.infoText(), tt.cmd.String())
		})
	}
}

func TestBookmarkMove_TugNeedsNoRegister(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	runner.Expect(test.Globals.BookmarkMove("heads(::@- & bookmarks())", "pqrstuvw", false)).
		SetOutput([]byte("Moved 1 bookmarks\n"))
	expectSync(runner)

	test.Simulate(t, m, test.Keys("b", "m", "t")...)

	assert.Contains(t, m.infoText(), "Moved 1 bookmarks")
}

func TestBookmarkMove_DestinationAllowsBackwards(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	runner.Expect(test.Globals.BookmarkMove("pqrstuvw", "abcdefgh", true)).SetOutput(nil)
	expectSync(runner)

	test.Simulate(t, m, test.Keys("b", "m", "M", "j", "j", "enter")...)

	assert.Contains(t, m.infoText(), "jj bookmark move --from pqrstuvw --to abcdefgh --allow-backwards")
}

func TestToggleFold_FoldsAndReusesChildren(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	test.Simulate(t, m, test.Press("tab"))
	require.Len(t, m.nodes, 2)
	assert.True(t, m.tree.Roots[0].Folded)
	assert.Equal(t, 0, m.selected)

	// Unfolding again must not reload the diff summary.
	test.Simulate(t, m, test.Press("tab"))
	require.Len(t, m.nodes, 3)
}

func TestToggleFold_FileLoadsDiff(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	runner.Expect(test.Globals.DiffFile("pqrstuvw", "main.go")).
		SetOutput([]byte(": context\n+ added\n"))

	test.Simulate(t, m, test.Keys("j", "tab")...)

	require.Len(t, m.nodes, 5)
	assert.Equal(t, 1, m.selected)
}

func TestFileUntrack_OnlyWorkingCopyFiles(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	// A revision row is not a file.
	test.Simulate(t, m, test.Keys("f", "u")...)
	assert.Equal(t, "Invalid selection", m.infoText())

	// A file under another revision is not untrackable either.
	runner.Expect(test.Globals.DiffSummary("abcdefgh")).SetOutput([]byte("M lib.go\n"))
	test.Simulate(t, m, test.Keys("j", "j", "tab", "j", "f", "u")...)
	assert.Equal(t, "Invalid selection", m.infoText())
}

func TestToggleIgnoreImmutable_StampsInvocations(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	immutable := test.Globals
	immutable.IgnoreImmutable = true
	runner.Expect(immutable.Abandon("pqrstuvw", "")).SetOutput([]byte("Abandoned commit\n"))
	expectLoad(runner, immutable, revset)

	test.Simulate(t, m, test.Keys("I", "a", "a")...)

	assert.True(t, m.globals.IgnoreImmutable)
	assert.Contains(t, m.infoText(), "Abandoned commit")
}

func TestShowHelp_ListsCommandsAndBuiltins(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	test.Simulate(t, m, test.Press("?"))

	text := m.infoText()
	assert.Contains(t, text, "Abandon")
	assert.Contains(t, text, "Toggle folding")
	assert.Contains(t, text, "Refresh log tree")
}

func TestAutoRefresh_SkippedWhileQueueBusy(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)
	m.queue = []jj.Command{test.Globals.Undo()}

	_, cmd := m.Update(autoRefreshMsg{})

	assert.Nil(t, cmd)
}

func TestAutoRefresh_ReloadsTree(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)
	test.Simulate(t, m, test.Keys("j", "j")...)

	expectSync(runner)
	test.Simulate(t, m, func() tea.Msg { return autoRefreshMsg{} })

	assert.Equal(t, 0, m.selected)
}

func TestSaveSelection_TracksRowsAcrossFolds(t *testing.T) {
	runner := test.NewTestCommandRunner(t)
	defer runner.Verify()
	m := newTestModel(t, runner)

	test.Simulate(t, m, test.Keys("j", "s", "i")...)
	commit, file := m.savedFlatIdxs()
	assert.Equal(t, 0, commit)
	assert.Equal(t, 1, file)

	// Folding the revision hides the saved file but not the revision.
	test.Simulate(t, m, test.Keys("K", "tab")...)
	commit, file = m.savedFlatIdxs()
	assert.Equal(t, 0, commit)
	assert.Equal(t, -1, file)

	test.Simulate(t, m, test.Press("esc"))
	commit, file = m.savedFlatIdxs()
	assert.Equal(t, -1, commit)
	assert.Equal(t, -1, file)
}
