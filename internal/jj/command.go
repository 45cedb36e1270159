// Package jj builds and runs invocations of the jj executable. Command
// values describe a single invocation; Runner executes them either
// captured or with full terminal ownership.
package jj

import "strings"

// logNodeTemplate overrides the graph node glyphs so the parser can
// rely on a fixed set of markers regardless of user configuration.
const logNodeTemplate = `
coalesce(
  if(!self, label("elided", "~")),
  label(
    separate(" ",
      if(current_working_copy, "working_copy"),
      if(immutable, "immutable"),
      if(conflict, "conflict"),
    ),
    coalesce(
      if(current_working_copy, "@"),
      if(root, "┴"),
      if(immutable, "●"),
      if(conflict, "⊗"),
      "○",
    )
  )
)
`

// GlobalArgs are applied to every jj invocation. All Command
// constructors hang off this type so a command is stamped with the
// globals that were current when it was built.
type GlobalArgs struct {
	Repository      string
	IgnoreImmutable bool
}

func (g GlobalArgs) args() []string {
	args := []string{
		"--color", "always",
		"--config", "ui.pager=:builtin",
		"--config", "ui.streampager.interface=full-screen-clear-output",
		"--config", "templates.log_node=" + logNodeTemplate,
		"--repository", g.Repository,
	}
	if g.IgnoreImmutable {
		args = append(args, "--ignore-immutable")
	}
	return args
}

// Command describes a single jj invocation.
type Command struct {
	// Args holds the subcommand and its arguments, without globals.
	Args    []string
	Globals GlobalArgs
	// Interactive commands take over the terminal until they exit.
	Interactive bool
	// Resync reloads the change graph after the command succeeds.
	Resync bool
	// ReadStdout selects which captured stream is reported on
	// success. jj prints human-readable results to stderr, so only
	// machine-oriented queries read stdout.
	ReadStdout bool
}

// Argv is the full argument vector passed to the executable.
func (c Command) Argv() []string {
	return append(c.Globals.args(), c.Args...)
}

func (c Command) String() string {
	return "jj " + strings.Join(c.Args, " ")
}

func (g GlobalArgs) run(args ...string) Command {
	return Command{Args: args, Globals: g, Resync: true}
}

func (g GlobalArgs) query(args ...string) Command {
	return Command{Args: args, Globals: g, ReadStdout: true}
}

func (g GlobalArgs) edit(args ...string) Command {
	return Command{Args: args, Globals: g, Interactive: true, Resync: true}
}

func (g GlobalArgs) view(args ...string) Command {
	return Command{Args: args, Globals: g, Interactive: true}
}
