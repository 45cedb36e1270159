// jjdag is an interactive dashboard for jj repositories: it renders the
// change graph in the terminal and turns multi-key chords into jj
// invocations.
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/anthrofract/jjdag/internal/config"
	"github.com/anthrofract/jjdag/internal/jj"
	"github.com/anthrofract/jjdag/internal/ui"
	"github.com/anthrofract/jjdag/internal/ui/common"
	"github.com/anthrofract/jjdag/internal/ui/context"
	"github.com/anthrofract/jjdag/internal/ui/editor"
)

// Version is stamped by the release build.
var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		// The embedded defaults still apply.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	flags := pflag.NewFlagSet("jjdag", pflag.ContinueOnError)
	repository := flags.StringP("repository", "R", ".", "path to the jj repository")
	revset := flags.StringP("revisions", "r", cfg.Revset, "revset shown in the log")
	version := flags.BoolP("version", "v", false, "print the version and exit")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if *version {
		fmt.Println("jjdag", Version)
		return nil
	}

	common.DefaultPalette.Update(cfg.Colors)

	root, err := jj.EnsureWorkspaceRoot(*repository)
	if err != nil {
		return err
	}

	model, err := ui.New(context.AppContext{
		Runner:  jj.OSRunner{},
		Editor:  editor.OSService{Command: cfg.Editor},
		Config:  cfg,
		Globals: jj.GlobalArgs{Repository: root},
	}, *revset)
	if err != nil {
		return err
	}
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*ui.Model); ok {
		return m.Err()
	}
	return nil
}
