package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/atlas/internal/tui/browser"
)

var errNotInteractive = errors.New("standard input is not a terminal")

// isInteractive reports whether the browser can take over the terminal.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Launch the interactive country browser",
		Long:  `Launch the full-screen browser to search countries by name and filter them by region.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, flags)
		},
	}

	return cmd
}

func runBrowse(cmd *cobra.Command, flags *rootFlags) error {
	if !isInteractive() {
		return newCommandError("launch browser", "checking terminal", errNotInteractive, "Use 'atlas list' for non-interactive output.")
	}

	app, err := newAppContext(cmd, flags, true)
	if err != nil {
		return err
	}
	defer app.close()

	app.log.With("source", app.source.Name()).Info("launching browser")

	m := browser.New(browser.Options{
		Source: app.source,
		Dark:   app.dark,
		ASCII:  app.ascii,
		Logger: app.log,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		app.log.Error(err, "browser execution failed")
		return fmt.Errorf("failed to run browser: %w", err)
	}

	// A load error is shown inside the browser; surface it on exit as well.
	if model, ok := final.(browser.Model); ok && model.Err() != nil {
		return newCommandError("browse countries", "loading dataset "+app.source.Name(), model.Err(), "Run 'atlas validate <file>' to see every malformed record.")
	}

	app.log.Info("browser closed")
	return nil
}
