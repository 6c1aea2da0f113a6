package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/devtodo/internal/app"
	"github.com/runoshun/devtodo/internal/tui"
	"github.com/runoshun/devtodo/internal/usecase"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// newTUICommand creates the tui command for launching the interactive TUI.
// Running `devtodo` without arguments does the same.
func newTUICommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive terminal user interface for managing tasks.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(e)
		},
	}
	return cmd
}

func runTUI(e *env) error {
	c, err := e.Container()
	if err != nil {
		return err
	}
	store, err := c.OpenStore()
	if err != nil {
		return err
	}
	return launchTUIFunc(c, store)
}

// launchTUI runs the bubbletea program on the alternate screen until the user quits.
func launchTUI(c *app.Container, store *usecase.Store) error {
	model := tui.New(store, c.Config.UI, c.Logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
