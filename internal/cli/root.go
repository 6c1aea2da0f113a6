// Package cli provides the command-line interface for devtodo.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/devtodo/internal/app"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
)

// ContainerFactory builds the container once global flags are parsed.
type ContainerFactory func(opts app.Options) (*app.Container, error)

// env carries global flags and the lazily built container to subcommands.
type env struct {
	newContainer ContainerFactory
	container    *app.Container
	opts         app.Options
}

// Container returns the container, building it on first use.
func (e *env) Container() (*app.Container, error) {
	if e.container != nil {
		return e.container, nil
	}
	c, err := e.newContainer(e.opts)
	if err != nil {
		return nil, err
	}
	e.container = c
	return c, nil
}

// close releases the container if it was built.
func (e *env) close() error {
	if e.container == nil {
		return nil
	}
	return e.container.Close()
}

// NewRootCommand creates the root command for devtodo.
// It receives the container factory for dependency injection and version for display.
func NewRootCommand(newContainer ContainerFactory, version string) *cobra.Command {
	e := &env{newContainer: newContainer}
	return newRootCommand(e, version)
}

func newRootCommand(e *env, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "devtodo",
		Short: "Keyboard-driven to-do list",
		Long: `devtodo is a single-user to-do list manager.

Run without arguments to open the interactive list. Tasks are saved to
the local storage slot "todos" after every change, so the list survives
restarts. The subcommands below edit the same list non-interactively.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip for commands that work without a loadable config
			if cmd.Name() == "template" || cmd.Name() == "init" {
				return nil
			}

			c, err := e.Container()
			if err != nil {
				return err
			}
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return e.close()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			// Default: launch TUI
			return runTUI(e)
		},
	}

	root.PersistentFlags().StringVar(&e.opts.ConfigPath, "config", "", "Config file (default $XDG_CONFIG_HOME/devtodo/config.toml)")
	root.PersistentFlags().StringVar(&e.opts.DataPath, "data", "", "Storage file for the file backend")
	root.PersistentFlags().StringVar(&e.opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
	)

	// Setup commands
	configCmd := newConfigCommand(e)
	configCmd.GroupID = groupSetup

	// Task management commands
	addCmd := newAddCommand(e)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(e)
	listCmd.GroupID = groupTask

	toggleCmd := newToggleCommand(e)
	toggleCmd.GroupID = groupTask

	editCmd := newEditCommand(e)
	editCmd.GroupID = groupTask

	rmCmd := newRmCommand(e)
	rmCmd.GroupID = groupTask

	// TUI command
	tuiCmd := newTUICommand(e)
	tuiCmd.GroupID = groupTask

	// Add subcommands
	root.AddCommand(
		configCmd,
		addCmd,
		listCmd,
		toggleCmd,
		editCmd,
		rmCmd,
		tuiCmd,
	)

	return root
}
