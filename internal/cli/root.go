// Package cli provides the command-line interface for todomaster.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/todomaster/internal/app"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// ContainerFactory builds the container once flags are parsed.
type ContainerFactory func(opts app.Options) (*app.Container, error)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// env carries the container from the root's pre-run hook to subcommands.
type env struct {
	container    *app.Container
	newContainer ContainerFactory
	opts         app.Options
}

// NewRootCommand creates the root command for todomaster.
// It receives the container factory for dependency injection and version for display.
func NewRootCommand(newContainer ContainerFactory, version string) *cobra.Command {
	e := &env{newContainer: newContainer}

	root := &cobra.Command{
		Use:   "todo",
		Short: "Task list manager with offline fallback",
		Long: `todo manages a to-do list stored on a remote task service.

Changes are shown immediately and sent to the service in the background.
When the service cannot be reached, the list is read from and written to a
local cache so work can continue offline.

Run without arguments to open the interactive UI.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := e.newContainer(e.opts)
			if err != nil {
				return err
			}
			e.container = c

			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if e.container == nil {
				return nil
			}
			return e.container.Close()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			// Default: launch TUI
			return launchTUIFunc(e.container)
		},
	}

	root.PersistentFlags().StringVar(&e.opts.ConfigPath, "config", "", "Extra config file merged over the global one")
	root.PersistentFlags().StringVar(&e.opts.ServerURL, "server", "", "Task service base URL (overrides [server].url)")

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Task commands
	listCmd := newListCommand(e)
	listCmd.GroupID = groupTask

	addCmd := newAddCommand(e)
	addCmd.GroupID = groupTask

	toggleCmd := newToggleCommand(e)
	toggleCmd.GroupID = groupTask

	editCmd := newEditCommand(e)
	editCmd.GroupID = groupTask

	rmCmd := newRmCommand(e)
	rmCmd.GroupID = groupTask

	clearCmd := newClearCommand(e)
	clearCmd.GroupID = groupTask

	tuiCmd := newTUICommand(e)
	tuiCmd.GroupID = groupTask

	// Setup commands
	configCmd := newConfigCommand(e)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		listCmd,
		addCmd,
		toggleCmd,
		editCmd,
		rmCmd,
		clearCmd,
		tuiCmd,
		configCmd,
	)

	return root
}
