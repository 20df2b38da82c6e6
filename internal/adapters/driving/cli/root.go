// Package cli implements the lightbar command-line interface using cobra.
// It is a driving adapter: commands talk to the core exclusively through
// the injected services.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lightbar-dev/lightbar/internal/core/ports/driven"
	"github.com/lightbar-dev/lightbar/internal/core/ports/driving"
	"github.com/lightbar-dev/lightbar/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services holds the wired core services the commands depend on.
type Services struct {
	// Launcher drives the unified-search pipeline.
	Launcher driving.LauncherService

	// Activator opens activated results.
	Activator driven.ResultActivator

	// Index is the file-index daemon client, used by the status command.
	// Nil when the index integration is disabled.
	Index driven.IndexService

	// Notes backs the note subcommands.
	Notes driven.NoteStore

	// History backs the history subcommand.
	History driven.FileHistory

	// Config is the settings store.
	Config driven.ConfigStore
}

// services holds the current wiring, set by SetServices before Execute.
var services *Services

// SetServices injects the wired services into the command tree.
func SetServices(s *Services) {
	services = s
}

var verbose bool

// rootCmd is the base command. Running it without a subcommand opens
// the launcher bar.
var rootCmd = &cobra.Command{
	Use:   "lightbar",
	Short: "A keyboard-driven quick launcher",
	Long: `Lightbar is a unified-search launcher: one query bar across installed
applications, recent files, system folders, notes, plugins, and the
findexd file index.

Running lightbar without a subcommand opens the interactive bar.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runBar,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the command tree.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	version = v
}
