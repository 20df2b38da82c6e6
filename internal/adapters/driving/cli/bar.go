package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/lightbar-dev/lightbar/internal/adapters/driving/tui"
)

var barCmd = &cobra.Command{
	Use:   "bar",
	Short: "Open the interactive launcher bar",
	Long: `Open the interactive launcher bar.

Controls:
  type       - Search as you type
  ←/→        - Move along the quick-launch row
  ↑/↓        - Move through the result list
  Enter      - Open the selected result
  Esc        - Clear the query, or quit when empty
  Ctrl+C     - Quit`,
	RunE: runBar,
}

func init() {
	rootCmd.AddCommand(barCmd)
}

func runBar(cmd *cobra.Command, _ []string) error {
	// Panic recovery with a stack trace: a rendering bug must not leave
	// the terminal in the alternate screen without a diagnostic.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in bar: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if services == nil {
		return errors.New("services not configured")
	}

	app, err := tui.NewApp(&tui.Ports{
		Launcher:  services.Launcher,
		Activator: services.Activator,
	})
	if err != nil {
		return fmt.Errorf("failed to create bar: %w", err)
	}

	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("bar error: %w", err)
	}

	return nil
}
