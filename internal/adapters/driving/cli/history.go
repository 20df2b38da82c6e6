package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently opened files",
	Long:  `Lists the files previously opened through the launcher, most recent first.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if services == nil || services.History == nil {
		return errors.New("file history not configured")
	}

	entries, err := services.History.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No history yet.")
		return nil
	}

	for i := range entries {
		cmd.Printf("  %s\n", entries[i].Path)
		cmd.Printf("    Last used: %s (%d opens)\n",
			entries[i].LastUsed.Format("2006-01-02 15:04"), entries[i].UseCount)
	}
	return nil
}
