package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

var (
	queryLimit int
	queryJSON  bool
)

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Run a one-shot search",
	Long: `Runs the full search pipeline once and prints the combined results:
applications, recent files, folders, notes, plugins, and file-index hits.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "n", 20, "maximum number of list results")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if services == nil || services.Launcher == nil {
		return errors.New("launcher service not configured")
	}

	// An index-branch failure still returns every other source's
	// results; show them and surface the failure as a warning.
	set, err := services.Launcher.Search(cmd.Context(), args[0])
	indexWarning := ""
	if err != nil {
		indexWarning = domain.ClassifyError(err).Description()
	}

	if queryLimit > 0 && len(set.Vertical) > queryLimit {
		set.Vertical = set.Vertical[:queryLimit]
	}

	if queryJSON {
		return outputQueryJSON(cmd, set, indexWarning)
	}

	return outputQueryTable(cmd, set, indexWarning)
}

// queryResult is the JSON wire shape of one result.
type queryResult struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Path   string `json:"path,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func toQueryResults(items []domain.ResultItem) []queryResult {
	out := make([]queryResult, 0, len(items))
	for _, item := range items {
		out = append(out, queryResult{
			Kind:   item.Kind.String(),
			Name:   item.DisplayName,
			Path:   item.Path,
			Detail: item.Detail,
		})
	}
	return out
}

func outputQueryJSON(cmd *cobra.Command, set domain.CombinedResultSet, indexWarning string) error {
	payload := struct {
		Query       string        `json:"query"`
		QuickLaunch []queryResult `json:"quick_launch"`
		Results     []queryResult `json:"results"`
		IndexError  string        `json:"index_error,omitempty"`
	}{
		Query:       set.Query,
		QuickLaunch: toQueryResults(set.Horizontal),
		Results:     toQueryResults(set.Vertical),
		IndexError:  indexWarning,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputQueryTable(cmd *cobra.Command, set domain.CombinedResultSet, indexWarning string) error {
	if indexWarning != "" {
		cmd.Printf("Warning: %s\n\n", indexWarning)
	}

	if set.IsEmpty() {
		cmd.Println("No results found.")
		return nil
	}

	if len(set.Horizontal) > 0 {
		cmd.Println("Quick launch:")
		for i, item := range set.Horizontal {
			cmd.Printf("  [%d] %s\n", i+1, item.DisplayName)
		}
		cmd.Println()
	}

	if len(set.Vertical) > 0 {
		cmd.Println("Results:")
		for _, item := range set.Vertical {
			cmd.Printf("  %-12s %s\n", item.Kind, item.DisplayName)
			if item.Path != "" && item.Path != item.DisplayName {
				cmd.Printf("               %s\n", item.Path)
			}
		}
	}

	return nil
}
