package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

// statusProber is satisfied by launcher implementations that expose a
// direct daemon probe.
type statusProber interface {
	ServiceStatus(ctx context.Context) domain.ServiceStatus
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show file-index daemon status",
	Long:  `Probes the findexd daemon and reports whether file search is available.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if services == nil {
		return errors.New("services not configured")
	}

	status, ok := probeStatus(cmd.Context())
	if !ok {
		cmd.Println("File index: disabled")
		return nil
	}

	if !status.Available {
		cmd.Println("File index: unavailable")
		if status.Error != "" {
			cmd.Printf("  %s\n", status.Error)
		}
		return nil
	}

	cmd.Println("File index: available")
	return nil
}

// probeStatus asks the launcher first so the probe shares its timeout
// policy, falling back to the raw index client.
func probeStatus(ctx context.Context) (domain.ServiceStatus, bool) {
	if services.Index == nil {
		return domain.ServiceStatus{}, false
	}
	if prober, ok := services.Launcher.(statusProber); ok {
		return prober.ServiceStatus(ctx), true
	}
	status, _ := services.Index.Status(ctx)
	return status, true
}
