// Package activate performs result activation: launching applications,
// opening files, folders and URLs with the platform opener, and keeping
// the file history up to date.
package activate

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
	"github.com/lightbar-dev/lightbar/internal/core/ports/driven"
	"github.com/lightbar-dev/lightbar/internal/logger"
)

// Ensure Activator implements the interface.
var _ driven.ResultActivator = (*Activator)(nil)

// runner starts a command without waiting for it. Swapped in tests.
type runner func(name string, args ...string) error

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// The launched process outlives the launcher; reap it in the
	// background so it never zombies.
	go func() { _ = cmd.Wait() }()
	return nil
}

// Activator opens activated results with the platform opener and records
// file opens in the history.
type Activator struct {
	history driven.FileHistory
	run     runner
}

// New creates an activator. history may be nil to skip usage tracking.
func New(history driven.FileHistory) *Activator {
	return &Activator{
		history: history,
		run:     startDetached,
	}
}

// opener returns the platform URL/file opener command.
func opener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}

// Activate performs the item's action.
func (a *Activator) Activate(ctx context.Context, item domain.ResultItem) error {
	switch item.Kind {
	case domain.KindApplication:
		return a.launchApplication(item)
	case domain.KindDetectedURL:
		return a.openTarget(item.Path, false)
	case domain.KindDetectedEmail:
		return a.openTarget(item.Path, false)
	case domain.KindDetectedPath, domain.KindFileHistory, domain.KindIndexHit:
		return a.openFile(ctx, item.Path)
	case domain.KindSystemFolder:
		return a.openTarget(item.Path, false)
	case domain.KindDetectedJSON, domain.KindNote, domain.KindPlugin:
		// Nothing to open; these are rendered inline or handled by the
		// owning surface.
		return nil
	default:
		return fmt.Errorf("activate %s: %w", item.Kind, domain.ErrInvalidInput)
	}
}

// launchApplication starts the application's Exec line detached.
func (a *Activator) launchApplication(item domain.ResultItem) error {
	fields := strings.Fields(item.Detail)
	if len(fields) == 0 {
		return fmt.Errorf("application %q has no command: %w", item.DisplayName, domain.ErrInvalidInput)
	}

	if err := a.run(fields[0], fields[1:]...); err != nil {
		return fmt.Errorf("launching %s: %w", item.DisplayName, err)
	}
	logger.Info("Launched %s", item.DisplayName)
	return nil
}

// openFile opens a path with the platform opener and touches the history
// on success.
func (a *Activator) openFile(ctx context.Context, path string) error {
	if err := a.openTarget(path, true); err != nil {
		return err
	}
	if a.history != nil {
		if err := a.history.Touch(ctx, path); err != nil {
			// Tracking failure must not undo a successful open.
			logger.Warn("Recording history for %s: %v", path, err)
		}
	}
	return nil
}

func (a *Activator) openTarget(target string, isFile bool) error {
	if target == "" {
		return domain.ErrInvalidInput
	}
	if err := a.run(opener(), target); err != nil {
		return fmt.Errorf("opening %s: %w", target, err)
	}
	if isFile {
		logger.Debug("Opened file %s", target)
	} else {
		logger.Debug("Opened %s", target)
	}
	return nil
}
