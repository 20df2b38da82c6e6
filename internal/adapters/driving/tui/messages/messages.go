// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"time"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

// Tick drives result polling: the bar samples the launcher's published
// set on every tick instead of receiving push notifications.
type Tick struct {
	At time.Time
}

// ResultActivated reports the outcome of activating a result.
type ResultActivated struct {
	Item domain.ResultItem
	Err  error
}

// Quit signals the application should exit.
type Quit struct{}
