// Package status provides the status bar for the launcher bar.
package status

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lightbar-dev/lightbar/internal/adapters/driving/tui/keymap"
	"github.com/lightbar-dev/lightbar/internal/adapters/driving/tui/styles"
	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

// Bar displays the pipeline state and keybinding hints.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	searching   bool
	errKind     domain.ErrorKind
	message     string
	resultCount int
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods on each poll.
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the pipeline state.
func (s *Bar) renderLeft() string {
	if s.message != "" {
		return s.styles.Error.Render(s.message)
	}
	if s.errKind != domain.ErrorNone {
		return s.styles.Warning.Render(s.errKind.Description())
	}
	if s.searching {
		return s.styles.Muted.Render("Searching index…")
	}
	if s.resultCount > 0 {
		return s.styles.Normal.Render(fmt.Sprintf("%d results", s.resultCount))
	}
	return s.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetSearching marks the index branch as in flight.
func (s *Bar) SetSearching(searching bool) {
	s.searching = searching
}

// SetErrorKind sets the surfaced index-branch failure.
func (s *Bar) SetErrorKind(kind domain.ErrorKind) {
	s.errKind = kind
}

// SetMessage sets a transient error message that outranks the kind.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetResultCount sets the result count.
func (s *Bar) SetResultCount(count int) {
	s.resultCount = count
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Clear resets the status bar to the idle state.
func (s *Bar) Clear() {
	s.searching = false
	s.errKind = domain.ErrorNone
	s.message = ""
	s.resultCount = 0
}
