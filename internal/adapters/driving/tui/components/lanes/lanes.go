// Package lanes renders the combined result set: the horizontal
// quick-launch row and the vertical result list, with one selection
// shared between them.
package lanes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lightbar-dev/lightbar/internal/adapters/driving/tui/styles"
	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

// Lane identifies which lane holds the active selection.
type Lane int

const (
	// LaneHorizontal is the quick-launch row.
	LaneHorizontal Lane = iota
	// LaneVertical is the result list.
	LaneVertical
)

// Lanes displays a CombinedResultSet and tracks the selection.
type Lanes struct {
	set    domain.CombinedResultSet
	active Lane
	hIndex int
	vIndex int

	styles *styles.Styles
	width  int
	height int
}

// New creates a lanes component.
func New(s *styles.Styles) *Lanes {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Lanes{
		styles: s,
		width:  80,
		height: 16,
	}
}

// SetResultSet replaces the displayed set. The selection resets only
// when the generation moved, so scrolling survives same-query updates
// that merely add index hits.
func (l *Lanes) SetResultSet(set domain.CombinedResultSet) {
	if set.Generation != l.set.Generation {
		l.hIndex = 0
		l.vIndex = 0
		l.active = LaneHorizontal
		if len(set.Horizontal) == 0 {
			l.active = LaneVertical
		}
	}
	l.set = set
	l.clamp()
}

// clamp pulls the cursors back inside the set after it shrank.
func (l *Lanes) clamp() {
	if l.hIndex >= len(l.set.Horizontal) {
		l.hIndex = len(l.set.Horizontal) - 1
	}
	if l.hIndex < 0 {
		l.hIndex = 0
	}
	if l.vIndex >= len(l.set.Vertical) {
		l.vIndex = len(l.set.Vertical) - 1
	}
	if l.vIndex < 0 {
		l.vIndex = 0
	}
	if l.active == LaneHorizontal && len(l.set.Horizontal) == 0 && len(l.set.Vertical) > 0 {
		l.active = LaneVertical
	}
	if l.active == LaneVertical && len(l.set.Vertical) == 0 && len(l.set.Horizontal) > 0 {
		l.active = LaneHorizontal
	}
}

// Set returns the displayed result set.
func (l *Lanes) Set() domain.CombinedResultSet {
	return l.set
}

// ActiveLane returns the lane holding the selection.
func (l *Lanes) ActiveLane() Lane {
	return l.active
}

// Selected returns the item under the cursor, or false when empty.
func (l *Lanes) Selected() (domain.ResultItem, bool) {
	if l.active == LaneHorizontal && l.hIndex < len(l.set.Horizontal) {
		return l.set.Horizontal[l.hIndex], true
	}
	if l.active == LaneVertical && l.vIndex < len(l.set.Vertical) {
		return l.set.Vertical[l.vIndex], true
	}
	return domain.ResultItem{}, false
}

// MoveLeft moves the quick-launch selection left.
func (l *Lanes) MoveLeft() {
	if len(l.set.Horizontal) == 0 {
		return
	}
	l.active = LaneHorizontal
	if l.hIndex > 0 {
		l.hIndex--
	}
}

// MoveRight moves the quick-launch selection right.
func (l *Lanes) MoveRight() {
	if len(l.set.Horizontal) == 0 {
		return
	}
	l.active = LaneHorizontal
	if l.hIndex < len(l.set.Horizontal)-1 {
		l.hIndex++
	}
}

// MoveUp moves the list selection up; at the top it hands the selection
// back to the quick-launch row.
func (l *Lanes) MoveUp() {
	if l.active == LaneVertical && l.vIndex == 0 && len(l.set.Horizontal) > 0 {
		l.active = LaneHorizontal
		return
	}
	if l.active == LaneVertical && l.vIndex > 0 {
		l.vIndex--
	}
}

// MoveDown moves the list selection down, entering the list from the
// quick-launch row if needed.
func (l *Lanes) MoveDown() {
	if len(l.set.Vertical) == 0 {
		return
	}
	if l.active == LaneHorizontal {
		l.active = LaneVertical
		return
	}
	if l.vIndex < len(l.set.Vertical)-1 {
		l.vIndex++
	}
}

// SetDimensions sets the component dimensions.
func (l *Lanes) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// IsEmpty reports whether both lanes are empty.
func (l *Lanes) IsEmpty() bool {
	return l.set.IsEmpty()
}

// View renders both lanes.
func (l *Lanes) View() string {
	if l.set.IsEmpty() {
		return l.styles.Muted.Render("Type to search")
	}

	var sections []string
	if row := l.viewHorizontal(); row != "" {
		sections = append(sections, row)
	}
	if list := l.viewVertical(); list != "" {
		sections = append(sections, list)
	}
	return strings.Join(sections, "\n\n")
}

// viewHorizontal renders the quick-launch row.
func (l *Lanes) viewHorizontal() string {
	if len(l.set.Horizontal) == 0 {
		return ""
	}

	cells := make([]string, 0, len(l.set.Horizontal))
	for i, item := range l.set.Horizontal {
		name := truncate(item.DisplayName, 18)
		if l.active == LaneHorizontal && i == l.hIndex {
			cells = append(cells, l.styles.CellSelected.Render(name))
		} else {
			cells = append(cells, l.styles.Cell.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

// viewVertical renders the result list with a scrolling window.
func (l *Lanes) viewVertical() string {
	if len(l.set.Vertical) == 0 {
		return ""
	}

	visible := l.height - 4
	if len(l.set.Horizontal) > 0 {
		visible -= 2
	}
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.vIndex >= visible {
		start = l.vIndex - visible + 1
	}
	end := start + visible
	if end > len(l.set.Vertical) {
		end = len(l.set.Vertical)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderItem(i, l.set.Vertical[i]))
	}
	return strings.Join(lines, "\n")
}

// renderItem formats one list row: cursor, kind tag, name, detail.
func (l *Lanes) renderItem(index int, item domain.ResultItem) string {
	cursor := "  "
	if l.active == LaneVertical && index == l.vIndex {
		cursor = "> "
	}

	tag := l.styles.KindTag.Render(kindLabel(item.Kind))

	maxName := l.width - 34
	if maxName < 16 {
		maxName = 16
	}
	name := truncate(item.DisplayName, maxName)

	detail := item.Detail
	if detail == "" && item.Path != item.DisplayName {
		detail = item.Path
	}
	detail = truncate(detail, l.width-maxName-16)

	if l.active == LaneVertical && index == l.vIndex {
		return l.styles.Selected.Render(fmt.Sprintf("%s%s %-*s", cursor, kindLabel(item.Kind), maxName, name)) +
			" " + l.styles.Muted.Render(detail)
	}
	return cursor + tag + l.styles.Normal.Render(fmt.Sprintf("%-*s", maxName, name)) +
		" " + l.styles.Muted.Render(detail)
}

// kindLabel maps a result kind to its list tag.
func kindLabel(kind domain.ResultKind) string {
	switch kind {
	case domain.KindDetectedPath:
		return "path"
	case domain.KindDetectedURL:
		return "url"
	case domain.KindDetectedEmail:
		return "email"
	case domain.KindDetectedJSON:
		return "json"
	case domain.KindApplication:
		return "app"
	case domain.KindPlugin:
		return "plugin"
	case domain.KindFileHistory:
		return "recent"
	case domain.KindSystemFolder:
		return "folder"
	case domain.KindIndexHit:
		return "file"
	case domain.KindNote:
		return "note"
	default:
		return ""
	}
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
