package lanes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

func twoLaneSet(gen domain.Generation) domain.CombinedResultSet {
	return domain.CombinedResultSet{
		Generation: gen,
		Query:      "term",
		Horizontal: []domain.ResultItem{
			{Kind: domain.KindApplication, DisplayName: "Terminal", Detail: "gnome-terminal"},
			{Kind: domain.KindApplication, DisplayName: "Text Editor", Detail: "gedit"},
		},
		Vertical: []domain.ResultItem{
			{Kind: domain.KindFileHistory, DisplayName: "terms.pdf", Path: "/home/u/terms.pdf"},
			{Kind: domain.KindIndexHit, DisplayName: "term-sheet.md", Path: "/idx/term-sheet.md"},
			{Kind: domain.KindNote, DisplayName: "terminology"},
		},
	}
}

func TestSelectionStartsOnQuickLaunchRow(t *testing.T) {
	l := New(nil)
	l.SetResultSet(twoLaneSet(1))

	assert.Equal(t, LaneHorizontal, l.ActiveLane())
	item, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, "Terminal", item.DisplayName)
}

func TestSelectionFallsToListWhenRowEmpty(t *testing.T) {
	l := New(nil)
	set := twoLaneSet(1)
	set.Horizontal = nil
	l.SetResultSet(set)

	assert.Equal(t, LaneVertical, l.ActiveLane())
	item, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, "terms.pdf", item.DisplayName)
}

func TestDownEntersListAndUpHandsBack(t *testing.T) {
	l := New(nil)
	l.SetResultSet(twoLaneSet(1))

	l.MoveDown()
	assert.Equal(t, LaneVertical, l.ActiveLane())
	item, _ := l.Selected()
	assert.Equal(t, "terms.pdf", item.DisplayName)

	l.MoveDown()
	item, _ = l.Selected()
	assert.Equal(t, "term-sheet.md", item.DisplayName)

	l.MoveUp()
	l.MoveUp()
	assert.Equal(t, LaneHorizontal, l.ActiveLane())
}

func TestHorizontalMovesClampAtEdges(t *testing.T) {
	l := New(nil)
	l.SetResultSet(twoLaneSet(1))

	l.MoveLeft()
	item, _ := l.Selected()
	assert.Equal(t, "Terminal", item.DisplayName)

	l.MoveRight()
	l.MoveRight()
	l.MoveRight()
	item, _ = l.Selected()
	assert.Equal(t, "Text Editor", item.DisplayName)
}

func TestDownClampsAtListEnd(t *testing.T) {
	l := New(nil)
	l.SetResultSet(twoLaneSet(1))

	for i := 0; i < 10; i++ {
		l.MoveDown()
	}
	item, _ := l.Selected()
	assert.Equal(t, "terminology", item.DisplayName)
}

func TestSameGenerationUpdateKeepsSelection(t *testing.T) {
	l := New(nil)
	l.SetResultSet(twoLaneSet(3))
	l.MoveDown()
	l.MoveDown()

	// Same generation with an extra index hit appended: the cursor stays.
	set := twoLaneSet(3)
	set.Vertical = append(set.Vertical, domain.ResultItem{
		Kind: domain.KindIndexHit, DisplayName: "late-hit.txt",
	})
	l.SetResultSet(set)

	assert.Equal(t, LaneVertical, l.ActiveLane())
	item, _ := l.Selected()
	assert.Equal(t, "term-sheet.md", item.DisplayName)
}

func TestNewGenerationResetsSelection(t *testing.T) {
	l := New(nil)
	l.SetResultSet(twoLaneSet(3))
	l.MoveDown()
	l.MoveDown()

	l.SetResultSet(twoLaneSet(4))

	assert.Equal(t, LaneHorizontal, l.ActiveLane())
	item, _ := l.Selected()
	assert.Equal(t, "Terminal", item.DisplayName)
}

func TestSelectedOnEmptySet(t *testing.T) {
	l := New(nil)

	_, ok := l.Selected()
	assert.False(t, ok)
	assert.True(t, l.IsEmpty())
}

func TestViewEmptyShowsPrompt(t *testing.T) {
	l := New(nil)

	assert.Contains(t, l.View(), "Type to search")
}

func TestViewRendersBothLanes(t *testing.T) {
	l := New(nil)
	l.SetDimensions(100, 20)
	l.SetResultSet(twoLaneSet(1))

	view := l.View()
	assert.Contains(t, view, "Terminal")
	assert.Contains(t, view, "terms.pdf")
	assert.Contains(t, view, "recent")
	assert.Contains(t, view, "file")
}

func TestViewShrinksListToWindow(t *testing.T) {
	l := New(nil)
	l.SetDimensions(100, 9)

	set := twoLaneSet(1)
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"} {
		set.Vertical = append(set.Vertical, domain.ResultItem{
			Kind: domain.KindIndexHit, DisplayName: name,
		})
	}
	l.SetResultSet(set)

	// Scroll to the bottom; the top of the list must slide out of view.
	for i := 0; i < 10; i++ {
		l.MoveDown()
	}
	view := l.View()
	assert.Contains(t, view, "e.txt")
	assert.NotContains(t, view, "terms.pdf")
}

func TestTruncateKeepsShortStrings(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 18))
	assert.Equal(t, "exactly-eighteen-c", truncate("exactly-eighteen-c", 18))
	assert.Equal(t, "a-very-long-displ…", truncate("a-very-long-display-name", 18))
}

func TestKindLabels(t *testing.T) {
	assert.Equal(t, "app", kindLabel(domain.KindApplication))
	assert.Equal(t, "recent", kindLabel(domain.KindFileHistory))
	assert.Equal(t, "file", kindLabel(domain.KindIndexHit))
	assert.Equal(t, "", kindLabel(domain.ResultKind("bogus")))
}
