package services

import (
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lightbar-dev/lightbar/internal/core/domain"
)

// Sources carries the per-source filtered lists feeding one combination:
// synchronous snapshots, detector hints, and the latest accepted
// index batch, all for the same query generation.
type Sources struct {
	// Query is the trimmed query the lists were filtered for.
	Query string

	// Hints are detector-derived synthetic entries.
	Hints []domain.ResultItem

	// Applications, Plugins, History, Folders, Notes are the filtered
	// synchronous source lists in source order.
	Applications []domain.ResultItem
	Plugins      []domain.ResultItem
	History      []domain.ResultItem
	Folders      []domain.ResultItem
	Notes        []domain.ResultItem

	// IndexHits is the latest accepted batch from the index daemon.
	IndexHits []domain.ResultItem
}

// Combiner merges source lists into a CombinedResultSet. It is a pure
// value computation: same inputs, same ordered output.
type Combiner struct {
	horizontalLimit int
	quickLaneMaxLen int
}

// NewCombiner creates a combiner. horizontalLimit bounds the quick-launch
// row; quickLaneMaxLen is the longest query still treated as prefix-like.
func NewCombiner(horizontalLimit, quickLaneMaxLen int) *Combiner {
	if horizontalLimit < 1 {
		horizontalLimit = 8
	}
	if quickLaneMaxLen < 1 {
		quickLaneMaxLen = 12
	}
	return &Combiner{
		horizontalLimit: horizontalLimit,
		quickLaneMaxLen: quickLaneMaxLen,
	}
}

// Combine builds the two-lane result set for one generation.
//
// Ordering policy: detector hints lead the vertical lane; applications
// and plugins fill the horizontal lane for prefix-like queries; the rest
// of the vertical lane sorts by per-kind source order with recency
// tie-breaks inside a kind, stably, so equal-priority items keep their
// source order. A file-history entry and an index hit on the same
// normalised path collapse to the history entry.
func (c *Combiner) Combine(gen domain.Generation, src Sources) domain.CombinedResultSet {
	set := domain.CombinedResultSet{
		Generation: gen,
		Query:      src.Query,
	}
	if src.Query == "" {
		return set
	}

	hits := dropHistoryDuplicates(src.IndexHits, src.History)

	quick := c.isQuickLane(src.Query)
	if quick {
		set.Horizontal = c.fillHorizontal(src.Applications, src.Plugins)
	}

	// Vertical lane: hints first, then everything not promoted to the
	// horizontal row.
	vertical := make([]domain.ResultItem, 0,
		len(src.Hints)+len(src.Applications)+len(src.Plugins)+
			len(src.History)+len(src.Folders)+len(src.Notes)+len(hits))
	vertical = append(vertical, src.Hints...)

	rest := make([]domain.ResultItem, 0, cap(vertical))
	if !quick {
		rest = append(rest, src.Applications...)
		rest = append(rest, src.Plugins...)
	} else {
		rest = append(rest, overflow(src.Applications, src.Plugins, set.Horizontal)...)
	}
	rest = append(rest, src.History...)
	rest = append(rest, src.Folders...)
	rest = append(rest, hits...)
	rest = append(rest, src.Notes...)

	sortLane(rest)
	set.Vertical = append(vertical, rest...)

	return set
}

// isQuickLane reports whether the query is short and prefix-like: a
// single word the user is plausibly still typing an app name into.
func (c *Combiner) isQuickLane(query string) bool {
	if utf8.RuneCountInString(query) > c.quickLaneMaxLen {
		return false
	}
	return !strings.ContainsAny(query, " \t/")
}

// fillHorizontal builds the bounded quick-launch row: apps, then plugins.
func (c *Combiner) fillHorizontal(apps, plugins []domain.ResultItem) []domain.ResultItem {
	row := make([]domain.ResultItem, 0, c.horizontalLimit)
	for _, item := range apps {
		if len(row) == c.horizontalLimit {
			return row
		}
		row = append(row, item)
	}
	for _, item := range plugins {
		if len(row) == c.horizontalLimit {
			return row
		}
		row = append(row, item)
	}
	return row
}

// overflow returns the apps/plugins that did not fit the horizontal row.
func overflow(apps, plugins, row []domain.ResultItem) []domain.ResultItem {
	taken := make(map[string]bool, len(row))
	for _, item := range row {
		taken[string(item.Kind)+"\x00"+item.Path] = true
	}

	var rest []domain.ResultItem
	for _, item := range apps {
		if !taken[string(item.Kind)+"\x00"+item.Path] {
			rest = append(rest, item)
		}
	}
	for _, item := range plugins {
		if !taken[string(item.Kind)+"\x00"+item.Path] {
			rest = append(rest, item)
		}
	}
	return rest
}

// dropHistoryDuplicates removes index hits that resolve to the same
// normalised path as a history entry. The history entry wins: it carries
// recency and use-count metadata the bare hit lacks.
func dropHistoryDuplicates(hits, history []domain.ResultItem) []domain.ResultItem {
	if len(hits) == 0 || len(history) == 0 {
		return hits
	}

	known := make(map[string]bool, len(history))
	for _, h := range history {
		known[normalizePath(h.Path)] = true
	}

	kept := make([]domain.ResultItem, 0, len(hits))
	for _, hit := range hits {
		if known[normalizePath(hit.Path)] {
			continue
		}
		kept = append(kept, hit)
	}
	return kept
}

// normalizePath canonicalises a path for identity comparison.
func normalizePath(path string) string {
	if path == "" {
		return ""
	}
	cleaned := filepath.Clean(path)
	if len(cleaned) > 1 {
		cleaned = strings.TrimSuffix(cleaned, string(filepath.Separator))
	}
	return cleaned
}

// sortLane orders a lane by per-kind source order, breaking ties inside a
// kind by recency (last used, then use count). The sort is stable:
// items with equal keys keep their original source order.
func sortLane(items []domain.ResultItem) {
	sort.SliceStable(items, func(i, j int) bool {
		oi, oj := items[i].Kind.SourceOrder(), items[j].Kind.SourceOrder()
		if oi != oj {
			return oi < oj
		}
		if !items[i].LastUsed.Equal(items[j].LastUsed) {
			return items[i].LastUsed.After(items[j].LastUsed)
		}
		if items[i].UseCount != items[j].UseCount {
			return items[i].UseCount > items[j].UseCount
		}
		return false
	})
}
