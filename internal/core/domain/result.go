package domain

import "time"

// ResultKind identifies the source variant of a result item.
type ResultKind string

// Result kinds, one per source variant.
const (
	// KindDetectedPath is a synthetic entry for a query that is itself a path.
	KindDetectedPath ResultKind = "detected_path"

	// KindDetectedURL is a synthetic entry for a query that parses as a URL.
	KindDetectedURL ResultKind = "detected_url"

	// KindDetectedEmail is a synthetic entry for a query that is an e-mail address.
	KindDetectedEmail ResultKind = "detected_email"

	// KindDetectedJSON is a synthetic entry for a query that is a JSON document.
	KindDetectedJSON ResultKind = "detected_json"

	// KindApplication is an installed application.
	KindApplication ResultKind = "application"

	// KindPlugin is an installed command plugin.
	KindPlugin ResultKind = "plugin"

	// KindFileHistory is a previously opened file.
	KindFileHistory ResultKind = "file_history"

	// KindSystemFolder is a well-known folder (home, downloads, ...).
	KindSystemFolder ResultKind = "system_folder"

	// KindIndexHit is a match from the external file-index daemon.
	KindIndexHit ResultKind = "index_hit"

	// KindNote is a saved note.
	KindNote ResultKind = "note"
)

// IsValid returns true if the kind is recognised.
func (k ResultKind) IsValid() bool {
	return k.SourceOrder() >= 0
}

// IsDetected returns true for synthetic detector-derived kinds.
func (k ResultKind) IsDetected() bool {
	switch k {
	case KindDetectedPath, KindDetectedURL, KindDetectedEmail, KindDetectedJSON:
		return true
	default:
		return false
	}
}

// SourceOrder is the fixed per-kind priority used as a stable sort key.
// Lower sorts earlier. Detector hints outrank everything because they
// represent a near-certain user intent. Returns -1 for unknown kinds.
func (k ResultKind) SourceOrder() int {
	switch k {
	case KindDetectedPath:
		return 0
	case KindDetectedURL:
		return 1
	case KindDetectedEmail:
		return 2
	case KindDetectedJSON:
		return 3
	case KindApplication:
		return 4
	case KindPlugin:
		return 5
	case KindFileHistory:
		return 6
	case KindSystemFolder:
		return 7
	case KindIndexHit:
		return 8
	case KindNote:
		return 9
	default:
		return -1
	}
}

// String returns the string representation.
func (k ResultKind) String() string {
	return string(k)
}

// ResultItem is one candidate in the combined result list. It is a value:
// activation side effects belong to the ResultActivator collaborator.
type ResultItem struct {
	// Kind tags the source variant.
	Kind ResultKind

	// DisplayName is the primary label shown to the user.
	DisplayName string

	// Path is the identity of the item: a filesystem path, URL, or
	// opaque ID depending on Kind. Unique within a kind.
	Path string

	// Detail is an optional secondary label (folder, plugin description).
	Detail string

	// LastUsed is the recency timestamp, where the source tracks one.
	LastUsed time.Time

	// UseCount is the activation count, where the source tracks one.
	UseCount int
}

// CombinedResultSet is the two-lane output of one accepted recomputation.
// It is rebuilt wholesale and never mutated in place.
type CombinedResultSet struct {
	// Generation is the query generation this set was computed for.
	Generation Generation

	// Query is the trimmed query text the set answers.
	Query string

	// Horizontal is the bounded quick-launch row (apps, plugins).
	Horizontal []ResultItem

	// Vertical is the main result list.
	Vertical []ResultItem

	// HorizontalSelection and VerticalSelection are cursors into the
	// lanes. They reset to the first item on every new generation.
	HorizontalSelection int
	VerticalSelection   int
}

// IsEmpty reports whether both lanes are empty.
func (c CombinedResultSet) IsEmpty() bool {
	return len(c.Horizontal) == 0 && len(c.Vertical) == 0
}

// Len returns the total number of items across both lanes.
func (c CombinedResultSet) Len() int {
	return len(c.Horizontal) + len(c.Vertical)
}

// SelectedHorizontal returns the selected quick-launch item, or nil.
func (c *CombinedResultSet) SelectedHorizontal() *ResultItem {
	if c.HorizontalSelection < 0 || c.HorizontalSelection >= len(c.Horizontal) {
		return nil
	}
	return &c.Horizontal[c.HorizontalSelection]
}

// SelectedVertical returns the selected list item, or nil.
func (c *CombinedResultSet) SelectedVertical() *ResultItem {
	if c.VerticalSelection < 0 || c.VerticalSelection >= len(c.Vertical) {
		return nil
	}
	return &c.Vertical[c.VerticalSelection]
}
