package domain

import "time"

// TotalCountUnknown marks a session whose total match count was not
// reported by the index daemon.
const TotalCountUnknown = -1

// IndexSession is a server-side handle over a paginated result set for
// one query against the external file-index daemon. It is owned by the
// session client while open and must be closed (best-effort) when
// superseded, when the query is cleared, or on shutdown.
type IndexSession struct {
	// ID is the opaque session identifier. Never reused.
	ID string

	// Query is the trimmed query the session was created for.
	Query string

	// TotalCount is the total number of matches, or TotalCountUnknown.
	TotalCount int

	// PageSize is the fetch page size negotiated at creation.
	PageSize int

	// MaxResults is the result-set ceiling requested at creation.
	MaxResults int

	// CreatedAt is the local creation time.
	CreatedAt time.Time
}

// SessionOptions configures session creation.
type SessionOptions struct {
	// MaxResults caps the result set the daemon materialises.
	MaxResults int

	// PageSize is the page size for range fetches.
	PageSize int
}

// ServiceStatus reports the availability of the index daemon.
type ServiceStatus struct {
	// Available is true when the daemon answered the probe.
	Available bool

	// Error holds the probe failure, if any.
	Error string
}

// SizingTier maps a minimum query length to a result-set ceiling.
type SizingTier struct {
	// MinLength is the smallest query length (in runes) this tier covers.
	MinLength int

	// MaxResults is the ceiling applied at and above MinLength.
	MaxResults int
}

// SizingTable is the adaptive page-sizing policy: short queries against a
// large index can match millions of entries, so the ceiling grows with
// query length. Tiers must be sorted by MinLength with non-decreasing
// ceilings. This is policy, not physics; it lives in configuration.
type SizingTable []SizingTier

// maxFetchPage bounds the page size for the first range fetch.
const maxFetchPage = 64

// DefaultSizingTable returns the built-in length-to-ceiling tiers.
func DefaultSizingTable() SizingTable {
	return SizingTable{
		{MinLength: 1, MaxResults: 40},
		{MinLength: 2, MaxResults: 120},
		{MinLength: 3, MaxResults: 400},
		{MinLength: 5, MaxResults: 1000},
	}
}

// IsValid reports whether the table is non-empty, sorted by MinLength,
// and has non-decreasing ceilings.
func (t SizingTable) IsValid() bool {
	if len(t) == 0 {
		return false
	}
	for i, tier := range t {
		if tier.MinLength < 1 || tier.MaxResults < 1 {
			return false
		}
		if i > 0 && (tier.MinLength <= t[i-1].MinLength || tier.MaxResults < t[i-1].MaxResults) {
			return false
		}
	}
	return true
}

// OptionsFor returns the session options for a query of the given rune
// length. Lengths below the first tier use the first tier's ceiling.
func (t SizingTable) OptionsFor(queryLen int) SessionOptions {
	maxResults := t[0].MaxResults
	for _, tier := range t {
		if queryLen >= tier.MinLength {
			maxResults = tier.MaxResults
		}
	}

	pageSize := maxResults
	if pageSize > maxFetchPage {
		pageSize = maxFetchPage
	}

	return SessionOptions{MaxResults: maxResults, PageSize: pageSize}
}
