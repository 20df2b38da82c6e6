package domain

import "strings"

// Generation tags a query state. Every keystroke advances the counter,
// and an asynchronous completion may only publish while its captured
// generation is still the live one.
type Generation uint64

// Query is an immutable snapshot of the launcher input at one generation.
type Query struct {
	// Text is the raw input as typed.
	Text string

	// Generation identifies which keystroke state this query belongs to.
	Generation Generation
}

// Trimmed returns the query text with surrounding whitespace removed.
// Session creation and source filtering operate on the trimmed form.
func (q Query) Trimmed() string {
	return strings.TrimSpace(q.Text)
}

// IsEmpty reports whether the query has no searchable content.
func (q Query) IsEmpty() bool {
	return q.Trimmed() == ""
}
