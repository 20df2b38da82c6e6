// Package domain contains the core business types of the launcher:
// queries and their generations, result items and the two-lane combined
// result set, index sessions, and the error taxonomy. The package has no
// dependencies on adapters or services.
package domain
