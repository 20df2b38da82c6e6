package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrTimeout indicates a session create or fetch exceeded its bound.
	ErrTimeout = errors.New("operation timed out")

	// ErrServiceUnavailable indicates the index daemon is absent or not running.
	ErrServiceUnavailable = errors.New("index service unavailable")

	// ErrSessionInvalid indicates a stale or closed session was referenced.
	ErrSessionInvalid = errors.New("session invalid")

	// ErrEmptyQuery indicates a session was requested for an empty query.
	ErrEmptyQuery = errors.New("empty query")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrShutdown indicates the launcher service has been closed.
	ErrShutdown = errors.New("launcher shut down")
)

// ErrorKind is the structured classification of an index-branch failure,
// surfaced to the UI so "daemon not running" reads differently from
// "no matches found".
type ErrorKind string

// Error kinds surfaced by LastError.
const (
	// ErrorNone means the last pipeline run had no index-branch failure.
	ErrorNone ErrorKind = ""

	// ErrorTimeout means a session create or fetch exceeded its bound.
	ErrorTimeout ErrorKind = "timeout"

	// ErrorServiceUnavailable means the index daemon is absent or down.
	ErrorServiceUnavailable ErrorKind = "service_unavailable"

	// ErrorSessionInvalid means a stale or closed session was referenced.
	ErrorSessionInvalid ErrorKind = "session_invalid"
)

// String returns the string representation.
func (k ErrorKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the kind.
func (k ErrorKind) Description() string {
	switch k {
	case ErrorTimeout:
		return "Index search timed out"
	case ErrorServiceUnavailable:
		return "Index service unavailable"
	case ErrorSessionInvalid:
		return "Index session expired"
	default:
		return ""
	}
}

// ClassifyError maps an error to its ErrorKind. Errors that wrap none of
// the index sentinels classify as unavailability: the branch failed in a
// way the protocol does not name, and the UI must not read that as
// "no matches".
func ClassifyError(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorNone
	case errors.Is(err, ErrTimeout):
		return ErrorTimeout
	case errors.Is(err, ErrSessionInvalid):
		return ErrorSessionInvalid
	default:
		return ErrorServiceUnavailable
	}
}
