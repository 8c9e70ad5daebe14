// Package faults classifies upstream failures so callers can tell a
// degraded-but-expected outcome (market closed, source down) apart from
// a genuine bug, instead of string-matching log messages.
package faults

import (
	"errors"
	"fmt"
)

// Kind discriminates the failure classes seen at the resolver and
// fetcher boundaries. Batch paths convert them into degraded results;
// per-symbol paths let them reach the HTTP layer, where the kind picks
// the status code.
type Kind int

const (
	// Unknown covers any failure not matched by a more specific kind.
	Unknown Kind = iota
	// SourceUnavailable covers network failures, timeouts, and non-2xx
	// HTTP statuses.
	SourceUnavailable
	// SchemaMismatch covers an expected column or field being absent,
	// or an unexpected document shape.
	SchemaMismatch
	// DataUnavailable covers legitimate empty responses: market closed,
	// no history for the period, non-JSON quote body.
	DataUnavailable
)

// String returns a stable name for the kind, used in structured logs.
func (k Kind) String() string {
	switch k {
	case SourceUnavailable:
		return "source_unavailable"
	case SchemaMismatch:
		return "schema_mismatch"
	case DataUnavailable:
		return "data_unavailable"
	default:
		return "unknown"
	}
}

// Error wraps an underlying error with its classified kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a classified error wrapping err (which may be nil).
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Newf builds a classified error from a format string.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the kind from err, returning Unknown for unclassified
// errors and nil errors alike.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Unknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}
