package models

// IndexKind identifies a supported equity index.
type IndexKind string

const (
	IndexNifty50 IndexKind = "NIFTY50"
	IndexSensex  IndexKind = "SENSEX"
)

// ParseIndexKind maps a request path segment to an IndexKind.
//
// Returns:
//   - IndexKind: the matched kind.
//   - bool: false when the name is not a supported index.
func ParseIndexKind(name string) (IndexKind, bool) {
	switch IndexKind(name) {
	case IndexNifty50:
		return IndexNifty50, true
	case IndexSensex:
		return IndexSensex, true
	default:
		return "", false
	}
}

// Source indicates where a constituent list came from.
type Source string

const (
	// SourceRemote means the list was downloaded from the exchange archives.
	SourceRemote Source = "remote"
	// SourceFallback means the hardcoded list was used, either because the
	// remote fetch failed or because the index has no remote source at all.
	SourceFallback Source = "fallback"
)

// ConstituentList is an ordered list of ticker symbols for one index,
// tagged with the source it was resolved from.
//
// Invariants:
//   - Symbols is never empty: resolution falls back to a hardcoded list
//     when the remote source is unreachable or malformed.
//   - Symbols are uppercase, non-empty, and unique within the list.
type ConstituentList struct {
	Index   IndexKind
	Symbols []string
	Source  Source
}
