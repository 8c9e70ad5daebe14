package models

// QuoteSnapshot is one symbol's point-in-time price and 52-week range metrics.
//
// Numeric fields are pointers so that "no data" is representable: when
// LastPrice is nil every derived field is nil as well. LowNearness, when
// set, lies in [0,100].
type QuoteSnapshot struct {
	Symbol      string
	Name        string
	LastPrice   *float64
	High52Week  *float64
	Low52Week   *float64
	LowNearness *float64
	DetailLink  string
}

// AggregateReport is the result of fetching snapshots for every
// constituent of an index.
//
// Invariants:
//   - TotalFetched <= TotalConstituents.
//   - Items contains only snapshots with a non-nil LastPrice, in the
//     same order as the resolved constituent list.
//   - Status is "warning" whenever Source is SourceFallback.
type AggregateReport struct {
	Index             IndexKind
	Status            string
	Source            Source
	TotalConstituents int
	TotalFetched      int
	Items             []QuoteSnapshot
}

// Report status values. An aggregate request never hard-fails: degraded
// upstream sources only downgrade the status and shrink the item list.
const (
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusError   = "error"
)
