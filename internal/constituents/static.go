package constituents

import (
	"context"

	"github.com/guttosm/indexpulse/internal/domain/models"
)

// sensex30 is the hardcoded BSE SENSEX 30 constituent list. The index
// has no machine-readable remote source, so the static list is the only
// source and is always tagged as fallback.
var sensex30 = []string{
	"RELIANCE", "HDFCBANK", "ICICIBANK", "INFY", "HINDUNILVR", "TCS", "KOTAKBANK",
	"AXISBANK", "SBIN", "LT", "ASIANPAINT", "MARUTI", "BAJFINANCE", "HCLTECH",
	"TITAN", "SUNPHARMA", "NESTLEIND", "ITC", "TATASTEEL", "POWERGRID",
	"INDUSINDBK", "ULTRACEMCO", "TECHM", "M&M", "TATAMOTORS", "BAJAJFINSV",
	"HINDALCO", "WIPRO", "BHARTIARTL", "DRREDDY",
}

// staticProvider serves an index whose constituent list is maintained by
// hand. It is the degenerate case of the Provider contract: Fetch always
// succeeds with the hardcoded list.
type staticProvider struct {
	index   models.IndexKind
	symbols []string
}

// NewSensexProvider builds the statically-enumerated SENSEX 30 provider.
func NewSensexProvider() Provider {
	return &staticProvider{index: models.IndexSensex, symbols: sensex30}
}

func (p *staticProvider) Index() models.IndexKind { return p.index }

func (p *staticProvider) Fetch(context.Context) ([]string, models.Source, error) {
	out := make([]string, len(p.symbols))
	copy(out, p.symbols)
	return out, models.SourceFallback, nil
}

func (p *staticProvider) Fallback() []string {
	out := make([]string, len(p.symbols))
	copy(out, p.symbols)
	return out
}
