package quotes

import (
	"context"

	"github.com/guttosm/indexpulse/internal/domain/models"
	"github.com/guttosm/indexpulse/internal/upstream"
)

// infoSource is the slice of the Yahoo client this backend needs; tests
// substitute a stub.
type infoSource interface {
	Quote(ctx context.Context, symbol string) (*upstream.QuoteRecord, error)
	Chart(ctx context.Context, symbol, rng, interval string) (*upstream.ChartResult, error)
}

// historicalBackend builds snapshots from the instrument info record:
// last close, 52-week range, and display name.
type historicalBackend struct {
	source infoSource
}

// NewHistoricalBackend builds the historical-info backend.
func NewHistoricalBackend(source infoSource) Backend {
	return &historicalBackend{source: source}
}

func (b *historicalBackend) Name() string { return "historical" }

// Snapshot fetches the info record and derives the range metrics.
//
// Behavior:
//   - last close comes from the info record; when the field is absent,
//     the most recent single day of history is tried instead. If that
//     is also empty the price stays nil without failing the snapshot.
//   - when the price is nil every derived field stays nil as well.
//   - any info-record failure is returned as-is (classified) for the
//     Fetcher to convert into a null record.
func (b *historicalBackend) Snapshot(ctx context.Context, symbol string) (models.QuoteSnapshot, error) {
	rec, err := b.source.Quote(ctx, symbol)
	if err != nil {
		return models.QuoteSnapshot{}, err
	}

	last := rec.PreviousClose
	if last == nil {
		if chart, cerr := b.source.Chart(ctx, symbol, "1d", "1d"); cerr == nil && len(chart.Bars) > 0 {
			v := chart.Bars[len(chart.Bars)-1].Close
			last = &v
		}
	}

	name := rec.LongName
	if name == "" {
		name = symbol
	}

	snap := models.QuoteSnapshot{Symbol: symbol, Name: name}
	if last != nil {
		price := round2(*last)
		snap.LastPrice = &price
		snap.High52Week = rec.High52Week
		snap.Low52Week = rec.Low52Week
		snap.LowNearness = Nearness(last, rec.Low52Week, rec.High52Week)
	}
	return snap, nil
}
