package quotes

import (
	"context"

	"github.com/guttosm/indexpulse/internal/domain/models"
	"github.com/guttosm/indexpulse/internal/upstream"
)

// quoteSource is the slice of the NSE client this backend needs; tests
// substitute a stub.
type quoteSource interface {
	QuoteEquity(ctx context.Context, symbol string) (*upstream.QuoteEquityDoc, error)
}

// LiveBackend builds snapshots from the exchange's live quote endpoint.
// It also exposes the full quote record for the single-stock endpoint.
type LiveBackend struct {
	source quoteSource
}

// NewLiveBackend builds the live-quote backend.
func NewLiveBackend(source quoteSource) *LiveBackend {
	return &LiveBackend{source: source}
}

func (b *LiveBackend) Name() string { return "live" }

// Snapshot maps the live quote document into the snapshot shape. Every
// failure (including the non-JSON market-closed body) comes back
// classified for the Fetcher to convert into a null record.
func (b *LiveBackend) Snapshot(ctx context.Context, symbol string) (models.QuoteSnapshot, error) {
	doc, err := b.source.QuoteEquity(ctx, symbol)
	if err != nil {
		return models.QuoteSnapshot{}, err
	}

	price := round2(doc.PriceInfo.LastPrice)
	high := doc.SecurityWisePCR.High52Week
	low := doc.SecurityWisePCR.Low52Week

	return models.QuoteSnapshot{
		Symbol:      doc.Info.Symbol,
		Name:        doc.Info.CompanyName,
		LastPrice:   &price,
		High52Week:  &high,
		Low52Week:   &low,
		LowNearness: Nearness(&price, &low, &high),
	}, nil
}

// Quote returns the full live quote for one symbol. Market capital is
// an approximation: issued capital times last price.
func (b *LiveBackend) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	doc, err := b.source.QuoteEquity(ctx, symbol)
	if err != nil {
		return nil, err
	}

	return &models.Quote{
		Symbol:        doc.Info.Symbol,
		CompanyName:   doc.Info.CompanyName,
		LastPrice:     doc.PriceInfo.LastPrice,
		Change:        doc.PriceInfo.Change,
		PChange:       doc.PriceInfo.PChange,
		High52Week:    doc.SecurityWisePCR.High52Week,
		Low52Week:     doc.SecurityWisePCR.Low52Week,
		MarketCapital: doc.SecurityInfo.IssuedCap * doc.PriceInfo.LastPrice,
		Industry:      doc.Metadata.Industry,
	}, nil
}
