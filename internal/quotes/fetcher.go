// Package quotes fetches per-symbol price/range snapshots from one of
// two interchangeable backends, isolating failures per symbol: a failed
// fetch degrades to a null-valued snapshot instead of aborting a batch.
package quotes

import (
	"context"
	"fmt"

	"github.com/guttosm/indexpulse/internal/domain/faults"
	"github.com/guttosm/indexpulse/internal/domain/models"
	"github.com/guttosm/indexpulse/internal/logger"
)

// Backend produces a complete snapshot for one symbol, or a classified
// error. Backends are polymorphic over the same output shape; callers
// pick one based on which data they need (historical metrics vs. live
// quote fields).
type Backend interface {
	Name() string
	Snapshot(ctx context.Context, symbol string) (models.QuoteSnapshot, error)
}

// Fetcher wraps a Backend with the never-fails contract: FetchOne
// always returns a well-formed snapshot, converting every backend
// failure into a null-valued record.
type Fetcher struct {
	backend Backend
	linkFor func(symbol string) string
}

// NewFetcher builds a Fetcher over the given backend. linkFor builds
// the public detail-page URL for a symbol; it is applied to every
// snapshot, including error placeholders, and needs no network access.
func NewFetcher(backend Backend, linkFor func(symbol string) string) *Fetcher {
	return &Fetcher{backend: backend, linkFor: linkFor}
}

// FetchOne fetches one symbol's snapshot.
//
// The returned snapshot is always usable. The second return value is
// nil on success; otherwise it carries the classified fault that caused
// the degradation, so tests and callers can tell market-closed apart
// from a broken source without parsing log output. It is never a hard
// failure.
func (f *Fetcher) FetchOne(ctx context.Context, symbol string) (models.QuoteSnapshot, error) {
	snap, err := f.backend.Snapshot(ctx, symbol)
	if err != nil {
		logger.L().Warn().
			Str("backend", f.backend.Name()).
			Str("symbol", symbol).
			Str("fault", faults.KindOf(err).String()).
			Err(err).
			Msg("snapshot degraded to null record")
		snap = models.QuoteSnapshot{
			Symbol: symbol,
			Name:   fmt.Sprintf("Error/No Data for %s", symbol),
		}
	}

	snap.Symbol = symbol
	snap.DetailLink = f.linkFor(symbol)
	return snap, err
}
