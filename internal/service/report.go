// Package service holds the business logic: index aggregation over a
// bounded worker pool, single-stock live quotes, and historical reports.
package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/indexpulse/internal/constituents"
	"github.com/guttosm/indexpulse/internal/domain/faults"
	"github.com/guttosm/indexpulse/internal/domain/models"
	"github.com/guttosm/indexpulse/internal/logger"
	"github.com/guttosm/indexpulse/internal/upstream"
)

// snapshotFetcher is the per-symbol fetch contract used by the index
// aggregation; the second return is a classified, never-fatal fault.
type snapshotFetcher interface {
	FetchOne(ctx context.Context, symbol string) (models.QuoteSnapshot, error)
}

// quoteProvider serves the full live quote for one symbol.
type quoteProvider interface {
	Quote(ctx context.Context, symbol string) (*models.Quote, error)
}

// historySource serves the info record and bar history used by the
// historical endpoint.
type historySource interface {
	Quote(ctx context.Context, symbol string) (*upstream.QuoteRecord, error)
	Chart(ctx context.Context, symbol, rng, interval string) (*upstream.ChartResult, error)
}

// ErrUnknownSymbol is returned by StockQuote for symbols outside the
// known constituent lists.
var ErrUnknownSymbol = fmt.Errorf("unknown symbol")

// ReportService defines the operations exposed through the API.
type ReportService interface {
	// IndexReport aggregates snapshots for every constituent of index.
	// It fails only for an unknown index; upstream degradation shows up
	// as a "warning" status and reduced counts, never as an error.
	IndexReport(ctx context.Context, index models.IndexKind) (*models.AggregateReport, error)

	// StockQuote returns the live quote for one symbol, or
	// ErrUnknownSymbol / a classified fault when unavailable.
	StockQuote(ctx context.Context, symbol string) (*models.Quote, error)

	// Historical returns 52-week metrics, EOD bars, and corporate
	// actions for one symbol.
	Historical(ctx context.Context, symbol string) (*models.HistoricalReport, error)
}

type reportService struct {
	resolver constituents.Resolver
	fetcher  snapshotFetcher
	quotes   quoteProvider
	history  historySource
	parallel int
	now      func() time.Time // test seam
}

// NewReportService wires the service.
//
// Parameters:
//   - resolver: constituent resolver (normally TTL-cached).
//   - fetcher: per-symbol snapshot fetcher (backend-agnostic).
//   - quotes: live quote provider for the single-stock endpoint.
//   - history: info/chart source for the historical endpoint.
//   - parallel: worker-pool size for the aggregation batch.
func NewReportService(resolver constituents.Resolver, fetcher snapshotFetcher, quotes quoteProvider, history historySource, parallel int) ReportService {
	if parallel < 1 {
		parallel = 1
	}
	return &reportService{
		resolver: resolver,
		fetcher:  fetcher,
		quotes:   quotes,
		history:  history,
		parallel: parallel,
		now:      time.Now,
	}
}

// IndexReport resolves the constituent list and fetches one snapshot
// per symbol under a bounded worker pool.
//
// Behavior:
//   - fetches run concurrently (at most `parallel` in flight), each
//     isolated: a failed symbol degrades to a null snapshot.
//   - results land in a position-indexed slice, so item order always
//     mirrors the constituent list order.
//   - snapshots without a last price are dropped silently; their
//     absence is visible only in the fetched/constituent count gap.
//   - status is "warning" whenever the fallback list was used.
func (s *reportService) IndexReport(ctx context.Context, index models.IndexKind) (*models.AggregateReport, error) {
	list, err := s.resolver.Resolve(ctx, index)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results := make([]models.QuoteSnapshot, len(list.Symbols))

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, s.parallel)

	for i, symbol := range list.Symbols {
		idx := i
		sym := symbol
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			// FetchOne never hard-fails; the fault is already logged.
			snap, _ := s.fetcher.FetchOne(gctx, sym)
			results[idx] = snap
			return nil
		})
	}

	// Workers only return nil; Wait is kept for ctx plumbing symmetry.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]models.QuoteSnapshot, 0, len(results))
	for _, snap := range results {
		if snap.LastPrice != nil {
			items = append(items, snap)
		}
	}

	status := models.StatusSuccess
	if list.Source == models.SourceFallback {
		status = models.StatusWarning
	}

	logger.L().Info().
		Str("index", string(index)).
		Str("source", string(list.Source)).
		Int("constituents", len(list.Symbols)).
		Int("fetched", len(items)).
		Dur("elapsed", time.Since(start)).
		Msg("index report built")

	return &models.AggregateReport{
		Index:             index,
		Status:            status,
		Source:            list.Source,
		TotalConstituents: len(list.Symbols),
		TotalFetched:      len(items),
		Items:             items,
	}, nil
}

// StockQuote validates the symbol against the known constituent lists
// and fetches its live quote.
//
// The external "is this a known ticker?" capability is out of scope;
// membership in a resolved constituent list stands in for it, so only
// index constituents are served here.
func (s *reportService) StockQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	known, err := s.isKnownSymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}
	return s.quotes.Quote(ctx, symbol)
}

// isKnownSymbol checks membership across every supported index's
// constituent list. The resolver never fails for supported indices, so
// an error here means a programming bug, not upstream degradation.
func (s *reportService) isKnownSymbol(ctx context.Context, symbol string) (bool, error) {
	for _, index := range []models.IndexKind{models.IndexNifty50, models.IndexSensex} {
		list, err := s.resolver.Resolve(ctx, index)
		if err != nil {
			return false, err
		}
		for _, sym := range list.Symbols {
			if sym == symbol {
				return true, nil
			}
		}
	}
	return false, nil
}

// historyRange is how far back the historical endpoint reaches; two
// years keeps the 52-week metrics robust at the range edges.
const historyRange = "2y"

// Historical fetches the info record and two years of daily bars plus
// corporate actions for one symbol.
func (s *reportService) Historical(ctx context.Context, symbol string) (*models.HistoricalReport, error) {
	rec, err := s.history.Quote(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("info record: %w", err)
	}

	chart, err := s.history.Chart(ctx, symbol, historyRange, "1d")
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	if len(chart.Bars) == 0 {
		return nil, faults.Newf(faults.DataUnavailable, "no historical data for %s", symbol)
	}

	bars := make([]models.EODBar, 0, len(chart.Bars))
	for _, b := range chart.Bars {
		bars = append(bars, models.EODBar{
			Date:   b.Date,
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}

	actions := make([]models.CorporateAction, 0, len(chart.Dividends)+len(chart.Splits))
	for _, d := range chart.Dividends {
		actions = append(actions, models.CorporateAction{
			Date:  d.Date,
			Type:  models.ActionDividend,
			Value: fmt.Sprintf("%.2f", d.Amount),
		})
	}
	for _, sp := range chart.Splits {
		actions = append(actions, models.CorporateAction{
			Date:  sp.Date,
			Type:  models.ActionSplit,
			Value: fmt.Sprintf("%.0f:%.0f", sp.Numerator, sp.Denominator),
		})
	}

	to := s.now().UTC()
	return &models.HistoricalReport{
		Symbol:     symbol,
		High52Week: rec.High52Week,
		Low52Week:  rec.Low52Week,
		From:       to.AddDate(-2, 0, 0),
		To:         to,
		Bars:       bars,
		Actions:    actions,
	}, nil
}
