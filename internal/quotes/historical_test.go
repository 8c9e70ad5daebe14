package quotes

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/indexpulse/internal/domain/faults"
	"github.com/guttosm/indexpulse/internal/upstream"
)

type stubInfoSource struct {
	rec      *upstream.QuoteRecord
	recErr   error
	chart    *upstream.ChartResult
	chartErr error

	chartCalls int
}

func (s *stubInfoSource) Quote(context.Context, string) (*upstream.QuoteRecord, error) {
	return s.rec, s.recErr
}

func (s *stubInfoSource) Chart(context.Context, string, string, string) (*upstream.ChartResult, error) {
	s.chartCalls++
	return s.chart, s.chartErr
}

func TestHistoricalSnapshot_FromInfoRecord(t *testing.T) {
	src := &stubInfoSource{rec: &upstream.QuoteRecord{
		Symbol:        "INFY",
		LongName:      "Infosys Limited",
		PreviousClose: fp(1506.789),
		High52Week:    fp(1980.0),
		Low52Week:     fp(1307.0),
	}}
	b := NewHistoricalBackend(src)

	snap, err := b.Snapshot(context.Background(), "INFY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Name != "Infosys Limited" {
		t.Fatalf("name = %q", snap.Name)
	}
	if snap.LastPrice == nil || *snap.LastPrice != 1506.79 {
		t.Fatalf("last price not rounded: %+v", snap.LastPrice)
	}
	if snap.LowNearness == nil {
		t.Fatalf("nearness must be set when the full range is present")
	}
	if src.chartCalls != 0 {
		t.Fatalf("chart fallback must not fire when previous close is present")
	}
}

func TestHistoricalSnapshot_ChartFallbackForPrice(t *testing.T) {
	src := &stubInfoSource{
		rec: &upstream.QuoteRecord{Symbol: "INFY", High52Week: fp(1980.0), Low52Week: fp(1307.0)},
		chart: &upstream.ChartResult{Bars: []upstream.ChartBar{
			{Date: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), Close: 1490.455},
		}},
	}
	b := NewHistoricalBackend(src)

	snap, err := b.Snapshot(context.Background(), "INFY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.chartCalls != 1 {
		t.Fatalf("chart fallback did not fire")
	}
	if snap.LastPrice == nil || *snap.LastPrice != 1490.46 {
		t.Fatalf("last price = %+v, want last chart close rounded", snap.LastPrice)
	}
}

func TestHistoricalSnapshot_NoPriceAnywhere(t *testing.T) {
	src := &stubInfoSource{
		rec:      &upstream.QuoteRecord{Symbol: "INFY", High52Week: fp(1980.0), Low52Week: fp(1307.0)},
		chartErr: faults.Newf(faults.DataUnavailable, "no history"),
	}
	b := NewHistoricalBackend(src)

	snap, err := b.Snapshot(context.Background(), "INFY")
	if err != nil {
		t.Fatalf("chart failure must not fail the snapshot: %v", err)
	}
	if snap.LastPrice != nil || snap.High52Week != nil || snap.Low52Week != nil || snap.LowNearness != nil {
		t.Fatalf("derived fields must stay nil without a price: %+v", snap)
	}
	if snap.Name != "INFY" {
		t.Fatalf("name must fall back to the symbol, got %q", snap.Name)
	}
}

func TestHistoricalSnapshot_InfoRecordError(t *testing.T) {
	src := &stubInfoSource{recErr: faults.Newf(faults.SourceUnavailable, "backend down")}
	b := NewHistoricalBackend(src)

	_, err := b.Snapshot(context.Background(), "INFY")
	if !faults.Is(err, faults.SourceUnavailable) {
		t.Fatalf("want SourceUnavailable, got %v", err)
	}
}
