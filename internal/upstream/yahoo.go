package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/guttosm/indexpulse/internal/domain/faults"
)

// nseSuffix is appended to raw symbols when querying the backend; it is
// an adapter-layer concern and never leaks into domain models.
const nseSuffix = ".NS"

// YahooClient talks to the historical-info backend (a Yahoo-Finance
// compatible API). It needs no cookies, so it uses plain clients: a
// fast one for quote lookups and a slower-bounded one for history.
type YahooClient struct {
	baseURL string
	quote   *http.Client
	history *http.Client
}

// NewYahooClient builds a YahooClient for the given base URL.
//
// Parameters:
//   - baseURL: backend host (e.g., "https://query1.finance.yahoo.com").
//   - timeout: bound for quote requests.
//   - historyTimeout: bound for chart/history requests.
func NewYahooClient(baseURL string, timeout, historyTimeout time.Duration) *YahooClient {
	return &YahooClient{
		baseURL: baseURL,
		quote:   &http.Client{Timeout: timeout},
		history: &http.Client{Timeout: historyTimeout},
	}
}

// QuoteRecord is the instrument info record: last close, 52-week range,
// and display name. Absent fields stay nil.
type QuoteRecord struct {
	Symbol        string
	LongName      string
	PreviousClose *float64
	High52Week    *float64
	Low52Week     *float64
}

type yahooQuoteDoc struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                     string   `json:"symbol"`
			LongName                   string   `json:"longName"`
			PreviousClose              *float64 `json:"previousClose"`
			RegularMarketPreviousClose *float64 `json:"regularMarketPreviousClose"`
			FiftyTwoWeekHigh           *float64 `json:"fiftyTwoWeekHigh"`
			FiftyTwoWeekLow            *float64 `json:"fiftyTwoWeekLow"`
		} `json:"result"`
		Error json.RawMessage `json:"error"`
	} `json:"quoteResponse"`
}

// Quote fetches the info record for a raw symbol (suffix added here).
//
// Failure classification:
//   - transport/status errors → SourceUnavailable.
//   - malformed JSON → SchemaMismatch.
//   - empty result list → DataUnavailable.
func (c *YahooClient) Quote(ctx context.Context, symbol string) (*QuoteRecord, error) {
	u := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", c.baseURL, url.QueryEscape(symbol+nseSuffix))
	body, err := c.get(ctx, c.quote, u)
	if err != nil {
		return nil, err
	}

	var doc yahooQuoteDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, faults.New(faults.SchemaMismatch, fmt.Errorf("quote %s: %w", symbol, err))
	}
	if len(doc.QuoteResponse.Result) == 0 {
		return nil, faults.Newf(faults.DataUnavailable, "quote %s: no result", symbol)
	}

	r := doc.QuoteResponse.Result[0]
	rec := &QuoteRecord{
		Symbol:     symbol,
		LongName:   r.LongName,
		High52Week: r.FiftyTwoWeekHigh,
		Low52Week:  r.FiftyTwoWeekLow,
	}
	// previousClose is preferred; regularMarketPreviousClose is the
	// fallback field name on some instrument classes.
	if r.PreviousClose != nil {
		rec.PreviousClose = r.PreviousClose
	} else {
		rec.PreviousClose = r.RegularMarketPreviousClose
	}
	return rec, nil
}

// ChartBar is one bar of chart history.
type ChartBar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// ChartDividend is one dividend event from the chart document.
type ChartDividend struct {
	Date   time.Time
	Amount float64
}

// ChartSplit is one split event from the chart document.
type ChartSplit struct {
	Date        time.Time
	Numerator   float64
	Denominator float64
}

// ChartResult bundles the parsed bars and corporate-action events.
type ChartResult struct {
	Bars      []ChartBar
	Dividends []ChartDividend
	Splits    []ChartSplit
}

type yahooChartDoc struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
			Events struct {
				Dividends map[string]struct {
					Amount float64 `json:"amount"`
					Date   int64   `json:"date"`
				} `json:"dividends"`
				Splits map[string]struct {
					Numerator   float64 `json:"numerator"`
					Denominator float64 `json:"denominator"`
					Date        int64   `json:"date"`
				} `json:"splits"`
			} `json:"events"`
		} `json:"result"`
		Error json.RawMessage `json:"error"`
	} `json:"chart"`
}

// Chart fetches bar history for a raw symbol over the given range
// (e.g., "1d", "2y") at the given interval (e.g., "1d"). Dividend and
// split events are requested alongside the bars.
//
// Failure classification follows Quote; an empty result or an empty
// timestamp array is DataUnavailable (no history for the period).
func (c *YahooClient) Chart(ctx context.Context, symbol, rng, interval string) (*ChartResult, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=%s&events=div%%7Csplit",
		c.baseURL, url.PathEscape(symbol+nseSuffix), url.QueryEscape(rng), url.QueryEscape(interval))
	body, err := c.get(ctx, c.history, u)
	if err != nil {
		return nil, err
	}

	var doc yahooChartDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, faults.New(faults.SchemaMismatch, fmt.Errorf("chart %s: %w", symbol, err))
	}
	if len(doc.Chart.Result) == 0 {
		return nil, faults.Newf(faults.DataUnavailable, "chart %s: no result", symbol)
	}

	r := doc.Chart.Result[0]
	if len(r.Timestamp) == 0 || len(r.Indicators.Quote) == 0 {
		return nil, faults.Newf(faults.DataUnavailable, "chart %s: no history for period", symbol)
	}

	q := r.Indicators.Quote[0]
	out := &ChartResult{}
	for i, ts := range r.Timestamp {
		// Bars with missing values (holidays, halts) are skipped.
		if i >= len(q.Close) || q.Close[i] == nil {
			continue
		}
		bar := ChartBar{Date: time.Unix(ts, 0).UTC(), Close: *q.Close[i]}
		if i < len(q.Open) && q.Open[i] != nil {
			bar.Open = *q.Open[i]
		}
		if i < len(q.High) && q.High[i] != nil {
			bar.High = *q.High[i]
		}
		if i < len(q.Low) && q.Low[i] != nil {
			bar.Low = *q.Low[i]
		}
		if i < len(q.Volume) && q.Volume[i] != nil {
			bar.Volume = *q.Volume[i]
		}
		out.Bars = append(out.Bars, bar)
	}

	for _, d := range r.Events.Dividends {
		out.Dividends = append(out.Dividends, ChartDividend{Date: time.Unix(d.Date, 0).UTC(), Amount: d.Amount})
	}
	for _, s := range r.Events.Splits {
		out.Splits = append(out.Splits, ChartSplit{Date: time.Unix(s.Date, 0).UTC(), Numerator: s.Numerator, Denominator: s.Denominator})
	}

	// Event maps are keyed by timestamp strings; order them by date.
	sort.Slice(out.Dividends, func(i, j int) bool { return out.Dividends[i].Date.Before(out.Dividends[j].Date) })
	sort.Slice(out.Splits, func(i, j int) bool { return out.Splits[i].Date.Before(out.Splits[j].Date) })

	return out, nil
}

// get issues a GET and returns the body, classifying transport and
// status failures as SourceUnavailable.
func (c *YahooClient) get(ctx context.Context, client *http.Client, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, faults.New(faults.SourceUnavailable, err)
	}
	req.Header.Set("User-Agent", browserHeaders["User-Agent"])

	resp, err := client.Do(req)
	if err != nil {
		return nil, faults.New(faults.SourceUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, faults.Newf(faults.SourceUnavailable, "GET %s: unexpected status %d", u, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, faults.New(faults.SourceUnavailable, err)
	}
	return body, nil
}
