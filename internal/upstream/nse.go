package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/guttosm/indexpulse/internal/domain/faults"
)

// nifty50ListPath is the archives path of the NIFTY 50 constituent CSV.
const nifty50ListPath = "/content/indices/ind_nifty50list.csv"

// quoteEquityPath is the exchange's live quote endpoint.
const quoteEquityPath = "/api/quote-equity"

// NSEClient talks to the exchange site and its archives host.
//
// Both hosts require session cookies acquired by a warm-up visit to the
// landing page, so all calls go through the shared Session.
type NSEClient struct {
	session     *Session
	archivesURL string
	baseURL     string
}

// NewNSEClient builds an NSEClient over the given session.
//
// Parameters:
//   - session: warmed cookie-jar HTTP client.
//   - baseURL: exchange landing host (e.g., "https://www.nseindia.com").
//   - archivesURL: archives host serving constituent CSVs.
func NewNSEClient(session *Session, baseURL, archivesURL string) *NSEClient {
	return &NSEClient{session: session, baseURL: baseURL, archivesURL: archivesURL}
}

// ConstituentCSV downloads the raw NIFTY 50 constituent CSV document.
//
// A warm-up visit is made first; its failure is propagated, since the
// archives host rejects cookie-less requests anyway.
func (c *NSEClient) ConstituentCSV(ctx context.Context) ([]byte, error) {
	if err := c.session.WarmUp(ctx); err != nil {
		return nil, fmt.Errorf("warm-up: %w", err)
	}
	body, err := c.session.Get(ctx, c.archivesURL+nifty50ListPath)
	if err != nil {
		return nil, fmt.Errorf("constituent list: %w", err)
	}
	return body, nil
}

// QuoteEquityDoc mirrors the nested shape of the quote-equity JSON.
// Only the field paths the service reads are declared.
type QuoteEquityDoc struct {
	Info struct {
		Symbol      string `json:"symbol"`
		CompanyName string `json:"companyName"`
	} `json:"info"`
	PriceInfo struct {
		LastPrice float64 `json:"lastPrice"`
		Change    float64 `json:"change"`
		PChange   float64 `json:"pChange"`
	} `json:"priceInfo"`
	SecurityWisePCR struct {
		High52Week float64 `json:"high52Week"`
		Low52Week  float64 `json:"low52Week"`
	} `json:"securityWisePCR"`
	SecurityInfo struct {
		IssuedCap float64 `json:"issuedCap"`
	} `json:"securityInfo"`
	Metadata struct {
		Industry string `json:"industry"`
	} `json:"metadata"`
}

// QuoteEquity fetches the live quote document for a symbol.
//
// Failure classification:
//   - non-JSON body → DataUnavailable (the exchange serves an HTML page
//     when the market is closed; that is a valid "no data" response).
//   - missing info.symbol → DataUnavailable.
//   - transport/status errors → SourceUnavailable (via Session.Get).
func (c *NSEClient) QuoteEquity(ctx context.Context, symbol string) (*QuoteEquityDoc, error) {
	if err := c.session.WarmUp(ctx); err != nil {
		return nil, fmt.Errorf("warm-up: %w", err)
	}

	u := c.baseURL + quoteEquityPath + "?symbol=" + url.QueryEscape(symbol)
	body, err := c.session.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("quote %s: %w", symbol, err)
	}

	var doc QuoteEquityDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, faults.Newf(faults.DataUnavailable, "quote %s: non-JSON body (market likely closed)", symbol)
	}
	if doc.Info.Symbol == "" {
		return nil, faults.Newf(faults.DataUnavailable, "quote %s: empty symbol field", symbol)
	}
	return &doc, nil
}

// DetailLink builds the public quote-page URL for a symbol. It is a
// fixed template and needs no network access.
func (c *NSEClient) DetailLink(symbol string) string {
	return c.baseURL + "/get-quotes/equity?symbol=" + url.QueryEscape(symbol)
}
