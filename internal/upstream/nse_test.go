package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/indexpulse/internal/domain/faults"
)

const quoteEquityBody = `{
  "info": {"symbol": "SBIN", "companyName": "State Bank of India"},
  "priceInfo": {"lastPrice": 812.4, "change": 6.15, "pChange": 0.76},
  "securityWisePCR": {"high52Week": 912.0, "low52Week": 600.65},
  "securityInfo": {"issuedCap": 8924611534},
  "metadata": {"industry": "Public Sector Bank"}
}`

// newNSEFixture wires an NSEClient against a single httptest server
// acting as both the exchange host and the archives host.
func newNSEFixture(t *testing.T, handler http.HandlerFunc) *NSEClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	session := NewSession(srv.URL, 2*time.Second)
	return NewNSEClient(session, srv.URL, srv.URL)
}

func TestNSEClient_ConstituentCSV(t *testing.T) {
	csv := "Company Name,Industry,Symbol\nReliance Industries,Energy,RELIANCE\n"
	c := newNSEFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == nifty50ListPath {
			_, _ = w.Write([]byte(csv))
		}
	})

	body, err := c.ConstituentCSV(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != csv {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestNSEClient_QuoteEquity(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantKind faults.Kind
	}{
		{
			name: "html body when market closed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html><body>NSE</body></html>"))
			},
			wantKind: faults.DataUnavailable,
		},
		{
			name: "json without symbol field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"info": {}}`))
			},
			wantKind: faults.DataUnavailable,
		},
		{
			name: "blocked by the exchange",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if strings.HasPrefix(r.URL.Path, quoteEquityPath) {
					w.WriteHeader(http.StatusUnauthorized)
				}
			},
			wantKind: faults.SourceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newNSEFixture(t, tt.handler)
			_, err := c.QuoteEquity(context.Background(), "SBIN")
			if faults.KindOf(err) != tt.wantKind {
				t.Fatalf("kind = %v, want %v (err: %v)", faults.KindOf(err), tt.wantKind, err)
			}
		})
	}
}

func TestNSEClient_QuoteEquitySuccess(t *testing.T) {
	c := newNSEFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, quoteEquityPath) {
			if r.URL.Query().Get("symbol") != "SBIN" {
				t.Errorf("symbol query = %q", r.URL.Query().Get("symbol"))
			}
			_, _ = w.Write([]byte(quoteEquityBody))
		}
	})

	doc, err := c.QuoteEquity(context.Background(), "SBIN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Info.CompanyName != "State Bank of India" {
		t.Fatalf("company name = %q", doc.Info.CompanyName)
	}
	if doc.PriceInfo.LastPrice != 812.4 || doc.SecurityWisePCR.Low52Week != 600.65 {
		t.Fatalf("price fields not mapped: %+v", doc.PriceInfo)
	}
}

func TestNSEClient_DetailLink(t *testing.T) {
	c := NewNSEClient(nil, "https://www.nseindia.com", "")
	got := c.DetailLink("M&M")
	want := "https://www.nseindia.com/get-quotes/equity?symbol=M%26M"
	if got != want {
		t.Fatalf("link = %q, want %q", got, want)
	}
}
