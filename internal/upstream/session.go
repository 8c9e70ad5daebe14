// Package upstream holds the HTTP clients for the external data
// sources: the exchange site (warm-up + live quotes), the exchange
// archives (constituent CSVs), and the historical-info backend.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"github.com/guttosm/indexpulse/internal/domain/faults"
)

// browserHeaders are required by the exchange to avoid bot-blocking.
// Accept-Encoding is left to the transport so gzip is decompressed
// transparently.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept-Language": "en-US,en;q=0.9",
}

// warmInterval bounds how often the warm-up request is repeated; the
// exchange session cookies stay valid well beyond this.
const warmInterval = 5 * time.Minute

// Session is a shared HTTP client with a cookie jar and a warm-up step.
//
// The exchange rejects requests that arrive without session cookies, so
// every client first visits the landing page once per warmInterval. The
// jar is safe for concurrent use; the warm-up timestamp is guarded by a
// mutex, making the Session safe to share across fetch workers.
type Session struct {
	http    *http.Client
	baseURL string

	mu       sync.Mutex
	warmedAt time.Time
}

// NewSession builds a Session warming up against baseURL, with the given
// per-request timeout.
func NewSession(baseURL string, timeout time.Duration) *Session {
	jar, _ := cookiejar.New(nil)
	return &Session{
		http:    &http.Client{Timeout: timeout, Jar: jar},
		baseURL: baseURL,
	}
}

// WarmUp visits the landing page to acquire session cookies. Repeated
// calls within warmInterval are no-ops. The response body is discarded;
// only connectivity failure is propagated.
func (s *Session) WarmUp(ctx context.Context) error {
	s.mu.Lock()
	fresh := time.Since(s.warmedAt) < warmInterval
	s.mu.Unlock()
	if fresh {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return faults.New(faults.SourceUnavailable, err)
	}
	setBrowserHeaders(req)

	resp, err := s.http.Do(req)
	if err != nil {
		return faults.New(faults.SourceUnavailable, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	s.mu.Lock()
	s.warmedAt = time.Now()
	s.mu.Unlock()
	return nil
}

// Get issues a GET with browser-like headers and returns the response
// body. Non-2xx statuses and transport errors are classified as
// SourceUnavailable.
func (s *Session) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, faults.New(faults.SourceUnavailable, err)
	}
	setBrowserHeaders(req)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, faults.New(faults.SourceUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, faults.Newf(faults.SourceUnavailable, "GET %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, faults.New(faults.SourceUnavailable, fmt.Errorf("read body: %w", err))
	}
	return body, nil
}

func setBrowserHeaders(req *http.Request) {
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}
}
