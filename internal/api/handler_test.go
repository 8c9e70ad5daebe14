package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/indexpulse/internal/domain/dto"
	"github.com/guttosm/indexpulse/internal/domain/faults"
	"github.com/guttosm/indexpulse/internal/domain/models"
	"github.com/guttosm/indexpulse/internal/service"
)

// mockReportService implements service.ReportService for handler tests.
type mockReportService struct {
	report    *models.AggregateReport
	reportErr error
	quote     *models.Quote
	quoteErr  error
	hist      *models.HistoricalReport
	histErr   error
}

func (m *mockReportService) IndexReport(context.Context, models.IndexKind) (*models.AggregateReport, error) {
	return m.report, m.reportErr
}

func (m *mockReportService) StockQuote(context.Context, string) (*models.Quote, error) {
	return m.quote, m.quoteErr
}

func (m *mockReportService) Historical(context.Context, string) (*models.HistoricalReport, error) {
	return m.hist, m.histErr
}

func performRequest(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newTestRouter(svc service.ReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)
	r := gin.New()
	r.GET("/api/v1/index/:index", h.GetIndexReport)
	r.GET("/api/v1/stock/:symbol", h.GetStockQuote)
	r.GET("/api/v1/historical/:symbol", h.GetHistorical)
	return r
}

func TestGetIndexReport(t *testing.T) {
	price := 812.40
	okReport := &models.AggregateReport{
		Index:             models.IndexNifty50,
		Status:            models.StatusSuccess,
		Source:            models.SourceRemote,
		TotalConstituents: 50,
		TotalFetched:      1,
		Items:             []models.QuoteSnapshot{{Symbol: "SBIN", Name: "State Bank of India", LastPrice: &price}},
	}

	tests := []struct {
		name       string
		path       string
		svc        *mockReportService
		wantStatus int
	}{
		{
			name:       "success",
			path:       "/api/v1/index/NIFTY50",
			svc:        &mockReportService{report: okReport},
			wantStatus: http.StatusOK,
		},
		{
			name:       "lowercase index is accepted",
			path:       "/api/v1/index/nifty50",
			svc:        &mockReportService{report: okReport},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown index",
			path:       "/api/v1/index/DAX",
			svc:        &mockReportService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "service failure",
			path:       "/api/v1/index/SENSEX",
			svc:        &mockReportService{reportErr: faults.Newf(faults.Unknown, "boom")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(newTestRouter(tt.svc), http.MethodGet, tt.path)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp dto.ReportResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if resp.TotalConstituents != 50 || resp.TotalStocksFetched != 1 {
				t.Fatalf("counts = %d/%d", resp.TotalStocksFetched, resp.TotalConstituents)
			}
			if len(resp.Data) != 1 || resp.Data[0].Symbol != "SBIN" {
				t.Fatalf("data = %+v", resp.Data)
			}
		})
	}
}

func TestGetStockQuote(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		svc        *mockReportService
		wantStatus int
	}{
		{
			name: "success",
			path: "/api/v1/stock/sbin",
			svc: &mockReportService{quote: &models.Quote{
				Symbol: "SBIN", CompanyName: "State Bank of India", LastPrice: 812.4,
			}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown symbol",
			path:       "/api/v1/stock/NOTREAL",
			svc:        &mockReportService{quoteErr: service.ErrUnknownSymbol},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "market closed",
			path:       "/api/v1/stock/SBIN",
			svc:        &mockReportService{quoteErr: faults.Newf(faults.DataUnavailable, "market likely closed")},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "exchange unreachable",
			path:       "/api/v1/stock/SBIN",
			svc:        &mockReportService{quoteErr: faults.Newf(faults.SourceUnavailable, "timeout")},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "unexpected failure",
			path:       "/api/v1/stock/SBIN",
			svc:        &mockReportService{quoteErr: faults.Newf(faults.SchemaMismatch, "bad payload")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(newTestRouter(tt.svc), http.MethodGet, tt.path)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestGetHistorical(t *testing.T) {
	tests := []struct {
		name       string
		svc        *mockReportService
		wantStatus int
	}{
		{
			name:       "success",
			svc:        &mockReportService{hist: &models.HistoricalReport{Symbol: "INFY"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "no history",
			svc:        &mockReportService{histErr: faults.Newf(faults.DataUnavailable, "no historical data")},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "backend unreachable",
			svc:        &mockReportService{histErr: faults.Newf(faults.SourceUnavailable, "down")},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(newTestRouter(tt.svc), http.MethodGet, "/api/v1/historical/INFY")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}
