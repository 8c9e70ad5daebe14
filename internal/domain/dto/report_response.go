package dto

import "github.com/guttosm/indexpulse/internal/domain/models"

// SnapshotItem is one constituent's entry in the index report.
//
// Numeric fields are pointers: null in the JSON output means the value
// was unavailable upstream. UpcomingEvents is always present (and
// currently always empty) to keep the payload shape stable for clients.
type SnapshotItem struct {
	Symbol         string   `json:"symbol" example:"RELIANCE"`
	Name           string   `json:"name" example:"Reliance Industries Limited"`
	LastPrice      *float64 `json:"lastPrice" example:"2890.55"`
	High52Week     *float64 `json:"high52Week" example:"3024.90"`
	Low52Week      *float64 `json:"low52Week" example:"2220.30"`
	LowNearnessPct *float64 `json:"lowNearnessPercentage" example:"83.29"`
	UpcomingEvents []string `json:"upcomingEvents"`
	DetailLink     string   `json:"detailLink" example:"https://www.nseindia.com/get-quotes/equity?symbol=RELIANCE"`
}

// ReportResponse is the JSON structure returned by
// GET /api/v1/index/{index}.
//
// Status is "warning" when the constituent list came from the hardcoded
// fallback rather than the exchange archives; a silently degraded data
// source is user-relevant.
type ReportResponse struct {
	Status             string         `json:"status" example:"success"`
	Index              string         `json:"index" example:"NIFTY50"`
	ConstituentsSource string         `json:"constituents_source" example:"remote"`
	TotalConstituents  int            `json:"total_constituents" example:"50"`
	TotalStocksFetched int            `json:"total_stocks_fetched" example:"48"`
	Data               []SnapshotItem `json:"data"`
}

// NewReportResponse maps the domain report onto the API contract.
func NewReportResponse(r *models.AggregateReport) ReportResponse {
	items := make([]SnapshotItem, 0, len(r.Items))
	for _, s := range r.Items {
		items = append(items, SnapshotItem{
			Symbol:         s.Symbol,
			Name:           s.Name,
			LastPrice:      s.LastPrice,
			High52Week:     s.High52Week,
			Low52Week:      s.Low52Week,
			LowNearnessPct: s.LowNearness,
			UpcomingEvents: []string{},
			DetailLink:     s.DetailLink,
		})
	}
	return ReportResponse{
		Status:             r.Status,
		Index:              string(r.Index),
		ConstituentsSource: string(r.Source),
		TotalConstituents:  r.TotalConstituents,
		TotalStocksFetched: r.TotalFetched,
		Data:               items,
	}
}
