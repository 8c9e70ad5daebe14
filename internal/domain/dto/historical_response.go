package dto

import "github.com/guttosm/indexpulse/internal/domain/models"

// EODBar is one end-of-day bar in the historical payload.
type EODBar struct {
	Date   string  `json:"date" example:"2025-08-27"`
	Open   float64 `json:"open" example:"801.00"`
	High   float64 `json:"high" example:"815.20"`
	Low    float64 `json:"low" example:"798.35"`
	Close  float64 `json:"close" example:"812.40"`
	Volume int64   `json:"volume" example:"10394822"`
}

// CorporateAction is a dividend or split entry in the historical payload.
type CorporateAction struct {
	Date  string `json:"date" example:"2025-05-16"`
	Type  string `json:"type" example:"Dividend"`
	Value string `json:"value" example:"13.70"`
}

// HistoricalMetrics carries the 52-week range for the symbol.
type HistoricalMetrics struct {
	High52Week *float64 `json:"high52Week" example:"912.00"`
	Low52Week  *float64 `json:"low52Week" example:"600.65"`
}

// HistoricalResponse is the JSON structure returned by
// GET /api/v1/historical/{symbol}.
type HistoricalResponse struct {
	Status           string            `json:"status" example:"success"`
	Symbol           string            `json:"symbol" example:"SBIN"`
	DateRange        string            `json:"date_range" example:"2023-08-28 to 2025-08-28"`
	Metrics          HistoricalMetrics `json:"metrics"`
	HistoricalData   []EODBar          `json:"historicalData"`
	CorporateActions []CorporateAction `json:"corporateActions"`
}

const dateLayout = "2006-01-02"

// NewHistoricalResponse maps the domain report onto the API contract.
func NewHistoricalResponse(r *models.HistoricalReport) HistoricalResponse {
	bars := make([]EODBar, 0, len(r.Bars))
	for _, b := range r.Bars {
		bars = append(bars, EODBar{
			Date:   b.Date.Format(dateLayout),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	actions := make([]CorporateAction, 0, len(r.Actions))
	for _, a := range r.Actions {
		actions = append(actions, CorporateAction{
			Date:  a.Date.Format(dateLayout),
			Type:  a.Type,
			Value: a.Value,
		})
	}
	return HistoricalResponse{
		Status:           "success",
		Symbol:           r.Symbol,
		DateRange:        r.From.Format(dateLayout) + " to " + r.To.Format(dateLayout),
		Metrics:          HistoricalMetrics{High52Week: r.High52Week, Low52Week: r.Low52Week},
		HistoricalData:   bars,
		CorporateActions: actions,
	}
}
