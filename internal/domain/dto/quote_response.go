package dto

import "github.com/guttosm/indexpulse/internal/domain/models"

// QuoteData is the live-quote payload for a single symbol.
type QuoteData struct {
	Symbol        string  `json:"symbol" example:"SBIN"`
	CompanyName   string  `json:"companyName" example:"State Bank of India"`
	LastPrice     float64 `json:"lastPrice" example:"812.40"`
	Change        float64 `json:"change" example:"6.15"`
	PChange       float64 `json:"pChange" example:"0.76"`
	High52Week    float64 `json:"high52Week" example:"912.00"`
	Low52Week     float64 `json:"low52Week" example:"600.65"`
	MarketCapital float64 `json:"marketCapital" example:"725143000000"`
	Industry      string  `json:"industry" example:"Public Sector Bank"`
}

// QuoteResponse is the JSON structure returned by GET /api/v1/stock/{symbol}.
type QuoteResponse struct {
	Status string    `json:"status" example:"success"`
	Data   QuoteData `json:"data"`
}

// NewQuoteResponse maps the domain quote onto the API contract.
func NewQuoteResponse(q *models.Quote) QuoteResponse {
	return QuoteResponse{
		Status: "success",
		Data: QuoteData{
			Symbol:        q.Symbol,
			CompanyName:   q.CompanyName,
			LastPrice:     q.LastPrice,
			Change:        q.Change,
			PChange:       q.PChange,
			High52Week:    q.High52Week,
			Low52Week:     q.Low52Week,
			MarketCapital: q.MarketCapital,
			Industry:      q.Industry,
		},
	}
}
