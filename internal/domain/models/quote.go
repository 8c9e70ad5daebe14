package models

// Quote is a live exchange quote for a single symbol, as served by the
// quote-equity endpoint. Unlike QuoteSnapshot it is only produced when
// the backend returned a complete record, so its fields are plain values.
//
// MarketCapital is an approximation: issued capital multiplied by the
// last traded price.
type Quote struct {
	Symbol        string
	CompanyName   string
	LastPrice     float64
	Change        float64
	PChange       float64
	High52Week    float64
	Low52Week     float64
	MarketCapital float64
	Industry      string
}
