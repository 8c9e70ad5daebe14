package models

import "time"

// EODBar is one end-of-day price bar.
type EODBar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// CorporateAction is a dividend payment or a stock split.
//
// Value holds the dividend amount for dividends, or the split ratio
// formatted as "N:1" for splits.
type CorporateAction struct {
	Date  time.Time
	Type  string
	Value string
}

// Corporate action types.
const (
	ActionDividend = "Dividend"
	ActionSplit    = "Split"
)

// HistoricalReport bundles 52-week metrics, EOD history, and corporate
// actions for one symbol over a date range.
type HistoricalReport struct {
	Symbol     string
	High52Week *float64
	Low52Week  *float64
	From       time.Time
	To         time.Time
	Bars       []EODBar
	Actions    []CorporateAction
}
