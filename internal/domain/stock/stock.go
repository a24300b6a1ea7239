// Package stock defines the Magic Formula dataset vocabulary shared by the
// store, screener, exporter, and chart services.
package stock

// Record is one pre-ranked row of the Magic Formula dataset. Rows arrive
// already sorted by combined rank; nothing downstream re-sorts them. Symbol
// is the row identity within a loaded dataset.
type Record struct {
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	Sector          string  `json:"sector"`
	MarketCap       float64 `json:"market_cap"`
	EarningsYield   float64 `json:"earnings_yield"`
	ReturnOnCapital float64 `json:"return_on_capital"`
	EYRank          float64 `json:"ey_rank"`
	ROCRank         float64 `json:"roc_rank"`
	CombinedRank    float64 `json:"combined_rank"`
}

// ChartPoint is a single daily close in a historical price series, in
// chronological order. Date is a short display label ("Jan 2"), not an ISO
// date; the series is ephemeral and owned by the current chart view.
type ChartPoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}
