package model

import "time"

// Bar represents a single trading session's candlestick.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the chronological price history of one ticker
// together with its moving-average series. The MA slices are aligned
// index-for-index with Bars; entries inside the warmup window are NaN.
type PriceSeries struct {
	Symbol string
	Bars   []Bar
	MA5    []float64
	MA20   []float64
	MA60   []float64
}

// Len returns the number of bars in the series.
func (s *PriceSeries) Len() int { return len(s.Bars) }

// Last returns the most recent bar. The series must be non-empty.
func (s *PriceSeries) Last() Bar { return s.Bars[len(s.Bars)-1] }

// Candidate is one entry of the market-cap filtered scan universe.
type Candidate struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	MarketCap float64 `json:"market_cap"`
}
