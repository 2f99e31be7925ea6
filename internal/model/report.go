package model

import "time"

// ConditionStatus classifies the outcome of one condition evaluation.
type ConditionStatus string

const (
	StatusPass  ConditionStatus = "Pass"
	StatusFail  ConditionStatus = "Fail"
	StatusError ConditionStatus = "Error"
)

// ConditionKeys lists the seven condition keys in display order.
var ConditionKeys = []string{"A", "B", "C", "D", "E", "F", "G"}

// ConditionResult is the scored outcome of a single condition.
// Score is a real number in [0, weight]; Pass means Score > 0.
type ConditionResult struct {
	Status ConditionStatus `json:"status"`
	Score  float64         `json:"score"`
	Detail string          `json:"detail,omitempty"`
}

// Marker annotates the bar where a condition's defining event occurred.
// Used only for chart overlay, never persisted.
type Marker struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
	Label string    `json:"label"`
}

// Report is the full scoring output for one ticker as of one date.
// A zero report (Score 0, empty Conditions, nil frames) signals that the
// ticker had no usable history and should be skipped, not treated as an error.
type Report struct {
	Symbol     string                     `json:"symbol"`
	Score      float64                    `json:"score"`
	Conditions map[string]ConditionResult `json:"conditions"`
	Passed     string                     `json:"passed"`
	Price      float64                    `json:"price"`
	ChangePct  float64                    `json:"change_pct"`
	Daily      *PriceSeries               `json:"-"`
	Weekly     []Bar                      `json:"-"`
	Monthly    []Bar                      `json:"-"`
	Markers    []Marker                   `json:"markers,omitempty"`
}

// Zero reports true when the report carries no usable evaluation.
func (r *Report) Zero() bool { return len(r.Conditions) == 0 }

// ScanResult is one qualifying row of a market scan.
type ScanResult struct {
	Code       string                     `json:"code"`
	Name       string                     `json:"name"`
	Price      float64                    `json:"price"`
	ChangePct  float64                    `json:"change_pct"`
	MarketCap  float64                    `json:"market_cap"`
	Score      float64                    `json:"score"`
	Passed     string                     `json:"passed"`
	Conditions map[string]ConditionResult `json:"conditions"`
	Daily      *PriceSeries               `json:"-"`
	Weekly     []Bar                      `json:"-"`
	Monthly    []Bar                      `json:"-"`
	Markers    []Marker                   `json:"markers,omitempty"`
}
