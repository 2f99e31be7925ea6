package provider

import (
	"time"

	"StockScout/internal/model"
)

// Provider supplies listing and daily price data for Korean equities.
// Implementations raise errors on network or ticker faults; the scoring
// engine treats any error as "no data" and skips the ticker.
type Provider interface {
	// ListCandidates returns the scan universe filtered to the
	// provider's minimum market cap, in provider order.
	ListCandidates() ([]model.Candidate, error)
	// DailyBars returns the daily bars for one ticker over [from, to],
	// in strictly increasing date order.
	DailyBars(code string, from, to time.Time) ([]model.Bar, error)
	Name() string
}
