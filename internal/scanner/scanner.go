package scanner

import (
	"log"
	"sort"
	"time"

	"StockScout/internal/engine"
	"StockScout/internal/model"
	"StockScout/internal/provider"
)

// ProgressListener receives in-band progress updates during a scan,
// called synchronously after each ticker's evaluation completes.
type ProgressListener interface {
	OnProgress(done, total int, label string)
}

// ProgressFunc adapts a plain function to a ProgressListener.
type ProgressFunc func(done, total int, label string)

func (f ProgressFunc) OnProgress(done, total int, label string) { f(done, total, label) }

// Scanner runs the scoring engine over the candidate universe.
type Scanner struct {
	Provider provider.Provider
	Engine   *engine.Engine
}

// New creates a Scanner sharing the engine's data provider.
func New(p provider.Provider, e *engine.Engine) *Scanner {
	return &Scanner{Provider: p, Engine: e}
}

// Scan evaluates the first limit candidates of the universe, in
// provider order, and returns the qualifying results sorted by
// descending score. Tickers scoring zero are dropped; that covers both
// a genuine zero fit and a failed data fetch, which this scan does not
// distinguish. A failed universe fetch yields an empty result set.
func (s *Scanner) Scan(limit int, listener ProgressListener) []model.ScanResult {
	candidates, err := s.Provider.ListCandidates()
	if err != nil {
		log.Printf("[ERROR] list candidates: %v", err)
		return nil
	}
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	asOf := time.Now()
	results := make([]model.ScanResult, 0, len(candidates))
	for i, cand := range candidates {
		report := s.Engine.Evaluate(cand.Code, asOf)
		if report.Score > 0 {
			results = append(results, model.ScanResult{
				Code:       cand.Code,
				Name:       cand.Name,
				Price:      report.Price,
				ChangePct:  report.ChangePct,
				MarketCap:  cand.MarketCap,
				Score:      report.Score,
				Passed:     report.Passed,
				Conditions: report.Conditions,
				Daily:      report.Daily,
				Weekly:     report.Weekly,
				Monthly:    report.Monthly,
				Markers:    report.Markers,
			})
		}
		if listener != nil {
			listener.OnProgress(i+1, len(candidates), cand.Name)
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return results
}
