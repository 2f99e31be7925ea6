package scanner

import (
	"errors"
	"testing"
	"time"

	"StockScout/internal/engine"
	"StockScout/internal/model"
	"StockScout/internal/provider"
)

// flatBars builds n identical sessions at the given close.
func flatBars(n int, price float64) []model.Bar {
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, n)
	for i := 0; i < n; i++ {
		bars[i] = model.Bar{
			Date:   end.AddDate(0, 0, -(n - 1 - i)),
			Open:   price,
			High:   price,
			Low:    price,
			Close:  price,
			Volume: 100,
		}
	}
	return bars
}

type progressCall struct {
	done, total int
	label       string
}

type recordingListener struct {
	calls []progressCall
}

func (l *recordingListener) OnProgress(done, total int, label string) {
	l.calls = append(l.calls, progressCall{done, total, label})
}

func newTestScanner(p *provider.MockProvider) *Scanner {
	return New(p, engine.New(p))
}

func TestScan_LimitAndProgress(t *testing.T) {
	p := &provider.MockProvider{
		Candidates: []model.Candidate{
			{Code: "000001", Name: "Alpha", MarketCap: 9e10},
			{Code: "000002", Name: "Beta", MarketCap: 8e10},
			{Code: "000003", Name: "Gamma", MarketCap: 7e10},
		},
		Bars: map[string][]model.Bar{
			"000001": flatBars(70, 10000),
			"000002": flatBars(70, 10000),
			"000003": flatBars(70, 10000),
		},
	}
	listener := &recordingListener{}
	results := newTestScanner(p).Scan(2, listener)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	want := []progressCall{
		{1, 2, "Alpha"},
		{2, 2, "Beta"},
	}
	if len(listener.calls) != len(want) {
		t.Fatalf("expected %d progress calls, got %d", len(want), len(listener.calls))
	}
	for i, c := range listener.calls {
		if c != want[i] {
			t.Errorf("call %d: got %+v, want %+v", i, c, want[i])
		}
	}
}

func TestScan_SortedDescending(t *testing.T) {
	// With negligible volume, a flat 60000 series loses price-band
	// credit versus a flat 10000 one, so Beta must outrank Alpha
	// regardless of universe order.
	p := &provider.MockProvider{
		Candidates: []model.Candidate{
			{Code: "000001", Name: "Alpha", MarketCap: 9e10},
			{Code: "000002", Name: "Beta", MarketCap: 8e10},
		},
		Bars: map[string][]model.Bar{
			"000001": flatBars(70, 60000),
			"000002": flatBars(70, 10000),
		},
	}
	results := newTestScanner(p).Scan(0, nil)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Code != "000002" {
		t.Errorf("expected Beta first, got %s", results[0].Code)
	}
	if results[0].Score < results[1].Score {
		t.Errorf("results not sorted descending: %.1f then %.1f", results[0].Score, results[1].Score)
	}
}

func TestScan_SkipsZeroScores(t *testing.T) {
	// Gamma has too little history and evaluates to zero; it is dropped
	// from the output but still counted in progress.
	p := &provider.MockProvider{
		Candidates: []model.Candidate{
			{Code: "000001", Name: "Alpha", MarketCap: 9e10},
			{Code: "000003", Name: "Gamma", MarketCap: 7e10},
		},
		Bars: map[string][]model.Bar{
			"000001": flatBars(70, 10000),
			"000003": flatBars(10, 10000),
		},
	}
	listener := &recordingListener{}
	results := newTestScanner(p).Scan(10, listener)

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Code != "000001" {
		t.Errorf("expected Alpha, got %s", results[0].Code)
	}
	if len(listener.calls) != 2 {
		t.Errorf("expected 2 progress calls, got %d", len(listener.calls))
	}
}

func TestScan_UniverseFailure(t *testing.T) {
	p := &provider.MockProvider{ListErr: errors.New("service unavailable")}
	results := newTestScanner(p).Scan(10, nil)

	if len(results) != 0 {
		t.Errorf("expected empty result set, got %d", len(results))
	}
}

func TestScan_CarriesCandidateFields(t *testing.T) {
	p := &provider.MockProvider{
		Candidates: []model.Candidate{
			{Code: "000001", Name: "Alpha", MarketCap: 9e10},
		},
		Bars: map[string][]model.Bar{
			"000001": flatBars(70, 10000),
		},
	}
	results := newTestScanner(p).Scan(1, nil)

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Name != "Alpha" || r.MarketCap != 9e10 {
		t.Errorf("candidate fields not carried: %+v", r)
	}
	if r.Daily == nil || len(r.Weekly) == 0 || len(r.Monthly) == 0 {
		t.Error("expected chart frames on the result")
	}
	if r.Passed == "" || len(r.Conditions) != 7 {
		t.Error("expected full condition breakdown on the result")
	}
}
