package calculator

import (
	"math"
	"testing"
	"time"

	"StockScout/internal/model"
)

func TestRollingSMA(t *testing.T) {
	prices := []float64{2, 4, 6, 8, 10}
	out := RollingSMA(prices, 3)

	if len(out) != len(prices) {
		t.Fatalf("expected %d entries, got %d", len(prices), len(out))
	}
	if !math.IsNaN(out[0]) || !math.IsNaN(out[1]) {
		t.Error("warmup entries must be NaN")
	}
	want := []float64{4, 6, 8}
	for i, w := range want {
		if out[i+2] != w {
			t.Errorf("index %d: expected %.1f, got %.4f", i+2, w, out[i+2])
		}
	}
}

func TestBuildSeries(t *testing.T) {
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, 65)
	for i := range bars {
		p := 1000 + float64(i)
		bars[i] = model.Bar{
			Date: end.AddDate(0, 0, -(len(bars) - 1 - i)),
			Open: p, High: p, Low: p, Close: p, Volume: 100,
		}
	}
	s := BuildSeries("005930", bars)

	if s.Symbol != "005930" || s.Len() != 65 {
		t.Fatalf("unexpected series shape: %s, %d bars", s.Symbol, s.Len())
	}
	n := s.Len()
	// MA5 of the last 5 closes 1060..1064
	if s.MA5[n-1] != 1062 {
		t.Errorf("expected MA5 1062, got %.4f", s.MA5[n-1])
	}
	if math.IsNaN(s.MA60[n-1]) {
		t.Error("MA60 should be warmed up with 65 bars")
	}
	if !math.IsNaN(s.MA60[58]) {
		t.Error("MA60 must be NaN before 60 sessions")
	}
}
