package provider

import (
	"time"

	"StockScout/internal/model"
)

// MockProvider returns controllable fixed data for development and testing.
type MockProvider struct {
	Candidates []model.Candidate
	Bars       map[string][]model.Bar
	ListErr    error
	BarsErr    error
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) ListCandidates() ([]model.Candidate, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Candidates, nil
}

func (m *MockProvider) DailyBars(code string, from, to time.Time) ([]model.Bar, error) {
	if m.BarsErr != nil {
		return nil, m.BarsErr
	}
	return m.Bars[code], nil
}
