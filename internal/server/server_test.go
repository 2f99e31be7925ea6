package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"StockScout/internal/engine"
	"StockScout/internal/model"
	"StockScout/internal/provider"
	"StockScout/internal/scanner"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	bars := make([]model.Bar, 70)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		bars[i] = model.Bar{
			Date: end.AddDate(0, 0, -(len(bars) - 1 - i)),
			Open: 10000, High: 10000, Low: 10000, Close: 10000, Volume: 1e6,
		}
	}
	p := &provider.MockProvider{
		Candidates: []model.Candidate{{Code: "000001", Name: "Alpha", MarketCap: 9e10}},
		Bars:       map[string][]model.Bar{"000001": bars},
	}
	sc := scanner.New(p, engine.New(p))
	return New(sc, 50, filepath.Join(t.TempDir(), "config.json"))
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestScanEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"limit": 10}`)
	srv.Router().ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/scan", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Count   int                `json:"count"`
		Results []model.ScanResult `json:"results"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 || len(resp.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", resp.Count)
	}
	if resp.Results[0].Code != "000001" || resp.Results[0].Score <= 0 {
		t.Errorf("unexpected result: %+v", resp.Results[0])
	}
}

func TestScanEndpoint_EmptyBody(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/scan", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("empty body should fall back to the default limit, got %d", rec.Code)
	}
}

func TestNotifyConfigRoundtrip(t *testing.T) {
	srv := newTestServer(t)

	payload := `{"sender":{"email":"me@example.com","app_password":"pw"},"emails":["a@example.com"],"telegram":{"bot_token":"t","chat_ids":["1"]}}`
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest("PUT", "/api/v1/config/notify", bytes.NewBufferString(payload)))
	if rec.Code != http.StatusOK {
		t.Fatalf("put: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/config/notify", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}
	var cfg model.NotifyConfig
	if err := json.NewDecoder(rec.Body).Decode(&cfg); err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if cfg.Sender.Email != "me@example.com" || len(cfg.Emails) != 1 {
		t.Errorf("config did not round-trip: %+v", cfg)
	}
}

func TestNotifyConfig_BadBody(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest("PUT", "/api/v1/config/notify", bytes.NewBufferString("{oops")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
