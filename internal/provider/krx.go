package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockScout/internal/model"
)

// KRXClient implements Provider against a KRX market data REST service.
type KRXClient struct {
	BaseURL      string
	APIKey       string
	MinMarketCap float64
	Client       *http.Client
}

// NewKRXClient creates a client with optional proxy support.
func NewKRXClient(baseURL, apiKey string, minMarketCap float64, proxyURL string) *KRXClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &KRXClient{
		BaseURL:      baseURL,
		APIKey:       apiKey,
		MinMarketCap: minMarketCap,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (c *KRXClient) Name() string { return "krx" }

// krxListing is the expected JSON shape of one listing row.
type krxListing struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Market    string  `json:"market"`
	MarketCap float64 `json:"market_cap"`
}

// krxBar is the expected JSON shape of one daily bar.
type krxBar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// ListCandidates fetches the KOSPI/KOSDAQ listing and filters it to the
// configured minimum market cap, preserving the service's order.
func (c *KRXClient) ListCandidates() ([]model.Candidate, error) {
	endpoint := fmt.Sprintf("%s/api/v1/listing?markets=KOSPI,KOSDAQ", c.BaseURL)
	body, err := c.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}
	var rows []krxListing
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}
	candidates := make([]model.Candidate, 0, len(rows))
	for _, r := range rows {
		if r.MarketCap < c.MinMarketCap {
			continue
		}
		candidates = append(candidates, model.Candidate{
			Code:      r.Code,
			Name:      r.Name,
			MarketCap: r.MarketCap,
		})
	}
	return candidates, nil
}

// DailyBars fetches daily OHLCV bars for the ticker over [from, to].
func (c *KRXClient) DailyBars(code string, from, to time.Time) ([]model.Bar, error) {
	endpoint := fmt.Sprintf("%s/api/v1/ohlcv/daily?code=%s&from=%s&to=%s",
		c.BaseURL, url.QueryEscape(code), from.Format("2006-01-02"), to.Format("2006-01-02"))
	body, err := c.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch bars %s: %w", code, err)
	}
	var rows []krxBar
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode bars %s: %w", code, err)
	}
	bars := make([]model.Bar, 0, len(rows))
	for _, r := range rows {
		d, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return nil, fmt.Errorf("parse bar date %q: %w", r.Date, err)
		}
		bars = append(bars, model.Bar{
			Date:   d,
			Open:   r.Open,
			High:   r.High,
			Low:    r.Low,
			Close:  r.Close,
			Volume: r.Volume,
		})
	}
	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

func (c *KRXClient) get(endpoint string) ([]byte, error) {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
