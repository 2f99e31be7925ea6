package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be fatal: %v", err)
	}
	if cfg.Scan.Limit != 50 {
		t.Errorf("expected default limit 50, got %d", cfg.Scan.Limit)
	}
	if cfg.Scan.MinMarketCap != 50_000_000_000 {
		t.Errorf("expected default cap 50B, got %.0f", cfg.Scan.MinMarketCap)
	}
	if cfg.Scan.NotifyThreshold != 70 {
		t.Errorf("expected default threshold 70, got %.0f", cfg.Scan.NotifyThreshold)
	}
	if cfg.Schedule.ScanCron == "" || cfg.Notify.ConfigPath == "" || cfg.Server.Addr == "" {
		t.Error("expected defaults for cron, notify path and server addr")
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
provider:
  base_url: http://file.example
scan:
  limit: 25
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("KRX_BASE_URL", "http://env.example")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Provider.BaseURL != "http://env.example" {
		t.Errorf("env must override file, got %s", cfg.Provider.BaseURL)
	}
	if cfg.Scan.Limit != 25 {
		t.Errorf("expected limit 25 from file, got %d", cfg.Scan.Limit)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure without a provider base URL")
	}
	cfg.Provider.BaseURL = "http://example.com"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}
