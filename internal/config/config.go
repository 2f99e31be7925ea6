package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Provider struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"provider"`
	Scan struct {
		Limit           int     `yaml:"limit"`
		MinMarketCap    float64 `yaml:"min_market_cap"`
		NotifyThreshold float64 `yaml:"notify_threshold"`
	} `yaml:"scan"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Notify struct {
		ConfigPath   string `yaml:"config_path"`
		DashboardURL string `yaml:"dashboard_url"`
	} `yaml:"notify"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("KRX_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("KRX_API_KEY"); v != "" {
		cfg.Provider.APIKey = v
	}
	if v := os.Getenv("SCAN_LIMIT"); v != "" {
		var limit int
		if _, err := fmt.Sscanf(v, "%d", &limit); err == nil {
			cfg.Scan.Limit = limit
		}
	}
	if v := os.Getenv("CRON_SCAN"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Scan.Limit == 0 {
		cfg.Scan.Limit = 50
	}
	if cfg.Scan.MinMarketCap == 0 {
		cfg.Scan.MinMarketCap = 50_000_000_000
	}
	if cfg.Scan.NotifyThreshold == 0 {
		cfg.Scan.NotifyThreshold = 70
	}
	if cfg.Schedule.ScanCron == "" {
		// Weekdays at 16:00 KST, after the KRX close
		cfg.Schedule.ScanCron = "0 0 16 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stockscout.db"
	}
	if cfg.Notify.ConfigPath == "" {
		cfg.Notify.ConfigPath = "config.json"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("provider.base_url is required")
	}
	if c.Scan.Limit <= 0 {
		return fmt.Errorf("scan.limit must be positive")
	}
	if c.Scan.MinMarketCap <= 0 {
		return fmt.Errorf("scan.min_market_cap must be positive")
	}
	return nil
}
