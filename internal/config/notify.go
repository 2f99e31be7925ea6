package config

import (
	"encoding/json"
	"log"
	"os"

	"StockScout/internal/model"
)

// LoadNotify reads the notification config from a JSON file. A missing
// or corrupt file yields the empty default, never an error: the scanner
// must be able to run without notifications configured.
func LoadNotify(path string) *model.NotifyConfig {
	cfg := &model.NotifyConfig{
		Emails: []string{},
		Telegram: model.Telegram{
			ChatIDs: []string{},
		},
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] read notify config: %v, using defaults", err)
		}
		return cfg
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		log.Printf("[WARN] parse notify config: %v, using defaults", err)
		return &model.NotifyConfig{Emails: []string{}, Telegram: model.Telegram{ChatIDs: []string{}}}
	}
	return cfg
}

// SaveNotify writes the notification config back as a full rewrite.
// Last writer wins; single-operator usage needs no locking.
func SaveNotify(path string, cfg *model.NotifyConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
