package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"StockScout/internal/config"
	"StockScout/internal/engine"
	"StockScout/internal/provider"
	"StockScout/internal/scanner"
	"StockScout/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockScout API starting...")

	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	krx := provider.NewKRXClient(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Scan.MinMarketCap, cfg.Proxy)
	scan := scanner.New(krx, engine.New(krx))

	srv := server.New(scan, cfg.Scan.Limit, cfg.Notify.ConfigPath)
	log.Printf("[INFO] listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, srv.Router()); err != nil {
		log.Fatalf("[FATAL] server: %v", err)
	}
}
