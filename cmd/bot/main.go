package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"StockScout/internal/config"
	"StockScout/internal/engine"
	"StockScout/internal/notifier"
	"StockScout/internal/provider"
	"StockScout/internal/recorder"
	"StockScout/internal/scanner"
	"StockScout/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockScout bot starting...")

	_ = godotenv.Load()

	// Load config
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
	notifyCfg := config.LoadNotify(cfg.Notify.ConfigPath)

	// Init data provider and scan pipeline
	krx := provider.NewKRXClient(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Scan.MinMarketCap, cfg.Proxy)
	log.Printf("[INFO] data source: %s", krx.Name())
	eng := engine.New(krx)
	scan := scanner.New(krx, eng)

	// Init notification channels
	email := notifier.NewEmailSender()
	telegram := notifier.NewTelegramSender(notifyCfg.Telegram.BotToken, cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init scheduler
	sched := scheduler.New(scan, email, telegram, rec, notifyCfg,
		cfg.Scan.Limit, cfg.Scan.NotifyThreshold, cfg.Notify.DashboardURL)
	if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start. In-line, so a shutdown
	// signal cannot close the recorder under a scan still writing.
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing scan now")
		sched.ScanTask()
	}

	log.Println("[INFO] StockScout bot is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
}
