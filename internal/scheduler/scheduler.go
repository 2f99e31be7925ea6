package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"StockScout/internal/model"
	"StockScout/internal/notifier"
	"StockScout/internal/recorder"
	"StockScout/internal/scanner"
)

// Scheduler runs the unattended scan-and-alert job on a cron cadence.
type Scheduler struct {
	Cron         *cron.Cron
	Scanner      *scanner.Scanner
	Email        *notifier.EmailSender
	Telegram     *notifier.TelegramSender
	Recorder     recorder.Recorder
	Notify       *model.NotifyConfig
	Limit        int
	Threshold    float64
	DashboardURL string
}

// New creates a Scheduler wired to the scan pipeline and both
// notification channels.
func New(sc *scanner.Scanner, email *notifier.EmailSender, tg *notifier.TelegramSender,
	rec recorder.Recorder, notify *model.NotifyConfig, limit int, threshold float64, dashboardURL string) *Scheduler {
	return &Scheduler{
		Cron:         cron.New(cron.WithSeconds()),
		Scanner:      sc,
		Email:        email,
		Telegram:     tg,
		Recorder:     rec,
		Notify:       notify,
		Limit:        limit,
		Threshold:    threshold,
		DashboardURL: dashboardURL,
	}
}

// Register adds the scan job under the given cron spec.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.ScanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// ScanTask runs one full scan, alerts on high scorers, and records the run.
func (s *Scheduler) ScanTask() {
	log.Println("[INFO] running scheduled scan")
	started := time.Now()

	universe := 0
	results := s.Scanner.Scan(s.Limit, scanner.ProgressFunc(func(done, total int, label string) {
		universe = total
		log.Printf("[INFO] scanned %d/%d: %s", done, total, label)
	}))

	// Keep only tickers inside the buy window.
	hot := make([]model.ScanResult, 0, len(results))
	for _, r := range results {
		if r.Score >= s.Threshold {
			hot = append(hot, r)
		}
	}

	if err := s.Recorder.RecordRun(&recorder.RunRecord{
		ID:           uuid.New().String(),
		StartedAt:    started,
		Limit:        s.Limit,
		UniverseSize: universe,
		Qualified:    len(hot),
		Results:      results,
	}); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}

	if len(hot) == 0 {
		log.Printf("[INFO] no ticker reached %.0f, skipping notifications", s.Threshold)
		return
	}
	log.Printf("[INFO] %d tickers in the buy window", len(hot))

	// Both channels are best effort and independent of each other.
	if s.Notify.EmailReady() {
		subject, body := notifier.FormatEmailDigest(hot)
		if err := s.Email.Send(subject, body, s.Notify.Emails, s.Notify.Sender.Email, s.Notify.Sender.AppPassword); err != nil {
			log.Printf("[ERROR] email digest: %v", err)
		} else {
			log.Printf("[INFO] email digest sent to %d recipients", len(s.Notify.Emails))
		}
	}
	if s.Notify.TelegramReady() {
		text := notifier.FormatTelegramDigest(hot, s.DashboardURL)
		if err := s.Telegram.Send(text, s.Notify.Telegram.ChatIDs); err != nil {
			log.Printf("[ERROR] telegram digest: %v", err)
		}
	}
}
