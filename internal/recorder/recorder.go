package recorder

import (
	"time"

	"StockScout/internal/model"
)

// RunRecord summarizes one completed scan run.
type RunRecord struct {
	ID           string
	StartedAt    time.Time
	Limit        int
	UniverseSize int
	Qualified    int
	Results      []model.ScanResult
}

// Recorder persists scan history for later inspection.
type Recorder interface {
	RecordRun(run *RunRecord) error
	Close() error
}
