// Package perf times operations and logs the ones that exceed a
// threshold.
package perf

import (
	"log/slog"
	"time"
)

type Timer struct {
	name     string
	logger   *slog.Logger
	start    time.Time
	threshMs int64
}

// NewTimer starts timing a named operation. Stop logs the duration at
// debug level, and a warning when it exceeds threshMs.
func NewTimer(name string, logger *slog.Logger, threshMs int64) *Timer {
	return &Timer{
		name:     name,
		logger:   logger,
		start:    time.Now(),
		threshMs: threshMs,
	}
}

func (t *Timer) Stop() {
	elapsed := time.Since(t.start)
	if t.logger != nil {
		t.logger.Debug(t.name, "duration_ms", elapsed.Milliseconds())
		if elapsed.Milliseconds() > t.threshMs {
			t.logger.Warn(t.name+"_slow", "duration_ms", elapsed.Milliseconds(), "threshold_ms", t.threshMs)
		}
	}
}
