package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing timestamped lines ("14:32:01.45") to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Harvested 42 records (1.234s)".
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(msg, append(keyvals, "took", time.Since(p.start).Round(time.Millisecond))...)
}
