package reporter

import (
	"context"

	"github.com/mmfshirokan/PriceTable/internal/model"
	log "github.com/sirupsen/logrus"
)

// Log writes every observation as a structured log line.
type Log struct {
	logger log.FieldLogger
}

func NewLog(logger log.FieldLogger) *Log {
	return &Log{
		logger: logger,
	}
}

func (l *Log) BatchApplied(_ context.Context, report model.BatchReport) {
	entry := l.logger.WithFields(log.Fields{
		"size":       report.Size,
		"applied":    report.Applied,
		"latency_us": report.Latency.Microseconds(),
	})
	if len(report.Skipped) > 0 {
		entry = entry.WithField("skipped", report.Skipped)
	}

	entry.Info("batch update applied")
}

func (l *Log) QueryServed(_ context.Context, report model.QueryReport) {
	entry := l.logger.WithFields(log.Fields{
		"symbol":     report.Symbol,
		"latency_us": report.Latency.Microseconds(),
	})
	if !report.Found {
		entry.Warn("symbol not found")
		return
	}

	entry.WithField("price", report.Rounded().StringFixed(2)).Info("price queried")
}
