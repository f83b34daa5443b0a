package service

import (
	"context"
	"time"

	"github.com/mmfshirokan/PriceTable/internal/model"
)

// Reporter receives the observations produced by the workers. It is called
// from the worker goroutines and must be safe for concurrent use.
type Reporter interface {
	BatchApplied(ctx context.Context, report model.BatchReport)
	QueryServed(ctx context.Context, report model.QueryReport)
}

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// sleep waits for d or until ctx is done, reporting whether the full
// interval elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
