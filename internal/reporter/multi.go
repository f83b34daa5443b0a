package reporter

import (
	"context"

	"github.com/mmfshirokan/PriceTable/internal/model"
	"github.com/mmfshirokan/PriceTable/internal/service"
)

// Multi fans each observation out to every reporter in order.
type Multi []service.Reporter

func (m Multi) BatchApplied(ctx context.Context, report model.BatchReport) {
	for _, r := range m {
		r.BatchApplied(ctx, report)
	}
}

func (m Multi) QueryServed(ctx context.Context, report model.QueryReport) {
	for _, r := range m {
		r.QueryServed(ctx, report)
	}
}
