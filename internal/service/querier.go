package service

import (
	"context"
	"time"

	"github.com/mmfshirokan/PriceTable/internal/model"
	"github.com/mmfshirokan/PriceTable/internal/repository"
	log "github.com/sirupsen/logrus"
)

// Querier polls one symbol. Queriers share nothing but the table.
type Querier struct {
	table    repository.PriceReader
	reporter Reporter
	clock    Clock

	symbol   string
	interval time.Duration
}

func NewQuerier(table repository.PriceReader, rep Reporter, symbol string, interval time.Duration) *Querier {
	return &Querier{
		table:    table,
		reporter: rep,
		clock:    realClock{},
		symbol:   symbol,
		interval: interval,
	}
}

func (q *Querier) WithClock(c Clock) *Querier {
	q.clock = c
	return q
}

// Query reads the symbol once and reports the result.
func (q *Querier) Query(ctx context.Context) model.QueryReport {
	start := q.clock.Now()
	price, found := q.table.Lookup(q.symbol)
	end := q.clock.Now()

	report := model.QueryReport{
		At:      end,
		Symbol:  q.symbol,
		Price:   price,
		Found:   found,
		Latency: end.Sub(start),
	}
	q.reporter.QueryServed(ctx, report)

	return report
}

func (q *Querier) Run(ctx context.Context) {
	log.Info("querier started for ", q.symbol)

	for ctx.Err() == nil {
		q.Query(ctx)

		if !sleep(ctx, q.interval) {
			break
		}
	}

	log.Infof("exiting querier for %s", q.symbol)
}
