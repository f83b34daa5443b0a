package service

import (
	"context"
	"errors"
	"time"

	"github.com/mmfshirokan/PriceTable/internal/model"
	"github.com/mmfshirokan/PriceTable/internal/repository"
	"github.com/mmfshirokan/PriceTable/internal/source"
	log "github.com/sirupsen/logrus"
)

type UpdaterConfig struct {
	Symbols  []string
	Base     float64
	Spread   float64
	Interval time.Duration
}

// BatchUpdater is the single writer of the price table. Every cycle it
// generates one price per tracked symbol, queues them as a batch and applies
// the batch to the table.
type BatchUpdater struct {
	table    repository.PriceWriter
	gen      source.Generator
	reporter Reporter
	clock    Clock

	symbols  []string
	base     float64
	spread   float64
	interval time.Duration

	prices []float64
	queue  []model.Update
}

func NewBatchUpdater(table repository.PriceWriter, gen source.Generator, rep Reporter, conf UpdaterConfig) *BatchUpdater {
	symbols := dedupe(conf.Symbols)

	return &BatchUpdater{
		table:    table,
		gen:      gen,
		reporter: rep,
		clock:    realClock{},
		symbols:  symbols,
		base:     conf.Base,
		spread:   conf.Spread,
		interval: conf.Interval,
		prices:   make([]float64, len(symbols)),
		queue:    make([]model.Update, 0, len(symbols)),
	}
}

// WithClock replaces the clock used for latency measurement.
func (u *BatchUpdater) WithClock(c Clock) *BatchUpdater {
	u.clock = c
	return u
}

// RunBatch performs one generate, enqueue, apply and report cycle.
func (u *BatchUpdater) RunBatch(ctx context.Context) model.BatchReport {
	for i := range u.symbols {
		u.prices[i] = u.gen.Generate(u.base, u.spread)
	}

	start := u.clock.Now()

	u.queue = u.queue[:0]
	for i, symbol := range u.symbols {
		u.queue = append(u.queue, model.Update{Symbol: symbol, Price: u.prices[i]})
	}

	report := model.BatchReport{Size: len(u.queue)}
	for _, upd := range u.queue {
		err := u.table.Update(upd.Symbol, upd.Price)
		if err != nil {
			if !errors.Is(err, repository.ErrKeyNotFound) {
				log.Debugf("skipping update: %v", err)
			}
			report.Skipped = append(report.Skipped, upd.Symbol)
			continue
		}
		report.Applied++
	}

	end := u.clock.Now()
	report.At = end
	report.Latency = end.Sub(start)

	u.reporter.BatchApplied(ctx, report)

	return report
}

// Run repeats RunBatch every interval until ctx is done.
func (u *BatchUpdater) Run(ctx context.Context) {
	log.Info("batch updater started for ", u.symbols)

	for ctx.Err() == nil {
		u.RunBatch(ctx)

		if !sleep(ctx, u.interval) {
			break
		}
	}

	log.Info("exiting batch updater")
}

func dedupe(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}
