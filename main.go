package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mmfshirokan/PriceTable/internal/config"
	"github.com/mmfshirokan/PriceTable/internal/metrics"
	"github.com/mmfshirokan/PriceTable/internal/reporter"
	"github.com/mmfshirokan/PriceTable/internal/repository"
	"github.com/mmfshirokan/PriceTable/internal/service"
	"github.com/mmfshirokan/PriceTable/internal/source"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	conf, err := config.New()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	conf.ConfigureLogger()

	table, err := repository.New(conf.SeedPrices)
	if err != nil {
		log.Fatalf("seeding price table: %v", err)
	}
	log.Infof("price table seeded with %v", table.Symbols())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if conf.RunDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, conf.RunDuration)
		defer cancel()
	}

	reg := prometheus.NewRegistry()
	reporters := reporter.Multi{
		reporter.NewLog(log.StandardLogger()),
		metrics.New(reg),
	}

	var kafkaRep *reporter.Kafka
	if conf.KafkaURL != "" {
		kafkaRep = reporter.NewKafka(reporter.NewKafkaWriter(conf.KafkaURL, conf.KafkaTopic))
		reporters = append(reporters, kafkaRep)
		log.Infof("publishing reports to %s/%s", conf.KafkaURL, conf.KafkaTopic)
	}

	updater := service.NewBatchUpdater(table, source.NewUniform(conf.RandSeed), reporters, service.UpdaterConfig{
		Symbols:  conf.TrackedSymbols,
		Base:     conf.BasePrice,
		Spread:   conf.PriceRange,
		Interval: conf.BatchInterval,
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		updater.Run(ctx)
	}()

	for _, symbol := range conf.QuerySymbols {
		wg.Add(1)
		go func(q *service.Querier) {
			defer wg.Done()
			q.Run(ctx)
		}(service.NewQuerier(table, reporters, symbol, conf.QueryInterval))
	}

	<-ctx.Done()
	log.Info("shutting down")
	wg.Wait()

	if kafkaRep != nil {
		if err := kafkaRep.Close(); err != nil {
			log.Errorf("closing kafka writer: %v", err)
		}
	}

	summary, err := metrics.Summarize(reg)
	if err != nil {
		log.Errorf("gathering metrics: %v", err)
		return
	}
	log.WithFields(log.Fields{
		"batches":         summary.Batches,
		"skipped_updates": summary.SkippedUpdates,
		"queries":         summary.Queries,
		"query_misses":    summary.QueryMisses,
	}).Info("final totals")
}
