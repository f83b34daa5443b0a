// Package metrics records worker observations as Prometheus collectors.
package metrics

import (
	"context"

	"github.com/mmfshirokan/PriceTable/internal/model"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "price_table"

// latency buckets in microseconds
var latencyBuckets = []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000, 5000}

type Collector struct {
	BatchLatency   prometheus.Histogram
	BatchesTotal   prometheus.Counter
	SkippedTotal   *prometheus.CounterVec
	QueryLatency   *prometheus.HistogramVec
	QueriesTotal   *prometheus.CounterVec
	QueryMisses    *prometheus.CounterVec
	LastQueryPrice *prometheus.GaugeVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		BatchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_apply_latency_microseconds",
			Help:      "Time spent enqueuing and applying one update batch.",
			Buckets:   latencyBuckets,
		}),
		BatchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Update batches applied.",
		}),
		SkippedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_updates_total",
			Help:      "Updates dropped because the symbol is not in the table.",
		}, []string{"symbol"}),
		QueryLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_latency_microseconds",
			Help:      "Lookup latency per symbol.",
			Buckets:   latencyBuckets,
		}, []string{"symbol"}),
		QueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Lookups served per symbol.",
		}, []string{"symbol"}),
		QueryMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_misses_total",
			Help:      "Lookups for symbols absent from the table.",
		}, []string{"symbol"}),
		LastQueryPrice: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_query_price",
			Help:      "Price returned by the most recent lookup.",
		}, []string{"symbol"}),
	}

	reg.MustRegister(
		c.BatchLatency,
		c.BatchesTotal,
		c.SkippedTotal,
		c.QueryLatency,
		c.QueriesTotal,
		c.QueryMisses,
		c.LastQueryPrice,
	)

	return c
}

func (c *Collector) BatchApplied(_ context.Context, report model.BatchReport) {
	c.BatchesTotal.Inc()
	c.BatchLatency.Observe(float64(report.Latency.Microseconds()))
	for _, symbol := range report.Skipped {
		c.SkippedTotal.WithLabelValues(symbol).Inc()
	}
}

func (c *Collector) QueryServed(_ context.Context, report model.QueryReport) {
	c.QueriesTotal.WithLabelValues(report.Symbol).Inc()
	c.QueryLatency.WithLabelValues(report.Symbol).Observe(float64(report.Latency.Microseconds()))
	if !report.Found {
		c.QueryMisses.WithLabelValues(report.Symbol).Inc()
		return
	}
	c.LastQueryPrice.WithLabelValues(report.Symbol).Set(report.Price)
}

// Summary is a point-in-time total of what the workers did.
type Summary struct {
	Batches        float64
	SkippedUpdates float64
	Queries        float64
	QueryMisses    float64
}

// Summarize gathers totals from g, which should contain this collector's
// metrics.
func Summarize(g prometheus.Gatherer) (Summary, error) {
	families, err := g.Gather()
	if err != nil {
		return Summary{}, err
	}

	var s Summary
	for _, mf := range families {
		var total float64
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}

		switch mf.GetName() {
		case namespace + "_batches_total":
			s.Batches = total
		case namespace + "_skipped_updates_total":
			s.SkippedUpdates = total
		case namespace + "_queries_total":
			s.Queries = total
		case namespace + "_query_misses_total":
			s.QueryMisses = total
		}
	}

	return s, nil
}
