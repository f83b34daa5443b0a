package reporter

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mmfshirokan/PriceTable/internal/model"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const batchKey = "batch"

type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka publishes observations to a topic as JSON. Batch reports are keyed
// by "batch", query reports by symbol.
type Kafka struct {
	writer KafkaWriter
}

type BatchMessage struct {
	Date      time.Time `json:"date"`
	Size      int       `json:"size"`
	Applied   int       `json:"applied"`
	Skipped   []string  `json:"skipped,omitempty"`
	LatencyUS int64     `json:"latency_us"`
}

type QueryMessage struct {
	Date      time.Time       `json:"date"`
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	Found     bool            `json:"found"`
	LatencyUS int64           `json:"latency_us"`
}

func NewKafkaWriter(brokerURL string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(brokerURL),
		Topic:    topic,
		Balancer: &kafka.Hash{},
		Async:    true,
	}
}

func NewKafka(writer KafkaWriter) *Kafka {
	return &Kafka{
		writer: writer,
	}
}

func (k *Kafka) BatchApplied(ctx context.Context, report model.BatchReport) {
	k.publish(ctx, batchKey, BatchMessage{
		Date:      report.At,
		Size:      report.Size,
		Applied:   report.Applied,
		Skipped:   report.Skipped,
		LatencyUS: report.Latency.Microseconds(),
	})
}

func (k *Kafka) QueryServed(ctx context.Context, report model.QueryReport) {
	msg := QueryMessage{
		Date:      report.At,
		Symbol:    report.Symbol,
		Found:     report.Found,
		LatencyUS: report.Latency.Microseconds(),
	}
	if report.Found {
		msg.Price = report.Rounded()
	}

	k.publish(ctx, report.Symbol, msg)
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}

func (k *Kafka) publish(ctx context.Context, key string, obj any) {
	value, err := json.Marshal(obj)
	if err != nil {
		log.Errorf("marshal %s report: %v", key, err)
		return
	}

	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
	if err != nil && ctx.Err() == nil {
		log.Errorf("writing %s report error: %v", key, err)
	}
}
