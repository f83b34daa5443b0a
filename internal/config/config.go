package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/caarlos0/env/v10"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	SeedPrices     map[string]float64 `env:"SEED_PRICES" envSeparator:"," envKeyValSeparator:":" envDefault:"AAPL:150,GOOGL:2800,AMZN:3400,MSFT:299,TSLA:720"`
	TrackedSymbols []string           `env:"TRACKED_SYMBOLS" envSeparator:"," envDefault:"AAPL,GOOGL,AMZN,MSFT,TSLA"`
	QuerySymbols   []string           `env:"QUERY_SYMBOLS" envSeparator:"," envDefault:"AAPL,GOOGL,MSFT"`

	BasePrice  float64 `env:"BASE_PRICE" envDefault:"100"`
	PriceRange float64 `env:"PRICE_RANGE" envDefault:"50"`
	RandSeed   uint64  `env:"RAND_SEED" envDefault:"0"`

	BatchInterval time.Duration `env:"BATCH_INTERVAL" envDefault:"50ms"`
	QueryInterval time.Duration `env:"QUERY_INTERVAL" envDefault:"1s"`
	RunDuration   time.Duration `env:"RUN_DURATION" envDefault:"0s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	KafkaURL   string `env:"KAFKA_URL"`
	KafkaTopic string `env:"KAFKA_TOPIC" envDefault:"price-table-reports"`
}

func New() (Config, error) {
	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := conf.Validate(); err != nil {
		return Config{}, err
	}

	return conf, nil
}

func (c Config) Validate() error {
	if len(c.SeedPrices) == 0 {
		return errors.New("SEED_PRICES must name at least one symbol")
	}
	if math.IsNaN(c.BasePrice) || math.IsInf(c.BasePrice, 0) {
		return errors.New("BASE_PRICE must be finite")
	}
	if math.IsNaN(c.PriceRange) || math.IsInf(c.PriceRange, 0) || c.PriceRange < 0 {
		return errors.New("PRICE_RANGE must be finite and >= 0")
	}
	if c.BatchInterval <= 0 {
		return errors.New("BATCH_INTERVAL must be > 0")
	}
	if c.QueryInterval <= 0 {
		return errors.New("QUERY_INTERVAL must be > 0")
	}
	if c.RunDuration < 0 {
		return errors.New("RUN_DURATION must be >= 0")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT %q: want text or json", c.LogFormat)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return nil
}

// ConfigureLogger applies the log settings to the standard logrus logger.
func (c Config) ConfigureLogger() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
