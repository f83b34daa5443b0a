package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Update is a single pending price change produced inside one batch.
type Update struct {
	Symbol string
	Price  float64
}

type BatchReport struct {
	At      time.Time
	Size    int
	Applied int
	Skipped []string
	Latency time.Duration
}

type QueryReport struct {
	At      time.Time
	Symbol  string
	Price   float64
	Found   bool
	Latency time.Duration
}

// Rounded returns the price as a two decimal place value for display.
func (q QueryReport) Rounded() decimal.Decimal {
	return decimal.NewFromFloat(q.Price).Round(2)
}
