package repository

import (
	"math"
	"sync/atomic"
)

// Entry is a single price cell. The float64 is kept as its IEEE-754 bit
// pattern so reads and writes are one atomic word operation.
type Entry struct {
	bits atomic.Uint64
}

func newEntry(price float64) *Entry {
	e := &Entry{}
	e.Store(price)
	return e
}

func (e *Entry) Load() float64 {
	return math.Float64frombits(e.bits.Load())
}

// Store replaces the price. Last writer wins.
func (e *Entry) Store(price float64) {
	e.bits.Store(math.Float64bits(price))
}
