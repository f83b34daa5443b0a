package repository

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrKeyNotFound  = errors.New("symbol not found")
	ErrInvalidPrice = errors.New("price must be finite")
	ErrEmptySymbol  = errors.New("symbol must not be empty")
)

// Table maps symbols to price entries. The key set is fixed by New and the
// map itself is never written afterwards, so lookups need no lock; only the
// entries change, each through its own atomic cell.
type Table struct {
	entries map[string]*Entry
	symbols []string
}

type PriceReader interface {
	Lookup(symbol string) (float64, bool)
}

type PriceWriter interface {
	Update(symbol string, price float64) error
}

// New builds the table from the seed. It must complete before any goroutine
// reads or updates the returned table.
func New(seed map[string]float64) (*Table, error) {
	t := &Table{
		entries: make(map[string]*Entry, len(seed)),
		symbols: make([]string, 0, len(seed)),
	}

	for symbol, price := range seed {
		if symbol == "" {
			return nil, ErrEmptySymbol
		}
		if !finite(price) {
			return nil, fmt.Errorf("seed %s=%v: %w", symbol, price, ErrInvalidPrice)
		}

		t.entries[symbol] = newEntry(price)
		t.symbols = append(t.symbols, symbol)
	}
	sort.Strings(t.symbols)

	return t, nil
}

func (t *Table) Lookup(symbol string) (float64, bool) {
	e, ok := t.entries[symbol]
	if !ok {
		return 0, false
	}

	return e.Load(), true
}

// Update stores price for an existing symbol. Unknown symbols are never
// inserted; ErrKeyNotFound is returned instead.
func (t *Table) Update(symbol string, price float64) error {
	e, ok := t.entries[symbol]
	if !ok {
		return fmt.Errorf("update %q: %w", symbol, ErrKeyNotFound)
	}
	if !finite(price) {
		return fmt.Errorf("update %q=%v: %w", symbol, price, ErrInvalidPrice)
	}

	e.Store(price)
	return nil
}

// Symbols returns the table's keys in sorted order.
func (t *Table) Symbols() []string {
	out := make([]string, len(t.symbols))
	copy(out, t.symbols)
	return out
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Snapshot reads every entry once. Each value is individually current; the
// result is not a consistent cut across entries.
func (t *Table) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(t.entries))
	for symbol, e := range t.entries {
		out[symbol] = e.Load()
	}

	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
