package repository

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stdSeed = map[string]float64{
	"AAPL":  150.0,
	"GOOGL": 2800.0,
	"AMZN":  3400.0,
	"MSFT":  299.0,
	"TSLA":  720.0,
}

func TestNew(t *testing.T) {
	type T struct {
		name    string
		seed    map[string]float64
		wantErr error
		wantLen int
	}
	testTable := []T{
		{
			name:    "standart seed",
			seed:    stdSeed,
			wantLen: 5,
		},
		{
			name:    "empty seed",
			seed:    map[string]float64{},
			wantLen: 0,
		},
		{
			name:    "NaN seed price",
			seed:    map[string]float64{"AAPL": math.NaN()},
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "infinite seed price",
			seed:    map[string]float64{"AAPL": math.Inf(-1)},
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "empty symbol",
			seed:    map[string]float64{"": 1},
			wantErr: ErrEmptySymbol,
		},
	}

	for _, test := range testTable {
		table, err := New(test.seed)
		if test.wantErr != nil {
			assert.ErrorIs(t, err, test.wantErr, test.name)
			assert.Nil(t, table, test.name)
			continue
		}

		require.NoError(t, err, test.name)
		assert.Equal(t, test.wantLen, table.Len(), test.name)
	}
}

func TestInitializationDeterminism(t *testing.T) {
	table, err := New(map[string]float64{"AAPL": 150.0})
	require.NoError(t, err)

	price, ok := table.Lookup("AAPL")
	assert.True(t, ok)
	assert.Equal(t, 150.0, price)

	_, ok = table.Lookup("MSFT")
	assert.False(t, ok)

	_, ok = table.Lookup("aapl")
	assert.False(t, ok, "symbols are case-sensitive")
}

func TestUpdate(t *testing.T) {
	table, err := New(map[string]float64{"AAPL": 150.0, "GOOGL": 2800.0})
	require.NoError(t, err)

	require.NoError(t, table.Update("AAPL", 151.25))

	price, ok := table.Lookup("AAPL")
	assert.True(t, ok)
	assert.Equal(t, 151.25, price)

	price, ok = table.Lookup("GOOGL")
	assert.True(t, ok)
	assert.Equal(t, 2800.0, price)

	err = table.Update("TSLA", 700.0)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	_, ok = table.Lookup("TSLA")
	assert.False(t, ok)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"AAPL", "GOOGL"}, table.Symbols())
}

func TestUpdateRejectsNonFinite(t *testing.T) {
	table, err := New(map[string]float64{"AAPL": 150.0})
	require.NoError(t, err)

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := table.Update("AAPL", v)
		assert.True(t, errors.Is(err, ErrInvalidPrice), "value %v", v)
	}

	price, _ := table.Lookup("AAPL")
	assert.Equal(t, 150.0, price)
}

func TestSymbolsIsACopy(t *testing.T) {
	table, err := New(stdSeed)
	require.NoError(t, err)

	symbols := table.Symbols()
	assert.Equal(t, []string{"AAPL", "AMZN", "GOOGL", "MSFT", "TSLA"}, symbols)

	symbols[0] = "XXX"
	assert.Equal(t, "AAPL", table.Symbols()[0])
}

func TestSnapshot(t *testing.T) {
	table, err := New(stdSeed)
	require.NoError(t, err)

	require.NoError(t, table.Update("MSFT", 301.5))

	snap := table.Snapshot()
	assert.Len(t, snap, 5)
	assert.Equal(t, 301.5, snap["MSFT"])
	assert.Equal(t, 720.0, snap["TSLA"])
}

func TestConcurrentReadersSeeOnlyPublishedValues(t *testing.T) {
	const (
		seed    = 100.0
		first   = 101.5
		second  = 98.25
		updates = 10000
		readers = 8
		maxWait = 250 * time.Millisecond
	)

	table, err := New(map[string]float64{"X": seed})
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		done atomic.Bool
	)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()

			var slowest time.Duration
			for !done.Load() {
				start := time.Now()
				price, ok := table.Lookup("X")
				if elapsed := time.Since(start); elapsed > slowest {
					slowest = elapsed
				}

				if !assert.True(t, ok, "reader-%d", reader) {
					return
				}
				if price != seed && price != first && price != second {
					t.Errorf("reader-%d observed torn value %v", reader, price)
					return
				}
			}
			assert.Less(t, slowest, maxWait, "reader-%d", reader)
		}(i)
	}

	for i := 0; i < updates; i++ {
		v := first
		if i%2 == 1 {
			v = second
		}
		require.NoError(t, table.Update("X", v))
	}
	done.Store(true)
	wg.Wait()

	price, _ := table.Lookup("X")
	assert.Equal(t, second, price)

	log.Info("TestConcurrentReadersSeeOnlyPublishedValues finished!")
}

func TestMonotonicVisibility(t *testing.T) {
	const (
		updates = 5000
		readers = 4
	)

	table, err := New(map[string]float64{"X": 0})
	require.NoError(t, err)

	// completed holds the last value whose Update has returned.
	var (
		wg        sync.WaitGroup
		completed atomic.Int64
		done      atomic.Bool
	)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()

			last := 0.0
			for !done.Load() {
				floor := float64(completed.Load())
				price, _ := table.Lookup("X")

				if price < floor {
					t.Errorf("reader-%d read %v after update %v completed", reader, price, floor)
					return
				}
				if price < last {
					t.Errorf("reader-%d went backwards: %v after %v", reader, price, last)
					return
				}
				last = price
			}
		}(i)
	}

	for i := 1; i <= updates; i++ {
		require.NoError(t, table.Update("X", float64(i)))
		completed.Store(int64(i))
	}
	done.Store(true)
	wg.Wait()
}

func TestUpdatesAreIndependentPerSymbol(t *testing.T) {
	table, err := New(map[string]float64{"A": 1.0, "B": 2.0})
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		done atomic.Bool
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for !done.Load() {
			price, ok := table.Lookup("B")
			if !ok || price != 2.0 {
				t.Errorf("B changed to %v while only A was updated", price)
				return
			}
		}
	}()

	for i := 0; i < 5000; i++ {
		require.NoError(t, table.Update("A", float64(i)))
	}
	done.Store(true)
	wg.Wait()
}

func TestUnknownSymbolKeepsKeySet(t *testing.T) {
	table, err := New(stdSeed)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.ErrorIs(t, table.Update("NFLX", 500), ErrKeyNotFound)
		}()
	}
	wg.Wait()

	assert.Equal(t, len(stdSeed), table.Len())
	_, ok := table.Lookup("NFLX")
	assert.False(t, ok)
}
