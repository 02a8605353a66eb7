package worker

import (
	"sync/atomic"
	"testing"

	"github.com/chesskit-go/chesskit/internal/collection"
	"github.com/chesskit-go/chesskit/internal/testutil"
)

func drain(pool *Pool) []Result {
	done := make(chan []Result)
	go func() {
		var results []Result
		for result := range pool.Results() {
			results = append(results, result)
		}
		done <- results
	}()
	pool.Close()
	return <-done
}

func TestPoolProcessesAllItems(t *testing.T) {
	var processed atomic.Int64
	pool := NewPool(func(item Item) Result {
		processed.Add(1)
		return Result{Index: item.Index, Game: item.Game}
	}, WithWorkers(4), WithBufferSize(8))
	pool.Start()

	const n = 50
	for i := 0; i < n; i++ {
		pool.Submit(Item{Index: i})
	}

	results := drain(pool)
	if len(results) != n {
		t.Fatalf("results = %d, want %d", len(results), n)
	}
	if got := processed.Load(); got != n {
		t.Errorf("processed = %d, want %d", got, n)
	}

	seen := make(map[int]bool, n)
	for _, result := range results {
		if seen[result.Index] {
			t.Errorf("index %d delivered twice", result.Index)
		}
		seen[result.Index] = true
	}
	for i := 0; i < n; i++ {
		if !seen[i] {
			t.Errorf("index %d missing from results", i)
		}
	}
}

func TestPoolDefaults(t *testing.T) {
	pool := NewPool(func(item Item) Result { return Result{} })
	if pool.NumWorkers() != 1 {
		t.Errorf("NumWorkers = %d, want 1", pool.NumWorkers())
	}

	pool = NewPool(func(item Item) Result { return Result{} }, WithWorkers(0), WithBufferSize(0))
	if pool.NumWorkers() != 1 {
		t.Errorf("NumWorkers with rejected option = %d, want 1", pool.NumWorkers())
	}
}

func TestPoolStopSkipsQueuedItems(t *testing.T) {
	var processed atomic.Int64
	pool := NewPool(func(item Item) Result {
		processed.Add(1)
		return Result{Index: item.Index}
	}, WithBufferSize(8))

	for i := 0; i < 5; i++ {
		pool.Submit(Item{Index: i})
	}
	pool.Stop()
	pool.Start()

	results := drain(pool)
	if len(results) != 0 {
		t.Errorf("results after Stop = %d, want 0", len(results))
	}
	if got := processed.Load(); got != 0 {
		t.Errorf("processed after Stop = %d, want 0", got)
	}
}

func TestPoolCollectsGames(t *testing.T) {
	games := collection.New()
	pool := NewPool(func(item Item) Result {
		record, duplicate := games.Add(item.Game)
		return Result{Index: item.Index, Game: item.Game, Record: record, Duplicate: duplicate}
	}, WithWorkers(2))
	pool.Start()

	movetexts := []string{
		"1. e4 e5 *",
		"1. d4 d5 *",
		"1. e4 e5 *",
	}
	for i, mt := range movetexts {
		pool.Submit(Item{Index: i, Game: testutil.MustParseGame(t, mt)})
	}

	results := drain(pool)
	duplicates := 0
	for _, result := range results {
		if result.Record == nil {
			t.Errorf("result %d has no record", result.Index)
		}
		if result.Duplicate {
			duplicates++
		}
	}
	if duplicates != 1 {
		t.Errorf("duplicates = %d, want 1", duplicates)
	}
	testutil.AssertEqual(t, games.Len(), 2)
}
