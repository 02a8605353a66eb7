// Package worker provides a worker pool for parallel game processing.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/chesskit-go/chesskit/internal/collection"
	"github.com/chesskit-go/chesskit/internal/pgn"
)

// Item is one game queued for processing.
type Item struct {
	Game *pgn.Game

	// Index preserves input order across parallel processing.
	Index int
}

// Result is the outcome of processing one game.
type Result struct {
	Index int
	Game  *pgn.Game

	// Record is the admitted collection record, nil when the game
	// failed or was rejected.
	Record *collection.Record

	// Duplicate reports that the game matched an earlier one.
	Duplicate bool

	Err error
}

// ProcessFunc processes a single queued game.
type ProcessFunc func(item Item) Result

// Pool fans queued games out over a fixed set of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	work        chan Item
	results     chan Result
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the work and result channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool running processFunc. Defaults to one worker
// and a buffer of 16.
func NewPool(processFunc ProcessFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  16,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan Item, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for item := range p.work {
		if p.stopped.Load() {
			continue
		}
		p.results <- p.processFunc(item)
	}
}

// Submit queues a game, blocking while the buffer is full.
func (p *Pool) Submit(item Item) {
	p.work <- item
}

// Stop makes workers drain remaining items without processing them.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Close closes the work channel, waits for the workers, then closes
// the result channel.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel processed games arrive on.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the pool's worker count.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
