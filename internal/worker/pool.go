// Package worker runs perft subtrees on a pool of goroutines.
package worker

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// WorkItem is one root move whose subtree is to be counted.
type WorkItem struct {
	Game  *engine.Game // Position before Move; never mutated by workers
	Move  engine.Move
	Depth int // Total depth including Move
	Index int // Position of Move in the root move list
}

// ProcessResult is the node count of one subtree.
type ProcessResult struct {
	Index int
	Move  engine.Move
	Nodes uint64
	Error error
}

// ProcessFunc counts one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// CountSubtree is the default ProcessFunc. A panic from the engine is
// returned as the result's error so one broken subtree does not take the
// whole pool down.
func CountSubtree(item WorkItem) (res ProcessResult) {
	res = ProcessResult{Index: item.Index, Move: item.Move}
	defer func() {
		if r := recover(); r != nil {
			res.Error = fmt.Errorf("perft %s: %v", item.Move, r)
		}
	}()
	res.Nodes = engine.PerftAfter(item.Game, item.Move, item.Depth)
	return res
}

// Pool manages the worker goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithProcessFunc replaces CountSubtree.
func WithProcessFunc(fn ProcessFunc) PoolOption {
	return func(p *Pool) {
		if fn != nil {
			p.processFunc = fn
		}
	}
}

// NewPool creates a pool. Defaults: one worker, a buffer of 64 (one
// slot per possible root move of most positions), CountSubtree.
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  64,
		processFunc: CountSubtree,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items until the work channel is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a work item. It blocks while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip the items still queued.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel, waits for the workers and then closes
// the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Divide is engine.Divide with the root moves spread over the pool's
// workers. Entries come back in root move order. The first subtree error
// stops the remaining work and is returned.
func Divide(g *engine.Game, depth int, opts ...PoolOption) ([]engine.DivideEntry, error) {
	if depth <= 0 {
		return nil, nil
	}
	moves := g.LegalMoves()

	pool := NewPool(opts...)
	pool.Start()
	go func() {
		for i, m := range moves {
			// Each item gets its own copy so workers never share a Game.
			pool.Submit(WorkItem{Game: g.Clone(), Move: m, Depth: depth, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(moves))
	var firstErr error
	for res := range pool.Results() {
		if res.Error != nil && firstErr == nil {
			firstErr = res.Error
			pool.Stop()
		}
		results = append(results, res)
	}
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	entries := make([]engine.DivideEntry, len(results))
	for i, res := range results {
		entries[i] = engine.DivideEntry{Move: res.Move, Nodes: res.Nodes}
	}
	return entries, nil
}
