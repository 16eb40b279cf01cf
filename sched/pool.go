package sched

import (
	"context"
	"sync"
	"sync/atomic"
)

// Pool is a bounded-queue, fixed-size worker pool implementing
// Executor. It exists so async registries can fan handler work out
// across goroutines without every embedder writing its own pool.
type Pool struct {
	workers   int
	queueSize int

	mu      sync.Mutex // protects queue creation/destruction
	queue   chan func()
	running atomic.Bool
	wg      sync.WaitGroup

	// Stats
	submitted atomic.Uint64
	completed atomic.Uint64
	inline    atomic.Uint64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(count int) PoolOption {
	return func(p *Pool) {
		if count > 0 {
			p.workers = count
		}
	}
}

// WithQueueSize sets the task queue capacity.
func WithQueueSize(size int) PoolOption {
	return func(p *Pool) {
		if size > 0 {
			p.queueSize = size
		}
	}
}

// NewPool creates a pool with the given options. The pool must be
// started before it schedules work on its workers.
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{
		workers:   4,
		queueSize: 1024,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running.Load() {
		return ErrPoolRunning
	}

	p.queue = make(chan func(), p.queueSize)
	p.running.Store(true)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return nil
}

// Stop drains the queue and stops the workers. It waits for queued
// tasks to finish or until ctx is cancelled.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.running.Load() {
		p.mu.Unlock()
		return ErrPoolStopped
	}
	p.running.Store(false)
	close(p.queue)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Execute implements Executor. Tasks are queued for the workers; if
// the pool is stopped or the queue is saturated the task runs inline
// on the calling goroutine instead, so dispatch never drops handlers.
func (p *Pool) Execute(task func()) {
	if p.running.Load() {
		select {
		case p.queue <- task:
			p.submitted.Add(1)
			return
		default:
		}
	}
	p.inline.Add(1)
	task()
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.queue {
		task()
		p.completed.Add(1)
	}
}

// IsRunning reports whether the pool is accepting queued work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// QueueDepth returns the number of tasks waiting in the queue.
// Returns 0 when the pool is not running.
func (p *Pool) QueueDepth() int {
	if !p.running.Load() {
		return 0
	}
	return len(p.queue)
}

// Stats returns a snapshot of pool counters.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Submitted:  p.submitted.Load(),
		Completed:  p.completed.Load(),
		Inline:     p.inline.Load(),
		QueueDepth: p.QueueDepth(),
	}
}

// PoolStats contains counters for a Pool.
type PoolStats struct {
	// Submitted is the number of tasks accepted onto the queue.
	Submitted uint64

	// Completed is the number of queued tasks workers finished.
	Completed uint64

	// Inline is the number of tasks run on the caller's goroutine
	// because the pool was stopped or the queue was full.
	Inline uint64

	// QueueDepth is the current number of waiting tasks.
	QueueDepth int
}
