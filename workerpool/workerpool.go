// SPDX-License-Identifier: MIT

// Package workerpool provides a persistent, reusable pool of long-lived
// workers. A Pool is created once, fed with jobs through Submit, and torn
// down with Close, which drains every queue and joins every worker.
//
// Two queueing modes are supported:
//
//   - Pinned (default): every worker owns a private FIFO queue and Submit
//     names the target worker. Routing is therefore fully deterministic.
//   - Shared: all workers consume one queue; the worker argument of Submit
//     is ignored and whichever worker is idle picks the job up.
//
// Usage:
//
//	pool := workerpool.New[string](4, func(worker int, job string) {
//		fmt.Println(worker, job)
//	})
//	defer pool.Close()
//
//	_ = pool.Submit(2, "hello")
package workerpool

import (
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"
)

// Sentinel errors.
var (
	// ErrClosed is returned by Submit after Close has been called.
	ErrClosed = errors.New("workerpool: pool is closed")

	// ErrNoSuchWorker is returned when a pinned Submit targets a worker
	// index outside [0, Workers()).
	ErrNoSuchWorker = errors.New("workerpool: no such worker")
)

// Mode selects how jobs are queued.
type Mode int

const (
	// Pinned gives every worker a private queue.
	Pinned Mode = iota
	// Shared makes all workers consume a single queue.
	Shared
)

// DefaultQueueSize is the per-queue buffer used when no option overrides it.
const DefaultQueueSize = 64

// Handler processes one job on behalf of worker.
type Handler[J any] func(worker int, job J)

// Option configures a Pool at construction.
type Option func(*config)

type config struct {
	mode      Mode
	queueSize int
}

// WithMode selects Pinned or Shared queueing.
func WithMode(m Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithQueueSize sets the buffer of each queue. Zero means unbuffered.
// Panics on a negative size.
func WithQueueSize(n int) Option {
	if n < 0 {
		panic("workerpool: WithQueueSize: size must be >= 0")
	}

	return func(c *config) { c.queueSize = n }
}

// counter is padded to its own cache line so workers bumping neighbouring
// counters do not contend.
type counter struct {
	_ cpu.CacheLinePad
	n atomic.Uint64
	_ cpu.CacheLinePad
}

// Pool is a fixed set of workers fed through per-worker or shared queues.
type Pool[J any] struct {
	mode    Mode
	queues  []chan J // len == workers (Pinned) or 1 (Shared)
	handler Handler[J]
	counts  []counter

	mu     sync.RWMutex // guards closed against in-flight Submit
	closed bool

	group     errgroup.Group
	closeOnce sync.Once
}

// New spawns workers goroutines that run handler for each submitted job.
// Panics if workers <= 0 or handler is nil.
func New[J any](workers int, handler Handler[J], opts ...Option) *Pool[J] {
	if workers <= 0 {
		panic("workerpool: New: workers must be > 0")
	}
	if handler == nil {
		panic("workerpool: New: nil handler")
	}
	cfg := config{mode: Pinned, queueSize: DefaultQueueSize}
	for _, o := range opts {
		o(&cfg)
	}

	nq := workers
	if cfg.mode == Shared {
		nq = 1
	}
	p := &Pool[J]{
		mode:    cfg.mode,
		queues:  make([]chan J, nq),
		handler: handler,
		counts:  make([]counter, workers),
	}
	for i := range p.queues {
		p.queues[i] = make(chan J, cfg.queueSize)
	}
	for w := range workers {
		q := p.queues[0]
		if cfg.mode == Pinned {
			q = p.queues[w]
		}
		p.group.Go(func() error {
			p.run(w, q)
			return nil
		})
	}

	return p
}

// run is the worker loop; it returns once q is closed and drained.
func (p *Pool[J]) run(worker int, q <-chan J) {
	for job := range q {
		p.counts[worker].n.Add(1)
		p.handler(worker, job)
	}
}

// Workers returns the number of workers.
func (p *Pool[J]) Workers() int { return len(p.counts) }

// Mode reports the queueing mode.
func (p *Pool[J]) Mode() Mode { return p.mode }

// Submit enqueues job for worker. In Shared mode worker is ignored.
// Blocks while the target queue is full.
func (p *Pool[J]) Submit(worker int, job J) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	q := p.queues[0]
	if p.mode == Pinned {
		if worker < 0 || worker >= len(p.queues) {
			return ErrNoSuchWorker
		}
		q = p.queues[worker]
	}
	q <- job

	return nil
}

// Processed returns, per worker, how many jobs it has started.
func (p *Pool[J]) Processed() []uint64 {
	out := make([]uint64, len(p.counts))
	for i := range p.counts {
		out[i] = p.counts[i].n.Load()
	}

	return out
}

// Close stops accepting jobs, lets every worker drain its backlog, and
// waits for all of them to exit. Safe to call more than once.
func (p *Pool[J]) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		for _, q := range p.queues {
			close(q)
		}
		p.mu.Unlock()
		err = p.group.Wait()
	})

	return err
}
