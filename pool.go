package qkernel

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

// Pool is a fixed-size worker pool executing state-vector kernels. Workers
// are started once at construction and pull contiguous index ranges from a
// shared queue; each kernel call joins on its own barrier, so the pool needs
// no locking beyond the queue itself. The buffers a kernel touches belong to
// the caller, and the caller must not run two kernels concurrently on
// overlapping buffers.
type Pool struct {
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	tasks   chan task
	config  *Config
	metrics *Metrics
}

// NewPool creates a kernel pool and starts its workers.
func NewPool(ctx context.Context, opts ...Option) *Pool {
	config := NewConfig()
	for _, opt := range opts {
		opt(config)
	}
	if config.Workers < 1 {
		config.Workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	p := &Pool{
		ctx:     ctx,
		cancel:  cancel,
		tasks:   make(chan task, config.Workers*4),
		config:  config,
		metrics: newMetrics(),
	}

	for i := 0; i < config.Workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.run()
		}()
	}

	errnie.Info(
		"kernel pool started - workers %v, device %v, threshold %v",
		config.Workers,
		config.Device,
		config.ParallelThreshold,
	)
	return p
}

// run is the worker loop. Kernels are pure and bounded, so there is nothing
// to interrupt mid-range; the loop only checks for shutdown between tasks.
func (p *Pool) run() {
	for {
		select {
		case <-p.ctx.Done():
			return
		case t, ok := <-p.tasks:
			if !ok {
				return
			}
			start := time.Now()
			t.Fn(t.Lo, t.Hi)
			p.metrics.recordTask(t, start)
			t.done.Done()
		}
	}
}

// parallelFor partitions [0, total) into ranges that are multiples of block
// and runs fn over them on the workers, returning after every range has
// completed. Ranges never split a block, which is what keeps each (i1, i2)
// amplitude pair on a single worker. Small totals run inline.
func (p *Pool) parallelFor(op string, total, block int64, fn func(lo, hi int64)) {
	start := time.Now()
	id := uuid.New()

	if total <= p.config.ParallelThreshold || p.config.Workers < 2 || total <= block {
		fn(0, total)
		p.metrics.recordKernel(op, id, start)
		return
	}

	// Aim for a few ranges per worker, rounded up to whole blocks.
	chunk := total / int64(p.config.Workers*4)
	chunk -= chunk % block
	if chunk < block {
		chunk = block
	}

	var done sync.WaitGroup
	for lo := int64(0); lo < total; lo += chunk {
		hi := lo + chunk
		if hi > total {
			hi = total
		}
		done.Add(1)
		p.tasks <- task{ID: id, Op: op, Lo: lo, Hi: hi, Fn: fn, done: &done}
	}
	done.Wait()

	p.metrics.recordKernel(op, id, start)
}

// Workers returns the configured degree of parallelism.
func (p *Pool) Workers() int {
	return p.config.Workers
}

// Device returns the pool's execution target.
func (p *Pool) Device() Device {
	return p.config.Device
}

// Metrics exposes the pool's execution counters.
func (p *Pool) Metrics() *Metrics {
	return p.metrics
}

// Close stops the workers. It must not be called while a kernel is running.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
	p.wg.Wait()
	p.cancel()
	errnie.Info("kernel pool closed - kernels executed %v", p.metrics.KernelCount())
}
