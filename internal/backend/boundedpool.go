package backend

import (
	"context"
	"sync"

	"go.trai.ch/taskgraph/internal/core/domain"
	"go.trai.ch/taskgraph/internal/core/ports"
)

// job is one unit of work handed to a bounded-pool worker.
type job struct {
	task       domain.Task
	onComplete ports.OnComplete
	positional []any
	keyword    map[string]any
}

// BoundedPool runs submitted tasks across a fixed number of worker
// goroutines, queueing submissions beyond the pool size in FIFO order.
// Submit, Acknowledge, and Close are documented as scheduler-thread-only by
// the ExecutionBackend contract, so available/waiting/assigned need no
// locking of their own; only the per-worker channels cross goroutines.
type BoundedPool struct {
	n      int
	daemon bool

	channels  []chan *job
	available []int
	waiting   []*job
	assigned  map[int]int // task ID -> worker index

	wg          sync.WaitGroup
	initialized bool
}

// NewBoundedPool builds a BoundedPool of n workers. When daemon is true,
// workers survive Close and are reused by the next run; when false, Close
// joins them and the next Submit respawns a fresh pool.
func NewBoundedPool(n int, daemon bool) *BoundedPool {
	return &BoundedPool{n: n, daemon: daemon}
}

func (b *BoundedPool) ensureInitialized() {
	if b.initialized {
		return
	}

	b.channels = make([]chan *job, b.n)
	b.available = make([]int, 0, b.n)
	b.assigned = make(map[int]int, b.n)
	b.waiting = nil

	for i := 0; i < b.n; i++ {
		b.channels[i] = make(chan *job)
		b.available = append(b.available, i)

		b.wg.Add(1)
		go b.work(i)
	}

	b.initialized = true
}

func (b *BoundedPool) work(idx int) {
	defer b.wg.Done()
	for j := range b.channels[idx] {
		runTask(context.Background(), j.task, j.positional, j.keyword)
		j.onComplete(j.task, j.task.Status())
	}
}

// Submit assigns task to an idle worker, or queues it if every worker is
// busy.
func (b *BoundedPool) Submit(task domain.Task, onComplete ports.OnComplete, positional []any, keyword map[string]any) {
	b.ensureInitialized()

	j := &job{task: task, onComplete: onComplete, positional: positional, keyword: keyword}

	if len(b.available) > 0 {
		idx := b.available[len(b.available)-1]
		b.available = b.available[:len(b.available)-1]
		b.assigned[task.ID()] = idx
		b.channels[idx] <- j
		return
	}

	b.waiting = append(b.waiting, j)
}

// Acknowledge reclaims the worker that ran task, dispatching the next
// waiting job to it if the queue is non-empty.
func (b *BoundedPool) Acknowledge(task domain.Task) {
	idx, ok := b.assigned[task.ID()]
	if !ok {
		return
	}
	delete(b.assigned, task.ID())

	if len(b.waiting) > 0 {
		next := b.waiting[0]
		b.waiting = b.waiting[1:]
		b.assigned[next.task.ID()] = idx
		b.channels[idx] <- next
		return
	}

	b.available = append(b.available, idx)
}

// Close declares the run over. Daemon pools leave their workers running,
// ready for the next run's Submit calls. Non-daemon pools close every
// worker channel and join the goroutines, then reinitialize lazily on the
// next Submit.
func (b *BoundedPool) Close() {
	if !b.initialized || b.daemon {
		return
	}

	for _, ch := range b.channels {
		close(ch)
	}
	b.wg.Wait()

	b.channels = nil
	b.available = nil
	b.waiting = nil
	b.assigned = nil
	b.initialized = false
}
