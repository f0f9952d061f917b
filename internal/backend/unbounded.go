package backend

import (
	"context"

	"go.trai.ch/taskgraph/internal/core/domain"
	"go.trai.ch/taskgraph/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Unbounded runs every submitted task on its own goroutine, with no cap on
// concurrency. It is reusable across runs with no extra bookkeeping: each
// Submit is independent.
type Unbounded struct {
	eg errgroup.Group
}

// NewUnbounded builds an Unbounded backend.
func NewUnbounded() *Unbounded { return &Unbounded{} }

// Submit spawns a goroutine that runs task.Run and posts the completion.
// The goroutine always returns nil: task failure is reported through
// onComplete and the task's own status, not through the errgroup.
func (b *Unbounded) Submit(task domain.Task, onComplete ports.OnComplete, positional []any, keyword map[string]any) {
	b.eg.Go(func() error {
		runTask(context.Background(), task, positional, keyword)
		onComplete(task, task.Status())
		return nil
	})
}

// Acknowledge is a no-op: each submission's goroutine is self-contained and
// exits on its own once its completion has been posted.
func (b *Unbounded) Acknowledge(domain.Task) {}

// Close waits for every spawned goroutine to finish, so no task body is
// still running when the run returns.
func (b *Unbounded) Close() {
	_ = b.eg.Wait()
}
