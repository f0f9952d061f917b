// Package backend provides the execution-backend strategies the scheduler
// dispatches tasks to: inline (synchronous), bounded pool, and unbounded.
package backend

import (
	"context"
	"fmt"
	"runtime/debug"

	"go.trai.ch/taskgraph/internal/core/domain"
	"go.trai.ch/taskgraph/internal/core/ports"
)

// Inline runs every submitted task synchronously on the calling goroutine,
// posting its completion before Submit returns. It requires no Close work
// and is always safe to reuse across runs.
type Inline struct{}

// NewInline builds an Inline backend.
func NewInline() *Inline { return &Inline{} }

// Submit runs task.Run to completion on the calling goroutine and invokes
// onComplete before returning.
func (b *Inline) Submit(task domain.Task, onComplete ports.OnComplete, positional []any, keyword map[string]any) {
	runTask(context.Background(), task, positional, keyword)
	onComplete(task, task.Status())
}

// Acknowledge is a no-op: Inline holds no per-task state to reclaim.
func (b *Inline) Acknowledge(domain.Task) {}

// Close is a no-op: Inline holds no resources.
func (b *Inline) Close() {}

// runTask executes task.Run and records its outcome via the task's own
// setters, matching the contract every backend must honor: a task body's
// error never escapes to the caller, it is captured as a recorded error. A
// panicking task body (e.g. a division by zero) is recovered the same way,
// so one misbehaving task fails its own status instead of taking the worker
// goroutine, and every submit still gets exactly one completion.
func runTask(ctx context.Context, task domain.Task, positional []any, keyword map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			task.SetError(fmt.Sprintf("panic: %v\n%s", r, debug.Stack()))
		}
	}()

	result, err := task.Run(ctx, positional, keyword)
	if err != nil {
		task.SetError(err.Error())
		return
	}
	task.SetResult(result)
}
