package ports

import "go.trai.ch/taskgraph/internal/core/domain"

// OnComplete is the callback an ExecutionBackend invokes exactly once per
// accepted Submit, after the task's result or error has already been
// recorded via its own setters. It must be safe to call from any worker
// goroutine; it performs no scheduler state mutation beyond delivering the
// completion message.
type OnComplete func(task domain.Task, status domain.Status)

// ExecutionBackend is the contract between the single-threaded scheduler and
// a pluggable worker strategy. All three methods are invoked only from the
// scheduler goroutine.
//
//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type ExecutionBackend interface {
	// Submit requests execution of task against its already-resolved
	// inputs. It must return promptly; the task body normally runs
	// off-goroutine, except for the Inline backend, which runs it before
	// Submit returns. onComplete is called exactly once when the body finishes, with
	// status SUCCESS or FAILURE.
	Submit(task domain.Task, onComplete OnComplete, positional []any, keyword map[string]any)

	// Acknowledge tells the backend that the scheduler has drained the
	// completion message for task, so the backend may reclaim whatever
	// worker slot it used to run it.
	Acknowledge(task domain.Task)

	// Close declares that no further Submit calls will be made for this
	// run. A backend that supports reuse reinitializes lazily on the next
	// Submit after Close.
	Close()
}
