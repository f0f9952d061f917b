// Package app implements the application layer for taskgraph.
package app

import (
	"context"
	"errors"
	"runtime"

	"go.trai.ch/taskgraph/internal/backend"
	"go.trai.ch/taskgraph/internal/core/domain"
	"go.trai.ch/taskgraph/internal/core/ports"
	"go.trai.ch/taskgraph/internal/engine/scheduler"
	"go.trai.ch/taskgraph/internal/runner"
	"go.trai.ch/zerr"
)

// RunOptions configures a single App.Run invocation.
type RunOptions struct {
	// ContinueOnFailure keeps dispatching independent tasks after one fails,
	// instead of aborting the rest of the in-flight run.
	ContinueOnFailure bool
	// Sequential runs every task inline, one at a time, instead of against
	// a worker pool.
	Sequential bool
	// Workers sizes the worker pool when Sequential is false. Zero means
	// runtime.NumCPU().
	Workers int
}

// App wires a loaded task graph to a scheduler and reports the outcome.
type App struct {
	configLoader ports.ConfigLoader
	scheduler    *scheduler.Scheduler
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, sched *scheduler.Scheduler, logger ports.Logger) *App {
	return &App{configLoader: loader, scheduler: sched, logger: logger}
}

// Run loads the task graph from the current directory, resolves targetNames
// against it (falling back to the file's declared defaults, then to every
// task, if empty), and drives the run to completion. It returns
// domain.ErrRunFailed if any effective task failed.
func (a *App) Run(ctx context.Context, targetNames []string, opts RunOptions) error {
	tasks, defaultTargets, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load tasks")
	}

	targets := targetNames
	if len(targets) == 0 {
		targets = defaultTargets
	}

	r, err := runner.New(tasks, a.newBackend(opts), a.scheduler, targets...)
	if err != nil {
		return zerr.Wrap(err, "failed to build task graph")
	}

	r.Run(ctx, opts.ContinueOnFailure)

	a.logger.Info(r.SuccessSummary())

	if len(r.FailedTasks()) > 0 {
		a.logger.Error(errors.New(r.ErrorSummary()))
		return domain.ErrRunFailed
	}

	return nil
}

func (a *App) newBackend(opts RunOptions) ports.ExecutionBackend {
	if opts.Sequential {
		return backend.NewInline()
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return backend.NewBoundedPool(workers, false)
}
