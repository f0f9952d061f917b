// Package scheduler implements the single-threaded cooperative scheduler
// that drives a pluggable execution backend over a preprocessed task graph.
package scheduler

import (
	"context"
	"sort"

	"go.trai.ch/taskgraph/internal/core/domain"
	"go.trai.ch/taskgraph/internal/core/ports"
	"go.trai.ch/taskgraph/internal/preprocessor"
	"go.trai.ch/zerr"
)

// completionMessage is the value carried across the single completion
// channel from a worker goroutine back to the scheduler goroutine.
type completionMessage struct {
	task   domain.Task
	status domain.Status
}

// runtimeGraph is the scheduler-local view of the effective task set:
// incoming holds each task's remaining unresolved dependency IDs (mutated as
// dependencies complete), outgoing holds each task's dependents in the
// order they were declared.
type runtimeGraph struct {
	incoming map[int]map[int]bool
	outgoing map[int][]int
}

func newRuntimeGraph(graph *preprocessor.Graph) *runtimeGraph {
	rt := &runtimeGraph{
		incoming: make(map[int]map[int]bool, len(graph.Effective)),
		outgoing: make(map[int][]int, len(graph.Effective)),
	}

	ordered := effectiveIDsOrdered(graph)
	for _, id := range ordered {
		task := graph.Tasks[id]
		deps := make(map[int]bool, len(task.Dependencies()))
		for _, dep := range task.Dependencies() {
			if graph.Effective[dep] {
				deps[dep] = true
			}
		}
		rt.incoming[id] = deps
	}

	for _, id := range ordered {
		task := graph.Tasks[id]
		for _, dep := range task.Dependencies() {
			if graph.Effective[dep] {
				rt.outgoing[dep] = append(rt.outgoing[dep], id)
			}
		}
	}

	return rt
}

func effectiveIDsOrdered(graph *preprocessor.Graph) []int {
	ids := make([]int, 0, len(graph.Effective))
	for id := range graph.Effective {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Scheduler drives a ports.ExecutionBackend through the submit/acknowledge/close
// contract against a preprocessed graph. It holds no state across Run calls,
// so the same Scheduler can drive different backends on different runs.
type Scheduler struct {
	telemetry ports.Telemetry
}

// NewScheduler builds a Scheduler. telemetry may be a no-op implementation;
// it is never required for correctness.
func NewScheduler(telemetry ports.Telemetry) *Scheduler {
	return &Scheduler{telemetry: telemetry}
}

// Run dispatches the effective task set of graph against backend and blocks
// until every dispatched task has completed or, on first failure with
// continueOnFailure false, until in-progress tasks have been asked to abort.
// It never returns an error of its own: task failures are reported through
// task status, not through Run's return value, per the backend contract
// (errors from task bodies never escape as Go errors here).
func (s *Scheduler) Run(ctx context.Context, graph *preprocessor.Graph, backend ports.ExecutionBackend, continueOnFailure bool) {
	rt := newRuntimeGraph(graph)
	// Every effective task is dispatched at most once, so a buffer of that
	// size lets a backend post its completion without blocking: Inline posts
	// from this goroutine before Submit returns, and workers still finishing
	// after an early exit must not be left blocked on a send nobody reads.
	completions := make(chan completionMessage, len(graph.Effective))
	inProgress := make(map[int]bool)

	dispatch := func(id int) {
		task := graph.Tasks[id]
		_, vertex := s.telemetry.Record(ctx, task.Name())

		positional, keyword := resolveInputs(task, graph.Tasks)
		inProgress[id] = true

		onComplete := func(t domain.Task, status domain.Status) {
			var err error
			if status != domain.StatusSuccess {
				err = domainTaskError(t)
			}
			vertex.Complete(err)
			completions <- completionMessage{task: t, status: status}
		}

		backend.Submit(task, onComplete, positional, keyword)
	}

	for _, id := range effectiveIDsOrdered(graph) {
		if len(rt.incoming[id]) == 0 {
			dispatch(id)
		}
	}

	shouldAbort := false
	for len(inProgress) > 0 {
		msg := <-completions
		backend.Acknowledge(msg.task)
		delete(inProgress, msg.task.ID())

		if msg.status != domain.StatusSuccess {
			if !continueOnFailure {
				shouldAbort = true
				break
			}
			continue
		}

		for _, dependent := range rt.outgoing[msg.task.ID()] {
			delete(rt.incoming[dependent], msg.task.ID())
			if len(rt.incoming[dependent]) == 0 {
				dispatch(dependent)
			}
		}
	}

	if shouldAbort {
		for id := range inProgress {
			if abortable, ok := graph.Tasks[id].(domain.Abortable); ok {
				abortable.TryAbort()
			}
		}
	}

	backend.Close()
}

// resolveInputs substitutes every placeholder in task's declared inputs with
// the already-completed result of the task it references. The dependency
// contract guarantees every referenced task has finished successfully by the
// time its dependent is dispatched.
func resolveInputs(task domain.Task, tasks map[int]domain.Task) ([]any, map[string]any) {
	resolve := func(p *domain.Placeholder) any {
		return tasks[*p.ResolvedID].Result()
	}

	positional, _ := task.Positional().Resolve(resolve).([]any)
	keyword, _ := task.Keyword().Resolve(resolve).(map[string]any)
	return positional, keyword
}

func domainTaskError(t domain.Task) error {
	if t.Err() == "" {
		return nil
	}
	return zerr.New(t.Err())
}
