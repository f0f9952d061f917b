// Package runner glues the preprocessor and scheduler into the facade users
// interact with: build once, run (possibly repeatedly), inspect per-task
// outcomes, and format human-readable summaries.
package runner

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.trai.ch/taskgraph/internal/core/domain"
	"go.trai.ch/taskgraph/internal/core/ports"
	"go.trai.ch/taskgraph/internal/engine/scheduler"
	"go.trai.ch/taskgraph/internal/preprocessor"
)

// Runner owns a preprocessed task graph and drives it against a backend.
// Preprocessing happens eagerly in New, so graph errors surface at
// construction rather than on the first Run.
type Runner struct {
	graph     *preprocessor.Graph
	backend   ports.ExecutionBackend
	scheduler *scheduler.Scheduler

	succeeded []string
	failed    []string
	skipped   []string
}

// New preprocesses tasks against targets (all task names, if targets is
// empty) and returns a Runner ready to Run against backend. sched is shared
// across Runners and across repeated Run calls; it carries no per-graph
// state of its own.
func New(tasks []domain.Task, backend ports.ExecutionBackend, sched *scheduler.Scheduler, targets ...string) (*Runner, error) {
	if len(targets) == 0 {
		targets = make([]string, len(tasks))
		for i, t := range tasks {
			targets[i] = t.Name()
		}
	}
	if len(targets) == 0 {
		return nil, domain.ErrNoTargetsSpecified
	}

	graph, err := preprocessor.Process(tasks, targets)
	if err != nil {
		return nil, err
	}

	return &Runner{
		graph:     graph,
		backend:   backend,
		scheduler: sched,
	}, nil
}

// Run resets every task to its initial state, drives the scheduler to
// completion, and classifies each effective task into succeeded, failed, or
// skipped (which also absorbs aborted tasks, per the three-bucket
// classification the external summary format reports).
func (r *Runner) Run(ctx context.Context, continueOnFailure bool) {
	for _, t := range r.graph.Tasks {
		t.Reset()
	}

	r.scheduler.Run(ctx, r.graph, r.backend, continueOnFailure)

	r.succeeded = nil
	r.failed = nil
	r.skipped = nil

	for _, id := range effectiveIDsSorted(r.graph) {
		task := r.graph.Tasks[id]
		switch task.Status() {
		case domain.StatusSuccess:
			r.succeeded = append(r.succeeded, task.Name())
		case domain.StatusFailure:
			r.failed = append(r.failed, task.Name())
		default: // StatusSkipped, StatusAborted
			r.skipped = append(r.skipped, task.Name())
		}
	}
}

// GetTask looks up a task of the graph by name, whether or not it is in the
// effective set.
func (r *Runner) GetTask(name string) (domain.Task, error) {
	task, ok := r.graph.ByName[name]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

// SucceededTasks, FailedTasks, and SkippedTasks return the task names in
// each bucket from the most recent Run, in effective-task ID order.
func (r *Runner) SucceededTasks() []string { return r.succeeded }
func (r *Runner) FailedTasks() []string    { return r.failed }
func (r *Runner) SkippedTasks() []string   { return r.skipped }

// SuccessSummary renders one line per non-empty bucket followed by one
// "<name> : <STATUS>" line per effective task.
func (r *Runner) SuccessSummary() string {
	total := len(r.succeeded) + len(r.failed) + len(r.skipped)

	var b strings.Builder
	writeBucketLine(&b, len(r.succeeded), total, "succeeded")
	writeBucketLine(&b, len(r.failed), total, "failed")
	writeBucketLine(&b, len(r.skipped), total, "skipped")

	for _, id := range effectiveIDsSorted(r.graph) {
		task := r.graph.Tasks[id]
		fmt.Fprintf(&b, " %s : %s\n", task.Name(), task.Status())
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeBucketLine(b *strings.Builder, count, total int, bucket string) {
	if count == 0 {
		return
	}
	fmt.Fprintf(b, "%d/%d tasks %s.\n", count, total, bucket)
}

// ErrorSummary concatenates one "name:\n<error>\n--------------------" block
// per failed task, or reports that none failed.
func (r *Runner) ErrorSummary() string {
	if len(r.failed) == 0 {
		return "No failed task."
	}

	var b strings.Builder
	for _, name := range r.failed {
		task := r.graph.ByName[name]
		fmt.Fprintf(&b, "%s:\n%s\n--------------------\n", name, task.Err())
	}
	return strings.TrimRight(b.String(), "\n")
}

func effectiveIDsSorted(graph *preprocessor.Graph) []int {
	ids := make([]int, 0, len(graph.Effective))
	for id := range graph.Effective {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
