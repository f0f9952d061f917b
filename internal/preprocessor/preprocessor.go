// Package preprocessor turns a raw task list and a target name list into a
// validated, identity-assigned Graph ready for the scheduler: names checked
// for uniqueness, targets checked for existence, input shapes checked,
// placeholders resolved to dependency edges, the dependency map checked for
// cycles, and the effective (dependency-cover) subset computed.
package preprocessor

import (
	"fmt"
	"strings"

	"go.trai.ch/taskgraph/internal/core/domain"
	"go.trai.ch/taskgraph/internal/graphutil"
	"go.trai.ch/zerr"
)

// Graph is the immutable result of preprocessing: identity-indexed and
// name-indexed task maps (each task carrying the dependency edges discovered
// from its placeholders), the target IDs, and the subset of task IDs
// reachable from the requested targets.
type Graph struct {
	Tasks     map[int]domain.Task
	ByName    map[string]domain.Task
	Targets   []int
	Effective map[int]bool
}

// Process validates rawTasks and targetNames and builds a Graph. It is
// deterministic and idempotent: calling it twice on equivalent input
// produces the same identity assignment, since identities are assigned in
// slice order.
func Process(rawTasks []domain.Task, targetNames []string) (*Graph, error) {
	byName := make(map[string]domain.Task, len(rawTasks))
	for _, t := range rawTasks {
		if _, exists := byName[t.Name()]; exists {
			msg := fmt.Sprintf("Found multiple tasks with name '%s'", t.Name())
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateTaskName, msg), "name", t.Name())
		}
		byName[t.Name()] = t
	}

	for i, t := range rawTasks {
		t.AssignID(i)
	}

	byID := make(map[int]domain.Task, len(rawTasks))
	for _, t := range rawTasks {
		byID[t.ID()] = t
	}

	targets := make([]int, 0, len(targetNames))
	for _, name := range targetNames {
		t, ok := byName[name]
		if !ok {
			msg := fmt.Sprintf("Unknown target task '%s'", name)
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownTarget, msg), "target", name)
		}
		targets = append(targets, t.ID())
	}

	for _, t := range rawTasks {
		if !t.Positional().IsSeq() {
			msg := fmt.Sprintf("Task '%s' has non-sequence positional inputs", t.Name())
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPositionalInputs, msg), "task", t.Name())
		}
		if !t.Keyword().IsMap() {
			msg := fmt.Sprintf("Task '%s' has non-mapping keyword inputs", t.Name())
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidKeywordInputs, msg), "task", t.Name())
		}
	}

	for _, t := range rawTasks {
		if err := resolvePlaceholders(t, byName); err != nil {
			return nil, err
		}
	}

	if err := checkCycles(rawTasks, targets, byID); err != nil {
		return nil, err
	}

	effective := graphutil.DependencyCover(targets, func(id int) []int {
		return byID[id].Dependencies()
	})

	return &Graph{
		Tasks:     byID,
		ByName:    byName,
		Targets:   targets,
		Effective: effective,
	}, nil
}

func resolvePlaceholders(t domain.Task, byName map[string]domain.Task) error {
	var resolveErr error
	resolve := func(p *domain.Placeholder) {
		if resolveErr != nil || p.IsResolved() {
			return
		}
		target, ok := byName[p.TargetName]
		if !ok {
			msg := fmt.Sprintf("Invalid task name '%s' used in the TaskResult of task '%s'.", p.TargetName, t.Name())
			resolveErr = zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownPlaceholderTarget, msg), "task", t.Name()), "target", p.TargetName)
			return
		}
		p.ResolveTo(target.ID())
		t.AddDependency(target.ID())
	}

	t.Positional().WalkPlaceholders(resolve)
	if resolveErr != nil {
		return resolveErr
	}
	t.Keyword().WalkPlaceholders(resolve)
	return resolveErr
}

func checkCycles(rawTasks []domain.Task, targets []int, byID map[int]domain.Task) error {
	reachable := graphutil.DependencyCover(targets, func(id int) []int {
		return byID[id].Dependencies()
	})

	nodes := make([]int, 0, len(reachable))
	for _, t := range rawTasks {
		if reachable[t.ID()] {
			nodes = append(nodes, t.ID())
		}
	}

	cyc, found := graphutil.DetectCycle(nodes, func(id int) []int {
		return byID[id].Dependencies()
	})
	if !found {
		return nil
	}

	names := make([]string, len(cyc.Path))
	for i, id := range cyc.Path {
		names[i] = byID[id].Name()
	}

	return zerr.With(
		zerr.Wrap(domain.ErrCyclicDependency, "Cyclic dependency in tasks: "+strings.Join(names, " -> ")),
		"cycle", names,
	)
}
