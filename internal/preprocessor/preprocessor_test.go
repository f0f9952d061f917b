package preprocessor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskgraph/internal/core/domain"
	"go.trai.ch/taskgraph/internal/preprocessor"
)

func noopAction(name string, positional, keyword domain.InputNode) domain.Task {
	return domain.NewAction(name, positional, keyword, nil, func(context.Context, []any, map[string]any) (any, error) {
		return nil, nil
	})
}

func TestProcess_LinearDependency(t *testing.T) {
	onion := noopAction("onion", domain.Seq(), domain.Map(nil))
	bread := noopAction("bread", domain.Seq(), domain.Map(nil))
	sandwich := noopAction("sandwich", domain.Seq(
		domain.FromPlaceholder(domain.Result("bread")),
		domain.FromPlaceholder(domain.Result("onion")),
	), domain.Map(nil))

	graph, err := preprocessor.Process([]domain.Task{bread, sandwich, onion}, []string{"sandwich"})
	require.NoError(t, err)

	assert.Equal(t, 0, bread.ID())
	assert.Equal(t, 1, sandwich.ID())
	assert.Equal(t, 2, onion.ID())
	assert.ElementsMatch(t, []int{0, 2}, sandwich.Dependencies())
	assert.True(t, graph.Effective[bread.ID()])
	assert.True(t, graph.Effective[onion.ID()])
	assert.True(t, graph.Effective[sandwich.ID()])
}

func TestProcess_EffectiveSetExcludesUnreachable(t *testing.T) {
	unrelated := noopAction("unrelated", domain.Seq(), domain.Map(nil))
	target := noopAction("target", domain.Seq(), domain.Map(nil))

	graph, err := preprocessor.Process([]domain.Task{target, unrelated}, []string{"target"})
	require.NoError(t, err)

	assert.True(t, graph.Effective[target.ID()])
	assert.False(t, graph.Effective[unrelated.ID()])
}

func TestProcess_DuplicateNames(t *testing.T) {
	a := noopAction("task1", domain.Seq(), domain.Map(nil))
	b := noopAction("task1", domain.Seq(), domain.Map(nil))

	_, err := preprocessor.Process([]domain.Task{a, b}, []string{"task1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateTaskName)
	assert.Contains(t, err.Error(), "Found multiple tasks with name 'task1'")
}

func TestProcess_UnknownTarget(t *testing.T) {
	a := noopAction("task1", domain.Seq(), domain.Map(nil))

	_, err := preprocessor.Process([]domain.Task{a}, []string{"missing"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownTarget)
}

func TestProcess_UnknownPlaceholderTarget(t *testing.T) {
	task1 := noopAction("task1", domain.Seq(domain.FromPlaceholder(domain.Result("task2"))), domain.Map(nil))

	_, err := preprocessor.Process([]domain.Task{task1}, []string{"task1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownPlaceholderTarget)
	assert.Contains(t, err.Error(), "Invalid task name 'task2' used in the TaskResult of task 'task1'.")
}

func TestProcess_InvalidPositionalInputs(t *testing.T) {
	task1 := noopAction("task1", domain.Scalar("not a sequence"), domain.Map(nil))

	_, err := preprocessor.Process([]domain.Task{task1}, []string{"task1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPositionalInputs)
}

func TestProcess_InvalidKeywordInputs(t *testing.T) {
	task1 := noopAction("task1", domain.Seq(), domain.Scalar("not a mapping"))

	_, err := preprocessor.Process([]domain.Task{task1}, []string{"task1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidKeywordInputs)
}

func TestProcess_CyclicDependency(t *testing.T) {
	a := noopAction("a", domain.Seq(domain.FromPlaceholder(domain.Result("b"))), domain.Map(nil))
	b := noopAction("b", domain.Seq(domain.FromPlaceholder(domain.Result("c"))), domain.Map(nil))
	c := noopAction("c", domain.Seq(domain.FromPlaceholder(domain.Result("a"))), domain.Map(nil))

	_, err := preprocessor.Process([]domain.Task{a, b, c}, []string{"a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCyclicDependency)
	assert.Contains(t, err.Error(), "Cyclic dependency in tasks: ")
	assert.Contains(t, err.Error(), " -> ")
}

func TestProcess_IdempotentIdentityAssignment(t *testing.T) {
	a := noopAction("a", domain.Seq(), domain.Map(nil))
	b := noopAction("b", domain.Seq(domain.FromPlaceholder(domain.Result("a"))), domain.Map(nil))

	_, err := preprocessor.Process([]domain.Task{a, b}, []string{"b"})
	require.NoError(t, err)
	firstA, firstB := a.ID(), b.ID()

	a2 := noopAction("a", domain.Seq(), domain.Map(nil))
	b2 := noopAction("b", domain.Seq(domain.FromPlaceholder(domain.Result("a"))), domain.Map(nil))
	_, err = preprocessor.Process([]domain.Task{a2, b2}, []string{"b"})
	require.NoError(t, err)

	assert.Equal(t, firstA, a2.ID())
	assert.Equal(t, firstB, b2.ID())
}
