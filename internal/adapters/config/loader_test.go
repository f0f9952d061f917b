package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskgraph/internal/adapters/config"
	"go.trai.ch/taskgraph/internal/core/domain"
)

func writeTasksFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o600))
}

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	writeTasksFile(t, dir, `
targets: ["sandwich"]
tasks:
  bread:
    cmd: ["echo", "Bread"]
  onion:
    cmd: ["echo", "Onion"]
  sandwich:
    positional: ["@result:bread", "@result:onion"]
    cmd: ["echo", "done"]
`)

	tasks, targets, err := config.NewLoader().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"sandwich"}, targets)
	require.Len(t, tasks, 3)

	names := make(map[string]domain.Task, len(tasks))
	for _, task := range tasks {
		names[task.Name()] = task
	}
	assert.Contains(t, names, "bread")
	assert.Contains(t, names, "onion")
	assert.Contains(t, names, "sandwich")

	sandwich := names["sandwich"]
	assert.True(t, sandwich.Positional().IsSeq())
	items := sandwich.Positional().Items()
	require.Len(t, items, 4) // 2 cmd args + 2 declared positional placeholders
	assert.True(t, items[2].IsPlaceholder())
	assert.Equal(t, "bread", items[2].PlaceholderValue().TargetName)
}

func TestLoad_PassThroughTaskHasNoCmd(t *testing.T) {
	dir := t.TempDir()
	writeTasksFile(t, dir, `
tasks:
  first:
    cmd: ["echo", "one"]
  gate:
    positional: ["@result:first"]
`)

	tasks, _, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	var gate domain.Task
	for _, task := range tasks {
		if task.Name() == "gate" {
			gate = task
		}
	}
	require.NotNil(t, gate)

	gate.AssignID(0)
	result, err := gate.Run(context.Background(), []any{"one"}, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "one", result)
}

func TestLoad_FileNotFound(t *testing.T) {
	dir := t.TempDir()
	_, _, err := config.NewLoader().Load(dir)
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoad_ParseError(t *testing.T) {
	dir := t.TempDir()
	writeTasksFile(t, dir, "tasks: [not, a, map]")

	_, _, err := config.NewLoader().Load(dir)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoad_DiscoversFromSubdirectory(t *testing.T) {
	root := t.TempDir()
	writeTasksFile(t, root, `
tasks:
  root-task:
    cmd: ["echo", "root"]
`)

	sub := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	tasks, _, err := config.NewLoader().Load(sub)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "root-task", tasks[0].Name())
}

func TestLoad_KeywordPlaceholder(t *testing.T) {
	dir := t.TempDir()
	writeTasksFile(t, dir, `
tasks:
  base:
    cmd: ["echo", "base"]
  dependent:
    keyword:
      from: "@result:base"
`)

	tasks, _, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	var dependent domain.Task
	for _, task := range tasks {
		if task.Name() == "dependent" {
			dependent = task
		}
	}
	require.NotNil(t, dependent)
	assert.True(t, dependent.Keyword().IsMap())
	entry, ok := dependent.Keyword().Entries()["from"]
	require.True(t, ok)
	assert.True(t, entry.IsPlaceholder())
	assert.Equal(t, "base", entry.PlaceholderValue().TargetName)
}
