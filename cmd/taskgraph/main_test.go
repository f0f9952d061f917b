package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})
	return tmpDir
}

func TestRun_Success(t *testing.T) {
	tmpDir := chdirTemp(t)
	require.NoError(t, os.WriteFile(tmpDir+"/tasks.yaml", []byte(`
tasks:
  test:
    cmd: ["echo", "hello"]
`), 0o600))

	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"taskgraph", "run", "test"}

	assert.Equal(t, 0, run())
}

func TestRun_TaskFailureExitsNonZero(t *testing.T) {
	tmpDir := chdirTemp(t)
	require.NoError(t, os.WriteFile(tmpDir+"/tasks.yaml", []byte(`
tasks:
  test:
    cmd: ["false"]
`), 0o600))

	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"taskgraph", "run", "test"}

	assert.Equal(t, 1, run())
}

func TestRun_NoTasksFileExitsNonZero(t *testing.T) {
	chdirTemp(t)

	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"taskgraph", "run", "test"}

	assert.Equal(t, 1, run())
}

func TestRun_DefaultTargetsFromFile(t *testing.T) {
	tmpDir := chdirTemp(t)
	require.NoError(t, os.WriteFile(tmpDir+"/tasks.yaml", []byte(`
targets: ["test"]
tasks:
  test:
    cmd: ["echo", "hello"]
`), 0o600))

	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"taskgraph", "run"}

	assert.Equal(t, 0, run())
}
