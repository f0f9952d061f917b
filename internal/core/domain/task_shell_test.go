package domain_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"go.trai.ch/taskgraph/internal/core/domain"
)

func TestShellCommandTask_RunSuccess(t *testing.T) {
	task := domain.NewShellCommand("greet", domain.Seq(), domain.Map(nil), nil, "echo hello", "", nil)

	result, err := task.Run(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if result != "hello" {
		t.Errorf("expected result %q, got %q", "hello", result)
	}
}

func TestShellCommandTask_ExitCodePropagates(t *testing.T) {
	task := domain.NewShellCommand("fail", domain.Seq(), domain.Map(nil), nil, "exit 3", "", nil)

	_, err := task.Run(context.Background(), nil, nil)
	if err == nil {
		t.Fatal("expected an error from a non-zero exit")
	}
	if !errors.Is(err, domain.ErrShellCommandFailed) {
		t.Errorf("expected errors.Is(err, ErrShellCommandFailed), got: %v", err)
	}
	if !strings.Contains(err.Error(), "exit status 3") {
		t.Errorf("expected error to mention the exit status, got: %v", err)
	}
}

func TestShellCommandTask_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	resolvedDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}

	task := domain.NewShellCommand("pwd", domain.Seq(), domain.Map(nil), nil, "pwd", resolvedDir, nil)

	result, err := task.Run(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if result != resolvedDir {
		t.Errorf("expected pwd output %q, got %q", resolvedDir, result)
	}
}

func TestShellCommandTask_TemplatedCommand(t *testing.T) {
	command := func(positional []any, _ map[string]any) string {
		return "echo " + positional[0].(string)
	}
	task := domain.NewShellCommandFunc("templated", domain.Seq(), domain.Map(nil), nil, command, "", nil)

	result, err := task.Run(context.Background(), []any{"templated-value"}, nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if result != "templated-value" {
		t.Errorf("expected templated result %q, got %q", "templated-value", result)
	}
}

func TestShellCommandTask_EnvironmentOverride(t *testing.T) {
	task := domain.NewShellCommand("env", domain.Seq(), domain.Map(nil), nil, `echo "$GREETING"`, "",
		map[string]string{"GREETING": "hi from task"})

	result, err := task.Run(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if result != "hi from task" {
		t.Errorf("expected %q, got %q", "hi from task", result)
	}
}
