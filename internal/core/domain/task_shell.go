package domain

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/zerr"
)

// ShellCommandTask is a Task whose body is a command string invoked through
// the host shell (sh -c), rather than an argv exec'd directly, so a declared
// command can use pipes, redirects, globbing, and environment expansion the
// way a user typing it at a terminal would expect. Command is evaluated
// against the task's already-resolved inputs, so a command string can embed
// another task's result without any templating language of its own.
type ShellCommandTask struct {
	baseTask

	command     func(positional []any, keyword map[string]any) string
	workingDir  InternedString
	environment map[string]string

	cancelMu sync.Mutex
	cancel   context.CancelFunc
}

// NewShellCommand builds a Task that runs a fixed command string as a
// subprocess, through the host shell.
func NewShellCommand(name string, positional, keyword InputNode, defaultResult any, command string, workingDir string, environment map[string]string) Task {
	return NewShellCommandFunc(name, positional, keyword, defaultResult, func([]any, map[string]any) string {
		return command
	}, workingDir, environment)
}

// NewShellCommandFunc builds a Task whose command string is computed at run
// time from the task's resolved positional and keyword inputs, letting a
// command template on another task's result. workingDir is interned: large
// graphs routinely declare the same directory on many tasks, and a handle is
// cheaper to carry around than another string copy per task.
func NewShellCommandFunc(name string, positional, keyword InputNode, defaultResult any, command func(positional []any, keyword map[string]any) string, workingDir string, environment map[string]string) Task {
	return &ShellCommandTask{
		baseTask:    newBaseTask(name, positional, keyword, defaultResult),
		command:     command,
		workingDir:  NewInternedString(workingDir),
		environment: environment,
	}
}

// Run constructs and executes the subprocess. Stdout and stderr are captured
// in full rather than streamed, since the scheduler attributes output to a
// task only once it has finished.
func (t *ShellCommandTask) Run(ctx context.Context, positional []any, keyword map[string]any) (any, error) {
	cmdString := t.command(positional, keyword)
	if strings.TrimSpace(cmdString) == "" {
		return nil, nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	t.cancelMu.Lock()
	t.cancel = cancel
	t.cancelMu.Unlock()
	defer func() {
		t.cancelMu.Lock()
		t.cancel = nil
		t.cancelMu.Unlock()
		cancel()
	}()

	cmdEnv := resolveEnvironment(os.Environ(), t.environment)

	cmd := exec.CommandContext(runCtx, shellPath(cmdEnv), "-c", cmdString) //nolint:gosec // task-declared command
	if dir := t.workingDir.String(); dir != "" {
		cmd.Dir = dir
	}
	cmd.Env = cmdEnv

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if ok := asExitError(err, &exitErr); ok {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(zerr.Wrap(err, ErrShellCommandFailed.Error()), "exit_code", exitCode)
		if stderr.Len() > 0 {
			wrapped = zerr.With(wrapped, "stderr", strings.TrimSpace(stderr.String()))
		}
		return nil, wrapped
	}

	return strings.TrimSpace(stdout.String()), nil
}

// TryAbort cancels the in-flight subprocess, if one is running, and marks
// the task aborted. It is safe to call before Run starts or after it ends.
func (t *ShellCommandTask) TryAbort() {
	t.setStatus(StatusAborted)
	t.cancelMu.Lock()
	cancel := t.cancel
	t.cancelMu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// shellPath resolves the host shell to invoke commands through, honoring a
// task's own PATH override so a task can redirect which shell it runs under.
func shellPath(env []string) string {
	if lp, err := lookPath("sh", env); err == nil {
		return lp
	}
	return "/bin/sh"
}

func asExitError(err error, target **exec.ExitError) bool {
	if ee, ok := err.(*exec.ExitError); ok {
		*target = ee
		return true
	}
	return false
}

// resolveEnvironment merges the process environment with the task's
// declared overrides, giving the task's own entries priority.
func resolveEnvironment(sysEnv []string, taskEnv map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(taskEnv))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}
	for k, v := range taskEnv {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by PATH in
// env, so a task's environment overrides can redirect which binary a bare
// command name resolves to.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func isExecutable(file string) bool {
	d, err := os.Stat(file)
	if err != nil {
		return false
	}
	m := d.Mode()
	return !m.IsDir() && m&0o111 != 0
}
