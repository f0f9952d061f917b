package domain

import "go.trai.ch/zerr"

// Fatal errors are raised by the preprocessor for malformed graphs and abort
// construction before any task runs.
var (
	// ErrDuplicateTaskName is returned when two tasks share a name.
	ErrDuplicateTaskName = zerr.New("found multiple tasks with the same name")

	// ErrUnknownTarget is returned when a requested target is not in the task list.
	ErrUnknownTarget = zerr.New("unknown target task")

	// ErrInvalidPositionalInputs is returned when a task's positional inputs are not a sequence.
	ErrInvalidPositionalInputs = zerr.New("positional inputs must be a sequence")

	// ErrInvalidKeywordInputs is returned when a task's keyword inputs are not a mapping.
	ErrInvalidKeywordInputs = zerr.New("keyword inputs must be a mapping")

	// ErrUnknownPlaceholderTarget is returned when a ResultPlaceholder references an unknown task name.
	ErrUnknownPlaceholderTarget = zerr.New("invalid task name used in a result placeholder")

	// ErrCyclicDependency is returned when the dependency graph contains a cycle.
	ErrCyclicDependency = zerr.New("cyclic dependency in tasks")
)

// Domain errors are raised by library misuse at run time and are always
// recoverable by the caller.
var (
	// ErrTaskNotFound is returned by Runner.GetTask for an unknown name.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrNoTargetsSpecified is returned by runner.New when no targets are given
	// and the task list is empty, so there is no task to default to.
	ErrNoTargetsSpecified = zerr.New("no target tasks specified")

	// ErrShellCommandFailed is returned by ShellCommandTask.Run when the subprocess exits non-zero.
	ErrShellCommandFailed = zerr.New("shell command failed")

	// ErrConfigNotFound is returned when no tasks file can be located.
	ErrConfigNotFound = zerr.New("no tasks file found")

	// ErrConfigReadFailed is returned when a located tasks file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read tasks file")

	// ErrConfigParseFailed is returned when a tasks file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse tasks file")

	// ErrRunFailed is returned by App.Run when one or more effective tasks
	// failed, so the CLI can map it to a non-zero exit code.
	ErrRunFailed = zerr.New("one or more tasks failed")
)
