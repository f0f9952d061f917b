package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/taskgraph/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the tasks file Loader discovers.
const FileName = "tasks.yaml"

const placeholderPrefix = "@result:"

// Loader implements ports.ConfigLoader by discovering and parsing a
// tasks.yaml file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load walks up from cwd looking for tasks.yaml, parses it, and builds the
// declared tasks. The returned targets are the file's declared Targets; an
// empty Targets list means "run everything", left for the caller to resolve.
func (l *Loader) Load(cwd string) ([]domain.Task, []string, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, nil, err
	}

	// #nosec G304 -- configPath is discovered relative to cwd, not user input
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file TasksFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	baseDir := filepath.Dir(configPath)

	names := make([]string, 0, len(file.Tasks))
	for name := range file.Tasks {
		names = append(names, name)
	}
	// Sort is unnecessary for correctness (the preprocessor assigns IDs in
	// whatever order Load returns them), but a deterministic build order
	// makes a diff between two runs of the same file meaningful.
	sort.Strings(names)

	tasks := make([]domain.Task, 0, len(names))
	for _, name := range names {
		tasks = append(tasks, buildTask(name, file.Tasks[name], baseDir))
	}

	return tasks, file.Targets, nil
}

// findConfiguration walks up from cwd looking for FileName, the way a build
// tool locates its project root from any subdirectory.
func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	// A relative cwd such as "." has no parent to walk to until it is made
	// absolute.
	if abs, err := filepath.Abs(cwd); err == nil {
		currentDir = abs
	}
	for {
		candidate := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// buildTask converts a TaskSpec into a domain.Task. A spec with a non-empty
// Cmd becomes a shell task whose command string is rebuilt from its resolved
// positional inputs at dispatch time; an empty Cmd becomes a pass-through
// task whose result is its last resolved positional input, letting a task
// exist purely to gate its dependents.
func buildTask(name string, spec *TaskSpec, baseDir string) domain.Task {
	workingDir := spec.WorkingDir
	if workingDir != "" && !filepath.IsAbs(workingDir) {
		workingDir = filepath.Join(baseDir, workingDir)
	}

	keyword := domain.Map(convertMapping(spec.Keyword))

	if len(spec.Cmd) == 0 {
		positional := domain.Seq(convertSeq(spec.Positional)...)
		return domain.NewAction(name, positional, keyword, nil, passThrough)
	}

	cmdNodes := make([]domain.InputNode, len(spec.Cmd))
	for i, arg := range spec.Cmd {
		cmdNodes[i] = convertValue(arg)
	}
	extra := convertSeq(spec.Positional)
	positional := domain.Seq(append(cmdNodes, extra...)...)

	// cmd's declared tokens become the task's own leading positional inputs
	// so a token may itself be a placeholder; at dispatch time they are
	// re-joined into a single command string run through the host shell,
	// which is what lets a declared command use pipes, redirects, or
	// globbing rather than being limited to a literal argv.
	cmdLen := len(spec.Cmd)
	command := func(positional []any, _ map[string]any) string {
		words := make([]string, cmdLen)
		for i := 0; i < cmdLen; i++ {
			words[i] = fmt.Sprint(positional[i])
		}
		return strings.Join(words, " ")
	}

	return domain.NewShellCommandFunc(name, positional, keyword, nil, command, workingDir, spec.Environment)
}

func passThrough(_ context.Context, positional []any, _ map[string]any) (any, error) {
	if len(positional) == 0 {
		return nil, nil
	}
	return positional[len(positional)-1], nil
}

func convertSeq(items []any) []domain.InputNode {
	nodes := make([]domain.InputNode, len(items))
	for i, item := range items {
		nodes[i] = convertValue(item)
	}
	return nodes
}

func convertMapping(entries map[string]any) map[string]domain.InputNode {
	if len(entries) == 0 {
		return nil
	}
	nodes := make(map[string]domain.InputNode, len(entries))
	for k, v := range entries {
		nodes[k] = convertValue(v)
	}
	return nodes
}

// convertValue converts a YAML-decoded value into an InputNode, recognizing
// the "@result:<name>" string form as a placeholder referencing another
// task's result.
func convertValue(v any) domain.InputNode {
	switch val := v.(type) {
	case string:
		if name, ok := strings.CutPrefix(val, placeholderPrefix); ok {
			return domain.FromPlaceholder(domain.Result(name))
		}
		return domain.Scalar(val)
	case []any:
		return domain.Seq(convertSeq(val)...)
	case map[string]any:
		return domain.Map(convertMapping(val))
	default:
		return domain.Scalar(val)
	}
}
