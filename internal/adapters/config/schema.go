// Package config loads a task graph from a declarative tasks.yaml file.
package config

// TasksFile is the top-level shape of tasks.yaml.
type TasksFile struct {
	// Targets lists the task names run by default when none are given on
	// the command line. Optional; an empty list means "run everything".
	Targets []string `yaml:"targets"`

	// Tasks maps each task's name to its definition.
	Tasks map[string]*TaskSpec `yaml:"tasks"`
}

// TaskSpec is the YAML definition of a single task. A task declaring Cmd
// runs as a subprocess; one that leaves Cmd empty runs as a pass-through
// whose result is its last resolved positional input, so it can gate its
// dependents without spawning anything.
//
// Any string value in Positional, Keyword, or Cmd of the form
// "@result:<name>" is a placeholder, substituted at dispatch time with the
// named task's result.
type TaskSpec struct {
	Positional  []any             `yaml:"positional"`
	Keyword     map[string]any    `yaml:"keyword"`
	Cmd         []string          `yaml:"cmd"`
	WorkingDir  string            `yaml:"workingDir"`
	Environment map[string]string `yaml:"environment"`
}
