package ports

import "go.trai.ch/taskgraph/internal/core/domain"

// ConfigLoader defines the interface for loading a declarative task graph
// definition from a working directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads a task graph definition rooted at cwd and returns the
	// tasks it declares along with the default target names.
	Load(cwd string) (tasks []domain.Task, targets []string, err error)
}
