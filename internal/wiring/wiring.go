// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/taskgraph/internal/adapters/config"
	_ "go.trai.ch/taskgraph/internal/adapters/logger"
	_ "go.trai.ch/taskgraph/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/taskgraph/internal/app"
	_ "go.trai.ch/taskgraph/internal/engine/scheduler"
)
