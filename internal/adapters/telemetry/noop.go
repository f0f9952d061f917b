package telemetry

import (
	"context"
	"io"

	"go.trai.ch/taskgraph/internal/core/domain"
	"go.trai.ch/taskgraph/internal/core/ports"
)

// NoOpTelemetry is a no-op implementation of ports.Telemetry, used when no
// recording backend is configured.
type NoOpTelemetry struct{}

// NewNoOpTelemetry creates a new NoOpTelemetry.
func NewNoOpTelemetry() *NoOpTelemetry {
	return &NoOpTelemetry{}
}

// Record returns ctx unchanged alongside a no-op Vertex.
func (t *NoOpTelemetry) Record(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
	return ctx, &noOpVertex{}
}

// Close does nothing.
func (t *NoOpTelemetry) Close() error { return nil }

type noOpVertex struct{}

func (v *noOpVertex) Stdout() io.Writer { return io.Discard }

func (v *noOpVertex) Stderr() io.Writer { return io.Discard }

func (v *noOpVertex) Log(domain.LogLevel, string) {}

func (v *noOpVertex) Complete(error) {}
