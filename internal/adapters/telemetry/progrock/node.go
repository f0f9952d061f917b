package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskgraph/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the telemetry adapter node.
	NodeID graft.ID = "adapter.telemetry"
)

// init registers the recorder the scheduler records one vertex against per
// dispatched task, regardless of which backend runs that task's body.
func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return New(), nil
		},
	})
}
