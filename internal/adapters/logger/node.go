package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/taskgraph/internal/core/ports"
)

const NodeID graft.ID = "adapter.logger"

// init registers the single Logger shared by the App and main, so run
// summaries and errors land on one consistent sink.
func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}
