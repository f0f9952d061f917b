// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/taskgraph/internal/core/ports"
)

// Recorder implements ports.Telemetry, recording one progrock vertex per
// dispatched task.
type Recorder struct {
	tape *progrock.Tape
	rec  *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() ports.Telemetry {
	tape := progrock.NewTape()
	rec := progrock.NewRecorder(tape)
	return &Recorder{
		tape: tape,
		rec:  rec,
	}
}

// Record starts recording a new vertex for a dispatched task and stashes it
// on the returned context so downstream log calls can reach it without
// threading a Vertex through every call signature.
func (r *Recorder) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	vr := r.rec.Vertex(d, name)
	v := &Vertex{vertex: vr}
	for _, opt := range opts {
		opt(v)
	}
	return ports.ContextWithVertex(ctx, v), v
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.tape.Close()
}
