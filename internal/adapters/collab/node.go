package collab

import (
	"context"

	"github.com/grindlemire/graft"
	"go.fanout.dev/fanout/internal/adapters/console"
	"go.fanout.dev/fanout/internal/adapters/env"
	"go.fanout.dev/fanout/internal/core/ports"
)

// NodeID is the unique identifier for the collaborators Graft node.
const NodeID graft.ID = "adapter.collaborators"

func init() {
	graft.Register(graft.Node[ports.Collaborators]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{env.NodeID, console.NodeID},
		Run: func(ctx context.Context) (ports.Collaborators, error) {
			source, err := graft.Dep[ports.EnvSource](ctx)
			if err != nil {
				return nil, err
			}
			sink, err := graft.Dep[ports.Sink](ctx)
			if err != nil {
				return nil, err
			}
			return NewPhases(source, sink), nil
		},
	})
}
