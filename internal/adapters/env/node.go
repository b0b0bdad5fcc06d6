package env

import (
	"context"

	"github.com/grindlemire/graft"
	"go.fanout.dev/fanout/internal/adapters/config"
	"go.fanout.dev/fanout/internal/core/ports"
)

// NodeID is the unique identifier for the environment source Graft node.
const NodeID graft.ID = "adapter.env"

func init() {
	graft.Register(graft.Node[ports.EnvSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.EnvSource, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			root, err := loader.DiscoverRoot(".")
			if err != nil {
				return nil, err
			}
			return New(root), nil
		},
	})
}
