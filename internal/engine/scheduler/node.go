package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.fanout.dev/fanout/internal/adapters/logger"
	"go.fanout.dev/fanout/internal/adapters/shell"
	"go.fanout.dev/fanout/internal/adapters/telemetry"
	"go.fanout.dev/fanout/internal/core/ports"
)

// NodeID is the unique identifier for the worker pool Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[ports.Pool]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (ports.Pool, error) {
			runner, err := graft.Dep[ports.TaskRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewPool(runner, log, tracer), nil
		},
	})
}
