package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.fanout.dev/fanout/internal/adapters/console"
	"go.fanout.dev/fanout/internal/adapters/logger"
	"go.fanout.dev/fanout/internal/core/ports"
)

// NodeID is the unique identifier for the task runner Graft node.
const NodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.TaskRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{console.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.TaskRunner, error) {
			sink, err := graft.Dep[ports.Sink](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(sink, log), nil
		},
	})
}
