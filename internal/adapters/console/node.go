package console

import (
	"context"

	"github.com/grindlemire/graft"
	"go.fanout.dev/fanout/internal/core/ports"
)

// NodeID is the unique identifier for the console sink Graft node.
const NodeID graft.ID = "adapter.sink"

func init() {
	graft.Register(graft.Node[ports.Sink]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Sink, error) {
			return New(nil, nil), nil
		},
	})
}
