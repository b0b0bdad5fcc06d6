package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.fanout.dev/fanout/internal/adapters/collab"
	"go.fanout.dev/fanout/internal/adapters/config"
	"go.fanout.dev/fanout/internal/adapters/env"
	"go.fanout.dev/fanout/internal/adapters/logger"
	"go.fanout.dev/fanout/internal/adapters/telemetry"
	"go.fanout.dev/fanout/internal/core/ports"
	"go.fanout.dev/fanout/internal/engine/scheduler"
)

// Components bundles the fully wired application for the entry point.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			collab.NodeID,
			scheduler.NodeID,
			env.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			collaborators, err := graft.Dep[ports.Collaborators](ctx)
			if err != nil {
				return nil, err
			}
			pool, err := graft.Dep[ports.Pool](ctx)
			if err != nil {
				return nil, err
			}
			source, err := graft.Dep[ports.EnvSource](ctx)
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
			return &Components{
				App:    New(loader, collaborators, pool, source, log, tracer),
				Logger: log,
				Tracer: tracer,
			}, nil
		},
	})
}
