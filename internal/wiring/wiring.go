// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.fanout.dev/fanout/internal/adapters/collab"
	_ "go.fanout.dev/fanout/internal/adapters/config"
	_ "go.fanout.dev/fanout/internal/adapters/console"
	_ "go.fanout.dev/fanout/internal/adapters/env"
	_ "go.fanout.dev/fanout/internal/adapters/logger"
	_ "go.fanout.dev/fanout/internal/adapters/shell"
	_ "go.fanout.dev/fanout/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.fanout.dev/fanout/internal/app"
	_ "go.fanout.dev/fanout/internal/engine/scheduler"
)
