// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.fanout.dev/fanout/internal/core/domain"
)

// TaskRunner executes one build task as a subprocess.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type TaskRunner interface {
	// Run starts the descriptor's command, drains both of its output
	// channels concurrently and streams every line through the sink with
	// the task's identity prefix. The returned outcome carries the final
	// exit status; a non-zero exit is not an error at this layer, only a
	// failure to spawn the subprocess is.
	Run(ctx context.Context, task domain.TaskDescriptor) domain.TaskOutcome
}
