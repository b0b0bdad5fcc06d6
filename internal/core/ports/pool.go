package ports

import (
	"context"

	"go.fanout.dev/fanout/internal/core/domain"
)

// Pool schedules a batch of build tasks under a concurrency limit.
//
//go:generate mockgen -source=pool.go -destination=mocks/mock_pool.go -package=mocks
type Pool interface {
	// RunBatch runs every task with at most jobs in flight at any instant
	// (jobs is clamped to at least 1) and returns only after all tasks
	// have completed. Outcomes are ordered by submission; a failing task
	// never prevents a sibling from running or reporting.
	RunBatch(ctx context.Context, tasks []domain.TaskDescriptor, jobs int) domain.BatchResult
}
