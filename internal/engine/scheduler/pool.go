// Package scheduler implements the bounded worker pool for build batches.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"go.fanout.dev/fanout/internal/core/domain"
	"go.fanout.dev/fanout/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// TaskStatus represents the status of a task.
type TaskStatus string

const (
	// StatusPending indicates the task is waiting for a worker slot.
	StatusPending TaskStatus = "Pending"
	// StatusRunning indicates the task is currently executing.
	StatusRunning TaskStatus = "Running"
	// StatusCompleted indicates the task finished successfully.
	StatusCompleted TaskStatus = "Completed"
	// StatusFailed indicates the task execution failed.
	StatusFailed TaskStatus = "Failed"
)

// Pool runs batches of build tasks through the task runner with bounded
// parallelism. Tasks within a batch are independent; the pool never
// cancels siblings when one fails, so every submitted task reports an
// outcome.
type Pool struct {
	runner ports.TaskRunner
	logger ports.Logger
	tracer ports.Tracer

	mu         sync.RWMutex
	taskStatus map[domain.Identity]TaskStatus
}

// NewPool creates a new Pool.
func NewPool(runner ports.TaskRunner, logger ports.Logger, tracer ports.Tracer) *Pool {
	return &Pool{
		runner:     runner,
		logger:     logger,
		tracer:     tracer,
		taskStatus: make(map[domain.Identity]TaskStatus),
	}
}

// RunBatch executes every task with at most jobs subprocesses in flight.
// A configured limit below 1 is clamped to 1 to guarantee forward
// progress. The batch always runs to completion and outcomes are ordered
// by submission, regardless of completion order across workers.
func (p *Pool) RunBatch(ctx context.Context, tasks []domain.TaskDescriptor, jobs int) domain.BatchResult {
	if jobs < 1 {
		jobs = 1
	}

	p.initStatuses(tasks)
	p.logger.Info(fmt.Sprintf("running %d build tasks with %d workers", len(tasks), jobs))

	outcomes := make(domain.BatchResult, len(tasks))

	var g errgroup.Group
	g.SetLimit(jobs)

	for i, task := range tasks {
		g.Go(func() error {
			p.updateStatus(task.Identity, StatusRunning)

			_, span := p.tracer.Start(ctx, task.Identity.String())
			outcome := p.runner.Run(ctx, task)
			span.SetAttribute("exit_code", outcome.ExitCode)
			if outcome.Failed() {
				span.RecordError(outcome.Err)
				p.updateStatus(task.Identity, StatusFailed)
			} else {
				p.updateStatus(task.Identity, StatusCompleted)
			}
			span.End()

			outcomes[i] = outcome

			// Failures are carried in the outcome, never returned: an
			// error here would cancel the remaining group slots.
			return nil
		})
	}

	_ = g.Wait()
	return outcomes
}

// Status returns the last observed status of a task.
func (p *Pool) Status(id domain.Identity) TaskStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.taskStatus[id]
}

func (p *Pool) initStatuses(tasks []domain.TaskDescriptor) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, task := range tasks {
		p.taskStatus[task.Identity] = StatusPending
	}
}

func (p *Pool) updateStatus(id domain.Identity, status TaskStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.taskStatus[id] = status
}
