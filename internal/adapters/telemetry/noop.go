package telemetry

import (
	"context"

	"go.fanout.dev/fanout/internal/core/ports"
)

// Noop is a Tracer that records nothing. Used in tests and when
// telemetry is disabled.
type Noop struct{}

// NewNoop creates a new Noop tracer.
func NewNoop() *Noop {
	return &Noop{}
}

// Start returns the context unchanged and a span that does nothing.
func (n *Noop) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

// Shutdown does nothing.
func (n *Noop) Shutdown(_ context.Context) error {
	return nil
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}
