package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"go.fanout.dev/fanout/internal/adapters/telemetry"
)

func TestOTelTracer_RecordsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tracer := telemetry.NewOTelTracer("test",
		sdktrace.WithSyncer(exporter),
	)

	ctx, root := tracer.Start(context.Background(), "build")
	root.SetAttribute("run_id", "abc")

	_, child := tracer.Start(ctx, "phase:deps")
	child.RecordError(errors.New("gendeps exploded"))
	child.SetAttribute("exit_code", 2)
	child.End()
	root.End()

	// Capture before Shutdown: InMemoryExporter.Shutdown clears its buffer.
	spans := exporter.GetSpans()
	require.NoError(t, tracer.Shutdown(context.Background()))
	require.Len(t, spans, 2)

	// Children export first; the phase span must be parented to build.
	assert.Equal(t, "phase:deps", spans[0].Name)
	assert.Equal(t, "build", spans[1].Name)
	assert.Equal(t, spans[1].SpanContext.SpanID(), spans[0].Parent.SpanID())
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "exception", spans[0].Events[0].Name)
}

func TestOTelTracer_NilErrorIsIgnored(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tracer := telemetry.NewOTelTracer("test", sdktrace.WithSyncer(exporter))

	_, span := tracer.Start(context.Background(), "noop")
	span.RecordError(nil)
	span.End()

	// Capture before Shutdown: InMemoryExporter.Shutdown clears its buffer.
	spans := exporter.GetSpans()
	require.NoError(t, tracer.Shutdown(context.Background()))
	require.Len(t, spans, 1)
	assert.Empty(t, spans[0].Events)
}

func TestNoop(t *testing.T) {
	tracer := telemetry.NewNoop()

	ctx := context.Background()
	got, span := tracer.Start(ctx, "anything")
	assert.Equal(t, ctx, got)

	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()

	assert.NoError(t, tracer.Shutdown(ctx))
}
