package app

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// recordingProcessor flags whether the provider shut it down.
type recordingProcessor struct {
	shutdown bool
}

func (p *recordingProcessor) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {}
func (p *recordingProcessor) OnEnd(s sdktrace.ReadOnlySpan)                            {}
func (p *recordingProcessor) ForceFlush(ctx context.Context) error                     { return nil }
func (p *recordingProcessor) Shutdown(ctx context.Context) error {
	p.shutdown = true
	return nil
}

func TestShutdownTracingStopsProvider(t *testing.T) {
	proc := &recordingProcessor{}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(proc))

	a := &App{tracerProvider: tp}
	a.shutdownTracing(context.Background())

	if !proc.shutdown {
		t.Fatal("shutdownTracing must shut down the tracer provider")
	}
}

func TestShutdownTracingWithoutProvider(t *testing.T) {
	// Tracing disabled leaves no provider; shutdown must be a no-op.
	a := &App{}
	a.shutdownTracing(context.Background())
}
