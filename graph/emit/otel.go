package emit

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/nwidger/depgraph/graph"
)

// OTelEmitter turns each graph.Event into a completed OpenTelemetry
// span — one per node resolution or lifecycle transition.
type OTelEmitter struct {
	tracer trace.Tracer
}

// NewOTelEmitter creates an OTelEmitter backed by tracer.
func NewOTelEmitter(tracer trace.Tracer) *OTelEmitter {
	return &OTelEmitter{tracer: tracer}
}

// Emit implements Emitter.
func (o *OTelEmitter) Emit(event graph.Event) {
	name := "<root>"
	if event.Dependency != nil {
		name = event.Dependency.Name()
	}

	ctx, span := o.tracer.Start(context.Background(), name,
		trace.WithTimestamp(event.TimeStart))
	defer span.End(trace.WithTimestamp(event.TimeEnd))
	_ = ctx

	span.SetAttributes(
		attribute.String("depgraph.node", name),
		attribute.String("depgraph.execution_id", event.ExecutionID),
	)
	if event.Err != nil {
		span.SetStatus(codes.Error, event.Err.Error())
		span.RecordError(fmt.Errorf("%w", event.Err))
	}
}

// Flush force-flushes the globally registered TracerProvider, if it
// supports flushing (the SDK provider does; the no-op one does not).
func Flush(ctx context.Context) error {
	tp := otel.GetTracerProvider()
	type flusher interface {
		ForceFlush(context.Context) error
	}
	if f, ok := tp.(flusher); ok {
		return f.ForceFlush(ctx)
	}
	return nil
}
