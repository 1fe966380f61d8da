package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// PoolMeta contains metadata about a status pool for telemetry purposes.
type PoolMeta struct {
	Pool    string // Pool name (required)
	Unit    string // Owning unit or instance (may be empty)
	Version string // Application version (optional)
}

// SpanName returns the deterministic span name for commits of this pool.
// Format: status.commit.<unit>.<pool> or status.commit.<pool>
func (m PoolMeta) SpanName() string {
	if m.Unit != "" {
		return "status.commit." + m.Unit + "." + m.Pool
	}
	return "status.commit." + m.Pool
}

// PoolID returns the fully qualified pool identifier.
func (m PoolMeta) PoolID() string {
	if m.Unit != "" {
		return m.Unit + "/" + m.Pool
	}
	return m.Pool
}

// Tracer wraps OpenTelemetry tracing with commit-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: StartSpan must honor cancellation/deadlines and return ctx.Err() when canceled.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a pool commit.
	StartSpan(ctx context.Context, meta PoolMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// newTracer creates a new Tracer wrapping the given OpenTelemetry tracer.
func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with pool metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta PoolMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("pool.id", meta.PoolID()),
		attribute.String("pool.name", meta.Pool),
		attribute.Bool("commit.error", false), // Will be updated in EndSpan if error
	}

	if meta.Unit != "" {
		attrs = append(attrs, attribute.String("pool.unit", meta.Unit))
	}
	if meta.Version != "" {
		attrs = append(attrs, attribute.String("pool.version", meta.Version))
	}

	ctx, span := t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	return ctx, span
}

// EndSpan ends the span and records the error status if present.
func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("commit.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

// newNoopTracer creates a no-op tracer.
func newNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta PoolMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, err error) {
	span.End()
}
