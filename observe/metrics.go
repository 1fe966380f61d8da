package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jonwraymond/statuspool/status"
)

// Metrics records commit metrics for status pools.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordCommit records a pool commit with the forwarded severity,
	// duration, and error status.
	RecordCommit(ctx context.Context, meta PoolMeta, severity status.Severity, duration time.Duration, err error)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	totalCount, err := meter.Int64Counter(
		"status.commit.total",
		metric.WithDescription("Total number of pool commits forwarded to the sink"),
		metric.WithUnit("{commit}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"status.commit.errors",
		metric.WithDescription("Total number of pool commits the sink rejected"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"status.commit.duration_ms",
		metric.WithDescription("Pool commit duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		totalCount:   totalCount,
		errorCount:   errorCount,
		durationHist: durationHist,
	}, nil
}

// RecordCommit records metrics for a pool commit.
func (m *metricsImpl) RecordCommit(ctx context.Context, meta PoolMeta, severity status.Severity, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("pool.id", meta.PoolID()),
		attribute.String("pool.name", meta.Pool),
		attribute.String("status.severity", severity.String()),
	}

	if meta.Unit != "" {
		attrs = append(attrs, attribute.String("pool.unit", meta.Unit))
	}

	opt := metric.WithAttributes(attrs...)

	// Always increment total counter
	m.totalCount.Add(ctx, 1, opt)

	// Increment error counter on failure
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}

	// Record duration in milliseconds
	durationMs := float64(duration.Milliseconds())
	m.durationHist.Record(ctx, durationMs, opt)
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordCommit(ctx context.Context, meta PoolMeta, severity status.Severity, duration time.Duration, err error) {
}
