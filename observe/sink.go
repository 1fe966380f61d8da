package observe

import (
	"context"
	"time"

	"github.com/jonwraymond/statuspool/status"
)

// InstrumentSink wraps a status.Sink with tracing, metrics, and logging.
// Every forwarded report becomes one span, one metrics sample, and one
// structured log line; errors from the wrapped sink are recorded and
// propagated unchanged.
//
// Contract:
//   - Concurrency: the returned sink is as safe as the wrapped one.
//   - Ownership: reports are passed through without modification.
func InstrumentSink(next status.Sink, meta PoolMeta, tracer Tracer, metrics Metrics, logger Logger) status.Sink {
	poolLogger := logger.WithPool(meta)

	return status.SinkFunc(func(report status.Report) error {
		ctx, span := tracer.StartSpan(context.Background(), meta)

		start := time.Now()
		err := next.Update(report)
		duration := time.Since(start)

		tracer.EndSpan(span, err)
		metrics.RecordCommit(ctx, meta, report.Severity, duration, err)

		fields := []Field{
			{Key: "status.severity", Value: report.Severity.String()},
			{Key: "status.message", Value: report.Message},
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
		}

		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			poolLogger.Error(ctx, "status commit failed", fields...)
		} else {
			poolLogger.Info(ctx, "status committed", fields...)
		}

		return err
	})
}

// SinkFromObserver wraps a status.Sink using an Observer's telemetry
// primitives. This is a convenience function for common use cases.
func SinkFromObserver(obs Observer, meta PoolMeta, next status.Sink) (status.Sink, error) {
	tracer := newTracer(obs.Tracer())

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return InstrumentSink(next, meta, tracer, metrics, obs.Logger()), nil
}

// NewLogSink adapts a Logger into a status.LogSink so per-member log
// lines emitted through a pool land in the structured log stream.
func NewLogSink(logger Logger) status.LogSink {
	return status.LogSinkFunc(func(tag string, level status.LogLevel, text string) {
		ctx := context.Background()
		fields := []Field{{Key: "status.tag", Value: tag}}

		switch level {
		case status.LevelWarning:
			logger.Warn(ctx, text, fields...)
		case status.LevelError:
			logger.Error(ctx, text, fields...)
		default:
			logger.Info(ctx, text, fields...)
		}
	})
}
