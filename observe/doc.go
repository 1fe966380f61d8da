// Package observe provides observability primitives for status pools.
//
// It is a pure instrumentation library: no aggregation, no transport, no
// I/O beyond exporter setup. Consumers wrap their pool's sink with
// InstrumentSink (or SinkFromObserver) so every committed report is
// traced, counted, and logged.
package observe
