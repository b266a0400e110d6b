// Package observability provides an OpenTelemetry-based metrics extension
// for strand. The MetricsExtension implements pump lifecycle hooks to
// record counters for submissions, executions, and drains, plus
// histograms for drain batch size and queue depth.
//
// Metrics are recorded against the global MeterProvider by default; if
// none is configured the OTel API hands back noop instruments and the
// extension is a pass-through.
package observability
