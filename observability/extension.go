package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/strandkit/strand/hook"
)

// meterName is the instrumentation scope name for strand metrics.
const meterName = "github.com/strandkit/strand"

// Compile-time interface checks.
var (
	_ hook.Extension     = (*MetricsExtension)(nil)
	_ hook.WorkSubmitted = (*MetricsExtension)(nil)
	_ hook.WorkCompleted = (*MetricsExtension)(nil)
	_ hook.QueueDrained  = (*MetricsExtension)(nil)
)

// MetricsExtension records pump activity as OpenTelemetry metrics.
// Register it on a context with strand.WithHook to automatically track
// submission rates, execution counts, drain counts, callbacks per drain,
// and queue depth at submission time.
//
// Instruments:
//   - strand.work.submitted (Int64Counter): callbacks submitted
//   - strand.work.executed (Int64Counter): callbacks executed
//   - strand.queue.drains (Int64Counter): drains that executed work
//   - strand.drain.batch (Int64Histogram): callbacks executed per drain
//   - strand.queue.pending (Int64Histogram): queue depth after each submit
//
// All data points carry context_id and label attributes.
type MetricsExtension struct {
	submitted metric.Int64Counter
	executed  metric.Int64Counter
	drains    metric.Int64Counter
	batch     metric.Int64Histogram
	pending   metric.Int64Histogram
}

// NewMetricsExtension creates a MetricsExtension using the global OTel
// MeterProvider. If no MeterProvider is configured, noop instruments are
// used and the extension becomes a pass-through.
func NewMetricsExtension() *MetricsExtension {
	return NewMetricsExtensionWithMeter(otel.Meter(meterName))
}

// NewMetricsExtensionWithMeter creates a MetricsExtension with the provided
// meter. This variant allows injecting a specific MeterProvider for testing.
func NewMetricsExtensionWithMeter(meter metric.Meter) *MetricsExtension {
	// Create instruments once at construction time. OTel instruments are
	// safe for concurrent use. On error, the API returns noop instruments
	// so the extension degrades gracefully.
	submitted, sErr := meter.Int64Counter(
		"strand.work.submitted",
		metric.WithDescription("Total number of callbacks submitted"),
		metric.WithUnit("{callback}"),
	)
	_ = sErr // noop fallback guaranteed by OTel API contract

	executed, eErr := meter.Int64Counter(
		"strand.work.executed",
		metric.WithDescription("Total number of callbacks executed"),
		metric.WithUnit("{callback}"),
	)
	_ = eErr // noop fallback guaranteed by OTel API contract

	drains, dErr := meter.Int64Counter(
		"strand.queue.drains",
		metric.WithDescription("Total number of drains that executed at least one callback"),
		metric.WithUnit("{drain}"),
	)
	_ = dErr // noop fallback guaranteed by OTel API contract

	batch, bErr := meter.Int64Histogram(
		"strand.drain.batch",
		metric.WithDescription("Callbacks executed per drain"),
		metric.WithUnit("{callback}"),
	)
	_ = bErr // noop fallback guaranteed by OTel API contract

	pending, pErr := meter.Int64Histogram(
		"strand.queue.pending",
		metric.WithDescription("Queue depth observed after each submission"),
		metric.WithUnit("{callback}"),
	)
	_ = pErr // noop fallback guaranteed by OTel API contract

	return &MetricsExtension{
		submitted: submitted,
		executed:  executed,
		drains:    drains,
		batch:     batch,
		pending:   pending,
	}
}

// Name implements hook.Extension.
func (m *MetricsExtension) Name() string { return "observability-metrics" }

// ── Pump lifecycle hooks ────────────────────────────

// OnWorkSubmitted implements hook.WorkSubmitted.
func (m *MetricsExtension) OnWorkSubmitted(s hook.Source, _ uint64, pending int) error {
	attrs := sourceAttrs(s)
	m.submitted.Add(context.Background(), 1, attrs)
	m.pending.Record(context.Background(), int64(pending), attrs)
	return nil
}

// OnWorkCompleted implements hook.WorkCompleted.
func (m *MetricsExtension) OnWorkCompleted(s hook.Source, _ uint64) error {
	m.executed.Add(context.Background(), 1, sourceAttrs(s))
	return nil
}

// OnQueueDrained implements hook.QueueDrained.
func (m *MetricsExtension) OnQueueDrained(s hook.Source, executed int) error {
	attrs := sourceAttrs(s)
	m.drains.Add(context.Background(), 1, attrs)
	m.batch.Record(context.Background(), int64(executed), attrs)
	return nil
}

// sourceAttrs builds the per-context attribute set.
func sourceAttrs(s hook.Source) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("context_id", s.ID().String()),
		attribute.String("label", s.Label()),
	)
}
