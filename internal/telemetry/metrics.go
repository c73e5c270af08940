package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// EntryMetricsMeterName is the name used for the entry lifecycle meter
	EntryMetricsMeterName = "github.com/stacklok/toolhive-endpoint-registry/service"
)

// EntryMetrics holds the OpenTelemetry instruments for entry lifecycle operations
type EntryMetrics struct {
	operations         metric.Int64Counter
	validationDuration metric.Float64Histogram
}

// NewEntryMetrics creates the entry lifecycle instruments on provider.
// If provider is nil, it returns nil (no-op metrics).
func NewEntryMetrics(provider metric.MeterProvider) (*EntryMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(EntryMetricsMeterName)

	operations, err := meter.Int64Counter(
		"thv_endpoint_registry_operations_total",
		metric.WithDescription("Number of registry and entry operations by outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	validationDuration, err := meter.Float64Histogram(
		"thv_endpoint_registry_definition_validation_duration_seconds",
		metric.WithDescription("Duration of definition validation including any fetch"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, err
	}

	return &EntryMetrics{
		operations:         operations,
		validationDuration: validationDuration,
	}, nil
}

// RecordOperation counts one completed operation
func (m *EntryMetrics) RecordOperation(ctx context.Context, operation string, success bool) {
	if m == nil || m.operations == nil {
		return
	}

	m.operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.Bool("success", success),
	))
}

// RecordValidation records how long validating one definition took. source is
// "inline" or "url".
func (m *EntryMetrics) RecordValidation(
	ctx context.Context, definitionType, source string, duration time.Duration, success bool,
) {
	if m == nil || m.validationDuration == nil {
		return
	}

	m.validationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("definition_type", definitionType),
		attribute.String("source", source),
		attribute.Bool("success", success),
	))
}
