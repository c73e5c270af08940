package service

import (
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"github.com/stacklok/toolhive-endpoint-registry/internal/telemetry"
)

// ManagerOption configures the entry manager
type ManagerOption func(*entryManager) error

// WithValidator sets the definition validator. It is required.
func WithValidator(v DefinitionValidator) ManagerOption {
	return func(m *entryManager) error {
		if v == nil {
			return fmt.Errorf("definition validator cannot be nil")
		}
		m.validator = v
		return nil
	}
}

// WithTracer sets the tracer used for service spans. A nil tracer disables tracing.
func WithTracer(tracer trace.Tracer) ManagerOption {
	return func(m *entryManager) error {
		m.tracer = tracer
		return nil
	}
}

// WithMetrics sets the operation metrics. Nil metrics are a no-op.
func WithMetrics(metrics *telemetry.EntryMetrics) ManagerOption {
	return func(m *entryManager) error {
		m.metrics = metrics
		return nil
	}
}
