// Package otel provides OpenTelemetry instrumentation helpers for the endpoint registry.
package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys shared by the service and store spans
const (
	AttrTenant         = attribute.Key("registry.tenant")
	AttrRegistryID     = attribute.Key("registry.id")
	AttrEntryID        = attribute.Key("entry.id")
	AttrEntryName      = attribute.Key("entry.name")
	AttrEntryVersion   = attribute.Key("entry.version")
	AttrDefinitionType = attribute.Key("definition.type")
	AttrDefinitionSrc  = attribute.Key("definition.source")
	AttrResultCount    = attribute.Key("result.count")

	AttrDefinitionSpecVersion = attribute.Key("definition.spec_version")
	AttrDefinitionTitle       = attribute.Key("definition.title")
	AttrDefinitionMediaType   = attribute.Key("definition.media_type")
)

// StartSpan starts a span on tracer, or returns the span already in ctx when
// tracer is nil so callers never branch on whether tracing is enabled.
func StartSpan(
	ctx context.Context,
	tracer trace.Tracer,
	name string,
	opts ...trace.SpanStartOption,
) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, name, opts...)
}

// RecordError records err on span and marks it failed. The status description
// stays generic; the error text is only kept on the exception event.
func RecordError(span trace.Span, err error) {
	if err != nil && span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "operation failed")
	}
}
