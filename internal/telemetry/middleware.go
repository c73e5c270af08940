package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// HTTPMetricsMeterName is the name used for the HTTP metrics meter
	HTTPMetricsMeterName = "github.com/stacklok/toolhive-endpoint-registry/http"
)

// HTTPMetrics holds the instruments of the registry API. Every request is
// labelled with its route pattern and registry operation; definition-file
// downloads are also counted per served media type.
type HTTPMetrics struct {
	requestDuration     metric.Float64Histogram
	requestsTotal       metric.Int64Counter
	activeRequests      metric.Int64UpDownCounter
	definitionDownloads metric.Int64Counter
}

// NewHTTPMetrics creates the API instruments on provider.
// If provider is nil, it returns nil (no-op metrics).
func NewHTTPMetrics(provider metric.MeterProvider) (*HTTPMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(HTTPMetricsMeterName)

	requestDuration, err := meter.Float64Histogram(
		"thv_endpoint_registry_http_request_duration_seconds",
		metric.WithDescription("Duration of registry API requests in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, err
	}

	requestsTotal, err := meter.Int64Counter(
		"thv_endpoint_registry_http_requests_total",
		metric.WithDescription("Registry API requests by operation and status"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"thv_endpoint_registry_http_active_requests",
		metric.WithDescription("Number of in-flight registry API requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	definitionDownloads, err := meter.Int64Counter(
		"thv_endpoint_registry_definition_downloads_total",
		metric.WithDescription("Definition files served, by media type"),
		metric.WithUnit("{download}"),
	)
	if err != nil {
		return nil, err
	}

	return &HTTPMetrics{
		requestDuration:     requestDuration,
		requestsTotal:       requestsTotal,
		activeRequests:      activeRequests,
		definitionDownloads: definitionDownloads,
	}, nil
}

// Middleware records the API instruments for each request.
// If HTTPMetrics is nil, it returns next unchanged.
func (m *HTTPMetrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		m.activeRequests.Add(ctx, 1)
		defer m.activeRequests.Add(ctx, -1)

		next.ServeHTTP(ww, r)

		route := routeOf(r)
		status := ww.Status()
		attrs := metric.WithAttributes(
			attribute.String("method", r.Method),
			attribute.String("route", route.pattern),
			attribute.String("operation", route.operation),
			attribute.String("status_code", strconv.Itoa(status)),
		)
		m.requestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
		m.requestsTotal.Add(ctx, 1, attrs)

		if mediaType := definitionMediaType(route, status, ww.Header()); mediaType != "" {
			m.definitionDownloads.Add(ctx, 1, metric.WithAttributes(
				attribute.String("media_type", mediaType),
			))
		}
	})
}

// MetricsMiddleware creates the API metrics middleware on provider
func MetricsMiddleware(provider metric.MeterProvider) (func(http.Handler) http.Handler, error) {
	metrics, err := NewHTTPMetrics(provider)
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return metrics.Middleware(next)
	}, nil
}
