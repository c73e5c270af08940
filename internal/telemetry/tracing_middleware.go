package telemetry

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	rotel "github.com/stacklok/toolhive-endpoint-registry/internal/otel"
)

const (
	// TracerName is the name used for the HTTP tracer
	TracerName = "github.com/stacklok/toolhive-endpoint-registry/http"

	// MaxUserAgentLength caps the user agent recorded on spans
	MaxUserAgentLength = 256

	// AttrAPIOperation names the registry operation a request performed
	AttrAPIOperation = attribute.Key("registry.api.operation")
)

// untracedPaths are polled constantly and carry no registry context
var untracedPaths = map[string]struct{}{
	"/health":    {},
	"/readiness": {},
	"/metrics":   {},
}

// TracingMiddleware starts a server span per registry API request, named
// after the matched route and carrying the registry operation, the registry
// and entry ids from the path, and the media type of served definitions.
// If provider is nil, it returns a pass-through middleware.
func TracingMiddleware(provider trace.TracerProvider) func(http.Handler) http.Handler {
	if provider == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	tracer := provider.Tracer(TracerName)
	propagator := otel.GetTextMapPropagator()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, skip := untracedPaths[r.URL.Path]; skip {
				next.ServeHTTP(w, r)
				return
			}

			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			ctx, span := tracer.Start(ctx, r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.URLPath(r.URL.Path),
					semconv.UserAgentOriginal(truncateUserAgent(r.UserAgent())),
				),
			)
			defer span.End()

			next.ServeHTTP(ww, r.WithContext(ctx))

			route := routeOf(r)
			status := ww.Status()
			span.SetName(r.Method + " " + route.pattern)
			span.SetAttributes(
				semconv.HTTPRouteKey.String(route.pattern),
				semconv.HTTPResponseStatusCode(status),
				AttrAPIOperation.String(route.operation),
			)
			if route.registryID != "" {
				span.SetAttributes(rotel.AttrRegistryID.String(route.registryID))
			}
			if route.entryID != "" {
				span.SetAttributes(rotel.AttrEntryID.String(route.entryID))
			}
			if mediaType := definitionMediaType(route, status, ww.Header()); mediaType != "" {
				span.SetAttributes(rotel.AttrDefinitionMediaType.String(mediaType))
			}
			if errType := errorType(status); errType != "" {
				span.SetAttributes(semconv.ErrorTypeKey.String(errType))
			}
			span.SetStatus(spanStatus(status))
		})
	}
}

// truncateUserAgent bounds the user agent so clients cannot inflate spans
func truncateUserAgent(ua string) string {
	if len(ua) > MaxUserAgentLength {
		return ua[:MaxUserAgentLength]
	}
	return ua
}
