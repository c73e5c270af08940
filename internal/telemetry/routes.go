package telemetry

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/codes"
)

const (
	// UnmatchedRoute labels requests no route pattern matched
	UnmatchedRoute = "unmatched"

	// OperationOther labels routed requests outside the registry API
	OperationOther = "other"

	definitionFileRoute = "/v1/registries/{registryId}/entries/{entryId}/definition-file"
)

// apiOperations names the registry operation behind each method and route
// pattern. Route patterns come from the router's finite table, so the label
// set is closed.
var apiOperations = map[string]string{
	"POST /v1/registries":                "createRegistry",
	"GET /v1/registries/{registryId}":    "getRegistry",
	"PUT /v1/registries/{registryId}":    "updateRegistry",
	"DELETE /v1/registries/{registryId}": "deleteRegistry",

	"POST /v1/registries/{registryId}/entries":                       "createEntry",
	"GET /v1/registries/{registryId}/entries/{entryId}":              "getEntry",
	"PUT /v1/registries/{registryId}/entries/{entryId}":              "updateEntry",
	"DELETE /v1/registries/{registryId}/entries/{entryId}":           "deleteEntry",
	"POST /v1/registries/{registryId}/entries/{entryId}/new-version": "createEntryVersion",
	"GET " + definitionFileRoute:                                     "getDefinitionFile",
	"GET /v1/registries/{registryId}/entries/{entryId}/versions":     "listEntryVersions",

	"GET /health":    "health",
	"GET /readiness": "readiness",
	"GET /version":   "version",
	"GET /metrics":   "metrics",
}

// requestRoute is what the middlewares learn about a request once the router
// has handled it
type requestRoute struct {
	pattern    string
	operation  string
	registryID string
	entryID    string
}

// routeOf reads the matched chi route of r. It must run after next.ServeHTTP.
func routeOf(r *http.Request) requestRoute {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.RoutePattern() == "" {
		return requestRoute{pattern: UnmatchedRoute, operation: OperationOther}
	}

	route := requestRoute{
		pattern:    rctx.RoutePattern(),
		registryID: rctx.URLParam("registryId"),
		entryID:    rctx.URLParam("entryId"),
	}
	route.operation = apiOperation(r.Method, route.pattern)
	return route
}

// apiOperation returns the registry operation for method and route pattern,
// or OperationOther
func apiOperation(method, pattern string) string {
	if op, ok := apiOperations[method+" "+pattern]; ok {
		return op
	}
	return OperationOther
}

// definitionMediaType returns the media type a successful definition-file
// response was served with, without parameters. Other responses yield "".
func definitionMediaType(route requestRoute, status int, h http.Header) string {
	if route.pattern != definitionFileRoute || status != http.StatusOK {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(h.Get("Content-Type"))
	if err != nil {
		return "application/octet-stream"
	}
	return mediaType
}

// spanStatus maps a response status onto the server span status. Client
// errors such as 404 or a 409 version conflict leave the status unset; server
// errors and a 502 from a failed definition fetch are errors.
func spanStatus(status int) (codes.Code, string) {
	switch {
	case status >= http.StatusInternalServerError:
		return codes.Error, http.StatusText(status)
	case status >= http.StatusBadRequest:
		return codes.Unset, ""
	default:
		return codes.Ok, ""
	}
}

// errorType is the bounded error.type value of a failed response, or "" for
// a success
func errorType(status int) string {
	if status < http.StatusBadRequest {
		return ""
	}
	return strconv.Itoa(status)
}
