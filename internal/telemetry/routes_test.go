package telemetry

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"
)

const (
	testRegistryID = "5f0c6a1e-3b7d-4c2a-9e8f-1a2b3c4d5e6f"
	testEntryID    = "0b6c3a52-8d5e-4f0e-9a57-2f1f3d7c9e10"

	// headers the stub handler answers with
	statusHeader      = "X-Stub-Status"
	contentTypeHeader = "X-Stub-Content-Type"
)

// stubHandler answers with the status and content type the request asks for
func stubHandler(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get(contentTypeHeader); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	status := http.StatusOK
	if s := r.Header.Get(statusHeader); s != "" {
		status, _ = strconv.Atoi(s)
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte("{}"))
}

// newRegistryRouter mounts stubHandler on the registry API route table,
// nested the same way the API server nests it, behind mw
func newRegistryRouter(mw ...func(http.Handler) http.Handler) http.Handler {
	v1 := chi.NewRouter()
	v1.Route("/registries", func(r chi.Router) {
		r.Post("/", stubHandler)
		r.Route("/{registryId}", func(r chi.Router) {
			r.Get("/", stubHandler)
			r.Put("/", stubHandler)
			r.Delete("/", stubHandler)
			r.Post("/entries", stubHandler)
			r.Route("/entries/{entryId}", func(r chi.Router) {
				r.Get("/", stubHandler)
				r.Put("/", stubHandler)
				r.Delete("/", stubHandler)
				r.Post("/new-version", stubHandler)
				r.Get("/definition-file", stubHandler)
				r.Get("/versions", stubHandler)
			})
		})
	})

	r := chi.NewRouter()
	for _, m := range mw {
		r.Use(m)
	}
	r.Get("/health", stubHandler)
	r.Get("/readiness", stubHandler)
	r.Get("/version", stubHandler)
	r.Mount("/v1", v1)
	return r
}

func entryPath(suffix string) string {
	return "/v1/registries/" + testRegistryID + "/entries/" + testEntryID + suffix
}

func TestRouteOf_RegistryAPI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method    string
		path      string
		pattern   string
		operation string
		entryID   string
	}{
		{http.MethodPost, "/v1/registries", "/v1/registries", "createRegistry", ""},
		{http.MethodPost, "/v1/registries/", "/v1/registries", "createRegistry", ""},
		{http.MethodGet, "/v1/registries/" + testRegistryID, "/v1/registries/{registryId}", "getRegistry", ""},
		{http.MethodDelete, "/v1/registries/" + testRegistryID, "/v1/registries/{registryId}", "deleteRegistry", ""},
		{
			http.MethodPost, "/v1/registries/" + testRegistryID + "/entries",
			"/v1/registries/{registryId}/entries", "createEntry", "",
		},
		{http.MethodGet, entryPath(""), "/v1/registries/{registryId}/entries/{entryId}", "getEntry", testEntryID},
		{http.MethodPut, entryPath(""), "/v1/registries/{registryId}/entries/{entryId}", "updateEntry", testEntryID},
		{
			http.MethodPost, entryPath("/new-version"),
			"/v1/registries/{registryId}/entries/{entryId}/new-version", "createEntryVersion", testEntryID,
		},
		{http.MethodGet, entryPath("/definition-file"), definitionFileRoute, "getDefinitionFile", testEntryID},
		{
			http.MethodGet, entryPath("/versions"),
			"/v1/registries/{registryId}/entries/{entryId}/versions", "listEntryVersions", testEntryID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()

			var got requestRoute
			capture := func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					next.ServeHTTP(w, r)
					got = routeOf(r)
				})
			}

			rr := httptest.NewRecorder()
			newRegistryRouter(capture).ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.pattern, got.pattern)
			assert.Equal(t, tt.operation, got.operation)
			if tt.operation == "createRegistry" {
				assert.Empty(t, got.registryID)
			} else {
				assert.Equal(t, testRegistryID, got.registryID)
			}
			assert.Equal(t, tt.entryID, got.entryID)
		})
	}
}

func TestRouteOf_Unrouted(t *testing.T) {
	t.Parallel()

	got := routeOf(httptest.NewRequest(http.MethodGet, "/v1/registries", nil))
	assert.Equal(t, UnmatchedRoute, got.pattern)
	assert.Equal(t, OperationOther, got.operation)
	assert.Empty(t, got.registryID)
}

func TestAPIOperation_Closed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "getDefinitionFile", apiOperation(http.MethodGet, definitionFileRoute))
	assert.Equal(t, OperationOther, apiOperation(http.MethodPost, definitionFileRoute))
	assert.Equal(t, OperationOther, apiOperation(http.MethodPatch, "/v1/registries/{registryId}"))
	assert.Equal(t, "health", apiOperation(http.MethodGet, "/health"))
}

func TestDefinitionMediaType(t *testing.T) {
	t.Parallel()

	definitionRoute := requestRoute{pattern: definitionFileRoute, operation: "getDefinitionFile"}
	entryRoute := requestRoute{pattern: "/v1/registries/{registryId}/entries/{entryId}", operation: "getEntry"}

	tests := []struct {
		name        string
		route       requestRoute
		status      int
		contentType string
		want        string
	}{
		{"openapi json", definitionRoute, http.StatusOK, "application/json", "application/json"},
		{"graphql with charset", definitionRoute, http.StatusOK, "application/json; charset=utf-8", "application/json"},
		{"wsdl", definitionRoute, http.StatusOK, "text/xml", "text/xml"},
		{"missing content type", definitionRoute, http.StatusOK, "", "application/octet-stream"},
		{"not found", definitionRoute, http.StatusNotFound, "application/json", ""},
		{"other route", entryRoute, http.StatusOK, "application/json", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := http.Header{}
			if tt.contentType != "" {
				h.Set("Content-Type", tt.contentType)
			}
			assert.Equal(t, tt.want, definitionMediaType(tt.route, tt.status, h))
		})
	}
}

func TestSpanStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		code     codes.Code
		desc     string
		errorTyp string
	}{
		{"created", http.StatusCreated, codes.Ok, "", ""},
		{"no content", http.StatusNoContent, codes.Ok, "", ""},
		{"bad input", http.StatusBadRequest, codes.Unset, "", "400"},
		{"unknown entry", http.StatusNotFound, codes.Unset, "", "404"},
		{"version conflict", http.StatusConflict, codes.Unset, "", "409"},
		{"upload too large", http.StatusRequestEntityTooLarge, codes.Unset, "", "413"},
		{"store failure", http.StatusInternalServerError, codes.Error, "Internal Server Error", "500"},
		{"definition fetch failed", http.StatusBadGateway, codes.Error, "Bad Gateway", "502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, desc := spanStatus(tt.status)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.desc, desc)
			assert.Equal(t, tt.errorTyp, errorType(tt.status))
		})
	}
}
