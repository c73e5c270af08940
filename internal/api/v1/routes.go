// Package v1 provides the REST handlers for managing registries and their entries.
package v1

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
)

// DefaultMaxRequestSize bounds request bodies, definition uploads included
const DefaultMaxRequestSize int64 = 16 << 20

// Routes holds the handlers of the v1 API
type Routes struct {
	service        service.Service
	defaultTenant  string
	maxRequestSize int64
}

// Option configures the v1 routes
type Option func(*Routes)

// WithDefaultTenant sets the tenant used when a request carries no tenant header
func WithDefaultTenant(tenant string) Option {
	return func(routes *Routes) {
		if tenant != "" {
			routes.defaultTenant = tenant
		}
	}
}

// WithMaxRequestSize bounds the size of request bodies
func WithMaxRequestSize(size int64) Option {
	return func(routes *Routes) {
		if size > 0 {
			routes.maxRequestSize = size
		}
	}
}

// NewRoutes creates the v1 handlers over svc
func NewRoutes(svc service.Service, opts ...Option) *Routes {
	routes := &Routes{
		service:        svc,
		defaultTenant:  service.DefaultTenant,
		maxRequestSize: DefaultMaxRequestSize,
	}
	for _, opt := range opts {
		opt(routes)
	}
	return routes
}

// Router creates the v1 router
func Router(svc service.Service, opts ...Option) http.Handler {
	routes := NewRoutes(svc, opts...)

	r := chi.NewRouter()
	r.Use(TenantMiddleware(routes.defaultTenant))

	r.Route("/registries", func(r chi.Router) {
		r.Post("/", routes.createRegistry)

		r.Route("/{registryId}", func(r chi.Router) {
			r.Get("/", routes.getRegistry)
			r.Put("/", routes.updateRegistry)
			r.Delete("/", routes.deleteRegistry)

			r.Post("/entries", routes.createEntry)
			r.Route("/entries/{entryId}", func(r chi.Router) {
				r.Get("/", routes.getEntry)
				r.Put("/", routes.updateEntry)
				r.Delete("/", routes.deleteEntry)
				r.Post("/new-version", routes.createEntryVersion)
				r.Get("/definition-file", routes.getDefinitionFile)
				r.Get("/versions", routes.listEntryVersions)
			})
		})
	})

	return r
}

func entryLocation(registryID, entryID string) string {
	return fmt.Sprintf("/v1/registries/%s/entries/%s", registryID, entryID)
}
