// Package storage selects and builds the entry store the service runs on.
package storage

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"github.com/stacklok/toolhive-endpoint-registry/internal/config"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
)

//go:generate mockgen -destination=mocks/mock_factory.go -package=mocks -source=factory.go Factory

// Factory creates the entry store and owns the resources behind it
type Factory interface {
	// CreateStore returns the store registries and entries are persisted in
	CreateStore(ctx context.Context) (service.EntryStore, error)

	// Cleanup releases resources held by the factory, such as a connection pool.
	// It is safe to call more than once.
	Cleanup()
}

// Option configures a storage factory
type Option func(*factoryOptions)

type factoryOptions struct {
	tracer trace.Tracer
}

// WithTracer sets the tracer handed to stores that trace their queries
func WithTracer(tracer trace.Tracer) Option {
	return func(o *factoryOptions) {
		o.tracer = tracer
	}
}

// NewStorageFactory returns a DatabaseFactory when a database is configured
// and a MemoryFactory otherwise
func NewStorageFactory(ctx context.Context, cfg *config.Config, opts ...Option) (Factory, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if cfg.Database != nil {
		return NewDatabaseFactory(ctx, cfg, opts...)
	}
	return NewMemoryFactory(), nil
}
