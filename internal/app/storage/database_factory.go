package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"

	migrations "github.com/stacklok/toolhive-endpoint-registry/database"
	"github.com/stacklok/toolhive-endpoint-registry/internal/config"
	"github.com/stacklok/toolhive-endpoint-registry/internal/db"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
	database "github.com/stacklok/toolhive-endpoint-registry/internal/service/db"
)

// DatabaseFactory creates PostgreSQL-backed stores sharing one connection pool
type DatabaseFactory struct {
	pool      *pgxpool.Pool
	tracer    trace.Tracer
	closeOnce sync.Once
}

var _ Factory = (*DatabaseFactory)(nil)

// NewDatabaseFactory connects to the configured database, applying pending
// migrations first when migrateOnStart is set
func NewDatabaseFactory(ctx context.Context, cfg *config.Config, opts ...Option) (*DatabaseFactory, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Database == nil {
		return nil, fmt.Errorf("database configuration is required")
	}

	o := &factoryOptions{}
	for _, opt := range opts {
		opt(o)
	}

	slog.Info("Creating database-backed storage factory")

	if cfg.Database.MigrateOnStart {
		connStr, err := cfg.Database.GetConnectionString()
		if err != nil {
			return nil, fmt.Errorf("failed to build connection string: %w", err)
		}
		slog.Info("Applying database migrations")
		if err := migrations.MigrateUp(connStr); err != nil {
			return nil, err
		}
	}

	pool, err := db.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	return &DatabaseFactory{pool: pool, tracer: o.tracer}, nil
}

// CreateStore returns a store over the factory's pool
func (d *DatabaseFactory) CreateStore(_ context.Context) (service.EntryStore, error) {
	opts := []database.Option{
		database.WithConnectionPool(d.pool),
	}
	if d.tracer != nil {
		opts = append(opts, database.WithTracer(d.tracer))
		slog.Debug("Database store tracing enabled")
	}
	return database.New(opts...)
}

// Cleanup closes the connection pool
func (d *DatabaseFactory) Cleanup() {
	d.closeOnce.Do(func() {
		if d.pool != nil {
			slog.Info("Closing database connection pool")
			d.pool.Close()
		}
	})
}
