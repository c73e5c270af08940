// Package database provides a PostgreSQL implementation of the EntryStore interface
package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"

	"github.com/stacklok/toolhive-endpoint-registry/internal/db/sqlc"
	"github.com/stacklok/toolhive-endpoint-registry/internal/otel"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// options holds configuration options for the database store
type options struct {
	pool   *pgxpool.Pool
	tracer trace.Tracer
}

// Option is a functional option for configuring the database store
type Option func(*options) error

// WithConnectionPool sets the pgx pool the store runs its queries on. The
// caller is responsible for closing the pool when it is done.
func WithConnectionPool(pool *pgxpool.Pool) Option {
	return func(o *options) error {
		if pool == nil {
			return fmt.Errorf("pgx pool is required")
		}
		o.pool = pool
		return nil
	}
}

// WithTracer sets the OpenTelemetry tracer for the database store.
// If not set, tracing will be disabled (no-op).
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		o.tracer = tracer
		return nil
	}
}

// dbStore implements service.EntryStore on PostgreSQL
type dbStore struct {
	pool   *pgxpool.Pool
	tracer trace.Tracer
}

var _ service.EntryStore = (*dbStore)(nil)

// New creates a database-backed entry store with the given options
func New(opts ...Option) (service.EntryStore, error) {
	o := &options{}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if o.pool == nil {
		return nil, fmt.Errorf("pgx pool is required")
	}

	return &dbStore{
		pool:   o.pool,
		tracer: o.tracer,
	}, nil
}

// Ping checks the database is reachable
func (s *dbStore) Ping(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "dbStore.Ping")
	defer span.End()

	if err := s.pool.Ping(ctx); err != nil {
		otel.RecordError(span, err)
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// inTx runs fn in a read-write transaction with the given isolation level
// and commits when fn succeeds.
func (s *dbStore) inTx(ctx context.Context, iso pgx.TxIsoLevel, fn func(*sqlc.Queries) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   iso,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "Failed to roll back transaction", "error", err)
		}
	}()

	if err := fn(sqlc.New(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// classify maps driver errors onto the service sentinels. what names the
// record involved and is used in the returned message.
func classify(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", service.ErrNotFound, what)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", service.ErrAlreadyExists, what)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s references a missing record", service.ErrNotFound, what)
		}
	}
	return fmt.Errorf("%s: %w", what, err)
}
