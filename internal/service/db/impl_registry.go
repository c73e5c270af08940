package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/stacklok/toolhive-endpoint-registry/internal/db/sqlc"
	"github.com/stacklok/toolhive-endpoint-registry/internal/otel"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
)

// GetRegistry returns the registry with registryID owned by tenant
func (s *dbStore) GetRegistry(ctx context.Context, registryID, tenant string) (*service.Registry, error) {
	ctx, span := s.startSpan(ctx, "dbStore.GetRegistry",
		trace.WithAttributes(
			otel.AttrRegistryID.String(registryID),
			otel.AttrTenant.String(tenant),
		),
	)
	defer span.End()

	id, err := parseID("registry", registryID)
	if err != nil {
		return nil, err
	}

	row, err := sqlc.New(s.pool).GetRegistry(ctx, sqlc.GetRegistryParams{
		ID:     id,
		Tenant: tenant,
	})
	if err != nil {
		err = classify(err, fmt.Sprintf("registry %s", registryID))
		otel.RecordError(span, err)
		return nil, err
	}
	return registryFromRow(row), nil
}

// CreateRegistry inserts a registry. An empty ID is replaced by a new UUID;
// a pinned ID must be a UUID.
func (s *dbStore) CreateRegistry(ctx context.Context, registry *service.Registry) (*service.Registry, error) {
	ctx, span := s.startSpan(ctx, "dbStore.CreateRegistry",
		trace.WithAttributes(otel.AttrTenant.String(registry.Tenant)),
	)
	defer span.End()

	id := uuid.New()
	if registry.ID != "" {
		parsed, err := uuid.Parse(registry.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: registry id %q is not a UUID", service.ErrBadInput, registry.ID)
		}
		id = parsed
	}

	now := time.Now().UTC()
	row, err := sqlc.New(s.pool).InsertRegistry(ctx, sqlc.InsertRegistryParams{
		ID:          id,
		Tenant:      registry.Tenant,
		Name:        registry.Name,
		DisplayName: optional(registry.DisplayName),
		RegType:     string(registry.Type),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		err = classify(err, fmt.Sprintf("registry %q", registry.Name))
		otel.RecordError(span, err)
		return nil, err
	}
	return registryFromRow(row), nil
}

// UpdateRegistry replaces the name, display name and type of a registry
func (s *dbStore) UpdateRegistry(ctx context.Context, registry *service.Registry) (*service.Registry, error) {
	ctx, span := s.startSpan(ctx, "dbStore.UpdateRegistry",
		trace.WithAttributes(otel.AttrRegistryID.String(registry.ID)),
	)
	defer span.End()

	id, err := parseID("registry", registry.ID)
	if err != nil {
		return nil, err
	}

	row, err := sqlc.New(s.pool).UpdateRegistry(ctx, sqlc.UpdateRegistryParams{
		Name:        registry.Name,
		DisplayName: optional(registry.DisplayName),
		RegType:     string(registry.Type),
		UpdatedAt:   time.Now().UTC(),
		ID:          id,
	})
	if err != nil {
		err = classify(err, fmt.Sprintf("registry %q", registry.Name))
		otel.RecordError(span, err)
		return nil, err
	}
	return registryFromRow(row), nil
}

// DeleteRegistry removes a registry. Its entries are removed by the
// ON DELETE CASCADE constraint.
func (s *dbStore) DeleteRegistry(ctx context.Context, registryID string) error {
	ctx, span := s.startSpan(ctx, "dbStore.DeleteRegistry",
		trace.WithAttributes(otel.AttrRegistryID.String(registryID)),
	)
	defer span.End()

	id, err := parseID("registry", registryID)
	if err != nil {
		return err
	}

	rowsAffected, err := sqlc.New(s.pool).DeleteRegistry(ctx, id)
	if err != nil {
		otel.RecordError(span, err)
		return fmt.Errorf("failed to delete registry: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: registry %s", service.ErrNotFound, registryID)
	}
	return nil
}
