package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/trace"

	"github.com/stacklok/toolhive-endpoint-registry/internal/db/sqlc"
	"github.com/stacklok/toolhive-endpoint-registry/internal/otel"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
)

// GetEntry returns the entry with entryID in registryID
func (s *dbStore) GetEntry(ctx context.Context, registryID, entryID string) (*service.Entry, error) {
	ctx, span := s.startSpan(ctx, "dbStore.GetEntry",
		trace.WithAttributes(
			otel.AttrRegistryID.String(registryID),
			otel.AttrEntryID.String(entryID),
		),
	)
	defer span.End()

	regID, err := parseID("registry", registryID)
	if err != nil {
		return nil, err
	}
	id, err := parseID("entry", entryID)
	if err != nil {
		return nil, err
	}

	row, err := sqlc.New(s.pool).GetEntry(ctx, sqlc.GetEntryParams{
		ID:         id,
		RegistryID: regID,
	})
	if err != nil {
		err = classify(err, fmt.Sprintf("entry %s", entryID))
		otel.RecordError(span, err)
		return nil, err
	}
	return entryFromRow(row), nil
}

// PutEntry inserts a new entry. The (registry, name, version) unique key
// rejects duplicates with ErrAlreadyExists.
func (s *dbStore) PutEntry(ctx context.Context, entry *service.Entry) (*service.Entry, error) {
	ctx, span := s.startSpan(ctx, "dbStore.PutEntry",
		trace.WithAttributes(
			otel.AttrRegistryID.String(entry.RegistryID),
			otel.AttrEntryName.String(entry.Name),
			otel.AttrEntryVersion.String(entry.Version),
		),
	)
	defer span.End()

	params, err := insertParams(entry, nil)
	if err != nil {
		return nil, err
	}

	row, err := sqlc.New(s.pool).InsertEntry(ctx, params)
	if err != nil {
		err = classify(err, fmt.Sprintf("entry %q version %q", entry.Name, entry.Version))
		otel.RecordError(span, err)
		return nil, err
	}
	return entryFromRow(row), nil
}

// UpdateEntry replaces the mutable columns of an entry. created_at and
// source_entry_id are never touched.
func (s *dbStore) UpdateEntry(ctx context.Context, entry *service.Entry) (*service.Entry, error) {
	ctx, span := s.startSpan(ctx, "dbStore.UpdateEntry",
		trace.WithAttributes(
			otel.AttrRegistryID.String(entry.RegistryID),
			otel.AttrEntryID.String(entry.ID),
		),
	)
	defer span.End()

	regID, err := parseID("registry", entry.RegistryID)
	if err != nil {
		return nil, err
	}
	id, err := parseID("entry", entry.ID)
	if err != nil {
		return nil, err
	}

	row, err := sqlc.New(s.pool).UpdateEntry(ctx, sqlc.UpdateEntryParams{
		Name:              entry.Name,
		DisplayName:       optional(entry.DisplayName),
		Version:           entry.Version,
		ServiceType:       optional(string(entry.ServiceType)),
		ServiceCategory:   optional(string(entry.ServiceCategory)),
		ServiceUrl:        optional(entry.ServiceURL),
		DefinitionType:    optional(string(entry.DefinitionType)),
		DefinitionUrl:     optional(entry.DefinitionURL),
		DefinitionContent: entry.DefinitionContent,
		UpdatedAt:         time.Now().UTC(),
		ID:                id,
		RegistryID:        regID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("%w: entry %s", service.ErrNotFound, entry.ID)
		} else {
			err = classify(err, fmt.Sprintf("entry %q version %q", entry.Name, entry.Version))
		}
		otel.RecordError(span, err)
		return nil, err
	}
	return entryFromRow(row), nil
}

// DeleteEntry removes an entry. Versions created from it keep their rows;
// their source_entry_id is cleared by ON DELETE SET NULL.
func (s *dbStore) DeleteEntry(ctx context.Context, entryID string) error {
	ctx, span := s.startSpan(ctx, "dbStore.DeleteEntry",
		trace.WithAttributes(otel.AttrEntryID.String(entryID)),
	)
	defer span.End()

	id, err := parseID("entry", entryID)
	if err != nil {
		return err
	}

	rowsAffected, err := sqlc.New(s.pool).DeleteEntry(ctx, id)
	if err != nil {
		otel.RecordError(span, err)
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: entry %s", service.ErrNotFound, entryID)
	}
	return nil
}

// CreateVersion inserts entry as a version derived from sourceEntryID. The
// source row is share-locked so it cannot be deleted before the insert
// commits. The transaction runs at READ COMMITTED: a concurrent insert of the
// same version then fails with a unique violation, which maps to
// ErrAlreadyExists, instead of a serialization failure.
func (s *dbStore) CreateVersion(ctx context.Context, sourceEntryID string, entry *service.Entry) (string, error) {
	ctx, span := s.startSpan(ctx, "dbStore.CreateVersion",
		trace.WithAttributes(
			otel.AttrEntryID.String(sourceEntryID),
			otel.AttrEntryVersion.String(entry.Version),
		),
	)
	defer span.End()

	sourceID, err := parseID("entry", sourceEntryID)
	if err != nil {
		return "", err
	}
	params, err := insertParams(entry, &sourceID)
	if err != nil {
		return "", err
	}

	var newID string
	err = s.inTx(ctx, pgx.ReadCommitted, func(q *sqlc.Queries) error {
		if _, err := q.GetEntryByID(ctx, sourceID); err != nil {
			return classify(err, fmt.Sprintf("entry %s", sourceEntryID))
		}
		row, err := q.InsertEntry(ctx, params)
		if err != nil {
			return classify(err, fmt.Sprintf("entry %q version %q", entry.Name, entry.Version))
		}
		newID = row.ID.String()
		return nil
	})
	if err != nil {
		otel.RecordError(span, err)
		return "", err
	}
	return newID, nil
}

// ListEntryVersions returns every entry named name in registryID, oldest first
func (s *dbStore) ListEntryVersions(ctx context.Context, registryID, name string) ([]*service.Entry, error) {
	ctx, span := s.startSpan(ctx, "dbStore.ListEntryVersions",
		trace.WithAttributes(
			otel.AttrRegistryID.String(registryID),
			otel.AttrEntryName.String(name),
		),
	)
	defer span.End()

	regID, err := parseID("registry", registryID)
	if err != nil {
		otel.RecordError(span, err)
		return nil, err
	}

	rows, err := sqlc.New(s.pool).ListEntryVersions(ctx, sqlc.ListEntryVersionsParams{
		RegistryID: regID,
		Name:       name,
	})
	if err != nil {
		otel.RecordError(span, err)
		return nil, fmt.Errorf("failed to list entry versions: %w", err)
	}

	result := make([]*service.Entry, 0, len(rows))
	for _, row := range rows {
		result = append(result, entryFromRow(row))
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(result)))
	return result, nil
}

// insertParams builds the insert for entry under a fresh id
func insertParams(entry *service.Entry, sourceID *uuid.UUID) (sqlc.InsertEntryParams, error) {
	regID, err := parseID("registry", entry.RegistryID)
	if err != nil {
		return sqlc.InsertEntryParams{}, err
	}
	now := time.Now().UTC()
	return sqlc.InsertEntryParams{
		ID:                uuid.New(),
		RegistryID:        regID,
		Name:              entry.Name,
		DisplayName:       optional(entry.DisplayName),
		Version:           entry.Version,
		ServiceType:       optional(string(entry.ServiceType)),
		ServiceCategory:   optional(string(entry.ServiceCategory)),
		ServiceUrl:        optional(entry.ServiceURL),
		DefinitionType:    optional(string(entry.DefinitionType)),
		DefinitionUrl:     optional(entry.DefinitionURL),
		DefinitionContent: entry.DefinitionContent,
		SourceEntryID:     sourceID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}
