package database

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/stacklok/toolhive-endpoint-registry/internal/db/sqlc"
	"github.com/stacklok/toolhive-endpoint-registry/internal/definition"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
)

// parseID parses a stored id. Ids that are not UUIDs cannot exist in the
// database, so they are reported as not found.
func parseID(kind, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s %s", service.ErrNotFound, kind, id)
	}
	return parsed, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func registryFromRow(row sqlc.EndpointRegistry) *service.Registry {
	return &service.Registry{
		ID:          row.ID.String(),
		Name:        row.Name,
		DisplayName: deref(row.DisplayName),
		Type:        service.RegistryType(row.RegType),
		Tenant:      row.Tenant,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}

func entryFromRow(row sqlc.EndpointRegistryEntry) *service.Entry {
	e := &service.Entry{
		ID:                row.ID.String(),
		RegistryID:        row.RegistryID.String(),
		Name:              row.Name,
		DisplayName:       deref(row.DisplayName),
		Version:           row.Version,
		ServiceType:       service.ServiceType(deref(row.ServiceType)),
		ServiceCategory:   service.ServiceCategory(deref(row.ServiceCategory)),
		ServiceURL:        deref(row.ServiceUrl),
		DefinitionType:    definition.Type(deref(row.DefinitionType)),
		DefinitionURL:     deref(row.DefinitionUrl),
		DefinitionContent: row.DefinitionContent,
		CreatedAt:         row.CreatedAt.UTC(),
		UpdatedAt:         row.UpdatedAt.UTC(),
	}
	if row.SourceEntryID != nil {
		e.SourceEntryID = row.SourceEntryID.String()
	}
	return e
}
