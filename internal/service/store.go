package service

import (
	"context"

	"github.com/stacklok/toolhive-endpoint-registry/internal/definition"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks -source=store.go EntryStore,DefinitionValidator

// EntryStore persists registries and entries. Implementations wrap
// ErrNotFound and ErrAlreadyExists so callers can match them with errors.Is,
// and are the final arbiter of (registry, name, version) uniqueness.
type EntryStore interface {
	// GetRegistry returns the registry with registryID owned by tenant
	GetRegistry(ctx context.Context, registryID, tenant string) (*Registry, error)

	// CreateRegistry persists a registry. An empty ID is assigned by the store.
	CreateRegistry(ctx context.Context, registry *Registry) (*Registry, error)

	// UpdateRegistry replaces the mutable fields of a registry
	UpdateRegistry(ctx context.Context, registry *Registry) (*Registry, error)

	// DeleteRegistry removes a registry and every entry in it
	DeleteRegistry(ctx context.Context, registryID string) error

	// GetEntry returns the entry with entryID in registryID
	GetEntry(ctx context.Context, registryID, entryID string) (*Entry, error)

	// PutEntry persists a new entry and returns it with its assigned id
	PutEntry(ctx context.Context, entry *Entry) (*Entry, error)

	// UpdateEntry replaces a stored entry identified by entry.ID
	UpdateEntry(ctx context.Context, entry *Entry) (*Entry, error)

	// DeleteEntry removes an entry
	DeleteEntry(ctx context.Context, entryID string) error

	// CreateVersion persists entry as a new version derived from sourceEntryID
	// and returns the new id. It never overwrites an existing version.
	CreateVersion(ctx context.Context, sourceEntryID string, entry *Entry) (string, error)

	// ListEntryVersions returns every entry named name in registryID
	ListEntryVersions(ctx context.Context, registryID, name string) ([]*Entry, error)

	// Ping checks the store is reachable
	Ping(ctx context.Context) error
}

// DefinitionValidator is the structural gate a definition passes before it is stored
type DefinitionValidator interface {
	Validate(ctx context.Context, src definition.Source, t definition.Type) error
}
