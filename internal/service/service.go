// Package service implements the endpoint registry entry lifecycle: creating,
// updating, versioning and deleting entries while keeping their definitions
// valid and normalized.
package service

import (
	"context"
	"errors"

	"github.com/stacklok/toolhive-endpoint-registry/internal/definition"
)

var (
	// ErrNotFound is returned when a registry, entry or stored definition does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a (name, version) pair or registry name is taken
	ErrAlreadyExists = errors.New("already exists")
	// ErrBadInput is returned when caller input is rejected before any I/O
	ErrBadInput = errors.New("bad input")
	// ErrStore is returned when the store fails for a reason other than not found or conflict
	ErrStore = errors.New("store failure")
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks -source=service.go Service

// RegistryService manages the registries entries live in
type RegistryService interface {
	// CreateRegistry creates a registry owned by the tenant in ctx
	CreateRegistry(ctx context.Context, meta RegistryMetadata) (*Registry, error)

	// GetRegistry returns a registry of the tenant in ctx
	GetRegistry(ctx context.Context, registryID string) (*Registry, error)

	// UpdateRegistry replaces the name, display name and type of a registry
	UpdateRegistry(ctx context.Context, registryID string, meta RegistryMetadata) (*Registry, error)

	// DeleteRegistry removes a registry together with all its entries
	DeleteRegistry(ctx context.Context, registryID string) error
}

// EntryService manages entries and their definitions
type EntryService interface {
	// CreateEntry validates and normalizes the definition, then persists a new entry
	CreateEntry(ctx context.Context, registryID string, meta EntryMetadata, src definition.Source) (*Entry, error)

	// UpdateEntry replaces the metadata and, when src is not empty, the definition of an entry
	UpdateEntry(
		ctx context.Context, registryID, entryID string, meta EntryMetadata, src definition.Source,
	) (*Entry, error)

	// CreateEntryVersion clones an entry under a new version
	CreateEntryVersion(ctx context.Context, registryID, entryID, version string) (*Entry, error)

	// DeleteEntry removes an entry
	DeleteEntry(ctx context.Context, registryID, entryID string) error

	// GetEntry returns an entry
	GetEntry(ctx context.Context, registryID, entryID string) (*Entry, error)

	// GetDefinition returns the stored definition of an entry with its media type
	GetDefinition(ctx context.Context, registryID, entryID string) (*Definition, error)

	// ListEntryVersions returns every version of the named entry, newest first
	ListEntryVersions(ctx context.Context, registryID, name string) ([]*EntryVersion, error)
}

// Service is the full surface exposed to the API layer
type Service interface {
	RegistryService
	EntryService

	// CheckReadiness checks if the service is ready to serve requests
	CheckReadiness(ctx context.Context) error
}

// IsRetryable reports whether err came from a collaborator that may succeed
// on a later attempt: a definition fetch or the store. Nothing in this
// package retries on its own.
func IsRetryable(err error) bool {
	return errors.Is(err, definition.ErrFetch) || errors.Is(err, ErrStore)
}
