package storage

import (
	"context"
	"log/slog"

	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service/inmemory"
)

// MemoryFactory creates an in-memory store. Nothing survives a restart.
type MemoryFactory struct{}

var _ Factory = (*MemoryFactory)(nil)

// NewMemoryFactory creates a factory for the in-memory store
func NewMemoryFactory() *MemoryFactory {
	slog.Warn("No database configured, entries are kept in memory only")
	return &MemoryFactory{}
}

// CreateStore returns a new in-memory store
func (*MemoryFactory) CreateStore(_ context.Context) (service.EntryStore, error) {
	return inmemory.New(), nil
}

// Cleanup is a no-op
func (*MemoryFactory) Cleanup() {}
