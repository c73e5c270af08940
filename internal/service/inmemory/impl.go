// Package inmemory provides an in-memory implementation of the EntryStore interface
package inmemory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
)

// entryKey is the uniqueness key of an entry within its registry
type entryKey struct {
	registryID string
	name       string
	version    string
}

// registryKey is the uniqueness key of a registry within its tenant
type registryKey struct {
	tenant string
	name   string
}

// store implements service.EntryStore on maps guarded by one mutex. Returned
// values are copies; callers never share memory with the store.
type store struct {
	mu sync.RWMutex // Protects every map below

	registries      map[string]*service.Registry
	registryByName  map[registryKey]string
	entries         map[string]*service.Entry
	entryByKey      map[entryKey]string
	entriesRegistry map[string]map[string]struct{}

	now func() time.Time
}

var _ service.EntryStore = (*store)(nil)

// Option is a functional option for configuring the in-memory store
type Option func(*store)

// WithClock sets the time source used for CreatedAt and UpdatedAt
func WithClock(now func() time.Time) Option {
	return func(s *store) {
		s.now = now
	}
}

// New creates an empty in-memory store
func New(opts ...Option) service.EntryStore {
	s := &store{
		registries:      make(map[string]*service.Registry),
		registryByName:  make(map[registryKey]string),
		entries:         make(map[string]*service.Entry),
		entryByKey:      make(map[entryKey]string),
		entriesRegistry: make(map[string]map[string]struct{}),
		now:             func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping always succeeds
func (*store) Ping(_ context.Context) error {
	return nil
}

// GetRegistry returns the registry with registryID owned by tenant
func (s *store) GetRegistry(_ context.Context, registryID, tenant string) (*service.Registry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.registries[registryID]
	if !ok || r.Tenant != tenant {
		return nil, fmt.Errorf("%w: registry %s", service.ErrNotFound, registryID)
	}
	out := *r
	return &out, nil
}

// CreateRegistry persists a registry, assigning an id when none is set
func (s *store) CreateRegistry(_ context.Context, registry *service.Registry) (*service.Registry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := registryKey{tenant: registry.Tenant, name: registry.Name}
	if _, taken := s.registryByName[key]; taken {
		return nil, fmt.Errorf("%w: registry %q", service.ErrAlreadyExists, registry.Name)
	}

	r := *registry
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if _, taken := s.registries[r.ID]; taken {
		return nil, fmt.Errorf("%w: registry id %s", service.ErrAlreadyExists, r.ID)
	}
	now := s.now()
	r.CreatedAt = now
	r.UpdatedAt = now

	s.registries[r.ID] = &r
	s.registryByName[key] = r.ID
	s.entriesRegistry[r.ID] = make(map[string]struct{})

	out := r
	return &out, nil
}

// UpdateRegistry replaces the name, display name and type of a registry
func (s *store) UpdateRegistry(_ context.Context, registry *service.Registry) (*service.Registry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.registries[registry.ID]
	if !ok {
		return nil, fmt.Errorf("%w: registry %s", service.ErrNotFound, registry.ID)
	}

	oldKey := registryKey{tenant: current.Tenant, name: current.Name}
	newKey := registryKey{tenant: current.Tenant, name: registry.Name}
	if id, taken := s.registryByName[newKey]; taken && id != current.ID {
		return nil, fmt.Errorf("%w: registry %q", service.ErrAlreadyExists, registry.Name)
	}

	delete(s.registryByName, oldKey)
	current.Name = registry.Name
	current.DisplayName = registry.DisplayName
	current.Type = registry.Type
	current.UpdatedAt = s.now()
	s.registryByName[newKey] = current.ID

	out := *current
	return &out, nil
}

// DeleteRegistry removes a registry and every entry in it
func (s *store) DeleteRegistry(_ context.Context, registryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.registries[registryID]
	if !ok {
		return fmt.Errorf("%w: registry %s", service.ErrNotFound, registryID)
	}

	for entryID := range s.entriesRegistry[registryID] {
		s.deleteEntryLocked(entryID)
	}
	delete(s.entriesRegistry, registryID)
	delete(s.registryByName, registryKey{tenant: r.Tenant, name: r.Name})
	delete(s.registries, registryID)
	return nil
}

// GetEntry returns the entry with entryID in registryID
func (s *store) GetEntry(_ context.Context, registryID, entryID string) (*service.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[entryID]
	if !ok || e.RegistryID != registryID {
		return nil, fmt.Errorf("%w: entry %s", service.ErrNotFound, entryID)
	}
	return e.Clone(), nil
}

// PutEntry persists a new entry
func (s *store) PutEntry(_ context.Context, entry *service.Entry) (*service.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.insertEntryLocked(entry)
	if err != nil {
		return nil, err
	}
	return e.Clone(), nil
}

// UpdateEntry replaces a stored entry identified by entry.ID
func (s *store) UpdateEntry(_ context.Context, entry *service.Entry) (*service.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.entries[entry.ID]
	if !ok || current.RegistryID != entry.RegistryID {
		return nil, fmt.Errorf("%w: entry %s", service.ErrNotFound, entry.ID)
	}

	oldKey := keyOf(current)
	newKey := keyOf(entry)
	if id, taken := s.entryByKey[newKey]; taken && id != current.ID {
		return nil, fmt.Errorf("%w: entry %q version %q", service.ErrAlreadyExists, entry.Name, entry.Version)
	}

	updated := entry.Clone()
	updated.CreatedAt = current.CreatedAt
	updated.SourceEntryID = current.SourceEntryID
	updated.UpdatedAt = s.now()

	delete(s.entryByKey, oldKey)
	s.entries[updated.ID] = updated
	s.entryByKey[newKey] = updated.ID

	return updated.Clone(), nil
}

// DeleteEntry removes an entry
func (s *store) DeleteEntry(_ context.Context, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[entryID]; !ok {
		return fmt.Errorf("%w: entry %s", service.ErrNotFound, entryID)
	}
	s.deleteEntryLocked(entryID)
	return nil
}

// CreateVersion persists entry as a version derived from sourceEntryID. The
// uniqueness check and the insert happen under one lock, so of two concurrent
// calls for the same version exactly one succeeds.
func (s *store) CreateVersion(_ context.Context, sourceEntryID string, entry *service.Entry) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[sourceEntryID]; !ok {
		return "", fmt.Errorf("%w: entry %s", service.ErrNotFound, sourceEntryID)
	}

	version := entry.Clone()
	version.SourceEntryID = sourceEntryID
	e, err := s.insertEntryLocked(version)
	if err != nil {
		return "", err
	}
	return e.ID, nil
}

// ListEntryVersions returns every entry named name in registryID, oldest first
func (s *store) ListEntryVersions(_ context.Context, registryID, name string) ([]*service.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*service.Entry
	for entryID := range s.entriesRegistry[registryID] {
		e := s.entries[entryID]
		if e.Name == name {
			result = append(result, e.Clone())
		}
	}
	slices.SortFunc(result, func(a, b *service.Entry) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return result, nil
}

// insertEntryLocked stores a copy of entry under a new id.
// Caller must hold s.mu write lock.
func (s *store) insertEntryLocked(entry *service.Entry) (*service.Entry, error) {
	members, ok := s.entriesRegistry[entry.RegistryID]
	if !ok {
		return nil, fmt.Errorf("%w: registry %s", service.ErrNotFound, entry.RegistryID)
	}

	key := keyOf(entry)
	if _, taken := s.entryByKey[key]; taken {
		return nil, fmt.Errorf("%w: entry %q version %q", service.ErrAlreadyExists, entry.Name, entry.Version)
	}

	e := entry.Clone()
	e.ID = uuid.NewString()
	now := s.now()
	e.CreatedAt = now
	e.UpdatedAt = now

	s.entries[e.ID] = e
	s.entryByKey[key] = e.ID
	members[e.ID] = struct{}{}
	return e, nil
}

// deleteEntryLocked removes an entry and clears lineage links to it.
// Caller must hold s.mu write lock.
func (s *store) deleteEntryLocked(entryID string) {
	e, ok := s.entries[entryID]
	if !ok {
		return
	}
	delete(s.entryByKey, keyOf(e))
	delete(s.entriesRegistry[e.RegistryID], entryID)
	delete(s.entries, entryID)

	for _, other := range s.entries {
		if other.SourceEntryID == entryID {
			other.SourceEntryID = ""
		}
	}
}

func keyOf(e *service.Entry) entryKey {
	return entryKey{registryID: e.RegistryID, name: e.Name, version: e.Version}
}
