package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/stacklok/toolhive-endpoint-registry/internal/definition"
	"github.com/stacklok/toolhive-endpoint-registry/internal/otel"
	"github.com/stacklok/toolhive-endpoint-registry/internal/telemetry"
	"github.com/stacklok/toolhive-endpoint-registry/internal/validators"
	"github.com/stacklok/toolhive-endpoint-registry/internal/versions"
)

// ServiceTracerName is the name used for the entry manager tracer
const ServiceTracerName = "github.com/stacklok/toolhive-endpoint-registry/service"

const (
	opCreateRegistry     = "create_registry"
	opGetRegistry        = "get_registry"
	opUpdateRegistry     = "update_registry"
	opDeleteRegistry     = "delete_registry"
	opCreateEntry        = "create_entry"
	opUpdateEntry        = "update_entry"
	opCreateEntryVersion = "create_entry_version"
	opDeleteEntry        = "delete_entry"
	opGetEntry           = "get_entry"
	opGetDefinition      = "get_definition"
	opListEntryVersions  = "list_entry_versions"
)

// entryManager runs every write through validate, normalize, persist. It
// holds no mutable state; uniqueness is left to the store.
type entryManager struct {
	store     EntryStore
	validator DefinitionValidator
	tracer    trace.Tracer
	metrics   *telemetry.EntryMetrics
}

var _ Service = (*entryManager)(nil)

// NewEntryManager creates the Service backed by store. Without WithValidator
// a definition.Validator with default fetch settings is used.
func NewEntryManager(store EntryStore, opts ...ManagerOption) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("entry store cannot be nil")
	}

	m := &entryManager{store: store}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	if m.validator == nil {
		v, err := definition.NewValidator()
		if err != nil {
			return nil, fmt.Errorf("failed to create definition validator: %w", err)
		}
		m.validator = v
	}

	return m, nil
}

// CheckReadiness checks the store is reachable
func (m *entryManager) CheckReadiness(ctx context.Context) error {
	if err := m.store.Ping(ctx); err != nil {
		return fmt.Errorf("store not ready: %w", storeError(err))
	}
	return nil
}

// CreateRegistry creates a registry owned by the tenant in ctx
func (m *entryManager) CreateRegistry(ctx context.Context, meta RegistryMetadata) (_ *Registry, err error) {
	tenant := TenantFromContext(ctx)
	ctx, span := otel.StartSpan(ctx, m.tracer, "EntryManager.CreateRegistry",
		trace.WithAttributes(otel.AttrTenant.String(tenant)),
	)
	defer func() { m.finish(ctx, span, opCreateRegistry, err) }()

	meta, err = checkRegistryInput(meta)
	if err != nil {
		return nil, err
	}

	created, err := m.store.CreateRegistry(ctx, &Registry{
		ID:          meta.ID,
		Name:        meta.Name,
		DisplayName: meta.DisplayName,
		Type:        meta.Type,
		Tenant:      tenant,
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: registry %q", ErrAlreadyExists, meta.Name)
		}
		return nil, storeError(err)
	}

	slog.InfoContext(ctx, "Registry created",
		"registry_id", created.ID,
		"name", created.Name,
		"tenant", tenant)
	return created, nil
}

// GetRegistry returns a registry of the tenant in ctx
func (m *entryManager) GetRegistry(ctx context.Context, registryID string) (_ *Registry, err error) {
	ctx, span := otel.StartSpan(ctx, m.tracer, "EntryManager.GetRegistry",
		trace.WithAttributes(otel.AttrRegistryID.String(registryID)),
	)
	defer func() { m.finish(ctx, span, opGetRegistry, err) }()

	return m.requireRegistry(ctx, registryID)
}

// UpdateRegistry replaces the name, display name and type of a registry
func (m *entryManager) UpdateRegistry(
	ctx context.Context, registryID string, meta RegistryMetadata,
) (_ *Registry, err error) {
	ctx, span := otel.StartSpan(ctx, m.tracer, "EntryManager.UpdateRegistry",
		trace.WithAttributes(otel.AttrRegistryID.String(registryID)),
	)
	defer func() { m.finish(ctx, span, opUpdateRegistry, err) }()

	meta, err = checkRegistryInput(meta)
	if err != nil {
		return nil, err
	}

	existing, err := m.requireRegistry(ctx, registryID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Name = meta.Name
	updated.DisplayName = meta.DisplayName
	updated.Type = meta.Type

	saved, err := m.store.UpdateRegistry(ctx, &updated)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: registry %q", ErrAlreadyExists, meta.Name)
		}
		return nil, storeError(err)
	}
	return saved, nil
}

// DeleteRegistry removes a registry together with all its entries
func (m *entryManager) DeleteRegistry(ctx context.Context, registryID string) (err error) {
	ctx, span := otel.StartSpan(ctx, m.tracer, "EntryManager.DeleteRegistry",
		trace.WithAttributes(otel.AttrRegistryID.String(registryID)),
	)
	defer func() { m.finish(ctx, span, opDeleteRegistry, err) }()

	if _, err = m.requireRegistry(ctx, registryID); err != nil {
		return err
	}
	if err = m.store.DeleteRegistry(ctx, registryID); err != nil {
		return storeError(err)
	}

	slog.InfoContext(ctx, "Registry deleted", "registry_id", registryID)
	return nil
}

// CreateEntry validates and normalizes the definition, then persists a new entry
func (m *entryManager) CreateEntry(
	ctx context.Context, registryID string, meta EntryMetadata, src definition.Source,
) (_ *Entry, err error) {
	ctx, span := otel.StartSpan(ctx, m.tracer, "EntryManager.CreateEntry",
		trace.WithAttributes(
			otel.AttrRegistryID.String(registryID),
			otel.AttrEntryName.String(meta.Name),
			otel.AttrEntryVersion.String(meta.Version),
			otel.AttrDefinitionType.String(meta.DefinitionType.String()),
			otel.AttrDefinitionSrc.String(sourceKind(src)),
		),
	)
	defer func() { m.finish(ctx, span, opCreateEntry, err) }()

	meta, err = checkEntryInput(meta, src)
	if err != nil {
		return nil, err
	}
	if _, err = m.requireRegistry(ctx, registryID); err != nil {
		return nil, err
	}

	content, definitionURL, err := m.prepareDefinition(ctx, meta, src)
	if err != nil {
		return nil, err
	}

	created, err := m.store.PutEntry(ctx, &Entry{
		RegistryID:        registryID,
		Name:              meta.Name,
		DisplayName:       meta.DisplayName,
		Version:           meta.Version,
		ServiceType:       meta.ServiceType,
		ServiceCategory:   meta.ServiceCategory,
		ServiceURL:        meta.ServiceURL,
		DefinitionType:    meta.DefinitionType,
		DefinitionURL:     definitionURL,
		DefinitionContent: content,
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: entry %q with version %q", ErrAlreadyExists, meta.Name, meta.Version)
		}
		return nil, storeError(err)
	}

	slog.InfoContext(ctx, "Entry created",
		"registry_id", registryID,
		"entry_id", created.ID,
		"name", created.Name,
		"version", created.Version)
	return created, nil
}

// UpdateEntry replaces the metadata of an entry and, when src is not empty,
// its definition. Without a new source the stored definition is kept.
func (m *entryManager) UpdateEntry(
	ctx context.Context, registryID, entryID string, meta EntryMetadata, src definition.Source,
) (_ *Entry, err error) {
	ctx, span := otel.StartSpan(ctx, m.tracer, "EntryManager.UpdateEntry",
		trace.WithAttributes(
			otel.AttrRegistryID.String(registryID),
			otel.AttrEntryID.String(entryID),
			otel.AttrDefinitionSrc.String(sourceKind(src)),
		),
	)
	defer func() { m.finish(ctx, span, opUpdateEntry, err) }()

	meta, err = checkEntryInput(meta, src)
	if err != nil {
		return nil, err
	}
	if _, err = m.requireRegistry(ctx, registryID); err != nil {
		return nil, err
	}

	existing, err := m.store.GetEntry(ctx, registryID, entryID)
	if err != nil {
		return nil, storeError(err)
	}

	updated := existing.Clone()
	updated.Name = meta.Name
	updated.DisplayName = meta.DisplayName
	updated.Version = meta.Version
	updated.ServiceType = meta.ServiceType
	updated.ServiceCategory = meta.ServiceCategory
	updated.ServiceURL = meta.ServiceURL

	if src.IsEmpty() {
		if err = checkKeptDefinition(existing, meta.DefinitionType); err != nil {
			return nil, err
		}
		if meta.DefinitionType != "" {
			updated.DefinitionType = meta.DefinitionType
		}
	} else {
		content, definitionURL, prepErr := m.prepareDefinition(ctx, meta, src)
		if prepErr != nil {
			return nil, prepErr
		}
		updated.DefinitionType = meta.DefinitionType
		updated.DefinitionContent = content
		updated.DefinitionURL = definitionURL
	}

	saved, err := m.store.UpdateEntry(ctx, updated)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: entry %q with version %q", ErrAlreadyExists, meta.Name, meta.Version)
		}
		return nil, storeError(err)
	}

	slog.InfoContext(ctx, "Entry updated",
		"registry_id", registryID,
		"entry_id", saved.ID,
		"definition_replaced", !src.IsEmpty())
	return saved, nil
}

// CreateEntryVersion clones an entry under a new version. The definition is
// carried over as stored and is not validated again.
func (m *entryManager) CreateEntryVersion(
	ctx context.Context, registryID, entryID, version string,
) (_ *Entry, err error) {
	ctx, span := otel.StartSpan(ctx, m.tracer, "EntryManager.CreateEntryVersion",
		trace.WithAttributes(
			otel.AttrRegistryID.String(registryID),
			otel.AttrEntryID.String(entryID),
			otel.AttrEntryVersion.String(version),
		),
	)
	defer func() { m.finish(ctx, span, opCreateEntryVersion, err) }()

	version, err = validators.ValidateVersion(version)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	if _, err = m.requireRegistry(ctx, registryID); err != nil {
		return nil, err
	}

	source, err := m.store.GetEntry(ctx, registryID, entryID)
	if err != nil {
		return nil, storeError(err)
	}

	next := source.Clone()
	next.ID = ""
	next.Version = version
	next.SourceEntryID = source.ID
	next.CreatedAt = time.Time{}
	next.UpdatedAt = time.Time{}

	newID, err := m.store.CreateVersion(ctx, source.ID, next)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: entry %q already has version %q", ErrAlreadyExists, source.Name, version)
		}
		return nil, storeError(err)
	}

	created, err := m.store.GetEntry(ctx, registryID, newID)
	if err != nil {
		return nil, storeError(err)
	}

	slog.InfoContext(ctx, "Entry version created",
		"registry_id", registryID,
		"source_entry_id", source.ID,
		"entry_id", created.ID,
		"version", created.Version)
	return created, nil
}

// DeleteEntry removes an entry. Other versions of the same name are untouched.
func (m *entryManager) DeleteEntry(ctx context.Context, registryID, entryID string) (err error) {
	ctx, span := otel.StartSpan(ctx, m.tracer, "EntryManager.DeleteEntry",
		trace.WithAttributes(
			otel.AttrRegistryID.String(registryID),
			otel.AttrEntryID.String(entryID),
		),
	)
	defer func() { m.finish(ctx, span, opDeleteEntry, err) }()

	if _, err = m.requireRegistry(ctx, registryID); err != nil {
		return err
	}

	entry, err := m.store.GetEntry(ctx, registryID, entryID)
	if err != nil {
		return storeError(err)
	}
	if err = m.store.DeleteEntry(ctx, entry.ID); err != nil {
		return storeError(err)
	}

	slog.InfoContext(ctx, "Entry deleted",
		"registry_id", registryID,
		"entry_id", entry.ID,
		"name", entry.Name,
		"version", entry.Version)
	return nil
}

// GetEntry returns an entry
func (m *entryManager) GetEntry(ctx context.Context, registryID, entryID string) (_ *Entry, err error) {
	ctx, span := otel.StartSpan(ctx, m.tracer, "EntryManager.GetEntry",
		trace.WithAttributes(
			otel.AttrRegistryID.String(registryID),
			otel.AttrEntryID.String(entryID),
		),
	)
	defer func() { m.finish(ctx, span, opGetEntry, err) }()

	if _, err = m.requireRegistry(ctx, registryID); err != nil {
		return nil, err
	}

	entry, err := m.store.GetEntry(ctx, registryID, entryID)
	if err != nil {
		return nil, storeError(err)
	}
	return entry, nil
}

// GetDefinition returns the stored definition of an entry with its media type.
// Entries whose definition was given by URL have no stored content.
func (m *entryManager) GetDefinition(ctx context.Context, registryID, entryID string) (_ *Definition, err error) {
	ctx, span := otel.StartSpan(ctx, m.tracer, "EntryManager.GetDefinition",
		trace.WithAttributes(
			otel.AttrRegistryID.String(registryID),
			otel.AttrEntryID.String(entryID),
		),
	)
	defer func() { m.finish(ctx, span, opGetDefinition, err) }()

	if _, err = m.requireRegistry(ctx, registryID); err != nil {
		return nil, err
	}

	entry, err := m.store.GetEntry(ctx, registryID, entryID)
	if err != nil {
		return nil, storeError(err)
	}
	if !entry.HasDefinition() {
		return nil, fmt.Errorf("%w: definition of entry %s", ErrNotFound, entryID)
	}

	return &Definition{
		Type:      entry.DefinitionType,
		MediaType: definition.ResolveMediaType(entry.DefinitionType),
		Content:   entry.DefinitionContent,
	}, nil
}

// ListEntryVersions returns every version of the named entry, newest first.
// Only the first one is marked Latest.
func (m *entryManager) ListEntryVersions(
	ctx context.Context, registryID, name string,
) (_ []*EntryVersion, err error) {
	ctx, span := otel.StartSpan(ctx, m.tracer, "EntryManager.ListEntryVersions",
		trace.WithAttributes(
			otel.AttrRegistryID.String(registryID),
			otel.AttrEntryName.String(name),
		),
	)
	defer func() { m.finish(ctx, span, opListEntryVersions, err) }()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: entry name is required", ErrBadInput)
	}
	if _, err = m.requireRegistry(ctx, registryID); err != nil {
		return nil, err
	}

	entries, err := m.store.ListEntryVersions(ctx, registryID, name)
	if err != nil {
		return nil, storeError(err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: entry %q", ErrNotFound, name)
	}

	versions.SortNewestFirst(entries, func(e *Entry) string { return e.Version })

	result := make([]*EntryVersion, 0, len(entries))
	for i, e := range entries {
		result = append(result, &EntryVersion{Entry: e, Latest: i == 0})
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(result)))
	return result, nil
}

// requireRegistry loads registryID for the tenant in ctx
func (m *entryManager) requireRegistry(ctx context.Context, registryID string) (*Registry, error) {
	if strings.TrimSpace(registryID) == "" {
		return nil, fmt.Errorf("%w: registry id is required", ErrBadInput)
	}

	registry, err := m.store.GetRegistry(ctx, registryID, TenantFromContext(ctx))
	if err != nil {
		return nil, storeError(err)
	}
	return registry, nil
}

// prepareDefinition validates src and returns what is stored for it: the
// normalized bytes for inline content, or the URL for a remote definition.
func (m *entryManager) prepareDefinition(
	ctx context.Context, meta EntryMetadata, src definition.Source,
) ([]byte, string, error) {
	if src.IsEmpty() {
		return nil, "", nil
	}

	start := time.Now()
	err := m.validator.Validate(ctx, src, meta.DefinitionType)
	m.metrics.RecordValidation(ctx, meta.DefinitionType.String(), sourceKind(src), time.Since(start), err == nil)
	if err != nil {
		slog.DebugContext(ctx, "Definition rejected",
			"name", meta.Name,
			"definition_type", meta.DefinitionType,
			"source", sourceKind(src),
			"error", err)
		return nil, "", fmt.Errorf("definition of entry %q: %w", meta.Name, err)
	}

	if !src.IsInline() {
		return nil, src.URL, nil
	}

	normalized, err := definition.Normalize(src.Content, meta.DefinitionType)
	if err != nil {
		return nil, "", fmt.Errorf("definition of entry %q: %w", meta.Name, err)
	}
	return normalized, "", nil
}

func (m *entryManager) finish(ctx context.Context, span trace.Span, operation string, err error) {
	otel.RecordError(span, err)
	m.metrics.RecordOperation(ctx, operation, err == nil)
	span.End()
}

// checkEntryInput applies every rule that needs no I/O and returns meta with
// trimmed name and version
func checkEntryInput(meta EntryMetadata, src definition.Source) (EntryMetadata, error) {
	name, err := validators.ValidateName(meta.Name)
	if err != nil {
		return meta, fmt.Errorf("%w: entry %v", ErrBadInput, err)
	}
	meta.Name = name

	version, err := validators.ValidateVersion(meta.Version)
	if err != nil {
		return meta, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	meta.Version = version

	if meta.ServiceType != "" && !meta.ServiceType.IsValid() {
		return meta, fmt.Errorf("%w: unknown service type %q", ErrBadInput, meta.ServiceType)
	}
	if meta.ServiceCategory != "" && !meta.ServiceCategory.IsValid() {
		return meta, fmt.Errorf("%w: unknown service category %q", ErrBadInput, meta.ServiceCategory)
	}
	if meta.DefinitionType != "" && !meta.DefinitionType.IsValid() {
		return meta, fmt.Errorf("%w: unknown definition type %q", ErrBadInput, meta.DefinitionType)
	}

	if src.IsInline() && src.URL != "" {
		return meta, fmt.Errorf("%w: supply either a definition file or a definition URL, not both", ErrBadInput)
	}
	if !src.IsEmpty() && meta.DefinitionType == "" {
		return meta, fmt.Errorf("%w: definitionType is required when a definition is supplied", ErrBadInput)
	}
	return meta, nil
}

// checkKeptDefinition rejects a type change on an update that keeps the
// stored definition
func checkKeptDefinition(existing *Entry, requested definition.Type) error {
	hasDefinition := existing.HasDefinition() || existing.DefinitionURL != ""
	if requested == "" || !hasDefinition || requested == existing.DefinitionType {
		return nil
	}
	return fmt.Errorf("%w: definitionType cannot change from %s to %s without a new definition",
		ErrBadInput, existing.DefinitionType, requested)
}

func checkRegistryInput(meta RegistryMetadata) (RegistryMetadata, error) {
	name, err := validators.ValidateName(meta.Name)
	if err != nil {
		return meta, fmt.Errorf("%w: registry %v", ErrBadInput, err)
	}
	meta.Name = name

	if meta.Type == "" {
		meta.Type = RegistryTypeWSO2
	}
	if !meta.Type.IsValid() {
		return meta, fmt.Errorf("%w: unknown registry type %q", ErrBadInput, meta.Type)
	}
	return meta, nil
}

// storeError passes classified store errors through and wraps anything else in ErrStore
func storeError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrAlreadyExists),
		errors.Is(err, ErrBadInput), errors.Is(err, ErrStore):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
}

func sourceKind(src definition.Source) string {
	switch {
	case src.IsInline():
		return "inline"
	case src.URL != "":
		return "url"
	default:
		return "none"
	}
}
