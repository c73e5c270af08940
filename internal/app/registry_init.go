package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/stacklok/toolhive-endpoint-registry/internal/config"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
)

// InitializeRegistries makes sure every registry in the config exists for the
// configured tenant. Registries that already exist are left untouched, so it
// is safe to call on every startup.
func InitializeRegistries(ctx context.Context, cfg *config.Config, svc service.RegistryService) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}
	if svc == nil {
		return fmt.Errorf("registry service is required")
	}

	tenant := cfg.GetTenant()
	ctx = service.WithTenant(ctx, tenant)

	created := 0
	for _, regCfg := range cfg.Registries {
		regType, err := regCfg.GetRegistryType()
		if err != nil {
			return fmt.Errorf("registry '%s': %w", regCfg.Name, err)
		}

		if regCfg.ID != "" {
			_, err := svc.GetRegistry(ctx, regCfg.ID)
			if err == nil {
				slog.Debug("Registry already exists", "registry_id", regCfg.ID, "registry_name", regCfg.Name)
				continue
			}
			if !errors.Is(err, service.ErrNotFound) {
				return fmt.Errorf("failed to look up registry '%s': %w", regCfg.Name, err)
			}
		}

		registry, err := svc.CreateRegistry(ctx, service.RegistryMetadata{
			ID:          regCfg.ID,
			Name:        regCfg.Name,
			DisplayName: regCfg.DisplayName,
			Type:        regType,
		})
		if errors.Is(err, service.ErrAlreadyExists) {
			slog.Debug("Registry already exists", "registry_name", regCfg.Name)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create registry '%s': %w", regCfg.Name, err)
		}

		created++
		slog.Info("Initialized registry",
			"registry_id", registry.ID,
			"registry_name", registry.Name,
			"type", registry.Type,
		)
	}

	slog.Info("Registries initialized",
		"tenant", tenant,
		"configured", len(cfg.Registries),
		"created", created,
	)
	return nil
}
