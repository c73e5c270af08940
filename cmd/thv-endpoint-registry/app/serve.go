package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	registryapp "github.com/stacklok/toolhive-endpoint-registry/internal/app"
	"github.com/stacklok/toolhive-endpoint-registry/internal/config"
	"github.com/stacklok/toolhive-endpoint-registry/internal/telemetry"
	"github.com/stacklok/toolhive-endpoint-registry/internal/versions"
)

const defaultGracefulTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the endpoint registry API server",
		Long: `Start the endpoint registry API server.

The configuration file (--config) sets the default tenant, the registries
created at startup, the database (entries are kept in memory without one),
definition fetch limits and telemetry.`,
		RunE: runServe,
	}

	cmd.Flags().String("address", ":8080", "Address to listen on")
	cmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")
	cmd.Flags().Duration("graceful-timeout", defaultGracefulTimeout, "Time to wait for in-flight requests on shutdown")

	for _, name := range []string{"address", "config", "graceful-timeout"} {
		if err := viper.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			slog.Error("Failed to bind flag", "flag", name, "error", err)
		}
	}
	if err := cmd.MarkFlagRequired("config"); err != nil {
		slog.Error("Failed to mark config flag as required", "error", err)
	}

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configPath := viper.GetString("config")
	cfg, err := config.LoadConfig(config.WithConfigPath(configPath))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	slog.Info("Loaded configuration",
		"path", configPath,
		"tenant", cfg.GetTenant(),
		"registries", len(cfg.Registries),
		"database", cfg.Database != nil,
	)

	tel, err := telemetry.New(ctx, telemetry.WithTelemetryConfig(telemetryConfig(cfg)))
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shut down telemetry", "error", err)
		}
	}()

	registryApp, err := registryapp.NewRegistryApp(ctx,
		registryapp.WithConfig(cfg),
		registryapp.WithAddress(viper.GetString("address")),
		registryapp.WithTelemetry(tel),
	)
	if err != nil {
		return fmt.Errorf("failed to create registry app: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- registryApp.Start()
	}()

	select {
	case err := <-errCh:
		if stopErr := registryApp.Stop(viper.GetDuration("graceful-timeout")); stopErr != nil {
			slog.Error("Failed to stop registry app", "error", stopErr)
		}
		return err
	case <-ctx.Done():
		slog.Info("Received shutdown signal")
	}

	return registryApp.Stop(viper.GetDuration("graceful-timeout"))
}

// telemetryConfig returns the telemetry section, reporting the binary's
// version when none is configured
func telemetryConfig(cfg *config.Config) *telemetry.Config {
	if cfg.Telemetry == nil {
		return nil
	}
	tc := *cfg.Telemetry
	if tc.ServiceVersion == "" {
		tc.ServiceVersion = versions.Version
	}
	return &tc
}
