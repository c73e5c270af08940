package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/stacklok/toolhive-endpoint-registry/internal/api"
	"github.com/stacklok/toolhive-endpoint-registry/internal/app/storage"
	"github.com/stacklok/toolhive-endpoint-registry/internal/config"
	"github.com/stacklok/toolhive-endpoint-registry/internal/definition"
	"github.com/stacklok/toolhive-endpoint-registry/internal/httpclient"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
	database "github.com/stacklok/toolhive-endpoint-registry/internal/service/db"
	"github.com/stacklok/toolhive-endpoint-registry/internal/telemetry"
)

const (
	defaultHTTPAddress = ":8080"
	// covers a definition fetch at the default fetch timeout
	defaultRequestTimeout = 30 * time.Second
	defaultReadTimeout    = 30 * time.Second
	defaultWriteTimeout   = 35 * time.Second
	defaultIdleTimeout    = 60 * time.Second

	// room for the metadata part and multipart framing around a definition upload
	multipartOverhead int64 = 1 << 20
)

// RegistryAppOptions is a function that configures the registry app builder
type RegistryAppOptions func(*registryAppConfig) error

// registryAppConfig collects what NewRegistryApp builds from. Components left
// nil are built from the configuration.
type registryAppConfig struct {
	config *config.Config

	storageFactory storage.Factory
	httpClient     httpclient.Client
	telemetry      *telemetry.Telemetry

	address        string
	middlewares    []func(http.Handler) http.Handler
	requestTimeout time.Duration
	readTimeout    time.Duration
	writeTimeout   time.Duration
	idleTimeout    time.Duration
}

func baseConfig(opts ...RegistryAppOptions) (*registryAppConfig, error) {
	cfg := &registryAppConfig{
		address:        defaultHTTPAddress,
		requestTimeout: defaultRequestTimeout,
		readTimeout:    defaultReadTimeout,
		writeTimeout:   defaultWriteTimeout,
		idleTimeout:    defaultIdleTimeout,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// NewRegistryApp builds the server: telemetry, the store, the entry service,
// the configured registries and the HTTP server
func NewRegistryApp(ctx context.Context, opts ...RegistryAppOptions) (*RegistryApp, error) {
	cfg, err := baseConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build base configuration: %w", err)
	}
	if cfg.config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	var ownedTelemetry *telemetry.Telemetry
	if cfg.telemetry == nil {
		cfg.telemetry, err = telemetry.New(ctx, telemetry.WithTelemetryConfig(cfg.config.Telemetry))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
		}
		ownedTelemetry = cfg.telemetry
	}

	if cfg.storageFactory == nil {
		cfg.storageFactory, err = storage.NewStorageFactory(ctx, cfg.config,
			storage.WithTracer(cfg.telemetry.Tracer(database.ServiceTracerName)),
		)
		if err != nil {
			shutdownTelemetry(ownedTelemetry)
			return nil, fmt.Errorf("failed to create storage factory: %w", err)
		}
	}

	cleanupNeeded := true
	defer func() {
		if cleanupNeeded {
			cfg.storageFactory.Cleanup()
			shutdownTelemetry(ownedTelemetry)
		}
	}()

	svc, err := buildService(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build service components: %w", err)
	}

	if err := InitializeRegistries(ctx, cfg.config, svc); err != nil {
		return nil, fmt.Errorf("failed to initialize registries: %w", err)
	}

	httpServer, err := buildHTTPServer(cfg, svc)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP server: %w", err)
	}

	cleanupNeeded = false
	return &RegistryApp{
		config: cfg.config,
		components: &AppComponents{
			Service:   svc,
			Telemetry: ownedTelemetry,
		},
		httpServer: httpServer,
		cleanup:    cfg.storageFactory.Cleanup,
	}, nil
}

// WithConfig sets the configuration
func WithConfig(c *config.Config) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.config = c
		return nil
	}
}

// WithAddress sets the HTTP server address
func WithAddress(addr string) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		if addr == "" {
			return fmt.Errorf("address cannot be empty")
		}

		host, port, found := strings.Cut(addr, ":")
		if !found || port == "" {
			return fmt.Errorf("address is not a valid port: %s", addr)
		}
		if host == "localhost" {
			host = "127.0.0.1"
		}
		if host == "" {
			host = "0.0.0.0"
		}

		if _, err := netip.ParseAddrPort(host + ":" + port); err != nil {
			return fmt.Errorf("address is not a valid port: %w", err)
		}

		cfg.address = addr
		return nil
	}
}

// WithMiddlewares replaces the default HTTP middlewares. Telemetry
// middlewares are always added in front of them.
func WithMiddlewares(mw ...func(http.Handler) http.Handler) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.middlewares = mw
		return nil
	}
}

// WithRequestTimeout bounds the time a single request may take
func WithRequestTimeout(d time.Duration) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		if d <= 0 {
			return fmt.Errorf("request timeout must be positive")
		}
		cfg.requestTimeout = d
		return nil
	}
}

// WithStorageFactory injects the storage factory instead of building one from the config
func WithStorageFactory(f storage.Factory) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.storageFactory = f
		return nil
	}
}

// WithHTTPClient sets the client definitions are fetched with
func WithHTTPClient(c httpclient.Client) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.httpClient = c
		return nil
	}
}

// WithTelemetry injects telemetry owned by the caller. Without it telemetry
// is built from the config and shut down by Stop.
func WithTelemetry(t *telemetry.Telemetry) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.telemetry = t
		return nil
	}
}

// buildService builds the entry service over the factory's store
func buildService(ctx context.Context, b *registryAppConfig) (service.Service, error) {
	slog.Info("Initializing service components")

	store, err := b.storageFactory.CreateStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry store: %w", err)
	}

	client := b.httpClient
	if client == nil {
		client = httpclient.NewDefaultClient(
			b.config.GetFetchTimeout(),
			httpclient.WithMaxResponseSize(b.config.GetFetchMaxSize()),
		)
	}

	validator, err := definition.NewValidator(definition.WithHTTPClient(client))
	if err != nil {
		return nil, err
	}

	metrics, err := telemetry.NewEntryMetrics(b.telemetry.MeterProvider())
	if err != nil {
		return nil, fmt.Errorf("failed to create entry metrics: %w", err)
	}

	svc, err := service.NewEntryManager(store,
		service.WithValidator(validator),
		service.WithTracer(b.telemetry.Tracer(service.ServiceTracerName)),
		service.WithMetrics(metrics),
	)
	if err != nil {
		return nil, err
	}

	slog.Info("Service components initialized successfully")
	return svc, nil
}

// buildHTTPServer builds the HTTP server with router and middleware
func buildHTTPServer(b *registryAppConfig, svc service.Service) (*http.Server, error) {
	slog.Info("Initializing HTTP server")

	middlewares := b.middlewares
	if middlewares == nil {
		middlewares = []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.RealIP,
			middleware.Recoverer,
			middleware.Timeout(b.requestTimeout),
			api.LoggingMiddleware,
		}
	}

	// Telemetry goes first so rejected and timed-out requests are measured too
	metricsMiddleware, err := telemetry.MetricsMiddleware(b.telemetry.MeterProvider())
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics middleware: %w", err)
	}
	middlewares = append([]func(http.Handler) http.Handler{
		telemetry.TracingMiddleware(b.telemetry.TracerProvider()),
		metricsMiddleware,
	}, middlewares...)

	router := api.NewServer(svc,
		api.WithMiddlewares(middlewares...),
		api.WithMetricsHandler(b.telemetry.MetricsHandler()),
		api.WithDefaultTenant(b.config.GetTenant()),
		api.WithMaxRequestSize(b.config.GetFetchMaxSize()+multipartOverhead),
	)

	server := &http.Server{
		Addr:              b.address,
		Handler:           router,
		ReadTimeout:       b.readTimeout,
		ReadHeaderTimeout: b.readTimeout,
		WriteTimeout:      b.writeTimeout,
		IdleTimeout:       b.idleTimeout,
	}

	slog.Info("HTTP server configured", "address", b.address)
	return server, nil
}

func shutdownTelemetry(t *telemetry.Telemetry) {
	if t == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := t.Shutdown(ctx); err != nil {
		slog.Warn("Failed to shut down telemetry", "error", err)
	}
}
