// Package config provides configuration loading and management for the endpoint registry.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/toolhive-endpoint-registry/internal/httpclient"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
	"github.com/stacklok/toolhive-endpoint-registry/internal/telemetry"
	"github.com/stacklok/toolhive-endpoint-registry/internal/validators"
)

const (
	// EnvPrefix is the prefix of every environment variable the server reads
	EnvPrefix = "THV_ENDPOINT_REGISTRY"

	// PasswordEnvVar holds the database password when no passwordFile is set
	PasswordEnvVar = EnvPrefix + "_DATABASE_PASSWORD"

	defaultSSLMode = "require"
)

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	// Tenant is used for requests that carry no tenant header.
	// Defaults to "carbon.super" if not specified
	Tenant string `yaml:"tenant,omitempty"`

	// Registries are created at startup when they do not exist yet
	Registries []RegistryConfig `yaml:"registries,omitempty"`

	// Database selects the PostgreSQL store. Without it entries are kept in memory.
	Database *DatabaseConfig `yaml:"database,omitempty"`

	// Fetch controls how definitions referenced by URL are retrieved
	Fetch *FetchConfig `yaml:"fetch,omitempty"`

	// Telemetry configures tracing and metrics
	Telemetry *telemetry.Config `yaml:"telemetry,omitempty"`
}

// RegistryConfig defines a registry seeded at startup
type RegistryConfig struct {
	// ID pins the registry id so clients can address it without a lookup.
	// Must be a UUID when set.
	ID string `yaml:"id,omitempty"`

	// Name is unique per tenant
	Name string `yaml:"name"`

	DisplayName string `yaml:"displayName,omitempty"`

	// Type is one of WSO2, ETCD, K8, CONSUL or EUREKA. Defaults to WSO2
	Type string `yaml:"type,omitempty"`
}

// FetchConfig defines how URL-referenced definitions are downloaded
type FetchConfig struct {
	// Timeout bounds a single fetch (e.g., "10s")
	Timeout string `yaml:"timeout,omitempty"`

	// MaxSize is the largest definition accepted, in bytes
	MaxSize int64 `yaml:"maxSize,omitempty"`
}

// DatabaseConfig defines database connection settings
type DatabaseConfig struct {
	// Host is the database server hostname or IP address
	Host string `yaml:"host"`

	// Port is the database server port
	Port int `yaml:"port"`

	// User is the database username
	User string `yaml:"user"`

	// PasswordFile is the path to a file containing the database password.
	// The file should contain only the password with optional trailing whitespace
	PasswordFile string `yaml:"passwordFile,omitempty"`

	// Database is the database name
	Database string `yaml:"database"`

	// SSLMode is the SSL mode for the connection (disable, require, verify-ca, verify-full)
	SSLMode string `yaml:"sslMode,omitempty"`

	// MaxConns is the maximum number of connections in the pool
	MaxConns int32 `yaml:"maxConns,omitempty"`

	// MinConns is the number of connections the pool keeps open when idle
	MinConns int32 `yaml:"minConns,omitempty"`

	// ConnMaxLifetime is the maximum lifetime of a connection (e.g., "1h", "30m")
	ConnMaxLifetime string `yaml:"connMaxLifetime,omitempty"`

	// MigrateOnStart applies pending schema migrations before serving
	MigrateOnStart bool `yaml:"migrateOnStart,omitempty"`
}

// GetPassword returns the database password using the following priority:
// 1. Read from PasswordFile if specified
// 2. Read from the THV_ENDPOINT_REGISTRY_DATABASE_PASSWORD environment variable
//
// The password from file will have leading/trailing whitespace trimmed.
func (d *DatabaseConfig) GetPassword() (string, error) {
	if d.PasswordFile != "" {
		cleanPath := filepath.Clean(d.PasswordFile)

		data, err := os.ReadFile(cleanPath)
		if err != nil {
			return "", fmt.Errorf("failed to read password from file %s: %w", d.PasswordFile, err)
		}

		return strings.TrimSpace(string(data)), nil
	}

	if envPassword := os.Getenv(PasswordEnvVar); envPassword != "" {
		return envPassword, nil
	}

	return "", fmt.Errorf(
		"no database password configured: set passwordFile or %s environment variable", PasswordEnvVar,
	)
}

// GetConnectionString builds a PostgreSQL connection URL.
// The password is URL-escaped to handle special characters safely.
func (d *DatabaseConfig) GetConnectionString() (string, error) {
	password, err := d.GetPassword()
	if err != nil {
		return "", err
	}

	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = defaultSSLMode
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Database,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String(), nil
}

// GetConnMaxLifetime returns the parsed connection lifetime, or zero when unset
func (d *DatabaseConfig) GetConnMaxLifetime() (time.Duration, error) {
	if d.ConnMaxLifetime == "" {
		return 0, nil
	}
	return time.ParseDuration(d.ConnMaxLifetime)
}

// LoadConfig loads and parses configuration from a YAML file
func LoadConfig(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	if loaderCfg.path == "" {
		return nil, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(loaderCfg.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// GetTenant returns the default tenant, using "carbon.super" if not specified
func (c *Config) GetTenant() string {
	if c.Tenant == "" {
		return service.DefaultTenant
	}
	return c.Tenant
}

// GetFetchTimeout returns the fetch timeout, using httpclient.DefaultTimeout if not specified
func (c *Config) GetFetchTimeout() time.Duration {
	if c.Fetch == nil || c.Fetch.Timeout == "" {
		return httpclient.DefaultTimeout
	}
	// validate guarantees the value parses
	d, _ := time.ParseDuration(c.Fetch.Timeout)
	return d
}

// GetFetchMaxSize returns the largest accepted definition size in bytes
func (c *Config) GetFetchMaxSize() int64 {
	if c.Fetch == nil || c.Fetch.MaxSize == 0 {
		return httpclient.DefaultMaxResponseSize
	}
	return c.Fetch.MaxSize
}

// GetRegistryType returns the parsed registry type, defaulting to WSO2
func (r *RegistryConfig) GetRegistryType() (service.RegistryType, error) {
	if r.Type == "" {
		return service.RegistryTypeWSO2, nil
	}
	return service.ParseRegistryType(r.Type)
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}

	registryNames := make(map[string]bool)
	registryIDs := make(map[string]bool)
	for i, reg := range c.Registries {
		if err := validateRegistryConfig(&reg, i); err != nil {
			return err
		}

		if registryNames[reg.Name] {
			return fmt.Errorf("registry[%d]: duplicate registry name '%s'", i, reg.Name)
		}
		registryNames[reg.Name] = true

		if reg.ID != "" {
			if registryIDs[reg.ID] {
				return fmt.Errorf("registry[%d]: duplicate registry id '%s'", i, reg.ID)
			}
			registryIDs[reg.ID] = true
		}
	}

	if err := validateFetchConfig(c.Fetch); err != nil {
		return err
	}

	if err := validateDatabaseConfig(c.Database); err != nil {
		return err
	}

	return c.Telemetry.Validate()
}

// validateRegistryConfig validates a single registry configuration
func validateRegistryConfig(reg *RegistryConfig, index int) error {
	if reg.Name == "" {
		return fmt.Errorf("registry[%d]: name is required", index)
	}
	prefix := fmt.Sprintf("registry[%d] (%s)", index, reg.Name)

	if _, err := validators.ValidateName(reg.Name); err != nil {
		return fmt.Errorf("%s: %w", prefix, err)
	}
	if reg.ID != "" {
		if _, err := uuid.Parse(reg.ID); err != nil {
			return fmt.Errorf("%s: id must be a UUID: %w", prefix, err)
		}
	}
	if _, err := reg.GetRegistryType(); err != nil {
		return fmt.Errorf("%s: %w", prefix, err)
	}
	return nil
}

// validateFetchConfig validates the definition fetch settings
func validateFetchConfig(fetch *FetchConfig) error {
	if fetch == nil {
		return nil
	}
	if fetch.Timeout != "" {
		d, err := time.ParseDuration(fetch.Timeout)
		if err != nil {
			return fmt.Errorf("fetch.timeout must be a valid duration (e.g., '10s'): %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("fetch.timeout must be positive, got %s", fetch.Timeout)
		}
	}
	if fetch.MaxSize < 0 {
		return fmt.Errorf("fetch.maxSize must not be negative, got %d", fetch.MaxSize)
	}
	return nil
}

// validateDatabaseConfig checks the fields a connection cannot be made without
func validateDatabaseConfig(db *DatabaseConfig) error {
	if db == nil {
		return nil
	}
	if db.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if db.Port == 0 {
		return fmt.Errorf("database.port is required")
	}
	if db.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if db.Database == "" {
		return fmt.Errorf("database.database is required")
	}
	if _, err := db.GetConnMaxLifetime(); err != nil {
		return fmt.Errorf("database.connMaxLifetime must be a valid duration: %w", err)
	}
	return nil
}
