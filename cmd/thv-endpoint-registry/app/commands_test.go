package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/toolhive-endpoint-registry/internal/config"
	"github.com/stacklok/toolhive-endpoint-registry/internal/telemetry"
	"github.com/stacklok/toolhive-endpoint-registry/internal/versions"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

//nolint:paralleltest // commands bind flags on the global viper instance
func TestVersionCommand_JSON(t *testing.T) {
	out, err := execute(t, "", "version", "--format", "json")
	require.NoError(t, err)

	var info versions.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.NotEmpty(t, info.Platform)
}

//nolint:paralleltest // commands bind flags on the global viper instance
func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "serve")
	assert.Contains(t, out, "migrate")
	assert.Contains(t, out, "version")
}

//nolint:paralleltest // commands bind flags on the global viper instance
func TestServeCommand_Errors(t *testing.T) {
	_, err := execute(t, "", "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config")

	_, err = execute(t, "", "serve", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")

	bad := writeConfig(t, "registries:\n  - name: a\n    type: ZOOKEEPER\n")
	_, err = execute(t, "", "serve", "--config", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

//nolint:paralleltest // commands bind flags on the global viper instance
func TestMigrateCommand_RequiresDatabase(t *testing.T) {
	path := writeConfig(t, "tenant: acme.com\n")

	for _, sub := range []string{"up", "down"} {
		_, err := execute(t, "", "migrate", sub, "--config", path, "--yes")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database configuration is required")
	}
}

//nolint:paralleltest // modifies environment variables
func TestMigrateCommand_Declined(t *testing.T) {
	t.Setenv(config.PasswordEnvVar, "secret")
	path := writeConfig(t, `database:
  host: 127.0.0.1
  port: 1
  user: registry
  database: registry
  sslMode: disable
`)

	out, err := execute(t, "no\n", "migrate", "up", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "registry@127.0.0.1:1/registry")

	_, err = execute(t, "n\n", "migrate", "down", "--config", path, "--num-steps", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yesFlag bool
		input   string
		want    bool
		wantErr bool
	}{
		{name: "yes flag skips prompt", yesFlag: true, want: true},
		{name: "yes", input: "yes\n", want: true},
		{name: "short yes with spaces", input: "  Y \n", want: true},
		{name: "no", input: "no\n", want: false},
		{name: "anything else", input: "maybe\n", want: false},
		{name: "answer without newline", input: "y", want: true},
		{name: "no input", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cmd := &cobra.Command{}
			cmd.Flags().Bool("yes", tt.yesFlag, "")
			cmd.SetIn(strings.NewReader(tt.input))
			var out bytes.Buffer
			cmd.SetOut(&out)

			got, err := confirm(cmd, "Continue?")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if !tt.yesFlag {
				assert.Contains(t, out.String(), "Continue? (yes/no)")
			}
		})
	}
}

func TestTelemetryConfig(t *testing.T) {
	t.Parallel()

	assert.Nil(t, telemetryConfig(&config.Config{}))

	cfg := &config.Config{Telemetry: &telemetry.Config{Enabled: true}}
	got := telemetryConfig(cfg)
	require.NotNil(t, got)
	assert.Equal(t, versions.Version, got.ServiceVersion)
	assert.Empty(t, cfg.Telemetry.ServiceVersion, "the loaded config is not modified")

	cfg.Telemetry.ServiceVersion = "1.2.3"
	assert.Equal(t, "1.2.3", telemetryConfig(cfg).ServiceVersion)
}
