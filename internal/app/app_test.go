package app

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/toolhive-endpoint-registry/internal/config"
	mocksvc "github.com/stacklok/toolhive-endpoint-registry/internal/service/mocks"
)

// createTestApp builds a RegistryApp around a mocked service without going
// through NewRegistryApp, so no store or registry seeding is involved
func createTestApp(t *testing.T, ctrl *gomock.Controller, addr string) (*RegistryApp, *atomic.Int32) {
	t.Helper()

	cfg := &config.Config{}
	appCfg := &registryAppConfig{
		config:         cfg,
		address:        addr,
		telemetry:      newTestTelemetry(t),
		requestTimeout: 10 * time.Second,
		readTimeout:    10 * time.Second,
		writeTimeout:   15 * time.Second,
		idleTimeout:    60 * time.Second,
	}

	server, err := buildHTTPServer(appCfg, mocksvc.NewMockService(ctrl))
	require.NoError(t, err)

	cleanups := &atomic.Int32{}
	return &RegistryApp{
		config:     cfg,
		components: &AppComponents{Telemetry: appCfg.telemetry},
		httpServer: server,
		cleanup:    func() { cleanups.Add(1) },
	}, cleanups
}

// freeAddr reserves an ephemeral port and releases it for the server to use
func freeAddr(t *testing.T) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())
	return addr
}

func waitForServer(t *testing.T, addr string) {
	t.Helper()
	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 5*time.Second, 20*time.Millisecond)
}

func TestRegistryApp_StartAndStop(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	addr := freeAddr(t)
	app, cleanups := createTestApp(t, ctrl, addr)

	errChan := make(chan error, 1)
	go func() {
		errChan <- app.Start()
	}()
	waitForServer(t, addr)

	resp, err := http.Get("http://" + addr + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get("http://" + addr + "/metrics")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, app.Stop(5*time.Second))
	assert.Equal(t, int32(1), cleanups.Load())

	select {
	case startErr := <-errChan:
		require.NoError(t, startErr)
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after Stop()")
	}
}

func TestRegistryApp_StopIdempotent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	app, cleanups := createTestApp(t, ctrl, freeAddr(t))

	require.NoError(t, app.Stop(time.Second))
	require.NoError(t, app.Stop(time.Second))
	assert.Equal(t, int32(1), cleanups.Load())
}

func TestRegistryApp_StopWithoutCleanup(t *testing.T) {
	t.Parallel()

	app := &RegistryApp{httpServer: &http.Server{Addr: ":0"}}
	require.NoError(t, app.Stop(time.Second))
}

func TestRegistryApp_StopTimeout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	addr := freeAddr(t)
	app, cleanups := createTestApp(t, ctrl, addr)

	release := make(chan struct{})
	defer close(release)
	app.httpServer.Handler = http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		<-release
	})

	go func() { _ = app.Start() }()
	waitForServer(t, addr)

	go func() {
		resp, err := http.Get("http://" + addr + "/slow")
		if err == nil {
			_ = resp.Body.Close()
		}
	}()
	// let the request reach the handler
	time.Sleep(100 * time.Millisecond)

	err := app.Stop(50 * time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int32(1), cleanups.Load(), "storage is released even when shutdown times out")
}

func TestRegistryApp_Accessors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	app, _ := createTestApp(t, ctrl, ":0")

	assert.Same(t, app.config, app.GetConfig())
	assert.Same(t, app.httpServer, app.GetHTTPServer())
}

func TestRegistryApp_StartError_InvalidAddress(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	app, _ := createTestApp(t, ctrl, "256.0.0.1:99999")

	err := app.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP server failed")
}
