// Package helpers drives an endpoint registry server from integration tests.
package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/onsi/gomega"

	registryapp "github.com/stacklok/toolhive-endpoint-registry/internal/app"
	"github.com/stacklok/toolhive-endpoint-registry/internal/config"
)

// TenantHeader carries the tenant of a request
const TenantHeader = "X-Tenant-Domain"

// ServerTestHelper manages the registry server lifecycle for testing
type ServerTestHelper struct {
	ctx        context.Context
	configPath string
	baseURL    string
	address    string
	httpClient *http.Client
	app        *registryapp.RegistryApp
}

// NewServerTestHelper creates a helper for a server listening on a free local port
func NewServerTestHelper(ctx context.Context, configPath string) *ServerTestHelper {
	address := freeAddress()
	return &ServerTestHelper{
		ctx:        ctx,
		configPath: configPath,
		address:    address,
		baseURL:    "http://" + address,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func freeAddress() string {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	address := listener.Addr().String()
	gomega.Expect(listener.Close()).To(gomega.Succeed())
	return address
}

// StartServer builds the application from the config file and serves it in the background
func (s *ServerTestHelper) StartServer() error {
	cfg, err := config.LoadConfig(config.WithConfigPath(s.configPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app, err := registryapp.NewRegistryApp(s.ctx,
		registryapp.WithConfig(cfg),
		registryapp.WithAddress(s.address),
	)
	if err != nil {
		return fmt.Errorf("failed to build app: %w", err)
	}
	s.app = app

	go func() {
		if err := app.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Server start failed: %v\n", err)
		}
	}()

	return nil
}

// StopServer gracefully stops the server
func (s *ServerTestHelper) StopServer() error {
	if s.app != nil {
		return s.app.Stop(5 * time.Second)
	}
	return nil
}

// WaitForServerReady waits until /readiness answers 200
func (s *ServerTestHelper) WaitForServerReady(timeout time.Duration) {
	gomega.Eventually(func() error {
		resp, err := s.httpClient.Get(s.baseURL + "/readiness")
		if err != nil {
			return err
		}
		defer func() {
			_ = resp.Body.Close()
		}()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("server returned status %d", resp.StatusCode)
		}
		return nil
	}, timeout, 100*time.Millisecond).Should(gomega.Succeed(), "Server should be ready")
}

// GetBaseURL returns the base URL of the server
func (s *ServerTestHelper) GetBaseURL() string {
	return s.baseURL
}

// Get issues a GET for a path below the server root
func (s *ServerTestHelper) Get(tenant, path string) (*http.Response, error) {
	return s.Do(tenant, http.MethodGet, path, "", nil)
}

// Do issues a request with an optional body and tenant header
func (s *ServerTestHelper) Do(tenant, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(s.ctx, method, s.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tenant != "" {
		req.Header.Set(TenantHeader, tenant)
	}
	return s.httpClient.Do(req)
}

// DoJSON sends payload as a JSON body
func (s *ServerTestHelper) DoJSON(tenant, method, path string, payload any) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return s.Do(tenant, method, path, "application/json", bytes.NewReader(data))
}

// DoMultipart sends the entry metadata together with an inline definition file
func (s *ServerTestHelper) DoMultipart(
	tenant, method, path string, metadata any, fileName string, definition []byte,
) (*http.Response, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	meta, err := json.Marshal(metadata)
	if err != nil {
		return nil, err
	}
	if err := writer.WriteField("registryEntry", string(meta)); err != nil {
		return nil, err
	}
	if definition != nil {
		part, err := writer.CreateFormFile("definitionFile", filepath.Base(fileName))
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(definition); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	return s.Do(tenant, method, path, writer.FormDataContentType(), &body)
}

// DecodeJSON decodes and closes a response body
func DecodeJSON(resp *http.Response, out any) {
	defer func() {
		_ = resp.Body.Close()
	}()
	gomega.Expect(json.NewDecoder(resp.Body).Decode(out)).To(gomega.Succeed())
}

// ReadBody reads and closes a response body
func ReadBody(resp *http.Response) []byte {
	defer func() {
		_ = resp.Body.Close()
	}()
	data, err := io.ReadAll(resp.Body)
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	return data
}

// WriteConfigYAML writes config content to dir and returns its path
func WriteConfigYAML(dir, content string) string {
	path := filepath.Join(dir, "config.yaml")
	gomega.Expect(os.WriteFile(path, []byte(content), 0600)).To(gomega.Succeed())
	return path
}

// ReadBodyIfFailed returns the body of an unexpected error response for
// assertion messages, leaving successful responses unread
func ReadBodyIfFailed(resp *http.Response) []byte {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}
	return ReadBody(resp)
}
