package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	v1 "github.com/stacklok/toolhive-endpoint-registry/internal/api/v1"
	"github.com/stacklok/toolhive-endpoint-registry/internal/definition"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service/mocks"
)

const (
	registryID = "3f1c9e52-8a41-4d0e-9b7f-61c2d5a7e0b4"
	entryID    = "b7d2a1c4-0e93-4f5a-8c6b-2a9e4d1f7c30"
	entryPath  = "/registries/" + registryID + "/entries/" + entryID
)

const petstoreYAML = `openapi: 3.0.0
info:
  title: Petstore
  version: 1.0.0
paths: {}
`

func newRouter(t *testing.T, setup func(*mocks.MockService), opts ...v1.Option) http.Handler {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	if setup != nil {
		setup(svc)
	}
	return v1.Router(svc, opts...)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body["error"]
}

// multipartRequest builds a request carrying metadata in the registryEntry
// part and, when file is not nil, a definitionFile part
func multipartRequest(t *testing.T, method, target, metadata string, file []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if metadata != "" {
		require.NoError(t, mw.WriteField(v1.EntryPart, metadata))
	}
	if file != nil {
		fw, err := mw.CreateFormFile(v1.DefinitionPart, "definition")
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func sampleEntry() *service.Entry {
	return &service.Entry{
		ID:             entryID,
		RegistryID:     registryID,
		Name:           "petstore",
		Version:        "1.0.0",
		ServiceType:    service.ServiceTypeREST,
		DefinitionType: definition.TypeOAS,
	}
}

func TestTenantMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		wantTenant string
		wantStatus int
	}{
		{name: "header wins", header: "acme.com", wantTenant: "acme.com", wantStatus: http.StatusOK},
		{name: "header is trimmed", header: "  acme.com ", wantTenant: "acme.com", wantStatus: http.StatusOK},
		{name: "missing header uses default", header: "", wantTenant: "default.org", wantStatus: http.StatusOK},
		{name: "inner whitespace rejected", header: "acme com", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			h := v1.TenantMiddleware("default.org")(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = service.TenantFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(v1.TenantHeader, tt.header)
			}
			rr := serve(h, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantTenant, got)
		})
	}
}

func TestCreateRegistry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setup      func(*mocks.MockService)
		wantStatus int
		wantError  string
	}{
		{
			name: "created",
			body: `{"name":"payments","displayName":"Payments","type":"etcd"}`,
			setup: func(m *mocks.MockService) {
				m.EXPECT().CreateRegistry(gomock.Any(), service.RegistryMetadata{
					Name: "payments", DisplayName: "Payments", Type: service.RegistryTypeEtcd,
				}).Return(&service.Registry{ID: registryID, Name: "payments", Type: service.RegistryTypeEtcd}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "type defaults in the service",
			body: `{"name":"payments"}`,
			setup: func(m *mocks.MockService) {
				m.EXPECT().CreateRegistry(gomock.Any(), service.RegistryMetadata{Name: "payments"}).
					Return(&service.Registry{ID: registryID, Name: "payments", Type: service.RegistryTypeWSO2}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request body",
		},
		{
			name:       "unknown type never reaches the service",
			body:       `{"name":"payments","type":"zookeeper"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "unknown registry type",
		},
		{
			name: "duplicate name",
			body: `{"name":"payments"}`,
			setup: func(m *mocks.MockService) {
				m.EXPECT().CreateRegistry(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: registry payments", service.ErrAlreadyExists))
			},
			wantStatus: http.StatusConflict,
			wantError:  "already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newRouter(t, tt.setup)

			req := httptest.NewRequest(http.MethodPost, "/registries", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := serve(h, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				assert.Contains(t, errorBody(t, rr), tt.wantError)
				return
			}
			assert.Equal(t, "/v1/registries/"+registryID, rr.Header().Get("Location"))
			var reg service.Registry
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &reg))
			assert.Equal(t, registryID, reg.ID)
		})
	}
}

func TestRegistryReadUpdateDelete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		body       string
		setup      func(*mocks.MockService)
		wantStatus int
	}{
		{
			name:   "get",
			method: http.MethodGet,
			setup: func(m *mocks.MockService) {
				m.EXPECT().GetRegistry(gomock.Any(), registryID).
					Return(&service.Registry{ID: registryID, Name: "payments"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "get other tenant",
			method: http.MethodGet,
			setup: func(m *mocks.MockService) {
				m.EXPECT().GetRegistry(gomock.Any(), registryID).
					Return(nil, fmt.Errorf("%w: registry %s", service.ErrNotFound, registryID))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "update",
			method: http.MethodPut,
			body:   `{"name":"billing","type":"CONSUL"}`,
			setup: func(m *mocks.MockService) {
				m.EXPECT().UpdateRegistry(gomock.Any(), registryID, service.RegistryMetadata{
					Name: "billing", Type: service.RegistryTypeConsul,
				}).Return(&service.Registry{ID: registryID, Name: "billing", Type: service.RegistryTypeConsul}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "update to a taken name",
			method: http.MethodPut,
			body:   `{"name":"billing"}`,
			setup: func(m *mocks.MockService) {
				m.EXPECT().UpdateRegistry(gomock.Any(), registryID, gomock.Any()).
					Return(nil, fmt.Errorf("%w: registry billing", service.ErrAlreadyExists))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			setup: func(m *mocks.MockService) {
				m.EXPECT().DeleteRegistry(gomock.Any(), registryID).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "delete store failure",
			method: http.MethodDelete,
			setup: func(m *mocks.MockService) {
				m.EXPECT().DeleteRegistry(gomock.Any(), registryID).
					Return(fmt.Errorf("%w: connection refused", service.ErrStore))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newRouter(t, tt.setup)

			req := httptest.NewRequest(tt.method, "/registries/"+registryID, strings.NewReader(tt.body))
			rr := serve(h, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCreateEntry(t *testing.T) {
	t.Parallel()

	meta := `{"entryName":"petstore","version":"1.0.0","serviceType":"REST","definitionType":"OAS"}`
	urlMeta := `{"entryName":"petstore","version":"1.0.0","definitionType":"OAS",` +
		`"definitionUrl":" https://example.com/petstore.yaml "}`
	wantMeta := service.EntryMetadata{
		Name: "petstore", Version: "1.0.0", ServiceType: service.ServiceTypeREST, DefinitionType: definition.TypeOAS,
	}

	tests := []struct {
		name       string
		request    func(t *testing.T) *http.Request
		setup      func(*mocks.MockService)
		opts       []v1.Option
		wantStatus int
		wantError  string
	}{
		{
			name: "multipart with definition file",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, http.MethodPost, "/registries/"+registryID+"/entries", meta, []byte(petstoreYAML))
			},
			setup: func(m *mocks.MockService) {
				m.EXPECT().CreateEntry(gomock.Any(), registryID, wantMeta, definition.Source{Content: []byte(petstoreYAML)}).
					Return(sampleEntry(), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "multipart with definition url",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, http.MethodPost, "/registries/"+registryID+"/entries", urlMeta, nil)
			},
			setup: func(m *mocks.MockService) {
				m.EXPECT().CreateEntry(gomock.Any(), registryID, gomock.Any(),
					definition.Source{URL: "https://example.com/petstore.yaml"}).
					Return(sampleEntry(), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "empty definition file is passed on as empty content",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, http.MethodPost, "/registries/"+registryID+"/entries", meta, []byte{})
			},
			setup: func(m *mocks.MockService) {
				// an empty, non-nil slice does not match a nil one
				m.EXPECT().CreateEntry(gomock.Any(), registryID, gomock.Any(), definition.Source{Content: []byte{}}).
					Return(nil, fmt.Errorf("%w: OAS definition is empty", definition.ErrInvalidDefinition))
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid definition",
		},
		{
			name: "json body without definition",
			request: func(_ *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/registries/"+registryID+"/entries",
					strings.NewReader(`{"entryName":"petstore","version":"1.0.0"}`))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			setup: func(m *mocks.MockService) {
				m.EXPECT().CreateEntry(gomock.Any(), registryID,
					service.EntryMetadata{Name: "petstore", Version: "1.0.0"}, definition.Source{}).
					Return(sampleEntry(), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "missing metadata part",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, http.MethodPost, "/registries/"+registryID+"/entries", "", []byte(petstoreYAML))
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "registryEntry part is required",
		},
		{
			name: "malformed metadata part",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, http.MethodPost, "/registries/"+registryID+"/entries", "{", nil)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid registryEntry",
		},
		{
			name: "unsupported content type",
			request: func(_ *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/registries/"+registryID+"/entries", strings.NewReader("x"))
				req.Header.Set("Content-Type", "text/plain")
				return req
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "unsupported Content-Type",
		},
		{
			name: "body over the limit",
			request: func(_ *testing.T) *http.Request {
				body := `{"entryName":"petstore","version":"1.0.0","displayName":"` + strings.Repeat("x", 256) + `"}`
				req := httptest.NewRequest(http.MethodPost, "/registries/"+registryID+"/entries", strings.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			opts:       []v1.Option{v1.WithMaxRequestSize(64)},
			wantStatus: http.StatusRequestEntityTooLarge,
		},
		{
			name: "duplicate version",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, http.MethodPost, "/registries/"+registryID+"/entries", meta, []byte(petstoreYAML))
			},
			setup: func(m *mocks.MockService) {
				m.EXPECT().CreateEntry(gomock.Any(), registryID, gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: petstore 1.0.0", service.ErrAlreadyExists))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "definition url unreachable",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, http.MethodPost, "/registries/"+registryID+"/entries", urlMeta, nil)
			},
			setup: func(m *mocks.MockService) {
				m.EXPECT().CreateEntry(gomock.Any(), registryID, gomock.Any(), gomock.Any()).
					Return(nil, &definition.FetchError{URL: "https://example.com/petstore.yaml", Err: errors.New("timeout")})
			},
			wantStatus: http.StatusBadGateway,
			wantError:  "failed to fetch definition",
		},
		{
			name: "registry of another tenant",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, http.MethodPost, "/registries/"+registryID+"/entries", meta, []byte(petstoreYAML))
			},
			setup: func(m *mocks.MockService) {
				m.EXPECT().CreateEntry(gomock.Any(), registryID, gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: registry %s", service.ErrNotFound, registryID))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newRouter(t, tt.setup, tt.opts...)

			rr := serve(h, tt.request(t))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				assert.Contains(t, errorBody(t, rr), tt.wantError)
			}
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "/v1/registries/"+registryID+"/entries/"+entryID, rr.Header().Get("Location"))
				var entry service.Entry
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entry))
				assert.Equal(t, "petstore", entry.Name)
			}
		})
	}
}

func TestUpdateEntry(t *testing.T) {
	t.Parallel()

	meta := `{"entryName":"petstore","version":"1.0.1","displayName":"Pets"}`

	t.Run("metadata only keeps the definition", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, func(m *mocks.MockService) {
			m.EXPECT().UpdateEntry(gomock.Any(), registryID, entryID,
				service.EntryMetadata{Name: "petstore", Version: "1.0.1", DisplayName: "Pets"}, definition.Source{}).
				Return(sampleEntry(), nil)
		})

		rr := serve(h, multipartRequest(t, http.MethodPut, entryPath, meta, nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unknown entry", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, func(m *mocks.MockService) {
			m.EXPECT().UpdateEntry(gomock.Any(), registryID, entryID, gomock.Any(), gomock.Any()).
				Return(nil, fmt.Errorf("%w: entry %s", service.ErrNotFound, entryID))
		})

		rr := serve(h, multipartRequest(t, http.MethodPut, entryPath, meta, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("definition that cannot be normalized", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, func(m *mocks.MockService) {
			m.EXPECT().UpdateEntry(gomock.Any(), registryID, entryID, gomock.Any(), gomock.Any()).
				Return(nil, fmt.Errorf("%w: OAS: yaml", definition.ErrTransform))
		})

		rr := serve(h, multipartRequest(t, http.MethodPut, entryPath, meta, []byte("openapi: [")))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetAndDeleteEntry(t *testing.T) {
	t.Parallel()

	t.Run("get", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, func(m *mocks.MockService) {
			m.EXPECT().GetEntry(gomock.Any(), registryID, entryID).Return(sampleEntry(), nil)
		})

		rr := serve(h, httptest.NewRequest(http.MethodGet, entryPath, nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "petstore", got["entryName"])
		assert.NotContains(t, got, "definitionContent")
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, func(m *mocks.MockService) {
			m.EXPECT().DeleteEntry(gomock.Any(), registryID, entryID).Return(nil)
		})

		rr := serve(h, httptest.NewRequest(http.MethodDelete, entryPath, nil))
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("delete twice", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, func(m *mocks.MockService) {
			m.EXPECT().DeleteEntry(gomock.Any(), registryID, entryID).
				Return(fmt.Errorf("%w: entry %s", service.ErrNotFound, entryID))
		})

		rr := serve(h, httptest.NewRequest(http.MethodDelete, entryPath, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCreateEntryVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		setup      func(*mocks.MockService)
		wantStatus int
	}{
		{
			name:  "created",
			query: "?version=2.0.0",
			setup: func(m *mocks.MockService) {
				clone := sampleEntry()
				clone.ID = "0d6f5a9e-3c1b-4e8a-b2d7-9f4c6e1a3b58"
				clone.Version = "2.0.0"
				clone.SourceEntryID = entryID
				m.EXPECT().CreateEntryVersion(gomock.Any(), registryID, entryID, "2.0.0").Return(clone, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing version",
			query:      "",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "blank version",
			query:      "?version=%20",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "version taken",
			query: "?version=1.0.0",
			setup: func(m *mocks.MockService) {
				m.EXPECT().CreateEntryVersion(gomock.Any(), registryID, entryID, "1.0.0").
					Return(nil, fmt.Errorf("%w: petstore 1.0.0", service.ErrAlreadyExists))
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newRouter(t, tt.setup)

			rr := serve(h, httptest.NewRequest(http.MethodPost, entryPath+"/new-version"+tt.query, nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t,
					"/v1/registries/"+registryID+"/entries/0d6f5a9e-3c1b-4e8a-b2d7-9f4c6e1a3b58",
					rr.Header().Get("Location"))
			}
		})
	}
}

func TestGetDefinitionFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		def             *service.Definition
		err             error
		wantStatus      int
		wantContentType string
	}{
		{
			name:            "json definition",
			def:             &service.Definition{Type: definition.TypeOAS, MediaType: definition.MediaTypeJSON, Content: []byte(`{"openapi":"3.0.0"}`)},
			wantStatus:      http.StatusOK,
			wantContentType: "application/json",
		},
		{
			name:            "wsdl definition",
			def:             &service.Definition{Type: definition.TypeWSDL1, MediaType: definition.MediaTypeXML, Content: []byte(`<definitions/>`)},
			wantStatus:      http.StatusOK,
			wantContentType: "text/xml",
		},
		{
			name:            "unspecified media type",
			def:             &service.Definition{Content: []byte("raw")},
			wantStatus:      http.StatusOK,
			wantContentType: "application/octet-stream",
		},
		{
			name:       "no stored definition",
			err:        fmt.Errorf("%w: definition of entry %s", service.ErrNotFound, entryID),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newRouter(t, func(m *mocks.MockService) {
				m.EXPECT().GetDefinition(gomock.Any(), registryID, entryID).Return(tt.def, tt.err)
			})

			rr := serve(h, httptest.NewRequest(http.MethodGet, entryPath+"/definition-file", nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.def != nil {
				assert.Equal(t, tt.wantContentType, rr.Header().Get("Content-Type"))
				assert.Equal(t, tt.def.Content, rr.Body.Bytes())
			}
		})
	}
}

func TestListEntryVersions(t *testing.T) {
	t.Parallel()

	t.Run("lists the lineage of the entry's name", func(t *testing.T) {
		t.Parallel()
		older := sampleEntry()
		newer := sampleEntry()
		newer.ID = "0d6f5a9e-3c1b-4e8a-b2d7-9f4c6e1a3b58"
		newer.Version = "2.0.0"

		h := newRouter(t, func(m *mocks.MockService) {
			m.EXPECT().GetEntry(gomock.Any(), registryID, entryID).Return(older, nil)
			m.EXPECT().ListEntryVersions(gomock.Any(), registryID, "petstore").Return([]*service.EntryVersion{
				{Entry: newer, Latest: true},
				{Entry: older},
			}, nil)
		})

		rr := serve(h, httptest.NewRequest(http.MethodGet, entryPath+"/versions", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Versions []struct {
				Version string `json:"version"`
				Latest  bool   `json:"latest"`
			} `json:"versions"`
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Equal(t, 2, resp.Count)
		assert.Equal(t, "2.0.0", resp.Versions[0].Version)
		assert.True(t, resp.Versions[0].Latest)
		assert.False(t, resp.Versions[1].Latest)
	})

	t.Run("unknown entry", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, func(m *mocks.MockService) {
			m.EXPECT().GetEntry(gomock.Any(), registryID, entryID).
				Return(nil, fmt.Errorf("%w: entry %s", service.ErrNotFound, entryID))
		})

		rr := serve(h, httptest.NewRequest(http.MethodGet, entryPath+"/versions", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestTenantReachesService(t *testing.T) {
	t.Parallel()

	h := newRouter(t, func(m *mocks.MockService) {
		m.EXPECT().GetEntry(gomock.Any(), registryID, entryID).
			DoAndReturn(func(ctx context.Context, _, _ string) (*service.Entry, error) {
				assert.Equal(t, "tenant-b.org", service.TenantFromContext(ctx))
				return sampleEntry(), nil
			})
	}, v1.WithDefaultTenant("tenant-a.org"))

	req := httptest.NewRequest(http.MethodGet, entryPath, nil)
	req.Header.Set(v1.TenantHeader, "tenant-b.org")
	rr := serve(h, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
