package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/toolhive-endpoint-registry/internal/api"
	"github.com/stacklok/toolhive-endpoint-registry/internal/definition"
	"github.com/stacklok/toolhive-endpoint-registry/internal/otel"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service/mocks"
	"github.com/stacklok/toolhive-endpoint-registry/internal/telemetry"
)

const (
	tracedRegistryID = "5f0c6a1e-3b7d-4c2a-9e8f-1a2b3c4d5e6f"
	tracedEntryID    = "0b6c3a52-8d5e-4f0e-9a57-2f1f3d7c9e10"
	tracedEntryPath  = "/v1/registries/" + tracedRegistryID + "/entries/" + tracedEntryID
)

// serveTracedAPI sends req through the API server behind the tracing
// middleware and returns the recorded server span
func serveTracedAPI(
	t *testing.T, setup func(*mocks.MockService), req *http.Request,
) (tracetest.SpanStub, *httptest.ResponseRecorder) {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	svc := mocks.NewMockService(gomock.NewController(t))
	setup(svc)
	server := api.NewServer(svc, api.WithMiddlewares(telemetry.TracingMiddleware(tp)))

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	return spans[0], rr
}

func spanAttributes(span tracetest.SpanStub) map[attribute.Key]attribute.Value {
	attrs := make(map[attribute.Key]attribute.Value, len(span.Attributes))
	for _, kv := range span.Attributes {
		attrs[kv.Key] = kv.Value
	}
	return attrs
}

func TestTracing_DefinitionFileMediaType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		def       *service.Definition
		mediaType string
	}{
		{
			name:      "openapi served as json",
			def:       &service.Definition{Type: definition.TypeOAS, MediaType: definition.MediaTypeJSON, Content: []byte(`{}`)},
			mediaType: "application/json",
		},
		{
			name: "wsdl served as xml",
			def: &service.Definition{
				Type: definition.TypeWSDL1, MediaType: definition.MediaTypeXML, Content: []byte("<definitions/>"),
			},
			mediaType: "text/xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			span, rr := serveTracedAPI(t, func(m *mocks.MockService) {
				m.EXPECT().GetDefinition(gomock.Any(), tracedRegistryID, tracedEntryID).Return(tt.def, nil)
			}, httptest.NewRequest(http.MethodGet, tracedEntryPath+"/definition-file", nil))
			attrs := spanAttributes(span)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "GET /v1/registries/{registryId}/entries/{entryId}/definition-file", span.Name)
			assert.Equal(t, "getDefinitionFile", attrs[telemetry.AttrAPIOperation].AsString())
			assert.Equal(t, tt.mediaType, attrs[otel.AttrDefinitionMediaType].AsString())
			assert.Equal(t, tracedEntryID, attrs[otel.AttrEntryID].AsString())
			assert.Equal(t, codes.Ok, span.Status.Code)
		})
	}
}

func TestTracing_ErrorStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setup     func(*mocks.MockService)
		request   func() *http.Request
		status    int
		code      codes.Code
		operation string
	}{
		{
			name: "duplicate version is a client error",
			setup: func(m *mocks.MockService) {
				m.EXPECT().CreateEntryVersion(gomock.Any(), tracedRegistryID, tracedEntryID, "2.0.0").
					Return(nil, service.ErrAlreadyExists)
			},
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, tracedEntryPath+"/new-version?version=2.0.0", nil)
			},
			status:    http.StatusConflict,
			code:      codes.Unset,
			operation: "createEntryVersion",
		},
		{
			name: "unreachable definition url is a server error",
			setup: func(m *mocks.MockService) {
				m.EXPECT().UpdateEntry(gomock.Any(), tracedRegistryID, tracedEntryID, gomock.Any(), gomock.Any()).
					Return(nil, &definition.FetchError{URL: "https://partner.example.com/weather.wsdl", Err: errors.New("503")})
			},
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodPut, tracedEntryPath, strings.NewReader(
					`{"entryName":"weather","version":"1.0.0","definitionType":"WSDL1",`+
						`"definitionUrl":"https://partner.example.com/weather.wsdl"}`))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			status:    http.StatusBadGateway,
			code:      codes.Error,
			operation: "updateEntry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			span, rr := serveTracedAPI(t, tt.setup, tt.request())
			attrs := spanAttributes(span)

			require.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.code, span.Status.Code)
			assert.Equal(t, tt.operation, attrs[telemetry.AttrAPIOperation].AsString())
			assert.Equal(t, int64(tt.status), attrs[semconv.HTTPResponseStatusCodeKey].AsInt64())
			_, hasMediaType := attrs[otel.AttrDefinitionMediaType]
			assert.False(t, hasMediaType)
		})
	}
}
