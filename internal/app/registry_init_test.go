package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/toolhive-endpoint-registry/internal/config"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service/inmemory"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service/mocks"
)

const pinnedID = "0b6c3a52-8d5e-4f0e-9a57-2f1f3d7c9e10"

func TestInitializeRegistries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     *config.Config
		setup   func(m *mocks.MockRegistryService)
		wantErr string
	}{
		{
			name:  "no registries configured",
			cfg:   &config.Config{},
			setup: func(_ *mocks.MockRegistryService) {},
		},
		{
			name: "creates registry with default type",
			cfg:  &config.Config{Registries: []config.RegistryConfig{{Name: "payments"}}},
			setup: func(m *mocks.MockRegistryService) {
				m.EXPECT().CreateRegistry(gomock.Any(), service.RegistryMetadata{
					Name: "payments",
					Type: service.RegistryTypeWSO2,
				}).Return(&service.Registry{ID: "r1", Name: "payments", Type: service.RegistryTypeWSO2}, nil)
			},
		},
		{
			name: "existing name is skipped",
			cfg:  &config.Config{Registries: []config.RegistryConfig{{Name: "payments"}}},
			setup: func(m *mocks.MockRegistryService) {
				m.EXPECT().CreateRegistry(gomock.Any(), gomock.Any()).
					Return(nil, service.ErrAlreadyExists)
			},
		},
		{
			name: "pinned id already present",
			cfg:  &config.Config{Registries: []config.RegistryConfig{{ID: pinnedID, Name: "payments"}}},
			setup: func(m *mocks.MockRegistryService) {
				m.EXPECT().GetRegistry(gomock.Any(), pinnedID).
					Return(&service.Registry{ID: pinnedID, Name: "payments"}, nil)
			},
		},
		{
			name: "pinned id missing is created",
			cfg: &config.Config{Registries: []config.RegistryConfig{
				{ID: pinnedID, Name: "mesh", DisplayName: "Mesh", Type: "CONSUL"},
			}},
			setup: func(m *mocks.MockRegistryService) {
				m.EXPECT().GetRegistry(gomock.Any(), pinnedID).Return(nil, service.ErrNotFound)
				m.EXPECT().CreateRegistry(gomock.Any(), service.RegistryMetadata{
					ID:          pinnedID,
					Name:        "mesh",
					DisplayName: "Mesh",
					Type:        service.RegistryTypeConsul,
				}).Return(&service.Registry{ID: pinnedID, Name: "mesh"}, nil)
			},
		},
		{
			name: "lookup failure aborts",
			cfg:  &config.Config{Registries: []config.RegistryConfig{{ID: pinnedID, Name: "payments"}}},
			setup: func(m *mocks.MockRegistryService) {
				m.EXPECT().GetRegistry(gomock.Any(), pinnedID).Return(nil, service.ErrStore)
			},
			wantErr: "failed to look up registry 'payments'",
		},
		{
			name: "create failure aborts",
			cfg: &config.Config{Registries: []config.RegistryConfig{
				{Name: "first"}, {Name: "second"},
			}},
			setup: func(m *mocks.MockRegistryService) {
				m.EXPECT().CreateRegistry(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection reset"))
			},
			wantErr: "failed to create registry 'first'",
		},
		{
			name:    "unknown type",
			cfg:     &config.Config{Registries: []config.RegistryConfig{{Name: "payments", Type: "ZOOKEEPER"}}},
			setup:   func(_ *mocks.MockRegistryService) {},
			wantErr: "registry 'payments'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockRegistryService(ctrl)
			tt.setup(svc)

			err := InitializeRegistries(context.Background(), tt.cfg, svc)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestInitializeRegistries_UsesConfiguredTenant(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockRegistryService(ctrl)

	svc.EXPECT().CreateRegistry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, meta service.RegistryMetadata) (*service.Registry, error) {
			if service.TenantFromContext(ctx) != "acme.com" {
				return nil, errors.New("unexpected tenant")
			}
			return &service.Registry{ID: "r1", Name: meta.Name}, nil
		})

	cfg := &config.Config{Tenant: "acme.com", Registries: []config.RegistryConfig{{Name: "payments"}}}
	require.NoError(t, InitializeRegistries(context.Background(), cfg, svc))
}

func TestInitializeRegistries_Idempotent(t *testing.T) {
	t.Parallel()

	svc, err := service.NewEntryManager(inmemory.New())
	require.NoError(t, err)

	cfg := &config.Config{Registries: []config.RegistryConfig{
		{ID: pinnedID, Name: "payments"},
		{Name: "mesh", Type: "ETCD"},
	}}

	require.NoError(t, InitializeRegistries(context.Background(), cfg, svc))
	require.NoError(t, InitializeRegistries(context.Background(), cfg, svc))

	ctx := service.WithTenant(context.Background(), cfg.GetTenant())
	reg, err := svc.GetRegistry(ctx, pinnedID)
	require.NoError(t, err)
	assert.Equal(t, "payments", reg.Name)
}

func TestInitializeRegistries_RequiresArguments(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	require.Error(t, InitializeRegistries(context.Background(), nil, mocks.NewMockRegistryService(ctrl)))
	require.Error(t, InitializeRegistries(context.Background(), &config.Config{}, nil))
}
