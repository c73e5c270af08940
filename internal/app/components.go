package app

import (
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
	"github.com/stacklok/toolhive-endpoint-registry/internal/telemetry"
)

// AppComponents groups the long-lived components of the server
//
//nolint:revive // This name is fine
type AppComponents struct {
	// Service runs the registry and entry operations
	Service service.Service

	// Telemetry owns the tracer and meter providers; nil when not built by the app
	Telemetry *telemetry.Telemetry
}
