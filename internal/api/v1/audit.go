package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
)

// audit records a state-changing request on a logger tagged audit=true
func audit(r *http.Request, action string, err error, attrs ...any) {
	ctx := r.Context()
	outcome := "success"
	level := slog.LevelInfo
	if err != nil {
		outcome = "failure"
		level = slog.LevelWarn
		attrs = append(attrs, "error", err.Error())
	}

	slog.Default().With("audit", true).Log(ctx, level, "Audit event",
		append([]any{
			"action", action,
			"outcome", outcome,
			"tenant", service.TenantFromContext(ctx),
			"remote_addr", r.RemoteAddr,
			"request_id", middleware.GetReqID(ctx),
		}, attrs...)...,
	)
}
