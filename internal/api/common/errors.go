package common

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/stacklok/toolhive-endpoint-registry/internal/definition"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
)

// StatusForError maps a service or definition error to an HTTP status code
func StatusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrBadInput),
		errors.Is(err, definition.ErrInvalidDefinition),
		errors.Is(err, definition.ErrTransform),
		errors.Is(err, definition.ErrUnsupportedType):
		return http.StatusBadRequest
	case errors.Is(err, definition.ErrFetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WriteServiceError writes err with the status StatusForError picks.
// Server errors are logged and replaced by a generic message.
func WriteServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
			"request_id", middleware.GetReqID(r.Context()),
		)
		WriteErrorResponse(w, "internal server error", status)
		return
	}
	WriteErrorResponse(w, err.Error(), status)
}
