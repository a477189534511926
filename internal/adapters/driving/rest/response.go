package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/custodia-labs/libsearch/internal/core/domain"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func sendJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		l := requestLogger(r)
		l.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// sendError maps err onto a status code and error body.
func sendError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	sendStatus(w, r, status, code, err)
}

func sendStatus(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	level := zerolog.WarnLevel
	if status >= http.StatusInternalServerError {
		level = zerolog.ErrorLevel
	}
	l := requestLogger(r)
	l.WithLevel(level).Err(err).Int("status", status).Str("code", code).Msg("API error")

	sendJSON(w, r, status, errorResponse{Error: code, Message: err.Error()})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, "catalog_unavailable"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
