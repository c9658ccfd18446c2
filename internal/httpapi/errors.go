package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"llmtools/internal/configedit"
	"llmtools/internal/dashboard"
	"llmtools/internal/engine"
	"llmtools/internal/hub"
	"llmtools/internal/runner"
	"llmtools/internal/tokens"
	"llmtools/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// statusFor maps well-known domain errors to HTTP status codes.
func statusFor(err error) int {
	var he HTTPError
	switch {
	case errors.As(err, &he):
		return he.StatusCode()
	case runner.IsNotAllowed(err):
		return http.StatusForbidden
	case runner.IsInvalidCommand(err), hub.IsInvalidKind(err), hub.IsInvalidInput(err),
		tokens.IsInvalidInput(err), configedit.IsInvalidName(err),
		engine.IsUnknownAction(err), dashboard.IsInvalidRefresh(err):
		return http.StatusBadRequest
	case runner.IsNotFound(err), hub.IsNotFound(err), configedit.IsNotFound(err), configedit.IsDirNotFound(err):
		return http.StatusNotFound
	case configedit.IsAlreadyExists(err):
		return http.StatusConflict
	case hub.IsUpstream(err), tokens.IsLoadFailed(err), engine.IsProcessFailed(err):
		return http.StatusBadGateway
	case engine.IsDependencyUnavailable(err), tokens.IsDependencyUnavailable(err):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

// writeErr maps err and writes it as a JSON error.
func writeErr(w http.ResponseWriter, err error) {
	writeJSONError(w, statusFor(err), err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && zlog != nil {
		zlog.Error().Err(err).Msg("encode response")
	}
}
