// Package http provides helpers for writing JSON responses
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "routedata/internal/platform/errors"
	"routedata/internal/platform/logger"
)

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondOK writes a 200 response with the payload as-is
// Endpoints own their envelope shape, so no extra wrapping happens here
func RespondOK(w stdhttp.ResponseWriter, data any) {
	JSON(w, stdhttp.StatusOK, data)
}

// RespondError maps a project error onto the {status_code, errors} wire
// shape; the HTTP status mirrors status_code
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, wire := perr.HTTP(err)
	if status >= stdhttp.StatusInternalServerError {
		logger.C(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	JSON(w, status, wire)
}
