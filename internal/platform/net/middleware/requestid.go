package middleware

import (
	"net/http"

	"routedata/internal/platform/logger"
	pnet "routedata/internal/platform/net"
)

// RequestScope copies the request id minted by the router into the logging
// context so every log entry for the request carries request_id
func RequestScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
