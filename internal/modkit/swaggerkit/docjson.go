//go:build swag

package swaggerkit

import (
	"net/http"

	docs "routedata/internal/services/api/docs"
)

// docReader is a seam so tests can inject spec JSON
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// serveDocJSON serves the generated swagger JSON
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(docReader()))
	}
}
