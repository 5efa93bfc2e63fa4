package httpkit

import (
	"net/http"

	phttp "routedata/internal/platform/net/http"
)

// GetQuery mounts a pure handler under GET whose input is bound from the
// URL query string
func GetQuery[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Get(path, phttp.QueryHandler(h))
}

// Get mounts a body-less handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, func(w http.ResponseWriter, req *http.Request) {
		out, err := h(req)
		if err != nil {
			phttp.RespondError(w, req, err)
			return
		}
		phttp.RespondOK(w, out)
	})
}
