package http

import (
	stdhttp "net/http"

	"routedata/internal/platform/net/http/bind"
)

// QueryHandler adapts a pure handler taking a bound query input
// The input is decoded from the URL query string and validated; bind
// failures surface as 400s on the standard error wire
func QueryHandler[T any](h func(*stdhttp.Request, T) (any, error)) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		in, err := bind.Query[T](r)
		if err != nil {
			RespondError(w, r, err)
			return
		}
		out, err := h(r, in)
		if err != nil {
			RespondError(w, r, err)
			return
		}
		RespondOK(w, out)
	}
}
