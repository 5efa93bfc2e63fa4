// Package httpkit re-exports the platform HTTP surface for endpoint modules
package httpkit

import (
	phttp "routedata/internal/platform/net/http"
)

// Router aliases the platform router port
type Router = phttp.Router

// Handler aliases the platform handler type
type Handler = phttp.Handler
