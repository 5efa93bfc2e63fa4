// Package http provides http transport for peers
package http

import (
	stdhttp "net/http"

	"routedata/internal/modkit/httpkit"
	"routedata/internal/services/api/peers/domain"
	svc "routedata/internal/services/api/peers/service"
)

// Register mounts the peers endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.SearchInput](r, "/peers", h.search)
}

type handlers struct{ svc svc.Service }

// @Summary Search route collector peer statistics
// @Tags meta
// @Produce json
// @Param ip query string false "filter by peer IP address exact match"
// @Param asn query int false "filter by peer ASN exact match"
// @Param date query string false "filter by date YYYY-MM-DD, only with latest=false"
// @Param collector query string false "filter by collector ID, e.g. rrc00"
// @Param min_v4 query int false "minimum number of IPv4 prefixes"
// @Param min_v6 query int false "minimum number of IPv6 prefixes"
// @Param min_connected query int false "minimum number of connected ASes"
// @Param latest query bool false "show latest snapshot, default true"
// @Param page query int false "page number, starting from 0; ignored when latest"
// @Param page_size query int false "page size, default 10, max 1000; ignored when latest"
// @Success 200 {object} domain.Response "route collector peers information"
// @Failure 400 {object} errors.Wire "unparsable date value"
// @Router /peers [get]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}
