// Package http provides http transport for broker
package http

import (
	stdhttp "net/http"

	"routedata/internal/modkit/httpkit"
	"routedata/internal/services/api/broker/domain"
	svc "routedata/internal/services/api/broker/service"
)

// Register mounts the broker endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.SearchInput](r, "/broker", h.search)
}

type handlers struct{ svc svc.Service }

// @Summary Search public MRT files from route collectors
// @Tags bgp
// @Produce json
// @Param ts_start query string false "window start, unix timestamp or date-time string"
// @Param ts_end query string false "window end, unix timestamp or date-time string"
// @Param duration query string false "duration before ts_end or after ts_start, e.g. 2h30m"
// @Param project query string false "collector project, route-views or riperis"
// @Param collectors query string false "comma-separated collector IDs, e.g. rrc00,route-views2"
// @Param data_type query string false "file type, update or rib"
// @Param page query int false "page number, starting from 0"
// @Param page_size query int false "page size, default 10, max 1000"
// @Success 200 {object} domain.Response "public MRT files found"
// @Failure 400 {object} errors.Wire "unparsable time or duration value"
// @Router /broker [get]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}
