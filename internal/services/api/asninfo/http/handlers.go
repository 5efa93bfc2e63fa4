// Package http provides http transport for asninfo
package http

import (
	stdhttp "net/http"

	"routedata/internal/modkit/httpkit"
	"routedata/internal/services/api/asninfo/domain"
	svc "routedata/internal/services/api/asninfo/service"
)

// Register mounts the asninfo endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.SearchInput](r, "/asninfo", h.search)
}

type handlers struct{ svc svc.Service }

// @Summary Search AS registry information
// @Tags meta
// @Produce json
// @Param asn query int false "filter by ASN exact match"
// @Param asns query string false "filter by comma-separated ASN list"
// @Param name query string false "filter by AS name or organization name"
// @Param country query string false "filter by two-letter country code or country name"
// @Param page query int false "page number, starting from 0"
// @Param page_size query int false "page size, default 10, max 1000"
// @Success 200 {object} domain.Response "ASN information found"
// @Router /asninfo [get]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}
