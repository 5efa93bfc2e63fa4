// Package http provides http transport for roas
package http

import (
	stdhttp "net/http"

	"routedata/internal/modkit/httpkit"
	"routedata/internal/services/api/roas/domain"
	svc "routedata/internal/services/api/roas/service"
)

// Register mounts the roas endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.SearchInput](r, "/roas", h.search)
}

type handlers struct{ svc svc.Service }

// @Summary Search ROA history for prefix origin validation
// @Description Only valid prefix matches are returned: the queried prefix
// @Description must be contained within (or equal to) a ROA's prefix and
// @Description its length must not exceed the ROA's max_len.
// @Tags bgp
// @Produce json
// @Param asn query int false "filter by origin ASN exact match"
// @Param prefix query string false "IP prefix to search ROAs for, e.g. 1.1.1.0/24"
// @Param tal query string false "trust anchor: apnic, afrinic, lacnic, ripencc, arin"
// @Param date query string false "limit ROAs to ones valid on this date, YYYY-MM-DD"
// @Param current query bool false "filter by whether the ROA is still current"
// @Param max_len query int false "filter by the max_len value"
// @Param page query int false "page number, starting from 0"
// @Param page_size query int false "page size, default 100, max 1000"
// @Success 200 {object} domain.Response "ROA information found"
// @Failure 400 {object} errors.Wire "invalid prefix or date value"
// @Router /roas [get]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}
