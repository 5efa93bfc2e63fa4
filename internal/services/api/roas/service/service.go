// Package service contains roas workflows
package service

import (
	"context"
	"time"

	"routedata/internal/core/interval"
	perr "routedata/internal/platform/errors"
	"routedata/internal/services/api/roas/domain"
	"routedata/internal/services/api/roas/repo"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

// Service defines the roas service contract
type Service interface {
	Search(ctx context.Context, in domain.SearchInput) (domain.Response, error)
}

// Svc implements the roas service
type Svc struct {
	repo repo.Repo
	now  func() time.Time
}

// New constructs a roas service
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("roas.Service requires a non nil Repo")
	}
	return &Svc{repo: r, now: time.Now}
}

// Search returns one page of ROA history records with their validity
// intervals normalized: exclusive endpoints closed, single-day gaps
// bridged, and the currency flag derived
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.Response, error) {
	if in.Date != "" {
		if _, err := time.Parse("2006-01-02", in.Date); err != nil {
			return domain.Response{}, perr.InvalidArgf("cannot parse date string: %s", in.Date)
		}
	}

	page, pageSize := in.Normalize(defaultPageSize, maxPageSize)
	now := s.now()

	rows, err := s.repo.Search(ctx, in, page, pageSize, now)
	if err != nil {
		return domain.Response{}, err
	}

	out := make([]domain.Entry, 0, len(rows))
	for _, r := range rows {
		ranges, current, err := interval.Normalize(r.DateRanges, true, now)
		if err != nil {
			return domain.Response{}, err
		}
		out = append(out, domain.Entry{
			ASN:        r.ASN,
			MaxLen:     r.MaxLen,
			Prefix:     r.Prefix,
			Tal:        r.Tal,
			Current:    current,
			DateRanges: ranges,
		})
	}
	return domain.Response{Page: page, PageSize: pageSize, Data: out}, nil
}
