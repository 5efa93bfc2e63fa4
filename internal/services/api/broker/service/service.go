// Package service contains broker workflows
package service

import (
	"context"
	"strings"

	"routedata/internal/core/query"
	"routedata/internal/services/api/broker/domain"
	"routedata/internal/services/api/broker/repo"
)

const (
	defaultPageSize = 10
	maxPageSize     = 1000
)

// Service defines the broker service contract
type Service interface {
	Search(ctx context.Context, in domain.SearchInput) (domain.Response, error)
}

// Svc implements the broker service
type Svc struct{ repo repo.Repo }

// New constructs a broker service
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("broker.Service requires a non nil Repo")
	}
	return &Svc{repo: r}
}

// Search returns one page of route-collector file listings ordered by
// their start time
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.Response, error) {
	page, pageSize := in.Normalize(defaultPageSize, maxPageSize)
	rows, err := s.repo.Search(ctx, in, page, pageSize)
	if err != nil {
		return domain.Response{}, err
	}

	out := make([]domain.Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, toEntry(r))
	}
	return query.NewList(page, pageSize, out), nil
}

// toEntry derives the public shape from a raw row; the project is inferred
// from the collector naming scheme (rrcNN collectors belong to RIPE RIS)
func toEntry(r repo.Row) domain.Entry {
	project := "route-views"
	if strings.Contains(r.CollectorID, "rrc") {
		project = "riperis"
	}
	return domain.Entry{
		TsStart:   r.TsStart,
		TsEnd:     r.TsEnd,
		Project:   project,
		Collector: r.CollectorID,
		DataType:  r.DataType,
		URL:       r.URL,
		Size:      r.RoughSize,
	}
}
