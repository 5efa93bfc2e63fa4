// Package service contains asninfo workflows
package service

import (
	"context"

	"routedata/internal/core/query"
	"routedata/internal/services/api/asninfo/domain"
	"routedata/internal/services/api/asninfo/repo"
)

const (
	defaultPageSize = 10
	maxPageSize     = 1000
)

// Service defines the asninfo service contract
type Service interface {
	Search(ctx context.Context, in domain.SearchInput) (domain.Response, error)
}

// Svc implements the asninfo service
type Svc struct{ repo repo.Repo }

// New constructs an asninfo service
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("asninfo.Service requires a non nil Repo")
	}
	return &Svc{repo: r}
}

// Search returns one page of AS registry records
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.Response, error) {
	page, pageSize := in.Normalize(defaultPageSize, maxPageSize)
	rows, err := s.repo.Search(ctx, in, page, pageSize)
	if err != nil {
		return domain.Response{}, err
	}
	return query.NewList(page, pageSize, rows), nil
}
