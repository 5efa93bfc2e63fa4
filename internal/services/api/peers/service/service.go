// Package service contains peers workflows
package service

import (
	"context"

	"routedata/internal/core/query"
	"routedata/internal/services/api/peers/domain"
	"routedata/internal/services/api/peers/repo"
)

const (
	defaultPageSize = 10
	maxPageSize     = 1000

	// snapshotPageSize is forced in latest mode so one page holds the
	// whole snapshot
	snapshotPageSize = 10000
)

// Service defines the peers service contract
type Service interface {
	Search(ctx context.Context, in domain.SearchInput) (domain.Response, error)
}

// Svc implements the peers service
type Svc struct{ repo repo.Repo }

// New constructs a peers service
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("peers.Service requires a non nil Repo")
	}
	return &Svc{repo: r}
}

// Search returns collector peer statistics. In latest mode (the default)
// user pagination is bypassed and the full snapshot comes back as one
// page; historical mode paginates normally.
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.Response, error) {
	latest := in.Latest == nil || *in.Latest

	var page, pageSize int
	if latest {
		page, pageSize = 0, snapshotPageSize
	} else {
		page, pageSize = in.Normalize(defaultPageSize, maxPageSize)
	}

	rows, err := s.repo.Search(ctx, in, latest, page, pageSize)
	if err != nil {
		return domain.Response{}, err
	}
	return query.NewList(page, pageSize, rows), nil
}
