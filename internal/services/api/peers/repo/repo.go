// Package repo queries collector peer statistics on the remote store
package repo

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"routedata/internal/core/query"
	perr "routedata/internal/platform/errors"
	"routedata/internal/platform/store/postgrest"
	"routedata/internal/services/api/peers/domain"
)

const (
	latestRelation  = "peer_stats_latest"
	historyRelation = "peer_stats"
)

// Repo is the minimal store surface for peers
type Repo interface {
	Search(ctx context.Context, in domain.SearchInput, latest bool, page, pageSize int) ([]domain.PeerStats, error)
}

type store struct{ db *postgrest.Client }

// New binds the repo to a store client
func New(db *postgrest.Client) Repo { return &store{db: db} }

// predicates is the field-to-predicate mapping for /peers
// the date filter only applies to the history relation
func predicates(in domain.SearchInput, latest bool) ([]query.Predicate, error) {
	var preds []query.Predicate
	if in.ASN != nil {
		preds = append(preds, query.Eq("asn", strconv.FormatUint(uint64(*in.ASN), 10)))
	}
	if in.Collector != "" {
		preds = append(preds, query.Ilike("collector", in.Collector))
	}
	if in.IP != "" {
		preds = append(preds, query.Eq("ip", in.IP))
	}
	if !latest && in.Date != "" {
		d, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, perr.InvalidArgf("cannot parse date string: %s", in.Date)
		}
		preds = append(preds, query.Eq("date", d.Format("2006-01-02")))
	}
	if in.MinV4 != nil {
		preds = append(preds, query.Gte("num_v4_pfxs", strconv.FormatInt(*in.MinV4, 10)))
	}
	if in.MinV6 != nil {
		preds = append(preds, query.Gte("num_v6_pfxs", strconv.FormatInt(*in.MinV6, 10)))
	}
	if in.MinConnected != nil {
		preds = append(preds, query.Gte("num_connected_asns", strconv.FormatInt(*in.MinConnected, 10)))
	}
	return preds, nil
}

func (s *store) Search(ctx context.Context, in domain.SearchInput, latest bool, page, pageSize int) ([]domain.PeerStats, error) {
	preds, err := predicates(in, latest)
	if err != nil {
		return nil, err
	}

	relation := historyRelation
	if latest {
		relation = latestRelation
	}
	b := s.db.From(relation).Select("*")
	b = query.Apply(b, preds)

	lo, hi := query.PageRange(page, pageSize)
	b = b.Range(lo, hi)

	body, err := b.Execute(ctx)
	if err != nil {
		return nil, err
	}
	var rows []domain.PeerStats
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeStore, "cannot decode store response")
	}
	return rows, nil
}
