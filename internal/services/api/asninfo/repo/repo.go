// Package repo queries the AS registry view on the remote store
package repo

import (
	"context"
	"encoding/json"
	"strconv"

	"routedata/internal/core/query"
	perr "routedata/internal/platform/errors"
	"routedata/internal/platform/store/postgrest"
	"routedata/internal/services/api/asninfo/domain"
)

const relation = "asn_view"

// Repo is the minimal store surface for asninfo
type Repo interface {
	Search(ctx context.Context, in domain.SearchInput, page, pageSize int) ([]domain.AsnInfo, error)
}

type store struct{ db *postgrest.Client }

// New binds the repo to a store client
func New(db *postgrest.Client) Repo { return &store{db: db} }

// predicates is the field-to-predicate mapping for /asninfo
func predicates(in domain.SearchInput) []query.Predicate {
	var preds []query.Predicate
	if in.ASN != nil {
		preds = append(preds, query.Eq("asn", strconv.FormatUint(uint64(*in.ASN), 10)))
	}
	if in.ASNs != "" {
		preds = append(preds, query.InCSV("asn", in.ASNs))
	}
	if in.Country != "" {
		// one user field fans out over code and full name columns
		preds = append(preds, query.Either(
			query.Match("country_code", in.Country),
			query.Match("country_name", query.Contains(in.Country)),
		))
	}
	if in.Name != "" {
		preds = append(preds, query.Either(
			query.Match("as_name", query.Contains(in.Name)),
			query.Match("org_name", query.Contains(in.Name)),
		))
	}
	return preds
}

func (s *store) Search(ctx context.Context, in domain.SearchInput, page, pageSize int) ([]domain.AsnInfo, error) {
	b := s.db.From(relation).Select("*")
	b = query.Apply(b, predicates(in))

	lo, hi := query.PageRange(page, pageSize)
	b = b.Range(lo, hi)

	body, err := b.Execute(ctx)
	if err != nil {
		return nil, err
	}
	var rows []domain.AsnInfo
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeStore, "cannot decode store response")
	}
	return rows, nil
}
