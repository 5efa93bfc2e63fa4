// Package repo queries ROA history through the store's query_history
// stored procedure
package repo

import (
	"context"
	"encoding/json"
	"time"

	"routedata/internal/core/query"
	perr "routedata/internal/platform/errors"
	"routedata/internal/platform/store/postgrest"
	"routedata/internal/services/api/roas/domain"
)

const procedure = "query_history"

const dayLayout = "2006-01-02"

// Row is the raw store shape of one ROA history record; date_ranges are
// Postgres daterange literals
type Row struct {
	ASN        uint32   `json:"asn"`
	MaxLen     uint32   `json:"max_len"`
	Prefix     string   `json:"prefix"`
	Tal        string   `json:"tal"`
	DateRanges []string `json:"date_ranges"`
}

// Repo is the minimal store surface for roas
type Repo interface {
	Search(ctx context.Context, in domain.SearchInput, page, pageSize int, now time.Time) ([]Row, error)
}

type store struct{ db *postgrest.Client }

// New binds the repo to a store client
func New(db *postgrest.Client) Repo { return &store{db: db} }

// args builds the stored procedure argument payload. The procedure takes
// every parameter on every call; absent filters are passed as "" or -1.
func args(in domain.SearchInput, page, pageSize int, now time.Time) map[string]any {
	lo, _ := query.PageRange(page, pageSize)

	a := map[string]any{
		"res_limit":  pageSize,
		"res_offset": lo,
		"prefix":     in.Prefix,
		"asn":        -1,
		"max_len":    -1,
		"nic":        in.Tal,
		"date":       "",
		"not_date":   "",
	}
	if in.ASN != nil {
		a["asn"] = int64(*in.ASN)
	}
	if in.MaxLen != nil {
		a["max_len"] = int64(*in.MaxLen)
	}

	switch {
	case in.Current == nil:
		a["date"] = in.Date
	case *in.Current:
		// current means valid at least through yesterday UTC
		a["date"] = now.UTC().AddDate(0, 0, -1).Format(dayLayout)
	default:
		a["not_date"] = now.UTC().AddDate(0, 0, -1).Format(dayLayout)
	}
	return a
}

func (s *store) Search(ctx context.Context, in domain.SearchInput, page, pageSize int, now time.Time) ([]Row, error) {
	body, err := s.db.Rpc(procedure, args(in, page, pageSize, now)).Execute(ctx)
	if err != nil {
		return nil, err
	}
	var rows []Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeStore, "cannot decode store response")
	}
	return rows, nil
}
