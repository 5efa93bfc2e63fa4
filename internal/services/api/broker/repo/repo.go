// Package repo queries the MRT file listing on the remote store
package repo

import (
	"context"
	"encoding/json"

	"routedata/internal/core/query"
	perr "routedata/internal/platform/errors"
	"routedata/internal/platform/store/postgrest"
	"routedata/internal/services/api/broker/domain"
)

const relation = "items"

// Row is the raw store shape of one file listing
type Row struct {
	TsStart     string `json:"ts_start"`
	TsEnd       string `json:"ts_end"`
	CollectorID string `json:"collector_id"`
	DataType    string `json:"data_type"`
	URL         string `json:"url"`
	RoughSize   uint32 `json:"rough_size"`
	ExactSize   uint32 `json:"exact_size"`
}

// projectVocab maps project synonyms onto a collector_id pattern
var projectVocab = query.Vocab{
	"route-views": query.Ilike("collector_id", "route-views%"),
	"routeviews":  query.Ilike("collector_id", "route-views%"),
	"rv":          query.Ilike("collector_id", "route-views%"),
	"ripe":        query.Ilike("collector_id", "rrc%"),
	"ripencc":     query.Ilike("collector_id", "rrc%"),
	"riperis":     query.Ilike("collector_id", "rrc%"),
	"ris":         query.Ilike("collector_id", "rrc%"),
}

// dataTypeVocab maps data type synonyms onto the canonical value
var dataTypeVocab = query.Vocab{
	"update":  query.Eq("data_type", "update"),
	"updates": query.Eq("data_type", "update"),
	"u":       query.Eq("data_type", "update"),
	"rib":     query.Eq("data_type", "rib"),
	"ribs":    query.Eq("data_type", "rib"),
	"r":       query.Eq("data_type", "rib"),
}

// Repo is the minimal store surface for broker
type Repo interface {
	Search(ctx context.Context, in domain.SearchInput, page, pageSize int) ([]Row, error)
}

type store struct {
	db     *postgrest.Client
	policy query.Policy
}

// New binds the repo to a store client with the given vocabulary policy
func New(db *postgrest.Client, policy query.Policy) Repo {
	return &store{db: db, policy: policy}
}

// predicates is the field-to-predicate mapping for /broker
func (s *store) predicates(in domain.SearchInput) ([]query.Predicate, error) {
	w, err := query.ResolveWindow(in.TsStart, in.TsEnd, in.DurationSpec)
	if err != nil {
		return nil, err
	}
	// overlap semantics: a file matches when its own interval intersects
	// the requested window
	preds := w.Predicates("ts_start", "ts_end")

	if in.Project != "" {
		p, ok, err := projectVocab.Resolve(in.Project, s.policy)
		if err != nil {
			return nil, err
		}
		if ok {
			preds = append(preds, p)
		}
	}
	if in.Collectors != "" {
		preds = append(preds, query.InCSV("collector_id", in.Collectors))
	}
	if in.DataType != "" {
		p, ok, err := dataTypeVocab.Resolve(in.DataType, s.policy)
		if err != nil {
			return nil, err
		}
		if ok {
			preds = append(preds, p)
		}
	}
	return preds, nil
}

func (s *store) Search(ctx context.Context, in domain.SearchInput, page, pageSize int) ([]Row, error) {
	preds, err := s.predicates(in)
	if err != nil {
		return nil, err
	}

	b := s.db.From(relation).Select("*")
	b = query.Apply(b, preds)
	b = b.OrderAsc("ts_start")

	lo, hi := query.PageRange(page, pageSize)
	b = b.Range(lo, hi)

	body, err := b.Execute(ctx)
	if err != nil {
		return nil, err
	}
	var rows []Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeStore, "cannot decode store response")
	}
	return rows, nil
}
