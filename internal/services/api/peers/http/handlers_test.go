package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "routedata/internal/platform/net/http"
	"routedata/internal/platform/store/postgrest"
	"routedata/internal/services/api/peers/domain"
	"routedata/internal/services/api/peers/repo"
	svc "routedata/internal/services/api/peers/service"
)

func mountWith(backend stdhttp.HandlerFunc) (*httptest.Server, stdhttp.Handler) {
	ts := httptest.NewServer(backend)
	client := postgrest.New(postgrest.Config{Endpoint: ts.URL})
	mux := chi.NewMux()
	Register(phttp.AdaptChi(mux), svc.New(repo.New(client)))
	return ts, mux
}

func TestSearchDefaultsToLatestSnapshot(t *testing.T) {
	var gotPath, gotRange string
	var gotQuery url.Values
	ts, mux := mountWith(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		gotPath = r.URL.Path
		gotRange = r.Header.Get("Range")
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[{"date":"2022-01-01","collector":"rrc00","ip":"192.0.2.1","asn":13335,"num_v4_pfxs":900000,"num_v6_pfxs":150000,"num_connected_asns":120}]`))
	})
	defer ts.Close()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/peers?page=5&page_size=3&date=2022-01-01", nil))
	if w.Code != stdhttp.StatusOK {
		t.Fatalf("status: %d, body %s", w.Code, w.Body.String())
	}

	if gotPath != "/peer_stats_latest" {
		t.Fatalf("latest mode must hit the snapshot relation: %q", gotPath)
	}
	// user pagination is bypassed so the snapshot comes back whole
	if gotRange != "0-9999" {
		t.Fatalf("range: %q", gotRange)
	}
	// the date filter only applies to historical queries
	if got := gotQuery.Get("date"); got != "" {
		t.Fatalf("latest mode must ignore the date filter: %q", got)
	}

	var resp domain.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Page != 0 || resp.PageSize != 10000 || resp.Count != 1 {
		t.Fatalf("envelope: %+v", resp)
	}
	if resp.Data[0].Collector != "rrc00" || resp.Data[0].ASN != 13335 {
		t.Fatalf("row: %+v", resp.Data[0])
	}
}

func TestSearchHistoricalModePaginates(t *testing.T) {
	var gotPath, gotRange string
	var gotQuery url.Values
	ts, mux := mountWith(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		gotPath = r.URL.Path
		gotRange = r.Header.Get("Range")
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	})
	defer ts.Close()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/peers?latest=false&date=2022-01-01&page=2&asn=13335&min_v4=1000", nil))
	if w.Code != stdhttp.StatusOK {
		t.Fatalf("status: %d, body %s", w.Code, w.Body.String())
	}

	if gotPath != "/peer_stats" {
		t.Fatalf("historical mode must hit the history relation: %q", gotPath)
	}
	if gotRange != "20-29" {
		t.Fatalf("range: %q", gotRange)
	}
	if got := gotQuery.Get("date"); got != "eq.2022-01-01" {
		t.Fatalf("date filter: %q", got)
	}
	if got := gotQuery.Get("asn"); got != "eq.13335" {
		t.Fatalf("asn filter: %q", got)
	}
	if got := gotQuery.Get("num_v4_pfxs"); got != "gte.1000" {
		t.Fatalf("min_v4 filter: %q", got)
	}
}

func TestSearchRejectsBadInput(t *testing.T) {
	ts, mux := mountWith(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		t.Error("store must not be reached on bad input")
		_, _ = w.Write([]byte(`[]`))
	})
	defer ts.Close()

	for _, target := range []string{"/peers?latest=false&date=junk", "/peers?ip=not-an-ip"} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("GET", target, nil))
		if w.Code != stdhttp.StatusBadRequest {
			t.Fatalf("%s: status %d", target, w.Code)
		}
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/peers?latest=false&date=junk", nil))
	var wire struct {
		Errors []string `json:"errors"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &wire)
	if len(wire.Errors) != 1 || wire.Errors[0] != "cannot parse date string: junk" {
		t.Fatalf("error must echo the literal: %v", wire.Errors)
	}
}
