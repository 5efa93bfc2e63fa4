package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"

	"routedata/internal/core/query"
	phttp "routedata/internal/platform/net/http"
	"routedata/internal/platform/store/postgrest"
	"routedata/internal/services/api/broker/domain"
	"routedata/internal/services/api/broker/repo"
	svc "routedata/internal/services/api/broker/service"
)

func mountWith(policy query.Policy, backend stdhttp.HandlerFunc) (*httptest.Server, stdhttp.Handler) {
	ts := httptest.NewServer(backend)
	client := postgrest.New(postgrest.Config{Endpoint: ts.URL})
	mux := chi.NewMux()
	Register(phttp.AdaptChi(mux), svc.New(repo.New(client, policy)))
	return ts, mux
}

func TestSearchWindowFromStartAndDuration(t *testing.T) {
	var gotQuery url.Values
	ts, mux := mountWith(query.Lenient, func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	})
	defer ts.Close()

	// unix 1640995200 is 2022-01-01T00:00:00 UTC; one day forward
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/broker?ts_start=1640995200&duration=1d", nil))
	if w.Code != stdhttp.StatusOK {
		t.Fatalf("status: %d, body %s", w.Code, w.Body.String())
	}

	// overlap: a file matches when it starts before the window end and
	// ends after the window start
	if got := gotQuery.Get("ts_end"); got != "gte.2022-01-01T00:00:00" {
		t.Fatalf("ts_end filter: %q", got)
	}
	if got := gotQuery.Get("ts_start"); got != "lte.2022-01-02T00:00:00" {
		t.Fatalf("ts_start filter: %q", got)
	}
	if got := gotQuery.Get("order"); got != "ts_start.asc" {
		t.Fatalf("order: %q", got)
	}
}

func TestSearchUnparsableTimeIs400(t *testing.T) {
	ts, mux := mountWith(query.Lenient, func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		t.Error("store must not be reached on a bad window")
		_, _ = w.Write([]byte(`[]`))
	})
	defer ts.Close()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/broker?ts_start=junk", nil))
	if w.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
	var wire struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &wire); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(wire.Errors) != 1 || wire.Errors[0] != "cannot parse time string: junk" {
		t.Fatalf("error must echo the literal: %v", wire.Errors)
	}
}

func TestSearchProjectAndTypeSynonyms(t *testing.T) {
	var gotQuery url.Values
	ts, mux := mountWith(query.Lenient, func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	})
	defer ts.Close()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/broker?project=RIPE&data_type=updates", nil))
	if w.Code != stdhttp.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	if got := gotQuery.Get("collector_id"); got != "ilike.rrc%" {
		t.Fatalf("project synonym: %q", got)
	}
	if got := gotQuery.Get("data_type"); got != "eq.update" {
		t.Fatalf("data_type synonym: %q", got)
	}
}

func TestSearchUnknownProjectLenientlyIgnored(t *testing.T) {
	var gotQuery url.Values
	ts, mux := mountWith(query.Lenient, func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	})
	defer ts.Close()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/broker?project=bogus", nil))
	if w.Code != stdhttp.StatusOK {
		t.Fatalf("unknown values must not fail lenient requests: %d", w.Code)
	}
	if got := gotQuery.Get("collector_id"); got != "" {
		t.Fatalf("unknown project must emit no filter: %q", got)
	}
}

func TestSearchUnknownProjectStrictlyRejected(t *testing.T) {
	ts, mux := mountWith(query.Strict, func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		t.Error("store must not be reached on a rejected value")
		_, _ = w.Write([]byte(`[]`))
	})
	defer ts.Close()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/broker?project=bogus", nil))
	if w.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status: %d", w.Code)
	}
}

func TestSearchDerivesProjectFromCollector(t *testing.T) {
	ts, mux := mountWith(query.Lenient, func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		_, _ = w.Write([]byte(`[
			{"ts_start":"2022-01-01T00:00:00","ts_end":"2022-01-01T00:05:00","collector_id":"rrc00","data_type":"update","url":"https://data.ris.ripe.net/rrc00/x.gz","rough_size":1073741,"exact_size":1073000},
			{"ts_start":"2022-01-01T00:00:00","ts_end":"2022-01-01T00:15:00","collector_id":"route-views2","data_type":"update","url":"http://archive.routeviews.org/x.bz2","rough_size":500,"exact_size":498}
		]`))
	})
	defer ts.Close()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/broker", nil))
	if w.Code != stdhttp.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}

	var resp domain.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("count: %d", resp.Count)
	}
	if resp.Data[0].Project != "riperis" || resp.Data[1].Project != "route-views" {
		t.Fatalf("projects: %q %q", resp.Data[0].Project, resp.Data[1].Project)
	}
	if resp.Data[0].Size != 1073741 {
		t.Fatalf("size must come from the rough estimate: %d", resp.Data[0].Size)
	}
}
