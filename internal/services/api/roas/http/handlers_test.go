package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "routedata/internal/platform/net/http"
	"routedata/internal/platform/store/postgrest"
	"routedata/internal/services/api/roas/domain"
	"routedata/internal/services/api/roas/repo"
	svc "routedata/internal/services/api/roas/service"
)

func mountWith(backend stdhttp.HandlerFunc) (*httptest.Server, stdhttp.Handler) {
	ts := httptest.NewServer(backend)
	client := postgrest.New(postgrest.Config{Endpoint: ts.URL})
	mux := chi.NewMux()
	Register(phttp.AdaptChi(mux), svc.New(repo.New(client)))
	return ts, mux
}

func TestSearchCallsHistoryProcedure(t *testing.T) {
	var gotPath string
	var gotArgs map[string]any
	ts, mux := mountWith(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotArgs)
		_, _ = w.Write([]byte(`[]`))
	})
	defer ts.Close()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/roas?asn=13335&prefix=1.1.1.0/24&tal=apnic&page=2&page_size=50", nil))
	if w.Code != stdhttp.StatusOK {
		t.Fatalf("status: %d, body %s", w.Code, w.Body.String())
	}

	if gotPath != "/rpc/query_history" {
		t.Fatalf("path: %q", gotPath)
	}
	if gotArgs["res_limit"] != float64(50) || gotArgs["res_offset"] != float64(100) {
		t.Fatalf("pagination args: %v", gotArgs)
	}
	if gotArgs["asn"] != float64(13335) || gotArgs["prefix"] != "1.1.1.0/24" || gotArgs["nic"] != "apnic" {
		t.Fatalf("filter args: %v", gotArgs)
	}
	if gotArgs["max_len"] != float64(-1) {
		t.Fatalf("absent max_len must default to -1: %v", gotArgs["max_len"])
	}
	if gotArgs["date"] != "" || gotArgs["not_date"] != "" {
		t.Fatalf("no date filter requested: %v", gotArgs)
	}
}

func TestSearchNormalizesDateRanges(t *testing.T) {
	ts, mux := mountWith(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		_, _ = w.Write([]byte(`[{"asn":13335,"max_len":24,"prefix":"1.1.1.0/24","tal":"apnic","date_ranges":["[2022-01-01,2022-01-06)","[2022-01-07,2022-01-11)"]}]`))
	})
	defer ts.Close()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/roas?prefix=1.1.1.0/24", nil))
	if w.Code != stdhttp.StatusOK {
		t.Fatalf("status: %d, body %s", w.Code, w.Body.String())
	}

	var resp domain.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Page != 0 || resp.PageSize != 100 {
		t.Fatalf("envelope: %+v", resp)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("data: %+v", resp.Data)
	}

	// the two half-open store ranges close to [01-01,01-05] and
	// [01-07,01-10]; the single missing day between them is bridged
	want := [][2]string{{"2022-01-01", "2022-01-10"}}
	if !reflect.DeepEqual(resp.Data[0].DateRanges, want) {
		t.Fatalf("date ranges: got %v, want %v", resp.Data[0].DateRanges, want)
	}
	if resp.Data[0].Current {
		t.Fatalf("a ROA that expired in 2022 must not be current")
	}
}

func TestSearchEnvelopeHasNoCount(t *testing.T) {
	ts, mux := mountWith(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	defer ts.Close()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/roas", nil))
	if w.Code != stdhttp.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body["count"]; ok {
		t.Fatalf("roas envelope must not carry a count field: %v", body)
	}
	for _, k := range []string{"page", "page_size", "data"} {
		if _, ok := body[k]; !ok {
			t.Fatalf("missing %s: %v", k, body)
		}
	}
}

func TestSearchRejectsBadInput(t *testing.T) {
	ts, mux := mountWith(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		t.Error("store must not be reached on bad input")
		_, _ = w.Write([]byte(`[]`))
	})
	defer ts.Close()

	for _, target := range []string{"/roas?prefix=not-a-prefix", "/roas?date=2022-13-99"} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("GET", target, nil))
		if w.Code != stdhttp.StatusBadRequest {
			t.Fatalf("%s: status %d", target, w.Code)
		}
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/roas?date=2022-13-99", nil))
	var wire struct {
		Errors []string `json:"errors"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &wire)
	if len(wire.Errors) != 1 || wire.Errors[0] != "cannot parse date string: 2022-13-99" {
		t.Fatalf("error must echo the literal: %v", wire.Errors)
	}
}
