package query

import (
	"strings"
	"testing"
	"time"

	perr "routedata/internal/platform/errors"
)

func TestParseTimestampUnix(t *testing.T) {
	got, err := ParseTimestamp("1640995200")
	if err != nil {
		t.Fatalf("unix parse: %v", err)
	}
	want := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unix parse: got %v, want %v", got, want)
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	for _, s := range []string{
		"2022-01-01T00:00:00Z",
		"2022-01-01T00:00:00",
		"2022-01-01 00:00:00",
		"2022-01-01",
	} {
		got, err := ParseTimestamp(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if got.Year() != 2022 || got.Month() != 1 || got.Day() != 1 {
			t.Fatalf("parse %q: got %v", s, got)
		}
	}
}

func TestParseTimestampEchoesLiteral(t *testing.T) {
	_, err := ParseTimestamp("not-a-date")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "not-a-date") {
		t.Fatalf("error should echo the literal, got %q", err.Error())
	}
	if perr.HTTPStatus(err) != 400 {
		t.Fatalf("expected 400, got %d", perr.HTTPStatus(err))
	}
}

func TestResolveWindowStartPlusDuration(t *testing.T) {
	w, err := ResolveWindow("2022-01-01T00:00:00", "", DurationSpec{Expr: "2h30m"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if w.Start == nil || w.End == nil {
		t.Fatalf("both bounds should be resolved: %+v", w)
	}
	if got := w.End.Sub(*w.Start); got != 2*time.Hour+30*time.Minute {
		t.Fatalf("end-start: got %v", got)
	}
}

func TestResolveWindowEndMinusDuration(t *testing.T) {
	w, err := ResolveWindow("", "2022-01-02T00:00:00", DurationSpec{Expr: "1d"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if w.Start == nil {
		t.Fatalf("start should be derived")
	}
	want := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	if !w.Start.Equal(want) {
		t.Fatalf("start: got %v, want %v", w.Start, want)
	}
}

func TestResolveWindowDecomposedFields(t *testing.T) {
	w, err := ResolveWindow("2022-01-01T00:00:00", "", DurationSpec{Days: 1, Hours: 2, Minutes: 30})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := w.End.Sub(*w.Start); got != 26*time.Hour+30*time.Minute {
		t.Fatalf("additive duration: got %v", got)
	}
}

func TestResolveWindowBothBoundsIgnoreDuration(t *testing.T) {
	w, err := ResolveWindow("2022-01-01", "2022-01-05", DurationSpec{Expr: "100d"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if w.End.Sub(*w.Start) != 4*24*time.Hour {
		t.Fatalf("duration must be ignored when both bounds are given")
	}
}

func TestResolveWindowNoInputs(t *testing.T) {
	w, err := ResolveWindow("", "", DurationSpec{Expr: "1h"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if w.Start != nil || w.End != nil {
		t.Fatalf("no time inputs should produce an empty window: %+v", w)
	}
}

func TestResolveWindowBadDuration(t *testing.T) {
	_, err := ResolveWindow("2022-01-01", "", DurationSpec{Expr: "bogus"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("error should echo the literal, got %q", err.Error())
	}
}

func TestWindowPredicatesOverlapSemantics(t *testing.T) {
	w, err := ResolveWindow("2022-01-01T00:00:00", "2022-01-02T00:00:00", DurationSpec{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	preds := w.Predicates("ts_start", "ts_end")
	if len(preds) != 2 {
		t.Fatalf("expected 2 predicates, got %d", len(preds))
	}
	// window end bounds the record's start, window start bounds its end
	if preds[0].Op != OpLte || preds[0].Field != "ts_start" || preds[0].Value != "2022-01-02T00:00:00" {
		t.Fatalf("end predicate: %+v", preds[0])
	}
	if preds[1].Op != OpGte || preds[1].Field != "ts_end" || preds[1].Value != "2022-01-01T00:00:00" {
		t.Fatalf("start predicate: %+v", preds[1])
	}
}
