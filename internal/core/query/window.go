package query

import (
	"strconv"
	"time"

	perr "routedata/internal/platform/errors"

	str2duration "github.com/xhit/go-str2duration/v2"
)

// StoreTimeLayout is how resolved instants are rendered into predicates
const StoreTimeLayout = "2006-01-02T15:04:05"

// tsLayouts are the accepted structured timestamp forms, tried in order
var tsLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp accepts a Unix integer timestamp or a structured date-time
// string; failure is a client error naming the unparsable literal
func ParseTimestamp(s string) (time.Time, error) {
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	for _, layout := range tsLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, perr.InvalidArgf("cannot parse time string: %s", s)
}

// DurationSpec is a duration given either as a single human-readable
// expression (canonical, e.g. "2h30m" or "1d12h") or as decomposed integer
// fields kept for backward compatibility; the fields combine additively
type DurationSpec struct {
	Expr    string `form:"duration"`
	Days    int    `form:"days" validate:"omitempty,min=0"`
	Hours   int    `form:"hours" validate:"omitempty,min=0"`
	Minutes int    `form:"minutes" validate:"omitempty,min=0"`
}

// resolve returns the effective duration and whether one was supplied
func (d DurationSpec) resolve() (time.Duration, bool, error) {
	if d.Expr != "" {
		dur, err := str2duration.ParseDuration(d.Expr)
		if err != nil {
			return 0, false, perr.InvalidArgf("cannot parse time duration string: %s", d.Expr)
		}
		return dur, true, nil
	}
	if d.Days != 0 || d.Hours != 0 || d.Minutes != 0 {
		dur := time.Duration(d.Days)*24*time.Hour +
			time.Duration(d.Hours)*time.Hour +
			time.Duration(d.Minutes)*time.Minute
		return dur, true, nil
	}
	return 0, false, nil
}

// Window is a resolved time window; either bound may be absent
type Window struct {
	Start *time.Time
	End   *time.Time
}

// ResolveWindow derives a window from optional start/end strings and a
// duration. With exactly one bound plus a duration the missing bound is
// computed (end = start + d, start = end − d); with both or neither bound
// the duration is ignored. Empty inputs yield an empty window.
//
// A resolved start after end is not rejected; it selects nothing, matching
// the permissive behavior of the stored data's consumers.
func ResolveWindow(startStr, endStr string, dur DurationSpec) (Window, error) {
	var w Window

	if endStr != "" {
		t, err := ParseTimestamp(endStr)
		if err != nil {
			return w, err
		}
		w.End = &t
	}
	if startStr != "" {
		t, err := ParseTimestamp(startStr)
		if err != nil {
			return w, err
		}
		w.Start = &t
	}

	if (w.Start == nil) == (w.End == nil) {
		return w, nil
	}

	d, ok, err := dur.resolve()
	if err != nil {
		return Window{}, err
	}
	if !ok {
		return w, nil
	}
	if w.Start != nil {
		end := w.Start.Add(d)
		w.End = &end
	} else {
		start := w.End.Add(-d)
		w.Start = &start
	}
	return w, nil
}

// Predicates emits the window's overlap conditions against a relation whose
// records span [startField, endField]: a record overlaps the window when its
// own start is ≤ the window end and its own end is ≥ the window start
func (w Window) Predicates(startField, endField string) []Predicate {
	var preds []Predicate
	if w.End != nil {
		preds = append(preds, Lte(startField, w.End.Format(StoreTimeLayout)))
	}
	if w.Start != nil {
		preds = append(preds, Gte(endField, w.Start.Format(StoreTimeLayout)))
	}
	return preds
}
