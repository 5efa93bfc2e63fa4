// Package interval normalizes ROA validity intervals: raw daterange
// literals become closed calendar-day intervals, single-day gaps are
// optionally bridged, and a "currently valid" flag is derived
package interval

import (
	"strings"
	"time"

	perr "routedata/internal/platform/errors"
)

const dayLayout = "2006-01-02"

// Range is a closed calendar-day interval
type Range struct {
	Start time.Time
	End   time.Time
}

// Strings renders the range as a pair of ISO calendar dates
func (r Range) Strings() [2]string {
	return [2]string{r.Start.Format(dayLayout), r.End.Format(dayLayout)}
}

// parseRaw decodes one daterange literal such as "[2021-01-01,2021-02-01)"
// into a closed interval: an exclusive '(' start advances the effective
// start by one day, an exclusive ')' end retracts the effective end by one
func parseRaw(raw string) (Range, error) {
	startExclusive := strings.HasPrefix(raw, "(")
	endExclusive := strings.HasSuffix(raw, ")")

	body := strings.TrimFunc(raw, func(c rune) bool {
		return c == '[' || c == ']' || c == '(' || c == ')' || c == '"'
	})
	parts := strings.Split(body, ",")
	if len(parts) != 2 {
		return Range{}, perr.Storef("cannot decode date range record")
	}

	start, err := time.Parse(dayLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return Range{}, perr.Storef("cannot decode date range record")
	}
	end, err := time.Parse(dayLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return Range{}, perr.Storef("cannot decode date range record")
	}

	if startExclusive {
		start = start.AddDate(0, 0, 1)
	}
	if endExclusive {
		end = end.AddDate(0, 0, -1)
	}
	return Range{Start: start, End: end}, nil
}

// Normalize turns raw validity intervals into ordered closed calendar-day
// pairs and reports whether the record is still current.
//
// The input order is assumed chronological and is preserved; no sorting
// happens. When fixGaps is set, two consecutive intervals separated by
// exactly one absent calendar day (next start = previous end + 2 days) are
// merged into one. The currency flag is evaluated across all raw intervals
// before merging: any interval ending on or after (now − 1 day) marks the
// record current.
//
// An empty input yields an empty result and current=false.
func Normalize(raws []string, fixGaps bool, now time.Time) ([][2]string, bool, error) {
	if len(raws) == 0 {
		return [][2]string{}, false, nil
	}

	yesterday := now.UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)

	current := false
	ranges := make([]Range, 0, len(raws))
	for _, raw := range raws {
		r, err := parseRaw(raw)
		if err != nil {
			return nil, false, err
		}
		if !r.End.Before(yesterday) {
			current = true
		}
		ranges = append(ranges, r)
	}

	if fixGaps {
		merged := make([]Range, 0, len(ranges))
		cur := ranges[0]
		for _, r := range ranges[1:] {
			if r.Start.Equal(cur.End.AddDate(0, 0, 2)) {
				cur.End = r.End
				continue
			}
			merged = append(merged, cur)
			cur = r
		}
		merged = append(merged, cur)
		ranges = merged
	}

	out := make([][2]string, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, r.Strings())
	}
	return out, current, nil
}
