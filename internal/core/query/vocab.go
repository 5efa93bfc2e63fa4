package query

import (
	"strings"

	perr "routedata/internal/platform/errors"
)

// Vocab maps controlled-vocabulary inputs (including synonyms) onto a
// canonical predicate. Lookup is case-insensitive.
type Vocab map[string]Predicate

// Policy decides what happens on an unrecognized vocabulary value
type Policy uint8

const (
	// Lenient silently drops unrecognized values: no predicate, no error
	Lenient Policy = iota

	// Strict rejects unrecognized values with a client error
	Strict
)

// PolicyFromEnv maps the strict-params flag onto a Policy
func PolicyFromEnv(strict bool) Policy {
	if strict {
		return Strict
	}
	return Lenient
}

// Resolve looks up value and returns its canonical predicate
// Under Lenient an unknown value yields (zero, false, nil); under Strict it
// yields a 400-class error naming the offending literal
func (v Vocab) Resolve(value string, policy Policy) (Predicate, bool, error) {
	p, ok := v[strings.ToLower(value)]
	if ok {
		return p, true, nil
	}
	if policy == Strict {
		return Predicate{}, false, perr.InvalidArgf("unrecognized parameter value: %s", value)
	}
	return Predicate{}, false, nil
}
