// Package query translates endpoint query parameters into store predicates,
// resolves time windows, and normalizes pagination
package query

import (
	"fmt"
	"strings"

	"routedata/internal/platform/store/postgrest"
)

// Op enumerates the supported predicate operators
type Op uint8

const (
	// OpEq is exact equality
	OpEq Op = iota

	// OpGte is greater-or-equal
	OpGte

	// OpLte is less-or-equal
	OpLte

	// OpIlike is a case-insensitive pattern match; '*' is the wildcard
	OpIlike

	// OpIn is set membership
	OpIn

	// OpOr is a disjunction of pattern matches across columns
	OpOr
)

// Alt is one branch of an OpOr predicate
type Alt struct {
	Field   string
	Pattern string
}

// cond renders the branch in PostgREST "field.op.value" form
// values are quoted so commas and spaces survive the disjunction syntax
func (a Alt) cond() string {
	return fmt.Sprintf("%s.ilike.%q", a.Field, a.Pattern)
}

// Predicate is one filter condition against the remote relation
// A request's predicates always form a conjunction
type Predicate struct {
	Field  string
	Op     Op
	Value  string
	Values []string // OpIn
	Alts   []Alt    // OpOr
}

// Eq builds an equality predicate
func Eq(field, value string) Predicate {
	return Predicate{Field: field, Op: OpEq, Value: value}
}

// Gte builds a greater-or-equal predicate
func Gte(field, value string) Predicate {
	return Predicate{Field: field, Op: OpGte, Value: value}
}

// Lte builds a less-or-equal predicate
func Lte(field, value string) Predicate {
	return Predicate{Field: field, Op: OpLte, Value: value}
}

// Ilike builds a case-insensitive pattern predicate
func Ilike(field, pattern string) Predicate {
	return Predicate{Field: field, Op: OpIlike, Value: pattern}
}

// InCSV builds a set-membership predicate from a comma-separated value list,
// trimming whitespace around each element
func InCSV(field, csv string) Predicate {
	parts := strings.Split(csv, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		values = append(values, strings.TrimSpace(p))
	}
	return Predicate{Field: field, Op: OpIn, Values: values}
}

// Either builds a disjunction of pattern matches, used when one user-facing
// field fans out over several store columns
func Either(alts ...Alt) Predicate {
	return Predicate{Op: OpOr, Alts: alts}
}

// Match is an Alt builder for use with Either
func Match(field, pattern string) Alt { return Alt{Field: field, Pattern: pattern} }

// Contains wraps v in wildcards for substring matching
func Contains(v string) string { return "*" + v + "*" }

// Prefix appends a wildcard for prefix matching
func Prefix(v string) string { return v + "%" }

// Apply adds each predicate onto the store query builder
func Apply(b *postgrest.Builder, preds []Predicate) *postgrest.Builder {
	for _, p := range preds {
		switch p.Op {
		case OpEq:
			b = b.Eq(p.Field, p.Value)
		case OpGte:
			b = b.Gte(p.Field, p.Value)
		case OpLte:
			b = b.Lte(p.Field, p.Value)
		case OpIlike:
			b = b.Ilike(p.Field, p.Value)
		case OpIn:
			b = b.In(p.Field, p.Values)
		case OpOr:
			conds := make([]string, 0, len(p.Alts))
			for _, a := range p.Alts {
				conds = append(conds, a.cond())
			}
			b = b.Or(conds...)
		}
	}
	return b
}
