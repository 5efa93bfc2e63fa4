package postgrest

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	perr "routedata/internal/platform/errors"

	"github.com/go-resty/resty/v2"
)

// Builder accumulates one PostgREST query: filters form a conjunction,
// Or composes a disjunction inside it. Builders are single-use and not
// safe for concurrent mutation.
type Builder struct {
	client  *Client
	path    string
	payload any
	params  url.Values
	lo, hi  int
	ranged  bool
}

func newBuilder(c *Client, path string, payload any) *Builder {
	return &Builder{client: c, path: path, payload: payload, params: url.Values{}}
}

// Select names the columns to return; "*" returns everything
func (b *Builder) Select(columns string) *Builder {
	b.params.Set("select", columns)
	return b
}

// Eq adds an equality filter
func (b *Builder) Eq(field, value string) *Builder {
	b.params.Add(field, "eq."+value)
	return b
}

// Gte adds a greater-or-equal filter
func (b *Builder) Gte(field, value string) *Builder {
	b.params.Add(field, "gte."+value)
	return b
}

// Lte adds a less-or-equal filter
func (b *Builder) Lte(field, value string) *Builder {
	b.params.Add(field, "lte."+value)
	return b
}

// Ilike adds a case-insensitive pattern filter; '*' is the wildcard
func (b *Builder) Ilike(field, pattern string) *Builder {
	b.params.Add(field, "ilike."+pattern)
	return b
}

// In adds a set-membership filter
func (b *Builder) In(field string, values []string) *Builder {
	b.params.Add(field, fmt.Sprintf("in.(%s)", strings.Join(values, ",")))
	return b
}

// Or adds a disjunction of conditions, each in "field.op.value" form
func (b *Builder) Or(conds ...string) *Builder {
	b.params.Add("or", fmt.Sprintf("(%s)", strings.Join(conds, ",")))
	return b
}

// OrderAsc sorts the result ascending by field
func (b *Builder) OrderAsc(field string) *Builder {
	b.params.Set("order", field+".asc")
	return b
}

// Range limits the result to the inclusive row range [lo, hi]
func (b *Builder) Range(lo, hi int) *Builder {
	b.lo, b.hi = lo, hi
	b.ranged = true
	return b
}

// Query exposes the accumulated query parameters
func (b *Builder) Query() url.Values { return b.params }

// Execute performs the query and returns the raw JSON response body.
// Single-shot: transport and status failures surface as store errors
// without leaking backend details to callers.
func (b *Builder) Execute(ctx context.Context) ([]byte, error) {
	req := b.client.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(b.params)

	if b.ranged {
		req.SetHeader("Range-Unit", "items")
		req.SetHeader("Range", fmt.Sprintf("%d-%d", b.lo, b.hi))
	}

	var (
		resp *resty.Response
		err  error
	)
	if b.payload != nil {
		resp, err = req.SetBody(b.payload).Post(b.path)
	} else {
		resp, err = req.Get(b.path)
	}
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeStore, "store request failed")
	}
	if resp.IsError() {
		return nil, perr.Storef("store returned status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}
