// Package postgrest is a minimal read-only PostgREST client: relation
// selection, filter predicates, ordering, inclusive ranges, and stored
// procedure calls. One long-lived Client is shared across requests.
package postgrest

import (
	"time"

	"routedata/internal/platform/config"

	"github.com/go-resty/resty/v2"
)

// Config carries the connection settings for the PostgREST backend
type Config struct {
	// Endpoint is the base URL, e.g. https://db.example.com
	Endpoint string

	// APIKey is sent as the apikey header on every request
	APIKey string

	// Timeout bounds each outbound call; zero means DefaultTimeout
	Timeout time.Duration
}

// DefaultTimeout bounds outbound store calls when none is configured
const DefaultTimeout = 30 * time.Second

// Client is a thread-safe handle to the PostgREST backend
type Client struct {
	http *resty.Client
}

// New constructs a Client from explicit settings
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	h := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(timeout).
		SetHeader("apikey", cfg.APIKey)
	return &Client{http: h}
}

// FromEnv constructs a Client from POSTGREST_* configuration
// ENDPOINT and API_KEY are required; TIMEOUT is optional
func FromEnv(cfg config.Conf) *Client {
	return New(Config{
		Endpoint: cfg.MustString("ENDPOINT"),
		APIKey:   cfg.MustString("API_KEY"),
		Timeout:  cfg.MayDuration("TIMEOUT", DefaultTimeout),
	})
}

// From starts a query against the named relation or view
func (c *Client) From(relation string) *Builder {
	return newBuilder(c, "/"+relation, nil)
}

// Rpc starts a stored procedure call with a JSON argument payload
func (c *Client) Rpc(proc string, payload any) *Builder {
	return newBuilder(c, "/rpc/"+proc, payload)
}
