// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestID returns the request id minted by the router middleware, if any
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}
