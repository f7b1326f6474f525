// Package kit provides transport-agnostic plumbing for exposing service
// operations as tools: typed endpoints, middleware chaining, context
// enrichment, and MCP registration helpers.
package kit

import "context"

// Endpoint is a single callable operation: typed request in, typed
// response out.
type Endpoint func(ctx context.Context, req any) (any, error)

// Middleware wraps an Endpoint with cross-cutting behaviour.
type Middleware func(Endpoint) Endpoint

// Chain composes middlewares into one, with the first argument outermost.
func Chain(mw ...Middleware) Middleware {
	return func(next Endpoint) Endpoint {
		for i := len(mw) - 1; i >= 0; i-- {
			next = mw[i](next)
		}
		return next
	}
}
