// Package ratelimit counts requests per key over a fixed window.
package ratelimit

import "context"

type Limiter interface {
	// Allow records one request for key and reports whether it fits the budget.
	Allow(ctx context.Context, key string) (bool, error)
}
