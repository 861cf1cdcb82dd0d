package ratelimit

import (
	"context"
	"time"
)

// Result describes the outcome of a single rate-limit check.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Limiter answers whether a request identified by key (the client IP) is
// within quota for the current window. Implementations are injected into
// the middleware so limits can be process-local or shared via Redis.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}
