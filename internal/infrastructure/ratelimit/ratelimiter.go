package ratelimit

import (
	"context"
	"time"
)

// Rule caps the number of hits per key inside a sliding window.
type Rule struct {
	Limit  int
	Window time.Duration
}

type RateLimiter interface {
	// Allow records a hit for key and reports whether it is within the rule.
	Allow(ctx context.Context, key string, rule Rule) (bool, error)
	Reset(ctx context.Context, key string) error
}
