package ai

import (
	"context"

	"golang.org/x/time/rate"

	"galeria/backend/internal/logger"
)

// DefaultRateLimit is the default QPS limit.
const DefaultRateLimit = 5

// RateLimiter provides global rate limiting for AI API calls. A page of
// artworks fans out into many field translations at once; the limiter keeps
// that burst within the provider's quota.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a new rate limiter with the given QPS.
func NewRateLimiter(qps int) *RateLimiter {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	logger.Debug("ai rate limit configured", "module", "ai", "action", "create", "resource", "ai", "result", "ok", "qps", qps)
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(qps), qps), // burst = qps
	}
}

// Wait blocks until a token is available or context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Limit returns the configured QPS.
func (r *RateLimiter) Limit() int {
	return int(r.limiter.Limit())
}
