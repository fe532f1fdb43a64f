package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brt06a/Testv5/internal/infrastructure/ratelimit"
	"github.com/brt06a/Testv5/internal/shared/logger"
	"github.com/brt06a/Testv5/internal/shared/utils"
)

// LoginRateLimiter throttles login attempts per client IP. A successful login
// clears the counter.
type LoginRateLimiter struct {
	limiter ratelimit.RateLimiter
	rule    ratelimit.Rule
	logger  logger.Interface
}

func NewLoginRateLimiter(limiter ratelimit.RateLimiter, maxAttempts int, window time.Duration, logger logger.Interface) *LoginRateLimiter {
	return &LoginRateLimiter{
		limiter: limiter,
		rule:    ratelimit.Rule{Limit: maxAttempts, Window: window},
		logger:  logger,
	}
}

func (rl *LoginRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		ctx := c.Request.Context()

		allowed, err := rl.limiter.Allow(ctx, clientIP, rl.rule)
		if err != nil {
			// a limiter outage must not lock admins out
			rl.logger.Warnw("login rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			rl.logger.Warnw("login rate limit exceeded", "client_ip", clientIP)
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			if err := rl.limiter.Reset(ctx, clientIP); err != nil {
				rl.logger.Warnw("failed to reset login rate limit", "error", err)
			}
		}
	}
}
