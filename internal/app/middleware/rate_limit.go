package middleware

import (
	"net/http"
	"time"

	"github.com/dajor/bewirtungsbeleg-sub002/pkg/config"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/logger"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

const msgTooManyRequests = "Zu viele Anfragen. Bitte versuchen Sie es später erneut."

// EmailRateLimit limits the email-sending endpoints per client IP. These
// endpoints trigger outbound mail, so they are the abuse surface.
func EmailRateLimit(limiter ratelimit.Limiter, cfg *config.RateLimitConfig) gin.HandlerFunc {
	window := time.Duration(cfg.EmailWindow) * time.Second

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		err := limiter.CheckAndIncrement(c.Request.Context(), c.ClientIP(), cfg.EmailLimit, window)
		if err != nil {
			if err == ratelimit.ErrRateLimitExceeded {
				logger.Warnf("rate limit exceeded for %s on %s", c.ClientIP(), c.FullPath())
				c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": msgTooManyRequests})
				return
			}

			// a broken limiter backend should not take the endpoint down
			logger.Error(err, "rate limiter check failed")
		}

		c.Next()
	}
}
