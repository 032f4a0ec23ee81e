package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"nutrition-agent/config"
	pkgLog "nutrition-agent/pkg/log"
)

// Middleware bundles the cross-cutting Gin handlers.
type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
	enabled bool
}

// New creates the middleware set.
func New(l pkgLog.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.PerMin),
		enabled: cfg.Enabled,
	}
}

// CORS allows all origins. The API serves browser clients from arbitrary
// hosts and carries no cookies.
func (m Middleware) CORS() gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	return cors.New(corsCfg)
}
