package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"briefkit/internal/config"
)

const contentSecurityPolicy = "default-src 'self'; " +
	"img-src 'self' data: https: http:; " +
	"media-src 'self' data: https: http: blob:; " +
	"script-src 'self' 'unsafe-inline'; " +
	"style-src 'self' 'unsafe-inline'; " +
	"connect-src 'self' https://api.openai.com; " +
	"frame-src 'self' https://www.youtube.com; " +
	"object-src 'none'"

// securityHeaders sets response headers on every request. The dev flag is
// read from the live config so a reload takes effect without restart; HSTS
// is only sent outside dev mode, where the server is expected to sit behind
// TLS.
func securityHeaders(manager *config.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Content-Security-Policy", contentSecurityPolicy)
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "SAMEORIGIN")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		if !manager.GetConfig().Server.Dev {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Next()
	}
}

// maxBodyBytes caps the request body at the currently configured limit.
// Oversized requests get a 413 before the handler runs.
func maxBodyBytes(manager *config.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := manager.GetConfig().Server.MaxBodyBytes
		if c.Request.ContentLength > limit {
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

const (
	limiterMaxIdle       = 10 * time.Minute
	limiterSweepInterval = time.Minute
)

// ipLimiter keeps one token bucket per client IP. Idle entries are swept so
// the map stays bounded on a public endpoint.
type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	limit    rate.Limit
	burst    int

	maxIdle   time.Duration
	lastSweep time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPLimiter(perMinute, burst int) *ipLimiter {
	return &ipLimiter{
		limiters:  make(map[string]*clientLimiter),
		limit:     perMinuteLimit(perMinute),
		burst:     burst,
		maxIdle:   limiterMaxIdle,
		lastSweep: time.Now(),
	}
}

func perMinuteLimit(perMinute int) rate.Limit {
	return rate.Limit(float64(perMinute) / 60.0)
}

// update applies the current rate settings. A changed rate resets all
// buckets so the new limit applies immediately.
func (l *ipLimiter) update(perMinute, burst int) {
	limit := perMinuteLimit(perMinute)

	l.mu.Lock()
	defer l.mu.Unlock()

	if limit == l.limit && burst == l.burst {
		return
	}
	l.limit = limit
	l.burst = burst
	l.limiters = make(map[string]*clientLimiter)
}

func (l *ipLimiter) allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > limiterSweepInterval {
		for key, entry := range l.limiters {
			if now.Sub(entry.lastSeen) > l.maxIdle {
				delete(l.limiters, key)
			}
		}
		l.lastSweep = now
	}

	entry, ok := l.limiters[ip]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastSeen = now

	return entry.limiter.Allow()
}
