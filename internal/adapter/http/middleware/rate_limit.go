package middleware

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"quotedesk/internal/infrastructure/logging"
	"quotedesk/internal/infrastructure/metrics"
	"quotedesk/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = pkg.NewDomainErrorSimple(
	"rate_limited",
	"요청이 너무 많습니다. 잠시 후 다시 시도해주세요.",
	http.StatusTooManyRequests,
)

// IPRateLimiter keeps one token bucket per client IP. Buckets idle long
// enough to have refilled completely are evicted on a periodic sweep.
type IPRateLimiter struct {
	limiters sync.Map // client IP -> *ipBucket
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	metrics  *metrics.Metrics

	mu        sync.Mutex
	lastSweep time.Time
	now       func() time.Time
}

type ipBucket struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

const minIdleTTL = time.Minute

// NewIPRateLimiter allows perMinute requests per IP with the given burst.
// A non-positive perMinute returns nil, which RateLimit treats as disabled.
func NewIPRateLimiter(perMinute, burst int, m *metrics.Metrics) *IPRateLimiter {
	if perMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = perMinute
	}
	interval := time.Minute / time.Duration(perMinute)
	idleTTL := time.Duration(burst) * interval
	if idleTTL < minIdleTTL {
		idleTTL = minIdleTTL
	}
	return &IPRateLimiter{
		limit:   rate.Every(interval),
		burst:   burst,
		idleTTL: idleTTL,
		metrics: m,
		now:     time.Now,
	}
}

func (l *IPRateLimiter) bucketFor(ip string) *ipBucket {
	if v, ok := l.limiters.Load(ip); ok {
		return v.(*ipBucket)
	}
	v, _ := l.limiters.LoadOrStore(ip, &ipBucket{limiter: rate.NewLimiter(l.limit, l.burst)})
	return v.(*ipBucket)
}

// Allow reports whether ip may make one more request now.
func (l *IPRateLimiter) Allow(ip string) bool {
	now := l.now()
	l.sweep(now)
	b := l.bucketFor(ip)
	b.lastSeen.Store(now.UnixNano())
	return b.limiter.AllowN(now, 1)
}

// sweep drops idle buckets at most once per idleTTL.
func (l *IPRateLimiter) sweep(now time.Time) {
	l.mu.Lock()
	if now.Sub(l.lastSweep) < l.idleTTL {
		l.mu.Unlock()
		return
	}
	l.lastSweep = now
	l.mu.Unlock()

	cutoff := now.Add(-l.idleTTL).UnixNano()
	l.limiters.Range(func(key, value any) bool {
		if value.(*ipBucket).lastSeen.Load() < cutoff {
			l.limiters.Delete(key)
		}
		return true
	})
}

// Size returns the number of tracked client IPs.
func (l *IPRateLimiter) Size() int {
	n := 0
	l.limiters.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// RateLimit rejects requests over the per-IP budget with 429.
func RateLimit(l *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if !l.Allow(ip) {
			l.metrics.Limited()
			logging.L().WithField("ip", ip).Warn("[quote][http] rate limited")
			c.AbortWithStatusJSON(errRateLimited.HTTPStatus, errRateLimited.ToHTTPError())
			return
		}
		c.Next()
	}
}
