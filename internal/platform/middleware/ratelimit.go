package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig sets the steady rate and burst allowance per caller.
type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 100,
		BurstSize:         200,
	}
}

// bucket tracks the token balance for a single caller.
type bucket struct {
	tokens   float64
	refilled time.Time
	lastSeen time.Time
}

// limiter keys token buckets by caller and evicts buckets that have been
// idle longer than idleTTL, so one-off visitors do not accumulate forever.
type limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	rate    float64
	burst   float64
	idleTTL time.Duration
}

func newLimiter(cfg RateLimitConfig) *limiter {
	return &limiter{
		buckets: make(map[string]*bucket),
		rate:    cfg.RequestsPerSecond,
		burst:   float64(cfg.BurstSize),
		idleTTL: 10 * time.Minute,
	}
}

// take spends one token for key. It reports whether the request is allowed,
// how many whole tokens remain, and the seconds to wait when denied.
func (l *limiter) take(key string) (allowed bool, remaining int, retryAfter int) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		if len(l.buckets) > 0 && len(l.buckets)%1024 == 0 {
			l.evict(now)
		}
		b = &bucket{tokens: l.burst, refilled: now}
		l.buckets[key] = b
	}

	b.tokens += now.Sub(b.refilled).Seconds() * l.rate
	if b.tokens > l.burst {
		b.tokens = l.burst
	}
	b.refilled = now
	b.lastSeen = now

	if b.tokens < 1 {
		if l.rate <= 0 {
			return false, 0, 1
		}
		return false, 0, int(math.Ceil((1 - b.tokens) / l.rate))
	}
	b.tokens--
	return true, int(b.tokens), 0
}

// evict drops buckets idle past the TTL. Caller holds the lock.
func (l *limiter) evict(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.idleTTL {
			delete(l.buckets, key)
		}
	}
}

// RateLimit limits request throughput per caller: authenticated requests
// per portal user, anonymous ones per client IP.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	lim := newLimiter(cfg)
	limitHeader := strconv.FormatFloat(cfg.RequestsPerSecond, 'f', 0, 64)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if userID, ok := c.Get("user_id").(int64); ok {
				key = "user:" + strconv.FormatInt(userID, 10)
			}

			allowed, remaining, retryAfter := lim.take(key)
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", limitHeader)
			h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !allowed {
				h.Set("Retry-After", strconv.Itoa(retryAfter))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
