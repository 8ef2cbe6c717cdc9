package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func rateLimitedHandler(cfg RateLimitConfig) echo.HandlerFunc {
	mw := RateLimit(cfg)
	return mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
}

func TestRateLimit_WithinBurst(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(RateLimitConfig{RequestsPerSecond: 10, BurstSize: 5})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler(c); err != nil {
			t.Fatalf("request %d: expected no error, got %v", i+1, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
		if got := rec.Header().Get("X-RateLimit-Limit"); got != "10" {
			t.Errorf("request %d: expected X-RateLimit-Limit '10', got %q", i+1, got)
		}
	}
}

func TestRateLimit_BurstExhausted(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 2})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		if err := handler(c); err != nil {
			t.Fatalf("request %d: expected no error, got %v", i+1, err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := handler(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", httpErr.Code)
	}
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("expected X-RateLimit-Remaining '0', got %q", got)
	}
	retryAfter, convErr := strconv.Atoi(rec.Header().Get("Retry-After"))
	if convErr != nil || retryAfter < 1 {
		t.Errorf("expected Retry-After >= 1, got %q", rec.Header().Get("Retry-After"))
	}
}

func TestRateLimit_UsersHaveSeparateBudgets(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1})

	asUser := func(userID int64) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.Set("user_id", userID)
		return handler(c)
	}

	if err := asUser(1); err != nil {
		t.Fatalf("user 1 first request: expected no error, got %v", err)
	}
	if err := asUser(1); err == nil {
		t.Fatal("user 1 second request: expected rate limit error")
	}
	if err := asUser(2); err != nil {
		t.Fatalf("user 2 first request: expected no error, got %v", err)
	}
}

func TestLimiter_RemainingCountsDown(t *testing.T) {
	lim := newLimiter(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 3})

	for want := 2; want >= 0; want-- {
		allowed, remaining, _ := lim.take("patient")
		if !allowed {
			t.Fatalf("expected request to be allowed with %d tokens left", want)
		}
		if remaining != want {
			t.Errorf("expected %d remaining, got %d", want, remaining)
		}
	}
	if allowed, _, _ := lim.take("patient"); allowed {
		t.Error("expected empty bucket to deny")
	}
}

func TestLimiter_ZeroRateRetryAfter(t *testing.T) {
	lim := newLimiter(RateLimitConfig{RequestsPerSecond: 0, BurstSize: 1})
	lim.take("key")

	allowed, _, retryAfter := lim.take("key")
	if allowed {
		t.Fatal("expected denial after the single token is spent")
	}
	if retryAfter != 1 {
		t.Errorf("expected retry-after 1 for a zero refill rate, got %d", retryAfter)
	}
}

func TestLimiter_EvictsIdleBuckets(t *testing.T) {
	lim := newLimiter(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1})
	lim.take("stale")
	lim.take("fresh")

	lim.mu.Lock()
	lim.buckets["stale"].lastSeen = time.Now().Add(-time.Hour)
	lim.evict(time.Now())
	_, staleKept := lim.buckets["stale"]
	_, freshKept := lim.buckets["fresh"]
	lim.mu.Unlock()

	if staleKept {
		t.Error("expected idle bucket to be evicted")
	}
	if !freshKept {
		t.Error("expected active bucket to survive eviction")
	}
}

func TestRateLimit_DefaultConfig(t *testing.T) {
	cfg := DefaultRateLimitConfig()
	if cfg.RequestsPerSecond != 100 {
		t.Errorf("expected RequestsPerSecond 100, got %f", cfg.RequestsPerSecond)
	}
	if cfg.BurstSize != 200 {
		t.Errorf("expected BurstSize 200, got %d", cfg.BurstSize)
	}
}
