package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/openhire/jobboard-api/internal/api/shared"
)

// RateLimiter limits how many requests a single client may make within a
// window. Implementations must be safe for concurrent use.
type RateLimiter interface {
	Allow(r *http.Request, key string) bool
}

// windowCounter tracks request counts for one client within the current
// window.
type windowCounter struct {
	count       int
	windowStart time.Time
}

// MemoryRateLimiter is a fixed-window in-process rate limiter keyed by
// client IP. Suitable for single-instance deployments; use the Redis-backed
// limiter when running multiple replicas.
type MemoryRateLimiter struct {
	mu       sync.Mutex
	counters map[string]*windowCounter
	limit    int
	window   time.Duration
	now      func() time.Time
}

// NewMemoryRateLimiter creates a limiter allowing limit requests per window
// per client.
func NewMemoryRateLimiter(limit int, window time.Duration) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		counters: make(map[string]*windowCounter),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

// Allow reports whether the request identified by key fits within the
// current window, counting it if so.
func (l *MemoryRateLimiter) Allow(_ *http.Request, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, ok := l.counters[key]
	if !ok || now.Sub(c.windowStart) >= l.window {
		l.counters[key] = &windowCounter{count: 1, windowStart: now}
		l.evictStale(now)
		return true
	}

	if c.count >= l.limit {
		return false
	}
	c.count++
	return true
}

// evictStale drops counters whose window has long passed. Called while the
// lock is held, piggybacked on new-window creation to avoid a background
// goroutine.
func (l *MemoryRateLimiter) evictStale(now time.Time) {
	for key, c := range l.counters {
		if now.Sub(c.windowStart) >= 2*l.window {
			delete(l.counters, key)
		}
	}
}

// clientKey identifies the client for rate limiting purposes. The remote
// address is used with the port stripped.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit wraps a handler with the given limiter, rejecting over-limit
// requests with 429.
func RateLimit(limiter RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(r, clientKey(r)) {
				shared.RespondWithError(w, r, http.StatusTooManyRequests,
					"rate_limited", "Too many requests, try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
