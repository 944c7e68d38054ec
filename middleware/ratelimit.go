package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/badapples/registry/metrics"
	"github.com/badapples/registry/userctx"
)

const limiterCacheSize = 10_000

// RateLimiter keeps one token bucket per client IP. Least recently seen
// clients are evicted once the cache is full.
type RateLimiter struct {
	route    string
	limit    rate.Limit
	burst    int
	limiters *lru.Cache[string, *rate.Limiter]
	lk       sync.Mutex
}

// NewRateLimiter allows events requests per window per client IP on route
func NewRateLimiter(route string, events int, window time.Duration) (*RateLimiter, error) {
	if events < 1 || window <= 0 {
		return nil, fmt.Errorf("invalid rate limit for %s: %d per %s", route, events, window)
	}

	cache, err := lru.New[string, *rate.Limiter](limiterCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create limiter cache: %w", err)
	}

	return &RateLimiter{
		route:    route,
		limit:    rate.Every(window / time.Duration(events)),
		burst:    events,
		limiters: cache,
	}, nil
}

func (rl *RateLimiter) getOrCreate(ip string) *rate.Limiter {
	rl.lk.Lock()
	defer rl.lk.Unlock()

	lim, ok := rl.limiters.Get(ip)
	if !ok {
		lim = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters.Add(ip, lim)
	}
	return lim
}

// Allow reports whether ip may make another request now
func (rl *RateLimiter) Allow(ip string) bool {
	return rl.getOrCreate(ip).Allow()
}

// Handler rejects requests over the limit with 429. It must run after RequestInfo.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := userctx.GetRequestInfo(r.Context()).IPAddress
		if !rl.Allow(ip) {
			metrics.RateLimited.WithLabelValues(rl.route).Inc()
			log.Warn("rate limit exceeded", "route", rl.route, "ip", ip)

			retry := time.Duration(float64(time.Second) / float64(rl.limit))
			w.Header().Set("Retry-After", strconv.Itoa(int(retry.Seconds())+1))
			writeError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}
