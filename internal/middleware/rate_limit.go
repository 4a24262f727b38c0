package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"skyboard/flightdeck/internal/constants"
)

// RateLimiter keeps one token bucket per client IP. Buckets of idle clients
// expire so the table does not grow without bound.
type RateLimiter struct {
	rps      rate.Limit
	burst    int
	limiters *cache.Cache
	mu       sync.Mutex

	whitelistedIPs map[string]bool
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		limiters: cache.New(10*time.Minute, 20*time.Minute),
		whitelistedIPs: map[string]bool{
			"127.0.0.1": true, // local health probes
			"::1":       true,
		},
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, found := rl.limiters.Get(ip); found {
		limiter := v.(*rate.Limiter)
		rl.limiters.SetDefault(ip, limiter)
		return limiter
	}
	limiter := rate.NewLimiter(rl.rps, rl.burst)
	rl.limiters.SetDefault(ip, limiter)
	return limiter
}

// Middleware rejects requests over the per-IP budget with 429
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if rl.whitelistedIPs[ip] {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.getLimiter(ip).Allow() {
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, constants.MsgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
