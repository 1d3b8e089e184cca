package middlewares

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gradewatch/gradewatch/internal/logger"
)

// RateCounter counts requests per key within a fixed window.
type RateCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// clientAddr identifies the caller for rate limiting purposes. The limiter
// is per-client-address: X-Real-IP when a proxy set it, else the remote
// host.
func clientAddr(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimitMiddleware gates a route to limit requests per window per client
// address. Exceeding the quota fails the request with 429 before the
// handler runs, so no side effects occur. Counter-store failures fail open.
func RateLimitMiddleware(counter RateCounter, limit int64, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			key := fmt.Sprintf("ratelimit:%s:%s", r.URL.Path, clientAddr(r))

			count, err := counter.Incr(ctx, key, window)
			if err != nil {
				logger.Log.Errorw("rate limit counter unavailable", "key", key, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if count > limit {
				logger.Log.Warnw("rate limit exceeded", "key", key, "count", count, "limit", limit)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "Too many requests"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
