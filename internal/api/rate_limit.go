package api

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/limbo/checkin/pkg/httputil"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const limiterTTL = 5 * time.Minute

type clientLimiter struct {
	limiter *rate.Limiter
	expires time.Time
}

// clientLimiters keeps one token bucket per client key and forgets buckets
// idle for limiterTTL.
type clientLimiters struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*clientLimiter
}

func newClientLimiters(perMinute int) *clientLimiters {
	if perMinute <= 0 {
		perMinute = 30
	}
	return &clientLimiters{
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    max(perMinute/2, 1),
		limiters: make(map[string]*clientLimiter),
	}
}

func (cl *clientLimiters) allow(key string, now time.Time) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	for k, l := range cl.limiters {
		if now.After(l.expires) {
			delete(cl.limiters, k)
		}
	}
	l, ok := cl.limiters[key]
	if !ok {
		l = &clientLimiter{limiter: rate.NewLimiter(cl.limit, cl.burst)}
		cl.limiters[key] = l
	}
	l.expires = now.Add(limiterTTL)
	return l.limiter.AllowN(now, 1)
}

// RateLimitMiddleware keys buckets by user id when authenticated, by client IP otherwise.
func (s *Server) RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		if uid, err := GetUIDFromContext(r); err == nil {
			key = uid.String()
		}
		if !s.limiters.allow(key, time.Now()) {
			GetLoggerFromCtx(r.Context()).Warn("rate limit exceeded", zap.String("client", key))
			httputil.WriteErrorResponse(w, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
