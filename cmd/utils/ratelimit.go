package utils

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// rateLimiterStore holds one limiter per endpoint path. Limiting is keyed by
// endpoint rather than client IP so a burst against a single route cannot
// starve the rest of the API.
type rateLimiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func (s *rateLimiterStore) getLimiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.limiters[key] = limiter
	}
	return limiter
}

// RateLimitMiddleware limits requests per endpoint path.
func RateLimitMiddleware(limit rate.Limit, burst int) func(http.Handler) http.Handler {
	store := &rateLimiterStore{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := store.getLimiter(r.URL.Path)
			if !limiter.Allow() {
				http.Error(w, "Too many requests, please try again later", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
