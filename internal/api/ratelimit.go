package api

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"chatbuilder/backend/internal/auth"
)

type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per signed-in user. Anonymous requests are
// keyed by remote address.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.RWMutex
	limiters map[string]*userLimiter
}

// NewRateLimiter allows rps requests per second per user with the given
// burst. A non-positive rps disables limiting.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:    rate.Limit(rps),
		burst:    burst,
		limiters: make(map[string]*userLimiter),
	}
}

// Middleware rejects requests over the limit with 429.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.limit <= 0 {
			next.ServeHTTP(w, r)
			return
		}
		key := r.RemoteAddr
		if user := auth.UserFromContext(r.Context()); user != nil {
			key = user.ID
		}
		if !l.get(key).Allow() {
			slog.Warn("Rate limit exceeded", "key", key, "path", r.URL.Path)
			w.Header().Set("Retry-After", "1")
			respondWithJSON(w, http.StatusTooManyRequests, ErrorResponse{Error: "Too many requests, slow down."})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) get(key string) *rate.Limiter {
	now := time.Now()

	l.mu.RLock()
	entry, ok := l.limiters[key]
	l.mu.RUnlock()
	if ok {
		l.mu.Lock()
		entry.lastSeen = now
		l.mu.Unlock()
		return entry.limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// Another request may have created it while we waited for the lock.
	if entry, ok = l.limiters[key]; ok {
		entry.lastSeen = now
		return entry.limiter
	}
	entry = &userLimiter{limiter: rate.NewLimiter(l.limit, l.burst), lastSeen: now}
	l.limiters[key] = entry
	return entry.limiter
}

// Sweep forgets limiters idle for longer than idle and returns how many were
// removed.
func (l *RateLimiter) Sweep(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)

	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for key, entry := range l.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(l.limiters, key)
			removed++
		}
	}
	return removed
}
