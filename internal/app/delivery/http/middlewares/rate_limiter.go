package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const credentialLimitMessage = "Too many attempts. Please wait a moment and try again."

// CredentialLimiter throttles login, signup and password reset submissions
// per client IP. A client that exceeds its budget is blocked for blockTime.
type CredentialLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	attempts  int
	per       time.Duration
	blockTime time.Duration
	now       func() time.Time
}

func NewCredentialLimiter(attempts int, per, blockTime time.Duration) *CredentialLimiter {
	return &CredentialLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		attempts:  attempts,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
	}
}

// LoginLimiter is the credential limiter tuned by the app config.
func (m *Middlewares) LoginLimiter() *CredentialLimiter {
	app := m.InternalConfig.App
	return NewCredentialLimiter(app.LoginMaxAttempts, app.LoginWindow(), app.LoginBlock())
}

// Allow reports whether the client at ip may submit another attempt.
func (l *CredentialLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if blockedUntil, found := l.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(l.blocked, ip)
	}

	limiter, exists := l.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(l.per), l.attempts)
		l.limiters[ip] = limiter
	}
	if !limiter.AllowN(now, 1) {
		l.blocked[ip] = now.Add(l.blockTime)
		return false
	}
	return true
}

// Limit only counts POSTs; the GET of the same form is never throttled.
func (l *CredentialLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			next.ServeHTTP(w, r)
			return
		}

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !l.Allow(ip) {
			http.Error(w, credentialLimitMessage, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
