package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/krikodium/hermanascaradonti/internal/apierror"
)

// limiter is a sliding-window per-IP request counter. Each named limiter
// owns its map so login throttling and general API throttling stay independent.
type limiter struct {
	name    string
	limit   int
	window  time.Duration
	mu      sync.Mutex
	windows map[string]*ipWindow
}

type ipWindow struct {
	count int
	until time.Time
}

func newLimiter(name string, limit int, window time.Duration) *limiter {
	l := &limiter{
		name:    name,
		limit:   limit,
		window:  window,
		windows: make(map[string]*ipWindow),
	}
	go l.purgeLoop()
	return l
}

// allow counts a hit for ip and reports whether it stays under the limit,
// along with the moment the current window resets.
func (l *limiter) allow(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.windows[ip]
	if !ok || now.After(w.until) {
		w = &ipWindow{until: now.Add(l.window)}
		l.windows[ip] = w
	}
	w.count++
	return w.count <= l.limit, w.until
}

const purgeInterval = 5 * time.Minute

// purgeLoop drops expired windows so IPs that never return don't accumulate.
func (l *limiter) purgeLoop() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		purged := 0
		for ip, w := range l.windows {
			if now.After(w.until) {
				delete(l.windows, ip)
				purged++
			}
		}
		remaining := len(l.windows)
		l.mu.Unlock()

		if purged > 0 {
			log.Debug().
				Str("limiter", l.name).
				Int("purged", purged).
				Int("remaining", remaining).
				Msg("rate limiter window purge")
		}
	}
}

var loginLimiter = newLimiter("login", 20, time.Minute)

// LoginRateLimiter throttles login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ok, _ := loginLimiter.allow(c.ClientIP()); !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.New("Demasiados intentos de login. Intente en 1 minuto."))
			return
		}
		c.Next()
	}
}

// RateLimiter throttles the whole API per IP with the given limit and window.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := newLimiter("api", limit, window)
	return func(c *gin.Context) {
		ok, until := l.allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", until.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}
