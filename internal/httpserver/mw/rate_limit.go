package mw

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MrSnakeDoc/folio/internal/utils"
)

// RateLimitConfig throttles admin writes per client IP: login attempts,
// editor form posts and API patches all draw from the same budget.
// Burst <= 0 disables throttling.
type RateLimitConfig struct {
	Burst        int           // writes allowed back to back
	RefillPerMin int           // writes regained per minute
	MaxEntries   int           // tracked clients before an early sweep (0 = unbounded)
	IdleTTL      time.Duration // forget clients silent for this long
	TrustProxy   bool          // resolve IP from proxy headers when true
}

type allowance struct {
	tokens  float64
	updated time.Time
}

// writeThrottle is a token bucket per client. All state sits behind one
// mutex; admin traffic is a handful of requests, not a hot path.
type writeThrottle struct {
	mu         sync.Mutex
	perSecond  float64
	capacity   float64
	maxEntries int
	idleTTL    time.Duration
	clients    map[string]*allowance
	lastSweep  time.Time
	now        func() time.Time
}

func newWriteThrottle(cfg RateLimitConfig) *writeThrottle {
	refill := max(cfg.RefillPerMin, 1)
	idle := cfg.IdleTTL
	if idle <= 0 {
		idle = 15 * time.Minute
	}
	return &writeThrottle{
		perSecond:  float64(refill) / 60,
		capacity:   float64(max(cfg.Burst, 1)),
		maxEntries: cfg.MaxEntries,
		idleTTL:    idle,
		clients:    make(map[string]*allowance),
		now:        time.Now,
	}
}

// take spends one token for client. When none is left it returns how many
// seconds until the next one.
func (t *writeThrottle) take(client string) (ok bool, left int, retryAfter int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if now.Sub(t.lastSweep) >= time.Minute || (t.maxEntries > 0 && len(t.clients) >= t.maxEntries) {
		t.sweep(now)
	}

	a := t.clients[client]
	if a == nil {
		a = &allowance{tokens: t.capacity, updated: now}
		t.clients[client] = a
	}
	if elapsed := now.Sub(a.updated).Seconds(); elapsed > 0 {
		a.tokens = math.Min(t.capacity, a.tokens+elapsed*t.perSecond)
		a.updated = now
	}

	if a.tokens < 1 {
		wait := int(math.Ceil((1 - a.tokens) / t.perSecond))
		return false, 0, max(wait, 1)
	}
	a.tokens--
	return true, int(a.tokens), 0
}

func (t *writeThrottle) sweep(now time.Time) {
	for client, a := range t.clients {
		if now.Sub(a.updated) > t.idleTTL {
			delete(t.clients, client)
		}
	}
	t.lastSweep = now
}

// RateLimit throttles admin writes. Reads never spend tokens, so browsing
// the editor does not eat into the budget for saving from it.
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	if cfg.Burst <= 0 {
		return passthrough
	}
	throttle := newWriteThrottle(cfg)
	limit := strconv.Itoa(cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			ok, left, retry := throttle.take(utils.ClientIP(r, cfg.TrustProxy))
			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(left))
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
