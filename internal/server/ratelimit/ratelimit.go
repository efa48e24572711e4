// Package ratelimit limits requests per client and route with token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// bucket refills continuously at rate tokens per second up to capacity
type bucket struct {
	capacity float64
	rate     float64
	tokens   float64
	last     time.Time
}

func (b *bucket) refill(now time.Time) {
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.last).Seconds()*b.rate)
	b.last = now
}

// Info describes the limit that applied to one request.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter tracks one bucket per client and route. Idle buckets are swept
// during Allow, so the Limiter owns no goroutines.
type Limiter struct {
	config    *Config
	now       func() time.Time
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// NewLimiter creates a limiter; a nil config selects DefaultConfig.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	return &Limiter{
		config:  config,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

// Allow consumes a token for the client on the route and reports whether the
// request may proceed.
func (l *Limiter) Allow(clientID, method, path string) (bool, Info) {
	switch {
	case !l.config.Enabled, l.config.Allowlist[clientID]:
		return true, Info{Allowed: true}
	case l.config.Denylist[clientID]:
		return false, Info{}
	}

	route := l.config.route(method, path)
	if route.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	key := clientID + " " + method + " " + path
	b, ok := l.buckets[key]
	if !ok {
		capacity := route.Burst
		if capacity <= 0 {
			capacity = route.Limit
		}
		b = &bucket{
			capacity: float64(capacity),
			rate:     float64(route.Limit) / route.Window.Seconds(),
			tokens:   float64(capacity),
			last:     now,
		}
		l.buckets[key] = b
	}
	b.refill(now)

	info := Info{Limit: route.Limit}
	if b.tokens >= 1 {
		b.tokens--
		info.Allowed = true
	} else {
		info.RetryAfter = time.Duration((1 - b.tokens) / b.rate * float64(time.Second))
	}
	info.Remaining = int(b.tokens)
	info.ResetTime = now.Add(time.Duration((b.capacity - b.tokens) / b.rate * float64(time.Second)))
	return info.Allowed, info
}

// sweep drops buckets idle for longer than IdleTTL, at most once per IdleTTL
func (l *Limiter) sweep(now time.Time) {
	ttl := l.config.IdleTTL
	if ttl <= 0 || now.Sub(l.lastSweep) < ttl {
		return
	}
	l.lastSweep = now
	for key, b := range l.buckets {
		if now.Sub(b.last) > ttl {
			delete(l.buckets, key)
		}
	}
}

// size returns the number of live buckets
func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
