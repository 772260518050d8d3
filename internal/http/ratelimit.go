package http

import (
	"sync"
	"time"
)

const (
	rateLimitPerMinute = 60
	rateLimitWindow    = time.Minute

	// Idle clients are forgotten after this long so the map cannot
	// grow unbounded.
	clientIdleTimeout = 10 * time.Minute
	cleanupInterval   = 5 * time.Minute
)

// rateLimiter tracks request timestamps per client IP over a sliding
// window. Only mutating requests are counted; see Server.secured.
type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow

	stopCleanup chan struct{}
	stopOnce    sync.Once
}

type clientWindow struct {
	requests []time.Time
	lastSeen time.Time
}

func newRateLimiter() *rateLimiter {
	rl := &rateLimiter{
		clients:     make(map[string]*clientWindow),
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// allow records a request for clientIP and reports whether it stays
// within the per-minute budget.
func (rl *rateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cw, ok := rl.clients[clientIP]
	if !ok {
		cw = &clientWindow{}
		rl.clients[clientIP] = cw
	}
	cw.lastSeen = now

	cutoff := now.Add(-rateLimitWindow)
	kept := cw.requests[:0]
	for _, ts := range cw.requests {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	cw.requests = kept

	if len(cw.requests) >= rateLimitPerMinute {
		return false
	}
	cw.requests = append(cw.requests, now)
	return true
}

func (rl *rateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCleanup:
			return
		case <-ticker.C:
			rl.mu.Lock()
			cutoff := time.Now().Add(-clientIdleTimeout)
			for ip, cw := range rl.clients {
				if cw.lastSeen.Before(cutoff) {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func (rl *rateLimiter) stop() {
	rl.stopOnce.Do(func() {
		close(rl.stopCleanup)
	})
}
