package llm

import (
	"context"
	"sync"
	"time"
)

// MinCallInterval is the floor between any two outbound provider calls,
// shared across the generation and advisory paths.
const MinCallInterval = time.Second

// DefaultAssistLimit caps advisory calls per wizard session.
const DefaultAssistLimit = 7

// Throttle enforces a minimum interval between calls. A single Throttle
// is injected into every gateway so the floor holds process-wide.
type Throttle struct {
	mu       sync.Mutex
	next     time.Time
	interval time.Duration
}

// NewThrottle builds a throttle with the given minimum interval.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Wait blocks until the caller may proceed, or until the context is
// done. Each successful wait reserves the next slot, so concurrent
// callers are serialized one interval apart.
func (t *Throttle) Wait(ctx context.Context) error {
	t.mu.Lock()
	now := time.Now()
	wait := t.next.Sub(now)
	if wait < 0 {
		wait = 0
	}
	t.next = now.Add(wait + t.interval)
	t.mu.Unlock()

	if wait == 0 {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Session counts advisory calls for one wizard run. Once the limit is
// reached, further advisory requests are silently skipped.
type Session struct {
	mu    sync.Mutex
	calls int
	limit int
}

// NewSession builds a session with the given advisory call limit.
func NewSession(limit int) *Session {
	return &Session{limit: limit}
}

// TryAcquire consumes one advisory slot if any remain.
func (s *Session) TryAcquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls >= s.limit {
		return false
	}
	s.calls++
	return true
}

// Remaining reports how many advisory slots are left.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.limit - s.calls
}

// DefaultSessionTTL is how long an idle advisory session keeps its
// counter before the pool forgets it.
const DefaultSessionTTL = 30 * time.Minute

// SessionPool hands out one Session per client key, so each client of
// a long-lived process gets its own advisory budget. Idle entries are
// dropped after the TTL to keep the map bounded.
type SessionPool struct {
	mu    sync.Mutex
	limit int
	ttl   time.Duration
	byKey map[string]*poolEntry
}

type poolEntry struct {
	session  *Session
	lastSeen time.Time
}

// NewSessionPool builds a pool issuing sessions with the given limit.
func NewSessionPool(limit int, ttl time.Duration) *SessionPool {
	return &SessionPool{limit: limit, ttl: ttl, byKey: make(map[string]*poolEntry)}
}

// Get returns the session for key, creating a fresh one when the key
// is new or its previous session sat idle past the TTL.
func (p *SessionPool) Get(key string) *Session {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	for k, e := range p.byKey {
		if now.Sub(e.lastSeen) > p.ttl {
			delete(p.byKey, k)
		}
	}

	e, ok := p.byKey[key]
	if !ok {
		e = &poolEntry{session: NewSession(p.limit)}
		p.byKey[key] = e
	}
	e.lastSeen = now
	return e.session
}
