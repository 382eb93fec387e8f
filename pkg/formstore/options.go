package formstore

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/form"
)

const (
	DefaultCapacity = 10000
	DefaultTTL      = 30 * time.Minute
)

// EvictReason tells why an instance left the store.
type EvictReason string

const (
	EvictCapacity EvictReason = "capacity"
	EvictExpired  EvictReason = "expired"
	EvictRemoved  EvictReason = "removed"
	EvictClosed   EvictReason = "closed"
)

// EvictFunc is called, without the store lock held, for every instance that
// leaves the store.
type EvictFunc func(id uuid.UUID, e *form.Engine, reason EvictReason)

// Option configures a Store.
type Option func(*Store)

// WithCapacity bounds the number of live instances. The least recently used
// instance is evicted when a new one would exceed it.
func WithCapacity(n int) Option {
	if n <= 0 {
		panic("formstore: capacity must be positive")
	}
	return func(s *Store) { s.capacity = n }
}

// WithTTL evicts instances idle for longer than d. Zero disables expiry.
func WithTTL(d time.Duration) Option {
	return func(s *Store) { s.ttl = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEvictCallback registers fn to observe evictions.
func WithEvictCallback(fn EvictFunc) Option {
	return func(s *Store) { s.onEvict = fn }
}
