package ratelimiter

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// Limiter is an in-memory token bucket limiter keyed by string.
type Limiter struct {
	cfg    Config
	now    func() time.Time
	logger *slog.Logger

	mu      sync.Mutex
	buckets map[string]*bucket
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

// WithLogger sets the logger for sweeps and denials.
func WithLogger(log *slog.Logger) Option {
	return func(l *Limiter) {
		if log != nil {
			l.logger = log
		}
	}
}

// New validates cfg and returns a Limiter.
func New(cfg Config, opts ...Option) (*Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	l := &Limiter{
		cfg:     cfg,
		now:     time.Now,
		logger:  slog.New(discard{}),
		buckets: make(map[string]*bucket),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Allow takes one token from key's bucket.
func (l *Limiter) Allow(key string) (Result, error) {
	return l.AllowN(key, 1)
}

// AllowN takes n tokens from key's bucket. A denied call takes nothing and
// reports the shortfall as a negative Remaining.
func (l *Limiter) AllowN(key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	if key == "" {
		return Result{}, ErrEmptyKey
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b := l.refill(key, now)
	if b.tokens >= n {
		b.tokens -= n
		return l.result(b, b.tokens), nil
	}
	return l.result(b, b.tokens-n), nil
}

// Status reports key's bucket without consuming tokens.
func (l *Limiter) Status(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	b := l.refill(key, l.now())
	return l.result(b, b.tokens)
}

// Reset forgets key's bucket.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
}

// Len returns the number of tracked buckets.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Sweep drops buckets idle longer than IdleTTL and returns how many went.
func (l *Limiter) Sweep() int {
	if l.cfg.IdleTTL <= 0 {
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	n := 0
	for key, b := range l.buckets {
		if now.Sub(b.lastAccess) > l.cfg.IdleTTL {
			delete(l.buckets, key)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (l *Limiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := l.Sweep(); n > 0 {
				l.logger.Debug("rate limit buckets swept", logger.Component("ratelimiter"), slog.Int("count", n))
			}
		}
	}
}

func (l *Limiter) refill(key string, now time.Time) *bucket {
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.cfg.Capacity, lastRefill: now}
		l.buckets[key] = b
	}
	b.lastAccess = now

	// Cap the interval count so a long idle gap cannot overflow.
	maxIntervals := int64(l.cfg.Capacity/l.cfg.RefillRate + 1)
	intervals := int(min(int64(now.Sub(b.lastRefill)/l.cfg.RefillInterval), maxIntervals))
	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*l.cfg.RefillRate, l.cfg.Capacity)
		b.lastRefill = now
	}
	return b
}

func (l *Limiter) result(b *bucket, remaining int) Result {
	return Result{
		Limit:     l.cfg.Capacity,
		Remaining: remaining,
		ResetAt:   b.lastRefill.Add(l.cfg.RefillInterval),
	}
}

type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }
