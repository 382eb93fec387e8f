package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/ratelimiter"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testConfig() ratelimiter.Config {
	return ratelimiter.Config{
		Capacity:       3,
		RefillRate:     1,
		RefillInterval: time.Second,
		IdleTTL:        time.Minute,
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  ratelimiter.Config
	}{
		{"zero capacity", ratelimiter.Config{RefillRate: 1, RefillInterval: time.Second}},
		{"zero refill rate", ratelimiter.Config{Capacity: 1, RefillInterval: time.Second}},
		{"zero interval", ratelimiter.Config{Capacity: 1, RefillRate: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ratelimiter.New(tt.cfg)
			require.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}
}

func TestLimiter_Allow(t *testing.T) {
	t.Parallel()

	clk := newClock()
	l, err := ratelimiter.New(testConfig(), ratelimiter.WithClock(clk.Now))
	require.NoError(t, err)

	for i := range 3 {
		res, err := l.Allow("a")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 2-i, res.Remaining)
		assert.Equal(t, 3, res.Limit)
	}

	res, err := l.Allow("a")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, -1, res.Remaining)
	assert.Equal(t, time.Second, res.RetryAfter(clk.Now()))

	other, err := l.Allow("b")
	require.NoError(t, err)
	assert.True(t, other.Allowed(), "keys are independent")

	clk.Advance(time.Second)
	res, err = l.Allow("a")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 0, res.Remaining)
}

func TestLimiter_RefillCapsAtCapacity(t *testing.T) {
	t.Parallel()

	clk := newClock()
	l, err := ratelimiter.New(testConfig(), ratelimiter.WithClock(clk.Now))
	require.NoError(t, err)

	_, err = l.AllowN("a", 3)
	require.NoError(t, err)

	clk.Advance(time.Hour)
	assert.Equal(t, 3, l.Status("a").Remaining)
}

func TestLimiter_AllowNErrors(t *testing.T) {
	t.Parallel()

	l, err := ratelimiter.New(testConfig())
	require.NoError(t, err)

	_, err = l.AllowN("a", 0)
	require.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)

	_, err = l.Allow("")
	require.ErrorIs(t, err, ratelimiter.ErrEmptyKey)
}

func TestLimiter_DeniedCallTakesNothing(t *testing.T) {
	t.Parallel()

	l, err := ratelimiter.New(testConfig())
	require.NoError(t, err)

	res, err := l.AllowN("a", 5)
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, 3, l.Status("a").Remaining)
}

func TestLimiter_ResetAndSweep(t *testing.T) {
	t.Parallel()

	clk := newClock()
	l, err := ratelimiter.New(testConfig(), ratelimiter.WithClock(clk.Now))
	require.NoError(t, err)

	_, _ = l.AllowN("a", 3)
	l.Reset("a")
	assert.Equal(t, 3, l.Status("a").Remaining)

	_, _ = l.Allow("b")
	assert.Equal(t, 2, l.Len())

	clk.Advance(30 * time.Second)
	_, _ = l.Allow("b")
	clk.Advance(45 * time.Second)

	assert.Equal(t, 1, l.Sweep())
	assert.Equal(t, 1, l.Len())
}

func TestLimiter_RunStopsWithContext(t *testing.T) {
	t.Parallel()

	l, err := ratelimiter.New(testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
