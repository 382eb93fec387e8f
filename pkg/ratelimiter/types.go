package ratelimiter

import (
	"fmt"
	"time"
)

// Config defines the token bucket configuration.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"100"`   // burst size
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"10"` // tokens per interval
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"1s"`
	IdleTTL        time.Duration `env:"RATE_LIMIT_IDLE_TTL" envDefault:"10m"` // buckets untouched this long are swept
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result contains the result of a rate limit check.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allowed reports whether the tokens were granted.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait relative to now before the next
// token arrives. It is zero for allowed results.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(0, r.ResetAt.Sub(now))
}
