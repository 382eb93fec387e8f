// Package ratelimiter throttles requests with in-memory token buckets.
//
// Each key gets a bucket holding up to Capacity tokens, refilled by
// RefillRate every RefillInterval. Buckets idle for longer than IdleTTL are
// dropped by Sweep, which Run calls on a ticker.
//
//	l, err := ratelimiter.New(cfg, ratelimiter.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	go l.Run(ctx, time.Minute)
//
//	r.Use(ratelimiter.Middleware(l, ratelimiter.ByRemoteIP))
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every keyed response and Retry-After on denials.
package ratelimiter
