package ratelimiter

import (
	"hash/fnv"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

const maxKeyLength = 64

// KeyFunc extracts a bucket key from the request.
type KeyFunc func(r *http.Request) string

// ByRemoteIP keys by the host part of r.RemoteAddr. Put chi's RealIP
// middleware in front when running behind a proxy.
func ByRemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := net.ParseIP(strings.TrimSpace(host)); ip != nil {
		return ip.String()
	}
	return ""
}

// ByHeader keys by the value of the named header.
func ByHeader(name string) KeyFunc {
	return func(r *http.Request) string { return r.Header.Get(name) }
}

// Composite joins the non-empty keys of fns with ":". Results longer than
// 64 bytes are replaced by their base36 FNV-1a hash.
func Composite(fns ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(fns))
		for _, fn := range fns {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}
		key := strings.Join(parts, ":")
		if len(key) <= maxKeyLength {
			return key
		}
		h := fnv.New64a()
		_, _ = h.Write([]byte(key))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}

type middlewareConfig struct {
	denied http.Handler
	logger *slog.Logger
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithDeniedHandler renders throttled requests. Rate limit headers are
// already set when it runs.
func WithDeniedHandler(h http.Handler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.denied = h
		}
	}
}

// WithMiddlewareLogger sets the logger for denied requests.
func WithMiddlewareLogger(log *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if log != nil {
			c.logger = log
		}
	}
}

// Middleware throttles requests per key. Requests without a key pass
// through unthrottled.
func Middleware(l *Limiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		denied: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
		logger: slog.New(discard{}),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			result, err := l.Allow(key)
			if err != nil {
				cfg.logger.ErrorContext(r.Context(), "rate limit check failed", logger.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				retry := int(result.RetryAfter(l.now()).Seconds())
				h.Set("Retry-After", strconv.Itoa(max(1, retry)))
				cfg.logger.WarnContext(r.Context(), "request throttled",
					logger.Component("ratelimiter"),
					slog.String("path", r.URL.Path),
				)
				cfg.denied.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
