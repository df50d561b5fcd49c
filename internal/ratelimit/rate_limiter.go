package ratelimit

import (
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/bornholm/sidenav/internal/syncx"
	"github.com/bornholm/sidenav/pkg/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per key, typically a widget instance.
// Buckets unused for longer than the idle timeout are evicted.
type RateLimiter struct {
	rate        rate.Limit
	burst       int
	idleTimeout time.Duration
	now         func() time.Time
	lastSweep   atomic.Int64
	buckets     syncx.Map[string, *bucket]
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

type GetKeyFunc func(r *http.Request) (string, error)

type OptionFunc func(l *RateLimiter)

// WithIdleTimeout sets how long an unused bucket is kept. A zero timeout
// keeps buckets forever.
func WithIdleTimeout(timeout time.Duration) OptionFunc {
	return func(l *RateLimiter) {
		l.idleTimeout = timeout
	}
}

func WithClock(now func() time.Time) OptionFunc {
	return func(l *RateLimiter) {
		l.now = now
	}
}

func (l *RateLimiter) Allow(key string) bool {
	now := l.now()

	fresh := &bucket{limiter: rate.NewLimiter(l.rate, l.burst)}
	fresh.lastSeen.Store(now.UnixNano())

	b, _ := l.buckets.LoadOrStore(key, fresh)
	b.lastSeen.Store(now.UnixNano())

	l.sweep(now)

	return b.limiter.AllowN(now, 1)
}

// sweep evicts idle buckets, at most once per idle timeout.
func (l *RateLimiter) sweep(now time.Time) {
	if l.idleTimeout <= 0 {
		return
	}

	last := l.lastSweep.Load()
	if now.UnixNano()-last < int64(l.idleTimeout) {
		return
	}

	if !l.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}

	deadline := now.Add(-l.idleTimeout).UnixNano()

	l.buckets.Range(func(key string, b *bucket) bool {
		if b.lastSeen.Load() < deadline {
			l.buckets.Delete(key)
		}

		return true
	})
}

func (l *RateLimiter) Middleware(getKey GetKeyFunc) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			key, err := getKey(r)
			if err != nil {
				slog.ErrorContext(ctx, "could not retrieve rate limiting key", log.Error(errors.WithStack(err)))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !l.Allow(key) {
				slog.WarnContext(ctx, "rate limit exceeded", slog.String("key", key))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func New(rate rate.Limit, burst int, funcs ...OptionFunc) *RateLimiter {
	limiter := &RateLimiter{
		rate:        rate,
		burst:       burst,
		idleTimeout: 10 * time.Minute,
		now:         time.Now,
	}

	for _, fn := range funcs {
		fn(limiter)
	}

	limiter.lastSweep.Store(limiter.now().UnixNano())

	return limiter
}
