package browse

import (
	"github.com/bornholm/sidenav/internal/nav"
	"github.com/bornholm/sidenav/internal/ratelimit"
)

// Observer is notified of every sidebar transition.
type Observer interface {
	Observe(t nav.Transition)
}

type Options struct {
	SessionName string
	Prefix      string
	Motion      nav.Motion
	RateLimiter *ratelimit.RateLimiter
	Observers   []Observer
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		SessionName: "sidenav_state",
		Prefix:      "/_nav",
		Motion:      nav.DefaultMotion(),
		Observers:   make([]Observer, 0),
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithSessionName(sessionName string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = sessionName
	}
}

// WithPrefix sets the path prefix of the widget's own endpoints.
func WithPrefix(prefix string) OptionFunc {
	return func(opts *Options) {
		opts.Prefix = prefix
	}
}

func WithMotion(motion nav.Motion) OptionFunc {
	return func(opts *Options) {
		opts.Motion = motion
	}
}

func WithRateLimiter(limiter *ratelimit.RateLimiter) OptionFunc {
	return func(opts *Options) {
		opts.RateLimiter = limiter
	}
}

func WithObservers(observers ...Observer) OptionFunc {
	return func(opts *Options) {
		opts.Observers = observers
	}
}
