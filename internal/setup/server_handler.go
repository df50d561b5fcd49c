package setup

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/sidenav/internal/browse"
	"github.com/bornholm/sidenav/internal/config"
	"github.com/bornholm/sidenav/internal/metric"
	"github.com/bornholm/sidenav/internal/ratelimit"
	"github.com/bornholm/sidenav/pkg/log"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	sloghttp "github.com/samber/slog-http"
)

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	slogMiddleware := sloghttp.New(slog.Default())

	source, err := NewContentSourceFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessionStore, err := NewSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sections, err := NewSectionsFromConfig(conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rateLimiterOptions := make([]ratelimit.OptionFunc, 0)
	if timeout := conf.HTTP.RateLimit.IdleTimeout; timeout != nil {
		rateLimiterOptions = append(rateLimiterOptions, ratelimit.WithIdleTimeout(time.Duration(*timeout)))
	}

	rateLimiter := ratelimit.New(rate.Limit(conf.HTTP.RateLimit.Rate), int(conf.HTTP.RateLimit.Burst), rateLimiterOptions...)

	browseOptions := []browse.OptionFunc{
		browse.WithSessionName(string(conf.Session.Name)),
		browse.WithMotion(NewMotionFromConfig(conf)),
		browse.WithRateLimiter(rateLimiter),
	}

	if conf.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		browseOptions = append(browseOptions, browse.WithObservers(metric.NewNavigation(registry)))
		mux.Handle(string(conf.Metrics.Path), metric.Handler(registry))
	}

	browseHandler := browse.NewHandler(source, sections, sessionStore, browseOptions...)

	mux.Handle("/", slogMiddleware(browseHandler))

	slog.InfoContext(ctx, "sidebar configured",
		slog.Int("sections", sections.Len()),
		log.ScrubbedURL("baseURL", string(conf.HTTP.BaseURL)),
	)

	return mux, nil
}
