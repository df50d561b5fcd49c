package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bornholm/sidenav/internal/config"
	"github.com/bornholm/sidenav/internal/setup"
	"github.com/bornholm/sidenav/pkg/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	configFile string = ""
	dumpConfig bool   = false
)

const shutdownTimeout = 5 * time.Second

func init() {
	flag.StringVar(&configFile, "config", configFile, "configuration file")
	flag.BoolVar(&dumpConfig, "dump-config", dumpConfig, "dump default configuration file and exit")
}

func main() {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	conf := config.NewDefaultConfig()

	if dumpConfig {
		if err := config.Dump(os.Stdout, conf); err != nil {
			slog.ErrorContext(ctx, "could not dump config file", log.Error(errors.WithStack(err)))
			os.Exit(1)
		}

		os.Exit(0)
	}

	if configFile != "" {
		if err := config.LoadFile(configFile, conf); err != nil {
			slog.ErrorContext(ctx, "could not parse config file", log.Error(errors.WithStack(err)), slog.String("file", configFile))
			os.Exit(1)
		}
	}

	if err := config.Interpolate(conf); err != nil {
		slog.ErrorContext(ctx, "could not interpolate config file", log.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	handlerOptions := &slog.HandlerOptions{
		Level:     slog.Level(conf.Logger.Level),
		AddSource: true,
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, handlerOptions)
	if conf.Logger.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, handlerOptions)
	}

	slog.SetDefault(slog.New(log.ContextHandler{Handler: handler}))
	slog.SetLogLoggerLevel(slog.Level(conf.Logger.Level))

	httpHandler, err := setup.NewHandlerFromConfig(ctx, conf)
	if err != nil {
		slog.ErrorContext(ctx, "could not generate handler from config", log.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	server := &http.Server{
		Addr:    string(conf.HTTP.Address),
		Handler: httpHandler,
	}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		slog.InfoContext(ctx, "http server listening", slog.String("addr", server.Addr))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.WithStack(err)
		}

		return nil
	})

	group.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return errors.WithStack(err)
		}

		slog.InfoContext(shutdownCtx, "http server stopped")

		return nil
	})

	if err := group.Wait(); err != nil {
		slog.ErrorContext(ctx, "could not serve", log.Error(errors.WithStack(err)))
		os.Exit(1)
	}
}
