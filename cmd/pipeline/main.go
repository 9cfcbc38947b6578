package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sportatlas/catalog/internal/app"
	"github.com/sportatlas/catalog/internal/config"
	"github.com/sportatlas/catalog/internal/observability"
	"github.com/sportatlas/catalog/internal/platform/logging"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"env", cfg.AppEnv,
	)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("shutdown tracing", "error", err)
		}
	}()

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := stopProfiler(); err != nil {
			logger.Error("stop profiler", "error", err)
		}
	}()

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("close app", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := strings.ToLower(strings.TrimSpace(os.Args[1]))
	if err := dispatch(ctx, a, cmd); err != nil {
		logger.Error("command failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func dispatch(ctx context.Context, a *app.Application, cmd string) error {
	switch cmd {
	case "sync":
		result, err := a.SyncSources(ctx)
		if err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "sync complete",
			"pageviews", result.PageViews,
			"seasons", result.Seasons,
			"scheduled_events", result.ScheduledEvents,
			"errors", len(result.Errors),
		)
		return nil
	case "build":
		_, err := a.BuildCatalog(ctx)
		return err
	case "enrich":
		_, _, err := a.EnrichCatalog(ctx)
		return err
	case "events":
		_, err := a.BuildEvents(ctx)
		return err
	case "run":
		return a.Run(ctx)
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: pipeline <command>

commands:
  sync     pull provider data into the data directory
  build    build the unenriched catalog from synced data
  enrich   build the catalog and attach popularity and season blocks
  events   build the unified event calendar
  run      enrich, build events and record a snapshot`)
}
