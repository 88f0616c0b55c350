package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/arenahub/prerender/internal/cache"
	"github.com/arenahub/prerender/internal/core/config"
	"github.com/arenahub/prerender/internal/core/httpclient"
	"github.com/arenahub/prerender/internal/core/observability"
	"github.com/arenahub/prerender/internal/core/server"
	"github.com/arenahub/prerender/internal/game"
	"github.com/arenahub/prerender/internal/logger"
	"github.com/arenahub/prerender/internal/seo/pages"
	"github.com/arenahub/prerender/internal/seo/render"
	"github.com/arenahub/prerender/internal/upstream"
)

var Version = "dev"

func main() {
	os.Exit(run())
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func run() int {
	cfg := config.FromEnv()

	zl := logger.Build(logger.Config{
		Level:     cfg.LogLevel,
		Console:   strings.ToLower(os.Getenv("LOG_CONSOLE")) == "true",
		SampleN:   envInt("LOG_SAMPLE_N", 0),
		Component: "prerender",
	}, os.Stdout)

	appLog := logger.NewSlog(&zl)

	observability.ExposeBuildInfo(Version)
	appLog.Info("starting prerender",
		"addr", cfg.Addr,
		"version", Version,
		"upstream", cfg.UpstreamBaseURL,
		"base_url", cfg.PublicBaseURL)

	// parsed once; the renderer hands out per-request clones
	renderer, err := render.New(cfg.PublicBaseURL, game.SiteName, cfg.TemplatePath, "web/index.html")
	if err != nil {
		appLog.Error("failed to load base template", "err", err)
		return 1
	}

	api, err := upstream.New(cfg.UpstreamBaseURL, httpclient.NewOutbound(cfg.UpstreamTimeout), appLog)
	if err != nil {
		appLog.Error("failed to initialize upstream client", "err", err)
		return 1
	}

	fetcher := cache.NewFetcher(cache.New(), appLog)
	pg := pages.New(cfg, fetcher, api, renderer, appLog)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// optional standalone metrics listener for setups that keep the public
	// port free of scrape traffic; /metrics stays on the main router too
	if cfg.Metrics.Enabled {
		startMetricsServer(ctx, cfg.Metrics, appLog)
	}

	if err := server.Run(ctx, cfg, appLog, pg); err != nil {
		appLog.Error("server exited with error", "err", err)
		return 1
	}
	appLog.Info("server stopped")
	return 0
}
