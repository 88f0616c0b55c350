// Package server wires the HTTP surface: health probes, metrics, the
// sitemap, and the single page route every SPA path funnels through.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arenahub/prerender/internal/core/config"
	"github.com/arenahub/prerender/internal/core/health"
	"github.com/arenahub/prerender/internal/core/middleware"
	"github.com/arenahub/prerender/internal/core/observability"
	"github.com/arenahub/prerender/internal/seo/pages"
	"github.com/arenahub/prerender/internal/seo/sitemap"
)

// Run sets up the router and serves until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger, p *pages.Pages) error {
	r := NewRouter(cfg, logger, p)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http listen", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		return err
	}
}

// NewRouter builds the chi router; split out so tests can drive the full
// surface through httptest.
func NewRouter(cfg config.Config, logger *slog.Logger, p *pages.Pages) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recover())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS())

	r.Get("/ping", health.Ping())
	r.Get("/healthz", health.Liveness())
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/sitemap.xml", handleSitemap(cfg, logger))

	// every remaining path is an SPA route; classification happens inside.
	r.Group(func(r chi.Router) {
		if cfg.RatePerMinute > 0 {
			r.Use(httprate.LimitByIP(cfg.RatePerMinute, time.Minute))
		}
		r.Get("/*", handlePage(p))
	})

	return r
}

func handlePage(p *pages.Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		body, status := p.RenderPath(r.Context(), r.URL.Path)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)

		observability.ObserveHTTP(r.Method, "/{page}", status, time.Since(start).Seconds())
	}
}

func handleSitemap(cfg config.Config, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		body, err := sitemap.Build(cfg.PublicBaseURL, time.Now())
		if err != nil {
			logger.Error("sitemap build failed", "err", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			observability.ObserveHTTP(r.Method, "/sitemap.xml", http.StatusInternalServerError, time.Since(start).Seconds())
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(body)
		observability.ObserveHTTP(r.Method, "/sitemap.xml", http.StatusOK, time.Since(start).Seconds())
	}
}
