package pages

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenahub/prerender/internal/cache"
	"github.com/arenahub/prerender/internal/core/config"
	"github.com/arenahub/prerender/internal/game"
	"github.com/arenahub/prerender/internal/logger"
	"github.com/arenahub/prerender/internal/seo/render"
)

func testLogger() *slog.Logger {
	zl := zerolog.New(io.Discard)
	return logger.NewSlog(&zl)
}

// brokenPages has no upstream client wired; any enrichment attempt panics.
func brokenPages(t *testing.T) *Pages {
	t.Helper()
	renderer, err := render.NewFromString("https://arenahub.gg", game.SiteName, render.DefaultTemplate)
	require.NoError(t, err)

	cfg := config.Config{
		PublicBaseURL: "https://arenahub.gg",
		CacheErrorTTL: time.Second,
		CharacterTTL:  time.Minute,
		LadderTTL:     time.Minute,
		CutoffsTTL:    time.Minute,
		MetaTTL:       time.Minute,
	}
	log := testLogger()
	return New(cfg, cache.NewFetcher(cache.New(), log), nil, renderer, log)
}

func TestRenderPath_PanicOnThreeSegmentsIs500WithLandingBody(t *testing.T) {
	p := brokenPages(t)

	body, status := p.RenderPath(context.Background(), "/eu/stormrage/arthas")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body, "<title>")
	assert.Contains(t, body, game.SiteName)
}

func TestRenderPath_PanicOnTwoSegmentsIsSwallowed(t *testing.T) {
	p := brokenPages(t)

	body, status := p.RenderPath(context.Background(), "/eu/cutoffs")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<title>")
}

func TestRenderPath_LandingNeedsNoUpstream(t *testing.T) {
	p := brokenPages(t)

	body, status := p.RenderPath(context.Background(), "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"Organization"`)
	assert.Contains(t, body, `"WebSite"`)
}

func TestRenderPath_ActivityLandingListsBrackets(t *testing.T) {
	p := brokenPages(t)

	body, status := p.RenderPath(context.Background(), "/eu/ladder")
	assert.Equal(t, http.StatusOK, status)
	for _, bracket := range game.Brackets {
		assert.Contains(t, body, "/eu/ladder/"+bracket)
	}
	assert.Equal(t, 1, strings.Count(body, `hreflang="x-default"`))
}
