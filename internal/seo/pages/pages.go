// Package pages dispatches a classified request path to its enrichment
// calls and document build. Every branch degrades: enrichment failures
// render the page with static defaults, and an unexpected error while
// building a 3-segment page yields the generic landing body with a 500.
package pages

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/arenahub/prerender/internal/cache"
	"github.com/arenahub/prerender/internal/core/config"
	"github.com/arenahub/prerender/internal/game"
	"github.com/arenahub/prerender/internal/logger"
	"github.com/arenahub/prerender/internal/seo/classify"
	"github.com/arenahub/prerender/internal/seo/render"
	"github.com/arenahub/prerender/internal/upstream"
)

type Pages struct {
	fetch    *cache.Fetcher
	api      *upstream.Client
	renderer *render.Renderer
	logger   *slog.Logger

	ttl struct {
		character cache.Options
		ladder    cache.Options
		cutoffs   cache.Options
		meta      cache.Options
	}
	defaultOGImage string
}

func New(cfg config.Config, fetch *cache.Fetcher, api *upstream.Client, renderer *render.Renderer, log *slog.Logger) *Pages {
	p := &Pages{
		fetch:          fetch,
		api:            api,
		renderer:       renderer,
		logger:         log,
		defaultOGImage: cfg.PublicBaseURL + "/og-default.png",
	}
	p.ttl.character = cache.Options{TTL: cfg.CharacterTTL, ErrorTTL: cfg.CacheErrorTTL}
	p.ttl.ladder = cache.Options{TTL: cfg.LadderTTL, ErrorTTL: cfg.CacheErrorTTL}
	p.ttl.cutoffs = cache.Options{TTL: cfg.CutoffsTTL, ErrorTTL: cfg.CacheErrorTTL}
	p.ttl.meta = cache.Options{TTL: cfg.MetaTTL, ErrorTTL: cfg.CacheErrorTTL}
	return p
}

// RenderPath builds the HTML response for a request path. The returned
// status is always 200 except for an unexpected failure on a 3-segment
// path, which yields 500 with the landing body. A response body is always
// returned.
func (p *Pages) RenderPath(ctx context.Context, path string) (out string, status int) {
	segs := classify.Segments(path)
	intent := classify.Classify(segs)
	ctx = logger.WithPageKind(ctx, intent.Kind.String())

	errStatus := http.StatusOK
	if len(segs) == 3 {
		errStatus = http.StatusInternalServerError
	}

	defer func() {
		if rec := recover(); rec != nil {
			p.logger.Error("page build panicked", "path", path, "panic", rec)
			out, status = p.Landing(), errStatus
		}
	}()

	doc, err := p.build(ctx, intent, path)
	if err != nil {
		p.logger.Error("page build failed", "path", path, "err", err)
		return p.Landing(), errStatus
	}

	html, err := p.renderer.Render(doc)
	if err != nil {
		p.logger.Error("render failed", "path", path, "err", err)
		return p.Landing(), errStatus
	}
	return html, http.StatusOK
}

func (p *Pages) build(ctx context.Context, intent classify.Intent, path string) (render.Document, error) {
	switch intent.Kind {
	case classify.CharacterProfile:
		return p.characterDoc(ctx, intent, path), nil
	case classify.ActivityOrLadder:
		if intent.Bracket != "" {
			return p.ladderDoc(ctx, intent, path), nil
		}
		return p.activityLandingDoc(intent, path), nil
	case classify.CutoffsPage:
		return p.cutoffsDoc(ctx, intent, path), nil
	case classify.MetaPage:
		return p.metaDoc(ctx, intent, path), nil
	}
	return p.landingDoc(path), nil
}

// Landing renders the generic landing page, the terminal fallback for every
// error path. If even the template render fails the raw base template goes
// out so a crawler still sees valid HTML.
func (p *Pages) Landing() string {
	html, err := p.renderer.Render(p.landingDoc("/"))
	if err != nil {
		p.logger.Error("landing render failed", "err", err)
		return p.renderer.Base()
	}
	return html
}

func (p *Pages) landingDoc(path string) render.Document {
	return render.Document{
		Title:       game.SiteName + ": WoW PvP Leaderboards, Ratings & Cutoffs",
		Description: landingDescription,
		Path:        path,
		OGImage:     p.defaultOGImage,
		Keywords:    "wow pvp, arena leaderboard, solo shuffle, rating cutoffs",
	}
}

const landingDescription = "Track World of Warcraft PvP leaderboards, arena ratings, Solo Shuffle standings and season reward cutoffs for US and EU."

// hreflang applies the alternate-region links when the region is a known
// enumeration; best-effort regions on profile paths stay without them.
func hreflang(doc *render.Document, region string) {
	if !game.IsRegion(region) {
		return
	}
	doc.Region = region
	doc.Locale = game.Locale(region)
	doc.AltRegion = game.OppositeRegion(region)
	doc.AltLocale = game.Locale(doc.AltRegion)
}

func regionDisplay(region string) string {
	if region == "" {
		return "Global"
	}
	return strings.ToUpper(region)
}
