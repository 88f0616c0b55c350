package pages

import (
	"context"
	"fmt"

	"github.com/arenahub/prerender/internal/cache/keys"
	"github.com/arenahub/prerender/internal/game"
	"github.com/arenahub/prerender/internal/seo/classify"
	"github.com/arenahub/prerender/internal/seo/render"
	"github.com/arenahub/prerender/internal/seo/summarize"
	"github.com/arenahub/prerender/internal/upstream"
)

// cutoffsDoc and metaDoc share the Dataset shape: a stats table over the
// whole ladder rather than a page about one entity. The global (regionless)
// variants skip enrichment entirely.

func (p *Pages) cutoffsDoc(ctx context.Context, intent classify.Intent, path string) render.Document {
	var enrich summarize.Result
	if intent.Region != "" {
		v := p.fetch.Fetch(ctx, "cutoffs", keys.Cutoffs(intent.Region),
			func(ctx context.Context) (any, error) {
				stats, err := p.api.ActivityStats(ctx, intent.Region)
				if err != nil {
					return nil, err
				}
				if stats == nil {
					return nil, nil
				}
				return stats, nil
			}, p.ttl.cutoffs)
		stats, _ := v.(*upstream.ActivityStats)
		enrich = summarize.Cutoffs(stats)
	}

	title := fmt.Sprintf("Rating Cutoffs | %s PvP %s | %s",
		regionDisplay(intent.Region), game.Season, game.SiteName)

	doc := render.Document{
		Title: title,
		Description: fmt.Sprintf("Current %s rating cutoffs for end-of-season rewards in %s PvP: Gladiator, Legend and Hero thresholds.",
			game.Season, regionDisplay(intent.Region)),
		Path:     path,
		OGImage:  p.defaultOGImage,
		Keywords: fmt.Sprintf("wow pvp cutoffs, gladiator cutoff, %s, %s", game.Season, regionDisplay(intent.Region)),
		BodyHTML: enrich.BodyHTML,
	}
	hreflang(&doc, intent.Region)

	sd := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Dataset",
		"name":        title,
		"description": doc.Description,
		"url":         path,
	}
	mergeShallow(sd, enrich.StructuredData)
	doc.StructuredData = sd
	return doc
}

func (p *Pages) metaDoc(ctx context.Context, intent classify.Intent, path string) render.Document {
	var enrich summarize.Result
	if intent.Region != "" {
		v := p.fetch.Fetch(ctx, "meta", keys.Meta(intent.Region),
			func(ctx context.Context) (any, error) {
				stats, err := p.api.MetaStats(ctx, intent.Region)
				if err != nil {
					return nil, err
				}
				if stats == nil {
					return nil, nil
				}
				return stats, nil
			}, p.ttl.meta)
		stats, _ := v.(*upstream.MetaStats)
		enrich = summarize.Meta(stats)
	}

	title := fmt.Sprintf("PvP Meta | %s %s | %s",
		regionDisplay(intent.Region), game.Season, game.SiteName)

	doc := render.Document{
		Title: title,
		Description: fmt.Sprintf("Most represented specs and win rates in %s PvP for %s, sorted by ladder presence.",
			regionDisplay(intent.Region), game.Season),
		Path:     path,
		OGImage:  p.defaultOGImage,
		Keywords: fmt.Sprintf("wow pvp meta, spec tier list, %s, %s", game.Season, regionDisplay(intent.Region)),
		BodyHTML: enrich.BodyHTML,
	}
	hreflang(&doc, intent.Region)

	sd := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Dataset",
		"name":        title,
		"description": doc.Description,
		"url":         path,
	}
	mergeShallow(sd, enrich.StructuredData)
	doc.StructuredData = sd
	return doc
}
