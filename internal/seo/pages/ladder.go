package pages

import (
	"context"
	"fmt"
	"strings"

	"github.com/arenahub/prerender/internal/cache/keys"
	"github.com/arenahub/prerender/internal/game"
	"github.com/arenahub/prerender/internal/seo/classify"
	"github.com/arenahub/prerender/internal/seo/render"
	"github.com/arenahub/prerender/internal/seo/summarize"
	"github.com/arenahub/prerender/internal/upstream"
)

func (p *Pages) ladderDoc(ctx context.Context, intent classify.Intent, path string) render.Document {
	v := p.fetch.Fetch(ctx, "ladder", keys.Ladder(intent.Region, intent.Activity, intent.Bracket),
		func(ctx context.Context) (any, error) {
			page, err := p.api.Ladder(ctx, intent.Region, intent.Activity, intent.Bracket)
			if err != nil {
				return nil, err
			}
			if page == nil {
				return nil, nil
			}
			return page, nil
		}, p.ttl.ladder)
	page, _ := v.(*upstream.LadderPage)

	enrich := summarize.Ladder(page, intent.Region, intent.Bracket, path)

	bracketLabel := game.BracketLabel(intent.Bracket)
	activityLabel := game.ActivityLabel(intent.Activity)
	title := fmt.Sprintf("%s %s | %s PvP %s | %s",
		bracketLabel, activityLabel, regionDisplay(intent.Region), game.Season, game.SiteName)

	doc := render.Document{
		Title: title,
		Description: fmt.Sprintf("Current %s %s standings for %s: %s ratings, records and top players.",
			bracketLabel, strings.ToLower(activityLabel), regionDisplay(intent.Region), game.Season),
		Path:     path,
		OGImage:  p.defaultOGImage,
		Keywords: fmt.Sprintf("wow pvp, %s, %s leaderboard, %s", bracketLabel, bracketLabel, regionDisplay(intent.Region)),
		BodyHTML: enrich.BodyHTML,
	}
	hreflang(&doc, intent.Region)

	if enrich.ExtraDescription != "" {
		doc.Description += " " + enrich.ExtraDescription
	}

	sd := map[string]any{
		"@context": "https://schema.org",
		"@type":    "CollectionPage",
		"name":     title,
		"url":      path,
	}
	mergeShallow(sd, enrich.StructuredData)
	doc.StructuredData = sd

	return doc
}

// activityLandingDoc renders the bracket picker for a region/activity pair.
// No enrichment; the body is a static link list.
func (p *Pages) activityLandingDoc(intent classify.Intent, path string) render.Document {
	activityLabel := game.ActivityLabel(intent.Activity)

	var b strings.Builder
	b.WriteString(`<section class="seo-landing">`)
	fmt.Fprintf(&b, "<h1>%s PvP %s</h1>", regionDisplay(intent.Region), activityLabel)
	b.WriteString("<ul>")
	for _, bracket := range game.Brackets {
		fmt.Fprintf(&b, `<li><a href="/%s/%s/%s">%s</a></li>`,
			intent.Region, intent.Activity, bracket, game.BracketLabel(bracket))
	}
	b.WriteString("</ul></section>")

	doc := render.Document{
		Title: fmt.Sprintf("%s | %s PvP %s | %s",
			activityLabel, regionDisplay(intent.Region), game.Season, game.SiteName),
		Description: fmt.Sprintf("Browse %s PvP %s by bracket: 2v2, 3v3, RBG, Solo Shuffle and Blitz standings for %s.",
			regionDisplay(intent.Region), strings.ToLower(activityLabel), game.Season),
		Path:     path,
		OGImage:  p.defaultOGImage,
		Keywords: fmt.Sprintf("wow pvp, %s, brackets, leaderboard", regionDisplay(intent.Region)),
		BodyHTML: b.String(),
	}
	hreflang(&doc, intent.Region)
	return doc
}
