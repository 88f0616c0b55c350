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

// CharacterDescription is the static description template used when no
// enrichment is available.
func CharacterDescription(name, realm, region string) string {
	return fmt.Sprintf("%s-%s %s PvP profile: arena ratings, Solo Shuffle standings and rated history for %s.",
		name, realm, regionDisplay(region), game.Season)
}

func (p *Pages) characterDoc(ctx context.Context, intent classify.Intent, path string) render.Document {
	v := p.fetch.Fetch(ctx, "player", keys.Player(intent.Region, intent.Realm, intent.Name),
		func(ctx context.Context) (any, error) {
			prof, err := p.api.CharacterProfile(ctx, intent.Region, intent.Realm, intent.Name)
			if err != nil {
				return nil, err
			}
			if prof == nil {
				// cached not-found; an untyped nil keeps the sentinel honest
				return nil, nil
			}
			return prof, nil
		}, p.ttl.character)
	prof, _ := v.(*upstream.Profile)

	name := summarize.TitleCase(intent.Name)
	realm := summarize.TitleCase(intent.Realm)
	if prof != nil {
		if prof.Name != "" {
			name = prof.Name
		}
		if prof.Realm != "" {
			realm = prof.Realm
		}
	}

	enrich := summarize.Character(prof)

	doc := render.Document{
		Title: fmt.Sprintf("%s-%s | %s %s PvP Profile | %s",
			name, realm, regionDisplay(intent.Region), game.Season, game.SiteName),
		Description: CharacterDescription(name, realm, intent.Region),
		Path:        path,
		OGImage:     p.defaultOGImage,
		OGType:      "profile",
		Keywords:    fmt.Sprintf("%s, %s, wow pvp, arena rating, solo shuffle", name, realm),
		BodyHTML:    enrich.BodyHTML,
	}
	if !game.IsRegion(intent.Region) {
		// typo'd region: keep the page renderable but out of the index
		doc.Robots = "noindex, follow"
	}
	hreflang(&doc, intent.Region)

	if enrich.ExtraDescription != "" {
		doc.Description += " " + enrich.ExtraDescription
	}
	if enrich.OGImage != "" {
		doc.OGImage = enrich.OGImage
	}

	sd := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     fmt.Sprintf("%s-%s", name, realm),
		"url":      path,
	}
	mergeShallow(sd, enrich.StructuredData)
	doc.StructuredData = sd

	return doc
}

// mergeShallow copies src keys over dst, summarizer output winning.
func mergeShallow(dst, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
}
