package summarize

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/arenahub/prerender/internal/upstream"
)

const maxProfileBrackets = 3

// Character summarizes a character profile: the top rated brackets as a
// sentence and list, a details paragraph, and Person-shaped partial
// structured data.
func Character(p *upstream.Profile) Result {
	if p == nil {
		return Result{}
	}

	brackets := make([]upstream.BracketStanding, 0, len(p.Brackets))
	brackets = append(brackets, p.Brackets...)
	sort.SliceStable(brackets, func(i, j int) bool { return brackets[i].Rating > brackets[j].Rating })
	if len(brackets) > maxProfileBrackets {
		brackets = brackets[:maxProfileBrackets]
	}

	var summaries []string
	for _, b := range brackets {
		summaries = append(summaries, fmt.Sprintf("%s %s (#%s)",
			b.Label, FormatInt(b.Rating), FormatInt(b.Rank)))
	}

	res := Result{
		OGImage: p.AvatarURL,
	}
	if len(summaries) > 0 {
		res.ExtraDescription = strings.Join(summaries, ", ")
	}

	sd := map[string]any{}
	if len(summaries) > 0 {
		sd["achievement"] = summaries

		var props []map[string]any
		for _, b := range brackets {
			prop := map[string]any{
				"@type": "PropertyValue",
				"name":  b.Label,
				"value": fmt.Sprintf("%d rating", b.Rating),
			}
			if desc := standingDescription(b); desc != "" {
				prop["description"] = desc
			}
			props = append(props, prop)
		}
		sd["additionalProperty"] = props
	}
	if p.LastUpdatedMs > 0 {
		sd["dateModified"] = time.UnixMilli(p.LastUpdatedMs).UTC().Format(time.RFC3339)
	}
	if len(sd) > 0 {
		res.StructuredData = sd
	}

	res.BodyHTML = characterBody(p, brackets, summaries)
	return res
}

func standingDescription(b upstream.BracketStanding) string {
	var parts []string
	if b.Rank > 0 {
		parts = append(parts, fmt.Sprintf("Rank %s", FormatInt(b.Rank)))
	}
	if b.Won > 0 || b.Lost > 0 {
		parts = append(parts, fmt.Sprintf("%d-%d record", b.Won, b.Lost))
	}
	return strings.Join(parts, ", ")
}

func characterBody(p *upstream.Profile, brackets []upstream.BracketStanding, summaries []string) string {
	var b strings.Builder
	b.WriteString(`<section class="seo-profile">`)
	b.WriteString("<h1>" + esc(p.Name) + "-" + esc(p.Realm) + "</h1>")

	if len(summaries) > 0 {
		b.WriteString("<ul>")
		for i := range brackets {
			b.WriteString("<li>" + esc(summaries[i]) + "</li>")
		}
		b.WriteString("</ul>")
	}

	if details := characterDetails(p); details != "" {
		b.WriteString("<p>" + esc(details) + "</p>")
	}
	b.WriteString("</section>")
	return b.String()
}

// characterDetails joins the present identity fields with single spaces,
// with ". " separating the item-level and talent suffixes.
func characterDetails(p *upstream.Profile) string {
	var parts []string
	if p.Level > 0 {
		parts = append(parts, fmt.Sprintf("Level %d", p.Level))
	}
	for _, s := range []string{p.Gender, p.Race, p.Faction, p.Class, p.Spec} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	out := strings.Join(parts, " ")
	if p.ItemLevel > 0 {
		suffix := fmt.Sprintf("Item level %.0f", p.ItemLevel)
		if out == "" {
			out = suffix
		} else {
			out += ". " + suffix
		}
	}
	if len(p.PvPTalents) > 0 {
		suffix := "PvP talents: " + strings.Join(p.PvPTalents, ", ")
		if out == "" {
			out = suffix
		} else {
			out += ". " + suffix
		}
	}
	return out
}
