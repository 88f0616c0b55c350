package summarize

import (
	"fmt"
	"strings"

	"github.com/arenahub/prerender/internal/game"
	"github.com/arenahub/prerender/internal/upstream"
)

const maxLadderRows = 25

// Ladder summarizes a leaderboard snapshot. pagePath is the request path,
// used as the structured-data fallback URL for entries with no resolvable
// profile. Multiclass pages get a table only; standard pages additionally
// get a top-3 description and an ItemList.
func Ladder(page *upstream.LadderPage, region, bracket, pagePath string) Result {
	if page == nil || len(page.Characters) == 0 {
		return Result{}
	}

	rows := page.Characters
	if len(rows) > maxLadderRows {
		rows = rows[:maxLadderRows]
	}

	if page.Multiclass {
		return Result{BodyHTML: multiclassTable(rows, region)}
	}

	res := Result{BodyHTML: ladderTable(rows, region)}

	top := rows
	if len(top) > 3 {
		top = top[:3]
	}
	var names []string
	for _, e := range top {
		names = append(names, fmt.Sprintf("%s (%s)", e.Name, FormatInt(e.Rating)))
	}
	res.ExtraDescription = fmt.Sprintf("Top %s: %s.", game.BracketLabel(bracket), strings.Join(names, ", "))

	var items []map[string]any
	for i, e := range rows {
		u := ProfilePath(regionFor(e, region), e.Realm, e.Name)
		if u == "" {
			u = pagePath
		}
		person := map[string]any{
			"@type": "Person",
			"name":  e.Name,
			"url":   u,
		}
		props := []map[string]any{{
			"@type": "PropertyValue",
			"name":  "rating",
			"value": e.Rating,
		}}
		if e.Won > 0 || e.Lost > 0 {
			props = append(props, map[string]any{
				"@type": "PropertyValue",
				"name":  "record",
				"value": fmt.Sprintf("%d-%d", e.Won, e.Lost),
			})
		}
		person["additionalProperty"] = props
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"item":     person,
		})
	}
	res.StructuredData = map[string]any{
		"mainEntity": map[string]any{
			"@type":           "ItemList",
			"numberOfItems":   len(items),
			"itemListElement": items,
		},
	}
	return res
}

func regionFor(e upstream.LadderEntry, fallback string) string {
	if e.Region != "" {
		return e.Region
	}
	return fallback
}

func ladderTable(rows []upstream.LadderEntry, region string) string {
	var b strings.Builder
	b.WriteString(`<table class="seo-ladder"><thead><tr><th>Rank</th><th>Player</th><th>Rating</th><th>W-L</th></tr></thead><tbody>`)
	for i, e := range rows {
		b.WriteString("<tr>")
		fmt.Fprintf(&b, "<td>%d</td>", i+1)
		b.WriteString("<td>" + playerCell(e, region) + "</td>")
		b.WriteString("<td>" + FormatInt(e.Rating) + "</td>")
		fmt.Fprintf(&b, "<td>%d-%d</td>", e.Won, e.Lost)
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func multiclassTable(rows []upstream.LadderEntry, region string) string {
	var b strings.Builder
	b.WriteString(`<table class="seo-ladder"><thead><tr><th>Rank</th><th>Player</th><th>Class</th><th>Score</th></tr></thead><tbody>`)
	for i, e := range rows {
		b.WriteString("<tr>")
		fmt.Fprintf(&b, "<td>%d</td>", i+1)
		b.WriteString("<td>" + playerCell(e, region) + "</td>")
		b.WriteString("<td>" + esc(e.Class) + "</td>")
		fmt.Fprintf(&b, "<td>%.0f</td>", e.Score)
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func playerCell(e upstream.LadderEntry, region string) string {
	if u := ProfilePath(regionFor(e, region), e.Realm, e.Name); u != "" {
		return `<a href="` + escAttr(u) + `">` + esc(e.Name) + "</a>"
	}
	return esc(e.Name)
}
