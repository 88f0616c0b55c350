package summarize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arenahub/prerender/internal/upstream"
)

const maxMetaRows = 20

// Meta renders the spec representation table, ordered by ladder presence.
func Meta(stats *upstream.MetaStats) Result {
	if stats == nil || len(stats.Specs) == 0 {
		return Result{}
	}

	specs := make([]upstream.SpecMeta, len(stats.Specs))
	copy(specs, stats.Specs)
	sort.SliceStable(specs, func(i, j int) bool { return specs[i].Presence > specs[j].Presence })
	if len(specs) > maxMetaRows {
		specs = specs[:maxMetaRows]
	}

	var b strings.Builder
	b.WriteString(`<table class="seo-meta"><thead><tr><th>#</th><th>Spec</th><th>Win rate</th><th>Presence</th></tr></thead><tbody>`)
	for i, s := range specs {
		b.WriteString("<tr>")
		fmt.Fprintf(&b, "<td>%d</td>", i+1)
		b.WriteString("<td>" + esc(specName(s)) + "</td>")
		b.WriteString("<td>" + FormatPercent(s.WinRate) + "</td>")
		b.WriteString("<td>" + FormatPercent(s.Presence) + "</td>")
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")

	return Result{BodyHTML: b.String()}
}

func specName(s upstream.SpecMeta) string {
	if s.Class != "" && s.Name != "" {
		return s.Name + " " + s.Class
	}
	return strings.TrimSpace(s.Name + s.Class)
}
