package summarize

import (
	"math"
	"sort"
	"strings"

	"github.com/arenahub/prerender/internal/upstream"
)

// Cutoffs renders the reward-threshold table. Reward keys arrive as
// "BRACKET/TITLE"; the human label is the segment after the last slash with
// underscores as spaces, title-cased.
func Cutoffs(stats *upstream.ActivityStats) Result {
	if stats == nil {
		return Result{}
	}

	keys := make([]string, 0, len(stats.Cutoffs.Rewards))
	for k := range stats.Cutoffs.Rewards {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(`<table class="seo-cutoffs"><thead><tr><th>Reward</th><th>Rating</th></tr></thead><tbody>`)
	if len(keys) == 0 {
		b.WriteString(`<tr><td colspan="2">No cutoff data available</td></tr>`)
	}
	for _, k := range keys {
		// predicted cutoffs arrive fractional; round rather than truncate
		b.WriteString("<tr><td>" + esc(rewardLabel(k)) + "</td><td>" +
			FormatInt(int(math.Round(stats.Cutoffs.Rewards[k]))) + "</td></tr>")
	}
	b.WriteString("</tbody></table>")

	return Result{BodyHTML: b.String()}
}

func rewardLabel(key string) string {
	if i := strings.LastIndex(key, "/"); i >= 0 {
		key = key[i+1:]
	}
	return TitleCase(strings.ReplaceAll(key, "_", " "))
}
