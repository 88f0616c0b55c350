package summarize

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arenahub/prerender/internal/upstream"
)

func TestMeta_SortedByPresenceTop20(t *testing.T) {
	stats := &upstream.MetaStats{}
	for i := range 25 {
		stats.Specs = append(stats.Specs, upstream.SpecMeta{
			Name:     fmt.Sprintf("Spec%02d", i),
			Class:    "Class",
			WinRate:  0.5,
			Presence: float64(i) / 100,
		})
	}
	res := Meta(stats)

	assert.Equal(t, 20, strings.Count(res.BodyHTML, "<tr>")-1)
	// highest presence first
	assert.Contains(t, res.BodyHTML, "<td>1</td><td>Spec24 Class</td>")
	// the five lowest-presence specs fall off
	assert.NotContains(t, res.BodyHTML, "Spec04")
}

func TestMeta_PercentFormatting(t *testing.T) {
	stats := &upstream.MetaStats{Specs: []upstream.SpecMeta{
		{Name: "Arms", Class: "Warrior", WinRate: 0.523, Presence: 0.085},
		{Name: "Frost", Class: "Mage", WinRate: 0, Presence: 0.01},
	}}
	res := Meta(stats)

	assert.Contains(t, res.BodyHTML, "<td>52.3%</td>")
	assert.Contains(t, res.BodyHTML, "<td>8.5%</td>")
	// zero win rate renders as a dash, not 0.0%
	assert.Contains(t, res.BodyHTML, "<td>Frost Mage</td><td>-</td>")
}

func TestMeta_Empty(t *testing.T) {
	assert.True(t, Meta(nil).Empty())
	assert.True(t, Meta(&upstream.MetaStats{}).Empty())
}
