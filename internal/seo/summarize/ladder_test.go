package summarize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenahub/prerender/internal/upstream"
)

func ladderPage(n int) *upstream.LadderPage {
	p := &upstream.LadderPage{}
	names := []string{"Alpha", "Bravo", "Charlie", "Delta"}
	for i := range n {
		p.Characters = append(p.Characters, upstream.LadderEntry{
			Name:   names[i%len(names)],
			Realm:  "Stormrage",
			Region: "eu",
			Class:  "Mage",
			Rating: 3000 - i*10,
			Won:    100 - i,
			Lost:   50,
		})
	}
	return p
}

func TestLadder_StandardMode(t *testing.T) {
	res := Ladder(ladderPage(4), "eu", "shuffle", "/eu/ladder/shuffle")

	assert.Contains(t, res.ExtraDescription, "Top Solo Shuffle:")
	assert.Contains(t, res.ExtraDescription, "Alpha (3,000)")
	assert.Contains(t, res.ExtraDescription, "Charlie (2,980)")
	assert.NotContains(t, res.ExtraDescription, "Delta")

	assert.Equal(t, 4, strings.Count(res.BodyHTML, "<tr>")-1) // minus header row
	assert.Contains(t, res.BodyHTML, `<a href="/eu/Stormrage/Alpha">Alpha</a>`)
	assert.Contains(t, res.BodyHTML, "<td>3,000</td>")
	assert.Contains(t, res.BodyHTML, "<td>100-50</td>")

	require.NotNil(t, res.StructuredData)
	main, ok := res.StructuredData["mainEntity"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ItemList", main["@type"])
	items, ok := main["itemListElement"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, items, 4)
	person := items[0]["item"].(map[string]any)
	assert.Equal(t, "Alpha", person["name"])
	assert.Equal(t, "/eu/Stormrage/Alpha", person["url"])
}

func TestLadder_TruncatesToTwentyFive(t *testing.T) {
	res := Ladder(ladderPage(40), "eu", "3v3", "/eu/ladder/3v3")
	assert.Equal(t, 25, strings.Count(res.BodyHTML, "<tr>")-1)
}

func TestLadder_FallbackURLWhenUnresolvable(t *testing.T) {
	p := &upstream.LadderPage{Characters: []upstream.LadderEntry{
		{Name: "Ghost", Rating: 2500},
	}}
	res := Ladder(p, "eu", "3v3", "/eu/ladder/3v3")

	// no realm: plain text cell, structured data falls back to the page
	assert.NotContains(t, res.BodyHTML, "<a href")
	main := res.StructuredData["mainEntity"].(map[string]any)
	items := main["itemListElement"].([]map[string]any)
	person := items[0]["item"].(map[string]any)
	assert.Equal(t, "/eu/ladder/3v3", person["url"])
}

func TestLadder_MulticlassMode(t *testing.T) {
	p := &upstream.LadderPage{Multiclass: true, Characters: []upstream.LadderEntry{
		{Name: "Alpha", Realm: "Stormrage", Region: "eu", Class: "Mage", Score: 12345},
		{Name: "Bravo", Realm: "Silvermoon", Region: "eu", Class: "Druid", Score: 11000},
	}}
	res := Ladder(p, "eu", "shuffle-multiclass", "/eu/ladder/shuffle-multiclass")

	assert.Contains(t, res.BodyHTML, "<th>Class</th>")
	assert.Contains(t, res.BodyHTML, "<td>Mage</td>")
	assert.Contains(t, res.BodyHTML, "<td>12345</td>")
	assert.Empty(t, res.ExtraDescription)
	assert.Nil(t, res.StructuredData)
}

func TestLadder_Empty(t *testing.T) {
	assert.True(t, Ladder(nil, "eu", "3v3", "/x").Empty())
	assert.True(t, Ladder(&upstream.LadderPage{}, "eu", "3v3", "/x").Empty())
}
