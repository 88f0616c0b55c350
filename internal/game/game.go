// Package game holds the static PvP enumerations the classifier, sitemap
// and page builders share: regions, view activities, brackets and their
// display labels.
package game

import "strings"

const (
	SiteName = "ArenaHub"
	Season   = "TWW Season 3"
)

const (
	RegionUS = "us"
	RegionEU = "eu"
)

// Regions in sitemap/hreflang order.
var Regions = []string{RegionUS, RegionEU}

// Activities are the two list view modes.
var Activities = []string{"ladder", "activity"}

// Brackets in sitemap order.
var Brackets = []string{"2v2", "3v3", "rbg", "shuffle", "shuffle-multiclass", "blitz"}

// BracketMulticlass is the special ladder backed by the multiclasser feed.
const BracketMulticlass = "shuffle-multiclass"

var bracketLabels = map[string]string{
	"2v2":                "2v2 Arena",
	"3v3":                "3v3 Arena",
	"rbg":                "Rated Battlegrounds",
	"shuffle":            "Solo Shuffle",
	"shuffle-multiclass": "Solo Shuffle Multiclass",
	"blitz":              "Battleground Blitz",
}

var activityLabels = map[string]string{
	"ladder":   "Leaderboard",
	"activity": "Activity",
}

// Locales used for hreflang annotations and upstream routing.
var regionLocales = map[string]string{
	RegionUS: "en-us",
	RegionEU: "en-gb",
}

func IsRegion(s string) bool {
	_, ok := regionLocales[strings.ToLower(s)]
	return ok
}

func IsActivity(s string) bool {
	_, ok := activityLabels[strings.ToLower(s)]
	return ok
}

func IsBracket(s string) bool {
	_, ok := bracketLabels[strings.ToLower(s)]
	return ok
}

// BracketLabel returns the display label, falling back to the raw slug.
func BracketLabel(b string) string {
	if l, ok := bracketLabels[strings.ToLower(b)]; ok {
		return l
	}
	return b
}

func ActivityLabel(a string) string {
	if l, ok := activityLabels[strings.ToLower(a)]; ok {
		return l
	}
	return a
}

// Locale maps a region to its site locale; unknown regions pass through,
// matching the upstream API's own fallback.
func Locale(region string) string {
	if l, ok := regionLocales[strings.ToLower(region)]; ok {
		return l
	}
	return region
}

// OppositeRegion returns the other supported region, used to emit the
// alternate hreflang link. Unknown input returns "".
func OppositeRegion(region string) string {
	switch strings.ToLower(region) {
	case RegionUS:
		return RegionEU
	case RegionEU:
		return RegionUS
	}
	return ""
}
