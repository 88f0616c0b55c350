// Package classify maps request path segments onto a page intent.
package classify

import (
	"strings"

	"github.com/arenahub/prerender/internal/game"
)

type Kind int

const (
	GenericLanding Kind = iota
	CharacterProfile
	ActivityOrLadder
	CutoffsPage
	MetaPage
)

func (k Kind) String() string {
	switch k {
	case CharacterProfile:
		return "character"
	case ActivityOrLadder:
		return "ladder"
	case CutoffsPage:
		return "cutoffs"
	case MetaPage:
		return "meta"
	}
	return "landing"
}

// Intent is the tagged result of classification. Only the fields relevant to
// Kind are set; Bracket may be empty on an ActivityOrLadder landing.
type Intent struct {
	Kind     Kind
	Region   string
	Realm    string
	Name     string
	Activity string
	Bracket  string
}

// Classify decides the page intent for 0-3 non-empty path segments.
//
// A 3-segment path is a leaderboard only when region, activity and bracket
// all validate; anything else is a character profile, keeping the region
// best-effort (realm/name pairs exist under typo'd regions and the profile
// page still renders). 2-segment paths require a valid region and fall
// through to the generic landing otherwise.
func Classify(segments []string) Intent {
	segs := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			segs = append(segs, s)
		}
	}

	switch len(segs) {
	case 3:
		if game.IsRegion(segs[0]) && game.IsActivity(segs[1]) && game.IsBracket(segs[2]) {
			return Intent{Kind: ActivityOrLadder, Region: segs[0], Activity: segs[1], Bracket: segs[2]}
		}
		return Intent{Kind: CharacterProfile, Region: segs[0], Realm: segs[1], Name: segs[2]}
	case 2:
		if !game.IsRegion(segs[0]) {
			return Intent{Kind: GenericLanding}
		}
		switch {
		case game.IsActivity(segs[1]):
			return Intent{Kind: ActivityOrLadder, Region: segs[0], Activity: segs[1]}
		case segs[1] == "cutoffs":
			return Intent{Kind: CutoffsPage, Region: segs[0]}
		case segs[1] == "meta":
			return Intent{Kind: MetaPage, Region: segs[0]}
		}
		return Intent{Kind: GenericLanding}
	case 1:
		switch segs[0] {
		case "cutoffs":
			return Intent{Kind: CutoffsPage}
		case "meta":
			return Intent{Kind: MetaPage}
		}
		return Intent{Kind: GenericLanding}
	}
	return Intent{Kind: GenericLanding}
}

// Segments splits a request path into its non-empty components.
func Segments(path string) []string {
	var out []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
