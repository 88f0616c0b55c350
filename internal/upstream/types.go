package upstream

import (
	"strings"

	json "github.com/goccy/go-json"
)

// The upstream API grew organically and the same field shows up under
// different names per endpoint (top-level vs nested under "character",
// snake_case vs camelCase). All of that is resolved here, once, at decode
// time; everything past this package sees one well-defined struct per
// resource with absent fields left at zero values.

type BracketStanding struct {
	Slug   string
	Label  string
	Rating int
	Rank   int
	Won    int
	Lost   int
}

type Profile struct {
	Name          string
	Realm         string
	Region        string
	Class         string
	Spec          string
	Race          string
	Gender        string
	Faction       string
	Level         int
	ItemLevel     float64
	PvPTalents    []string
	AvatarURL     string
	LastUpdatedMs int64
	Brackets      []BracketStanding
}

type LadderEntry struct {
	Name   string
	Realm  string
	Region string
	Class  string
	Rating int
	Won    int
	Lost   int
	Score  float64
}

type LadderPage struct {
	Characters []LadderEntry
	Multiclass bool
}

type Cutoffs struct {
	// Rewards maps "BRACKET/TITLE" to the cutoff rating.
	Rewards     map[string]float64
	Season      string
	TimestampMs int64
	Predictions map[string]float64
	SpotCounts  map[string]int
}

type ActivityStats struct {
	Cutoffs Cutoffs
}

type SpecMeta struct {
	Name     string
	Class    string
	WinRate  float64 // fraction, 0 when unknown
	Presence float64 // fraction, 0 when unknown
}

type MetaStats struct {
	Specs []SpecMeta
}

// raw shapes

type rawBracket struct {
	Bracket     string   `json:"bracket"`
	BracketType string   `json:"bracket_type"`
	Rating      *int     `json:"rating"`
	Rank        int      `json:"rank"`
	Position    int      `json:"position"`
	Won         int      `json:"won"`
	Lost        int      `json:"lost"`
	SeasonStats *rawWins `json:"season,omitempty"`
}

type rawWins struct {
	Won  int `json:"won"`
	Lost int `json:"lost"`
}

type rawProfile struct {
	Name              string            `json:"name"`
	Realm             string            `json:"realm"`
	Region            string            `json:"region"`
	Class             string            `json:"class"`
	ActiveSpec        string            `json:"activeSpec"`
	Spec              string            `json:"spec"`
	Race              string            `json:"race"`
	Gender            string            `json:"gender"`
	Faction           string            `json:"faction"`
	Level             int               `json:"level"`
	ItemLevel         float64           `json:"itemLevel"`
	EquippedItemLevel float64           `json:"equipped_item_level"`
	TalentNames       []string          `json:"pvpTalents"`
	Media             map[string]string `json:"media"`
	LastUpdatedUTCms  int64             `json:"lastUpdatedUTCms"`
	Brackets          []rawBracket      `json:"brackets"`
}

func decodeProfile(b []byte, bracketLabel func(string) string) (*Profile, error) {
	var raw rawProfile
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	p := &Profile{
		Name:          raw.Name,
		Realm:         raw.Realm,
		Region:        raw.Region,
		Class:         raw.Class,
		Spec:          firstNonEmpty(raw.ActiveSpec, raw.Spec),
		Race:          raw.Race,
		Gender:        raw.Gender,
		Faction:       raw.Faction,
		Level:         raw.Level,
		ItemLevel:     raw.ItemLevel,
		PvPTalents:    raw.TalentNames,
		LastUpdatedMs: raw.LastUpdatedUTCms,
	}
	if p.ItemLevel == 0 {
		p.ItemLevel = raw.EquippedItemLevel
	}
	if raw.Media != nil {
		p.AvatarURL = firstNonEmpty(raw.Media["avatar"], raw.Media["main-raw"])
	}
	for _, rb := range raw.Brackets {
		if rb.Rating == nil {
			// ratingless rows are placeholders the site never shows
			continue
		}
		slug := firstNonEmpty(rb.BracketType, rb.Bracket)
		bs := BracketStanding{
			Slug:   slug,
			Label:  bracketLabel(slug),
			Rating: *rb.Rating,
			Rank:   firstNonZero(rb.Rank, rb.Position),
			Won:    rb.Won,
			Lost:   rb.Lost,
		}
		if rb.SeasonStats != nil && bs.Won == 0 && bs.Lost == 0 {
			bs.Won, bs.Lost = rb.SeasonStats.Won, rb.SeasonStats.Lost
		}
		p.Brackets = append(p.Brackets, bs)
	}
	return p, nil
}

type rawLadderEntry struct {
	Name      string          `json:"name"`
	Realm     string          `json:"realm"`
	Region    string          `json:"region"`
	Class     string          `json:"class"`
	Rating    int             `json:"rating"`
	Won       int             `json:"won"`
	Lost      int             `json:"lost"`
	Wins      int             `json:"wins"`
	Losses    int             `json:"losses"`
	Score     float64         `json:"score"`
	Total     float64         `json:"total_score"`
	Character *rawLadderEntry `json:"character"`
}

func (r *rawLadderEntry) normalize() LadderEntry {
	src := r
	if r.Character != nil {
		// nested form carries identity under "character", stats at top level
		src = r.Character
	}
	e := LadderEntry{
		Name:   src.Name,
		Realm:  src.Realm,
		Region: src.Region,
		Class:  firstNonEmpty(src.Class, r.Class),
		Rating: firstNonZero(r.Rating, src.Rating),
		Won:    firstNonZero(r.Won, r.Wins, src.Won, src.Wins),
		Lost:   firstNonZero(r.Lost, r.Losses, src.Lost, src.Losses),
		Score:  r.Score,
	}
	if e.Score == 0 {
		e.Score = r.Total
	}
	return e
}

func decodeLadder(b []byte) (*LadderPage, error) {
	var raw struct {
		Characters []*rawLadderEntry `json:"characters"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	return wrapLadder(raw.Characters, false), nil
}

func decodeMulticlassers(b []byte) (*LadderPage, error) {
	var raw []*rawLadderEntry
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	return wrapLadder(raw, true), nil
}

func wrapLadder(raw []*rawLadderEntry, multiclass bool) *LadderPage {
	page := &LadderPage{Multiclass: multiclass}
	for _, r := range raw {
		if r == nil {
			continue
		}
		page.Characters = append(page.Characters, r.normalize())
	}
	return page
}

func decodeActivityStats(b []byte) (*ActivityStats, error) {
	var raw struct {
		Cutoffs struct {
			Rewards     map[string]float64 `json:"rewards"`
			Season      string             `json:"season"`
			Timestamp   int64              `json:"timestamp"`
			Predictions map[string]float64 `json:"predictions"`
			SpotCounts  map[string]int     `json:"spotCounts"`
		} `json:"cutoffs"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	return &ActivityStats{Cutoffs: Cutoffs{
		Rewards:     raw.Cutoffs.Rewards,
		Season:      raw.Cutoffs.Season,
		TimestampMs: raw.Cutoffs.Timestamp,
		Predictions: raw.Cutoffs.Predictions,
		SpotCounts:  raw.Cutoffs.SpotCounts,
	}}, nil
}

func decodeMetaStats(b []byte) (*MetaStats, error) {
	var raw struct {
		Specs []map[string]any `json:"specs"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	out := &MetaStats{}
	for _, s := range raw.Specs {
		sm := SpecMeta{
			Name:     firstNonEmpty(str(s["spec_name"]), str(s["specName"]), str(s["name"])),
			Class:    firstNonEmpty(str(s["class_name"]), str(s["className"]), str(s["class"])),
			WinRate:  num(s["0.850_win_rate"]),
			Presence: num(s["0.850_presence"]),
		}
		out.Specs = append(out.Specs, sm)
	}
	return out, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstNonZero(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	}
	return 0
}
