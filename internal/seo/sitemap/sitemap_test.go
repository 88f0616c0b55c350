package sitemap

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"
)

func build(t *testing.T) []URL {
	t.Helper()
	b, err := Build("https://arenahub.gg", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.HasPrefix(string(b), `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Fatalf("missing xml declaration: %q", string(b)[:50])
	}
	var set struct {
		URLs []URL `xml:"url"`
	}
	if err := xml.Unmarshal(b, &set); err != nil {
		t.Fatalf("sitemap not well-formed: %v", err)
	}
	return set.URLs
}

func TestBuild_Counts(t *testing.T) {
	urls := build(t)

	// 3 static + 2x(cutoffs+meta+2 landings) + 2 regions x 2 activities x 6 brackets
	if len(urls) != 35 {
		t.Fatalf("got %d urls, want 35", len(urls))
	}

	var bracketLevel, regionLevel int
	for _, u := range urls {
		path := strings.TrimPrefix(u.Loc, "https://arenahub.gg")
		segs := strings.Count(path, "/")
		switch segs {
		case 3:
			bracketLevel++
		case 2:
			regionLevel++
		}
	}
	if bracketLevel != 24 {
		t.Fatalf("got %d bracket-level urls, want 24", bracketLevel)
	}
	if regionLevel != 8 {
		t.Fatalf("got %d region-level urls, want 8", regionLevel)
	}
}

func TestBuild_Priorities(t *testing.T) {
	urls := build(t)

	for _, u := range urls {
		switch {
		case strings.HasSuffix(u.Loc, "arenahub.gg/"):
			if u.Priority != "1.0" {
				t.Fatalf("root priority %s, want 1.0", u.Priority)
			}
			if u.ChangeFreq != "hourly" {
				t.Fatalf("root changefreq %s, want hourly", u.ChangeFreq)
			}
		case strings.HasSuffix(u.Loc, "/shuffle"):
			if u.Priority != "0.9" {
				t.Fatalf("%s priority %s, want 0.9", u.Loc, u.Priority)
			}
		case strings.HasSuffix(u.Loc, "/shuffle-multiclass"), strings.HasSuffix(u.Loc, "/2v2"),
			strings.HasSuffix(u.Loc, "/3v3"), strings.HasSuffix(u.Loc, "/rbg"),
			strings.HasSuffix(u.Loc, "/blitz"):
			if u.Priority != "0.8" {
				t.Fatalf("%s priority %s, want 0.8", u.Loc, u.Priority)
			}
		}
	}
}

func TestBuild_LastMod(t *testing.T) {
	urls := build(t)
	for _, u := range urls {
		if u.LastMod != "2025-06-01" {
			t.Fatalf("lastmod %s, want 2025-06-01", u.LastMod)
		}
	}
}
