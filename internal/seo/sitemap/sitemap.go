// Package sitemap emits the static route sitemap. The route table is a
// cartesian product of known enumerations, so the document is rebuilt per
// request rather than cached.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/arenahub/prerender/internal/game"
)

type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// Build renders the full sitemap for the static route table. lastmod is the
// build date; per-URL freshness is not tracked.
func Build(baseURL string, now time.Time) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")
	mod := now.UTC().Format("2006-01-02")

	add := func(set *urlset, path, freq, prio string) {
		set.URLs = append(set.URLs, URL{
			Loc:        base + path,
			LastMod:    mod,
			ChangeFreq: freq,
			Priority:   prio,
		})
	}

	set := &urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	add(set, "/", "hourly", "1.0")
	add(set, "/cutoffs", "daily", "0.7")
	add(set, "/meta", "daily", "0.7")

	for _, region := range game.Regions {
		add(set, "/"+region+"/cutoffs", "daily", "0.7")
		add(set, "/"+region+"/meta", "daily", "0.7")
		for _, activity := range game.Activities {
			add(set, "/"+region+"/"+activity, "daily", "0.7")
		}
		for _, activity := range game.Activities {
			for _, bracket := range game.Brackets {
				prio := "0.8"
				if bracket == "shuffle" {
					prio = "0.9"
				}
				add(set, "/"+region+"/"+activity+"/"+bracket, "hourly", prio)
			}
		}
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
