// Package render mutates the SPA base template into a crawler-ready page.
//
// The base template is parsed once at construction and kept as an immutable
// string; every Render re-parses it into a fresh document so concurrent
// requests never share mutable DOM state. All head mutations are upserts
// keyed on the tag's identifying attribute, so rendering is idempotent on a
// given document.
package render

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	json "github.com/goccy/go-json"
)

// Description budgets per tag family.
const (
	DescriptionMax        = 165
	OGDescriptionMax      = 180
	TwitterDescriptionMax = 200
)

const (
	rootSelector = "#root"
	jsonldAttr   = "data-seo-jsonld"
)

// DefaultTemplate is the dev/test fallback shell used when no build
// artifact is on disk.
const DefaultTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>ArenaHub</title>
</head>
<body>
<div id="root"></div>
</body>
</html>
`

// Document is the full render input for one page.
type Document struct {
	Title          string
	Description    string
	Path           string
	OGImage        string
	OGType         string
	Robots         string
	Keywords       string
	Region         string
	Locale         string // hreflang code for Region, e.g. en-gb
	AltRegion      string
	AltLocale      string
	StructuredData map[string]any
	BodyHTML       string
}

type Renderer struct {
	baseURL  string
	siteName string
	template string
}

// New loads the first readable template path, falling back to the built-in
// shell. The chosen template must contain the root container.
func New(baseURL, siteName string, paths ...string) (*Renderer, error) {
	tpl := DefaultTemplate
	for _, p := range paths {
		if p == "" {
			continue
		}
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		tpl = string(b)
		break
	}
	return NewFromString(baseURL, siteName, tpl)
}

func NewFromString(baseURL, siteName, tpl string) (*Renderer, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(tpl))
	if err != nil {
		return nil, fmt.Errorf("parse base template: %w", err)
	}
	if doc.Find(rootSelector).Length() == 0 {
		return nil, fmt.Errorf("base template missing %s container", rootSelector)
	}
	return &Renderer{
		baseURL:  strings.TrimRight(baseURL, "/"),
		siteName: siteName,
		template: tpl,
	}, nil
}

// Base returns the unmodified template string, the last-resort response
// body when rendering itself fails.
func (r *Renderer) Base() string { return r.template }

// Render clones the base template and applies the document.
func (r *Renderer) Render(d Document) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(r.template))
	if err != nil {
		return "", fmt.Errorf("clone template: %w", err)
	}

	if d.BodyHTML != "" {
		doc.Find(rootSelector).SetHtml(d.BodyHTML)
	}

	setTitle(doc, d.Title)

	canonical := r.baseURL + d.Path
	robots := d.Robots
	if robots == "" {
		robots = "index, follow"
	}
	ogType := d.OGType
	if ogType == "" {
		ogType = "website"
	}

	UpsertMeta(doc, "name", "description", Truncate(d.Description, DescriptionMax))
	if d.Keywords != "" {
		UpsertMeta(doc, "name", "keywords", d.Keywords)
	}
	UpsertMeta(doc, "property", "og:title", d.Title)
	UpsertMeta(doc, "property", "og:description", Truncate(d.Description, OGDescriptionMax))
	UpsertMeta(doc, "property", "og:type", ogType)
	UpsertMeta(doc, "property", "og:url", canonical)
	UpsertMeta(doc, "property", "og:image", d.OGImage)
	UpsertMeta(doc, "property", "og:site_name", r.siteName)
	UpsertMeta(doc, "name", "twitter:card", "summary")
	UpsertMeta(doc, "name", "twitter:title", d.Title)
	UpsertMeta(doc, "name", "twitter:description", Truncate(d.Description, TwitterDescriptionMax))
	UpsertMeta(doc, "name", "twitter:image", d.OGImage)
	UpsertMeta(doc, "name", "robots", robots)
	upsertLink(doc, "canonical", "", canonical)

	if d.Region != "" && d.Locale != "" {
		upsertHreflang(doc, d.Locale, canonical)
		if d.AltRegion != "" && d.AltLocale != "" {
			// literal segment swap; paths are expected to carry the region
			// as /{region}/ (see classifier). A path without that form
			// keeps its original URL here.
			altPath := strings.Replace(d.Path, "/"+d.Region+"/", "/"+d.AltRegion+"/", 1)
			upsertHreflang(doc, d.AltLocale, r.baseURL+altPath)
		}
		upsertHreflang(doc, "x-default", r.baseURL+"/")
	}

	r.injectJSONLD(doc, d)

	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("serialize document: %w", err)
	}
	return out, nil
}

func setTitle(doc *goquery.Document, title string) {
	if title == "" {
		return
	}
	sel := doc.Find("head title")
	if sel.Length() == 0 {
		doc.Find("head").AppendHtml("<title>" + html.EscapeString(title) + "</title>")
		return
	}
	sel.First().SetText(title)
}

// UpsertMeta updates the meta tag matching attr=key in place, creating it
// when absent. Repeated calls never duplicate the tag.
func UpsertMeta(doc *goquery.Document, attr, key, content string) {
	if content == "" {
		return
	}
	sel := doc.Find(fmt.Sprintf(`head meta[%s=%q]`, attr, key))
	if sel.Length() > 0 {
		sel.SetAttr("content", content)
		return
	}
	doc.Find("head").AppendHtml(
		`<meta ` + attr + `="` + html.EscapeString(key) + `" content="` + html.EscapeString(content) + `"/>`)
}

func upsertLink(doc *goquery.Document, rel, hreflang, href string) {
	sel := doc.Find(fmt.Sprintf(`head link[rel=%q]`, rel))
	if hreflang != "" {
		sel = doc.Find(fmt.Sprintf(`head link[rel=%q][hreflang=%q]`, rel, hreflang))
	}
	if sel.Length() > 0 {
		sel.SetAttr("href", href)
		return
	}
	attrs := `rel="` + rel + `"`
	if hreflang != "" {
		attrs += ` hreflang="` + html.EscapeString(hreflang) + `"`
	}
	doc.Find("head").AppendHtml(`<link ` + attrs + ` href="` + html.EscapeString(href) + `"/>`)
}

func upsertHreflang(doc *goquery.Document, hreflang, href string) {
	upsertLink(doc, "alternate", hreflang, href)
}

// injectJSONLD swaps the page-specific JSON-LD script and, on the root path
// or when no page data exists, adds the fixed Organization and WebSite
// schemas.
func (r *Renderer) injectJSONLD(doc *goquery.Document, d Document) {
	doc.Find(fmt.Sprintf("script[%s]", jsonldAttr)).Remove()

	if len(d.StructuredData) > 0 {
		appendJSONLD(doc, "page", d.StructuredData)
	}

	if d.Path == "/" || len(d.StructuredData) == 0 {
		appendJSONLD(doc, "org", map[string]any{
			"@context": "https://schema.org",
			"@type":    "Organization",
			"name":     r.siteName,
			"url":      r.baseURL,
		})
		appendJSONLD(doc, "website", map[string]any{
			"@context": "https://schema.org",
			"@type":    "WebSite",
			"name":     r.siteName,
			"url":      r.baseURL,
			"potentialAction": map[string]any{
				"@type":       "SearchAction",
				"target":      r.baseURL + "/search?q={search_term_string}",
				"query-input": "required name=search_term_string",
			},
		})
	}
}

func appendJSONLD(doc *goquery.Document, marker string, data map[string]any) {
	b, err := json.Marshal(data)
	if err != nil {
		return
	}
	// "</" must not appear inside an inline script body
	payload := strings.ReplaceAll(string(b), "</", `<\/`)
	doc.Find("head").AppendHtml(
		`<script type="application/ld+json" ` + jsonldAttr + `="` + marker + `">` + payload + `</script>`)
}

// Truncate cuts s to at most max characters including a trailing ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
