// Package summarize turns normalized upstream payloads into the enrichment
// pieces a page can carry: a sentence for the meta description, an HTML
// fragment for the first paint, and partial JSON-LD structured data.
// Everything here is pure; I/O stays in upstream and caching in cache.
package summarize

// Result is one summarizer's output. All fields are optional; the zero
// value means "no enrichment" and pages fall back to their static defaults.
type Result struct {
	BodyHTML         string
	ExtraDescription string
	StructuredData   map[string]any
	OGImage          string
}

func (r Result) Empty() bool {
	return r.BodyHTML == "" && r.ExtraDescription == "" && len(r.StructuredData) == 0 && r.OGImage == ""
}
