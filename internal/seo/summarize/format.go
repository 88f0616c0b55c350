package summarize

import (
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatInt groups with thousands separators: 2412 -> "2,412".
func FormatInt(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatPercent renders a fraction as a percentage with one decimal.
// Zero means "not reported" for every stat we show, so it renders as "-"
// rather than a misleading "0.0%".
func FormatPercent(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", v*100)
}

// TitleCase uppercases the first rune of each space-separated word. Names
// off the URL path are frequently non-ASCII, so this must not slice bytes.
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// esc is the single escaping point for untrusted text (character and realm
// names come straight from upstream) before it lands in markup.
func esc(s string) string {
	return html.EscapeString(s)
}

// escAttr escapes a value destined for an attribute.
func escAttr(s string) string {
	return html.EscapeString(s)
}

// ProfilePath builds the canonical profile path for a ladder entry.
// Returns "" when the entry cannot be resolved to a profile page.
func ProfilePath(region, realm, name string) string {
	if region == "" || realm == "" || name == "" {
		return ""
	}
	return "/" + url.PathEscape(strings.ToLower(region)) +
		"/" + url.PathEscape(realm) +
		"/" + url.PathEscape(name)
}
