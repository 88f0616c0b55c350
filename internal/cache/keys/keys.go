// Package keys builds deterministic cache keys for enrichment lookups.
//
// Realm and character names are user-controlled and frequently non-ASCII.
// Keys keep a readable sanitized form for logs plus an xxhash suffix of the
// raw input so two names that sanitize identically never share an entry.
package keys

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

func Player(region, realm, name string) string {
	raw := strings.ToLower(realm) + "/" + strings.ToLower(name)
	safe := sanitize(raw)
	const maxLen = 96
	if len(safe) > maxLen {
		safe = safe[:maxLen]
	}
	return fmt.Sprintf("player:%s:%s:h=%016x", sanitize(strings.ToLower(region)), safe, xxhash.Sum64String(raw))
}

func Ladder(region, activity, bracket string) string {
	return fmt.Sprintf("ladder:%s:%s:%s",
		sanitize(strings.ToLower(region)),
		sanitize(strings.ToLower(activity)),
		sanitize(strings.ToLower(bracket)))
}

func Cutoffs(region string) string {
	return "cutoffs:" + sanitize(strings.ToLower(region))
}

func Meta(region string) string {
	return "meta:" + sanitize(strings.ToLower(region))
}

func sanitize(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))

	var prev rune
	for _, r := range s {
		out := rune(0)
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
			out = '_'
		case isAlphaNum(r) || r == '_' || r == '-' || r == '/':
			out = r
		default:
			// Any other rune (including non-ASCII) becomes '-'
			out = '-'
		}
		if (out == '_' || out == '-') && out == prev {
			continue
		}
		b.WriteRune(out)
		prev = out
	}
	return b.String()
}

func isAlphaNum(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		unicode.IsDigit(r)
}
