package keys

import (
	"regexp"
	"strings"
	"testing"
	"unicode"
)

func TestPlayer_Deterministic(t *testing.T) {
	k1 := Player("eu", "Stormrage", "Arthas")
	k2 := Player("EU", "stormrage", "ARTHAS")
	if k1 != k2 {
		t.Fatalf("case variants differ:\n k1=%s\n k2=%s", k1, k2)
	}
}

func TestPlayer_UnicodeNamesStayASCIIAndDistinct(t *testing.T) {
	k1 := Player("eu", "Ravencrest", "Örn")
	k2 := Player("eu", "Ravencrest", "Õrn")

	for _, r := range k1 {
		if r > unicode.MaxASCII {
			t.Fatalf("non-ASCII rune leaked into key: %q in %s", r, k1)
		}
	}
	if k1 == k2 {
		t.Fatal("distinct unicode names must not collide")
	}
	if !regexp.MustCompile(`:h=[0-9a-f]{16}$`).MatchString(k1) {
		t.Fatalf("missing hash suffix: %s", k1)
	}
}

func TestKeyPrefixes(t *testing.T) {
	cases := []struct {
		key    string
		prefix string
	}{
		{Ladder("us", "ladder", "shuffle"), "ladder:us:ladder:shuffle"},
		{Cutoffs("eu"), "cutoffs:eu"},
		{Meta("us"), "meta:us"},
	}
	for _, c := range cases {
		if !strings.HasPrefix(c.key, c.prefix) {
			t.Fatalf("key %s missing prefix %s", c.key, c.prefix)
		}
	}
}
