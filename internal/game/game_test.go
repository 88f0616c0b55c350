package game

import "testing"

func TestLocaleMapping(t *testing.T) {
	if Locale("us") != "en-us" {
		t.Fatalf("us locale %s", Locale("us"))
	}
	if Locale("EU") != "en-gb" {
		t.Fatalf("eu locale %s", Locale("EU"))
	}
	// unknown regions pass through unchanged
	if Locale("kr") != "kr" {
		t.Fatalf("kr locale %s", Locale("kr"))
	}
}

func TestOppositeRegion(t *testing.T) {
	if OppositeRegion("us") != "eu" || OppositeRegion("eu") != "us" {
		t.Fatal("opposite region mapping broken")
	}
	if OppositeRegion("kr") != "" {
		t.Fatal("unknown region must have no opposite")
	}
}

func TestBracketValidation(t *testing.T) {
	for _, b := range Brackets {
		if !IsBracket(b) {
			t.Fatalf("%s must validate", b)
		}
	}
	if IsBracket("5v5") {
		t.Fatal("5v5 is not a bracket")
	}
	if BracketLabel("shuffle") != "Solo Shuffle" {
		t.Fatalf("label %s", BracketLabel("shuffle"))
	}
	if BracketLabel("unknown") != "unknown" {
		t.Fatal("unknown bracket must fall back to the slug")
	}
}
