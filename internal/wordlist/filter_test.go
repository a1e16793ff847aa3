package wordlist

import "testing"

func TestFilterEnglishASCII(t *testing.T) {
	filter := FilterForLang("en")
	for _, word := range []string{"hello", "Paris"} {
		if !filter(word) {
			t.Fatalf("expected %q to pass english filter", word)
		}
	}
	for _, word := range []string{"résumé", "naïve", "don’t", "co-op", ""} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestFilterOtherLanguagesKeepsNonEmpty(t *testing.T) {
	filter := FilterForLang("fr")
	if !filter("résumé") {
		t.Fatalf("expected accented word to pass")
	}
	if filter("  ") {
		t.Fatalf("expected blank word to be rejected")
	}
}
