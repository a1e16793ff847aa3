package sequence

import (
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/pwseq/internal/random"
)

// WordItem emits one word picked from a dictionary.
type WordItem struct {
	Probability Probability
	// Wordlist names the dictionary; it is what profiles persist.
	Wordlist string
	// Capitalize is the chance the word's first letter is upper-cased.
	Capitalize Probability
	// Words is the resolved dictionary.
	Words Dictionary
}

// NewWordItem returns an always-included, uncapitalised word item.
func NewWordItem(wordlist string, words Dictionary) *WordItem {
	return &WordItem{
		Probability: Always,
		Wordlist:    wordlist,
		Capitalize:  Never,
		Words:       words,
	}
}

// Kind implements Item.
func (w *WordItem) Kind() ItemKind {
	return KindWord
}

// Inclusion implements Item.
func (w *WordItem) Inclusion() Probability {
	return w.Probability
}

// Advanced implements Item.
func (w *WordItem) Advanced() bool {
	return w.Probability != Always
}

// Validate implements Item.
func (w *WordItem) Validate() error {
	if !w.Probability.Valid() {
		return &ConfigError{Field: "probability", Reason: "unknown tier " + w.Probability.String()}
	}
	if !w.Capitalize.Valid() {
		return &ConfigError{Field: "capitalize", Reason: "unknown tier " + w.Capitalize.String()}
	}
	return nil
}

// Entropy implements Item: log2 of the dictionary size.
func (w *WordItem) Entropy(*Configuration) float64 {
	if w.Words == nil {
		return 0
	}
	n := w.Words.WordCount()
	if n <= 0 {
		return 0
	}
	return math.Log2(float64(n))
}

// Generate implements Item.
func (w *WordItem) Generate(src random.Source, _ *Configuration) (string, error) {
	if w.Words == nil || w.Words.WordCount() == 0 {
		return "", &ConfigError{Field: "wordlist", Reason: "no words available for " + quoteName(w.Wordlist)}
	}
	word, err := w.Words.PickWord(src)
	if err != nil {
		return "", err
	}
	upper, err := src.Chance(w.Capitalize.Percent())
	if err != nil {
		return "", err
	}
	if upper {
		word = capitalizeFirst(word)
	}
	return word, nil
}

func capitalizeFirst(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}

func quoteName(name string) string {
	if name == "" {
		return "unnamed word list"
	}
	return "\"" + name + "\""
}
