// Package sequence builds structured passwords from an ordered list of items
// and estimates their entropy.
package sequence

import "github.com/verte-zerg/pwseq/internal/random"

// ItemKind names a sequence item variant.
type ItemKind string

const (
	KindCharacters ItemKind = "characters"
	KindWord       ItemKind = "word"
)

// Item is one unit of a sequence. New variants implement it without any
// change to the sequence generator.
type Item interface {
	Kind() ItemKind
	// Inclusion is the chance the item appears in a generated password.
	Inclusion() Probability
	// Entropy estimates the item's bits assuming it is always included at
	// its full length.
	Entropy(cfg *Configuration) float64
	// Generate produces the item's text. The inclusion draw has already
	// been made by the caller.
	Generate(src random.Source, cfg *Configuration) (string, error)
	// Advanced reports whether the item can produce output weaker than
	// its entropy estimate.
	Advanced() bool
	Validate() error
}

// Dictionary is a word source for word items.
type Dictionary interface {
	WordCount() int
	PickWord(src random.Source) (string, error)
}
