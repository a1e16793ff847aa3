package sequence

import "fmt"

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
)

// Configuration is a named password layout: a default character pool and
// the ordered items drawn from it. It is never mutated by generation or
// entropy estimation.
type Configuration struct {
	Name              string
	DefaultCharacters CharacterSet
	Sequence          []Item
}

// Default returns the configuration used when no profile exists.
func Default() *Configuration {
	digitsOnly := NewCharacterItem()
	digitsOnly.Length = 2
	digitsOnly.Characters = NewCharacterList(digits, true)
	return &Configuration{
		Name:              "default",
		DefaultCharacters: NewCharacterSet(lowerLetters + upperLetters + digits),
		Sequence:          []Item{NewCharacterItem(), digitsOnly, NewCharacterItem()},
	}
}

// Validate checks every item and reports the first malformed one.
func (c *Configuration) Validate() error {
	if c == nil {
		return nil
	}
	for i, item := range c.Sequence {
		if item == nil {
			return fmt.Errorf("sequence item %d: %w", i, &ConfigError{Field: "item", Reason: "missing"})
		}
		if err := item.Validate(); err != nil {
			return fmt.Errorf("sequence item %d (%s): %w", i, item.Kind(), err)
		}
	}
	return nil
}
