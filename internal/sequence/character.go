package sequence

import (
	"math"
	"strings"

	"github.com/verte-zerg/pwseq/internal/random"
)

// CharacterItem emits a block of characters drawn from its effective pool.
type CharacterItem struct {
	Probability    Probability
	Length         int
	LengthStrength Strength
	AllowDuplicate bool
	Characters     CharacterList
}

// NewCharacterItem returns an item with the default settings: five
// characters, always included, full length, duplicates allowed and no own
// characters.
func NewCharacterItem() *CharacterItem {
	return &CharacterItem{
		Probability:    Always,
		Length:         5,
		LengthStrength: StrengthFull,
		AllowDuplicate: true,
	}
}

// Kind implements Item.
func (c *CharacterItem) Kind() ItemKind {
	return KindCharacters
}

// Inclusion implements Item.
func (c *CharacterItem) Inclusion() Probability {
	return c.Probability
}

// Advanced implements Item.
func (c *CharacterItem) Advanced() bool {
	return c.Probability != Always || c.LengthStrength != StrengthFull
}

// Validate implements Item.
func (c *CharacterItem) Validate() error {
	if c.Length < 0 {
		return &ConfigError{Field: "length", Reason: "must not be negative"}
	}
	if !c.Probability.Valid() {
		return &ConfigError{Field: "probability", Reason: "unknown tier " + c.Probability.String()}
	}
	if !c.LengthStrength.Valid() {
		return &ConfigError{Field: "length-strength", Reason: "unknown tier " + c.LengthStrength.String()}
	}
	return nil
}

// Pool returns the effective characters for this item under cfg.
func (c *CharacterItem) Pool(cfg *Configuration) CharacterSet {
	if c.Characters.Override || cfg == nil {
		return c.Characters.Set
	}
	return c.Characters.Set.Union(cfg.DefaultCharacters)
}

// Entropy implements Item. Own and default pools add their bits
// independently instead of using the merged pool size; probability and
// length strength are not considered.
func (c *CharacterItem) Entropy(cfg *Configuration) float64 {
	if c.Length <= 0 {
		return 0
	}
	bits := 0.0
	if n := c.Characters.Len(); n > 0 {
		bits += math.Log2(float64(n))
	}
	if cfg != nil && !c.Characters.Override {
		if n := cfg.DefaultCharacters.Len(); n > 0 {
			bits += math.Log2(float64(n))
		}
	}
	return bits * float64(c.Length)
}

// Generate implements Item.
func (c *CharacterItem) Generate(src random.Source, cfg *Configuration) (string, error) {
	if c.Length <= 0 {
		return "", nil
	}
	pool := c.Pool(cfg).Runes()
	if len(pool) == 0 {
		return "", &PoolError{Required: c.Length, Available: 0}
	}

	length := c.Length
	if c.LengthStrength != StrengthFull {
		n, err := src.InRange(c.LengthStrength.MinLength(c.Length), c.Length)
		if err != nil {
			return "", err
		}
		length = n
	}
	if !c.AllowDuplicate && length > len(pool) {
		return "", &PoolError{Required: length, Available: len(pool)}
	}

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		idx, err := src.InRange(0, len(pool)-1)
		if err != nil {
			return "", err
		}
		b.WriteRune(pool[idx])
		if !c.AllowDuplicate {
			pool = append(pool[:idx], pool[idx+1:]...)
		}
	}
	return b.String(), nil
}
