package sequence

import (
	"fmt"
	"strings"
)

// Probability is the chance an item is included in a generated password.
// Tiers are ordered; the underlying value is the inclusion percentage and
// is part of the generated distribution, so it must stay stable:
//
//	Never 0, VeryLow 10, Low 25, Medium 50, High 75, VeryHigh 90, Always 100
type Probability int

const (
	Never    Probability = 0
	VeryLow  Probability = 10
	Low      Probability = 25
	Medium   Probability = 50
	High     Probability = 75
	VeryHigh Probability = 90
	Always   Probability = 100
)

var probabilityNames = []struct {
	tier Probability
	name string
}{
	{Never, "never"},
	{VeryLow, "very-low"},
	{Low, "low"},
	{Medium, "medium"},
	{High, "high"},
	{VeryHigh, "very-high"},
	{Always, "always"},
}

// Percent returns the inclusion percentage for the tier.
func (p Probability) Percent() int {
	return int(p)
}

// Valid reports whether p is one of the named tiers.
func (p Probability) Valid() bool {
	for _, entry := range probabilityNames {
		if entry.tier == p {
			return true
		}
	}
	return false
}

func (p Probability) String() string {
	for _, entry := range probabilityNames {
		if entry.tier == p {
			return entry.name
		}
	}
	return fmt.Sprintf("probability(%d)", int(p))
}

// ParseProbability parses a tier name such as "very-high", "veryhigh" or "VeryHigh".
func ParseProbability(value string) (Probability, error) {
	key := normalizeTier(value)
	for _, entry := range probabilityNames {
		if normalizeTier(entry.name) == key {
			return entry.tier, nil
		}
	}
	return 0, &ConfigError{Field: "probability", Reason: fmt.Sprintf("unknown tier %q", value)}
}

// Strength bounds how far an item's emitted length may fall below its
// configured length.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthLow
	StrengthMedium
	StrengthHigh
	StrengthFull
)

var strengthNames = [...]string{"none", "low", "medium", "high", "full"}

// minLengthPercent is the smallest emitted length per tier, as a percentage
// of the configured length.
var minLengthPercent = [...]int{0, 25, 50, 75, 100}

// Valid reports whether s is within None..Full.
func (s Strength) Valid() bool {
	return s >= StrengthNone && s <= StrengthFull
}

func (s Strength) String() string {
	if !s.Valid() {
		return fmt.Sprintf("strength(%d)", int(s))
	}
	return strengthNames[s]
}

// MinLength returns the shortest emitted length allowed for a configured length.
func (s Strength) MinLength(length int) int {
	if !s.Valid() || length <= 0 {
		return 0
	}
	if s == StrengthFull {
		return length
	}
	return length * minLengthPercent[s] / 100
}

// ParseStrength parses a strength tier name, case-insensitively.
func ParseStrength(value string) (Strength, error) {
	key := normalizeTier(value)
	for i, name := range strengthNames {
		if name == key {
			return Strength(i), nil
		}
	}
	return 0, &ConfigError{Field: "length-strength", Reason: fmt.Sprintf("unknown tier %q", value)}
}

func normalizeTier(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(value)
}
