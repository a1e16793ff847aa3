package sequence

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/pwseq/internal/random"
)

// Result is one generated password with the facts a caller needs to show
// alongside it.
type Result struct {
	Password string
	// Entropy is the estimate for the configuration, in bits.
	Entropy float64
	// AdvancedWarning is set when the configuration can produce passwords
	// weaker than Entropy suggests.
	AdvancedWarning bool
}

// GenerateItem validates item, makes the inclusion draw and, when it
// passes, returns the item's text.
func GenerateItem(item Item, src random.Source, cfg *Configuration) (string, error) {
	if item == nil {
		return "", &ConfigError{Field: "item", Reason: "missing"}
	}
	if err := item.Validate(); err != nil {
		return "", err
	}
	include, err := src.Chance(item.Inclusion().Percent())
	if err != nil {
		return "", err
	}
	if !include {
		return "", nil
	}
	return item.Generate(src, cfg)
}

// GenerateSequence concatenates the items of cfg in order, all drawing from
// the same src. A nil configuration yields an empty password. The
// configuration is validated before any draw; any item failure aborts the
// whole password.
func GenerateSequence(cfg *Configuration, src random.Source) (string, error) {
	if cfg == nil {
		return "", nil
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	for i, item := range cfg.Sequence {
		part, err := GenerateItem(item, src, cfg)
		if err != nil {
			return "", fmt.Errorf("sequence item %d (%s): %w", i, item.Kind(), err)
		}
		b.WriteString(part)
	}
	return b.String(), nil
}

// Generate produces one password together with its entropy estimate and
// advanced-mode flag.
func Generate(cfg *Configuration, src random.Source) (Result, error) {
	password, err := GenerateSequence(cfg, src)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Password:        password,
		Entropy:         TotalEntropy(cfg),
		AdvancedWarning: RequiresAdvancedWarning(cfg),
	}, nil
}

// TotalEntropy sums the entropy estimate of every item.
func TotalEntropy(cfg *Configuration) float64 {
	if cfg == nil {
		return 0
	}
	total := 0.0
	for _, item := range cfg.Sequence {
		if item == nil {
			continue
		}
		total += item.Entropy(cfg)
	}
	return total
}

// RequiresAdvancedWarning reports whether any item may be skipped or
// shortened, which makes the entropy estimate an overstatement.
func RequiresAdvancedWarning(cfg *Configuration) bool {
	if cfg == nil {
		return false
	}
	for _, item := range cfg.Sequence {
		if item != nil && item.Advanced() {
			return true
		}
	}
	return false
}
