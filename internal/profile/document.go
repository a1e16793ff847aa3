// Package profile loads and saves sequence configurations as TOML or YAML files.
package profile

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/pwseq/internal/sequence"
)

// Document is the persisted form of a sequence configuration.
type Document struct {
	Name              string         `toml:"name" yaml:"name" validate:"required,excludesall=/\\"`
	DefaultCharacters string         `toml:"default-characters,omitempty" yaml:"default-characters,omitempty"`
	Items             []ItemDocument `toml:"item" yaml:"items" validate:"dive"`
}

// ItemDocument is one persisted sequence item. Fields that do not apply to
// the item's kind are left empty.
type ItemDocument struct {
	Kind           string `toml:"kind" yaml:"kind" validate:"required,oneof=characters word"`
	Probability    string `toml:"probability,omitempty" yaml:"probability,omitempty"`
	Length         *int   `toml:"length" yaml:"length,omitempty" validate:"omitempty,gte=0"`
	LengthStrength string `toml:"length-strength,omitempty" yaml:"length-strength,omitempty"`
	AllowDuplicate *bool  `toml:"allow-duplicate" yaml:"allow-duplicate,omitempty"`
	Characters     string `toml:"characters,omitempty" yaml:"characters,omitempty"`
	Override       bool   `toml:"override,omitempty" yaml:"override,omitempty"`
	Wordlist       string `toml:"wordlist,omitempty" yaml:"wordlist,omitempty" validate:"required_if=Kind word"`
	Capitalize     string `toml:"capitalize,omitempty" yaml:"capitalize,omitempty"`
}

// WordResolver returns the dictionary for a word list name.
type WordResolver func(name string) (sequence.Dictionary, error)

var validate = validator.New()

// Validate checks the document's structure.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &sequence.ConfigError{Field: fe.Namespace(), Reason: "failed " + fe.Tag() + " check"}
		}
		return fmt.Errorf("%w: %v", sequence.ErrInvalidConfiguration, err)
	}
	return nil
}

// Configuration converts the document, resolving word lists with resolve.
// A nil resolve leaves word items without a dictionary.
func (d *Document) Configuration(resolve WordResolver) (*sequence.Configuration, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	cfg := &sequence.Configuration{
		Name:              d.Name,
		DefaultCharacters: sequence.NewCharacterSet(d.DefaultCharacters),
		Sequence:          make([]sequence.Item, 0, len(d.Items)),
	}
	for i := range d.Items {
		item, err := d.Items[i].item(resolve)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		cfg.Sequence = append(cfg.Sequence, item)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (d ItemDocument) item(resolve WordResolver) (sequence.Item, error) {
	probability, err := parseProbability(d.Probability, sequence.Always)
	if err != nil {
		return nil, err
	}
	switch sequence.ItemKind(d.Kind) {
	case sequence.KindCharacters:
		item := sequence.NewCharacterItem()
		item.Probability = probability
		if d.Length != nil {
			item.Length = *d.Length
		}
		if d.LengthStrength != "" {
			if item.LengthStrength, err = sequence.ParseStrength(d.LengthStrength); err != nil {
				return nil, err
			}
		}
		if d.AllowDuplicate != nil {
			item.AllowDuplicate = *d.AllowDuplicate
		}
		item.Characters = sequence.NewCharacterList(d.Characters, d.Override)
		return item, nil
	case sequence.KindWord:
		item := sequence.NewWordItem(d.Wordlist, nil)
		item.Probability = probability
		if item.Capitalize, err = parseProbability(d.Capitalize, sequence.Never); err != nil {
			return nil, err
		}
		if resolve != nil {
			words, err := resolve(d.Wordlist)
			if err != nil {
				return nil, fmt.Errorf("failed to load word list %q: %w", d.Wordlist, err)
			}
			item.Words = words
		}
		return item, nil
	default:
		return nil, &sequence.ConfigError{Field: "kind", Reason: fmt.Sprintf("unknown item kind %q", d.Kind)}
	}
}

func parseProbability(value string, fallback sequence.Probability) (sequence.Probability, error) {
	if value == "" {
		return fallback, nil
	}
	return sequence.ParseProbability(value)
}

// FromConfiguration builds the persisted form of cfg. Every attribute is
// written explicitly so a reload reproduces the configuration exactly.
func FromConfiguration(cfg *sequence.Configuration) (*Document, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is nil")
	}
	doc := &Document{
		Name:              cfg.Name,
		DefaultCharacters: cfg.DefaultCharacters.String(),
		Items:             make([]ItemDocument, 0, len(cfg.Sequence)),
	}
	for i, item := range cfg.Sequence {
		switch it := item.(type) {
		case nil:
			return nil, fmt.Errorf("item %d: missing", i)
		case *sequence.CharacterItem:
			length := it.Length
			allowDup := it.AllowDuplicate
			doc.Items = append(doc.Items, ItemDocument{
				Kind:           string(sequence.KindCharacters),
				Probability:    it.Probability.String(),
				Length:         &length,
				LengthStrength: it.LengthStrength.String(),
				AllowDuplicate: &allowDup,
				Characters:     it.Characters.Set.String(),
				Override:       it.Characters.Override,
			})
		case *sequence.WordItem:
			doc.Items = append(doc.Items, ItemDocument{
				Kind:        string(sequence.KindWord),
				Probability: it.Probability.String(),
				Wordlist:    it.Wordlist,
				Capitalize:  it.Capitalize.String(),
			})
		default:
			return nil, fmt.Errorf("item %d: cannot persist item of kind %q", i, item.Kind())
		}
	}
	return doc, nil
}
