// Package wordlist loads word lists used as dictionaries by word items.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/verte-zerg/pwseq/internal/random"
)

// LoadWords reads one word per line from the provided file path. Blank
// lines and lines starting with '#' are skipped.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// List is an in-memory dictionary of distinct words.
type List struct {
	name  string
	words []string
}

// New builds a List, dropping duplicates and words rejected by keep.
// A nil keep accepts every word.
func New(name string, words []string, keep FilterFunc) (*List, error) {
	seen := make(map[string]struct{}, len(words))
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if keep != nil && !keep(word) {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		kept = append(kept, word)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("word list %q has no usable words", name)
	}
	return &List{name: name, words: kept}, nil
}

// Load reads path and filters it for lang.
func Load(path, lang string) (*List, error) {
	words, err := LoadWords(path)
	if err != nil {
		return nil, err
	}
	return New(lang, words, FilterForLang(lang))
}

// Name returns the list's name.
func (l *List) Name() string {
	return l.name
}

// WordCount returns the number of distinct words.
func (l *List) WordCount() int {
	return len(l.words)
}

// PickWord returns a uniformly chosen word.
func (l *List) PickWord(src random.Source) (string, error) {
	idx, err := src.InRange(0, len(l.words)-1)
	if err != nil {
		return "", err
	}
	return l.words[idx], nil
}
