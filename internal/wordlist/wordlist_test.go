package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/pwseq/internal/random"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "en.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWordsSkipsBlankAndComments(t *testing.T) {
	path := writeList(t, "# source: test\nalpha\n\n  bravo  \ncharlie\n")
	words, err := LoadWords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, words)
}

func TestLoadWordsEmpty(t *testing.T) {
	_, err := LoadWords(writeList(t, "\n# nothing\n"))
	require.Error(t, err)

	_, err = LoadWords(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFiltersAndDeduplicates(t *testing.T) {
	path := writeList(t, "alpha\nbravo\nalpha\nco-op\ndelta\n")
	list, err := Load(path, "en")
	require.NoError(t, err)
	assert.Equal(t, "en", list.Name())
	assert.Equal(t, 3, list.WordCount())

	src := random.NewSeeded(8)
	for i := 0; i < 20; i++ {
		word, err := list.PickWord(src)
		require.NoError(t, err)
		assert.Contains(t, []string{"alpha", "bravo", "delta"}, word)
	}
}

func TestNewRejectsUnusableList(t *testing.T) {
	_, err := New("en", []string{"co-op", "naïve"}, FilterForLang("en"))
	require.Error(t, err)
}
