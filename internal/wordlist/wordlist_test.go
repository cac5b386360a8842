package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWordsSplitsFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world\n\n  again\tmore\n"), 0o644))

	words, err := LoadWords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world", "again", "more"}, words)
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n   \n"), 0o644))

	_, err := LoadWords(path)
	assert.Error(t, err)
}

func TestLoadWordsMissing(t *testing.T) {
	_, err := LoadWords(filepath.Join(t.TempDir(), "nope.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestTypeable(t *testing.T) {
	keep := Typeable()
	for _, word := range []string{"hello", "self-esteem", "résumé"} {
		assert.True(t, keep(word), word)
	}
	for _, word := range []string{"", "two words", "bell\a"} {
		assert.False(t, keep(word), word)
	}
}

func TestBuiltinVocabularies(t *testing.T) {
	assert.Equal(t, []string{"common", "quotes"}, Names())

	common, err := Builtin("common")
	require.NoError(t, err)
	assert.Equal(t, "Common Words", common.Title)
	assert.Contains(t, common.Words, "the")

	quotes, err := Builtin(" Quotes ")
	require.NoError(t, err)
	assert.Contains(t, quotes.Words, "self-esteem")
}

func TestBuiltinReturnsCopy(t *testing.T) {
	first, err := Builtin("common")
	require.NoError(t, err)
	first.Words[0] = "mutated"

	second, err := Builtin("common")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second.Words[0])
}

func TestBuiltinUnknownSuggests(t *testing.T) {
	_, err := Builtin("quots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "quotes"`)

	_, err = Builtin("zzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: common, quotes")
}
