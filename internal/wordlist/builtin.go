package wordlist

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Built-in vocabulary names.
const (
	VocabCommon = "common"
	VocabQuotes = "quotes"
	VocabCustom = "custom"
)

//go:embed data/common.txt
var commonWords string

//go:embed data/quotes.txt
var quoteWords string

// Vocabulary is a named word list.
type Vocabulary struct {
	Name  string
	Title string
	Words []string
}

var builtins = map[string]Vocabulary{
	VocabCommon: {Name: VocabCommon, Title: "Common Words", Words: parseEmbedded(commonWords)},
	VocabQuotes: {Name: VocabQuotes, Title: "Famous Quotes", Words: parseEmbedded(quoteWords)},
}

func parseEmbedded(data string) []string {
	keep := Typeable()
	var words []string
	for _, line := range strings.Split(data, "\n") {
		word := strings.TrimSpace(line)
		if keep(word) {
			words = append(words, word)
		}
	}
	return words
}

// Names returns the built-in vocabulary names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns a copy of the named built-in vocabulary. Unknown names get
// an error carrying the closest known name, if any.
func Builtin(name string) (Vocabulary, error) {
	v, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		if suggestion := Suggest(name); suggestion != "" {
			return Vocabulary{}, fmt.Errorf("unknown vocabulary %q (did you mean %q?)", name, suggestion)
		}
		return Vocabulary{}, fmt.Errorf("unknown vocabulary %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	v.Words = append([]string(nil), v.Words...)
	return v, nil
}

// Custom wraps words loaded from a file as the custom vocabulary.
func Custom(words []string) Vocabulary {
	return Vocabulary{Name: VocabCustom, Title: "Custom Words", Words: words}
}

// Suggest returns the best fuzzy match for name among the built-in names.
func Suggest(name string) string {
	matches := fuzzy.Find(strings.ToLower(name), Names())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
