// Package generator builds typing text sequences.
package generator

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

const (
	// BaselineWPM is the assumed typing speed used to size a text.
	BaselineWPM = 40
	// MinWords is the smallest text ever generated.
	MinWords = 20
)

// ErrEmptyVocabulary is returned when there is nothing to sample from.
var ErrEmptyVocabulary = errors.New("vocabulary is empty")

// Generator produces randomized typing text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// TargetWordCount returns how many words a test of the given duration needs:
// max(MinWords, ceil(duration * BaselineWPM / 60)).
func TargetWordCount(durationSeconds int) int {
	n := (durationSeconds*BaselineWPM + 59) / 60
	if n < MinWords {
		return MinWords
	}
	return n
}

// Generate shuffles the vocabulary once and cycles through it until the
// target word count for durationSeconds is reached.
func (g *Generator) Generate(durationSeconds int, vocabulary []string) (string, error) {
	if len(vocabulary) == 0 {
		return "", ErrEmptyVocabulary
	}
	shuffled := make([]string, len(vocabulary))
	copy(shuffled, vocabulary)
	g.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	count := TargetWordCount(durationSeconds)
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, shuffled[i%len(shuffled)])
	}
	return strings.Join(result, " "), nil
}
