package typing

import (
	"fmt"
	"time"
)

// Result is the frozen outcome of a finished test.
type Result struct {
	Duration      int
	WPM           int
	Accuracy      int
	Errors        int
	WordsTyped    int
	CorrectChars  int
	TotalChars    int
	Elapsed       time.Duration
	TimeRemaining int
}

// EndedEarly reports whether the words ran out before the timer.
func (r Result) EndedEarly() bool {
	return r.TimeRemaining > 0
}

// Rating holds the labels shown next to a result.
type Rating struct {
	Speed         string
	Accuracy      string
	Badge         string
	Encouragement string
}

// Rate classifies a result.
func Rate(r Result) Rating {
	rating := Rating{}
	switch {
	case r.WPM >= 40:
		rating.Speed = "Expert"
		rating.Encouragement = "Excellent typing speed!"
	case r.WPM >= 25:
		rating.Speed = "Intermediate"
		rating.Encouragement = "Good job! Keep practicing!"
	default:
		rating.Speed = "Beginner"
		rating.Encouragement = "Great start! Practice makes perfect!"
	}
	switch {
	case r.Accuracy >= 95:
		rating.Accuracy = "Perfect"
	case r.Accuracy >= 85:
		rating.Accuracy = "Great"
	default:
		rating.Accuracy = "Improving"
	}
	switch {
	case r.WPM >= 40 && r.Accuracy >= 95:
		rating.Badge = "Typing Master!"
	case r.WPM >= 25 && r.WPM < 40 && r.Accuracy >= 85:
		rating.Badge = "Well Done!"
	}
	return rating
}

// ShareText is the one-line summary copied to the clipboard.
func ShareText(r Result) string {
	return fmt.Sprintf("I just completed a typing test! WPM: %d, Accuracy: %d%% 🚀", r.WPM, r.Accuracy)
}

// Plural picks the singular or plural noun for n.
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
