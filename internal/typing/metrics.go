package typing

import (
	"fmt"
	"math"
	"time"
)

// CharsPerWord is the standard word length used for WPM.
const CharsPerWord = 5

// Accuracy returns round(100*correct/total), or 100 when nothing was typed.
func Accuracy(correct, total int) int {
	if total <= 0 {
		return 100
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// WPM returns round((correct/5)/minutes). When elapsed is not positive the
// previous value is kept.
func WPM(correct int, elapsed time.Duration, prev int) int {
	minutes := float64(elapsed.Milliseconds()) / 60000.0
	if minutes <= 0 {
		return prev
	}
	return int(math.Round((float64(correct) / CharsPerWord) / minutes))
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
