// Package stats summarises the run history of finished tests.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/keytest/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Summary aggregates a set of results.
type Summary struct {
	Count       int
	AvgWPM      float64
	BestWPM     int
	AvgAccuracy float64
	TotalErrors int
	EndedEarly  int
}

// Summarize computes the summary of results. An empty set yields a zero
// Summary.
func Summarize(results []model.TestResult) Summary {
	var sum Summary
	if len(results) == 0 {
		return sum
	}
	var totalWPM, totalAcc float64
	for _, r := range results {
		totalWPM += float64(r.WPM)
		totalAcc += float64(r.Accuracy)
		sum.TotalErrors += r.Errors
		if r.WPM > sum.BestWPM {
			sum.BestWPM = r.WPM
		}
		if r.EndedEarly {
			sum.EndedEarly++
		}
	}
	sum.Count = len(results)
	sum.AvgWPM = totalWPM / float64(sum.Count)
	sum.AvgAccuracy = totalAcc / float64(sum.Count)
	return sum
}

// WPMSeries returns the WPM of each result in order.
func WPMSeries(results []model.TestResult) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = float64(r.WPM)
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		den := float64(i + 1)
		if i >= window {
			sum -= values[i-window]
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	last := len(sparkChars) - 1
	for _, v := range values {
		idx := int(math.Round((v - minVal) / (maxVal - minVal) * float64(last)))
		idx = max(0, min(idx, last))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints the summary block for results.
func RenderSummary(w io.Writer, results []model.TestResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No tests finished yet.")
		return err
	}
	sum := Summarize(results)
	lines := []string{
		fmt.Sprintf("Tests: %d", sum.Count),
		fmt.Sprintf("Avg WPM: %.1f", sum.AvgWPM),
		fmt.Sprintf("Best WPM: %d", sum.BestWPM),
		fmt.Sprintf("Avg Accuracy: %.1f%%", sum.AvgAccuracy),
		fmt.Sprintf("Errors: %d", sum.TotalErrors),
		fmt.Sprintf("Trend: %s", Sparkline(WPMSeries(results))),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// HistoryHeaders are the column titles of the history table.
var HistoryHeaders = []string{"#", "Time", "Vocab", "Secs", "WPM", "Acc", "Errors", "Words"}

// HistoryRows formats results as table rows, one per result.
func HistoryRows(results []model.TestResult) [][]string {
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		secs := fmt.Sprintf("%d", r.Duration)
		if r.EndedEarly {
			secs += "*"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.FinishedAt.Local().Format("15:04:05"),
			r.Vocab,
			secs,
			fmt.Sprintf("%d", r.WPM),
			fmt.Sprintf("%d%%", r.Accuracy),
			fmt.Sprintf("%d", r.Errors),
			fmt.Sprintf("%d", r.WordsTyped),
		})
	}
	return rows
}

// RenderHistory prints results as an aligned table.
func RenderHistory(w io.Writer, results []model.TestResult) error {
	if len(results) == 0 {
		return nil
	}
	rightAlign := map[int]bool{0: true, 3: true, 4: true, 5: true, 6: true, 7: true}
	for _, line := range formatTable(HistoryHeaders, HistoryRows(results), rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
