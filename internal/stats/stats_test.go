package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/keytest/internal/model"
)

func sampleResults() []model.TestResult {
	base := time.Date(2025, 1, 2, 10, 0, 0, 0, time.Local)
	return []model.TestResult{
		{FinishedAt: base, Duration: 30, Vocab: "common", WPM: 20, Accuracy: 90, Errors: 3, WordsTyped: 12},
		{FinishedAt: base.Add(time.Minute), Duration: 30, Vocab: "common", WPM: 40, Accuracy: 100, WordsTyped: 25, EndedEarly: true},
		{FinishedAt: base.Add(2 * time.Minute), Duration: 60, Vocab: "quotes", WPM: 30, Accuracy: 95, Errors: 1, WordsTyped: 30},
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize(sampleResults())
	assert.Equal(t, 3, sum.Count)
	assert.InDelta(t, 30.0, sum.AvgWPM, 1e-9)
	assert.Equal(t, 40, sum.BestWPM)
	assert.InDelta(t, 95.0, sum.AvgAccuracy, 1e-9)
	assert.Equal(t, 4, sum.TotalErrors)
	assert.Equal(t, 1, sum.EndedEarly)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{10, 20, 30, 40}, 2)
	assert.Equal(t, []float64{10, 15, 25, 35}, got)

	in := []float64{1, 2}
	same := MovingAverage(in, 1)
	assert.Equal(t, in, same)
	same[0] = 9
	assert.Equal(t, 1.0, in[0])

	assert.Empty(t, MovingAverage(nil, 3))
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil))
	assert.Equal(t, "+++", Sparkline([]float64{5, 5, 5}))
	assert.Equal(t, " @", Sparkline([]float64{0, 10}))
	line := Sparkline([]float64{0, 5, 10})
	assert.Len(t, line, 3)
	assert.Equal(t, byte(' '), line[0])
	assert.Equal(t, byte('@'), line[2])
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, sampleResults()))
	out := buf.String()
	assert.Contains(t, out, "Tests: 3\n")
	assert.Contains(t, out, "Avg WPM: 30.0\n")
	assert.Contains(t, out, "Best WPM: 40\n")
	assert.Contains(t, out, "Avg Accuracy: 95.0%\n")
	assert.Contains(t, out, "Trend:  @")
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, nil))
	assert.Equal(t, "No tests finished yet.\n", buf.String())
}

func TestHistoryRows(t *testing.T) {
	rows := HistoryRows(sampleResults())
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1", "10:00:00", "common", "30", "20", "90%", "3", "12"}, rows[0])
	assert.Equal(t, "30*", rows[1][3])
	for _, row := range rows {
		assert.Len(t, row, len(HistoryHeaders))
	}
}

func TestRenderHistory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHistory(&buf, sampleResults()))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "#"))
	assert.True(t, strings.HasPrefix(lines[1], "-"))
}
