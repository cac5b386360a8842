package stats

import (
	"context"

	"github.com/verte-zerg/keytest/internal/model"
)

// ResultLister is the read side of the run history.
type ResultLister interface {
	ListResults(ctx context.Context, filter model.HistoryFilter) ([]model.TestResult, error)
}

// Report contains precomputed data for the history panel.
type Report struct {
	Results []model.TestResult
	Summary Summary
	// Trend is the moving average of WPM over the results.
	Trend []float64
}

// BuildReport loads results matching filter and prepares them for rendering.
func BuildReport(ctx context.Context, src ResultLister, filter model.HistoryFilter, window int) (Report, error) {
	results, err := src.ListResults(ctx, filter)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Results: results,
		Summary: Summarize(results),
		Trend:   MovingAverage(WPMSeries(results), window),
	}, nil
}
