package main

import (
	"context"
	"fmt"
	"io"

	"github.com/verte-zerg/keytest/internal/model"
	"github.com/verte-zerg/keytest/internal/stats"
)

const reportTrendWindow = 3

// sessionHistory is the part of the run history the exit report reads.
type sessionHistory interface {
	Count(ctx context.Context) (int, error)
	stats.ResultLister
}

// printSessionReport writes the summary and table of every test finished in
// this run. Nothing is written when no test finished.
func printSessionReport(ctx context.Context, w io.Writer, history sessionHistory) error {
	n, err := history.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count results: %w", err)
	}
	if n == 0 {
		return nil
	}
	report, err := stats.BuildReport(ctx, history, model.HistoryFilter{Limit: n}, reportTrendWindow)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	if err := stats.RenderSummary(w, report.Results); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return stats.RenderHistory(w, report.Results)
}
