package tui

import (
	"bytes"
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/keytest/internal/model"
	"github.com/verte-zerg/keytest/internal/stats"
)

const (
	historyLimit  = 50
	historyRows   = 8
	trendWindow   = 3
	sparkMaxWidth = 40
)

var historyColumnWidths = []int{3, 8, 7, 5, 4, 5, 6, 5}

// historyPanel shows the tests finished during this process.
type historyPanel struct {
	store  History
	log    *zap.Logger
	table  table.Model
	report stats.Report
	shown  bool
	err    string
}

func newHistoryPanel(store History, log *zap.Logger) *historyPanel {
	columns := make([]table.Column, len(stats.HistoryHeaders))
	for i, title := range stats.HistoryHeaders {
		columns[i] = table.Column{Title: title, Width: historyColumnWidths[i]}
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(1),
	)
	return &historyPanel{store: store, log: log.Named("history"), table: t}
}

func (h *historyPanel) setWidth(width int) {
	if width > 0 {
		h.table.SetWidth(width)
	}
}

func (h *historyPanel) toggle() {
	h.shown = !h.shown
	if h.shown {
		h.refresh()
	}
}

func (h *historyPanel) visible() bool {
	return h.shown
}

// record stores a finished test and reloads the panel.
func (h *historyPanel) record(r model.TestResult) error {
	if h.store == nil {
		return nil
	}
	if _, err := h.store.InsertResult(context.Background(), r); err != nil {
		h.log.Warn("store result", zap.Error(err))
		return err
	}
	h.refresh()
	return nil
}

func (h *historyPanel) refresh() {
	if h.store == nil {
		return
	}
	report, err := stats.BuildReport(context.Background(), h.store, model.HistoryFilter{Limit: historyLimit}, trendWindow)
	if err != nil {
		h.log.Warn("load history", zap.Error(err))
		h.err = "Could not load history."
		return
	}
	h.err = ""
	h.report = report
	rows := stats.HistoryRows(report.Results)
	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}
	h.table.SetRows(tableRows)
	h.table.SetHeight(min(max(1, len(tableRows)), historyRows) + 1)
	h.table.GotoBottom()
}

func (h *historyPanel) view(theme Theme) string {
	title := theme.CardTitle.Render("Run History (this session)")
	if h.err != "" {
		return lipgloss.JoinVertical(lipgloss.Left, title, theme.Error.Render(h.err))
	}
	var buf bytes.Buffer
	if err := stats.RenderSummary(&buf, h.report.Results); err != nil {
		h.log.Warn("render summary", zap.Error(err))
	}
	summary := theme.Muted.Render(strings.TrimRight(buf.String(), "\n"))
	if len(h.report.Results) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, summary)
	}
	trend := stats.Sparkline(tail(h.report.Trend, sparkMaxWidth))
	h.table.SetStyles(historyTableStyles(theme))
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		h.table.View(),
		"",
		summary,
		theme.Muted.Render("Avg trend: "+trend),
	)
}

func tail(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

func historyTableStyles(theme Theme) table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(theme.TableSelected).
		Foreground(theme.TableHeader).
		Bold(true).
		PaddingLeft(0)
	styles.Cell = styles.Cell.PaddingLeft(0)
	styles.Selected = styles.Cell.Foreground(theme.TableSelected).Bold(true)
	return styles
}
