package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/keytest/internal/keyboard"
)

const (
	keyLogHeight = 6
	releasePoll  = 50 * time.Millisecond
)

// releaseTickMsg asks the keyboard view to expire keys the terminal will
// never report as released.
type releaseTickMsg struct {
	Gen int
}

type keyboardView struct {
	tracker *keyboard.Tracker
	adapter *keyboard.Adapter
	logView viewport.Model
	now     func() time.Time
	log     *zap.Logger

	releaseGen     int
	releasePending bool
	width          int
}

func newKeyboardView(releaseAfter time.Duration, now func() time.Time, log *zap.Logger) *keyboardView {
	v := &keyboardView{
		tracker: keyboard.NewTracker(keyboard.WithTrackerClock(now)),
		adapter: keyboard.NewAdapter(releaseAfter),
		logView: viewport.New(0, keyLogHeight),
		now:     now,
		log:     log.Named("keyboard"),
	}
	v.refreshLog()
	return v
}

func (v *keyboardView) setSize(width int) {
	v.width = width
	v.logView.Width = max(1, width-4)
	v.refreshLog()
}

// handleKey records every press implied by msg and makes sure a release
// check is scheduled.
func (v *keyboardView) handleKey(msg tea.KeyMsg) tea.Cmd {
	presses := keyboard.FromTerminal(msg.String())
	if len(presses) == 0 {
		v.log.Debug("unmapped key", zap.String("key", msg.String()))
		return nil
	}
	now := v.now()
	for _, p := range presses {
		ev := v.adapter.Press(p, now)
		v.tracker.Apply(ev)
	}
	v.refreshLog()
	return v.scheduleRelease()
}

func (v *keyboardView) handleRelease(msg releaseTickMsg) tea.Cmd {
	if msg.Gen != v.releaseGen {
		return nil
	}
	v.releasePending = false
	released := v.adapter.Expire(v.now())
	for _, ev := range released {
		v.tracker.Apply(ev)
	}
	if len(released) > 0 {
		v.refreshLog()
	}
	return v.scheduleRelease()
}

func (v *keyboardView) scheduleRelease() tea.Cmd {
	if v.releasePending || v.adapter.Held() == 0 {
		return nil
	}
	v.releasePending = true
	gen := v.releaseGen
	return tea.Tick(releasePoll, func(time.Time) tea.Msg {
		return releaseTickMsg{Gen: gen}
	})
}

func (v *keyboardView) clearLog() {
	v.tracker.ClearLog()
	v.refreshLog()
}

// teardown drops pending release checks and lets go of every held key.
func (v *keyboardView) teardown() {
	v.releaseGen++
	v.releasePending = false
	released := v.adapter.ReleaseAll()
	for _, ev := range released {
		v.tracker.Apply(ev)
	}
	if len(released) > 0 {
		v.log.Debug("released held keys", zap.Int("count", len(released)))
	}
}

func (v *keyboardView) refreshLog() {
	entries := v.tracker.Log()
	if len(entries) == 0 {
		v.logView.SetContent("Press any key to see the log...")
		v.logView.GotoTop()
		return
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, formatLogEntry(e))
	}
	v.logView.SetContent(strings.Join(lines, "\n"))
	v.logView.GotoBottom()
}

func formatLogEntry(e keyboard.LogEntry) string {
	return fmt.Sprintf("%s  Key: %s (%s)", e.Timestamp, e.Key, e.Type)
}

func (v *keyboardView) view(theme Theme) string {
	intro := theme.Muted.Render("Press any key. Held keys light up below; releases are assumed after a short pause.")
	legend := theme.KeyPressed.Render("  ") + theme.Muted.Render(" pressed  ") +
		theme.KeyCap.Render("  ") + theme.Muted.Render(" not pressed")
	board := renderKeyboard(theme, keyboard.Highlight(keyboard.Layout, v.tracker.Pressed()))
	logTitle := theme.CardTitle.Render("Key Press Log")
	logBox := theme.Card.Render(v.logView.View())
	return lipgloss.JoinVertical(lipgloss.Left,
		intro,
		legend,
		"",
		board,
		"",
		logTitle,
		logBox,
	)
}

// renderKeyboard draws highlighted rows, one terminal line per row.
func renderKeyboard(theme Theme, rows []keyboard.RowState) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for i, k := range row.Keys {
			if i > 0 {
				b.WriteByte(' ')
			}
			if k.Spacer {
				b.WriteString(strings.Repeat(" ", k.Width))
				continue
			}
			style := theme.KeyCap
			if k.Pressed {
				style = theme.KeyPressed
			}
			b.WriteString(style.Width(k.Width).Align(lipgloss.Center).Render(k.Label))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
