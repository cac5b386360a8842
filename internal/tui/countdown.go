package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastCountdownID int64

func nextCountdownID() int {
	return int(atomic.AddInt64(&lastCountdownID, 1))
}

// countdownTickMsg is one second of a running countdown.
type countdownTickMsg struct {
	ID  int
	Gen int
}

// countdown owns the one-second test timer. Every Start or Stop bumps the
// generation, so ticks issued before it are ignored.
type countdown struct {
	id       int
	gen      int
	running  bool
	interval time.Duration
}

func newCountdown() countdown {
	return countdown{id: nextCountdownID(), interval: time.Second}
}

// Start begins a fresh tick chain.
func (c *countdown) Start() tea.Cmd {
	c.gen++
	c.running = true
	return c.tick()
}

// Stop invalidates any pending tick.
func (c *countdown) Stop() {
	c.gen++
	c.running = false
}

// Running reports whether ticks are being scheduled.
func (c *countdown) Running() bool {
	return c.running
}

// Accept reports whether msg belongs to the live tick chain.
func (c *countdown) Accept(msg countdownTickMsg) bool {
	return c.running && msg.ID == c.id && msg.Gen == c.gen
}

// Next schedules the following tick of the live chain.
func (c *countdown) Next() tea.Cmd {
	if !c.running {
		return nil
	}
	return c.tick()
}

func (c *countdown) tick() tea.Cmd {
	id, gen := c.id, c.gen
	return tea.Tick(c.interval, func(time.Time) tea.Msg {
		return countdownTickMsg{ID: id, Gen: gen}
	})
}
