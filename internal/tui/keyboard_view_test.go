package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/keytest/internal/keyboard"
	"github.com/verte-zerg/keytest/internal/model"
)

func TestKeyboardPressHighlightsAndLogs(t *testing.T) {
	h := newHarness(model.ModeKeyboard)
	kv := h.m.keyboard
	require.NotNil(t, kv)

	cmd := h.key("a")
	assert.NotNil(t, cmd, "release check scheduled")
	assert.True(t, kv.tracker.IsPressed("a"))

	log := kv.tracker.Log()
	require.Len(t, log, 1)
	assert.Equal(t, keyboard.LogEntry{Key: "a", Type: keyboard.Down, Timestamp: "07:08:09"}, log[0])
	assert.Contains(t, kv.logView.View(), "07:08:09  Key: a (down)")
}

func TestKeyboardAutoRepeatThenRelease(t *testing.T) {
	h := newHarness(model.ModeKeyboard)
	kv := h.m.keyboard

	h.key("a")
	h.clock.Advance(30 * time.Millisecond)
	assert.Nil(t, h.key("a"), "check already pending")
	h.clock.Advance(30 * time.Millisecond)
	h.key("a")

	h.clock.Advance(time.Second)
	h.send(releaseTickMsg{Gen: kv.releaseGen})

	log := kv.tracker.Log()
	require.Len(t, log, 2)
	assert.Equal(t, keyboard.Down, log[0].Type)
	assert.Equal(t, keyboard.Up, log[1].Type)
	assert.False(t, kv.tracker.IsPressed("a"))
	assert.Equal(t, 0, kv.adapter.Held())
}

func TestKeyboardReleaseWaitsForWindow(t *testing.T) {
	h := newHarness(model.ModeKeyboard)
	kv := h.m.keyboard

	h.key("a")
	h.clock.Advance(50 * time.Millisecond)
	cmd := h.send(releaseTickMsg{Gen: kv.releaseGen})

	assert.NotNil(t, cmd, "still held, check again")
	assert.True(t, kv.tracker.IsPressed("a"))
}

func TestKeyboardShiftedLetter(t *testing.T) {
	h := newHarness(model.ModeKeyboard)
	kv := h.m.keyboard

	h.key("A")

	assert.Equal(t, []string{"A", "Shift", "a"}, kv.tracker.Pressed())
	view := h.m.View()
	assert.Contains(t, view, "Shift")
}

func TestKeyboardClearLog(t *testing.T) {
	h := newHarness(model.ModeKeyboard)
	kv := h.m.keyboard
	h.key("q")
	h.key(" ")

	h.key("ctrl+l")

	assert.Empty(t, kv.tracker.Log())
	assert.True(t, kv.tracker.IsPressed("q"))
	assert.Contains(t, kv.logView.View(), "Press any key")
}

func TestKeyboardSpaceLoggedAsSpace(t *testing.T) {
	h := newHarness(model.ModeKeyboard)
	h.key(" ")
	log := h.m.keyboard.tracker.Log()
	require.Len(t, log, 1)
	assert.Equal(t, "Space", log[0].Key)
}

func TestKeyboardStaleReleaseTickIgnored(t *testing.T) {
	h := newHarness(model.ModeKeyboard)
	kv := h.m.keyboard
	h.key("a")
	stale := releaseTickMsg{Gen: kv.releaseGen - 1}
	h.clock.Advance(time.Second)

	assert.Nil(t, h.send(stale))
	assert.True(t, kv.tracker.IsPressed("a"))
}

func TestKeyboardTeardownReleasesKeys(t *testing.T) {
	h := newHarness(model.ModeKeyboard)
	kv := h.m.keyboard
	h.key("a")
	gen := kv.releaseGen

	h.key("ctrl+s")

	assert.Nil(t, h.m.keyboard)
	assert.Equal(t, 0, kv.adapter.Held())
	assert.False(t, kv.tracker.IsPressed("a"))
	assert.Nil(t, h.send(releaseTickMsg{Gen: gen}), "no keyboard view to deliver to")
}

func TestRenderKeyboardHighlightsPressed(t *testing.T) {
	theme := ThemeFor(ThemeDark)
	rows := keyboard.Highlight(keyboard.Layout, []string{"q"})
	out := renderKeyboard(theme, rows)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, len(keyboard.Layout))
	assert.Contains(t, lines[2], theme.KeyPressed.Width(5).Align(0.5).Render("Q"))
}

func TestUnmappedKeyIsIgnored(t *testing.T) {
	h := newHarness(model.ModeKeyboard)
	assert.Nil(t, h.send(tea.KeyMsg{Type: tea.KeyF20}))
	assert.Empty(t, h.m.keyboard.tracker.Log())
}
