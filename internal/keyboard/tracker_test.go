package keyboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedTracker() *Tracker {
	at := time.Date(2025, 3, 4, 9, 15, 30, 0, time.Local)
	return NewTracker(WithTrackerClock(func() time.Time { return at }))
}

func TestRepeatIsNotLoggedButStaysHeld(t *testing.T) {
	tr := fixedTracker()

	tr.KeyDown("a", "KeyA", false)
	tr.KeyDown("a", "KeyA", true)
	tr.KeyDown("a", "KeyA", true)
	assert.True(t, tr.IsPressed("a"))

	tr.KeyUp("a", "KeyA")

	log := tr.Log()
	require.Len(t, log, 2)
	assert.Equal(t, LogEntry{Key: "a", Type: Down, Timestamp: "09:15:30"}, log[0])
	assert.Equal(t, Up, log[1].Type)
	downs := 0
	for _, e := range log {
		if e.Type == Down {
			downs++
		}
	}
	assert.Equal(t, 1, downs)
	assert.False(t, tr.IsPressed("a"))
	assert.Empty(t, tr.Pressed())
}

func TestShiftedLetterAddsPhysicalAlias(t *testing.T) {
	tr := fixedTracker()
	tr.KeyDown("Shift", "ShiftLeft", false)
	tr.KeyDown("A", "KeyA", false)

	assert.Equal(t, []string{"A", "Shift", "a"}, tr.Pressed())
	assert.True(t, tr.IsPressed("a"))

	tr.KeyUp("A", "KeyA")
	assert.Equal(t, []string{"Shift"}, tr.Pressed())
}

func TestDigitAlias(t *testing.T) {
	tr := fixedTracker()
	tr.KeyDown("!", "Digit1", false)
	assert.True(t, tr.IsPressed("1"))
	assert.True(t, tr.IsPressed("!"))
}

func TestKeyUpWithoutDownIsSafe(t *testing.T) {
	tr := fixedTracker()
	tr.KeyUp("x", "KeyX")
	assert.Empty(t, tr.Pressed())
	assert.Len(t, tr.Log(), 1)
}

func TestClearLogKeepsPressedSet(t *testing.T) {
	tr := fixedTracker()
	tr.Apply(Event{Type: Down, Key: "q", Code: "KeyQ"})
	tr.Apply(Event{Type: Down, Key: " ", Code: "Space"})

	tr.ClearLog()

	assert.Empty(t, tr.Log())
	assert.True(t, tr.IsPressed("q"))
	assert.True(t, tr.IsPressed(" "))
}

func TestSpaceIsDisplayedAsSpace(t *testing.T) {
	tr := fixedTracker()
	tr.KeyDown(" ", "Space", false)
	assert.Equal(t, "Space", tr.Log()[0].Key)
}

func TestIsPressedLowerCaseFallback(t *testing.T) {
	tr := fixedTracker()
	tr.KeyDown("q", "KeyQ", false)
	assert.True(t, tr.IsPressed("Q"))
}

func TestPhysicalAlias(t *testing.T) {
	tests := []struct {
		code  string
		alias string
		ok    bool
	}{
		{"KeyZ", "z", true},
		{"Digit7", "7", true},
		{"Key", "", false},
		{"ShiftLeft", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		alias, ok := PhysicalAlias(tt.code)
		assert.Equal(t, tt.ok, ok, tt.code)
		assert.Equal(t, tt.alias, alias, tt.code)
	}
}
