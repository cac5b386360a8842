package keyboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapterMarksRepeatsWhileHeld(t *testing.T) {
	a := NewAdapter(100 * time.Millisecond)
	t0 := time.Unix(0, 0)
	p := Press{Key: "a", Code: "KeyA"}

	first := a.Press(p, t0)
	assert.Equal(t, Event{Type: Down, Key: "a", Code: "KeyA"}, first)

	second := a.Press(p, t0.Add(50*time.Millisecond))
	assert.True(t, second.Repeat)

	// The repeat extended the deadline.
	assert.Empty(t, a.Expire(t0.Add(120*time.Millisecond)))

	ups := a.Expire(t0.Add(150 * time.Millisecond))
	require.Len(t, ups, 1)
	assert.Equal(t, Event{Type: Up, Key: "a", Code: "KeyA"}, ups[0])
	assert.Equal(t, 0, a.Held())

	again := a.Press(p, t0.Add(time.Second))
	assert.False(t, again.Repeat)
}

func TestAdapterFeedsTracker(t *testing.T) {
	a := NewAdapter(100 * time.Millisecond)
	tr := fixedTracker()
	t0 := time.Unix(0, 0)
	p := Press{Key: "a", Code: "KeyA"}

	tr.Apply(a.Press(p, t0))
	tr.Apply(a.Press(p, t0.Add(30*time.Millisecond)))
	tr.Apply(a.Press(p, t0.Add(60*time.Millisecond)))
	for _, ev := range a.Expire(t0.Add(time.Second)) {
		tr.Apply(ev)
	}

	log := tr.Log()
	require.Len(t, log, 2)
	assert.Equal(t, Down, log[0].Type)
	assert.Equal(t, Up, log[1].Type)
	assert.False(t, tr.IsPressed("a"))
}

func TestAdapterReleaseAll(t *testing.T) {
	a := NewAdapter(time.Hour)
	t0 := time.Unix(0, 0)
	a.Press(Press{Key: "Shift", Code: "ShiftLeft"}, t0)
	a.Press(Press{Key: "A", Code: "KeyA"}, t0)

	ups := a.ReleaseAll()
	require.Len(t, ups, 2)
	assert.Equal(t, "A", ups[0].Key)
	assert.Equal(t, "Shift", ups[1].Key)
	assert.Equal(t, 0, a.Held())
	assert.Empty(t, a.ReleaseAll())
}

func TestAdapterDefaultWindow(t *testing.T) {
	assert.Equal(t, DefaultReleaseAfter, NewAdapter(0).ReleaseAfter())
}
