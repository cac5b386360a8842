// Package keyboard tracks held keys and renders them onto a fixed layout.
package keyboard

import (
	"sort"
	"strings"
	"time"
)

// EventType is the direction of a key event.
type EventType string

// Event directions.
const (
	Down EventType = "down"
	Up   EventType = "up"
)

// Event is a single physical key event.
type Event struct {
	Type   EventType
	Key    string
	Code   string
	Repeat bool
}

// LogEntry is one row of the key log.
type LogEntry struct {
	Key       string
	Type      EventType
	Timestamp string
}

// TimestampLayout formats log timestamps.
const TimestampLayout = "15:04:05"

// Tracker is a reducer over key-down and key-up events. It keeps the set of
// held keys and an append-only log.
type Tracker struct {
	now     func() time.Time
	pressed map[string]struct{}
	log     []LogEntry
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithTrackerClock overrides the time source used for log timestamps.
func WithTrackerClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		t.now = now
	}
}

// NewTracker returns an empty tracker.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{now: time.Now, pressed: map[string]struct{}{}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Apply dispatches an event to KeyDown or KeyUp.
func (t *Tracker) Apply(ev Event) {
	switch ev.Type {
	case Down:
		t.KeyDown(ev.Key, ev.Code, ev.Repeat)
	case Up:
		t.KeyUp(ev.Key, ev.Code)
	}
}

// KeyDown marks key as held. Auto-repeats keep the key held but are not logged.
func (t *Tracker) KeyDown(key, code string, repeat bool) {
	t.pressed[key] = struct{}{}
	if alias, ok := PhysicalAlias(code); ok {
		t.pressed[alias] = struct{}{}
	}
	if repeat {
		return
	}
	t.append(key, Down)
}

// KeyUp releases key and its physical alias.
func (t *Tracker) KeyUp(key, code string) {
	delete(t.pressed, key)
	if alias, ok := PhysicalAlias(code); ok {
		delete(t.pressed, alias)
	}
	t.append(key, Up)
}

func (t *Tracker) append(key string, typ EventType) {
	t.log = append(t.log, LogEntry{
		Key:       DisplayKey(key),
		Type:      typ,
		Timestamp: t.now().Format(TimestampLayout),
	})
}

// ClearLog empties the log. Held keys are untouched.
func (t *Tracker) ClearLog() {
	t.log = nil
}

// Log returns a copy of the log.
func (t *Tracker) Log() []LogEntry {
	return append([]LogEntry(nil), t.log...)
}

// Pressed returns the held keys in sorted order.
func (t *Tracker) Pressed() []string {
	keys := make([]string, 0, len(t.pressed))
	for k := range t.pressed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsPressed reports whether key, or its lower-case form, is held.
func (t *Tracker) IsPressed(key string) bool {
	if _, ok := t.pressed[key]; ok {
		return true
	}
	_, ok := t.pressed[strings.ToLower(key)]
	return ok
}

// PhysicalAlias maps KeyA/Digit1 style codes to "a"/"1".
func PhysicalAlias(code string) (string, bool) {
	switch {
	case strings.HasPrefix(code, "Key") && len(code) > len("Key"):
		return strings.ToLower(strings.TrimPrefix(code, "Key")), true
	case strings.HasPrefix(code, "Digit") && len(code) > len("Digit"):
		return strings.TrimPrefix(code, "Digit"), true
	default:
		return "", false
	}
}

// DisplayKey is the label used in the log.
func DisplayKey(key string) string {
	if key == " " {
		return "Space"
	}
	return key
}
