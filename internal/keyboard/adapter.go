package keyboard

import (
	"sort"
	"time"
)

// DefaultReleaseAfter is how long a key stays held after its last press
// when the terminal cannot report releases. It must outlast the usual
// auto-repeat delay or a held key would flicker.
const DefaultReleaseAfter = 500 * time.Millisecond

// Press is a logical key with its physical code.
type Press struct {
	Key  string
	Code string
}

type heldKey struct {
	code     string
	deadline time.Time
}

// Adapter converts press-only terminal input into down/up events. A press
// of a key that is still held is an auto-repeat; a key not seen for the
// release window is released by Expire.
type Adapter struct {
	releaseAfter time.Duration
	held         map[string]heldKey
}

// NewAdapter returns an Adapter with the given release window.
func NewAdapter(releaseAfter time.Duration) *Adapter {
	if releaseAfter <= 0 {
		releaseAfter = DefaultReleaseAfter
	}
	return &Adapter{releaseAfter: releaseAfter, held: map[string]heldKey{}}
}

// ReleaseAfter returns the release window.
func (a *Adapter) ReleaseAfter() time.Duration {
	return a.releaseAfter
}

// Press records p at now and returns the matching down event.
func (a *Adapter) Press(p Press, now time.Time) Event {
	_, repeat := a.held[p.Key]
	a.held[p.Key] = heldKey{code: p.Code, deadline: now.Add(a.releaseAfter)}
	return Event{Type: Down, Key: p.Key, Code: p.Code, Repeat: repeat}
}

// Expire releases every key whose window has passed by now.
func (a *Adapter) Expire(now time.Time) []Event {
	var events []Event
	for key, h := range a.held {
		if now.Before(h.deadline) {
			continue
		}
		events = append(events, Event{Type: Up, Key: key, Code: h.code})
		delete(a.held, key)
	}
	sortEvents(events)
	return events
}

// ReleaseAll releases every held key. Hosts call it on teardown.
func (a *Adapter) ReleaseAll() []Event {
	events := make([]Event, 0, len(a.held))
	for key, h := range a.held {
		events = append(events, Event{Type: Up, Key: key, Code: h.code})
	}
	a.held = map[string]heldKey{}
	sortEvents(events)
	return events
}

// Held is the number of keys currently considered down.
func (a *Adapter) Held() int {
	return len(a.held)
}

func sortEvents(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].Key < events[j].Key
	})
}
