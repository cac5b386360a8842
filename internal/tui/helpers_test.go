package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/keytest/internal/generator"
	"github.com/verte-zerg/keytest/internal/model"
	"github.com/verte-zerg/keytest/internal/wordlist"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 5, 6, 7, 8, 9, 0, time.Local)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type fakeHistory struct {
	results []model.TestResult
	fail    bool
}

func (h *fakeHistory) InsertResult(_ context.Context, r model.TestResult) (model.TestResult, error) {
	if h.fail {
		return model.TestResult{}, errors.New("disk on fire")
	}
	h.results = append(h.results, r)
	return r, nil
}

func (h *fakeHistory) ListResults(context.Context, model.HistoryFilter) ([]model.TestResult, error) {
	return h.results, nil
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) Write(s string) error {
	if c.err != nil {
		return c.err
	}
	c.text = s
	return nil
}

type harness struct {
	m       *Model
	clock   *fakeClock
	history *fakeHistory
	clip    *fakeClipboard
}

func newHarness(mode model.Mode, words ...string) *harness {
	if len(words) == 0 {
		words = []string{"cat"}
	}
	h := &harness{clock: newFakeClock(), history: &fakeHistory{}, clip: &fakeClipboard{}}
	h.m = NewModel(Options{
		Config: model.Config{
			Mode:         mode,
			Duration:     15,
			Vocab:        wordlist.VocabCustom,
			Theme:        ThemeDark,
			ReleaseAfter: 200 * time.Millisecond,
		},
		Vocabularies: []wordlist.Vocabulary{wordlist.Custom(words)},
		Generator:    generator.NewWithSeed(1),
		History:      h.history,
		Clock:        h.clock.Now,
		Clipboard:    h.clip.Write,
	})
	h.m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	_, cmd := h.m.Update(msg)
	return cmd
}

func (h *harness) key(s string) tea.Cmd {
	return h.send(keyMsg(s))
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.send(keyMsg(string(r)))
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
