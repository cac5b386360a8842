package typing

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	// ErrInvalidDuration is returned by Start for a non-positive duration.
	ErrInvalidDuration = errors.New("duration must be greater than 0")
	// ErrEmptyText is returned by Start when the text has no words.
	ErrEmptyText = errors.New("text must not be empty")
)

// Engine is the word-commit typing test. It is not safe for concurrent use;
// the host delivers inputs and ticks from a single event loop.
//
// Accounting: characters are only counted when a word is committed with a
// trailing space. A committed word adds len(target)+1 to the total and, when
// it matches exactly, the same amount to the correct count. The in-progress
// word never affects accuracy or WPM.
type Engine struct {
	now func() time.Time

	phase     Phase
	state     State
	words     []string
	index     int
	input     string
	completed []WordRecord
	endedAt   time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New returns an idle engine.
func New(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	e.state = freshState(0)
	return e
}

// Start prepares a test over text lasting duration seconds. The countdown
// does not run until the first accepted keystroke.
func (e *Engine) Start(duration int, text string) error {
	if duration <= 0 {
		return ErrInvalidDuration
	}
	words := splitWords(text)
	if len(words) == 0 {
		return ErrEmptyText
	}
	e.words = words
	e.index = 0
	e.input = ""
	e.completed = nil
	e.endedAt = time.Time{}
	e.state = freshState(duration)
	e.phase = PhaseActive
	return nil
}

func splitWords(text string) []string {
	parts := strings.Split(strings.TrimSpace(text), " ")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}

// OnInput feeds the current value of the input field. Outside the active
// phase it does nothing.
func (e *Engine) OnInput(raw string) InputResult {
	if e.phase != PhaseActive {
		return InputResult{}
	}
	res := InputResult{Accepted: true}
	if !e.state.Started && raw != "" {
		e.state.Started = true
		e.state.StartedAt = e.now()
		res.Started = true
	}

	if !strings.HasSuffix(raw, " ") {
		e.input = raw
		if e.state.Started {
			e.state.WPM = WPM(e.state.CorrectChars, e.elapsed(), e.state.WPM)
		}
		return res
	}

	typed := strings.TrimSpace(raw)
	target := e.words[e.index]
	record := WordRecord{Word: typed, Correct: typed == target}
	e.completed = append(e.completed, record)
	e.index++
	e.input = ""

	chars := utf8.RuneCountInString(target) + 1
	e.state.TotalChars += chars
	if record.Correct {
		e.state.CorrectChars += chars
	} else {
		e.state.Errors++
	}
	e.state.Accuracy = Accuracy(e.state.CorrectChars, e.state.TotalChars)
	e.state.WPM = WPM(e.state.CorrectChars, e.elapsed(), e.state.WPM)

	res.Committed = true
	res.Record = record
	if e.index >= len(e.words) {
		e.finish()
		res.Finished = true
	}
	return res
}

// Tick advances the countdown by one second. It is ignored unless the test
// is active and started. It reports whether this tick finished the test.
func (e *Engine) Tick() bool {
	if e.phase != PhaseActive || !e.state.Started {
		return false
	}
	e.state.TimeRemaining--
	if e.state.TimeRemaining > 0 {
		return false
	}
	e.state.TimeRemaining = 0
	e.finish()
	return true
}

// Reset returns to idle. The duration is kept; words and records are cleared.
func (e *Engine) Reset() {
	e.state = freshState(e.state.Duration)
	e.words = nil
	e.index = 0
	e.input = ""
	e.completed = nil
	e.endedAt = time.Time{}
	e.phase = PhaseIdle
}

func (e *Engine) finish() {
	e.phase = PhaseFinished
	e.endedAt = e.now()
	e.input = ""
	e.state.FinalWPM = e.state.WPM
	e.state.FinalAccuracy = e.state.Accuracy
}

func (e *Engine) elapsed() time.Duration {
	if !e.state.Started {
		return 0
	}
	if !e.endedAt.IsZero() {
		return e.endedAt.Sub(e.state.StartedAt)
	}
	return e.now().Sub(e.state.StartedAt)
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// State returns a snapshot of the metrics.
func (e *Engine) State() State {
	return e.state
}

// Words returns a copy of the word sequence.
func (e *Engine) Words() []string {
	return append([]string(nil), e.words...)
}

// CurrentIndex is the position of the word being typed.
func (e *Engine) CurrentIndex() int {
	return e.index
}

// CurrentWord returns the target word being typed, if any.
func (e *Engine) CurrentWord() (string, bool) {
	if e.index >= len(e.words) {
		return "", false
	}
	return e.words[e.index], true
}

// CurrentInput is the uncommitted buffer.
func (e *Engine) CurrentInput() string {
	return e.input
}

// CurrentWordMismatch reports whether the buffer has already diverged from
// the target word.
func (e *Engine) CurrentWordMismatch() bool {
	word, ok := e.CurrentWord()
	return ok && e.input != "" && !strings.HasPrefix(word, e.input)
}

// Completed returns a copy of the committed word records.
func (e *Engine) Completed() []WordRecord {
	return append([]WordRecord(nil), e.completed...)
}

// Result summarizes a finished test. ok is false before the test finishes.
func (e *Engine) Result() (Result, bool) {
	if e.phase != PhaseFinished {
		return Result{}, false
	}
	return Result{
		Duration:      e.state.Duration,
		WPM:           e.state.FinalWPM,
		Accuracy:      e.state.FinalAccuracy,
		Errors:        e.state.Errors,
		WordsTyped:    len(e.completed),
		CorrectChars:  e.state.CorrectChars,
		TotalChars:    e.state.TotalChars,
		Elapsed:       e.elapsed(),
		TimeRemaining: e.state.TimeRemaining,
	}, true
}
