package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/keytest/internal/generator"
	"github.com/verte-zerg/keytest/internal/model"
	"github.com/verte-zerg/keytest/internal/typing"
	"github.com/verte-zerg/keytest/internal/wordlist"
)

// Durations are the selectable test lengths in seconds.
var Durations = []int{15, 30, 60, 120, 300}

const (
	defaultDuration = 60
	wordLines       = 4
	progressWidth   = 40
)

var (
	speedIcons = map[string]string{"Expert": "🚀", "Intermediate": "⭐", "Beginner": "🌱"}
	accIcons   = map[string]string{"Perfect": "🎯", "Great": "✨", "Improving": "📈"}
	badgeIcons = map[string]string{"Typing Master!": "🏆", "Well Done!": "⭐"}
)

// History records finished tests and lists them back.
type History interface {
	InsertResult(ctx context.Context, r model.TestResult) (model.TestResult, error)
	ListResults(ctx context.Context, filter model.HistoryFilter) ([]model.TestResult, error)
}

type typingView struct {
	keys      keyMap
	engine    *typing.Engine
	gen       *generator.Generator
	vocabs    []wordlist.Vocabulary
	vocabIdx  int
	durIdx    int
	input     textinput.Model
	countdown countdown
	history   *historyPanel
	clipboard func(string) error
	now       func() time.Time
	log       *zap.Logger

	vocabName string
	status    string
	statusErr bool
	width     int
}

func newTypingView(keys keyMap, cfg model.Config, vocabs []wordlist.Vocabulary, gen *generator.Generator, history *historyPanel, clipboard func(string) error, now func() time.Time, log *zap.Logger) *typingView {
	input := textinput.New()
	input.Prompt = "› "
	input.CharLimit = 64
	input.Width = 30

	v := &typingView{
		keys:      keys,
		engine:    typing.New(typing.WithClock(now)),
		gen:       gen,
		vocabs:    vocabs,
		durIdx:    durationIndex(cfg.Duration),
		input:     input,
		countdown: newCountdown(),
		history:   history,
		clipboard: clipboard,
		now:       now,
		log:       log.Named("typing"),
	}
	for i, vocab := range vocabs {
		if vocab.Name == cfg.Vocab {
			v.vocabIdx = i
		}
	}
	v.engine.Reset()
	return v
}

func durationIndex(seconds int) int {
	fallback := 0
	for i, d := range Durations {
		if d == seconds {
			return i
		}
		if d == defaultDuration {
			fallback = i
		}
	}
	return fallback
}

func (v *typingView) duration() int {
	return Durations[v.durIdx]
}

func (v *typingView) vocab() wordlist.Vocabulary {
	if len(v.vocabs) == 0 {
		return wordlist.Vocabulary{}
	}
	return v.vocabs[v.vocabIdx]
}

func (v *typingView) setSize(width int) {
	v.width = width
	v.history.setWidth(width)
}

func (v *typingView) setStatus(msg string, isErr bool) {
	v.status = msg
	v.statusErr = isErr
}

func (v *typingView) handleKey(msg tea.KeyMsg) tea.Cmd {
	v.status = ""
	switch v.engine.Phase() {
	case typing.PhaseIdle:
		return v.handleIdleKey(msg)
	case typing.PhaseActive:
		return v.handleActiveKey(msg)
	case typing.PhaseFinished:
		return v.handleFinishedKey(msg)
	}
	return nil
}

func (v *typingView) handleIdleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Start):
		return v.begin()
	case key.Matches(msg, v.keys.PrevDuration):
		v.durIdx = max(0, v.durIdx-1)
	case key.Matches(msg, v.keys.NextDuration):
		v.durIdx = min(len(Durations)-1, v.durIdx+1)
	case key.Matches(msg, v.keys.PrevVocab):
		if len(v.vocabs) > 0 {
			v.vocabIdx = (v.vocabIdx + len(v.vocabs) - 1) % len(v.vocabs)
		}
	case key.Matches(msg, v.keys.NextVocab):
		if len(v.vocabs) > 0 {
			v.vocabIdx = (v.vocabIdx + 1) % len(v.vocabs)
		}
	case key.Matches(msg, v.keys.History):
		v.history.toggle()
	}
	return nil
}

func (v *typingView) handleActiveKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, v.keys.Reset) {
		v.reset()
		return nil
	}
	var cmds []tea.Cmd
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	cmds = append(cmds, cmd)

	res := v.engine.OnInput(v.input.Value())
	if res.Started {
		v.log.Debug("countdown started", zap.Int("duration", v.engine.State().Duration))
		cmds = append(cmds, v.countdown.Start())
	}
	if res.Committed {
		v.input.SetValue("")
		v.input.Placeholder = v.placeholder()
	}
	if res.Finished {
		v.finish()
	}
	return tea.Batch(cmds...)
}

func (v *typingView) handleFinishedKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Again), key.Matches(msg, v.keys.Reset):
		v.reset()
	case key.Matches(msg, v.keys.Copy):
		v.copyResult()
	case key.Matches(msg, v.keys.History):
		v.history.toggle()
	}
	return nil
}

func (v *typingView) handleTick(msg countdownTickMsg) tea.Cmd {
	if !v.countdown.Accept(msg) {
		return nil
	}
	if v.engine.Tick() {
		v.finish()
		return nil
	}
	return v.countdown.Next()
}

func (v *typingView) begin() tea.Cmd {
	vocab := v.vocab()
	text, err := v.gen.Generate(v.duration(), vocab.Words)
	if err != nil {
		v.log.Warn("generate text", zap.String("vocab", vocab.Name), zap.Error(err))
		v.setStatus(fmt.Sprintf("Cannot start: %v", err), true)
		return nil
	}
	if err := v.engine.Start(v.duration(), text); err != nil {
		v.log.Warn("start test", zap.Error(err))
		v.setStatus(fmt.Sprintf("Cannot start: %v", err), true)
		return nil
	}
	v.vocabName = vocab.Name
	v.log.Info("test ready",
		zap.Int("duration", v.duration()),
		zap.String("vocab", vocab.Name),
		zap.Int("words", len(v.engine.Words())),
	)
	v.input.Reset()
	v.input.Placeholder = v.placeholder()
	return v.input.Focus()
}

func (v *typingView) placeholder() string {
	word, ok := v.engine.CurrentWord()
	if !ok {
		return ""
	}
	return "Type: " + word
}

// reset stops the countdown and returns the engine to idle.
func (v *typingView) reset() {
	v.countdown.Stop()
	v.engine.Reset()
	v.input.Blur()
	v.input.Reset()
}

// teardown runs when the view is left.
func (v *typingView) teardown() {
	v.reset()
	v.status = ""
}

func (v *typingView) finish() {
	v.countdown.Stop()
	v.input.Blur()
	v.input.Reset()
	res, ok := v.engine.Result()
	if !ok {
		return
	}
	v.log.Info("test finished",
		zap.Int("wpm", res.WPM),
		zap.Int("accuracy", res.Accuracy),
		zap.Int("errors", res.Errors),
		zap.Int("words", res.WordsTyped),
		zap.Bool("ended_early", res.EndedEarly()),
	)
	record := model.TestResult{
		FinishedAt:    v.now(),
		Duration:      res.Duration,
		Vocab:         v.vocabName,
		WPM:           res.WPM,
		Accuracy:      res.Accuracy,
		Errors:        res.Errors,
		WordsTyped:    res.WordsTyped,
		CorrectChars:  res.CorrectChars,
		TotalChars:    res.TotalChars,
		ElapsedMs:     res.Elapsed.Milliseconds(),
		TimeRemaining: res.TimeRemaining,
		EndedEarly:    res.EndedEarly(),
	}
	if err := v.history.record(record); err != nil {
		v.setStatus("Could not save this run to history.", true)
	}
}

func (v *typingView) copyResult() {
	res, ok := v.engine.Result()
	if !ok {
		return
	}
	if err := v.clipboard(typing.ShareText(res)); err != nil {
		v.log.Warn("copy result", zap.Error(err))
		v.setStatus("Clipboard unavailable.", true)
		return
	}
	v.setStatus("Results copied to clipboard!", false)
}

func durationLabel(seconds int) string {
	switch {
	case seconds%60 != 0:
		return fmt.Sprintf("%d seconds", seconds)
	case seconds == 60:
		return "1 minute"
	default:
		return fmt.Sprintf("%d minutes", seconds/60)
	}
}

func (v *typingView) view(theme Theme) string {
	sections := []string{
		theme.Title.Render("Typing Speed Test"),
		theme.Muted.Render("Type each word and press Space to move to the next. No going back!"),
		"",
	}
	phase := v.engine.Phase()
	if phase == typing.PhaseIdle {
		sections = append(sections, v.renderControls(theme), "")
	} else {
		sections = append(sections, v.renderWords(theme), "")
	}
	if phase == typing.PhaseActive {
		sections = append(sections, v.input.View(), "")
	}
	sections = append(sections, v.renderStats(theme), v.renderProgress(theme))
	if phase == typing.PhaseFinished {
		sections = append(sections, "", v.renderResults(theme))
	}
	if v.history.visible() {
		sections = append(sections, "", v.history.view(theme))
	}
	if v.status != "" {
		style := theme.Success
		if v.statusErr {
			style = theme.Error
		}
		sections = append(sections, "", style.Render(v.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *typingView) renderControls(theme Theme) string {
	title := v.vocab().Title
	if title == "" {
		title = "none"
	}
	duration := fmt.Sprintf("Duration: ‹ %s ›", durationLabel(v.duration()))
	text := fmt.Sprintf("Text: ‹ %s ›", title)
	return theme.Text.Render(duration) + "    " + theme.Text.Render(text) + "\n" +
		theme.Muted.Render("Press enter to start. The timer begins with your first keystroke.")
}

func (v *typingView) renderWords(theme Theme) string {
	segs := buildWordSegments(theme, v.engine.Completed(), v.engine.Words(), v.engine.CurrentIndex(), v.engine.CurrentWordMismatch())
	width := v.width - 4
	if width <= 0 {
		width = 72
	}
	lines := tailLines(wrapSegments(segs, width), wordLines)
	return strings.Join(lines, "\n")
}

func (v *typingView) renderStats(theme Theme) string {
	st := v.engine.State()
	wpm, acc := st.WPM, st.Accuracy
	if v.engine.Phase() == typing.PhaseFinished {
		wpm, acc = st.FinalWPM, st.FinalAccuracy
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard(theme, "Time", typing.FormatClock(st.TimeRemaining)),
		metricCard(theme, "WPM", fmt.Sprintf("%d", wpm)),
		metricCard(theme, "Accuracy", fmt.Sprintf("%d%%", acc)),
		metricCard(theme, typing.Plural(st.Errors, "Error", "Errors"), fmt.Sprintf("%d", st.Errors)),
	)
}

func metricCard(theme Theme, label, value string) string {
	content := fmt.Sprintf("%s\n%s", theme.CardTitle.Render(label), theme.CardValue.Render(value))
	return theme.Card.Render(content)
}

func (v *typingView) renderProgress(theme Theme) string {
	st := v.engine.State()
	frac := 0.0
	if st.Duration > 0 {
		frac = float64(st.Duration-st.TimeRemaining) / float64(st.Duration)
	}
	filled := int(math.Round(frac * progressWidth))
	filled = max(0, min(filled, progressWidth))
	return theme.Title.Render(strings.Repeat("█", filled)) + theme.Muted.Render(strings.Repeat("░", progressWidth-filled))
}

func (v *typingView) renderResults(theme Theme) string {
	res, ok := v.engine.Result()
	if !ok {
		return ""
	}
	rating := typing.Rate(res)
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		resultCard(theme, fmt.Sprintf("%d", res.WPM), "Words Per Minute", speedIcons[rating.Speed]+" "+rating.Speed),
		resultCard(theme, fmt.Sprintf("%d%%", res.Accuracy), "Accuracy", accIcons[rating.Accuracy]+" "+rating.Accuracy),
		resultCard(theme, fmt.Sprintf("%d", res.WordsTyped), "Words Typed",
			fmt.Sprintf("with %d %s", res.Errors, typing.Plural(res.Errors, "error", "errors"))),
	)
	lines := []string{
		theme.Title.Render("🎉 Test Complete! 🎉"),
		theme.Muted.Render(rating.Encouragement),
		"",
		cards,
	}
	if rating.Badge != "" {
		lines = append(lines, "", theme.Badge.Render(badgeIcons[rating.Badge]+" "+rating.Badge))
	}
	return theme.Panel.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func resultCard(theme Theme, value, label, note string) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.CardValue.Render(value),
		theme.CardTitle.Render(label),
		theme.Muted.Render(note),
	)
	return theme.Card.Render(content)
}
