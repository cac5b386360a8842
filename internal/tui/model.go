// Package tui provides the Bubble Tea shell for the keyboard tester and the
// typing test.
package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/keytest/internal/generator"
	"github.com/verte-zerg/keytest/internal/model"
	"github.com/verte-zerg/keytest/internal/typing"
	"github.com/verte-zerg/keytest/internal/wordlist"
)

// Options wires the shell to its collaborators. Zero fields get defaults.
type Options struct {
	Config       model.Config
	Vocabularies []wordlist.Vocabulary
	Generator    *generator.Generator
	History      History
	Logger       *zap.Logger
	Clock        func() time.Time
	Clipboard    func(string) error
}

// Model is the root Bubble Tea model. It shows one feature at a time.
type Model struct {
	opts  Options
	keys  keyMap
	help  help.Model
	theme Theme
	mode  model.Mode
	log   *zap.Logger

	history  *historyPanel
	keyboard *keyboardView
	typing   *typingView

	width  int
	height int
}

// NewModel constructs the shell.
func NewModel(opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Generator == nil {
		opts.Generator = generator.New()
	}
	if len(opts.Vocabularies) == 0 {
		for _, name := range wordlist.Names() {
			if v, err := wordlist.Builtin(name); err == nil {
				opts.Vocabularies = append(opts.Vocabularies, v)
			}
		}
	}
	mode := opts.Config.Mode
	if mode != model.ModeTyping {
		mode = model.ModeKeyboard
	}
	m := &Model{
		opts:  opts,
		keys:  defaultKeyMap(),
		help:  help.New(),
		theme: ThemeFor(opts.Config.Theme),
		mode:  mode,
		log:   opts.Logger.Named("tui"),
	}
	m.history = newHistoryPanel(opts.History, m.log)
	m.mountMode()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil
	case countdownTickMsg:
		if m.typing == nil {
			return m, nil
		}
		return m, m.typing.handleTick(msg)
	case releaseTickMsg:
		if m.keyboard == nil {
			return m, nil
		}
		return m, m.keyboard.handleRelease(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unmountMode()
		m.log.Debug("quit")
		return m, tea.Quit
	case key.Matches(msg, m.keys.SwitchMode):
		m.unmountMode()
		if m.mode == model.ModeKeyboard {
			m.mode = model.ModeTyping
		} else {
			m.mode = model.ModeKeyboard
		}
		m.mountMode()
		m.log.Debug("mode switched", zap.String("mode", string(m.mode)))
		return m, nil
	case key.Matches(msg, m.keys.ToggleTheme):
		m.theme = m.theme.toggled()
		return m, nil
	}

	if m.keyboard != nil {
		if key.Matches(msg, m.keys.ClearLog) {
			m.keyboard.clearLog()
			return m, nil
		}
		return m, m.keyboard.handleKey(msg)
	}
	if m.typing != nil {
		return m, m.typing.handleKey(msg)
	}
	return m, nil
}

// mountMode creates fresh state for the active feature.
func (m *Model) mountMode() {
	switch m.mode {
	case model.ModeTyping:
		m.typing = newTypingView(m.keys, m.opts.Config, m.opts.Vocabularies, m.opts.Generator, m.history, m.opts.Clipboard, m.opts.Clock, m.log)
	default:
		m.keyboard = newKeyboardView(m.opts.Config.ReleaseAfter, m.opts.Clock, m.log)
	}
	m.resize()
}

// unmountMode stops timers owned by the active feature and drops its state.
func (m *Model) unmountMode() {
	if m.typing != nil {
		m.typing.teardown()
		m.typing = nil
	}
	if m.keyboard != nil {
		m.keyboard.teardown()
		m.keyboard = nil
	}
}

func (m *Model) resize() {
	width := m.contentWidth()
	if m.keyboard != nil {
		m.keyboard.setSize(width)
	}
	if m.typing != nil {
		m.typing.setSize(width)
	}
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	return max(1, min(m.width-2, 100))
}

// Mode returns the feature currently shown.
func (m *Model) Mode() model.Mode {
	return m.mode
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	phase := typing.PhaseIdle
	switch {
	case m.keyboard != nil:
		body = m.keyboard.view(m.theme)
	case m.typing != nil:
		body = m.typing.view(m.theme)
		phase = m.typing.engine.Phase()
	}
	footer := m.help.View(helpKeys(m.keys.bindings(m.mode, phase)))
	content := lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), "", body, "", footer)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
}

func (m *Model) renderHeader() string {
	tabs := []struct {
		mode  model.Mode
		label string
	}{
		{model.ModeKeyboard, "Keyboard Tester"},
		{model.ModeTyping, "Typing Test"},
	}
	parts := []string{m.theme.Title.Render("keytest"), "  "}
	for _, tab := range tabs {
		style := m.theme.InactiveTab
		if tab.mode == m.mode {
			style = m.theme.ActiveTab
		}
		parts = append(parts, style.Render(tab.label))
	}
	parts = append(parts, "  ", m.theme.Muted.Render("theme: "+m.theme.Name))
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
