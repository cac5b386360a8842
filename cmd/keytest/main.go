// Package main provides the CLI entrypoint for keytest.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/keytest/internal/config"
	"github.com/verte-zerg/keytest/internal/generator"
	"github.com/verte-zerg/keytest/internal/keyboard"
	"github.com/verte-zerg/keytest/internal/logging"
	"github.com/verte-zerg/keytest/internal/model"
	"github.com/verte-zerg/keytest/internal/store"
	"github.com/verte-zerg/keytest/internal/tui"
	"github.com/verte-zerg/keytest/internal/wordlist"
)

const (
	defaultMode     = string(model.ModeKeyboard)
	defaultDuration = 60
	defaultVocab    = wordlist.VocabCommon
	defaultTheme    = tui.ThemeDark
	defaultLogLevel = "info"
)

var (
	runMode         string
	runDuration     int
	runVocab        string
	runWordsFile    string
	runTheme        string
	runReleaseAfter time.Duration
	runLogLevel     string
	runLogFile      string

	generateDuration  int
	generateVocab     string
	generateWordsFile string
	generateSeed      int64
	generateWidth     int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "keytest",
		Short:         "Keyboard tester and typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRootCmd,
	}

	rootCmd.Flags().StringVar(&runMode, "mode", defaultMode, "start in mode: keyboard or typing")
	rootCmd.Flags().IntVar(&runDuration, "duration", defaultDuration, "typing test length in seconds (15, 30, 60, 120, 300)")
	rootCmd.Flags().StringVar(&runVocab, "vocab", defaultVocab, "vocabulary: common, quotes or custom")
	rootCmd.Flags().StringVar(&runWordsFile, "words-file", "", "word list file for the custom vocabulary")
	rootCmd.Flags().StringVar(&runTheme, "theme", defaultTheme, "color theme: dark or light")
	rootCmd.Flags().DurationVar(&runReleaseAfter, "release-after", keyboard.DefaultReleaseAfter, "treat a key as released after this long without a repeat")
	rootCmd.Flags().StringVar(&runLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&runLogFile, "log-file", config.DefaultLogPath(), "log file path, empty to disable")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVocabsCmd())
	rootCmd.AddCommand(newGenerateCmd())

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := mergeRootConfig(cmd, fileCfg)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	vocabs, err := loadVocabularies(cfg.WordsFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, nil)
	if err != nil {
		return err
	}
	defer func() {
		// Sync on a closed or non-file sink may fail; nothing to recover.
		_ = logger.Sync()
	}()

	history, err := store.OpenMemory(logger)
	if err != nil {
		return fmt.Errorf("failed to open run history: %w", err)
	}
	defer func() {
		if cerr := history.Close(); cerr != nil {
			logErrf("failed to close run history: %v\n", cerr)
		}
	}()

	logger.Info("starting",
		zap.String("mode", string(cfg.Mode)),
		zap.Int("duration", cfg.Duration),
		zap.String("vocab", cfg.Vocab),
	)
	m := tui.NewModel(tui.Options{
		Config:       cfg,
		Vocabularies: vocabs,
		Generator:    generator.New(),
		History:      history,
		Logger:       logger,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return printSessionReport(cmd.Context(), cmd.OutOrStdout(), history)
}

// mergeRootConfig applies file values to flags the user did not set.
func mergeRootConfig(cmd *cobra.Command, fileCfg config.FileConfig) (model.Config, error) {
	applyStringConfig(cmd, "mode", &runMode, fileCfg.UI.Mode)
	applyIntConfig(cmd, "duration", &runDuration, fileCfg.Test.Duration)
	applyStringConfig(cmd, "vocab", &runVocab, fileCfg.Test.Vocab)
	applyStringConfig(cmd, "words-file", &runWordsFile, fileCfg.Test.WordsFile)
	applyStringConfig(cmd, "theme", &runTheme, fileCfg.UI.Theme)
	if err := applyDurationConfig(cmd, "release-after", &runReleaseAfter, fileCfg.UI.ReleaseAfter); err != nil {
		return model.Config{}, err
	}
	applyStringConfig(cmd, "log-level", &runLogLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-file", &runLogFile, fileCfg.Log.File)

	cfg := model.Config{
		Mode:         model.Mode(strings.ToLower(runMode)),
		Duration:     runDuration,
		Vocab:        strings.ToLower(runVocab),
		WordsFile:    expandHome(runWordsFile),
		Theme:        strings.ToLower(runTheme),
		ReleaseAfter: runReleaseAfter,
		Log: model.LogConfig{
			Level: runLogLevel,
			File:  expandHome(runLogFile),
		},
	}
	if fileCfg.Log.MaxSizeMB != nil {
		cfg.Log.MaxSizeMB = *fileCfg.Log.MaxSizeMB
	}
	if fileCfg.Log.MaxBackups != nil {
		cfg.Log.MaxBackups = *fileCfg.Log.MaxBackups
	}
	return cfg, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeConfigTemplate creates path with the commented template unless it
// already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func newVocabsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vocabs",
		Short: "List built-in vocabularies",
		Args:  cobra.NoArgs,
		RunE:  runVocabsCmd,
	}
}

func runVocabsCmd(cmd *cobra.Command, _ []string) error {
	for _, name := range wordlist.Names() {
		vocab, err := wordlist.Builtin(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-14s %d words\n", vocab.Name, vocab.Title, len(vocab.Words)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-14s use --words-file\n", wordlist.VocabCustom, "Custom Words"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target *time.Duration, value *string) error {
	if value == nil {
		return nil
	}
	if cmd.Flags().Changed(name) {
		return nil
	}
	parsed, err := time.ParseDuration(*value)
	if err != nil {
		return fmt.Errorf("invalid %s in config: %w", name, err)
	}
	*target = parsed
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# keytest configuration
# Uncomment a value to enable it. CLI flags override config values.

[test]
# duration = %d           # Test length in seconds: 15, 30, 60, 120 or 300
# vocab = %q        # common, quotes or custom
# words-file = ""         # Word list for the custom vocabulary

[ui]
# mode = %q       # Start in keyboard or typing mode
# theme = %q          # dark or light
# release-after = %q   # Key release window for terminals without key-up events

[log]
# level = %q          # debug, info, warn or error
# file = ""               # Log file (default under $XDG_STATE_HOME/keytest)
# max-size-mb = 5         # Rotate after this many megabytes
# max-backups = 3         # Rotated files to keep
`,
		defaultDuration,
		defaultVocab,
		defaultMode,
		defaultTheme,
		keyboard.DefaultReleaseAfter.String(),
		defaultLogLevel,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Mode != model.ModeKeyboard && cfg.Mode != model.ModeTyping {
		return fmt.Errorf("--mode must be keyboard or typing")
	}
	if !slices.Contains(tui.Durations, cfg.Duration) {
		return fmt.Errorf("--duration must be one of %s", joinInts(tui.Durations))
	}
	if cfg.Theme != tui.ThemeDark && cfg.Theme != tui.ThemeLight {
		return fmt.Errorf("--theme must be dark or light")
	}
	if cfg.ReleaseAfter <= 0 {
		return fmt.Errorf("--release-after must be > 0")
	}
	return validateVocab(cfg.Vocab, cfg.WordsFile)
}

func validateVocab(vocab, wordsFile string) error {
	if vocab == wordlist.VocabCustom {
		if wordsFile == "" {
			return fmt.Errorf("--vocab custom requires --words-file")
		}
		return nil
	}
	if _, err := wordlist.Builtin(vocab); err != nil {
		return err
	}
	return nil
}

// loadVocabularies returns the built-ins followed by the custom list when a
// words file is configured.
func loadVocabularies(wordsFile string) ([]wordlist.Vocabulary, error) {
	var vocabs []wordlist.Vocabulary
	for _, name := range wordlist.Names() {
		vocab, err := wordlist.Builtin(name)
		if err != nil {
			return nil, err
		}
		vocabs = append(vocabs, vocab)
	}
	if wordsFile == "" {
		return vocabs, nil
	}
	words, err := wordlist.LoadWords(wordsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %s: %w", wordsFile, err)
	}
	return append(vocabs, wordlist.Custom(words)), nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
