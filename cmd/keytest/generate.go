package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/keytest/internal/config"
	"github.com/verte-zerg/keytest/internal/generator"
	"github.com/verte-zerg/keytest/internal/wordlist"
)

const fallbackWidth = 80

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a practice text",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	cmd.Flags().IntVar(&generateDuration, "duration", defaultDuration, "test length in seconds the text is sized for")
	cmd.Flags().StringVar(&generateVocab, "vocab", defaultVocab, "vocabulary: common, quotes or custom")
	cmd.Flags().StringVar(&generateWordsFile, "words-file", "", "word list file for the custom vocabulary")
	cmd.Flags().Int64Var(&generateSeed, "seed", 0, "random seed, 0 for a random text")
	cmd.Flags().IntVar(&generateWidth, "width", 0, "wrap width, 0 for the terminal width")
	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "duration", &generateDuration, fileCfg.Test.Duration)
	applyStringConfig(cmd, "vocab", &generateVocab, fileCfg.Test.Vocab)
	applyStringConfig(cmd, "words-file", &generateWordsFile, fileCfg.Test.WordsFile)

	if generateDuration <= 0 {
		return fmt.Errorf("--duration must be > 0")
	}
	vocabName := strings.ToLower(generateVocab)
	wordsFile := expandHome(generateWordsFile)
	if err := validateVocab(vocabName, wordsFile); err != nil {
		return err
	}
	words, err := vocabularyWords(vocabName, wordsFile)
	if err != nil {
		return err
	}

	gen := generator.New()
	if generateSeed != 0 {
		gen = generator.NewWithSeed(generateSeed)
	}
	text, err := gen.Generate(generateDuration, words)
	if err != nil {
		return fmt.Errorf("failed to generate text: %w", err)
	}

	width := generateWidth
	if width <= 0 {
		width = outputWidth(cmd.OutOrStdout())
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), wrapText(text, width)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func vocabularyWords(name, wordsFile string) ([]string, error) {
	if name == wordlist.VocabCustom {
		words, err := wordlist.LoadWords(wordsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load word list %s: %w", wordsFile, err)
		}
		return words, nil
	}
	vocab, err := wordlist.Builtin(name)
	if err != nil {
		return nil, err
	}
	return vocab.Words, nil
}

// outputWidth is the terminal width when w is a terminal.
func outputWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

// wrapText greedily fills lines of at most width cells. Words wider than
// width stand on their own line.
func wrapText(text string, width int) string {
	var b strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+w > width {
			b.WriteByte('\n')
			lineWidth = 0
		}
		if lineWidth > 0 {
			b.WriteByte(' ')
			lineWidth++
		}
		b.WriteString(word)
		lineWidth += w
	}
	return b.String()
}
