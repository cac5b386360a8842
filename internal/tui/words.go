package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/keytest/internal/typing"
)

// upcomingWords is how many words after the current one are shown.
const upcomingWords = 5

type styledSegment struct {
	s       string
	width   int
	isSpace bool
}

func wordSegment(word string, style func(...string) string) styledSegment {
	return styledSegment{s: style(word), width: runewidth.StringWidth(word)}
}

var spaceSegment = styledSegment{s: " ", width: 1, isSpace: true}

// buildWordSegments lays out committed words, the current target and the
// next few targets, separated by space segments.
func buildWordSegments(theme Theme, completed []typing.WordRecord, words []string, index int, mismatch bool) []styledSegment {
	out := make([]styledSegment, 0, 2*(len(completed)+upcomingWords+1))
	add := func(seg styledSegment) {
		if len(out) > 0 {
			out = append(out, spaceSegment)
		}
		out = append(out, seg)
	}
	for _, rec := range completed {
		style := theme.Correct.Render
		if !rec.Correct {
			style = theme.Incorrect.Render
		}
		word := rec.Word
		if word == "" {
			word = "·"
		}
		add(wordSegment(word, style))
	}
	if index < len(words) {
		style := theme.Current.Render
		if mismatch {
			style = theme.CurrentWrong.Render
		}
		add(wordSegment(words[index], style))
	}
	end := min(len(words), index+1+upcomingWords)
	for i := index + 1; i < end; i++ {
		add(wordSegment(words[i], theme.Pending.Render))
	}
	return out
}

func renderSegments(segs []styledSegment) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.s)
	}
	return b.String()
}

// wrapSegments breaks segments into lines no wider than width, breaking at
// space segments where possible. A single segment wider than width gets a
// line of its own.
func wrapSegments(segs []styledSegment, width int) []string {
	if width <= 0 {
		return []string{renderSegments(segs)}
	}
	var lines []string
	line := make([]styledSegment, 0, len(segs))
	lineWidth := 0

	flush := func() {
		for len(line) > 0 && line[len(line)-1].isSpace {
			line = line[:len(line)-1]
		}
		lines = append(lines, renderSegments(line))
		line = line[:0]
		lineWidth = 0
	}
	for _, seg := range segs {
		if seg.isSpace && len(line) == 0 {
			continue
		}
		if lineWidth+seg.width > width && len(line) > 0 && !seg.isSpace {
			flush()
		}
		line = append(line, seg)
		lineWidth += seg.width
	}
	if len(line) > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// tailLines keeps the last n lines so the current word stays visible.
func tailLines(lines []string, n int) []string {
	if n <= 0 || len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
