// Package model defines shared data structures.
package model

import "time"

// Mode selects which feature the shell shows.
type Mode string

// Supported modes.
const (
	ModeKeyboard Mode = "keyboard"
	ModeTyping   Mode = "typing"
)

// Config defines application settings after merging file and flags.
type Config struct {
	Mode         Mode
	Duration     int
	Vocab        string
	WordsFile    string
	Theme        string
	ReleaseAfter time.Duration
	Log          LogConfig
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// TestResult captures a finished typing test.
type TestResult struct {
	ID            string
	FinishedAt    time.Time
	Duration      int
	Vocab         string
	WPM           int
	Accuracy      int
	Errors        int
	WordsTyped    int
	CorrectChars  int
	TotalChars    int
	ElapsedMs     int64
	TimeRemaining int
	EndedEarly    bool
}

// HistoryFilter narrows run history queries.
type HistoryFilter struct {
	Vocab    string
	Duration int
	Limit    int
}
