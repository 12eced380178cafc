// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
)

// DefaultWordCount is used when words mode has no explicit count.
const DefaultWordCount = 30

// Mode selects how a session is bounded and therefore how it ends.
type Mode int

// Session modes.
const (
	ModeTimed Mode = iota
	ModeWords
	ModeQuote
)

// String returns the flag/config spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeTimed:
		return "time"
	case ModeWords:
		return "words"
	case ModeQuote:
		return "quote"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps a flag or config value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "time", "timed":
		return ModeTimed, nil
	case "words", "word":
		return ModeWords, nil
	case "quote":
		return ModeQuote, nil
	}
	return 0, fmt.Errorf("unknown mode %q (expected time, words, or quote)", s)
}

// Difficulty restricts the word pool by token length.
type Difficulty int

// Difficulty tiers.
const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// String returns the flag/config spelling of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty maps a flag or config value to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q (expected easy, medium, or hard)", s)
}

// MaxTokenLen returns the longest token length (in runes) the difficulty
// allows. The second return is false when every token is allowed.
func (d Difficulty) MaxTokenLen() (int, bool) {
	switch d {
	case DifficultyEasy:
		return 5, true
	case DifficultyMedium:
		return 8, true
	}
	return 0, false
}

// Config defines one typing session.
type Config struct {
	Mode            Mode
	DurationSeconds int // time mode only
	WordCount       int // words mode only
	Difficulty      Difficulty
}

// TargetWordCount returns the configured word count, or DefaultWordCount
// when none is set.
func (c Config) TargetWordCount() int {
	if c.WordCount > 0 {
		return c.WordCount
	}
	return DefaultWordCount
}

// Validate checks that exactly the limit matching the mode is set.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeTimed:
		if c.DurationSeconds <= 0 {
			return fmt.Errorf("time mode requires a positive duration")
		}
		if c.WordCount != 0 {
			return fmt.Errorf("word count does not apply to time mode")
		}
	case ModeWords:
		if c.WordCount <= 0 {
			return fmt.Errorf("words mode requires a positive word count")
		}
		if c.DurationSeconds != 0 {
			return fmt.Errorf("duration does not apply to words mode")
		}
	case ModeQuote:
		if c.DurationSeconds != 0 || c.WordCount != 0 {
			return fmt.Errorf("quote mode takes no duration or word count")
		}
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	return nil
}

// Quote is one quotation with its attribution.
type Quote struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}
