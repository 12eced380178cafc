// Package selector builds the token sequence a session asks the user to type.
package selector

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/termtype/internal/model"
)

// timedPoolSize is the token pool for time mode, large enough that the
// timer expires before the pool runs out.
const timedPoolSize = 300

// Selection failures.
var (
	ErrNoWords  = errors.New("word corpus is empty")
	ErrNoQuotes = errors.New("quote corpus is empty")
	ErrNoTokens = errors.New("no selectable tokens")
)

// Selector samples session tokens from the corpora.
type Selector struct {
	rnd *rand.Rand
}

// New returns a Selector seeded with the current time.
func New() *Selector {
	return &Selector{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeeded returns a Selector with a fixed seed for deterministic selection.
func NewSeeded(seed int64) *Selector {
	return &Selector{rnd: rand.New(rand.NewSource(seed))}
}

// Selection is the chosen token sequence. FilterFallback reports that the
// difficulty filter emptied the pool and the unfiltered corpus was used
// instead; callers decide whether to log it.
type Selection struct {
	Tokens         []string
	FilterFallback bool
}

// Select produces the ordered token sequence for cfg.
func (s *Selector) Select(cfg model.Config, words []string, quotes []model.Quote) (Selection, error) {
	switch cfg.Mode {
	case model.ModeQuote:
		return s.selectQuote(quotes)
	case model.ModeTimed:
		return s.selectWords(words, timedPoolSize, cfg.Difficulty)
	case model.ModeWords:
		return s.selectWords(words, cfg.TargetWordCount(), cfg.Difficulty)
	}
	return Selection{}, fmt.Errorf("unknown mode %q", cfg.Mode)
}

func (s *Selector) selectQuote(quotes []model.Quote) (Selection, error) {
	if len(quotes) == 0 {
		return Selection{}, ErrNoQuotes
	}
	quote := quotes[s.rnd.Intn(len(quotes))]
	tokens := strings.Fields(quote.Text)
	if len(tokens) == 0 {
		return Selection{}, ErrNoTokens
	}
	return Selection{Tokens: tokens}, nil
}

func (s *Selector) selectWords(words []string, count int, difficulty model.Difficulty) (Selection, error) {
	if len(words) == 0 {
		return Selection{}, ErrNoWords
	}
	pool := filterByDifficulty(words, difficulty)
	fallback := false
	if len(pool) == 0 {
		pool = words
		fallback = true
	}
	n := count
	if len(pool) < n {
		n = len(pool)
	}
	if n <= 0 {
		return Selection{FilterFallback: fallback}, ErrNoTokens
	}
	tokens := make([]string, 0, n)
	for _, idx := range s.rnd.Perm(len(pool))[:n] {
		tokens = append(tokens, pool[idx])
	}
	return Selection{Tokens: tokens, FilterFallback: fallback}, nil
}

func filterByDifficulty(words []string, difficulty model.Difficulty) []string {
	maxLen, limited := difficulty.MaxTokenLen()
	if !limited {
		return words
	}
	out := make([]string, 0, len(words))
	for _, word := range words {
		if utf8.RuneCountInString(word) <= maxLen {
			out = append(out, word)
		}
	}
	return out
}
