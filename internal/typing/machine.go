// Package typing implements the keystroke state machine for one session.
package typing

import "github.com/verte-zerg/termtype/internal/model"

// Machine tracks progress through the token sequence one keystroke at a
// time. A mistyped character never advances the token: it lands in the
// pending error buffer and must be backspaced away before the expected
// character is accepted again.
type Machine struct {
	tokens []string
	runes  [][]rune

	tokenIndex int
	charIndex  int
	matched    []rune
	pending    []rune

	correctChars int
	typedChars   int
}

// NewMachine builds a Machine over the selected token sequence.
func NewMachine(tokens []string) *Machine {
	runes := make([][]rune, len(tokens))
	for i, token := range tokens {
		runes[i] = []rune(token)
	}
	return &Machine{tokens: tokens, runes: runes}
}

// TypeRune applies one character key.
func (m *Machine) TypeRune(r rune) {
	m.typedChars++
	if m.tokenIndex >= len(m.tokens) {
		// Past the final token the keystroke only counts toward the total.
		return
	}
	current := m.runes[m.tokenIndex]
	if m.charIndex < len(current) {
		if r == current[m.charIndex] && len(m.pending) == 0 {
			m.matched = append(m.matched, r)
			m.charIndex++
			m.correctChars++
			return
		}
		m.pending = append(m.pending, r)
		return
	}
	// Token fully matched: only a clean separator advances.
	if r == ' ' && len(m.pending) == 0 {
		m.tokenIndex++
		m.charIndex = 0
		m.matched = m.matched[:0]
		m.correctChars++
		return
	}
	m.pending = append(m.pending, r)
}

// Backspace removes the newest pending error, or failing that the newest
// matched rune. Counters are never rewound.
func (m *Machine) Backspace() {
	if len(m.pending) > 0 {
		m.pending = m.pending[:len(m.pending)-1]
		return
	}
	if len(m.matched) > 0 {
		m.matched = m.matched[:len(m.matched)-1]
		m.charIndex--
	}
}

// Finished reports whether the end condition for cfg holds.
func (m *Machine) Finished(cfg model.Config, elapsedSeconds float64) bool {
	switch cfg.Mode {
	case model.ModeTimed:
		return elapsedSeconds >= float64(cfg.DurationSeconds)
	case model.ModeWords:
		target := cfg.TargetWordCount()
		if len(m.tokens) < target {
			// A filtered pool can come up short; finishing the
			// sequence then ends the session.
			target = len(m.tokens)
		}
		return m.tokenIndex >= target
	case model.ModeQuote:
		return m.tokenIndex >= len(m.tokens)
	}
	return false
}

// Tokens returns the full token sequence.
func (m *Machine) Tokens() []string { return m.tokens }

// TokenIndex returns the index of the token being typed.
func (m *Machine) TokenIndex() int { return m.tokenIndex }

// CharIndex returns the matched-prefix length of the current token.
func (m *Machine) CharIndex() int { return m.charIndex }

// Matched returns the confirmed-correct prefix typed for the current token.
func (m *Machine) Matched() string { return string(m.matched) }

// PendingErrors returns the unresolved mistyped characters.
func (m *Machine) PendingErrors() string { return string(m.pending) }

// CorrectChars returns the count of correctly typed characters.
func (m *Machine) CorrectChars() int { return m.correctChars }

// TypedChars returns the count of all typed characters.
func (m *Machine) TypedChars() int { return m.typedChars }
