package tui

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/termtype/internal/typing"
)

// The visible slice of the token sequence is bounded both by token count
// and by an approximate character budget, so long words cannot push the
// cursor off screen.
const (
	maxWindowTokens   = 15
	approxWindowChars = 60
)

// tokenWindow returns the half-open token range [start, end) drawn around
// current. The window trails a third of the token budget behind the cursor
// and never cuts the current token off.
func tokenWindow(tokens []string, current int) (start, end int) {
	if len(tokens) == 0 {
		return 0, 0
	}
	if current >= len(tokens) {
		current = len(tokens) - 1
	}
	start = current - maxWindowTokens/3
	if start < 0 {
		start = 0
	}
	end = start
	chars := 0
	for i := start; i < len(tokens) && i < start+maxWindowTokens; i++ {
		chars += utf8.RuneCountInString(tokens[i]) + 1
		if chars > approxWindowChars && i > current {
			break
		}
		end = i + 1
	}
	return start, end
}

// buildWindowRunes styles the tokens in [start, end): the matched prefix of
// the current token, any unresolved errors shown in place, the cursor on
// the next expected position, and everything else de-emphasized.
func buildWindowRunes(m *typing.Machine, start, end int) []styledRune {
	tokens := m.Tokens()
	out := make([]styledRune, 0, approxWindowChars+maxWindowTokens)
	for i := start; i < end; i++ {
		if i == m.TokenIndex() {
			out = append(out, currentTokenRunes(m)...)
		} else {
			for _, r := range tokens[i] {
				out = append(out, styledRune{s: dimStyle.Render(string(r)), width: runewidth.RuneWidth(r), isSpace: r == ' '})
			}
		}
		if i < end-1 {
			out = append(out, separatorRune(m, i, tokens[i]))
		}
	}
	return out
}

func currentTokenRunes(m *typing.Machine) []styledRune {
	runes := []rune(m.Tokens()[m.TokenIndex()])
	pending := m.PendingErrors()
	out := make([]styledRune, 0, len(runes)+len(pending))
	for _, r := range m.Matched() {
		out = append(out, styledRune{s: matchedStyle.Render(string(r)), width: runewidth.RuneWidth(r)})
	}
	for _, r := range pending {
		out = append(out, styledRune{s: errorStyle.Render(string(r)), width: runewidth.RuneWidth(r)})
	}
	for idx := m.CharIndex(); idx < len(runes); idx++ {
		style := dimStyle
		if idx == m.CharIndex() && pending == "" {
			style = cursorStyle
		}
		out = append(out, styledRune{s: style.Render(string(runes[idx])), width: runewidth.RuneWidth(runes[idx])})
	}
	return out
}

// separatorRune renders the space after token i. When the current token is
// fully matched the separator carries the cursor and must not be treated
// as a wrap point, or the cursor could be swallowed by a line break.
func separatorRune(m *typing.Machine, i int, token string) styledRune {
	if i == m.TokenIndex() && m.CharIndex() == utf8.RuneCountInString(token) && m.PendingErrors() == "" {
		return styledRune{s: cursorStyle.Render(" "), width: 1}
	}
	return styledRune{s: dimStyle.Render(" "), width: 1, isSpace: true}
}
