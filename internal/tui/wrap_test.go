package tui

import "testing"

func plainRunes(s string) []styledRune {
	out := make([]styledRune, 0, len(s))
	for _, r := range s {
		out = append(out, styledRune{s: string(r), width: 1, isSpace: r == ' '})
	}
	return out
}

func TestWrapStyledRunesBreaksAtLastSpace(t *testing.T) {
	got := wrapStyledRunes(plainRunes("aa bb cc"), 5)
	if got != "aa\nbb cc" {
		t.Fatalf("expected %q, got %q", "aa\nbb cc", got)
	}
}

func TestWrapStyledRunesDropsBreakingSpace(t *testing.T) {
	got := wrapStyledRunes(plainRunes("one two"), 4)
	if got != "one\ntwo" {
		t.Fatalf("expected %q, got %q", "one\ntwo", got)
	}
}

func TestWrapStyledRunesHardBreaksLongRun(t *testing.T) {
	got := wrapStyledRunes(plainRunes("abcde"), 3)
	if got != "abc\nde" {
		t.Fatalf("expected %q, got %q", "abc\nde", got)
	}
}

func TestWrapStyledRunesZeroWidthPassthrough(t *testing.T) {
	got := wrapStyledRunes(plainRunes("aa bb"), 0)
	if got != "aa bb" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestWrapStyledRunesRespectsWideRunes(t *testing.T) {
	runes := []styledRune{
		{s: "あ", width: 2},
		{s: "い", width: 2},
		{s: "う", width: 2},
	}
	got := wrapStyledRunes(runes, 4)
	if got != "あい\nう" {
		t.Fatalf("expected wide runes to wrap at display width, got %q", got)
	}
}

func TestWrapStyledRunesSkipsNonBreakingSpace(t *testing.T) {
	// A cursor rendered on a separator has isSpace unset and must not be
	// used as a break point.
	runes := plainRunes("aa bb")
	runes[2].isSpace = false
	got := wrapStyledRunes(runes, 4)
	if got != "aa b\nb" {
		t.Fatalf("expected hard break, got %q", got)
	}
}
