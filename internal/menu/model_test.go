package menu

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/termtype/internal/model"
)

func defaults() model.Config {
	return model.Config{Mode: model.ModeTimed, DurationSeconds: 30, WordCount: 20, Difficulty: model.DifficultyMedium}
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func enter(m *Model) tea.Cmd { return press(m, tea.KeyMsg{Type: tea.KeyEnter}) }
func esc(m *Model) tea.Cmd   { return press(m, tea.KeyMsg{Type: tea.KeyEsc}) }
func down(m *Model) tea.Cmd  { return press(m, tea.KeyMsg{Type: tea.KeyDown}) }
func up(m *Model) tea.Cmd    { return press(m, tea.KeyMsg{Type: tea.KeyUp}) }

func typeText(m *Model, s string) {
	for _, r := range s {
		press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func assertQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected a quit command, got %T", cmd())
	}
}

func TestMenuTimedFlowWithDefaults(t *testing.T) {
	m := NewModel(defaults())

	enter(m)           // Time
	enter(m)           // 30 seconds preselected
	cmd := enter(m)    // Medium preselected
	assertQuit(t, cmd) // done

	cfg, ok := m.Result()
	if !ok {
		t.Fatalf("expected a completed menu")
	}
	want := model.Config{Mode: model.ModeTimed, DurationSeconds: 30, Difficulty: model.DifficultyMedium}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected a valid config, got %v", err)
	}
}

func TestMenuWordsFlow(t *testing.T) {
	m := NewModel(defaults())

	down(m)
	enter(m) // Words
	enter(m) // 20 words preselected
	down(m)
	assertQuit(t, enter(m)) // Hard

	cfg, ok := m.Result()
	if !ok {
		t.Fatalf("expected a completed menu")
	}
	want := model.Config{Mode: model.ModeWords, WordCount: 20, Difficulty: model.DifficultyHard}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestMenuQuoteSkipsLimitStep(t *testing.T) {
	m := NewModel(defaults())

	down(m)
	down(m)
	enter(m) // Quote
	if m.step != stepDifficulty {
		t.Fatalf("expected quote mode to skip straight to difficulty")
	}
	assertQuit(t, enter(m))

	cfg, ok := m.Result()
	if !ok || cfg.Mode != model.ModeQuote {
		t.Fatalf("expected a quote config, got %+v ok=%v", cfg, ok)
	}
	if cfg.DurationSeconds != 0 || cfg.WordCount != 0 {
		t.Fatalf("expected no limits for quote mode, got %+v", cfg)
	}
}

func TestMenuEscAtFirstStepAborts(t *testing.T) {
	m := NewModel(defaults())

	assertQuit(t, esc(m))
	if _, ok := m.Result(); ok {
		t.Fatalf("expected an aborted menu")
	}
}

func TestMenuCtrlCAborts(t *testing.T) {
	m := NewModel(defaults())

	enter(m)
	assertQuit(t, press(m, tea.KeyMsg{Type: tea.KeyCtrlC}))
	if _, ok := m.Result(); ok {
		t.Fatalf("expected an aborted menu")
	}
}

func TestMenuEscStepsBack(t *testing.T) {
	m := NewModel(defaults())

	enter(m) // Time -> duration step
	esc(m)
	if m.step != stepMode {
		t.Fatalf("expected to be back at the game type step")
	}
	if len(m.trail) != 0 {
		t.Fatalf("expected the trail entry to be dropped")
	}
}

func TestMenuCursorWraps(t *testing.T) {
	m := NewModel(defaults())

	up(m)
	if m.cursor != len(modeOptions)-1 {
		t.Fatalf("expected cursor to wrap to the last option, got %d", m.cursor)
	}
	down(m)
	if m.cursor != 0 {
		t.Fatalf("expected cursor to wrap back to the first option, got %d", m.cursor)
	}
}

func TestMenuVimKeysMoveCursor(t *testing.T) {
	m := NewModel(defaults())

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.cursor != 1 {
		t.Fatalf("expected j to move down, got %d", m.cursor)
	}
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.cursor != 0 {
		t.Fatalf("expected k to move up, got %d", m.cursor)
	}
}

func TestMenuCustomDuration(t *testing.T) {
	m := NewModel(defaults())

	enter(m) // Time
	for i := 0; i < 3; i++ {
		down(m) // from 30s to Custom...
	}
	enter(m)
	if !m.customOn {
		t.Fatalf("expected the custom input to open")
	}
	typeText(m, "45")
	enter(m)
	if m.step != stepDifficulty {
		t.Fatalf("expected to land on the difficulty step")
	}
	assertQuit(t, enter(m))

	cfg, ok := m.Result()
	if !ok || cfg.DurationSeconds != 45 {
		t.Fatalf("expected a 45s config, got %+v ok=%v", cfg, ok)
	}
}

func TestMenuCustomRejectsBadInput(t *testing.T) {
	m := NewModel(defaults())

	down(m)
	enter(m) // Words
	for i := 0; i < 4; i++ {
		down(m) // from 20 words to Custom...
	}
	enter(m)
	typeText(m, "zero")
	enter(m)
	if !m.customOn || m.customErr == "" {
		t.Fatalf("expected the input to stay open with an error")
	}

	esc(m)
	if m.customOn || m.step != stepWordCount {
		t.Fatalf("expected esc to close the input and stay on the step")
	}
}

func TestMenuOffListDefaultLandsOnCustom(t *testing.T) {
	cfg := defaults()
	cfg.DurationSeconds = 45
	m := NewModel(cfg)

	enter(m) // Time
	if m.cursor != len(durationOptions) {
		t.Fatalf("expected the cursor on Custom..., got %d", m.cursor)
	}
}

func TestMenuViewShowsOptionsAndTrail(t *testing.T) {
	m := NewModel(defaults())

	view := m.View()
	if !strings.Contains(view, "Pick a game type:") {
		t.Fatalf("expected the game type prompt, got %q", view)
	}
	if !strings.Contains(view, "> Time") {
		t.Fatalf("expected the preselected option marker, got %q", view)
	}

	enter(m)
	view = m.View()
	if !strings.Contains(view, "Game type: Time") {
		t.Fatalf("expected the trail entry, got %q", view)
	}
	if !strings.Contains(view, "30 seconds") {
		t.Fatalf("expected duration options, got %q", view)
	}
}

func TestMenuViewEmptyWhenDone(t *testing.T) {
	m := NewModel(defaults())

	enter(m)
	enter(m)
	enter(m)
	if m.View() != "" {
		t.Fatalf("expected an empty view after completion")
	}
}
