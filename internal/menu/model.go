// Package menu collects a session configuration interactively.
package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/termtype/internal/model"
)

type step int

const (
	stepMode step = iota
	stepDuration
	stepWordCount
	stepDifficulty
	stepDone
)

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	optionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	trailStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
)

var (
	modeOptions       = []model.Mode{model.ModeTimed, model.ModeWords, model.ModeQuote}
	modeLabels        = []string{"Time", "Words", "Quote"}
	durationOptions   = []int{15, 30, 60, 120}
	wordCountOptions  = []int{10, 20, 30, 40, 50}
	difficultyOptions = []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard}
	difficultyLabels  = []string{"Easy", "Medium", "Hard"}
)

// Model implements the Bubble Tea configuration menu. It walks through the
// game type, the mode-specific limit, and the difficulty, then quits.
type Model struct {
	defaults model.Config
	cfg      model.Config

	step   step
	cursor int
	trail  []string

	customInput textinput.Model
	customOn    bool
	customErr   string

	aborted bool
}

// NewModel builds a menu preseeded with defaults. A default matching a
// listed option preselects it; a default outside the list lands on the
// custom entry.
func NewModel(defaults model.Config) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 5
	input.Width = 8
	input.Cursor.SetMode(cursor.CursorBlink)

	return &Model{
		defaults:    defaults,
		cursor:      indexOfMode(defaults.Mode),
		customInput: input,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		m.aborted = true
		return m, tea.Quit
	}
	if m.customOn {
		return m.updateCustom(key)
	}
	return m.updateList(key)
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		return m.stepBack()
	case msg.Type == tea.KeyEnter:
		return m.applySelection()
	case msg.Type == tea.KeyUp, msg.String() == "k":
		m.moveCursor(-1)
	case msg.Type == tea.KeyDown, msg.String() == "j":
		m.moveCursor(1)
	}
	return m, nil
}

func (m *Model) updateCustom(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.customOn = false
		m.customErr = ""
		return m, nil
	case tea.KeyEnter:
		value, err := parseCustomValue(m.customInput.Value())
		if err != nil {
			m.customErr = err.Error()
			return m, nil
		}
		m.customOn = false
		m.customErr = ""
		if m.step == stepDuration {
			m.cfg.DurationSeconds = value
			m.pushTrail(fmt.Sprintf("Time limit: %ds", value))
		} else {
			m.cfg.WordCount = value
			m.pushTrail(fmt.Sprintf("Word count: %d", value))
		}
		m.enterDifficultyStep()
		return m, nil
	}
	var cmd tea.Cmd
	m.customInput, cmd = m.customInput.Update(msg)
	return m, cmd
}

func (m *Model) applySelection() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepMode:
		mode := modeOptions[m.cursor]
		m.cfg = model.Config{Mode: mode}
		m.pushTrail(fmt.Sprintf("Game type: %s", modeLabels[m.cursor]))
		switch mode {
		case model.ModeTimed:
			m.step = stepDuration
			m.cursor = indexOfOption(durationOptions, m.defaults.DurationSeconds)
		case model.ModeWords:
			m.step = stepWordCount
			m.cursor = indexOfOption(wordCountOptions, m.defaults.WordCount)
		case model.ModeQuote:
			m.enterDifficultyStep()
		}
	case stepDuration:
		if m.cursor == len(durationOptions) {
			return m.openCustom("15")
		}
		m.cfg.DurationSeconds = durationOptions[m.cursor]
		m.pushTrail(fmt.Sprintf("Time limit: %ds", m.cfg.DurationSeconds))
		m.enterDifficultyStep()
	case stepWordCount:
		if m.cursor == len(wordCountOptions) {
			return m.openCustom("30")
		}
		m.cfg.WordCount = wordCountOptions[m.cursor]
		m.pushTrail(fmt.Sprintf("Word count: %d", m.cfg.WordCount))
		m.enterDifficultyStep()
	case stepDifficulty:
		m.cfg.Difficulty = difficultyOptions[m.cursor]
		m.pushTrail(fmt.Sprintf("Difficulty: %s", difficultyLabels[m.cursor]))
		m.step = stepDone
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) stepBack() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepMode:
		m.aborted = true
		return m, tea.Quit
	case stepDuration, stepWordCount:
		m.step = stepMode
		m.cursor = indexOfMode(m.cfg.Mode)
		m.cfg = model.Config{}
		m.popTrail()
	case stepDifficulty:
		switch m.cfg.Mode {
		case model.ModeTimed:
			m.step = stepDuration
			m.cursor = indexOfOption(durationOptions, m.cfg.DurationSeconds)
			m.cfg.DurationSeconds = 0
		case model.ModeWords:
			m.step = stepWordCount
			m.cursor = indexOfOption(wordCountOptions, m.cfg.WordCount)
			m.cfg.WordCount = 0
		default:
			m.step = stepMode
			m.cursor = indexOfMode(m.cfg.Mode)
			m.cfg = model.Config{}
		}
		m.popTrail()
	}
	return m, nil
}

func (m *Model) openCustom(placeholder string) (tea.Model, tea.Cmd) {
	m.customOn = true
	m.customErr = ""
	m.customInput.SetValue("")
	m.customInput.Placeholder = placeholder
	return m, m.customInput.Focus()
}

func (m *Model) enterDifficultyStep() {
	m.step = stepDifficulty
	m.cursor = indexOfDifficulty(m.defaults.Difficulty)
}

func (m *Model) moveCursor(delta int) {
	count := m.optionCount()
	m.cursor = (m.cursor + delta + count) % count
}

func (m *Model) optionCount() int {
	switch m.step {
	case stepDuration:
		return len(durationOptions) + 1
	case stepWordCount:
		return len(wordCountOptions) + 1
	case stepDifficulty:
		return len(difficultyOptions)
	}
	return len(modeOptions)
}

func (m *Model) pushTrail(entry string) {
	m.trail = append(m.trail, entry)
}

func (m *Model) popTrail() {
	if len(m.trail) > 0 {
		m.trail = m.trail[:len(m.trail)-1]
	}
}

// Result returns the collected configuration. ok is false when the menu
// was dismissed before completing.
func (m *Model) Result() (model.Config, bool) {
	return m.cfg, m.step == stepDone && !m.aborted
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.step == stepDone || m.aborted {
		return ""
	}
	var b strings.Builder
	for _, entry := range m.trail {
		b.WriteString(trailStyle.Render("* " + entry))
		b.WriteString("\n")
	}
	if m.customOn {
		b.WriteString(promptStyle.Render(m.customPrompt()))
		b.WriteString("\n")
		b.WriteString(m.customInput.View())
		b.WriteString("\n")
		if m.customErr != "" {
			b.WriteString(errorStyle.Render(m.customErr))
			b.WriteString("\n")
		}
		b.WriteString(hintStyle.Render("enter confirm · esc back"))
		return b.String()
	}
	b.WriteString(promptStyle.Render(m.stepPrompt()))
	b.WriteString("\n")
	for i, label := range m.stepLabels() {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + label))
		} else {
			b.WriteString(optionStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("up/down move · enter select · esc back"))
	return b.String()
}

func (m *Model) stepPrompt() string {
	switch m.step {
	case stepDuration:
		return "How long should the game last?"
	case stepWordCount:
		return "How many words?"
	case stepDifficulty:
		return "Pick a difficulty:"
	}
	return "Pick a game type:"
}

func (m *Model) customPrompt() string {
	if m.step == stepDuration {
		return "Time limit in seconds:"
	}
	return "Word count:"
}

func (m *Model) stepLabels() []string {
	switch m.step {
	case stepDuration:
		labels := make([]string, 0, len(durationOptions)+1)
		for _, seconds := range durationOptions {
			labels = append(labels, fmt.Sprintf("%d seconds", seconds))
		}
		return append(labels, "Custom...")
	case stepWordCount:
		labels := make([]string, 0, len(wordCountOptions)+1)
		for _, count := range wordCountOptions {
			labels = append(labels, fmt.Sprintf("%d words", count))
		}
		return append(labels, "Custom...")
	case stepDifficulty:
		return difficultyLabels
	}
	return modeLabels
}

func parseCustomValue(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("enter a positive number")
	}
	return value, nil
}

func indexOfMode(mode model.Mode) int {
	for i, option := range modeOptions {
		if option == mode {
			return i
		}
	}
	return 0
}

func indexOfDifficulty(difficulty model.Difficulty) int {
	for i, option := range difficultyOptions {
		if option == difficulty {
			return i
		}
	}
	return 1
}

// indexOfOption preselects a matching default, lands on the custom entry
// for an off-list default, and falls back to the second option otherwise.
func indexOfOption(options []int, value int) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	if value > 0 {
		return len(options)
	}
	return 1
}
