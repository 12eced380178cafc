// Package tui provides the Bubble Tea session interface.
package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	figure "github.com/common-nighthawk/go-figure"

	"github.com/verte-zerg/termtype/internal/metrics"
	"github.com/verte-zerg/termtype/internal/model"
	"github.com/verte-zerg/termtype/internal/typing"
)

type phase int

const (
	phaseWaiting phase = iota
	phasePlaying
	phaseEnded
)

// Tick cadence per phase: relaxed at the start prompt, fast once the
// clock and keystrokes are live.
const (
	waitingTickInterval = 500 * time.Millisecond
	playingTickInterval = 100 * time.Millisecond
)

type tickMsg time.Time

var (
	matchedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#FF4D4F"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#1A1A1A")).Background(lipgloss.Color("#C89A3A"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	timerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	statsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	resultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
)

// Model implements the Bubble Tea session UI, driving one run from start
// prompt to end screen.
type Model struct {
	cfg     model.Config
	machine *typing.Machine
	phase   phase
	toMenu  bool

	width  int
	height int

	startedAt    time.Time
	finalElapsed float64

	endBanner []string
}

// NewModel constructs a session model over the selected tokens. toMenu
// picks the end-screen prompt wording.
func NewModel(cfg model.Config, tokens []string, toMenu bool) *Model {
	return &Model{
		cfg:       cfg,
		machine:   typing.NewMachine(tokens),
		toMenu:    toMenu,
		endBanner: figure.NewFigure("Game Over!", "", false).Slicify(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.phase == phasePlaying && m.machine.Finished(m.cfg, m.elapsed()) {
			m.endSession()
		}
		return m, m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) tick() tea.Cmd {
	interval := playingTickInterval
	if m.phase == phaseWaiting {
		interval = waitingTickInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch m.phase {
	case phaseWaiting:
		if msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		// The starting keystroke only starts the clock.
		m.startedAt = time.Now()
		m.phase = phasePlaying
	case phasePlaying:
		switch msg.Type {
		case tea.KeyEsc:
			m.endSession()
		case tea.KeyBackspace, tea.KeyDelete:
			m.machine.Backspace()
		case tea.KeySpace:
			m.machine.TypeRune(' ')
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.machine.TypeRune(r)
			}
		}
	case phaseEnded:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) endSession() {
	m.finalElapsed = m.elapsed()
	m.phase = phaseEnded
}

func (m *Model) elapsed() float64 {
	if m.phase == phaseEnded {
		return m.finalElapsed
	}
	if m.startedAt.IsZero() {
		return 0
	}
	return time.Since(m.startedAt).Seconds()
}

// Result summarizes a finished session.
type Result struct {
	Completed      bool
	ElapsedSeconds float64
	GrossWPM       float64
	NetWPM         float64
	Accuracy       float64
	TypedChars     int
	CorrectChars   int
}

// Result returns the session outcome. Completed stays false when the
// program was torn down before reaching the end screen.
func (m *Model) Result() Result {
	if m.phase != phaseEnded {
		return Result{}
	}
	gross, net, accuracy := metrics.Compute(m.machine.CorrectChars(), m.machine.TypedChars(), m.finalElapsed)
	return Result{
		Completed:      true,
		ElapsedSeconds: m.finalElapsed,
		GrossWPM:       gross,
		NetWPM:         net,
		Accuracy:       accuracy,
		TypedChars:     m.machine.TypedChars(),
		CorrectChars:   m.machine.CorrectChars(),
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
