package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/termtype/internal/metrics"
	"github.com/verte-zerg/termtype/internal/model"
)

const statsPlaceholder = "Gross WPM: - | Net WPM: - | Accuracy: -%"

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	switch m.phase {
	case phaseWaiting:
		return m.viewWaiting()
	case phaseEnded:
		return m.viewEnded()
	}
	return m.viewPlaying()
}

func (m *Model) viewWaiting() string {
	prompt := promptStyle.Render("Press any key to start...")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, prompt)
}

func (m *Model) viewPlaying() string {
	start, end := tokenWindow(m.machine.Tokens(), m.machine.TokenIndex())
	window := buildWindowRunes(m.machine, start, end)
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	body := wrapStyledRunes(window, contentWidth)

	if m.height < 5 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}

	timer := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, timerStyle.Render(m.timerLine()))
	stats := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, statsStyle.Render(m.statsLine()))
	text := lipgloss.Place(m.width, m.height-3, lipgloss.Center, lipgloss.Center, body)
	footer := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footerStyle.Render("Press Esc to quit"))
	return strings.Join([]string{timer, stats, text, footer}, "\n")
}

func (m *Model) timerLine() string {
	elapsed := m.elapsed()
	if m.cfg.Mode == model.ModeTimed {
		remaining := float64(m.cfg.DurationSeconds) - elapsed
		if remaining < 0 {
			remaining = 0
		}
		return fmt.Sprintf("Time Left: %s", formatClock(remaining))
	}
	return fmt.Sprintf("Time Elapsed: %s", formatClock(elapsed))
}

func (m *Model) statsLine() string {
	elapsed := m.elapsed()
	if elapsed < metrics.MinElapsedSeconds {
		return statsPlaceholder
	}
	gross, net, accuracy := metrics.Compute(m.machine.CorrectChars(), m.machine.TypedChars(), elapsed)
	return fmt.Sprintf("Gross WPM: %.0f | Net WPM: %.0f | Accuracy: %.2f%%", gross, net, accuracy)
}

func (m *Model) viewEnded() string {
	gross, net, accuracy := metrics.Compute(m.machine.CorrectChars(), m.machine.TypedChars(), m.finalElapsed)

	lines := make([]string, 0, len(m.endBanner)+7)
	for _, line := range m.endBanner {
		lines = append(lines, bannerStyle.Render(line))
	}
	lines = append(lines,
		"",
		resultStyle.Render(fmt.Sprintf("Gross WPM: %.0f", gross)),
		resultStyle.Render(fmt.Sprintf("Net WPM: %.0f", net)),
		resultStyle.Render(fmt.Sprintf("Accuracy: %.2f%%", accuracy)),
		resultStyle.Render(fmt.Sprintf("Time Taken: %s", formatClock(m.finalElapsed))),
		"",
	)
	prompt := "Press any key to exit."
	if m.toMenu {
		prompt = "Press any key to return to the menu."
	}
	lines = append(lines, promptStyle.Render(prompt))

	block := lipgloss.NewStyle().Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}

func formatClock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
