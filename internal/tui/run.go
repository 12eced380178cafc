package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/termtype/internal/model"
	"github.com/verte-zerg/termtype/internal/selector"
)

// Run plays one session: it selects the target text for cfg, hands the
// terminal to the session model, and reports the outcome. toMenu only
// changes the end-screen prompt wording.
func Run(cfg model.Config, words []string, quotes []model.Quote, toMenu bool) (Result, error) {
	selection, err := selector.New().Select(cfg, words, quotes)
	if err != nil {
		return Result{}, fmt.Errorf("failed to select session text: %w", err)
	}
	if selection.FilterFallback {
		logErrf("no words within the %s length limit; using the full word list\n", cfg.Difficulty)
	}

	program := tea.NewProgram(NewModel(cfg, selection.Tokens, toMenu), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return Result{}, fmt.Errorf("failed to run session: %w", err)
	}
	session, ok := final.(*Model)
	if !ok {
		return Result{}, fmt.Errorf("unexpected session model type %T", final)
	}
	return session.Result(), nil
}
