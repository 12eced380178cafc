// Package main provides the CLI entrypoint for termtype.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	figure "github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/termtype/internal/config"
	"github.com/verte-zerg/termtype/internal/corpus"
	"github.com/verte-zerg/termtype/internal/menu"
	"github.com/verte-zerg/termtype/internal/model"
	"github.com/verte-zerg/termtype/internal/tui"
)

const appVersion = "0.1.0"

const (
	defaultSeconds    = 30
	defaultWords      = 20
	defaultDifficulty = "medium"
)

var (
	playMode       string
	playSeconds    int
	playWords      int
	playDifficulty string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "termtype",
		Short:         "Terminal typing trainer",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playMode, "mode", "", "game type: time, words, or quote (default: interactive menu)")
	rootCmd.Flags().IntVar(&playSeconds, "seconds", defaultSeconds, "time limit for time mode")
	rootCmd.Flags().IntVar(&playWords, "words", defaultWords, "word count for words mode")
	rootCmd.Flags().StringVar(&playDifficulty, "difficulty", defaultDifficulty, "word length filter: easy, medium, or hard")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &playMode, fileCfg.Session.Mode)
	applyIntConfig(cmd, "seconds", &playSeconds, fileCfg.Session.Seconds)
	applyIntConfig(cmd, "words", &playWords, fileCfg.Session.Words)
	applyStringConfig(cmd, "difficulty", &playDifficulty, fileCfg.Session.Difficulty)

	words, err := corpus.Words()
	if err != nil {
		return fmt.Errorf("failed to load word corpus: %w", err)
	}
	quotes, err := corpus.Quotes()
	if err != nil {
		return fmt.Errorf("failed to load quote corpus: %w", err)
	}

	if playMode == "" {
		difficulty, err := model.ParseDifficulty(playDifficulty)
		if err != nil {
			return fmt.Errorf("invalid --difficulty value: %w", err)
		}
		defaults := model.Config{
			DurationSeconds: playSeconds,
			WordCount:       playWords,
			Difficulty:      difficulty,
		}
		return runInteractive(words, quotes, defaults)
	}

	cfg, err := buildFlagConfig()
	if err != nil {
		return err
	}
	result, err := tui.Run(cfg, words, quotes, false)
	if err != nil {
		return err
	}
	printSummary(result)
	return nil
}

func buildFlagConfig() (model.Config, error) {
	mode, err := model.ParseMode(playMode)
	if err != nil {
		return model.Config{}, fmt.Errorf("invalid --mode value: %w", err)
	}
	difficulty, err := model.ParseDifficulty(playDifficulty)
	if err != nil {
		return model.Config{}, fmt.Errorf("invalid --difficulty value: %w", err)
	}

	cfg := model.Config{Mode: mode, Difficulty: difficulty}
	switch mode {
	case model.ModeTimed:
		cfg.DurationSeconds = playSeconds
	case model.ModeWords:
		cfg.WordCount = playWords
	}
	if err := cfg.Validate(); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func runInteractive(words []string, quotes []model.Quote, defaults model.Config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("interactive menu requires a terminal; pass --mode to choose a game")
	}
	printBanner()

	for {
		picker := menu.NewModel(defaults)
		program := tea.NewProgram(picker)
		final, err := program.Run()
		if err != nil {
			return fmt.Errorf("failed to run menu: %w", err)
		}
		menuModel, ok := final.(*menu.Model)
		if !ok {
			return fmt.Errorf("unexpected menu model type %T", final)
		}
		cfg, ok := menuModel.Result()
		if !ok {
			return nil
		}

		result, err := tui.Run(cfg, words, quotes, true)
		if err != nil {
			return err
		}
		printSummary(result)
		defaults = cfg
	}
}

func printBanner() {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	art := figure.NewFigure("termtype", "", false).Slicify()
	fits := true
	for _, line := range art {
		if len(line) > width {
			fits = false
			break
		}
	}
	if fits {
		for _, line := range art {
			fmt.Println(line)
		}
	}
	fmt.Printf("termtype v%s - terminal typing trainer\n\n", appVersion)
}

func printSummary(result tui.Result) {
	if !result.Completed {
		return
	}
	fmt.Printf("Typed %d characters in %.1fs: gross %.0f WPM, net %.0f WPM, accuracy %.2f%%\n",
		result.TypedChars,
		result.ElapsedSeconds,
		result.GrossWPM,
		result.NetWPM,
		result.Accuracy,
	)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# termtype configuration
# Uncomment a value to enable it. CLI flags override config values.

[session]
# mode = "time"         # Game type: time, words, or quote. Unset: pick interactively.
# seconds = %d          # Time limit for time mode
# words = %d            # Word count for words mode
# difficulty = %q       # Word length filter: easy, medium, or hard
`,
		defaultSeconds,
		defaultWords,
		defaultDifficulty,
	)
}
