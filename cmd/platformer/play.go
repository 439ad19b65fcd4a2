package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagStart      int
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the level sequence",
	Long: `Start playing from the first level (or --start).

Controls:
  Left/A, Right/D   - Run
  Up/W/Space        - Jump (only when standing on something)
  P/Esc             - Pause
  R                 - Play again (after the last level)
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 5 lives
  normal - 3 lives
  hard   - 1 life, faster lava

Examples:
  platformer play
  platformer play --difficulty hard
  platformer play --levels ./levels --watch
  platformer play --config ./my-platformer.yaml --log-file play.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().IntVar(&flagStart, "start", 1, "Level number to start on")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --levels files when they change")
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of YAML level files (default: built-in levels)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	return playFrom(flagStart-1, terminalConfig(), logger)
}

// terminalConfig builds the runtime config from the terminal size and
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureGame pushes CLI options into the platformer before creation.
func configureGame(start int, logger *log.Logger) {
	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	platformer.SetLevelsDir(flagLevels)
	platformer.SetStartLevel(start)
	platformer.SetLogger(logger)
}

// playFrom runs one game session starting at the zero-based level start.
func playFrom(start int, cfg core.RuntimeConfig, logger *log.Logger) error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", flagDifficulty)
	}
	configureGame(start, logger)

	game, err := registry.Create("platformer")
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	cfgFile, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return err
	}
	opts := tui.Options{
		Logger:     logger,
		HoldWindow: time.Duration(cfgFile.Display.HoldMS) * time.Millisecond,
	}

	if flagWatch {
		if flagLevels == "" {
			return fmt.Errorf("--watch needs --levels")
		}
		w, err := levels.NewWatcher(flagLevels)
		if err != nil {
			return err
		}
		defer w.Close()
		go func() {
			for err := range w.Errors {
				logger.Warn("level watcher", "error", err)
			}
		}()
		opts.LevelEvents = w.Events
		logger.Info("watching levels", "dir", flagLevels)
	}

	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
