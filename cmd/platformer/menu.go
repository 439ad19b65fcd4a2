package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a starting level from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start at the selected level.
After the game ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play from the selected level
  Q/Esc        - Quit

Examples:
  platformer menu
  platformer menu --levels ./levels
  platformer menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := terminalConfig()
	for {
		entries, err := levelEntries(logger)
		if err != nil {
			return err
		}

		res, err := tui.RunMenu(platformer.New().Title(), entries, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config
		if res.Quit {
			return nil
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := playFrom(res.Level, cfg, logger); err != nil {
			logger.Error("game ended with error", "error", err)
		}
	}
}
