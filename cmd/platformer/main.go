// platformer is a terminal lava-runner: collect every coin, avoid the lava.
//
// Usage:
//
//	platformer play                   - Play the level sequence
//	platformer menu                   - Pick a starting level interactively
//	platformer list                   - List levels
//	platformer simulate <script.yaml> - Run a scripted replay headlessly
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible coin wobble
//	--log-file <path>  - Write logs to a file (the TUI owns the terminal)
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Lava Runner - a tile platformer in your terminal",
	Long: `Lava Runner is a terminal platformer. Run and jump through each level,
collect every coin to clear it, and stay out of the lava.

Available commands:
  play      - Play the level sequence
  menu      - Pick a starting level
  list      - Show the levels
  simulate  - Run a scripted replay without a terminal UI

Examples:
  platformer play
  platformer play --levels ./levels --watch
  platformer menu --difficulty easy
  platformer simulate ./replays/first.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the command logger. Interactive commands own the
// terminal, so they log to --log-file or nowhere; fallback is used by
// commands that may write to the terminal. The returned closer must be
// called when done.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closer, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
