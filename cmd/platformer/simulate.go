package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/replay"
)

var flagSimLevel int

var simulateCmd = &cobra.Command{
	Use:   "simulate <script.yaml>",
	Short: "Run a scripted replay without a terminal UI",
	Long: `Play a replay script against a level and print the outcome.

A script holds keys for a number of frames:

  level: 0
  seed: 7
  steps:
    - frames: 60
      keys: [right]
    - frames: 10
      keys: [right, up]

Examples:
  platformer simulate run.yaml
  platformer simulate run.yaml --level 2
  platformer simulate run.yaml --levels ./levels --config ./my.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimLevel, "level", 0, "Level number to run (overrides the script)")
	simulateCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of YAML level files")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	script, err := replay.LoadScript(args[0])
	if err != nil {
		return err
	}
	if flagSimLevel > 0 {
		script.Level = flagSimLevel - 1
		script.Plan = nil
	}
	if cmd.Flags().Changed("seed") {
		script.Seed = flagSeed
	}

	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return err
	}

	plans, names, err := loadPlans(logger)
	if err != nil {
		return err
	}

	lvl, err := script.NewLevel(plans, platformer.PhysicsFromConfig(cfg))
	if err != nil {
		return err
	}
	logger.Debug("simulating", "script", args[0], "level", script.Level, "frames", script.TotalFrames())

	res := replay.Run(lvl, script, cfg.Physics.MaxFrame)

	name := "inline plan"
	if len(script.Plan) == 0 {
		name = names[script.Level]
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "level:      %s\n", name)
	fmt.Fprintf(out, "status:     %s\n", res.Status)
	fmt.Fprintf(out, "finished:   %v\n", res.Finished)
	fmt.Fprintf(out, "frames:     %d\n", res.Frames)
	fmt.Fprintf(out, "elapsed:    %.2fs\n", res.Elapsed)
	fmt.Fprintf(out, "coins left: %d\n", res.CoinsLeft)

	logger.Info("simulation done", "status", res.Status, "frames", res.Frames)
	return nil
}
