package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the levels",
	Long: `Shows the built-in levels, or the levels found in --levels.

Examples:
  platformer list
  platformer list --levels ./levels`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of YAML level files")
}

func runList(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	entries, err := levelEntries(logger)
	if err != nil {
		return err
	}
	printLevels(cmd.OutOrStdout(), entries)
	return nil
}

func printLevels(w io.Writer, entries []tui.LevelEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No levels available.")
		return
	}

	fmt.Fprintln(w, "Levels:")
	fmt.Fprintln(w)

	maxNameLen := 4 // "Name" header
	for _, e := range entries {
		if len(e.Name) > maxNameLen {
			maxNameLen = len(e.Name)
		}
	}

	fmt.Fprintf(w, "  %-3s  %-*s  %-7s  %s\n", "#", maxNameLen, "Name", "Size", "Coins")
	fmt.Fprintf(w, "  %-3s  %-*s  %-7s  %s\n", "--", maxNameLen, "----", "----", "-----")
	for i, e := range entries {
		size := fmt.Sprintf("%dx%d", e.Width, e.Height)
		fmt.Fprintf(w, "  %-3d  %-*s  %-7s  %d\n", i+1, maxNameLen, e.Name, size, e.Coins)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'platformer play --start <#>' to start on a level.")
}

// loadPlans returns the plans a game would load: the --levels directory if
// set, otherwise the built-in plans.
func loadPlans(logger *log.Logger) ([]platformer.Plan, []string, error) {
	if flagLevels == "" {
		return platformer.BuiltinPlans(), platformer.BuiltinNames(), nil
	}

	lvls, err := levels.NewLoader(flagLevels, logger).LoadAll()
	if err != nil {
		return nil, nil, err
	}
	plans, names := platformer.PlansOf(lvls)
	return plans, names, nil
}

// levelEntries describes the levels for the menu and list output.
func levelEntries(logger *log.Logger) ([]tui.LevelEntry, error) {
	plans, names, err := loadPlans(logger)
	if err != nil {
		return nil, err
	}
	return describePlans(plans, names), nil
}

func describePlans(plans []platformer.Plan, names []string) []tui.LevelEntry {
	phys := platformer.DefaultPhysics()
	entries := make([]tui.LevelEntry, len(plans))
	for i, plan := range plans {
		lvl := platformer.NewLevel(plan, phys, nil)
		entries[i] = tui.LevelEntry{
			Name:   names[i],
			Width:  lvl.Width(),
			Height: lvl.Height(),
			Coins:  lvl.CoinsLeft(),
		}
	}
	return entries
}
