package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewTrendCommand creates the trend command.
func NewTrendCommand() *cobra.Command {
	var window int

	cmd := &cobra.Command{
		Use:   "trend <season>",
		Short: "Match-by-match form with trailing xG and goal averages",
		Example: `  statsctl trend 2024-25
  statsctl trend 2024-25 --window 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envFor(cmd)
			if err != nil {
				return err
			}
			return runTrend(cmd, env, args[0], window)
		},
	}

	cmd.Flags().IntVarP(&window, "window", "w", 0, "Rolling window size in matches (0 = configured default)")
	return cmd
}

func runTrend(cmd *cobra.Command, env *Env, season string, window int) error {
	points, err := env.Insight.PerformanceTrends(cmd.Context(), season, window)
	if err != nil {
		return fmt.Errorf("performance trend for %s: %w", season, err)
	}

	return emit(cmd, env, points, func(w io.Writer) table.Writer {
		t := newTable(w, "Date", "Opponent", "Res", "G", "xG", "Shots", "On target", "Big chances", "Avg xG", "Avg G")
		rightAlign(t, 4, 5, 6, 7, 8, 9, 10)
		for _, p := range points {
			t.AppendRow(table.Row{
				day(p.MatchDate), p.Opponent, string(p.Result), p.Goals, f2(p.XG),
				p.Shots, p.ShotsOnTarget, p.BigChances, f2(p.RollingAvgXG), f2(p.RollingAvgGoals),
			})
		}
		return t
	})
}
