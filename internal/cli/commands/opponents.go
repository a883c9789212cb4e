package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewOpponentsCommand creates the opponents command.
func NewOpponentsCommand() *cobra.Command {
	var season string

	cmd := &cobra.Command{
		Use:   "opponents",
		Short: "Head-to-head record against every opponent",
		Long: `List one row per opponent with results, goals and expected goals.

Rows are ordered by matches played, then win rate.`,
		Example: `  statsctl opponents
  statsctl opponents --season 2024-25 --limit 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := envFor(cmd)
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")
			return runOpponents(cmd, env, season, limit)
		},
	}

	cmd.Flags().StringVarP(&season, "season", "s", "", "Restrict to one season (default: all seasons)")
	cmd.Flags().IntP("limit", "n", 0, "Show at most this many opponents (0 = all)")
	return cmd
}

func runOpponents(cmd *cobra.Command, env *Env, season string, limit int) error {
	records, err := env.Insight.CompareOpponents(cmd.Context(), season)
	if err != nil {
		return fmt.Errorf("compare opponents: %w", err)
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return emit(cmd, env, records, func(w io.Writer) table.Writer {
		t := newTable(w, "Opponent", "P", "W", "D", "L", "Win %", "GF", "GA", "xG", "xGA", "CS", "Last")
		rightAlign(t, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)
		for _, r := range records {
			t.AppendRow(table.Row{
				r.Opponent, r.MatchesPlayed, r.Wins, r.Draws, r.Losses, pct(r.WinRatePct),
				r.GoalsFor, r.GoalsAgainst, f2(r.TotalXGFor), f2(r.TotalXGAgainst), r.CleanSheets,
				fmt.Sprintf("%s %s", day(r.LastPlayed), r.LastResult),
			})
		}
		return t
	})
}
