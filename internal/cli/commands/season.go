package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/analytics"
)

// NewSeasonCommand creates the season command.
func NewSeasonCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "season [season]",
		Short: "Summarize one season, or every season when none is given",
		Long: `Summarize the club's league record for a season: results, points,
goals, expected goals and the home/away split.

Without an argument every available season is listed, newest first.`,
		Example: `  # All seasons
  statsctl season

  # One season
  statsctl season 2024-25`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envFor(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return runSeason(cmd, env, args[0])
			}
			return runSeasons(cmd, env)
		},
	}
}

func runSeason(cmd *cobra.Command, env *Env, season string) error {
	summary, exists, err := env.Seasons.GetSummary(cmd.Context(), season)
	if err != nil {
		return fmt.Errorf("summarize season %s: %w", season, err)
	}
	if !exists {
		return fmt.Errorf("no matches recorded for season %s", season)
	}

	return emit(cmd, env, summary, func(w io.Writer) table.Writer {
		t := newTable(w, "Metric", "Value")
		t.SetTitle("%s %s", env.Club, summary.Season)
		t.AppendRows([]table.Row{
			{"Matches", summary.MatchesPlayed},
			{"Record (W-D-L)", fmt.Sprintf("%d-%d-%d", summary.Wins, summary.Draws, summary.Losses)},
			{"Points", summary.Points},
			{"Goals", fmt.Sprintf("%d:%d", summary.GoalsFor, summary.GoalsAgainst)},
			{"Goal difference", summary.GoalDifference},
		})
		t.AppendSeparator()
		t.AppendRows([]table.Row{
			{"xG for", f2(summary.TotalXGFor)},
			{"xG against", f2(summary.TotalXGAgainst)},
			{"xG per match", f2(summary.AvgXGPerMatch)},
			{"Goals - xG", f2(summary.TotalXGOverperformance)},
		})
		t.AppendSeparator()
		t.AppendRows([]table.Row{
			{"Home (W/P)", fmt.Sprintf("%d/%d", summary.HomeWins, summary.HomeMatches)},
			{"Away (W/P)", fmt.Sprintf("%d/%d", summary.AwayWins, summary.AwayMatches)},
		})
		return t
	})
}

func runSeasons(cmd *cobra.Command, env *Env) error {
	seasons, err := env.Seasons.ListSeasons(cmd.Context())
	if err != nil {
		return fmt.Errorf("list seasons: %w", err)
	}

	summaries := make([]analytics.SeasonSummary, 0, len(seasons))
	for _, season := range seasons {
		summary, exists, err := env.Seasons.GetSummary(cmd.Context(), season)
		if err != nil {
			return fmt.Errorf("summarize season %s: %w", season, err)
		}
		if exists {
			summaries = append(summaries, summary)
		}
	}

	return emit(cmd, env, summaries, func(w io.Writer) table.Writer {
		t := newTable(w, "Season", "P", "W", "D", "L", "Pts", "GF", "GA", "GD", "xG", "xGA")
		rightAlign(t, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)
		for _, s := range summaries {
			t.AppendRow(table.Row{
				s.Season, s.MatchesPlayed, s.Wins, s.Draws, s.Losses, s.Points,
				s.GoalsFor, s.GoalsAgainst, s.GoalDifference, f2(s.TotalXGFor), f2(s.TotalXGAgainst),
			})
		}
		return t
	})
}
