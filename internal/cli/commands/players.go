package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/analytics"
)

// NewPlayersCommand creates the players command.
func NewPlayersCommand() *cobra.Command {
	var (
		limit  int
		player string
	)

	cmd := &cobra.Command{
		Use:   "players <season>",
		Short: "Per-player shooting statistics for a season",
		Long: `Aggregate every club shooter for the season, highest total xG first.

Use --player for the full breakdown of a single player.`,
		Example: `  statsctl players 2024-25 --limit 10
  statsctl players 2024-25 --player "Bukayo Saka"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envFor(cmd)
			if err != nil {
				return err
			}
			if player != "" {
				return runPlayer(cmd, env, args[0], player)
			}
			return runPlayers(cmd, env, args[0], limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many players (0 = service default)")
	cmd.Flags().StringVarP(&player, "player", "p", "", "Show one player's detailed breakdown")
	return cmd
}

func runPlayers(cmd *cobra.Command, env *Env, season string, limit int) error {
	stats, err := env.Players.ListSeasonStats(cmd.Context(), season, limit)
	if err != nil {
		return fmt.Errorf("player stats for %s: %w", season, err)
	}

	return emit(cmd, env, stats, func(w io.Writer) table.Writer {
		t := newTable(w, "Player", "MP", "Shots", "Goals", "xG", "xG/shot", "Conv %", "Acc %", "Assists", "G - xG")
		rightAlign(t, 2, 3, 4, 5, 6, 7, 8, 9, 10)
		for _, s := range stats {
			t.AppendRow(table.Row{
				s.PlayerName, s.MatchesPlayed, s.TotalShots, s.Goals, f2(s.TotalXG), f2(s.AvgXGPerShot),
				pct(s.ConversionPct), pct(s.ShotAccuracyPct), s.Assists, f2(s.XGOverperformance),
			})
		}
		return t
	})
}

func runPlayer(cmd *cobra.Command, env *Env, season, player string) error {
	stats, exists, err := env.Players.GetPlayerStats(cmd.Context(), season, player)
	if err != nil {
		return fmt.Errorf("player stats for %s in %s: %w", player, season, err)
	}
	if !exists {
		return fmt.Errorf("no shots recorded for %s in %s", player, season)
	}

	return emit(cmd, env, stats, func(w io.Writer) table.Writer {
		return playerDetail(w, stats)
	})
}

func playerDetail(w io.Writer, s analytics.PlayerSeasonStats) table.Writer {
	t := newTable(w, "Metric", "Value")
	t.SetTitle("%s %s", s.PlayerName, s.Season)
	t.AppendRows([]table.Row{
		{"Matches", s.MatchesPlayed},
		{"Shots / on target", fmt.Sprintf("%d / %d", s.TotalShots, s.ShotsOnTarget)},
		{"Goals", s.Goals},
		{"xG", f2(s.TotalXG)},
		{"Conversion", pct(s.ConversionPct)},
		{"Accuracy", pct(s.ShotAccuracyPct)},
		{"Saved / blocked / missed", fmt.Sprintf("%d / %d / %d", s.SavedShots, s.BlockedShots, s.MissedShots)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Big chances (scored)", fmt.Sprintf("%d (%d)", s.BigChances, s.BigChancesScored)},
		{"Big chance conversion", pct(s.BigChanceConversionPct)},
		{"Box / outside box", fmt.Sprintf("%d / %d", s.BoxShots, s.OutsideBoxShots)},
		{"Avg distance (m)", f2(s.AvgShotDistance)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Right foot (goals)", fmt.Sprintf("%d (%d)", s.RightFootShots, s.RightFootGoals)},
		{"Left foot (goals)", fmt.Sprintf("%d (%d)", s.LeftFootShots, s.LeftFootGoals)},
		{"Headers (goals)", fmt.Sprintf("%d (%d)", s.Headers, s.HeaderGoals)},
		{"Open play (goals)", fmt.Sprintf("%d (%d)", s.OpenPlayShots, s.OpenPlayGoals)},
		{"Corners / set pieces", fmt.Sprintf("%d / %d", s.CornerShots, s.SetPieceShots)},
		{"Penalties (scored)", fmt.Sprintf("%d (%d)", s.PenaltiesTaken, s.PenaltiesScored)},
		{"Assists", s.Assists},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Shots per match", f2(s.ShotsPerMatch)},
		{"Goals per match", f2(s.GoalsPerMatch)},
		{"xG per match", f2(s.XGPerMatch)},
		{"Goals - xG", f2(s.XGOverperformance)},
	})
	return t
}
