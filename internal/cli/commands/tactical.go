package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/analytics"
)

// NewTacticalCommand creates the tactical command.
func NewTacticalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tactical <season>",
		Short: "Shot timing, situations and build-up for a season",
		Long: `Break the club's shots for a season down by 15-minute band, by game
situation and by the action that preceded the shot.`,
		Example: `  statsctl tactical 2024-25
  statsctl tactical 2024-25 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envFor(cmd)
			if err != nil {
				return err
			}
			return runTactical(cmd, env, args[0])
		},
	}
}

func runTactical(cmd *cobra.Command, env *Env, season string) error {
	breakdown, exists, err := env.Tactical.GetSeasonBreakdown(cmd.Context(), season)
	if err != nil {
		return fmt.Errorf("tactical breakdown for %s: %w", season, err)
	}
	if !exists {
		return fmt.Errorf("no shots recorded for season %s", season)
	}

	return emit(cmd, env, breakdown, func(w io.Writer) table.Writer {
		return tacticalTable(w, breakdown)
	})
}

func tacticalTable(w io.Writer, b analytics.TacticalBreakdown) table.Writer {
	t := newTable(w, "Group", "Bucket", "Shots", "Goals", "xG")
	t.SetTitle("Tactical breakdown %s", b.Season)
	rightAlign(t, 3, 4, 5)

	for _, bucket := range b.Timing {
		t.AppendRow(table.Row{"Timing", bucket.Label, bucket.Shots, bucket.Goals, ""})
	}
	t.AppendSeparator()

	situations := []struct {
		name  string
		split analytics.SituationSplit
	}{
		{"Open play", b.OpenPlay},
		{"Corner", b.Corner},
		{"Set piece", b.SetPiece},
		{"Penalty", b.Penalty},
	}
	for _, s := range situations {
		t.AppendRow(table.Row{"Situation", s.name, s.split.Shots, s.split.Goals, f2(s.split.XG)})
	}
	t.AppendSeparator()

	t.AppendRows([]table.Row{
		{"Build-up", "Pass", b.ShotsFromPass, "", ""},
		{"Build-up", "Dribble", b.ShotsFromDribble, "", ""},
		{"Build-up", "Rebound", b.ShotsFromRebound, "", ""},
		{"Build-up", "Chipped", b.ShotsFromChip, "", ""},
		{"Build-up", "Cross", b.ShotsFromCross, "", ""},
	})
	t.AppendSeparator()
	t.AppendRow(table.Row{"Big chances", "created / converted", b.BigChancesCreated, b.BigChancesConverted, ""})
	return t
}
