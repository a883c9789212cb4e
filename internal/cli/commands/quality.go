package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewQualityCommand creates the quality command.
func NewQualityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quality",
		Short: "Coverage and freshness of the loaded match data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := envFor(cmd)
			if err != nil {
				return err
			}
			return runQuality(cmd, env)
		},
	}
}

func runQuality(cmd *cobra.Command, env *Env) error {
	report, err := env.Insight.DataQuality(cmd.Context())
	if err != nil {
		return fmt.Errorf("data quality: %w", err)
	}

	return emit(cmd, env, report, func(w io.Writer) table.Writer {
		lastUpdate := "-"
		if report.HasLastUpdate {
			lastUpdate = day(report.LastUpdate)
		}

		t := newTable(w, "Metric", "Value")
		t.SetTitle("Data quality")
		t.AppendRows([]table.Row{
			{"Matches", report.TotalMatches},
			{"Shots", report.TotalShots},
			{"Completeness", pct(report.DataCompleteness)},
			{"Last update", lastUpdate},
			{"Freshness", report.DataFreshness},
			{"Seasons", strings.Join(report.SeasonsAvailable, ", ")},
			{"Validation anomalies", report.ValidationErrors},
		})
		return t
	})
}
