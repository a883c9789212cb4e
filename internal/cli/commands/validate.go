package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the data-quality checks over every loaded match and shot",
		Long: `Check matches, shots and the per-season aggregates derived from them.

Findings are advisory and printed as a list. With --strict the command
exits non-zero when anything is found, which suits CI jobs.`,
		Example: `  statsctl validate
  statsctl validate --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := envFor(cmd)
			if err != nil {
				return err
			}
			return runValidate(cmd, env, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any anomaly is found")
	return cmd
}

func runValidate(cmd *cobra.Command, env *Env, strict bool) error {
	anomalies, err := env.Insight.Anomalies(cmd.Context())
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	if len(anomalies) == 0 && env.Output != OutputJSON {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no anomalies found")
	} else {
		err = emit(cmd, env, anomalies, func(w io.Writer) table.Writer {
			t := newTable(w, "#", "Subject", "Finding")
			rightAlign(t, 1)
			for i, a := range anomalies {
				t.AppendRow(table.Row{i + 1, a.Subject, a.Message})
			}
			t.AppendFooter(table.Row{"", "Total", len(anomalies)})
			return t
		})
		if err != nil {
			return err
		}
	}

	if strict && len(anomalies) > 0 {
		return fmt.Errorf("%d anomalies found", len(anomalies))
	}
	return nil
}
