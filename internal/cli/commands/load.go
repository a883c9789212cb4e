package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/infrastructure/understat"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/usecase"
)

// NewLoadCommand creates the load command.
func NewLoadCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "load <file>...",
		Short: "Load Understat match exports into the configured store",
		Long: `Read one or more Understat-style JSON exports and upsert their matches
and shots. Each file holds a single match object or an array of them; use
"-" to read from stdin.

Data-quality findings are logged as warnings and never stop the load.
Re-loading a match replaces all of its shots.`,
		Example: `  statsctl load exports/26642.json
  statsctl load --source postgres exports/*.json
  cat match.json | statsctl load -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envFor(cmd)
			if err != nil {
				return err
			}
			return runLoad(cmd, env, args, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Decode and validate only, write nothing")
	return cmd
}

func runLoad(cmd *cobra.Command, env *Env, paths []string, dryRun bool) error {
	decoder := understat.NewDecoder()

	var batches []usecase.LoadBatch
	for _, path := range paths {
		records, err := decodeFile(cmd, decoder, path)
		if err != nil {
			return err
		}
		for _, rec := range records {
			m, shots, err := rec.Facts(env.Club)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			batches = append(batches, usecase.LoadBatch{Match: m, Shots: shots})
		}
		env.Logger.Debug("decoded export", "path", path, "matches", len(records))
	}

	if dryRun {
		shots := 0
		for _, b := range batches {
			shots += len(b.Shots)
		}
		env.Logger.Info("dry run, nothing written", "matches", len(batches), "shots", shots)
		return nil
	}

	report, err := env.Loader.Load(cmd.Context(), batches)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	for _, a := range report.Anomalies {
		env.Logger.Warn("data quality", "subject", a.Subject, "finding", a.Message)
	}
	env.Logger.Info("load complete", "matches", report.Matches, "shots", report.Shots, "anomalies", len(report.Anomalies))

	return emit(cmd, env, report, func(w io.Writer) table.Writer {
		t := newTable(w, "Matches", "Shots", "Anomalies")
		rightAlign(t, 1, 2, 3)
		t.AppendRow(table.Row{report.Matches, report.Shots, len(report.Anomalies)})
		return t
	})
}

func decodeFile(cmd *cobra.Command, decoder *understat.Decoder, path string) ([]understat.MatchRecord, error) {
	if path == "-" {
		records, err := decoder.Decode(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return records, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	records, err := decoder.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
