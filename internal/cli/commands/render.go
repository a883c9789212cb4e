package commands

import (
	"fmt"
	"io"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func envFor(cmd *cobra.Command) (*Env, error) {
	env := EnvFrom(cmd.Context())
	if env == nil {
		return nil, fmt.Errorf("%s: command environment is not initialised", cmd.Name())
	}
	return env, nil
}

func newTable(w io.Writer, header ...any) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row(header))
	return t
}

// rightAlign right-aligns the given 1-based columns, which hold numbers.
func rightAlign(t table.Writer, cols ...int) {
	configs := make([]table.ColumnConfig, 0, len(cols))
	for _, n := range cols {
		configs = append(configs, table.ColumnConfig{Number: n, Align: text.AlignRight})
	}
	t.SetColumnConfigs(configs)
}

// emit writes payload as indented JSON when --output=json, otherwise renders
// the table built by build.
func emit(cmd *cobra.Command, env *Env, payload any, build func(w io.Writer) table.Writer) error {
	w := cmd.OutOrStdout()
	if env.Output == OutputJSON {
		raw, err := sonic.ConfigStd.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(raw))
		return err
	}

	build(w).Render()
	return nil
}

func f2(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func day(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.DateOnly)
}
