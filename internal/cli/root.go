// Package cli provides the statsctl command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/app"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/cli/commands"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/config"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/platform/logging"
)

// Version is set at build time.
var Version = "dev"

type rootState struct {
	source   string
	club     string
	output   string
	logLevel string

	logger *logging.Logger
	repos  app.Repositories
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootState{})
}

func newRootCmd(state *rootState) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "statsctl",
		Short: "Query and load club match analytics from the terminal",
		Long: `statsctl derives season, player, opponent and tactical metrics from the
club's match and shot facts, and loads new Understat exports.

Configuration comes from the same environment (and optional .env file) as
the API. Flags override it for a single invocation.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			if commands.EnvFrom(cmd.Context()) != nil {
				return nil
			}

			env, err := state.buildEnv(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(commands.WithEnv(cmd.Context(), env))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&state.source, "source", "", "Data source: postgres or memory (default: $DATA_SOURCE)")
	flags.StringVar(&state.club, "club", "", "Club the facts are recorded for (default: $CLUB_NAME)")
	flags.StringVarP(&state.output, "output", "o", commands.OutputTable, "Output format: table or json")
	flags.StringVar(&state.logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $APP_LOG_LEVEL)")

	_ = rootCmd.RegisterFlagCompletionFunc("source", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.SourcePostgres, config.SourceMemory}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{commands.OutputTable, commands.OutputJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewSeasonCommand())
	rootCmd.AddCommand(commands.NewOpponentsCommand())
	rootCmd.AddCommand(commands.NewTrendCommand())
	rootCmd.AddCommand(commands.NewPlayersCommand())
	rootCmd.AddCommand(commands.NewTacticalCommand())
	rootCmd.AddCommand(commands.NewQualityCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewLoadCommand())

	return rootCmd
}

func (s *rootState) buildEnv(cmd *cobra.Command) (*commands.Env, error) {
	output := strings.ToLower(strings.TrimSpace(s.output))
	if output != commands.OutputTable && output != commands.OutputJSON {
		return nil, fmt.Errorf("invalid --output %q: valid values are %s, %s", s.output, commands.OutputTable, commands.OutputJSON)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(&cfg, cmd.Flags()); err != nil {
		return nil, err
	}

	s.logger = logging.NewConsole(cfg.LogLevel).With("cmd", cmd.Name())
	logging.SetDefault(s.logger)

	s.repos, err = app.NewRepositories(cfg, s.logger)
	if err != nil {
		return nil, fmt.Errorf("open %s source: %w", cfg.DataSource, err)
	}
	if s.club != "" && s.repos.Club != cfg.ClubName {
		s.logger.Warn("club flag ignored by this source", "club", s.club, "using", s.repos.Club)
	}

	env := commands.NewEnv(cfg, s.repos, s.logger, time.Now)
	env.Output = output
	return env, nil
}

// applyOverrides copies explicitly set persistent flags over the loaded
// configuration. Unset flags keep the environment's values.
func applyOverrides(cfg *config.Config, flags *pflag.FlagSet) error {
	if flags.Changed("source") {
		raw, _ := flags.GetString("source")
		source := strings.ToLower(strings.TrimSpace(raw))
		if source != config.SourcePostgres && source != config.SourceMemory {
			return fmt.Errorf("invalid --source %q: valid values are %s, %s", raw, config.SourcePostgres, config.SourceMemory)
		}
		cfg.DataSource = source
	}
	if flags.Changed("club") {
		if club, _ := flags.GetString("club"); strings.TrimSpace(club) != "" {
			cfg.ClubName = strings.TrimSpace(club)
		}
	}
	if flags.Changed("log-level") {
		level, _ := flags.GetString("log-level")
		cfg.LogLevel = logging.ParseLevel(level)
	}
	return nil
}

func (s *rootState) close() {
	if err := s.repos.Close(); err != nil && s.logger != nil {
		s.logger.Warn("close repositories failed", "error", err)
	}
	if s.logger != nil {
		_ = s.logger.Sync()
	}
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	state := &rootState{}
	err := newRootCmd(state).ExecuteContext(ctx)
	state.close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
