package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/app"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/config"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/platform/logging"
)

type migrator struct {
	logger *logging.Logger
	m      *migrate.Migrate
	source string
}

func main() {
	logger := logging.NewConsole(logging.LevelInfo)
	defer func() { _ = logger.Sync() }()

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("migration failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newRootCmd(logger *logging.Logger) *cobra.Command {
	var mg migrator
	mg.logger = logger

	root := &cobra.Command{
		Use:           "migration",
		Short:         "Apply or inspect database schema migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return mg.open()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			mg.close()
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:     "up",
			Short:   "Apply every pending migration",
			Args:    cobra.NoArgs,
			Example: "  migration up",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := mg.handle(mg.m.Up()); err != nil {
					return err
				}
				mg.logger.Info("migrations applied", "source", mg.source)
				return nil
			},
		},
		&cobra.Command{
			Use:     "down [steps]",
			Short:   "Roll back migrations (default 1 step)",
			Args:    cobra.MaximumNArgs(1),
			Example: "  migration down\n  migration down 2",
			RunE: func(cmd *cobra.Command, args []string) error {
				steps, err := parseSteps(args)
				if err != nil {
					return err
				}
				if err := mg.handle(mg.m.Steps(-steps)); err != nil {
					return err
				}
				mg.logger.Info("migrations rolled back", "steps", steps)
				return nil
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				out := cmd.OutOrStdout()
				version, dirty, err := mg.m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Fprintln(out, "version: none")
					fmt.Fprintln(out, "dirty: false")
					return nil
				}
				if err != nil {
					return fmt.Errorf("read version: %w", err)
				}
				fmt.Fprintf(out, "version: %d\n", version)
				fmt.Fprintf(out, "dirty: %t\n", dirty)
				return nil
			},
		},
		&cobra.Command{
			Use:     "force <version>",
			Short:   "Set the schema version without running migrations",
			Args:    cobra.ExactArgs(1),
			Example: "  migration force 1771776034",
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := parseVersion(args[0])
				if err != nil {
					return err
				}
				if err := mg.m.Force(version); err != nil {
					return fmt.Errorf("force version %d: %w", version, err)
				}
				mg.logger.Info("forced schema version", "version", version)
				return nil
			},
		},
		&cobra.Command{
			Use:     "goto <version>",
			Aliases: []string{"migrate"},
			Short:   "Migrate up or down to a target version",
			Args:    cobra.ExactArgs(1),
			Example: "  migration goto 1771776120",
			RunE: func(cmd *cobra.Command, args []string) error {
				target, err := parseTarget(args[0])
				if err != nil {
					return err
				}
				if err := mg.handle(mg.m.Migrate(target)); err != nil {
					return err
				}
				mg.logger.Info("migrated", "version", target)
				return nil
			},
		},
	)

	return root
}

func (mg *migrator) open() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	dbURL := app.MigrationDBURL(cfg)
	if dbURL == "" {
		return fmt.Errorf("DB_URL is required")
	}

	dir, err := resolveMigrationsDir()
	if err != nil {
		return fmt.Errorf("resolve migrations dir: %w", err)
	}

	mg.source = "file://" + filepath.ToSlash(dir)
	mg.m, err = migrate.New(mg.source, dbURL)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	return nil
}

func (mg *migrator) close() {
	if mg.m == nil {
		return
	}
	srcErr, dbErr := mg.m.Close()
	if srcErr != nil {
		mg.logger.Warn("close migration source failed", "error", srcErr)
	}
	if dbErr != nil {
		mg.logger.Warn("close migration db failed", "error", dbErr)
	}
}

func (mg *migrator) handle(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, migrate.ErrNoChange) {
		mg.logger.Info("no migration changes")
		return nil
	}
	return err
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}

	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("version must be >= 0")
	}
	if value > int64(^uint(0)>>1) {
		return 0, fmt.Errorf("version is too large for this platform")
	}

	return int(value), nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(value), nil
}

func resolveMigrationsDir() (string, error) {
	candidates := []string{
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
		"./db/migrations",
		"/app/db/migrations",
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", fmt.Errorf("migration directory not found (checked MIGRATIONS_DIR, ./db/migrations, /app/db/migrations)")
}
