package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/config"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/infrastructure/repository/guarded"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/infrastructure/repository/memory"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/infrastructure/repository/postgres"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/interfaces/httpapi"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/platform/logging"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/platform/resilience"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/usecase"
)

// Repositories bundles the storage backends every entry point needs.
type Repositories struct {
	Matches match.Repository
	Shots   shot.Repository
	Club    string
	close   func() error
}

func (r Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// OpenDB opens an instrumented Postgres handle.
func OpenDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}

// NewRepositories picks the backend named by cfg.DataSource. The memory
// backend serves the bundled demo fixtures and always reports SeedClub.
func NewRepositories(cfg config.Config, logger *logging.Logger) (Repositories, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if cfg.DataSource == config.SourceMemory {
		logger.Info("using in-memory repositories", "club", memory.SeedClub)
		return Repositories{
			Matches: memory.NewMatchRepository(memory.SeedMatches()),
			Shots:   memory.NewShotRepository(memory.SeedShots()),
			Club:    memory.SeedClub,
		}, nil
	}

	db, err := OpenDB(cfg)
	if err != nil {
		return Repositories{}, err
	}
	logger.Info("using postgres repositories", "db", dbNameFromURL(cfg.DBURL), "club", cfg.ClubName, "circuit_breaker", cfg.DBBreakerEnabled)

	repos := Repositories{
		Matches: postgres.NewMatchRepository(db),
		Shots:   postgres.NewShotRepository(db),
		Club:    cfg.ClubName,
		close:   db.Close,
	}
	if cfg.DBBreakerEnabled {
		// One breaker for both tables: they share a connection pool.
		breaker := resilience.NewBreaker(resilience.BreakerConfig{
			Enabled:          true,
			FailureThreshold: cfg.DBBreakerThreshold,
			OpenTimeout:      cfg.DBBreakerOpenTimeout,
		})
		repos.Matches = guarded.NewMatchRepository(repos.Matches, breaker)
		repos.Shots = guarded.NewShotRepository(repos.Shots, breaker)
	}
	return repos, nil
}

func NewHandler(cfg config.Config, repos Repositories, logger *logging.Logger) *httpapi.Handler {
	return httpapi.NewHandler(
		usecase.NewSeasonService(repos.Matches),
		usecase.NewMatchService(repos.Matches, repos.Shots, repos.Club),
		usecase.NewPlayerService(repos.Matches, repos.Shots, repos.Club, cfg.PlayerStatsWorkers),
		usecase.NewTacticalService(repos.Shots, repos.Club),
		usecase.NewInsightService(repos.Matches, repos.Shots, repos.Club, cfg.TrendWindowDefault, time.Now),
		logger,
	)
}

func NewHTTPServer(cfg config.Config, repos Repositories, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	router := httpapi.NewRouter(NewHandler(cfg, repos, logger), logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
