package commands

import (
	"context"
	"time"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/app"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/config"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/platform/logging"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/usecase"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Env carries the services a command needs. The root command builds one in
// PersistentPreRunE and stores it in the command context.
type Env struct {
	Club     string
	Output   string
	Logger   *logging.Logger
	Seasons  *usecase.SeasonService
	Players  *usecase.PlayerService
	Tactical *usecase.TacticalService
	Insight  *usecase.InsightService
	Loader   *usecase.LoadService
}

func NewEnv(cfg config.Config, repos app.Repositories, logger *logging.Logger, now func() time.Time) *Env {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Env{
		Club:     repos.Club,
		Output:   OutputTable,
		Logger:   logger,
		Seasons:  usecase.NewSeasonService(repos.Matches),
		Players:  usecase.NewPlayerService(repos.Matches, repos.Shots, repos.Club, cfg.PlayerStatsWorkers),
		Tactical: usecase.NewTacticalService(repos.Shots, repos.Club),
		Insight:  usecase.NewInsightService(repos.Matches, repos.Shots, repos.Club, cfg.TrendWindowDefault, now),
		Loader:   usecase.NewLoadService(repos.Matches, repos.Shots),
	}
}

type envKey struct{}

func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// EnvFrom returns the Env stored by WithEnv, or nil.
func EnvFrom(ctx context.Context) *Env {
	if ctx == nil {
		return nil
	}
	env, _ := ctx.Value(envKey{}).(*Env)
	return env
}
