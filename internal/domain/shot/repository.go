package shot

import "context"

type Repository interface {
	// ListBySeasonAndTeam returns shots ordered by match date descending, minute ascending.
	ListBySeasonAndTeam(ctx context.Context, season, team string) ([]Shot, error)
	ListAll(ctx context.Context) ([]Shot, error)
	// ListByMatch returns both sides' shots ordered by minute.
	ListByMatch(ctx context.Context, matchID string) ([]Shot, error)
	ListByPlayer(ctx context.Context, season, team, playerName string) ([]Shot, error)
	ReplaceForMatch(ctx context.Context, matchID string, shots []Shot) error
}
