package match

import "context"

type Repository interface {
	ListSeasons(ctx context.Context) ([]string, error)
	// ListBySeason returns matches ordered by date ascending.
	ListBySeason(ctx context.Context, season string) ([]Match, error)
	// ListAll returns every match ordered by date ascending.
	ListAll(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	Upsert(ctx context.Context, matches []Match) error
}
