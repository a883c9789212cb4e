// Package guarded wraps repositories with a circuit breaker so a failing
// database is reported as unavailable instead of being hammered by every
// request.
package guarded

import (
	"context"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/platform/resilience"
)

type MatchRepository struct {
	next    match.Repository
	breaker *resilience.Breaker
}

func NewMatchRepository(next match.Repository, breaker *resilience.Breaker) *MatchRepository {
	return &MatchRepository{next: next, breaker: breaker}
}

func (r *MatchRepository) ListSeasons(ctx context.Context) ([]string, error) {
	var out []string
	err := r.breaker.Do(func() error {
		var err error
		out, err = r.next.ListSeasons(ctx)
		return err
	})
	return out, err
}

func (r *MatchRepository) ListBySeason(ctx context.Context, season string) ([]match.Match, error) {
	var out []match.Match
	err := r.breaker.Do(func() error {
		var err error
		out, err = r.next.ListBySeason(ctx, season)
		return err
	})
	return out, err
}

func (r *MatchRepository) ListAll(ctx context.Context) ([]match.Match, error) {
	var out []match.Match
	err := r.breaker.Do(func() error {
		var err error
		out, err = r.next.ListAll(ctx)
		return err
	})
	return out, err
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	var (
		out    match.Match
		exists bool
	)
	err := r.breaker.Do(func() error {
		var err error
		out, exists, err = r.next.GetByID(ctx, matchID)
		return err
	})
	return out, exists, err
}

func (r *MatchRepository) Upsert(ctx context.Context, matches []match.Match) error {
	return r.breaker.Do(func() error {
		return r.next.Upsert(ctx, matches)
	})
}

type ShotRepository struct {
	next    shot.Repository
	breaker *resilience.Breaker
}

func NewShotRepository(next shot.Repository, breaker *resilience.Breaker) *ShotRepository {
	return &ShotRepository{next: next, breaker: breaker}
}

func (r *ShotRepository) ListBySeasonAndTeam(ctx context.Context, season, team string) ([]shot.Shot, error) {
	var out []shot.Shot
	err := r.breaker.Do(func() error {
		var err error
		out, err = r.next.ListBySeasonAndTeam(ctx, season, team)
		return err
	})
	return out, err
}

func (r *ShotRepository) ListAll(ctx context.Context) ([]shot.Shot, error) {
	var out []shot.Shot
	err := r.breaker.Do(func() error {
		var err error
		out, err = r.next.ListAll(ctx)
		return err
	})
	return out, err
}

func (r *ShotRepository) ListByMatch(ctx context.Context, matchID string) ([]shot.Shot, error) {
	var out []shot.Shot
	err := r.breaker.Do(func() error {
		var err error
		out, err = r.next.ListByMatch(ctx, matchID)
		return err
	})
	return out, err
}

func (r *ShotRepository) ListByPlayer(ctx context.Context, season, team, playerName string) ([]shot.Shot, error) {
	var out []shot.Shot
	err := r.breaker.Do(func() error {
		var err error
		out, err = r.next.ListByPlayer(ctx, season, team, playerName)
		return err
	})
	return out, err
}

func (r *ShotRepository) ReplaceForMatch(ctx context.Context, matchID string, shots []shot.Shot) error {
	return r.breaker.Do(func() error {
		return r.next.ReplaceForMatch(ctx, matchID, shots)
	})
}
