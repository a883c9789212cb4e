package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/analytics"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
)

const (
	defaultPlayerStatsLimit   = 50
	defaultAssistNetworkLimit = 50
	defaultPlayerStatsWorkers = 4
)

type PlayerService struct {
	matchRepo match.Repository
	shotRepo  shot.Repository
	club      string
	workers   int
}

func NewPlayerService(matchRepo match.Repository, shotRepo shot.Repository, club string, workers int) *PlayerService {
	if workers < 1 {
		workers = defaultPlayerStatsWorkers
	}
	return &PlayerService{
		matchRepo: matchRepo,
		shotRepo:  shotRepo,
		club:      club,
		workers:   workers,
	}
}

// ListSeasonStats aggregates every club shooter of the season, highest total
// xG first.
func (s *PlayerService) ListSeasonStats(ctx context.Context, season string, limit int) ([]analytics.PlayerSeasonStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListSeasonStats")
	defer span.End()

	season, err := requireText(season, "season")
	if err != nil {
		return nil, err
	}
	limit, err = resolveLimit(limit, defaultPlayerStatsLimit)
	if err != nil {
		return nil, err
	}

	shots, known, err := s.loadSeason(ctx, season)
	if err != nil {
		return nil, err
	}

	stats, err := s.aggregateAll(season, shots, known)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].TotalXG != stats[j].TotalXG {
			return stats[i].TotalXG > stats[j].TotalXG
		}
		return stats[i].PlayerName < stats[j].PlayerName
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats, nil
}

// GetPlayerStats reports exists=false when the player has no shots in the season.
func (s *PlayerService) GetPlayerStats(ctx context.Context, season, playerName string) (analytics.PlayerSeasonStats, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerStats")
	defer span.End()

	season, err := requireText(season, "season")
	if err != nil {
		return analytics.PlayerSeasonStats{}, false, err
	}
	playerName, err = requireText(playerName, "player name")
	if err != nil {
		return analytics.PlayerSeasonStats{}, false, err
	}

	shots, known, err := s.loadSeason(ctx, season)
	if err != nil {
		return analytics.PlayerSeasonStats{}, false, err
	}

	own := analytics.GroupByPlayer(shots)[playerName]
	if len(own) == 0 {
		return analytics.PlayerSeasonStats{}, false, nil
	}

	return analytics.AggregatePlayer(own, analytics.PlayerContext{
		PlayerName:    playerName,
		Season:        season,
		MatchesPlayed: analytics.MatchesWithShots(own, known),
		Assists:       analytics.CountAssists(shots)[playerName],
	}), true, nil
}

func (s *PlayerService) ListPlayerShots(ctx context.Context, season, playerName string) ([]shot.Shot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayerShots")
	defer span.End()

	season, err := requireText(season, "season")
	if err != nil {
		return nil, err
	}
	playerName, err = requireText(playerName, "player name")
	if err != nil {
		return nil, err
	}

	shots, err := s.shotRepo.ListByPlayer(ctx, season, s.club, playerName)
	if err != nil {
		return nil, fmt.Errorf("list shots by player: %w", err)
	}
	return shots, nil
}

func (s *PlayerService) SeasonAssistNetwork(ctx context.Context, season string, limit int) ([]analytics.AssistEdge, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SeasonAssistNetwork")
	defer span.End()

	season, err := requireText(season, "season")
	if err != nil {
		return nil, err
	}
	limit, err = resolveLimit(limit, defaultAssistNetworkLimit)
	if err != nil {
		return nil, err
	}

	shots, err := s.shotRepo.ListBySeasonAndTeam(ctx, season, s.club)
	if err != nil {
		return nil, fmt.Errorf("list shots by season: %w", err)
	}

	edges := analytics.BuildAssistNetwork(season, shots)
	if len(edges) > limit {
		edges = edges[:limit]
	}
	return edges, nil
}

// MatchAssistNetwork limits the network to the club's shots in one match.
func (s *PlayerService) MatchAssistNetwork(ctx context.Context, matchID string) ([]analytics.AssistEdge, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.MatchAssistNetwork")
	defer span.End()

	matchID, err := requireText(matchID, "match id")
	if err != nil {
		return nil, false, err
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, false, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return nil, false, nil
	}

	shots, err := s.shotRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, false, fmt.Errorf("list shots by match: %w", err)
	}
	return analytics.BuildAssistNetwork(item.Season, clubShots(shots, s.club)), true, nil
}

func (s *PlayerService) loadSeason(ctx context.Context, season string) ([]shot.Shot, map[string]struct{}, error) {
	matches, err := s.matchRepo.ListBySeason(ctx, season)
	if err != nil {
		return nil, nil, fmt.Errorf("list matches by season: %w", err)
	}
	shots, err := s.shotRepo.ListBySeasonAndTeam(ctx, season, s.club)
	if err != nil {
		return nil, nil, fmt.Errorf("list shots by season: %w", err)
	}

	known := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		known[m.ID] = struct{}{}
	}
	return shots, known, nil
}

// aggregateAll fans the per-player aggregation out over a bounded worker pool.
func (s *PlayerService) aggregateAll(season string, shots []shot.Shot, known map[string]struct{}) ([]analytics.PlayerSeasonStats, error) {
	groups := analytics.GroupByPlayer(shots)
	if len(groups) == 0 {
		return []analytics.PlayerSeasonStats{}, nil
	}
	assists := analytics.CountAssists(shots)

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("%w: create worker pool: %v", ErrDependencyUnavailable, err)
	}
	defer pool.Release()

	results := make(chan analytics.PlayerSeasonStats, len(groups))
	var workers sync.WaitGroup
	for name, own := range groups {
		name, own := name, own
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results <- analytics.AggregatePlayer(own, analytics.PlayerContext{
				PlayerName:    name,
				Season:        season,
				MatchesPlayed: analytics.MatchesWithShots(own, known),
				Assists:       assists[name],
			})
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("%w: submit aggregation task: %v", ErrDependencyUnavailable, err)
		}
	}

	workers.Wait()
	close(results)

	out := make([]analytics.PlayerSeasonStats, 0, len(groups))
	for row := range results {
		out = append(out, row)
	}
	return out, nil
}
