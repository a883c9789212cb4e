package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/analytics"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
)

const defaultMatchListLimit = 100

// MatchOption is a lightweight entry for match pickers.
type MatchOption struct {
	ID       string
	Date     time.Time
	Label    string
	Opponent string
	Result   match.Result
}

type MatchService struct {
	matchRepo match.Repository
	shotRepo  shot.Repository
	club      string
}

func NewMatchService(matchRepo match.Repository, shotRepo shot.Repository, club string) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		shotRepo:  shotRepo,
		club:      club,
	}
}

// ListMatches returns the most recent matches first. An empty season lists
// across all seasons.
func (s *MatchService) ListMatches(ctx context.Context, season string, limit int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	limit, err := resolveLimit(limit, defaultMatchListLimit)
	if err != nil {
		return nil, err
	}

	var matches []match.Match
	if season = strings.TrimSpace(season); season == "" {
		matches, err = s.matchRepo.ListAll(ctx)
	} else {
		matches, err = s.matchRepo.ListBySeason(ctx, season)
	}
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	sortMatchesDesc(matches)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (s *MatchService) ListMatchOptions(ctx context.Context, season string) ([]MatchOption, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatchOptions")
	defer span.End()

	season, err := requireText(season, "season")
	if err != nil {
		return nil, err
	}

	matches, err := s.matchRepo.ListBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list matches by season: %w", err)
	}
	sortMatchesDesc(matches)

	out := make([]MatchOption, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchOption{
			ID:       m.ID,
			Date:     m.Date,
			Label:    m.Label(),
			Opponent: m.Opponent,
			Result:   m.Result,
		})
	}
	return out, nil
}

// ListMatchShots returns both teams' shots in minute order.
func (s *MatchService) ListMatchShots(ctx context.Context, matchID string) ([]shot.Shot, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatchShots")
	defer span.End()

	matchID, err := requireText(matchID, "match id")
	if err != nil {
		return nil, false, err
	}

	_, shots, exists, err := s.loadMatchWithShots(ctx, matchID)
	if err != nil || !exists {
		return nil, exists, err
	}
	return shots, true, nil
}

// ListSeasonShots defaults team to the configured club.
func (s *MatchService) ListSeasonShots(ctx context.Context, season, team string) ([]shot.Shot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListSeasonShots")
	defer span.End()

	season, err := requireText(season, "season")
	if err != nil {
		return nil, err
	}
	if team = strings.TrimSpace(team); team == "" {
		team = s.club
	}

	shots, err := s.shotRepo.ListBySeasonAndTeam(ctx, season, team)
	if err != nil {
		return nil, fmt.Errorf("list shots by season: %w", err)
	}
	return shots, nil
}

// ListMatchPlayers lists the club players who took a shot in the match.
func (s *MatchService) ListMatchPlayers(ctx context.Context, matchID string) ([]string, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatchPlayers")
	defer span.End()

	matchID, err := requireText(matchID, "match id")
	if err != nil {
		return nil, false, err
	}

	_, shots, exists, err := s.loadMatchWithShots(ctx, matchID)
	if err != nil || !exists {
		return nil, exists, err
	}

	groups := analytics.GroupByPlayer(clubShots(shots, s.club))
	players := make([]string, 0, len(groups))
	for name := range groups {
		players = append(players, name)
	}
	sort.Strings(players)
	return players, true, nil
}

func (s *MatchService) ListMatchPlayerShots(ctx context.Context, matchID, playerName string) ([]shot.Shot, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatchPlayerShots")
	defer span.End()

	matchID, err := requireText(matchID, "match id")
	if err != nil {
		return nil, false, err
	}
	playerName, err = requireText(playerName, "player name")
	if err != nil {
		return nil, false, err
	}

	_, shots, exists, err := s.loadMatchWithShots(ctx, matchID)
	if err != nil || !exists {
		return nil, exists, err
	}

	out := make([]shot.Shot, 0)
	for _, item := range clubShots(shots, s.club) {
		if item.PlayerName == playerName {
			out = append(out, item)
		}
	}
	return out, true, nil
}

func (s *MatchService) GetAdvancedStats(ctx context.Context, matchID string) (analytics.MatchAdvanced, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetAdvancedStats")
	defer span.End()

	matchID, err := requireText(matchID, "match id")
	if err != nil {
		return analytics.MatchAdvanced{}, false, err
	}

	item, shots, exists, err := s.loadMatchWithShots(ctx, matchID)
	if err != nil || !exists {
		return analytics.MatchAdvanced{}, exists, err
	}
	return analytics.MatchAdvancedStats(item, shots, s.club), true, nil
}

// loadMatchWithShots fetches the match row and its shots concurrently.
func (s *MatchService) loadMatchWithShots(ctx context.Context, matchID string) (match.Match, []shot.Shot, bool, error) {
	var (
		item   match.Match
		exists bool
		shots  []shot.Shot
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		item, exists, err = s.matchRepo.GetByID(ctx, matchID)
		if err != nil {
			return fmt.Errorf("get match: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		shots, err = s.shotRepo.ListByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("list shots by match: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return match.Match{}, nil, false, err
	}
	if !exists {
		return match.Match{}, nil, false, nil
	}

	sort.SliceStable(shots, func(i, j int) bool {
		return shots[i].Minute < shots[j].Minute
	})
	return item, shots, true, nil
}

func clubShots(shots []shot.Shot, club string) []shot.Shot {
	out := make([]shot.Shot, 0, len(shots))
	for _, item := range shots {
		if item.Team == club {
			out = append(out, item)
		}
	}
	return out
}

func sortMatchesDesc(matches []match.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].Date.Equal(matches[j].Date) {
			return matches[i].Date.After(matches[j].Date)
		}
		return matches[i].ID > matches[j].ID
	})
}

func sortMatchesAsc(matches []match.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].Date.Equal(matches[j].Date) {
			return matches[i].Date.Before(matches[j].Date)
		}
		return matches[i].ID < matches[j].ID
	})
}
