package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/analytics"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
)

type SeasonService struct {
	matchRepo match.Repository
}

func NewSeasonService(matchRepo match.Repository) *SeasonService {
	return &SeasonService{matchRepo: matchRepo}
}

// ListSeasons returns season labels newest first.
func (s *SeasonService) ListSeasons(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ListSeasons")
	defer span.End()

	seasons, err := s.matchRepo.ListSeasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(seasons)))
	return seasons, nil
}

// GetSummary reports exists=false when the season has no matches.
func (s *SeasonService) GetSummary(ctx context.Context, season string) (analytics.SeasonSummary, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.GetSummary")
	defer span.End()

	season, err := requireText(season, "season")
	if err != nil {
		return analytics.SeasonSummary{}, false, err
	}

	matches, err := s.matchRepo.ListBySeason(ctx, season)
	if err != nil {
		return analytics.SeasonSummary{}, false, fmt.Errorf("list matches by season: %w", err)
	}

	summary, ok := analytics.SummarizeSeason(season, matches)
	return summary, ok, nil
}
