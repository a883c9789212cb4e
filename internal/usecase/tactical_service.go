package usecase

import (
	"context"
	"fmt"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/analytics"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
)

type TacticalService struct {
	shotRepo shot.Repository
	club     string
}

func NewTacticalService(shotRepo shot.Repository, club string) *TacticalService {
	return &TacticalService{shotRepo: shotRepo, club: club}
}

func (s *TacticalService) GetSeasonBreakdown(ctx context.Context, season string) (analytics.TacticalBreakdown, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TacticalService.GetSeasonBreakdown")
	defer span.End()

	season, err := requireText(season, "season")
	if err != nil {
		return analytics.TacticalBreakdown{}, false, err
	}

	shots, err := s.shotRepo.ListBySeasonAndTeam(ctx, season, s.club)
	if err != nil {
		return analytics.TacticalBreakdown{}, false, fmt.Errorf("list shots by season: %w", err)
	}

	breakdown, ok := analytics.BuildTacticalBreakdown(season, shots)
	return breakdown, ok, nil
}
