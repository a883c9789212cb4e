package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/validation"
)

// LoadBatch is one match together with every shot taken in it.
type LoadBatch struct {
	Match match.Match
	Shots []shot.Shot
}

type LoadReport struct {
	Matches   int
	Shots     int
	Anomalies []validation.Anomaly
}

type LoadService struct {
	matchRepo match.Repository
	shotRepo  shot.Repository
}

func NewLoadService(matchRepo match.Repository, shotRepo shot.Repository) *LoadService {
	return &LoadService{matchRepo: matchRepo, shotRepo: shotRepo}
}

// Load upserts the matches and replaces each match's shots. Anomalies found
// along the way are reported back and never stop the load. When a match id
// repeats, the last batch for it wins.
func (s *LoadService) Load(ctx context.Context, batches []LoadBatch) (LoadReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LoadService.Load")
	defer span.End()

	if len(batches) == 0 {
		return LoadReport{}, fmt.Errorf("%w: at least one match is required", ErrInvalidInput)
	}

	order := make([]string, 0, len(batches))
	byID := make(map[string]LoadBatch, len(batches))
	for _, batch := range batches {
		id := strings.TrimSpace(batch.Match.ID)
		if id == "" {
			return LoadReport{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
		}
		batch.Match.ID = id
		for i := range batch.Shots {
			batch.Shots[i].MatchID = id
		}
		if _, seen := byID[id]; !seen {
			order = append(order, id)
		}
		byID[id] = batch
	}

	var report LoadReport
	matches := make([]match.Match, 0, len(order))
	for _, id := range order {
		batch := byID[id]
		matches = append(matches, batch.Match)
		for _, msg := range validation.Match(batch.Match) {
			report.Anomalies = append(report.Anomalies, validation.Anomaly{Subject: "match " + id, Message: msg})
		}
		for _, item := range batch.Shots {
			for _, msg := range validation.Shot(item) {
				report.Anomalies = append(report.Anomalies, validation.Anomaly{Subject: "shot " + item.ID, Message: msg})
			}
		}
	}

	if err := s.matchRepo.Upsert(ctx, matches); err != nil {
		return LoadReport{}, fmt.Errorf("upsert matches: %w", err)
	}
	report.Matches = len(matches)

	for _, id := range order {
		shots := byID[id].Shots
		if err := s.shotRepo.ReplaceForMatch(ctx, id, shots); err != nil {
			return report, fmt.Errorf("replace shots for match=%s: %w", id, err)
		}
		report.Shots += len(shots)
	}

	return report, nil
}
