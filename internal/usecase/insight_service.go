package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/analytics"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/validation"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/platform/resilience"
)

type factSet struct {
	matches []match.Match
	shots   []shot.Shot
}

type InsightService struct {
	matchRepo     match.Repository
	shotRepo      shot.Repository
	club          string
	defaultWindow int
	now           func() time.Time

	fullLoads resilience.Group[factSet]
}

func NewInsightService(matchRepo match.Repository, shotRepo shot.Repository, club string, defaultWindow int, now func() time.Time) *InsightService {
	if defaultWindow < 1 {
		defaultWindow = 5
	}
	if now == nil {
		now = time.Now
	}
	return &InsightService{
		matchRepo:     matchRepo,
		shotRepo:      shotRepo,
		club:          club,
		defaultWindow: defaultWindow,
		now:           now,
	}
}

// CompareOpponents builds head-to-head records from the given season's
// matches, or from every match when season is empty.
func (s *InsightService) CompareOpponents(ctx context.Context, season string) ([]analytics.OpponentRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InsightService.CompareOpponents")
	defer span.End()

	var (
		matches []match.Match
		err     error
	)
	if season = strings.TrimSpace(season); season == "" {
		matches, err = s.matchRepo.ListAll(ctx)
	} else {
		matches, err = s.matchRepo.ListBySeason(ctx, season)
	}
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return analytics.CompareOpponents(matches), nil
}

// PerformanceTrends returns the season's matches in date order with trailing
// averages. A zero window uses the configured default.
func (s *InsightService) PerformanceTrends(ctx context.Context, season string, window int) ([]analytics.TrendPoint, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InsightService.PerformanceTrends")
	defer span.End()

	season, err := requireText(season, "season")
	if err != nil {
		return nil, err
	}
	if window == 0 {
		window = s.defaultWindow
	}

	var (
		matches []match.Match
		shots   []shot.Shot
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		if matches, err = s.matchRepo.ListBySeason(ctx, season); err != nil {
			return fmt.Errorf("list matches by season: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if shots, err = s.shotRepo.ListBySeasonAndTeam(ctx, season, s.club); err != nil {
			return fmt.Errorf("list shots by season: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	sortMatchesAsc(matches)
	points, err := analytics.RollingTrend(matches, window)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidWindow) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, err
	}

	type shotCounts struct{ total, onTarget, bigChances int }
	perMatch := make(map[string]*shotCounts)
	for _, item := range shots {
		c, ok := perMatch[item.MatchID]
		if !ok {
			c = &shotCounts{}
			perMatch[item.MatchID] = c
		}
		c.total++
		if item.OnTarget() {
			c.onTarget++
		}
		if item.BigChance() {
			c.bigChances++
		}
	}
	for i := range points {
		if c, ok := perMatch[points[i].MatchID]; ok {
			points[i].Shots = c.total
			points[i].ShotsOnTarget = c.onTarget
			points[i].BigChances = c.bigChances
		}
	}

	return points, nil
}

// DataQuality reports coverage of the loaded facts together with the number
// of advisory anomalies found in them.
func (s *InsightService) DataQuality(ctx context.Context) (analytics.DataQuality, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InsightService.DataQuality")
	defer span.End()

	matches, shots, err := s.loadAll(ctx)
	if err != nil {
		return analytics.DataQuality{}, err
	}

	report := analytics.DataQualitySnapshot(matches, clubShots(shots, s.club), s.now())
	report.ValidationErrors = len(validation.Run(matches, shots, s.club))
	return report, nil
}

func (s *InsightService) Anomalies(ctx context.Context) ([]validation.Anomaly, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InsightService.Anomalies")
	defer span.End()

	matches, shots, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	anomalies := validation.Run(matches, shots, s.club)
	if anomalies == nil {
		anomalies = []validation.Anomaly{}
	}
	return anomalies, nil
}

// loadAll reads every match and shot. Concurrent callers share one read;
// the returned slices must not be modified.
func (s *InsightService) loadAll(ctx context.Context) ([]match.Match, []shot.Shot, error) {
	// The shared read outlives the caller that started it, so one client
	// going away must not cancel it for the rest.
	shared := context.WithoutCancel(ctx)
	facts, err, _ := s.fullLoads.Do("all", func() (factSet, error) {
		matches, shots, err := s.readAll(shared)
		return factSet{matches: matches, shots: shots}, err
	})
	if err != nil {
		return nil, nil, err
	}
	return facts.matches, facts.shots, nil
}

func (s *InsightService) readAll(ctx context.Context) ([]match.Match, []shot.Shot, error) {
	var (
		matches []match.Match
		shots   []shot.Shot
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		if matches, err = s.matchRepo.ListAll(ctx); err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if shots, err = s.shotRepo.ListAll(ctx); err != nil {
			return fmt.Errorf("list shots: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, nil, err
	}
	return matches, shots, nil
}
