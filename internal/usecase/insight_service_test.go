package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/analytics"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/infrastructure/repository/memory"
	matchmock "github.com/Muhammadatef/Gunners-Data-Platform/internal/mocks/domain/match"
	shotmock "github.com/Muhammadatef/Gunners-Data-Platform/internal/mocks/domain/shot"
)

func fixedNow() time.Time {
	return time.Date(2024, 10, 21, 12, 0, 0, 0, time.UTC)
}

func newSeededInsightService() *InsightService {
	matchRepo, shotRepo := seededRepos()
	return NewInsightService(matchRepo, shotRepo, memory.SeedClub, 3, fixedNow)
}

func TestInsightService_CompareOpponents(t *testing.T) {
	t.Parallel()

	service := newSeededInsightService()

	all, err := service.CompareOpponents(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, "Everton", all[0].Opponent)
	assert.Equal(t, "Manchester City", all[len(all)-1].Opponent)

	season, err := service.CompareOpponents(context.Background(), "2023-24")
	require.NoError(t, err)
	require.Len(t, season, 2)
	for _, rec := range season {
		assert.Equal(t, 1, rec.Wins)
	}
}

func TestInsightService_PerformanceTrends(t *testing.T) {
	t.Parallel()

	service := newSeededInsightService()

	points, err := service.PerformanceTrends(context.Background(), "2024-25", 0)
	require.NoError(t, err)
	require.Len(t, points, 5)

	first := points[0]
	assert.Equal(t, "26603", first.MatchID)
	assert.Equal(t, 3, first.Shots)
	assert.Equal(t, 2, first.ShotsOnTarget)
	assert.InDelta(t, 1.87, first.RollingAvgXG, 1e-9)

	assert.InDelta(t, (1.87+0.78+1.20)/3, points[2].RollingAvgXG, 1e-9)
	assert.InDelta(t, (0.78+1.20+0.44)/3, points[3].RollingAvgXG, 1e-9)
	assert.Equal(t, "26658", points[4].MatchID)
	assert.Equal(t, 2, points[4].Shots)
}

func TestInsightService_PerformanceTrends_InvalidWindow(t *testing.T) {
	t.Parallel()

	service := newSeededInsightService()

	_, err := service.PerformanceTrends(context.Background(), "2024-25", -2)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestInsightService_PerformanceTrends_RepositoryError(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("matches unavailable")
	matchRepo := matchmock.NewRepository(t)
	shotRepo := shotmock.NewRepository(t)
	matchRepo.
		On("ListBySeason", mock.Anything, "2024-25").
		Return([]match.Match(nil), repoErr).
		Once()
	shotRepo.
		On("ListBySeasonAndTeam", mock.Anything, "2024-25", memory.SeedClub).
		Return([]shot.Shot{}, nil).
		Maybe()

	service := NewInsightService(matchRepo, shotRepo, memory.SeedClub, 5, fixedNow)
	_, err := service.PerformanceTrends(context.Background(), "2024-25", 0)
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestInsightService_DataQuality(t *testing.T) {
	t.Parallel()

	service := newSeededInsightService()

	report, err := service.DataQuality(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, report.TotalMatches)
	assert.Equal(t, 16, report.TotalShots)
	assert.Equal(t, analytics.CompletenessPopulated, report.DataCompleteness)
	assert.Equal(t, []string{"2024-25", "2023-24"}, report.SeasonsAvailable)
	assert.True(t, report.HasLastUpdate)
	assert.Equal(t, "2 days ago", report.DataFreshness)
	assert.Greater(t, report.ValidationErrors, 0)

	anomalies, err := service.Anomalies(context.Background())
	require.NoError(t, err)
	assert.Len(t, anomalies, report.ValidationErrors)
}

func TestInsightService_DataQuality_Empty(t *testing.T) {
	t.Parallel()

	service := NewInsightService(memory.NewMatchRepository(nil), memory.NewShotRepository(nil), memory.SeedClub, 0, fixedNow)

	report, err := service.DataQuality(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.TotalMatches)
	assert.Zero(t, report.DataCompleteness)
	assert.Equal(t, analytics.FreshnessUnknown, report.DataFreshness)
	assert.Empty(t, report.SeasonsAvailable)

	anomalies, err := service.Anomalies(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, anomalies)
	assert.Empty(t, anomalies)
}

type blockingMatchRepo struct {
	match.Repository

	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func (r *blockingMatchRepo) ListAll(ctx context.Context) ([]match.Match, error) {
	r.once.Do(func() { close(r.started) })
	select {
	case <-r.release:
		return r.Repository.ListAll(ctx)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestInsightService_DataQuality_SharedReadSurvivesCancelledCaller(t *testing.T) {
	t.Parallel()

	matchRepo, shotRepo := seededRepos()
	blocking := &blockingMatchRepo{
		Repository: matchRepo,
		started:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	service := NewInsightService(blocking, shotRepo, memory.SeedClub, 3, fixedNow)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstDone := make(chan error, 1)
	go func() {
		_, err := service.DataQuality(firstCtx)
		firstDone <- err
	}()
	<-blocking.started

	secondDone := make(chan error, 1)
	var second analytics.DataQuality
	go func() {
		var err error
		second, err = service.DataQuality(context.Background())
		secondDone <- err
	}()

	// Give the second caller time to join the in-flight read.
	time.Sleep(50 * time.Millisecond)
	cancelFirst()
	time.Sleep(10 * time.Millisecond)
	close(blocking.release)

	if err := <-secondDone; err != nil {
		t.Fatalf("second caller should not see the first caller's cancellation, got %v", err)
	}
	assert.Equal(t, 7, second.TotalMatches)
	<-firstDone
}
