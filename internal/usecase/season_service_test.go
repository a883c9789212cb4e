package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/infrastructure/repository/memory"
	matchmock "github.com/Muhammadatef/Gunners-Data-Platform/internal/mocks/domain/match"
)

func seededRepos() (*memory.MatchRepository, *memory.ShotRepository) {
	return memory.NewMatchRepository(memory.SeedMatches()), memory.NewShotRepository(memory.SeedShots())
}

func TestSeasonService_ListSeasons_NewestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	matchRepo.
		On("ListSeasons", mock.Anything).
		Return([]string{"2022-23", "2024-25", "2023-24"}, nil).
		Once()

	service := NewSeasonService(matchRepo)
	seasons, err := service.ListSeasons(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-25", "2023-24", "2022-23"}, seasons)
}

func TestSeasonService_GetSummary(t *testing.T) {
	t.Parallel()

	matchRepo, _ := seededRepos()
	service := NewSeasonService(matchRepo)

	summary, exists, err := service.GetSummary(context.Background(), " 2024-25 ")
	if err != nil {
		t.Fatalf("get summary: %v", err)
	}
	if !exists {
		t.Fatalf("expected season to exist")
	}
	assert.Equal(t, "2024-25", summary.Season)
	assert.Equal(t, 5, summary.MatchesPlayed)
	assert.Equal(t, 2, summary.Wins)
	assert.Equal(t, 2, summary.Draws)
	assert.Equal(t, 1, summary.Losses)
	assert.Equal(t, 8, summary.Points)
	assert.Equal(t, 6, summary.GoalsFor)
	assert.Equal(t, 5, summary.GoalsAgainst)
	assert.Equal(t, 1, summary.GoalDifference)
	assert.Equal(t, 2, summary.HomeMatches)
	assert.Equal(t, 3, summary.AwayMatches)
}

func TestSeasonService_GetSummary_UnknownSeason(t *testing.T) {
	t.Parallel()

	matchRepo, _ := seededRepos()
	service := NewSeasonService(matchRepo)

	_, exists, err := service.GetSummary(context.Background(), "1999-00")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSeasonService_GetSummary_RequiresSeason(t *testing.T) {
	t.Parallel()

	service := NewSeasonService(matchmock.NewRepository(t))
	_, _, err := service.GetSummary(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSeasonService_GetSummary_RepositoryError(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("connection reset")
	matchRepo := matchmock.NewRepository(t)
	matchRepo.
		On("ListBySeason", mock.Anything, "2024-25").
		Return([]match.Match(nil), repoErr).
		Once()

	service := NewSeasonService(matchRepo)
	_, _, err := service.GetSummary(context.Background(), "2024-25")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}
