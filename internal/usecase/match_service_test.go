package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/infrastructure/repository/memory"
	matchmock "github.com/Muhammadatef/Gunners-Data-Platform/internal/mocks/domain/match"
	shotmock "github.com/Muhammadatef/Gunners-Data-Platform/internal/mocks/domain/shot"
)

func TestMatchService_ListMatches(t *testing.T) {
	t.Parallel()

	matchRepo, shotRepo := seededRepos()
	service := NewMatchService(matchRepo, shotRepo, memory.SeedClub)

	all, err := service.ListMatches(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, "26658", all[0].ID)
	assert.Equal(t, "22060", all[len(all)-1].ID)

	limited, err := service.ListMatches(context.Background(), "2024-25", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "26658", limited[0].ID)
	assert.Equal(t, "26642", limited[1].ID)

	_, err = service.ListMatches(context.Background(), "", maxListLimit+1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized limit, got %v", err)
	}
}

func TestMatchService_ListMatchOptions(t *testing.T) {
	t.Parallel()

	matchRepo, shotRepo := seededRepos()
	service := NewMatchService(matchRepo, shotRepo, memory.SeedClub)

	options, err := service.ListMatchOptions(context.Background(), "2023-24")
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "22070", options[0].ID)
	assert.Equal(t, "Everton", options[0].Opponent)
	assert.Contains(t, options[0].Label, "Everton")
}

func TestMatchService_ListMatchShots_SortedByMinute(t *testing.T) {
	t.Parallel()

	matchRepo, shotRepo := seededRepos()
	service := NewMatchService(matchRepo, shotRepo, memory.SeedClub)

	shots, exists, err := service.ListMatchShots(context.Background(), "26631")
	require.NoError(t, err)
	require.True(t, exists)
	require.Len(t, shots, 3)
	assert.Equal(t, []int{12, 64, 80}, []int{shots[0].Minute, shots[1].Minute, shots[2].Minute})
}

func TestMatchService_ListMatchShots_UnknownMatch(t *testing.T) {
	t.Parallel()

	matchRepo := matchmock.NewRepository(t)
	shotRepo := shotmock.NewRepository(t)
	matchRepo.
		On("GetByID", mock.Anything, "404").
		Return(match.Match{}, false, nil).
		Once()
	shotRepo.
		On("ListByMatch", mock.Anything, "404").
		Return([]shot.Shot{}, nil).
		Once()

	service := NewMatchService(matchRepo, shotRepo, memory.SeedClub)
	shots, exists, err := service.ListMatchShots(context.Background(), "404")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Nil(t, shots)
}

func TestMatchService_ListMatchShots_RepositoryError(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("timeout")
	matchRepo := matchmock.NewRepository(t)
	shotRepo := shotmock.NewRepository(t)
	matchRepo.
		On("GetByID", mock.Anything, "26642").
		Return(match.Match{ID: "26642"}, true, nil).
		Maybe()
	shotRepo.
		On("ListByMatch", mock.Anything, "26642").
		Return([]shot.Shot(nil), repoErr).
		Once()

	service := NewMatchService(matchRepo, shotRepo, memory.SeedClub)
	_, _, err := service.ListMatchShots(context.Background(), "26642")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestMatchService_ListSeasonShots_DefaultsToClub(t *testing.T) {
	t.Parallel()

	matchRepo, shotRepo := seededRepos()
	service := NewMatchService(matchRepo, shotRepo, memory.SeedClub)

	shots, err := service.ListSeasonShots(context.Background(), "2024-25", "")
	require.NoError(t, err)
	require.Len(t, shots, 11)
	for _, item := range shots {
		assert.Equal(t, memory.SeedClub, item.Team)
	}

	opponent, err := service.ListSeasonShots(context.Background(), "2024-25", "Manchester City")
	require.NoError(t, err)
	assert.Len(t, opponent, 2)
}

func TestMatchService_MatchPlayers(t *testing.T) {
	t.Parallel()

	matchRepo, shotRepo := seededRepos()
	service := NewMatchService(matchRepo, shotRepo, memory.SeedClub)

	players, exists, err := service.ListMatchPlayers(context.Background(), "26603")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, []string{"Bukayo Saka", "Kai Havertz", "Martin Ødegaard"}, players)

	shots, exists, err := service.ListMatchPlayerShots(context.Background(), "26603", "Bukayo Saka")
	require.NoError(t, err)
	require.True(t, exists)
	require.Len(t, shots, 1)
	assert.Equal(t, 74, shots[0].Minute)

	shots, exists, err = service.ListMatchPlayerShots(context.Background(), "26603", "Matheus Cunha")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Empty(t, shots)
}

func TestMatchService_GetAdvancedStats(t *testing.T) {
	t.Parallel()

	matchRepo, shotRepo := seededRepos()
	service := NewMatchService(matchRepo, shotRepo, memory.SeedClub)

	stats, exists, err := service.GetAdvancedStats(context.Background(), "26642")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "Manchester City", stats.Opponent)
	assert.Equal(t, 2, stats.ClubShots)
	assert.Equal(t, 2, stats.OpponentShots)
	assert.Equal(t, 2, stats.ClubFirstHalfShots)
	assert.Equal(t, 0, stats.ClubSecondHalfShots)

	_, exists, err = service.GetAdvancedStats(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, exists)
}
