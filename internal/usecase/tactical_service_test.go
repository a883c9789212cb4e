package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/infrastructure/repository/memory"
)

func TestTacticalService_GetSeasonBreakdown(t *testing.T) {
	t.Parallel()

	_, shotRepo := seededRepos()
	service := NewTacticalService(shotRepo, memory.SeedClub)

	breakdown, exists, err := service.GetSeasonBreakdown(context.Background(), "2024-25")
	require.NoError(t, err)
	require.True(t, exists)

	shots := make([]int, 0, len(breakdown.Timing))
	goals := make([]int, 0, len(breakdown.Timing))
	for _, bucket := range breakdown.Timing {
		shots = append(shots, bucket.Shots)
		goals = append(goals, bucket.Goals)
	}
	assert.Equal(t, []int{1, 3, 3, 1, 3, 0}, shots)
	assert.Equal(t, []int{0, 2, 2, 0, 2, 0}, goals)
	assert.Equal(t, 3, breakdown.Corner.Shots)
	assert.Equal(t, 2, breakdown.Corner.Goals)
	assert.Equal(t, 5, breakdown.ShotsFromCross)

	_, exists, err = service.GetSeasonBreakdown(context.Background(), "2001-02")
	require.NoError(t, err)
	assert.False(t, exists)
}
