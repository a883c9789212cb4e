package guarded

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/infrastructure/repository/memory"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/platform/resilience"
	matchmock "github.com/Muhammadatef/Gunners-Data-Platform/internal/mocks/domain/match"
)

func TestMatchRepository_PassesThrough(t *testing.T) {
	breaker := resilience.NewBreaker(resilience.DefaultBreakerConfig())
	repo := NewMatchRepository(memory.NewMatchRepository(memory.SeedMatches()), breaker)

	seasons, err := repo.ListSeasons(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-25", "2023-24"}, seasons)

	m, exists, err := repo.GetByID(context.Background(), "26642")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "Manchester City", m.Opponent)
}

func TestMatchRepository_OpensAfterRepeatedFailures(t *testing.T) {
	next := matchmock.NewRepository(t)
	next.
		On("ListAll", mock.Anything).
		Return(nil, errors.New("dial tcp: connection refused")).
		Twice()

	breaker := resilience.NewBreaker(resilience.BreakerConfig{FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenProbes: 1})
	repo := NewMatchRepository(next, breaker)

	for i := 0; i < 2; i++ {
		if _, err := repo.ListAll(context.Background()); err == nil {
			t.Fatalf("call %d: expected dependency error", i)
		}
	}

	_, err := repo.ListAll(context.Background())
	if !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen once the breaker tripped, got %v", err)
	}
}

func TestShotRepository_PassesThrough(t *testing.T) {
	breaker := resilience.NewBreaker(resilience.DefaultBreakerConfig())
	repo := NewShotRepository(memory.NewShotRepository(memory.SeedShots()), breaker)

	shots, err := repo.ListByMatch(context.Background(), "26631")
	require.NoError(t, err)
	assert.Len(t, shots, 3)

	require.NoError(t, repo.ReplaceForMatch(context.Background(), "26631", nil))
	shots, err = repo.ListByMatch(context.Background(), "26631")
	require.NoError(t, err)
	assert.Empty(t, shots)
}
