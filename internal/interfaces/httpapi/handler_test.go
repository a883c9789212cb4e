package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/infrastructure/repository/memory"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/platform/logging"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/usecase"
)

type envelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       *T               `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	shotRepo := memory.NewShotRepository(memory.SeedShots())
	now := func() time.Time { return time.Date(2024, 10, 21, 12, 0, 0, 0, time.UTC) }
	club := memory.SeedClub

	handler := NewHandler(
		usecase.NewSeasonService(matchRepo),
		usecase.NewMatchService(matchRepo, shotRepo, club),
		usecase.NewPlayerService(matchRepo, shotRepo, club, 2),
		usecase.NewTacticalService(shotRepo, club),
		usecase.NewInsightService(matchRepo, shotRepo, club, 3, now),
		logging.NewNop(),
	)
	return NewRouter(handler, logging.NewNop(), true, []string{"*"})
}

func get[T any](t *testing.T, router http.Handler, path string) (int, envelope[T]) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body envelope[T]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return rec.Code, body
}

func TestHealthz(t *testing.T) {
	code, body := get[map[string]string](t, newTestRouter(t), "/healthz")
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, body.Data)
	assert.Equal(t, "ok", (*body.Data)["status"])
}

func TestListSeasons(t *testing.T) {
	code, body := get[[]string](t, newTestRouter(t), "/v1/seasons")
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, body.Data)
	assert.Equal(t, []string{"2024-25", "2023-24"}, *body.Data)
}

func TestGetSeasonSummary(t *testing.T) {
	router := newTestRouter(t)

	code, body := get[seasonSummaryDTO](t, router, "/v1/seasons/2024-25/summary")
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, body.Data)
	assert.Equal(t, 5, body.Data.MatchesPlayed)
	assert.Equal(t, 8, body.Data.Points)
	assert.Equal(t, 1, body.Data.GoalDifference)

	code, body = get[seasonSummaryDTO](t, router, "/v1/seasons/1999-00/summary")
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, body.Data)
	assert.Nil(t, body.Error)
}

func TestListMatches(t *testing.T) {
	router := newTestRouter(t)

	code, body := get[[]matchDTO](t, router, "/v1/matches?limit=2")
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, body.Data)
	require.Len(t, *body.Data, 2)
	assert.Equal(t, "26658", (*body.Data)[0].MatchID)
	assert.Equal(t, "2024-10-19", (*body.Data)[0].MatchDate)

	code, body = get[[]matchDTO](t, router, "/v1/seasons/2023-24/matches")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, *body.Data, 2)
}

func TestListMatches_InvalidLimit(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/v1/matches?limit=abc", "/v1/matches?limit=501", "/v1/matches?limit=-1"} {
		code, body := get[[]matchDTO](t, router, path)
		if code != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", path, code)
		}
		if body.Error == nil || body.Error.Status != "INVALID_ARGUMENT" {
			t.Fatalf("%s: expected INVALID_ARGUMENT error, got %+v", path, body.Error)
		}
	}
}

func TestListSeasonMatchOptions(t *testing.T) {
	code, body := get[[]matchOptionDTO](t, newTestRouter(t), "/v1/seasons/2023-24/match-list")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, *body.Data, 2)
	assert.Equal(t, "22070", (*body.Data)[0].MatchID)
	assert.Equal(t, "Arsenal vs Everton", (*body.Data)[0].MatchName)
}

func TestMatchEndpoints(t *testing.T) {
	router := newTestRouter(t)

	code, shots := get[[]shotDTO](t, router, "/v1/matches/26631/shots")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, *shots.Data, 3)
	assert.Equal(t, 12, (*shots.Data)[0].Minute)

	code, players := get[[]string](t, router, "/v1/matches/26603/players")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"Bukayo Saka", "Kai Havertz", "Martin Ødegaard"}, *players.Data)

	code, playerShots := get[[]shotDTO](t, router, "/v1/matches/26603/players/Bukayo%20Saka/shots")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, *playerShots.Data, 1)
	assert.Equal(t, 74, (*playerShots.Data)[0].Minute)

	code, advanced := get[matchAdvancedDTO](t, router, "/v1/matches/26642/advanced")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, advanced.Data.ClubShots)
	assert.Equal(t, 2, advanced.Data.OpponentShots)

	code, network := get[[]assistEdgeDTO](t, router, "/v1/matches/26642/assist-network")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, *network.Data, 2)
}

func TestMatchEndpoints_UnknownMatchReturnsNullData(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/v1/matches/missing/shots",
		"/v1/matches/missing/players",
		"/v1/matches/missing/advanced",
		"/v1/matches/missing/assist-network",
	} {
		code, body := get[any](t, router, path)
		if code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", path, code)
		}
		if body.Data != nil {
			t.Fatalf("%s: expected null data, got %v", path, *body.Data)
		}
	}
}

func TestSeasonPlayerEndpoints(t *testing.T) {
	router := newTestRouter(t)

	code, list := get[[]playerStatsDTO](t, router, "/v1/seasons/2024-25/players?limit=1")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, *list.Data, 1)
	assert.Equal(t, "Kai Havertz", (*list.Data)[0].PlayerName)

	code, one := get[playerStatsDTO](t, router, "/v1/seasons/2024-25/players/Kai%20Havertz")
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, one.Data)
	assert.Equal(t, 4, one.Data.TotalShots)
	assert.Equal(t, 2, one.Data.Goals)

	code, missing := get[playerStatsDTO](t, router, "/v1/seasons/2024-25/players/Erling%20Haaland")
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, missing.Data)

	code, shots := get[[]shotDTO](t, router, "/v1/seasons/2024-25/players/Bukayo%20Saka/shots")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, *shots.Data, 2)

	code, network := get[[]assistEdgeDTO](t, router, "/v1/seasons/2024-25/assist-network")
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, *network.Data)
	assert.Equal(t, "Bukayo Saka", (*network.Data)[0].Assister)
	assert.Equal(t, "Kai Havertz", (*network.Data)[0].Shooter)
}

func TestListSeasonShots_TeamFilter(t *testing.T) {
	router := newTestRouter(t)

	code, club := get[[]shotDTO](t, router, "/v1/seasons/2024-25/shots")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, *club.Data, 11)

	code, city := get[[]shotDTO](t, router, "/v1/seasons/2024-25/shots?team=Manchester%20City")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, *city.Data, 2)
}

func TestGetSeasonTactical(t *testing.T) {
	router := newTestRouter(t)

	code, body := get[tacticalDTO](t, router, "/v1/seasons/2024-25/tactical")
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, body.Data)
	require.Len(t, body.Data.Timing, 6)
	assert.Equal(t, "0-15", body.Data.Timing[0].Label)
	assert.Equal(t, 3, body.Data.Corner.Shots)

	code, body = get[tacticalDTO](t, router, "/v1/seasons/1999-00/tactical")
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, body.Data)
}

func TestListSeasonTrends(t *testing.T) {
	router := newTestRouter(t)

	code, body := get[[]trendPointDTO](t, router, "/v1/seasons/2024-25/trends")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, *body.Data, 5)
	assert.Equal(t, "26603", (*body.Data)[0].MatchID)
	assert.Equal(t, 3, (*body.Data)[0].Shots)

	code, _ = get[[]trendPointDTO](t, router, "/v1/seasons/2024-25/trends?window=-2")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestListSeasonTrends_WindowLongerThanSeason(t *testing.T) {
	router := newTestRouter(t)

	code, body := get[[]trendPointDTO](t, router, "/v1/seasons/2024-25/trends?window=50")
	require.Equal(t, http.StatusOK, code)
	points := *body.Data
	require.Len(t, points, 5)

	var goals int
	for _, p := range points {
		goals += p.Goals
	}
	assert.InDelta(t, float64(goals)/5, points[4].RollingAvgGoals, 1e-9)
}

func TestInsightEndpoints(t *testing.T) {
	router := newTestRouter(t)

	code, opponents := get[[]opponentDTO](t, router, "/v1/opponents?season=2023-24")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, *opponents.Data, 2)

	code, all := get[[]opponentDTO](t, router, "/v1/opponents")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, *all.Data, 7)

	code, quality := get[dataQualityDTO](t, router, "/v1/data-quality")
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, quality.Data)
	assert.Equal(t, 7, quality.Data.TotalMatches)
	assert.Equal(t, "2 days ago", quality.Data.DataFreshness)
	require.NotNil(t, quality.Data.LastUpdate)
	assert.Equal(t, "2024-10-19", *quality.Data.LastUpdate)

	code, anomalies := get[[]anomalyDTO](t, router, "/v1/data-quality/anomalies")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, *anomalies.Data, quality.Data.ValidationErrors)
}

func TestOpenAPIServedWhenSwaggerEnabled(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/v1/seasons/{season}/summary")
}
