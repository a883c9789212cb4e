package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
)

func day(n int) time.Time {
	return time.Date(2024, time.August, 1, 15, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func repeatMatches(opponent string, results ...match.Result) []match.Match {
	out := make([]match.Match, 0, len(results))
	for i, r := range results {
		gf, ga := 0, 0
		switch r {
		case match.ResultWin:
			gf = 2
		case match.ResultLoss:
			ga = 1
		}
		out = append(out, match.Match{
			ID:           opponent + string(rune('a'+i)),
			Date:         day(i * 10),
			Opponent:     opponent,
			Result:       r,
			GoalsFor:     gf,
			GoalsAgainst: ga,
			XGFor:        1.5,
			XGAgainst:    0.5,
		})
	}
	return out
}

func TestCompareOpponentsOrdering(t *testing.T) {
	w, d, l := match.ResultWin, match.ResultDraw, match.ResultLoss
	matches := append(
		repeatMatches("Chelsea", w, w, w),
		repeatMatches("Tottenham", w, w, w, d, l)...,
	)
	matches = append(matches, repeatMatches("Brentford", w, w, l)...)

	got := CompareOpponents(matches)
	require.Len(t, got, 3)

	assert.Equal(t, "Tottenham", got[0].Opponent)
	assert.Equal(t, 5, got[0].MatchesPlayed)
	assert.InDelta(t, 60.0, got[0].WinRatePct, 1e-9)
	assert.Equal(t, "Chelsea", got[1].Opponent)
	assert.InDelta(t, 100.0, got[1].WinRatePct, 1e-9)
	assert.Equal(t, "Brentford", got[2].Opponent)
}

func TestCompareOpponentsRecord(t *testing.T) {
	matches := []match.Match{
		{ID: "a", Date: day(30), Opponent: "Liverpool", Result: match.ResultLoss, GoalsFor: 0, GoalsAgainst: 2, XGFor: 0.8, XGAgainst: 2.0},
		{ID: "b", Date: day(90), Opponent: "Liverpool", Result: match.ResultDraw, GoalsFor: 2, GoalsAgainst: 2, XGFor: 1.6, XGAgainst: 1.2},
		{ID: "c", Date: day(60), Opponent: "Liverpool", Result: match.ResultWin, GoalsFor: 1, GoalsAgainst: 0, XGFor: 1.2, XGAgainst: 0.4},
		{ID: "d", Date: day(10), Opponent: "liverpool", Result: match.ResultWin, GoalsFor: 3, GoalsAgainst: 0},
	}

	got := CompareOpponents(matches)
	require.Len(t, got, 2, "opponent names are compared exactly")

	rec := got[0]
	assert.Equal(t, "Liverpool", rec.Opponent)
	assert.Equal(t, 3, rec.MatchesPlayed)
	assert.Equal(t, 1, rec.Wins)
	assert.Equal(t, 1, rec.Draws)
	assert.Equal(t, 1, rec.Losses)
	assert.Equal(t, 3, rec.GoalsFor)
	assert.Equal(t, 4, rec.GoalsAgainst)
	assert.InDelta(t, 1.0, rec.AvgGoalsFor, 1e-9)
	assert.InDelta(t, 3.6, rec.TotalXGFor, 1e-9)
	assert.InDelta(t, 1.2, rec.AvgXGFor, 1e-9)
	assert.Equal(t, 1, rec.CleanSheets)
	assert.Equal(t, 1, rec.FailedToScore)
	assert.Equal(t, day(90), rec.LastPlayed)
	assert.Equal(t, match.ResultDraw, rec.LastResult)
}

func TestCompareOpponentsEmpty(t *testing.T) {
	got := CompareOpponents(nil)
	if len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
}
