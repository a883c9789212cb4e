package analytics

import (
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
)

type SeasonSummary struct {
	Season                 string
	MatchesPlayed          int
	Wins                   int
	Draws                  int
	Losses                 int
	Points                 int
	GoalsFor               int
	GoalsAgainst           int
	GoalDifference         int
	TotalXGFor             float64
	TotalXGAgainst         float64
	AvgXGPerMatch          float64
	TotalXGOverperformance float64
	HomeMatches            int
	AwayMatches            int
	HomeWins               int
	AwayWins               int
}

// SummarizeSeason aggregates every match of one season. It reports false
// when there is nothing to summarize so callers can tell "no data" apart
// from an all-zero season.
func SummarizeSeason(season string, matches []match.Match) (SeasonSummary, bool) {
	if len(matches) == 0 {
		return SeasonSummary{}, false
	}

	out := SeasonSummary{Season: season}
	var playedXG float64
	for _, m := range matches {
		switch m.Result {
		case match.ResultWin:
			out.Wins++
			playedXG += m.XGFor
		case match.ResultDraw:
			out.Draws++
			playedXG += m.XGFor
		case match.ResultLoss:
			out.Losses++
			playedXG += m.XGFor
		}

		out.GoalsFor += m.GoalsFor
		out.GoalsAgainst += m.GoalsAgainst
		out.TotalXGFor += m.XGFor
		out.TotalXGAgainst += m.XGAgainst

		switch m.Venue {
		case match.VenueHome:
			out.HomeMatches++
			if m.Result == match.ResultWin {
				out.HomeWins++
			}
		case match.VenueAway:
			out.AwayMatches++
			if m.Result == match.ResultWin {
				out.AwayWins++
			}
		}
	}

	// Rows with an unknown result code are left out of the W/D/L buckets,
	// so matches played follows the buckets to keep the identity intact.
	// Totals still cover every row; the per-match average uses the same
	// rows as its denominator.
	out.MatchesPlayed = out.Wins + out.Draws + out.Losses
	out.Points = 3*out.Wins + out.Draws
	out.GoalDifference = out.GoalsFor - out.GoalsAgainst
	out.AvgXGPerMatch = ratio(playedXG, float64(out.MatchesPlayed))
	out.TotalXGOverperformance = float64(out.GoalsFor) - out.TotalXGFor

	return out, true
}
