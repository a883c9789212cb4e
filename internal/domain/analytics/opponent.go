package analytics

import (
	"sort"
	"time"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
)

type OpponentRecord struct {
	Opponent        string
	MatchesPlayed   int
	Wins            int
	Draws           int
	Losses          int
	WinRatePct      float64
	GoalsFor        int
	GoalsAgainst    int
	AvgGoalsFor     float64
	AvgGoalsAgainst float64
	TotalXGFor      float64
	TotalXGAgainst  float64
	AvgXGFor        float64
	AvgXGAgainst    float64
	CleanSheets     int
	FailedToScore   int
	LastPlayed      time.Time
	LastResult      match.Result
}

// CompareOpponents builds one head-to-head record per opponent name (exact
// match). Records are ordered by matches played, then win rate, both
// descending; opponent name breaks any remaining tie.
func CompareOpponents(matches []match.Match) []OpponentRecord {
	byOpponent := make(map[string]*OpponentRecord)
	order := make([]string, 0)

	for _, m := range matches {
		rec, ok := byOpponent[m.Opponent]
		if !ok {
			rec = &OpponentRecord{Opponent: m.Opponent}
			byOpponent[m.Opponent] = rec
			order = append(order, m.Opponent)
		}

		rec.MatchesPlayed++
		switch m.Result {
		case match.ResultWin:
			rec.Wins++
		case match.ResultDraw:
			rec.Draws++
		case match.ResultLoss:
			rec.Losses++
		}
		rec.GoalsFor += m.GoalsFor
		rec.GoalsAgainst += m.GoalsAgainst
		rec.TotalXGFor += m.XGFor
		rec.TotalXGAgainst += m.XGAgainst
		if m.GoalsAgainst == 0 {
			rec.CleanSheets++
		}
		if m.GoalsFor == 0 {
			rec.FailedToScore++
		}
		if rec.MatchesPlayed == 1 || m.Date.After(rec.LastPlayed) {
			rec.LastPlayed = m.Date
			rec.LastResult = m.Result
		}
	}

	out := make([]OpponentRecord, 0, len(order))
	for _, name := range order {
		rec := byOpponent[name]
		played := float64(rec.MatchesPlayed)
		rec.WinRatePct = percent(rec.Wins, rec.MatchesPlayed)
		rec.AvgGoalsFor = ratio(float64(rec.GoalsFor), played)
		rec.AvgGoalsAgainst = ratio(float64(rec.GoalsAgainst), played)
		rec.AvgXGFor = ratio(rec.TotalXGFor, played)
		rec.AvgXGAgainst = ratio(rec.TotalXGAgainst, played)
		out = append(out, *rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchesPlayed != out[j].MatchesPlayed {
			return out[i].MatchesPlayed > out[j].MatchesPlayed
		}
		if out[i].WinRatePct != out[j].WinRatePct {
			return out[i].WinRatePct > out[j].WinRatePct
		}
		return out[i].Opponent < out[j].Opponent
	})

	return out
}
