package analytics

import (
	"time"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
)

const halfTimeMinute = 45

type MatchAdvanced struct {
	MatchID               string
	MatchDate             time.Time
	Season                string
	Opponent              string
	Venue                 match.Venue
	Result                match.Result
	ClubGoals             int
	OpponentGoals         int
	ClubXG                float64
	OpponentXG            float64
	ClubShots             int
	OpponentShots         int
	ClubShotsOnTarget     int
	OpponentShotsOnTarget int
	ClubShotAccuracyPct   float64
	ClubBigChances        int
	ClubBigChancesScored  int
	ClubBoxShots          int
	ClubOutsideBoxShots   int
	ClubFirstHalfShots    int
	ClubFirstHalfXG       float64
	ClubSecondHalfShots   int
	ClubSecondHalfXG      float64
	ClubAvgShotXG         float64
	OpponentAvgShotXG     float64
}

// MatchAdvancedStats splits a match's shots into the club's and the
// opponent's side. Shots by any team other than club count for the opponent.
func MatchAdvancedStats(m match.Match, shots []shot.Shot, club string) MatchAdvanced {
	out := MatchAdvanced{
		MatchID:       m.ID,
		MatchDate:     m.Date,
		Season:        m.Season,
		Opponent:      m.Opponent,
		Venue:         m.Venue,
		Result:        m.Result,
		ClubGoals:     m.GoalsFor,
		OpponentGoals: m.GoalsAgainst,
		ClubXG:        m.XGFor,
		OpponentXG:    m.XGAgainst,
	}

	var clubXG, opponentXG float64
	for _, s := range shots {
		if s.Team != club {
			out.OpponentShots++
			opponentXG += s.XG
			if s.OnTarget() {
				out.OpponentShotsOnTarget++
			}
			continue
		}

		out.ClubShots++
		clubXG += s.XG
		if s.OnTarget() {
			out.ClubShotsOnTarget++
		}
		if s.BigChance() {
			out.ClubBigChances++
			if s.IsGoal() {
				out.ClubBigChancesScored++
			}
		}
		if s.InBox() {
			out.ClubBoxShots++
		} else {
			out.ClubOutsideBoxShots++
		}
		if s.Minute <= halfTimeMinute {
			out.ClubFirstHalfShots++
			out.ClubFirstHalfXG += s.XG
		} else {
			out.ClubSecondHalfShots++
			out.ClubSecondHalfXG += s.XG
		}
	}

	out.ClubShotAccuracyPct = percent(out.ClubShotsOnTarget, out.ClubShots)
	out.ClubAvgShotXG = ratio(clubXG, float64(out.ClubShots))
	out.OpponentAvgShotXG = ratio(opponentXG, float64(out.OpponentShots))

	return out
}
