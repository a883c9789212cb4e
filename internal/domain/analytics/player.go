package analytics

import (
	"strings"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
)

// PlayerContext carries the facts a player aggregate needs that shot rows
// do not hold on their own.
type PlayerContext struct {
	PlayerName    string
	Season        string
	MatchesPlayed int
	Assists       int
}

type PlayerSeasonStats struct {
	PlayerName             string
	Season                 string
	MatchesPlayed          int
	TotalShots             int
	Goals                  int
	TotalXG                float64
	AvgXGPerShot           float64
	ConversionPct          float64
	ShotsOnTarget          int
	ShotAccuracyPct        float64
	MissedShots            int
	BlockedShots           int
	SavedShots             int
	BigChances             int
	BigChancesScored       int
	BigChanceConversionPct float64
	BoxShots               int
	OutsideBoxShots        int
	AvgShotDistance        float64
	RightFootShots         int
	RightFootGoals         int
	LeftFootShots          int
	LeftFootGoals          int
	Headers                int
	HeaderGoals            int
	OpenPlayShots          int
	OpenPlayGoals          int
	CornerShots            int
	SetPieceShots          int
	PenaltiesTaken         int
	PenaltiesScored        int
	Assists                int
	XGOverperformance      float64
	ShotsPerMatch          float64
	GoalsPerMatch          float64
	XGPerMatch             float64
}

// AggregatePlayer folds one player's shots for a season into counts and rates.
// An empty shot list yields a zeroed record, never NaN.
func AggregatePlayer(shots []shot.Shot, pc PlayerContext) PlayerSeasonStats {
	out := PlayerSeasonStats{
		PlayerName:    pc.PlayerName,
		Season:        pc.Season,
		MatchesPlayed: pc.MatchesPlayed,
		Assists:       pc.Assists,
		TotalShots:    len(shots),
	}

	var distance float64
	for _, s := range shots {
		goal := s.IsGoal()
		if goal {
			out.Goals++
		}
		out.TotalXG += s.XG
		distance += s.DistanceMeters()

		if s.OnTarget() {
			out.ShotsOnTarget++
		}
		switch s.Outcome {
		case shot.OutcomeMissed:
			out.MissedShots++
		case shot.OutcomeBlocked:
			out.BlockedShots++
		case shot.OutcomeSaved:
			out.SavedShots++
		}

		if s.BigChance() {
			out.BigChances++
			if goal {
				out.BigChancesScored++
			}
		}
		if s.InBox() {
			out.BoxShots++
		} else {
			out.OutsideBoxShots++
		}

		switch s.BodyPart {
		case shot.BodyPartRightFoot:
			out.RightFootShots++
			if goal {
				out.RightFootGoals++
			}
		case shot.BodyPartLeftFoot:
			out.LeftFootShots++
			if goal {
				out.LeftFootGoals++
			}
		case shot.BodyPartHead:
			out.Headers++
			if goal {
				out.HeaderGoals++
			}
		}

		switch {
		case s.Situation == shot.SituationOpenPlay:
			out.OpenPlayShots++
			if goal {
				out.OpenPlayGoals++
			}
		case s.Situation == shot.SituationCorner:
			out.CornerShots++
		case s.Situation == shot.SituationPenalty:
			out.PenaltiesTaken++
			if goal {
				out.PenaltiesScored++
			}
		case s.IsSetPiece():
			out.SetPieceShots++
		}
	}

	out.AvgXGPerShot = ratio(out.TotalXG, float64(out.TotalShots))
	out.ConversionPct = percent(out.Goals, out.TotalShots)
	out.ShotAccuracyPct = percent(out.ShotsOnTarget, out.TotalShots)
	out.BigChanceConversionPct = percent(out.BigChancesScored, out.BigChances)
	out.AvgShotDistance = ratio(distance, float64(out.TotalShots))
	out.XGOverperformance = float64(out.Goals) - out.TotalXG
	out.ShotsPerMatch = ratio(float64(out.TotalShots), float64(out.MatchesPlayed))
	out.GoalsPerMatch = ratio(float64(out.Goals), float64(out.MatchesPlayed))
	out.XGPerMatch = ratio(out.TotalXG, float64(out.MatchesPlayed))

	return out
}

// CountAssists returns how many of the given shots were assisted by each player.
func CountAssists(shots []shot.Shot) map[string]int {
	out := make(map[string]int)
	for _, s := range shots {
		if name, ok := s.Assister(); ok {
			out[name]++
		}
	}
	return out
}

// GroupByPlayer splits shots by shooter name. Shots without a shooter are dropped.
func GroupByPlayer(shots []shot.Shot) map[string][]shot.Shot {
	out := make(map[string][]shot.Shot)
	for _, s := range shots {
		name := strings.TrimSpace(s.PlayerName)
		if name == "" {
			continue
		}
		out[name] = append(out[name], s)
	}
	return out
}

// MatchesWithShots counts the distinct matches the shots belong to, limited
// to match ids present in known when known is non-nil.
func MatchesWithShots(shots []shot.Shot, known map[string]struct{}) int {
	seen := make(map[string]struct{})
	for _, s := range shots {
		if known != nil {
			if _, ok := known[s.MatchID]; !ok {
				continue
			}
		}
		seen[s.MatchID] = struct{}{}
	}
	return len(seen)
}
