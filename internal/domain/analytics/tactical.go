package analytics

import (
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
)

const (
	timingBucketCount   = 6
	timingBucketMinutes = 15
)

var timingLabels = [timingBucketCount]string{"0-15", "16-30", "31-45", "46-60", "61-75", "76-90"}

type TimingBucket struct {
	Label string
	Shots int
	Goals int
}

type SituationSplit struct {
	Shots int
	Goals int
	XG    float64
}

type TacticalBreakdown struct {
	Season              string
	Timing              [timingBucketCount]TimingBucket
	ShotsFromPass       int
	ShotsFromDribble    int
	ShotsFromRebound    int
	ShotsFromChip       int
	ShotsFromCross      int
	OpenPlay            SituationSplit
	Corner              SituationSplit
	SetPiece            SituationSplit
	Penalty             SituationSplit
	BigChancesCreated   int
	BigChancesConverted int
}

// TimingBucketIndex maps a shot minute onto one of the six 15-minute bands.
// Minutes past 90 land in the last band, minutes at or below zero in the first.
func TimingBucketIndex(minute int) int {
	if minute <= 0 {
		return 0
	}
	idx := (minute - 1) / timingBucketMinutes
	if idx >= timingBucketCount {
		return timingBucketCount - 1
	}
	return idx
}

func BucketTacticalTiming(shots []shot.Shot) [timingBucketCount]TimingBucket {
	var out [timingBucketCount]TimingBucket
	for i := range out {
		out[i].Label = timingLabels[i]
	}
	for _, s := range shots {
		b := &out[TimingBucketIndex(s.Minute)]
		b.Shots++
		if s.IsGoal() {
			b.Goals++
		}
	}
	return out
}

// BuildTacticalBreakdown summarizes one team's season shots by timing, build-up
// action and situation.
func BuildTacticalBreakdown(season string, shots []shot.Shot) (TacticalBreakdown, bool) {
	if len(shots) == 0 {
		return TacticalBreakdown{}, false
	}

	out := TacticalBreakdown{
		Season: season,
		Timing: BucketTacticalTiming(shots),
	}
	for _, s := range shots {
		switch s.LastAction {
		case "Pass":
			out.ShotsFromPass++
		case "Dribble":
			out.ShotsFromDribble++
		case "Rebound":
			out.ShotsFromRebound++
		case "Chipped":
			out.ShotsFromChip++
		case "Cross":
			out.ShotsFromCross++
		}

		var split *SituationSplit
		switch {
		case s.Situation == shot.SituationOpenPlay:
			split = &out.OpenPlay
		case s.Situation == shot.SituationCorner:
			split = &out.Corner
		case s.Situation == shot.SituationPenalty:
			split = &out.Penalty
		case s.IsSetPiece():
			split = &out.SetPiece
		}
		if split != nil {
			split.Shots++
			split.XG += s.XG
			if s.IsGoal() {
				split.Goals++
			}
		}

		if s.BigChance() {
			out.BigChancesCreated++
			if s.IsGoal() {
				out.BigChancesConverted++
			}
		}
	}

	return out, true
}
