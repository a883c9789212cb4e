package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
)

var ErrInvalidWindow = errors.New("rolling window size must be >= 1")

type TrendPoint struct {
	MatchID         string
	MatchDate       time.Time
	Opponent        string
	Result          match.Result
	Goals           int
	XG              float64
	Shots           int
	ShotsOnTarget   int
	BigChances      int
	RollingAvgXG    float64
	RollingAvgGoals float64
}

// RollingTrend attaches a trailing moving average to each match. The window
// at index i spans [max(0, i-windowSize+1), i], so the first points average
// over fewer matches until the window fills. Matches must already be in
// chronological order; the output keeps that order.
func RollingTrend(matches []match.Match, windowSize int) ([]TrendPoint, error) {
	if windowSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindow, windowSize)
	}

	out := make([]TrendPoint, 0, len(matches))
	var sumGoals int
	for i, m := range matches {
		sumGoals += m.GoalsFor

		start := i - windowSize + 1
		if start > 0 {
			sumGoals -= matches[start-1].GoalsFor
		} else {
			start = 0
		}
		n := float64(i - start + 1)

		// xG is summed over the window itself so each mean is exact.
		var sumXG float64
		for _, w := range matches[start : i+1] {
			sumXG += w.XGFor
		}

		out = append(out, TrendPoint{
			MatchID:         m.ID,
			MatchDate:       m.Date,
			Opponent:        m.Opponent,
			Result:          m.Result,
			Goals:           m.GoalsFor,
			XG:              m.XGFor,
			RollingAvgXG:    sumXG / n,
			RollingAvgGoals: float64(sumGoals) / n,
		})
	}

	return out, nil
}
