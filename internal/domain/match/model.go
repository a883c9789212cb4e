package match

import (
	"strings"
	"time"
)

type Result string

const (
	ResultWin  Result = "W"
	ResultDraw Result = "D"
	ResultLoss Result = "L"
)

type Venue string

const (
	VenueHome Venue = "Home"
	VenueAway Venue = "Away"
)

// Match is one played match seen from the club's side.
type Match struct {
	ID           string
	URL          string
	Date         time.Time
	Season       string
	HomeTeam     string
	AwayTeam     string
	Opponent     string
	Venue        Venue
	Result       Result
	GoalsFor     int
	GoalsAgainst int
	XGFor        float64
	XGAgainst    float64
}

// ResultFromScore returns the result implied by the scoreline.
func ResultFromScore(goalsFor, goalsAgainst int) Result {
	switch {
	case goalsFor > goalsAgainst:
		return ResultWin
	case goalsFor < goalsAgainst:
		return ResultLoss
	default:
		return ResultDraw
	}
}

func ParseResult(v string) Result {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "W", "WIN":
		return ResultWin
	case "D", "DRAW":
		return ResultDraw
	case "L", "LOSS":
		return ResultLoss
	default:
		return Result(strings.TrimSpace(v))
	}
}

func ParseVenue(v string) Venue {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "home", "h":
		return VenueHome
	case "away", "a":
		return VenueAway
	default:
		return Venue(strings.TrimSpace(v))
	}
}

func (m Match) Label() string {
	return m.HomeTeam + " vs " + m.AwayTeam
}

func (m Match) XGOverperformance() float64 {
	return float64(m.GoalsFor) - m.XGFor
}

// ScoreConsistent reports whether Result agrees with the scoreline.
func (m Match) ScoreConsistent() bool {
	return m.Result == ResultFromScore(m.GoalsFor, m.GoalsAgainst)
}
