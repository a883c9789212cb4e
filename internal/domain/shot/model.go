package shot

import (
	"math"
	"strings"
	"time"
)

type Outcome string

const (
	OutcomeGoal        Outcome = "Goal"
	OutcomeSaved       Outcome = "SavedShot"
	OutcomeBlocked     Outcome = "BlockedShot"
	OutcomeMissed      Outcome = "MissedShots"
	OutcomeOnPost      Outcome = "ShotOnPost"
	OutcomeOwnGoal     Outcome = "OwnGoal"
	OutcomeUnspecified Outcome = ""
)

type Situation string

const (
	SituationOpenPlay       Situation = "OpenPlay"
	SituationCorner         Situation = "FromCorner"
	SituationSetPiece       Situation = "SetPiece"
	SituationDirectFreekick Situation = "DirectFreekick"
	SituationPenalty        Situation = "Penalty"
)

type BodyPart string

const (
	BodyPartRightFoot BodyPart = "RightFoot"
	BodyPartLeftFoot  BodyPart = "LeftFoot"
	BodyPartHead      BodyPart = "Head"
	BodyPartOther     BodyPart = "OtherBodyPart"
)

const (
	// BigChanceXG is the xG from which a shot counts as a big chance.
	BigChanceXG = 0.35

	boxMinX = 0.83
	boxMinY = 0.22
	boxMaxY = 0.78

	pitchLengthMeters = 105.0
	pitchWidthMeters  = 68.0
)

// Shot is one attempt on goal by either side. X and Y are normalized to
// [0,1] with the attacking goal at x=1.
type Shot struct {
	ID         string
	MatchID    string
	MatchDate  time.Time
	Season     string
	HomeTeam   string
	AwayTeam   string
	HomeGoals  int
	AwayGoals  int
	HomeXG     float64
	AwayXG     float64
	Team       string
	PlayerID   string
	PlayerName string
	Minute     int
	Outcome    Outcome
	Situation  Situation
	BodyPart   BodyPart
	X          float64
	Y          float64
	XG         float64
	AssistedBy string
	LastAction string
}

func (s Shot) IsGoal() bool {
	return s.Outcome == OutcomeGoal
}

func (s Shot) OnTarget() bool {
	switch s.Outcome {
	case OutcomeGoal, OutcomeSaved, OutcomeOnPost:
		return true
	default:
		return false
	}
}

func (s Shot) BigChance() bool {
	return s.XG >= BigChanceXG
}

func (s Shot) InBox() bool {
	return s.X >= boxMinX && s.Y >= boxMinY && s.Y <= boxMaxY
}

// Assister returns the trimmed assisting player and whether one is set.
func (s Shot) Assister() (string, bool) {
	name := strings.TrimSpace(s.AssistedBy)
	return name, name != ""
}

func (s Shot) IsSetPiece() bool {
	return s.Situation == SituationSetPiece || s.Situation == SituationDirectFreekick
}

// DistanceMeters approximates the distance to the centre of the goal.
func (s Shot) DistanceMeters() float64 {
	dx := (1 - s.X) * pitchLengthMeters
	dy := (0.5 - s.Y) * pitchWidthMeters
	return math.Hypot(dx, dy)
}
