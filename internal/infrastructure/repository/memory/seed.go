package memory

import (
	"fmt"
	"time"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
)

// SeedClub is the club every seeded match is recorded for.
const SeedClub = "Arsenal"

type seedMatch struct {
	id, date, season, opponent string
	venue                      match.Venue
	goalsFor, goalsAgainst     int
	xgFor, xgAgainst           float64
}

type seedShot struct {
	minute    int
	club      bool
	player    string
	outcome   shot.Outcome
	situation shot.Situation
	body      shot.BodyPart
	x, y, xg  float64
	assist    string
	action    string
}

var seedMatches = []seedMatch{
	{id: "22060", date: "2024-05-12", season: "2023-24", opponent: "Manchester United", venue: match.VenueAway, goalsFor: 1, goalsAgainst: 0, xgFor: 0.84, xgAgainst: 1.18},
	{id: "22070", date: "2024-05-19", season: "2023-24", opponent: "Everton", venue: match.VenueHome, goalsFor: 2, goalsAgainst: 1, xgFor: 2.41, xgAgainst: 0.68},
	{id: "26603", date: "2024-08-17", season: "2024-25", opponent: "Wolverhampton Wanderers", venue: match.VenueHome, goalsFor: 2, goalsAgainst: 0, xgFor: 1.87, xgAgainst: 0.46},
	{id: "26613", date: "2024-08-31", season: "2024-25", opponent: "Brighton", venue: match.VenueHome, goalsFor: 1, goalsAgainst: 1, xgFor: 0.78, xgAgainst: 0.82},
	{id: "26631", date: "2024-09-15", season: "2024-25", opponent: "Tottenham", venue: match.VenueAway, goalsFor: 1, goalsAgainst: 0, xgFor: 1.20, xgAgainst: 0.90},
	{id: "26642", date: "2024-09-22", season: "2024-25", opponent: "Manchester City", venue: match.VenueAway, goalsFor: 2, goalsAgainst: 2, xgFor: 0.44, xgAgainst: 3.96},
	{id: "26658", date: "2024-10-19", season: "2024-25", opponent: "Bournemouth", venue: match.VenueAway, goalsFor: 0, goalsAgainst: 2, xgFor: 1.05, xgAgainst: 1.40},
}

var seedShots = map[string][]seedShot{
	"22060": {
		{minute: 20, club: true, player: "Leandro Trossard", outcome: shot.OutcomeGoal, situation: shot.SituationOpenPlay, body: shot.BodyPartRightFoot, x: 0.89, y: 0.46, xg: 0.31, assist: "Kai Havertz", action: "Pass"},
		{minute: 58, club: true, player: "Bukayo Saka", outcome: shot.OutcomeSaved, situation: shot.SituationOpenPlay, body: shot.BodyPartLeftFoot, x: 0.80, y: 0.30, xg: 0.08, action: "Dribble"},
		{minute: 77, club: false, player: "Alejandro Garnacho", outcome: shot.OutcomeMissed, situation: shot.SituationOpenPlay, body: shot.BodyPartRightFoot, x: 0.90, y: 0.55, xg: 0.42},
	},
	"22070": {
		{minute: 40, club: false, player: "Idrissa Gueye", outcome: shot.OutcomeGoal, situation: shot.SituationDirectFreekick, body: shot.BodyPartRightFoot, x: 0.76, y: 0.52, xg: 0.05},
		{minute: 43, club: true, player: "Takehiro Tomiyasu", outcome: shot.OutcomeGoal, situation: shot.SituationOpenPlay, body: shot.BodyPartLeftFoot, x: 0.86, y: 0.60, xg: 0.22, assist: "Kai Havertz", action: "Pass"},
		{minute: 89, club: true, player: "Kai Havertz", outcome: shot.OutcomeGoal, situation: shot.SituationOpenPlay, body: shot.BodyPartLeftFoot, x: 0.92, y: 0.48, xg: 0.45, assist: "Takehiro Tomiyasu", action: "Chipped"},
		{minute: 93, club: true, player: "Bukayo Saka", outcome: shot.OutcomeBlocked, situation: shot.SituationOpenPlay, body: shot.BodyPartLeftFoot, x: 0.84, y: 0.35, xg: 0.12, action: "Dribble"},
	},
	"26603": {
		{minute: 25, club: true, player: "Kai Havertz", outcome: shot.OutcomeGoal, situation: shot.SituationOpenPlay, body: shot.BodyPartHead, x: 0.94, y: 0.51, xg: 0.39, assist: "Bukayo Saka", action: "Cross"},
		{minute: 31, club: true, player: "Martin Ødegaard", outcome: shot.OutcomeMissed, situation: shot.SituationOpenPlay, body: shot.BodyPartLeftFoot, x: 0.78, y: 0.44, xg: 0.04, action: "Pass"},
		{minute: 74, club: true, player: "Bukayo Saka", outcome: shot.OutcomeGoal, situation: shot.SituationOpenPlay, body: shot.BodyPartLeftFoot, x: 0.87, y: 0.36, xg: 0.21, assist: "Kai Havertz", action: "Pass"},
		{minute: 66, club: false, player: "Matheus Cunha", outcome: shot.OutcomeSaved, situation: shot.SituationOpenPlay, body: shot.BodyPartRightFoot, x: 0.81, y: 0.42, xg: 0.09},
	},
	"26613": {
		{minute: 38, club: true, player: "Kai Havertz", outcome: shot.OutcomeGoal, situation: shot.SituationOpenPlay, body: shot.BodyPartLeftFoot, x: 0.91, y: 0.53, xg: 0.36, assist: "Bukayo Saka", action: "Pass"},
		{minute: 55, club: true, player: "Declan Rice", outcome: shot.OutcomeOnPost, situation: shot.SituationCorner, body: shot.BodyPartHead, x: 0.93, y: 0.47, xg: 0.11, assist: "Martin Ødegaard", action: "Cross"},
		{minute: 58, club: false, player: "João Pedro", outcome: shot.OutcomeGoal, situation: shot.SituationOpenPlay, body: shot.BodyPartRightFoot, x: 0.88, y: 0.55, xg: 0.32},
	},
	"26631": {
		{minute: 64, club: true, player: "Gabriel Magalhães", outcome: shot.OutcomeGoal, situation: shot.SituationCorner, body: shot.BodyPartHead, x: 0.95, y: 0.50, xg: 0.28, assist: "Bukayo Saka", action: "Cross"},
		{minute: 12, club: true, player: "Kai Havertz", outcome: shot.OutcomeSaved, situation: shot.SituationOpenPlay, body: shot.BodyPartRightFoot, x: 0.85, y: 0.40, xg: 0.14, action: "Rebound"},
		{minute: 80, club: false, player: "Dominic Solanke", outcome: shot.OutcomeSaved, situation: shot.SituationOpenPlay, body: shot.BodyPartRightFoot, x: 0.90, y: 0.50, xg: 0.40},
	},
	"26642": {
		{minute: 22, club: true, player: "Riccardo Calafiori", outcome: shot.OutcomeGoal, situation: shot.SituationOpenPlay, body: shot.BodyPartLeftFoot, x: 0.80, y: 0.60, xg: 0.04, assist: "Gabriel Martinelli", action: "Pass"},
		{minute: 45, club: true, player: "Gabriel Magalhães", outcome: shot.OutcomeGoal, situation: shot.SituationCorner, body: shot.BodyPartHead, x: 0.96, y: 0.48, xg: 0.30, assist: "Bukayo Saka", action: "Cross"},
		{minute: 9, club: false, player: "Erling Haaland", outcome: shot.OutcomeGoal, situation: shot.SituationOpenPlay, body: shot.BodyPartLeftFoot, x: 0.91, y: 0.50, xg: 0.60},
		{minute: 98, club: false, player: "John Stones", outcome: shot.OutcomeGoal, situation: shot.SituationCorner, body: shot.BodyPartRightFoot, x: 0.95, y: 0.52, xg: 0.35},
	},
	"26658": {
		{minute: 30, club: true, player: "Bukayo Saka", outcome: shot.OutcomeMissed, situation: shot.SituationOpenPlay, body: shot.BodyPartLeftFoot, x: 0.88, y: 0.40, xg: 0.18, assist: "Martin Ødegaard", action: "Pass"},
		{minute: 61, club: true, player: "Kai Havertz", outcome: shot.OutcomeSaved, situation: shot.SituationOpenPlay, body: shot.BodyPartHead, x: 0.93, y: 0.52, xg: 0.37, assist: "Bukayo Saka", action: "Cross"},
		{minute: 70, club: false, player: "Ryan Christie", outcome: shot.OutcomeGoal, situation: shot.SituationOpenPlay, body: shot.BodyPartRightFoot, x: 0.87, y: 0.45, xg: 0.27},
		{minute: 79, club: false, player: "Justin Kluivert", outcome: shot.OutcomeGoal, situation: shot.SituationPenalty, body: shot.BodyPartRightFoot, x: 0.885, y: 0.50, xg: 0.76},
	},
}

// SeedMatches returns a small fixed set of club matches across two seasons.
func SeedMatches() []match.Match {
	out := make([]match.Match, 0, len(seedMatches))
	for _, m := range seedMatches {
		date, err := time.Parse(time.DateOnly, m.date)
		if err != nil {
			panic(fmt.Sprintf("seed match %s: %v", m.id, err))
		}

		home, away := SeedClub, m.opponent
		if m.venue == match.VenueAway {
			home, away = m.opponent, SeedClub
		}
		out = append(out, match.Match{
			ID:           m.id,
			URL:          "https://understat.com/match/" + m.id,
			Date:         date,
			Season:       m.season,
			HomeTeam:     home,
			AwayTeam:     away,
			Opponent:     m.opponent,
			Venue:        m.venue,
			Result:       match.ResultFromScore(m.goalsFor, m.goalsAgainst),
			GoalsFor:     m.goalsFor,
			GoalsAgainst: m.goalsAgainst,
			XGFor:        m.xgFor,
			XGAgainst:    m.xgAgainst,
		})
	}
	return out
}

// SeedShots returns the shots of every seeded match for both sides.
func SeedShots() []shot.Shot {
	matches := SeedMatches()
	out := make([]shot.Shot, 0)
	for _, m := range matches {
		homeGoals, awayGoals := m.GoalsFor, m.GoalsAgainst
		homeXG, awayXG := m.XGFor, m.XGAgainst
		if m.Venue == match.VenueAway {
			homeGoals, awayGoals = awayGoals, homeGoals
			homeXG, awayXG = awayXG, homeXG
		}

		for i, s := range seedShots[m.ID] {
			team := m.Opponent
			if s.club {
				team = SeedClub
			}
			out = append(out, shot.Shot{
				ID:         fmt.Sprintf("%s-%02d", m.ID, i+1),
				MatchID:    m.ID,
				MatchDate:  m.Date,
				Season:     m.Season,
				HomeTeam:   m.HomeTeam,
				AwayTeam:   m.AwayTeam,
				HomeGoals:  homeGoals,
				AwayGoals:  awayGoals,
				HomeXG:     homeXG,
				AwayXG:     awayXG,
				Team:       team,
				PlayerName: s.player,
				Minute:     s.minute,
				Outcome:    s.outcome,
				Situation:  s.situation,
				BodyPart:   s.body,
				X:          s.x,
				Y:          s.y,
				XG:         s.xg,
				AssistedBy: s.assist,
				LastAction: s.action,
			})
		}
	}
	return out
}
