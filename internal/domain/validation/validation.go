// Package validation flags facts that break domain invariants. Every check
// is advisory: findings are reported, never used to reject or rewrite data.
package validation

import (
	"fmt"
	"math"
	"sort"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/analytics"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
)

const (
	maxMatchXG          = 10.0
	maxShotMinute       = 120
	maxGoalsXGGap       = 10.0
	playerGoalTolerance = 1
	playerXGTolerance   = 2.0
)

// Anomaly is one human-readable finding about a fact or derived record.
type Anomaly struct {
	Subject string
	Message string
}

func (a Anomaly) String() string {
	return a.Subject + ": " + a.Message
}

func Match(m match.Match) []string {
	var out []string
	if m.GoalsFor < 0 || m.GoalsAgainst < 0 {
		out = append(out, "goals cannot be negative")
	}
	if m.XGFor < 0 || m.XGAgainst < 0 {
		out = append(out, "xG cannot be negative")
	}
	if expected := match.ResultFromScore(m.GoalsFor, m.GoalsAgainst); m.Result != expected {
		out = append(out, fmt.Sprintf("result mismatch: expected %s based on score, got %q", expected, m.Result))
	}
	if m.XGFor > maxMatchXG || m.XGAgainst > maxMatchXG {
		out = append(out, "xG values seem unreasonably high")
	}
	if missing := MissingFields(m); len(missing) > 0 {
		out = append(out, fmt.Sprintf("missing fields: %v", missing))
	}
	return out
}

func Shot(s shot.Shot) []string {
	var out []string
	if s.XG < 0 || s.XG > 1 {
		out = append(out, "xG must be between 0 and 1")
	}
	if s.X < 0 || s.X > 1 || s.Y < 0 || s.Y > 1 {
		out = append(out, "shot coordinates out of valid range")
	}
	if s.Minute < 0 || s.Minute > maxShotMinute {
		out = append(out, "minute out of valid range")
	}
	return out
}

func SeasonSummary(s analytics.SeasonSummary) []string {
	var out []string
	if expected := 3*s.Wins + s.Draws; s.Points != expected {
		out = append(out, fmt.Sprintf("points mismatch: expected %d, got %d", expected, s.Points))
	}
	if expected := s.Wins + s.Draws + s.Losses; s.MatchesPlayed != expected {
		out = append(out, fmt.Sprintf("matches mismatch: expected %d, got %d", expected, s.MatchesPlayed))
	}
	if expected := s.GoalsFor - s.GoalsAgainst; s.GoalDifference != expected {
		out = append(out, fmt.Sprintf("goal difference mismatch: expected %d, got %d", expected, s.GoalDifference))
	}
	return out
}

func PlayerStats(p analytics.PlayerSeasonStats) []string {
	var out []string
	if p.Goals < 0 {
		out = append(out, "goals cannot be negative")
	}
	if p.TotalShots < p.Goals {
		out = append(out, "total shots should be >= goals")
	}
	if p.TotalShots > 0 {
		conversion := 100 * float64(p.Goals) / float64(p.TotalShots)
		if conversion < 0 || conversion > 100 {
			out = append(out, "conversion rate out of valid range")
		}
	}
	if p.TotalXG < 0 || p.TotalXG > float64(p.TotalShots) {
		out = append(out, "xG values seem invalid")
	}
	if math.Abs(float64(p.Goals)-p.TotalXG) > maxGoalsXGGap {
		out = append(out, "goals vs xG difference seems extreme")
	}
	return out
}

// Aggregation cross-checks per-player totals against the team totals they
// should add up to.
func Aggregation(players []analytics.PlayerSeasonStats, teamGoals int, teamXG float64) []string {
	var out []string
	var goals int
	var xg float64
	for _, p := range players {
		goals += p.Goals
		xg += p.TotalXG
	}
	if diff := goals - teamGoals; diff > playerGoalTolerance || diff < -playerGoalTolerance {
		out = append(out, fmt.Sprintf("goals mismatch: sum of players (%d) != team (%d)", goals, teamGoals))
	}
	if math.Abs(xg-teamXG) > playerXGTolerance {
		out = append(out, fmt.Sprintf("xG mismatch: sum of players (%.2f) != team (%.2f)", xg, teamXG))
	}
	return out
}

// MissingFields lists the required match fields that carry no value.
func MissingFields(m match.Match) []string {
	var out []string
	if m.Date.IsZero() {
		out = append(out, "match_date")
	}
	if m.Opponent == "" {
		out = append(out, "opponent")
	}
	return out
}

// Run checks every match and shot, then the per-season aggregates derived
// from the club's shots. The facts are not modified.
func Run(matches []match.Match, shots []shot.Shot, club string) []Anomaly {
	var out []Anomaly
	add := func(subject string, messages []string) {
		for _, msg := range messages {
			out = append(out, Anomaly{Subject: subject, Message: msg})
		}
	}

	bySeason := make(map[string][]match.Match)
	for _, m := range matches {
		add("match "+m.ID, Match(m))
		bySeason[m.Season] = append(bySeason[m.Season], m)
	}

	clubShots := make(map[string][]shot.Shot)
	for _, s := range shots {
		add("shot "+s.ID, Shot(s))
		if s.Team == club {
			clubShots[s.Season] = append(clubShots[s.Season], s)
		}
	}

	seasons := make([]string, 0, len(bySeason))
	for season := range bySeason {
		seasons = append(seasons, season)
	}
	sort.Strings(seasons)

	for _, season := range seasons {
		summary, ok := analytics.SummarizeSeason(season, bySeason[season])
		if !ok {
			continue
		}
		add("season "+season, SeasonSummary(summary))

		seasonShots := clubShots[season]
		if len(seasonShots) == 0 {
			continue
		}

		groups := analytics.GroupByPlayer(seasonShots)
		names := make([]string, 0, len(groups))
		for name := range groups {
			names = append(names, name)
		}
		sort.Strings(names)

		players := make([]analytics.PlayerSeasonStats, 0, len(names))
		for _, name := range names {
			stats := analytics.AggregatePlayer(groups[name], analytics.PlayerContext{PlayerName: name, Season: season})
			add("player "+name+" "+season, PlayerStats(stats))
			players = append(players, stats)
		}
		add("season "+season, Aggregation(players, summary.GoalsFor, summary.TotalXGFor))
	}

	return out
}
