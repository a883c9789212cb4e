// Package understat decodes match exports in the shape Understat publishes
// them: numbers frequently arrive as strings and shots are split into the
// home ("h") and away ("a") sides.
package understat

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/platform/coerce"
)

const matchURLPrefix = "https://understat.com/match/"

var dateLayouts = []string{time.DateTime, time.DateOnly, time.RFC3339}

type MatchRecord struct {
	MatchID   coerce.FlexString `json:"match_id" validate:"required"`
	MatchURL  coerce.FlexString `json:"match_url"`
	Date      coerce.FlexString `json:"date" validate:"required"`
	Season    coerce.FlexString `json:"season" validate:"required"`
	HomeTeam  coerce.FlexString `json:"home_team" validate:"required"`
	AwayTeam  coerce.FlexString `json:"away_team" validate:"required,nefield=HomeTeam"`
	HomeGoals coerce.FlexInt    `json:"home_goals"`
	AwayGoals coerce.FlexInt    `json:"away_goals"`
	HomeXG    coerce.FlexFloat  `json:"home_xg"`
	AwayXG    coerce.FlexFloat  `json:"away_xg"`
	Shots     ShotsData         `json:"shots"`
}

type ShotsData struct {
	Home []ShotRecord `json:"h" validate:"dive"`
	Away []ShotRecord `json:"a" validate:"dive"`
}

type ShotRecord struct {
	ID             coerce.FlexString `json:"id" validate:"required"`
	Minute         coerce.FlexInt    `json:"minute"`
	Result         coerce.FlexString `json:"result"`
	X              coerce.FlexFloat  `json:"X"`
	Y              coerce.FlexFloat  `json:"Y"`
	XG             coerce.FlexFloat  `json:"xG"`
	Player         coerce.FlexString `json:"player" validate:"required"`
	PlayerID       coerce.FlexString `json:"player_id"`
	Situation      coerce.FlexString `json:"situation"`
	ShotType       coerce.FlexString `json:"shotType"`
	PlayerAssisted coerce.FlexString `json:"player_assisted"`
	LastAction     coerce.FlexString `json:"lastAction"`
}

type Decoder struct {
	validate *validator.Validate
}

func NewDecoder() *Decoder {
	return &Decoder{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Decode reads either a single match object or an array of them. Records
// missing identity fields are rejected; questionable values are kept.
func (d *Decoder) Decode(r io.Reader) ([]MatchRecord, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, crerr.Wrap(err, "read understat export")
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, crerr.New("understat export is empty")
	}

	var records []MatchRecord
	if raw[0] == '[' {
		if err := sonic.Unmarshal(raw, &records); err != nil {
			return nil, crerr.Wrap(err, "decode understat match list")
		}
	} else {
		var single MatchRecord
		if err := sonic.Unmarshal(raw, &single); err != nil {
			return nil, crerr.Wrap(err, "decode understat match")
		}
		records = append(records, single)
	}

	for i := range records {
		if err := d.validate.Struct(records[i]); err != nil {
			return nil, crerr.Wrapf(err, "validate match record #%d (id=%q)", i, string(records[i].MatchID))
		}
	}
	return records, nil
}

// Facts converts the record into the club's view of the match plus every
// shot from both sides.
func (rec MatchRecord) Facts(club string) (match.Match, []shot.Shot, error) {
	id := strings.TrimSpace(string(rec.MatchID))
	home := strings.TrimSpace(string(rec.HomeTeam))
	away := strings.TrimSpace(string(rec.AwayTeam))

	date, err := parseDate(string(rec.Date))
	if err != nil {
		return match.Match{}, nil, crerr.Wrapf(err, "match %s", id)
	}

	m := match.Match{
		ID:       id,
		URL:      strings.TrimSpace(string(rec.MatchURL)),
		Date:     date,
		Season:   NormalizeSeason(string(rec.Season)),
		HomeTeam: home,
		AwayTeam: away,
	}
	if m.URL == "" {
		m.URL = matchURLPrefix + id
	}

	homeGoals, awayGoals := int(rec.HomeGoals), int(rec.AwayGoals)
	homeXG, awayXG := float64(rec.HomeXG), float64(rec.AwayXG)
	switch club {
	case home:
		m.Venue, m.Opponent = match.VenueHome, away
		m.GoalsFor, m.GoalsAgainst = homeGoals, awayGoals
		m.XGFor, m.XGAgainst = homeXG, awayXG
	case away:
		m.Venue, m.Opponent = match.VenueAway, home
		m.GoalsFor, m.GoalsAgainst = awayGoals, homeGoals
		m.XGFor, m.XGAgainst = awayXG, homeXG
	default:
		return match.Match{}, nil, crerr.Newf("match %s: club %q is neither %q nor %q", id, club, home, away)
	}
	m.Result = match.ResultFromScore(m.GoalsFor, m.GoalsAgainst)

	shots := make([]shot.Shot, 0, len(rec.Shots.Home)+len(rec.Shots.Away))
	convert := func(side []ShotRecord, team string) {
		for _, s := range side {
			shots = append(shots, shot.Shot{
				ID:         strings.TrimSpace(string(s.ID)),
				MatchID:    id,
				MatchDate:  date,
				Season:     m.Season,
				HomeTeam:   home,
				AwayTeam:   away,
				HomeGoals:  homeGoals,
				AwayGoals:  awayGoals,
				HomeXG:     homeXG,
				AwayXG:     awayXG,
				Team:       team,
				PlayerID:   strings.TrimSpace(string(s.PlayerID)),
				PlayerName: strings.TrimSpace(string(s.Player)),
				Minute:     int(s.Minute),
				Outcome:    shot.Outcome(strings.TrimSpace(string(s.Result))),
				Situation:  shot.Situation(strings.TrimSpace(string(s.Situation))),
				BodyPart:   shot.BodyPart(strings.TrimSpace(string(s.ShotType))),
				X:          float64(s.X),
				Y:          float64(s.Y),
				XG:         float64(s.XG),
				AssistedBy: strings.TrimSpace(string(s.PlayerAssisted)),
				LastAction: strings.TrimSpace(string(s.LastAction)),
			})
		}
	}
	convert(rec.Shots.Home, home)
	convert(rec.Shots.Away, away)

	return m, shots, nil
}

// NormalizeSeason turns Understat's starting-year form ("2024") into the
// "2024-25" label used everywhere else. Other values pass through trimmed.
func NormalizeSeason(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) != 4 {
		return raw
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return raw
	}
	return raw + "-" + strconv.Itoa((year+1)%100+100)[1:]
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC().Truncate(24 * time.Hour), nil
		}
	}
	return time.Time{}, crerr.Newf("unrecognized date %q", raw)
}
