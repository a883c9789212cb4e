package postgres

import (
	"database/sql"
	"time"
)

var shotColumns = []string{
	"shot_id",
	"match_id",
	"match_date",
	"season",
	"home_team",
	"away_team",
	"home_goals",
	"away_goals",
	"home_xg",
	"away_xg",
	"team",
	"player_id",
	"player_name",
	"minute",
	"result",
	"situation",
	"shot_type",
	"x_coord",
	"y_coord",
	"xg",
	"assisted_by",
	"last_action",
}

type shotTableModel struct {
	ShotID     string          `db:"shot_id"`
	MatchID    string          `db:"match_id"`
	MatchDate  sql.NullTime    `db:"match_date"`
	Season     sql.NullString  `db:"season"`
	HomeTeam   sql.NullString  `db:"home_team"`
	AwayTeam   sql.NullString  `db:"away_team"`
	HomeGoals  sql.NullInt64   `db:"home_goals"`
	AwayGoals  sql.NullInt64   `db:"away_goals"`
	HomeXG     sql.NullFloat64 `db:"home_xg"`
	AwayXG     sql.NullFloat64 `db:"away_xg"`
	Team       sql.NullString  `db:"team"`
	PlayerID   sql.NullString  `db:"player_id"`
	PlayerName sql.NullString  `db:"player_name"`
	Minute     sql.NullInt64   `db:"minute"`
	Result     sql.NullString  `db:"result"`
	Situation  sql.NullString  `db:"situation"`
	ShotType   sql.NullString  `db:"shot_type"`
	X          sql.NullFloat64 `db:"x_coord"`
	Y          sql.NullFloat64 `db:"y_coord"`
	XG         sql.NullFloat64 `db:"xg"`
	AssistedBy sql.NullString  `db:"assisted_by"`
	LastAction sql.NullString  `db:"last_action"`
}

type shotInsertModel struct {
	ShotID     string     `db:"shot_id"`
	MatchID    string     `db:"match_id"`
	MatchDate  *time.Time `db:"match_date"`
	Season     string     `db:"season"`
	HomeTeam   string     `db:"home_team"`
	AwayTeam   string     `db:"away_team"`
	HomeGoals  int        `db:"home_goals"`
	AwayGoals  int        `db:"away_goals"`
	HomeXG     float64    `db:"home_xg"`
	AwayXG     float64    `db:"away_xg"`
	Team       string     `db:"team"`
	PlayerID   *string    `db:"player_id"`
	PlayerName string     `db:"player_name"`
	Minute     int        `db:"minute"`
	Result     string     `db:"result"`
	Situation  string     `db:"situation"`
	ShotType   string     `db:"shot_type"`
	X          float64    `db:"x_coord"`
	Y          float64    `db:"y_coord"`
	XG         float64    `db:"xg"`
	AssistedBy *string    `db:"assisted_by"`
	LastAction *string    `db:"last_action"`
}
