package postgres

import (
	"database/sql"
	"time"
)

var matchColumns = []string{
	"match_id",
	"match_url",
	"match_date",
	"season",
	"home_team",
	"away_team",
	"opponent",
	"venue",
	"result",
	"goals_for",
	"goals_against",
	"xg_for",
	"xg_against",
}

type matchTableModel struct {
	MatchID      string          `db:"match_id"`
	MatchURL     sql.NullString  `db:"match_url"`
	MatchDate    sql.NullTime    `db:"match_date"`
	Season       string          `db:"season"`
	HomeTeam     sql.NullString  `db:"home_team"`
	AwayTeam     sql.NullString  `db:"away_team"`
	Opponent     sql.NullString  `db:"opponent"`
	Venue        sql.NullString  `db:"venue"`
	Result       sql.NullString  `db:"result"`
	GoalsFor     sql.NullInt64   `db:"goals_for"`
	GoalsAgainst sql.NullInt64   `db:"goals_against"`
	XGFor        sql.NullFloat64 `db:"xg_for"`
	XGAgainst    sql.NullFloat64 `db:"xg_against"`
}

type matchInsertModel struct {
	MatchID      string     `db:"match_id"`
	MatchURL     *string    `db:"match_url"`
	MatchDate    *time.Time `db:"match_date"`
	Season       string     `db:"season"`
	HomeTeam     string     `db:"home_team"`
	AwayTeam     string     `db:"away_team"`
	Opponent     string     `db:"opponent"`
	Venue        string     `db:"venue"`
	Result       string     `db:"result"`
	GoalsFor     int        `db:"goals_for"`
	GoalsAgainst int        `db:"goals_against"`
	XGFor        float64    `db:"xg_for"`
	XGAgainst    float64    `db:"xg_against"`
}
