package postgres

import (
	"context"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
	qb "github.com/Muhammadatef/Gunners-Data-Platform/internal/platform/querybuilder"
)

type ShotRepository struct {
	db *sqlx.DB
}

func NewShotRepository(db *sqlx.DB) *ShotRepository {
	return &ShotRepository{db: db}
}

func (r *ShotRepository) ListBySeasonAndTeam(ctx context.Context, season, team string) ([]shot.Shot, error) {
	return r.list(ctx, "season and team",
		[]qb.Condition{qb.Eq("season", season), qb.Eq("team", team)},
		"match_date DESC", "minute ASC", "shot_id ASC",
	)
}

func (r *ShotRepository) ListAll(ctx context.Context) ([]shot.Shot, error) {
	return r.list(ctx, "all", nil, "match_date ASC", "match_id ASC", "minute ASC", "shot_id ASC")
}

func (r *ShotRepository) ListByMatch(ctx context.Context, matchID string) ([]shot.Shot, error) {
	return r.list(ctx, "match",
		[]qb.Condition{qb.Eq("match_id", matchID)},
		"minute ASC", "shot_id ASC",
	)
}

func (r *ShotRepository) ListByPlayer(ctx context.Context, season, team, playerName string) ([]shot.Shot, error) {
	return r.list(ctx, "player",
		[]qb.Condition{qb.Eq("season", season), qb.Eq("team", team), qb.Eq("player_name", playerName)},
		"match_date DESC", "minute ASC", "shot_id ASC",
	)
}

// ReplaceForMatch swaps every stored shot of the match for the given ones
// inside a single transaction.
func (r *ShotRepository) ReplaceForMatch(ctx context.Context, matchID string, shots []shot.Shot) error {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return crerr.New("replace shots: match id is required")
	}

	models := make([]shotInsertModel, 0, len(shots))
	for i, item := range shots {
		if item.MatchID != "" && item.MatchID != matchID {
			return crerr.Newf("replace shots: shot %d belongs to match %s, not %s", i, item.MatchID, matchID)
		}
		id := strings.TrimSpace(item.ID)
		if id == "" {
			id = fmt.Sprintf("%s-%02d", matchID, i+1)
		}
		models = append(models, shotInsertModel{
			ShotID:     id,
			MatchID:    matchID,
			MatchDate:  nullableTime(item.MatchDate),
			Season:     item.Season,
			HomeTeam:   item.HomeTeam,
			AwayTeam:   item.AwayTeam,
			HomeGoals:  item.HomeGoals,
			AwayGoals:  item.AwayGoals,
			HomeXG:     item.HomeXG,
			AwayXG:     item.AwayXG,
			Team:       item.Team,
			PlayerID:   nullableString(item.PlayerID),
			PlayerName: item.PlayerName,
			Minute:     item.Minute,
			Result:     string(item.Outcome),
			Situation:  string(item.Situation),
			ShotType:   string(item.BodyPart),
			X:          item.X,
			Y:          item.Y,
			XG:         item.XG,
			AssistedBy: nullableString(item.AssistedBy),
			LastAction: nullableString(item.LastAction),
		})
	}

	deleteQuery, deleteArgs, err := qb.DeleteFrom("shot_events").Where(qb.Eq("match_id", matchID)).ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build delete shots query")
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin tx replace shots")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return crerr.Wrapf(err, "delete shots match=%s", matchID)
	}
	for i, part := range chunk(models, insertChunkRows) {
		query, args, err := qb.InsertModels("shot_events", part, "")
		if err != nil {
			return crerr.Wrap(err, "build insert shots query")
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return crerr.Wrapf(err, "insert shots match=%s chunk=%d", matchID, i)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit replace shots tx")
	}
	return nil
}

func (r *ShotRepository) list(ctx context.Context, label string, where []qb.Condition, orderBy ...string) ([]shot.Shot, error) {
	query, args, err := qb.Select(shotColumns...).From("shot_events").
		Where(where...).
		OrderBy(orderBy...).
		ToSQL()
	if err != nil {
		return nil, crerr.Wrapf(err, "build select shots by %s query", label)
	}

	var rows []shotTableModel
	if err := selectWithRetry(ctx, r.db, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select shots by %s", label)
	}

	out := make([]shot.Shot, 0, len(rows))
	for _, row := range rows {
		out = append(out, shotFromRow(row))
	}
	return out, nil
}

func shotFromRow(row shotTableModel) shot.Shot {
	return shot.Shot{
		ID:         row.ShotID,
		MatchID:    row.MatchID,
		MatchDate:  nullTimeToTime(row.MatchDate),
		Season:     nullStringToString(row.Season),
		HomeTeam:   nullStringToString(row.HomeTeam),
		AwayTeam:   nullStringToString(row.AwayTeam),
		HomeGoals:  nullInt64ToInt(row.HomeGoals),
		AwayGoals:  nullInt64ToInt(row.AwayGoals),
		HomeXG:     nullFloat64ToFloat(row.HomeXG),
		AwayXG:     nullFloat64ToFloat(row.AwayXG),
		Team:       nullStringToString(row.Team),
		PlayerID:   nullStringToString(row.PlayerID),
		PlayerName: nullStringToString(row.PlayerName),
		Minute:     nullInt64ToInt(row.Minute),
		Outcome:    shot.Outcome(nullStringToString(row.Result)),
		Situation:  shot.Situation(nullStringToString(row.Situation)),
		BodyPart:   shot.BodyPart(nullStringToString(row.ShotType)),
		X:          nullFloat64ToFloat(row.X),
		Y:          nullFloat64ToFloat(row.Y),
		XG:         nullFloat64ToFloat(row.XG),
		AssistedBy: nullStringToString(row.AssistedBy),
		LastAction: nullStringToString(row.LastAction),
	}
}
