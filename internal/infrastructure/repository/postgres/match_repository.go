package postgres

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
	qb "github.com/Muhammadatef/Gunners-Data-Platform/internal/platform/querybuilder"
)

const upsertMatchSuffix = `ON CONFLICT (match_id)
DO UPDATE SET
    match_url = EXCLUDED.match_url,
    match_date = EXCLUDED.match_date,
    season = EXCLUDED.season,
    home_team = EXCLUDED.home_team,
    away_team = EXCLUDED.away_team,
    opponent = EXCLUDED.opponent,
    venue = EXCLUDED.venue,
    result = EXCLUDED.result,
    goals_for = EXCLUDED.goals_for,
    goals_against = EXCLUDED.goals_against,
    xg_for = EXCLUDED.xg_for,
    xg_against = EXCLUDED.xg_against,
    updated_at = NOW()`

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListSeasons(ctx context.Context) ([]string, error) {
	query, args, err := qb.SelectDistinct("season").From("matches").
		Where(qb.NotBlank("season")).
		OrderBy("season DESC").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list seasons query")
	}

	var seasons []string
	if err := selectWithRetry(ctx, r.db, &seasons, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select seasons")
	}
	return seasons, nil
}

func (r *MatchRepository) ListBySeason(ctx context.Context, season string) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(qb.Eq("season", season)).
		OrderBy("match_date ASC", "match_id ASC").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select matches by season query")
	}

	var rows []matchTableModel
	if err := selectWithRetry(ctx, r.db, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "select matches by season=%s", season)
	}
	return matchesFromRows(rows), nil
}

func (r *MatchRepository) ListAll(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		OrderBy("match_date ASC", "match_id ASC").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select matches query")
	}

	var rows []matchTableModel
	if err := selectWithRetry(ctx, r.db, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select matches")
	}
	return matchesFromRows(rows), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(qb.Eq("match_id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, crerr.Wrap(err, "build get match query")
	}

	var row matchTableModel
	if err := getWithRetry(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, crerr.Wrapf(err, "get match id=%s", matchID)
	}
	return matchFromRow(row), true, nil
}

// Upsert writes the matches in one transaction. When the same id appears
// more than once the last occurrence wins.
func (r *MatchRepository) Upsert(ctx context.Context, matches []match.Match) error {
	if len(matches) == 0 {
		return nil
	}

	models := make([]matchInsertModel, 0, len(matches))
	index := make(map[string]int, len(matches))
	for _, m := range matches {
		id := strings.TrimSpace(m.ID)
		if id == "" {
			return crerr.Newf("upsert match: id is required (season=%s opponent=%s)", m.Season, m.Opponent)
		}
		model := matchInsertModel{
			MatchID:      id,
			MatchURL:     nullableString(m.URL),
			MatchDate:    nullableTime(m.Date),
			Season:       m.Season,
			HomeTeam:     m.HomeTeam,
			AwayTeam:     m.AwayTeam,
			Opponent:     m.Opponent,
			Venue:        string(m.Venue),
			Result:       string(m.Result),
			GoalsFor:     m.GoalsFor,
			GoalsAgainst: m.GoalsAgainst,
			XGFor:        m.XGFor,
			XGAgainst:    m.XGAgainst,
		}
		if at, ok := index[id]; ok {
			models[at] = model
			continue
		}
		index[id] = len(models)
		models = append(models, model)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin tx upsert matches")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, part := range chunk(models, insertChunkRows) {
		query, args, err := qb.InsertModels("matches", part, upsertMatchSuffix)
		if err != nil {
			return crerr.Wrap(err, "build upsert matches query")
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return crerr.Wrapf(err, "upsert matches chunk=%d", i)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit upsert matches tx")
	}
	return nil
}

func matchesFromRows(rows []matchTableModel) []match.Match {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:           row.MatchID,
		URL:          nullStringToString(row.MatchURL),
		Date:         nullTimeToTime(row.MatchDate),
		Season:       row.Season,
		HomeTeam:     nullStringToString(row.HomeTeam),
		AwayTeam:     nullStringToString(row.AwayTeam),
		Opponent:     nullStringToString(row.Opponent),
		Venue:        match.ParseVenue(nullStringToString(row.Venue)),
		Result:       match.ParseResult(nullStringToString(row.Result)),
		GoalsFor:     nullInt64ToInt(row.GoalsFor),
		GoalsAgainst: nullInt64ToInt(row.GoalsAgainst),
		XGFor:        nullFloat64ToFloat(row.XGFor),
		XGAgainst:    nullFloat64ToFloat(row.XGAgainst),
	}
}
