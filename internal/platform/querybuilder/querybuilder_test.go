package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("match_id", "minute").
		From("shot_events").
		Where(Eq("season", "2024-25"), Eq("team", "Arsenal"), NotBlank("assisted_by")).
		OrderBy("match_date DESC", "minute ASC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT match_id, minute FROM shot_events WHERE season = $1 AND team = $2 AND assisted_by IS NOT NULL AND assisted_by <> '' ORDER BY match_date DESC, minute ASC LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "2024-25" || args[1] != "Arsenal" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectDistinctWithExpr(t *testing.T) {
	query, args, err := SelectDistinct("season").
		From("matches").
		Where(Expr("match_date >= ? AND match_date < ?", "2024-08-01", "2025-06-01")).
		OrderBy("season DESC").
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT DISTINCT season FROM matches WHERE match_date >= $1 AND match_date < $2 ORDER BY season DESC", query)
	assert.Equal(t, []any{"2024-08-01", "2025-06-01"}, args)
}

func TestSelectBuilderRequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
	if _, _, err := Select().From("matches").ToSQL(); err == nil {
		t.Fatalf("expected error without columns")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("matches").
		Columns("match_id", "season").
		Values("m1", "2024-25").
		Values("m2", "2024-25").
		Suffix("ON CONFLICT (match_id) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO matches (match_id, season) VALUES ($1, $2), ($3, $4) ON CONFLICT (match_id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != "m2" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderRowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("matches").Columns("a", "b").Values(1).ToSQL()
	require.Error(t, err)
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("shot_events").Where(Eq("match_id", "m1")).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM shot_events WHERE match_id = $1", query)
	assert.Equal(t, []any{"m1"}, args)

	_, _, err = DeleteFrom("shot_events").ToSQL()
	require.Error(t, err)
}

type testRow struct {
	ID      string  `db:"match_id"`
	XG      float64 `db:"xg"`
	Ignored string  `db:"-"`
	note    string
}

func TestInsertModels(t *testing.T) {
	rows := []testRow{{ID: "m1", XG: 1.2, note: "x"}, {ID: "m2", XG: 0.4}}

	query, args, err := InsertModels("matches", rows, "ON CONFLICT (match_id) DO UPDATE SET xg = EXCLUDED.xg")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO matches (match_id, xg) VALUES ($1, $2), ($3, $4) ON CONFLICT (match_id) DO UPDATE SET xg = EXCLUDED.xg", query)
	assert.Equal(t, []any{"m1", 1.2, "m2", 0.4}, args)

	cols, err := Columns(&rows[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"match_id", "xg"}, cols)

	_, _, err = InsertModels[testRow]("matches", nil, "")
	require.Error(t, err)
}
