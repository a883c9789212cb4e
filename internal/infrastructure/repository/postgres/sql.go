package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// insertChunkRows keeps multi-row inserts well under the 65535 bind
// parameter limit of the postgres protocol.
const insertChunkRows = 500

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// isBindParameterMismatch matches the error a transaction-pooling proxy
// returns when two clients' unnamed statements get interleaved.
func isBindParameterMismatch(err error) bool {
	if err == nil {
		return false
	}
	text := strings.ToLower(err.Error())
	return strings.Contains(text, "bind message supplies") &&
		strings.Contains(text, "prepared statement")
}

func isUnnamedPreparedStatementMissing(err error) bool {
	if err == nil {
		return false
	}
	text := strings.ToLower(err.Error())
	if strings.Contains(text, "unnamed prepared statement does not exist") {
		return true
	}
	return strings.Contains(text, "prepared statement") && strings.Contains(text, "(26000)")
}

// selectWithRetry runs a read once more when the pooled connection lost the
// statement it prepared. Reads are idempotent so the retry is safe.
func selectWithRetry(ctx context.Context, db sqlx.QueryerContext, dest any, query string, args ...any) error {
	err := sqlx.SelectContext(ctx, db, dest, query, args...)
	if isBindParameterMismatch(err) || isUnnamedPreparedStatementMissing(err) {
		err = sqlx.SelectContext(ctx, db, dest, query, args...)
	}
	return err
}

func getWithRetry(ctx context.Context, db sqlx.QueryerContext, dest any, query string, args ...any) error {
	err := sqlx.GetContext(ctx, db, dest, query, args...)
	if isBindParameterMismatch(err) || isUnnamedPreparedStatementMissing(err) {
		err = sqlx.GetContext(ctx, db, dest, query, args...)
	}
	return err
}

func nullInt64ToInt(v sql.NullInt64) int {
	if !v.Valid {
		return 0
	}
	return int(v.Int64)
}

func nullFloat64ToFloat(v sql.NullFloat64) float64 {
	if !v.Valid {
		return 0
	}
	return v.Float64
}

func nullStringToString(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return strings.TrimSpace(v.String)
}

func nullTimeToTime(v sql.NullTime) time.Time {
	if !v.Valid {
		return time.Time{}
	}
	return v.Time.UTC()
}

func nullableTime(value time.Time) *time.Time {
	if value.IsZero() {
		return nil
	}
	v := value.UTC()
	return &v
}

func nullableString(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	v := value
	return &v
}

func chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		return [][]T{items}
	}
	var out [][]T
	for start := 0; start < len(items); start += size {
		out = append(out, items[start:min(start+size, len(items))])
	}
	return out
}
