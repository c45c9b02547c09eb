package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation reports whether an error is a unique constraint
// violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// uniqueConstraintName returns the name of the violated constraint, "" when
// the error carries none.
func uniqueConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// joinColumns qualifies a comma-separated column list with a table alias,
// for queries that join other tables.
func joinColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

// lastNumber returns the most recently issued document number under the
// given scope prefix, or "" when the scope has no documents yet.
func lastNumber(ctx context.Context, q Querier, table, prefix string) (string, error) {
	query := `SELECT number FROM ` + table + ` WHERE number LIKE $1 ORDER BY id DESC LIMIT 1`
	var number string
	err := q.QueryRow(ctx, query, prefix+"%").Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last number for %s: %w", table, err)
	}
	return number, nil
}
