package db

import (
	"context"
	"errors"
	"log/slog"

	"find-my-space/internal/infra"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SQL builds PostgreSQL statements with $n placeholders.
var SQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// KindOf classifies a driver error.
func KindOf(err error) infra.RepositoryErrorKind {
	if IsNoRows(err) {
		return infra.KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrUniqueViolation:
			return infra.KindDuplicateKey
		case pgErrForeignKeyViolation:
			return infra.KindForeignKeyViolated
		}
	}
	return infra.KindDBFailure
}

// Wrap tags a driver error with its kind and logs it once.
func Wrap(logger *slog.Logger, msg string, err error) error {
	return infra.WrapRepoErr(logger, KindOf(err), msg, err)
}

// Get runs a built select expected to return a single row.
func Get(ctx context.Context, q DBTX, b sq.Sqlizer, scan func(pgx.Row) error) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return scan(q.QueryRow(ctx, query, args...))
}

// Exec runs a built statement and reports the affected row count.
func Exec(ctx context.Context, q DBTX, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Select runs a built query and collects rows with scan.
func Select[T any](ctx context.Context, q DBTX, b sq.Sqlizer, scan func(pgx.Row) (T, error)) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
