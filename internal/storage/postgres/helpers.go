package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"jobboard-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapPgError translates driver errors into storage sentinels. Anything it
// does not recognise is returned unchanged.
func mapPgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", storage.ErrConflict, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", storage.ErrInvalidReference, pgErr.ConstraintName)
		}
	}
	return err
}

// listQuery accumulates WHERE conditions with positional arguments.
type listQuery struct {
	conditions []string
	args       []interface{}
}

func (q *listQuery) where(format string, arg interface{}) {
	q.args = append(q.args, arg)
	q.conditions = append(q.conditions, fmt.Sprintf(format, len(q.args)))
}

// build appends the WHERE clause, ordering and LIMIT/OFFSET to baseQuery.
func (q *listQuery) build(baseQuery, orderBy string, limit, offset int) string {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(baseQuery)

	if len(q.conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(q.conditions, " AND "))
	}

	queryBuilder.WriteString(" ORDER BY ")
	queryBuilder.WriteString(orderBy)

	q.args = append(q.args, limit)
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", len(q.args)))
	q.args = append(q.args, offset)
	queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", len(q.args)))

	return queryBuilder.String()
}

// updateSet collects SET clauses for partial updates.
type updateSet struct {
	clauses []string
	args    []interface{}
}

func (u *updateSet) set(column string, value interface{}) {
	u.args = append(u.args, value)
	u.clauses = append(u.clauses, fmt.Sprintf("%s = $%d", column, len(u.args)))
}

func (u *updateSet) empty() bool { return len(u.clauses) == 0 }

// build renders "UPDATE table SET ... WHERE id = $n RETURNING returning".
func (u *updateSet) build(table string, id interface{}, touch bool, returning string) (string, []interface{}) {
	clauses := append([]string(nil), u.clauses...)
	if touch {
		clauses = append(clauses, "updated_at = NOW()")
	}
	args := append(append([]interface{}(nil), u.args...), id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(clauses, ", "), len(args), returning)
	return query, args
}

// escapeLike makes user input safe inside an ILIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// queryOne runs a single-row query and maps it onto T by column name.
func queryOne[T any](ctx context.Context, db Querier, op, query string, args ...any) (*T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error %s: %v\n", op, err)
		return nil, fmt.Errorf("failed %s: %w", op, mapPgError(err))
	}
	v, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		mapped := mapPgError(err)
		if !errors.Is(mapped, storage.ErrNotFound) {
			log.Printf("Error %s: %v\n", op, err)
		}
		return nil, fmt.Errorf("failed %s: %w", op, mapped)
	}
	return &v, nil
}

func queryMany[T any](ctx context.Context, db Querier, op, query string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error %s: %v\n", op, err)
		return nil, fmt.Errorf("failed %s: %w", op, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		log.Printf("Error %s: %v\n", op, err)
		return nil, fmt.Errorf("failed %s: %w", op, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
