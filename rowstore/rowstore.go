// Package rowstore is a thin fluent client for the hosted row database.
// It mirrors the backend's row API surface: select columns from a named
// collection, filter by equality, read one or all rows, and send partial
// updates. Errors come back untyped beyond ErrNoRows; callers wrap them.
package rowstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoRows is returned when a Single read or a filtered update matches
// no row in the collection.
var ErrNoRows = errors.New("rowstore: no rows")

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// From starts a read against the named collection.
func (s *Store) From(table string) *Query {
	return &Query{store: s, table: table}
}

// Update starts a partial update against the named collection. Only the
// listed columns are touched on the matching rows.
func (s *Store) Update(table string, changes map[string]any) *UpdateQuery {
	return &UpdateQuery{store: s, table: table, changes: changes}
}

type condition struct {
	column string
	value  any
}

type Query struct {
	store   *Store
	table   string
	columns []string
	conds   []condition
	orderBy string
}

func (q *Query) Select(columns ...string) *Query {
	q.columns = columns
	return q
}

func (q *Query) Eq(column string, value any) *Query {
	q.conds = append(q.conds, condition{column: column, value: value})
	return q
}

// OrderAsc sorts the result ascending by the given column.
func (q *Query) OrderAsc(column string) *Query {
	q.orderBy = column
	return q
}

// SQL renders the read as a statement and its arguments.
func (q *Query) SQL() (string, []any) {
	cols := "*"
	if len(q.columns) > 0 {
		cols = strings.Join(q.columns, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", cols, q.table)

	args := make([]any, 0, len(q.conds))
	for i, cond := range q.conds {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		fmt.Fprintf(&b, "%s = $%d", cond.column, i+1)
		args = append(args, cond.value)
	}

	if q.orderBy != "" {
		fmt.Fprintf(&b, " ORDER BY %s ASC", q.orderBy)
	}

	return b.String(), args
}

// Single reads exactly one matching row into T. ErrNoRows when the
// collection has no matching row.
func Single[T any](ctx context.Context, q *Query) (*T, error) {
	sql, args := q.SQL()
	rows, err := q.store.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoRows
		}
		return nil, err
	}
	return record, nil
}

// All reads every matching row into a slice of T.
func All[T any](ctx context.Context, q *Query) ([]T, error) {
	sql, args := q.SQL()
	rows, err := q.store.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
}

type UpdateQuery struct {
	store   *Store
	table   string
	changes map[string]any
	conds   []condition
}

func (u *UpdateQuery) Eq(column string, value any) *UpdateQuery {
	u.conds = append(u.conds, condition{column: column, value: value})
	return u
}

// SQL renders the update with a deterministic column order.
func (u *UpdateQuery) SQL() (string, []any) {
	columns := make([]string, 0, len(u.changes))
	for column := range u.changes {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	var b strings.Builder
	fmt.Fprintf(&b, "UPDATE %s SET ", u.table)

	args := make([]any, 0, len(columns)+len(u.conds))
	for i, column := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s = $%d", column, i+1)
		args = append(args, u.changes[column])
	}

	for i, cond := range u.conds {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		fmt.Fprintf(&b, "%s = $%d", cond.column, len(columns)+i+1)
		args = append(args, cond.value)
	}

	return b.String(), args
}

// Exec sends the update. ErrNoRows when no row matched the filter.
func (u *UpdateQuery) Exec(ctx context.Context) error {
	if len(u.changes) == 0 {
		return nil
	}

	sql, args := u.SQL()
	tag, err := u.store.pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}
	return nil
}
