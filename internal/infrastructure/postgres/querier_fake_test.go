package postgres

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeRow resultado programado de QueryRow. fill recibe los destinos de Scan.
type fakeRow struct {
	err  error
	fill func(dest ...any)
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if r.fill != nil {
		r.fill(dest...)
	}
	return nil
}

// fakeQuerier devuelve las filas en orden y registra las sentencias recibidas.
type fakeQuerier struct {
	mu    sync.Mutex
	rows  []fakeRow
	execs []string
	sqls  []string
	// Query no devuelve filas; solo se registra la sentencia y sus argumentos.
	queries   []string
	queryArgs [][]any
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.execs = append(q.execs, sql)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.queries = append(q.queries, sql)
	q.queryArgs = append(q.queryArgs, args)
	return nil, errors.New("fakeQuerier: Query sin filas")
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.sqls = append(q.sqls, sql)
	if len(q.rows) == 0 {
		return fakeRow{err: errors.New("fakeQuerier: sin filas programadas")}
	}
	row := q.rows[0]
	q.rows = q.rows[1:]
	return row
}

func alertRow(id string) fakeRow {
	return fakeRow{fill: func(dest ...any) { *dest[0].(*string) = id }}
}

func noRows() fakeRow { return fakeRow{err: pgx.ErrNoRows} }
