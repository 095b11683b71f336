// Package sqliteroutes persists route tables in a SQLite database so a CSV
// can be imported once and queried many times.
package sqliteroutes

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/Joshuacru/train-routes/internal/domain"
	"github.com/Joshuacru/train-routes/internal/ports"
)

// schemaSQL is the single source of truth for the database schema,
// embedded at compile time from schema.sql.
//
//go:embed schema.sql
var schemaSQL string

// Store wraps a SQLite database holding one route table.
type Store struct {
	conn *sql.DB
	path string
}

var _ ports.RouteSource = (*Store)(nil)

// Open opens (or creates) the database at path and ensures the schema.
// SQLite allows a single writer, so the connection pool is pinned to one.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := path + "?_journal=WAL&_busy_timeout=5000"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "sqliteroutes.open",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, &domain.OpError{
			Op:   "sqliteroutes.ping",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if _, err := conn.ExecContext(ctx, schemaSQL); err != nil {
		conn.Close()
		return nil, &domain.OpError{
			Op:   "sqliteroutes.schema",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return &Store{conn: conn, path: path}, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

// Import replaces the stored route table with the given routes inside one
// transaction. Every route is validated first so a bad row leaves the
// previous table intact.
func (s *Store) Import(ctx context.Context, routes []domain.Route) error {
	for _, r := range routes {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return s.execErr("sqliteroutes.begin", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM routes`); err != nil {
		return s.execErr("sqliteroutes.clear", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO routes (origin, destination, distance) VALUES (?, ?, ?)`)
	if err != nil {
		return s.execErr("sqliteroutes.prepare", err)
	}
	defer stmt.Close()

	for _, r := range routes {
		if _, err := stmt.ExecContext(ctx, r.Origin, r.Destination, r.Distance); err != nil {
			return s.execErr("sqliteroutes.insert", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return s.execErr("sqliteroutes.commit", err)
	}
	return nil
}

// LoadRoutes reads the full route table in insertion order, so duplicate-pair
// and tie-break behavior match the CSV the table was imported from.
func (s *Store) LoadRoutes(ctx context.Context) ([]domain.Route, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT origin, destination, distance FROM routes ORDER BY id`)
	if err != nil {
		return nil, s.execErr("sqliteroutes.query", err)
	}
	defer rows.Close()

	var routes []domain.Route
	for rows.Next() {
		var r domain.Route
		if err := rows.Scan(&r.Origin, &r.Destination, &r.Distance); err != nil {
			return nil, s.execErr("sqliteroutes.scan", err)
		}
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, s.execErr("sqliteroutes.rows", err)
	}

	return routes, nil
}

// RouteCount reports how many routes are stored.
func (s *Store) RouteCount(ctx context.Context) (int, error) {
	var n int
	err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM routes`).Scan(&n)
	if err != nil {
		return 0, s.execErr("sqliteroutes.count", err)
	}
	return n, nil
}

func (s *Store) execErr(op string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Path: s.path,
		Err:  fmt.Errorf("%w: %v", domain.ErrExecution, err),
	}
}
