// Copyright 2021 Dalarub & Ettrich GmbH - All Rights Reserved
// Unauthorized copying of this file, via any medium is strictly prohibited
// Proprietary and confidential
// info@dalarub.com
//

/*
Package store implements the persistence layer of the research catalogue.

A Store is created once per process around a *csql.DB. Every request acquires its own
Session, which pins one pooled connection until Close is called. Each create is a single
auto-committed INSERT ... RETURNING, each list a single SELECT with LIMIT and OFFSET,
ordered by primary key.
*/
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/relabs-tech/neurai/core/csql"
	"github.com/relabs-tech/neurai/core/logger"
)

// Table names
const (
	TableUsuario                = "usuario"
	TablePesquisas              = "pesquisas"
	TableCategorias             = "categorias"
	TableInterCategoriaPesquisa = "inter_categoria_pesquisas"
	TableHistorico              = "historico"
)

// Tables returns all tables in creation order
func Tables() []string {
	return []string{TableCategorias, TablePesquisas, TableInterCategoriaPesquisa, TableUsuario, TableHistorico}
}

// ErrUnknownDriver is returned for a database opened with a driver the store has no DDL for
var ErrUnknownDriver = errors.New("unknown database driver")

// Defaults for list operations
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// Page selects a slice of a table: skip rows are left out, at most limit rows are returned
type Page struct {
	Skip  int
	Limit int
}

// DefaultPage returns the page used when a list request does not specify one
func DefaultPage() Page {
	return Page{Skip: DefaultSkip, Limit: DefaultLimit}
}

type queries struct {
	insert string
	list   string
	count  string
}

// Store is the process wide handle to the catalogue tables. It is safe for
// concurrent use.
type Store struct {
	db      *csql.DB
	queries map[string]queries
}

// New creates a store on db. Call CreateTables before serving requests.
func New(db *csql.DB) *Store {
	s := &Store{
		db:      db,
		queries: make(map[string]queries),
	}
	for table, columns := range tableColumns {
		s.queries[table] = s.buildQueries(table, columns)
	}
	return s
}

// buildQueries returns the insert, list and count statements for a table. columns[0]
// is the primary key, which the database assigns.
func (s *Store) buildQueries(table string, columns []string) queries {
	name := s.db.Table(table)
	all := strings.Join(columns, ", ")
	return queries{
		insert: fmt.Sprintf("INSERT INTO %s (%s) VALUES(%s) RETURNING %s;",
			name, strings.Join(columns[1:], ", "), s.db.Placeholders(len(columns)-1), all),
		list: fmt.Sprintf("SELECT %s FROM %s ORDER BY %s ASC LIMIT %s OFFSET %s;",
			all, name, columns[0], s.db.Placeholder(1), s.db.Placeholder(2)),
		count: fmt.Sprintf("SELECT count(*) FROM %s;", name),
	}
}

// CreateTables creates all tables unless they exist already. It is safe to call
// on every start.
func (s *Store) CreateTables(ctx context.Context) error {
	var statements []string
	switch s.db.Driver {
	case csql.DriverPostgres:
		statements = postgresDDL(s.db)
	case csql.DriverSQLite:
		statements = sqliteDDL(s.db)
	default:
		return fmt.Errorf("create tables for %q: %w", s.db.Driver, ErrUnknownDriver)
	}
	rlog := logger.FromContext(ctx)
	for _, statement := range statements {
		rlog.Debugln("schema:", statement)
		if _, err := s.db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

// Ping verifies that the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Session is one request's handle to the store. It must be closed.
type Session struct {
	conn    *sql.Conn
	queries map[string]queries
}

// Session acquires a connection from the pool
func (s *Store) Session(ctx context.Context) (*Session, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return &Session{conn: conn, queries: s.queries}, nil
}

// Close returns the connection to the pool
func (s *Session) Close() error {
	return s.conn.Close()
}

// Count returns the number of rows in table
func (s *Session) Count(ctx context.Context, table string) (int64, error) {
	q, ok := s.queries[table]
	if !ok {
		return 0, fmt.Errorf("no such table %s", table)
	}
	var count int64
	if err := s.conn.QueryRowContext(ctx, q.count).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// insert runs the insert statement of table and scans the returned row
func insert[T any](ctx context.Context, s *Session, table string, scan func(scanner) (T, error), args ...any) (T, error) {
	row := s.conn.QueryRowContext(ctx, s.queries[table].insert, args...)
	v, err := scan(row)
	if err != nil {
		return v, fmt.Errorf("insert into %s: %w", table, err)
	}
	return v, nil
}

// list runs the list statement of table for page. The result is never nil.
func list[T any](ctx context.Context, s *Session, table string, page Page, scan func(scanner) (T, error)) ([]T, error) {
	rows, err := s.conn.QueryContext(ctx, s.queries[table].list, page.Limit, page.Skip)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	result := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return result, nil
}
