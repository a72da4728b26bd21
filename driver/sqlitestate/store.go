// Package sqlitestate provides a sqlite-backed statecore.Store.
//
// The database lives in a single local file, so it keeps the library free
// of network dependencies while giving builds that already carry a sqlite
// database a place to keep generation state.
package sqlitestate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/goforj/macrostate/statecore"
	_ "modernc.org/sqlite"
)

const defaultTable = "state_entries"

var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config configures a sqlite-backed state store.
type Config struct {
	// DSN is the sqlite data source, e.g. "file:target/state.db".
	DSN string
	// Table defaults to "state_entries".
	Table string
}

type store struct {
	db         *sql.DB
	table      string
	getStmt    *sql.Stmt
	setStmt    *sql.Stmt
	appendStmt *sql.Stmt
	deleteStmt *sql.Stmt
	flushStmt  *sql.Stmt
}

// New builds a sqlite-backed statecore.Store.
func New(cfg Config) (statecore.Store, error) {
	if cfg.DSN == "" {
		return nil, errors.New("sqlitestate: dsn is required")
	}
	table := cfg.Table
	if table == "" {
		table = defaultTable
	}
	if !identRE.MatchString(table) {
		return nil, fmt.Errorf("sqlitestate: invalid table name %q", table)
	}
	db, err := sql.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	s := &store{db: db, table: table}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *store) Driver() statecore.Driver { return statecore.DriverSQLite }

func (s *store) ensureSchema() error {
	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		n TEXT PRIMARY KEY,
		v BLOB NOT NULL
	);`, s.table)
	_, err := s.db.Exec(stmt)
	return err
}

func (s *store) prepareStatements() error {
	var err error
	if s.getStmt, err = s.db.Prepare(
		fmt.Sprintf(`SELECT v FROM %s WHERE n = ?`, s.table)); err != nil {
		return err
	}
	if s.setStmt, err = s.db.Prepare(
		fmt.Sprintf(`INSERT INTO %s (n, v) VALUES (?, ?)
			ON CONFLICT(n) DO UPDATE SET v = excluded.v`, s.table)); err != nil {
		return err
	}
	if s.appendStmt, err = s.db.Prepare(
		fmt.Sprintf(`INSERT INTO %s (n, v) VALUES (?, ?)
			ON CONFLICT(n) DO UPDATE SET v = v || excluded.v`, s.table)); err != nil {
		return err
	}
	if s.deleteStmt, err = s.db.Prepare(
		fmt.Sprintf(`DELETE FROM %s WHERE n = ?`, s.table)); err != nil {
		return err
	}
	if s.flushStmt, err = s.db.Prepare(
		fmt.Sprintf(`DELETE FROM %s`, s.table)); err != nil {
		return err
	}
	return nil
}

func (s *store) Get(ctx context.Context, name string) ([]byte, bool, error) {
	var v []byte
	err := s.getStmt.QueryRowContext(ctx, name).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (s *store) Set(ctx context.Context, name string, value []byte) error {
	_, err := s.setStmt.ExecContext(ctx, name, value)
	return err
}

func (s *store) Append(ctx context.Context, name string, value []byte) error {
	_, err := s.appendStmt.ExecContext(ctx, name, value)
	return err
}

func (s *store) Delete(ctx context.Context, name string) error {
	_, err := s.deleteStmt.ExecContext(ctx, name)
	return err
}

func (s *store) Flush(ctx context.Context) error {
	_, err := s.flushStmt.ExecContext(ctx)
	return err
}

// Close releases the underlying database handle.
func (s *store) Close() error {
	return s.db.Close()
}
