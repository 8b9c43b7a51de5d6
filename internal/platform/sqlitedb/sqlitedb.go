// Package sqlitedb owns the dashboard database handle. It is opened once at
// startup, passed to the adapters that need it and closed at shutdown.
package sqlitedb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"

	_ "modernc.org/sqlite"
)

type DB struct {
	SQL *sql.DB
}

// Open opens (creating if needed) the SQLite file at path and ensures the
// schema. ":memory:" is accepted.
func Open(ctx context.Context, path string) (*DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if path == ":memory:" {
		// every pooled connection would get its own empty database
		conn.SetMaxOpenConns(1)
	}
	db := &DB{SQL: conn}
	if _, err := conn.ExecContext(ctx, `PRAGMA busy_timeout = 2000;`); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}
	if err := db.ensureSchema(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return db, nil
}

func (d *DB) Close() error {
	if d == nil || d.SQL == nil {
		return nil
	}
	return d.SQL.Close()
}

func (d *DB) Ping(ctx context.Context) error {
	if d == nil || d.SQL == nil {
		return fmt.Errorf("database not opened")
	}
	return d.SQL.PingContext(ctx)
}

// Builder returns a squirrel builder using "?" placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// Query runs a built SELECT.
func (d *DB) Query(ctx context.Context, q sq.Sqlizer) (*sql.Rows, error) {
	if d == nil || d.SQL == nil {
		return nil, fmt.Errorf("database not opened")
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := d.SQL.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return rows, nil
}

// WithinTx runs fn in a transaction, committing only when fn succeeds.
func (d *DB) WithinTx(ctx context.Context, fn func(*sql.Tx) error) error {
	if d == nil || d.SQL == nil {
		return fmt.Errorf("database not opened")
	}
	tx, err := d.SQL.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

// Exec runs a built statement inside tx.
func Exec(ctx context.Context, tx *sql.Tx, q sq.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build statement: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	return nil
}

func (d *DB) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS goals (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  category TEXT NOT NULL,
  objective TEXT NOT NULL,
  done INTEGER NOT NULL DEFAULT 0,
  position INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS job_pipeline (
  id TEXT PRIMARY KEY,
  company TEXT NOT NULL,
  role TEXT,
  status TEXT,
  ats_score INTEGER,
  next_action TEXT,
  salary TEXT,
  company_domain TEXT,
  updated_at TEXT
);
CREATE TABLE IF NOT EXISTS content_pipeline (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  pillar TEXT,
  stage TEXT,
  word_count INTEGER,
  scheduled_date TEXT,
  published_date TEXT,
  performance TEXT
);
CREATE TABLE IF NOT EXISTS cv_history (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  company TEXT NOT NULL,
  role TEXT,
  ats_score INTEGER,
  created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tasks (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  status TEXT,
  priority TEXT,
  source TEXT,
  due_date TEXT,
  updated_at TEXT
);
CREATE TABLE IF NOT EXISTS daily_notes (
  date TEXT PRIMARY KEY,
  content TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS memory_highlights (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  kind TEXT NOT NULL,
  text TEXT NOT NULL,
  date TEXT
);
CREATE INDEX IF NOT EXISTS idx_cv_history_company ON cv_history(company);
CREATE INDEX IF NOT EXISTS idx_memory_highlights_kind ON memory_highlights(kind);
`
	if _, err := d.SQL.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
