// Package database persists sheet templates, encoded batch history and user
// settings in SQLite.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultDBTimeout = 5 * time.Second

// Database wraps the SQLite handle. It is safe for concurrent use.
type Database struct {
	DB     *sql.DB
	dbFile string
	logger *slog.Logger
}

// Open connects to the database at path, creating the file and its parent
// directory when needed, and brings the schema up to date.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Database, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	dsn := path + "?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	d := &Database{DB: conn, dbFile: path, logger: logger}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := d.createTables(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	if err := d.migrate(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	if err := d.seedTemplates(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	logger.Debug("database ready", "path", path)
	return d, nil
}

// Close releases the connection.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the database file location.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS templates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			sheet_width REAL NOT NULL,
			sheet_height REAL NOT NULL,
			upper_margin REAL NOT NULL DEFAULT 0,
			left_margin REAL NOT NULL DEFAULT 0,
			middle_padding REAL NOT NULL DEFAULT 0,
			label_width REAL NOT NULL,
			label_height REAL NOT NULL,
			row_count INTEGER NOT NULL,
			col_count INTEGER NOT NULL,
			built_in INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS batches (
			id TEXT PRIMARY KEY,
			component TEXT NOT NULL,
			settings TEXT NOT NULL,
			template TEXT NOT NULL,
			output_path TEXT,
			label_count INTEGER NOT NULL DEFAULT 0,
			warn_count INTEGER NOT NULL DEFAULT 0,
			error_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS batch_labels (
			batch_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			input TEXT NOT NULL,
			text TEXT NOT NULL,
			bands TEXT,
			PRIMARY KEY(batch_id, position),
			FOREIGN KEY(batch_id) REFERENCES batches(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// migrate applies additive schema changes to databases created by older
// versions. Each statement may already have been applied.
func (d *Database) migrate(ctx context.Context) error {
	statements := []string{
		"ALTER TABLE batches ADD COLUMN warn_count INTEGER NOT NULL DEFAULT 0",
		"ALTER TABLE batches ADD COLUMN error_count INTEGER NOT NULL DEFAULT 0",
		"CREATE INDEX IF NOT EXISTS idx_batches_created ON batches(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_batches_component ON batches(component)",
	}
	for _, stmt := range statements {
		if _, err := d.DB.ExecContext(ctx, stmt); err != nil && !isIgnorableMigrationErr(err) {
			return fmt.Errorf("migrate %q: %w", stmt, err)
		}
	}
	return nil
}

func isIgnorableMigrationErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate column name")
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (d *Database) withDBContext(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

// WithTx runs fn in a transaction, committing when fn returns nil.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
