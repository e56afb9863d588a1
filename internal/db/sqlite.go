package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens (or creates) a SQLite database at dsn and ensures the
// schema exists. Pass ":memory:" for an in-memory database. The pool is
// limited to one connection: SQLite has a single writer, and an in-memory
// database lives only as long as its connection.
func OpenSQLite(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	if err := createSQLiteTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return db, nil
}

func createSQLiteTables(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE,
			username TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			placeholder INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS campaigns (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			platform TEXT NOT NULL,
			status TEXT NOT NULL,
			budget TEXT NOT NULL DEFAULT '0',
			impressions INTEGER NOT NULL DEFAULT 0,
			clicks INTEGER NOT NULL DEFAULT 0,
			spend TEXT NOT NULL DEFAULT '0',
			reach INTEGER NOT NULL DEFAULT 0,
			ctr REAL NOT NULL DEFAULT 0,
			cpc REAL NOT NULL DEFAULT 0,
			cpm REAL NOT NULL DEFAULT 0,
			cpv REAL NOT NULL DEFAULT 0,
			cpa REAL NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			UNIQUE (account_id, name, platform)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_campaigns_platform ON campaigns(platform)`,

		`CREATE TABLE IF NOT EXISTS daily_metrics (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			campaign_id INTEGER NOT NULL REFERENCES campaigns(id) ON DELETE CASCADE,
			date TEXT NOT NULL,
			impressions INTEGER NOT NULL DEFAULT 0,
			clicks INTEGER NOT NULL DEFAULT 0,
			spend TEXT NOT NULL DEFAULT '0',
			reach INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			UNIQUE (campaign_id, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_metrics_date ON daily_metrics(date)`,

		`CREATE TABLE IF NOT EXISTS import_batches (
			id TEXT PRIMARY KEY,
			filename TEXT NOT NULL,
			file_path TEXT NOT NULL DEFAULT '',
			submitted_by INTEGER REFERENCES accounts(id) ON DELETE SET NULL,
			source TEXT NOT NULL,
			profile TEXT NOT NULL,
			status TEXT NOT NULL,
			rows_processed INTEGER NOT NULL DEFAULT 0,
			rows_failed INTEGER NOT NULL DEFAULT 0,
			error TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			started_at TEXT,
			completed_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_import_batches_submitter ON import_batches(submitted_by, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_import_batches_status ON import_batches(status, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_import_batches_filename ON import_batches(filename)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
