package db

import (
	"database/sql"
	"fmt"
)

// Migrate brings the schema up to SchemaVersion. The applied version is
// kept in PRAGMA user_version; each step runs in its own transaction and
// bumps the version on commit, so an interrupted upgrade resumes at the
// first step that did not finish.
func Migrate(db *sql.DB) error {
	var current int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if current > SchemaVersion {
		return fmt.Errorf("database schema version %d is newer than this build (%d)", current, SchemaVersion)
	}

	for v := current; v < SchemaVersion; v++ {
		if err := applyStep(db, v+1, migrations[v]); err != nil {
			return err
		}
	}
	return nil
}

func applyStep(db *sql.DB, version int, stmts []string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("migration %d: %w", version, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", version, err)
		}
	}
	// PRAGMA does not take bound parameters.
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		return fmt.Errorf("migration %d: recording version: %w", version, err)
	}
	return tx.Commit()
}

// SchemaVersion is the version a freshly migrated database reports.
var SchemaVersion = len(migrations)

var migrations = [][]string{
	{
		`CREATE TABLE IF NOT EXISTS activities (
			id               TEXT PRIMARY KEY,
			category         TEXT NOT NULL,
			duration_minutes INTEGER NOT NULL CHECK(duration_minutes >= 1),
			note             TEXT NOT NULL DEFAULT '',
			focus_level      INTEGER CHECK(focus_level IS NULL OR (focus_level BETWEEN 1 AND 10)),
			visibility       TEXT NOT NULL DEFAULT 'public'
			                 CHECK(visibility IN ('public','private')),
			share_count      INTEGER NOT NULL DEFAULT 0,
			created_at       TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_created ON activities(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_category ON activities(category)`,
	},
	// Evidence attachments arrived after the first release.
	{
		`ALTER TABLE activities ADD COLUMN evidence_url TEXT NOT NULL DEFAULT ''`,
	},
	{
		`CREATE TABLE IF NOT EXISTS comments (
			id          TEXT PRIMARY KEY,
			activity_id TEXT NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
			body        TEXT NOT NULL CHECK(length(trim(body)) >= 1),
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_activity ON comments(activity_id, created_at)`,
		// One row per liked activity: the store has a single user.
		`CREATE TABLE IF NOT EXISTS likes (
			activity_id TEXT PRIMARY KEY REFERENCES activities(id) ON DELETE CASCADE,
			created_at  TEXT NOT NULL
		)`,
	},
}
