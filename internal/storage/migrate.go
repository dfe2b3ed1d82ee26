package storage

import (
	"database/sql"
	"fmt"
)

// SchemaVersion - последняя версия схемы истории
const SchemaVersion = 1

// Migrate создает схему истории и обновляет ее до SchemaVersion
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migrate: db is nil")
	}

	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY);`)
	if err != nil {
		return fmt.Errorf("migrate: create schema_migrations: %w", err)
	}

	var current int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current)
	if err != nil {
		return fmt.Errorf("migrate: read current version: %w", err)
	}

	if current >= SchemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("migrate: begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			id             TEXT PRIMARY KEY,
			role           TEXT NOT NULL,
			domain         TEXT NOT NULL DEFAULT '',
			mode           TEXT NOT NULL,
			final_score    REAL NOT NULL,
			level          TEXT NOT NULL,
			question_count INTEGER NOT NULL,
			answered_count INTEGER NOT NULL,
			skipped_count  INTEGER NOT NULL,
			summary_json   TEXT NOT NULL,
			completed_at   TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("migrate: create sessions table: %w", err)
	}

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS answers (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			position   INTEGER NOT NULL,
			question   TEXT NOT NULL,
			answer     TEXT NOT NULL,
			feedback   TEXT NOT NULL DEFAULT '',
			score      INTEGER NULL,
			skipped    INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY(session_id) REFERENCES sessions(id)
		);
	`)
	if err != nil {
		return fmt.Errorf("migrate: create answers table: %w", err)
	}

	_, err = tx.Exec(`CREATE INDEX IF NOT EXISTS idx_sessions_completed_at ON sessions(completed_at);`)
	if err != nil {
		return fmt.Errorf("migrate: create idx_sessions_completed_at: %w", err)
	}

	_, err = tx.Exec(`CREATE INDEX IF NOT EXISTS idx_answers_session_position ON answers(session_id, position);`)
	if err != nil {
		return fmt.Errorf("migrate: create idx_answers_session_position: %w", err)
	}

	_, err = tx.Exec(`INSERT INTO schema_migrations(version) VALUES (?);`, SchemaVersion)
	if err != nil {
		return fmt.Errorf("migrate: record schema version: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("migrate: commit transaction: %w", err)
	}

	return nil
}
