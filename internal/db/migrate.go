package db

import (
	"context"
	"database/sql"
	"fmt"
)

// A migration is one versioned schema step. Statements are listed per
// driver because the id-column and ALTER syntax differ between Postgres
// and sqlite.
type migration struct {
	Version  int
	Name     string
	Postgres []string
	SQLite   []string
}

var migrations = []migration{
	{
		Version: 1,
		Name:    "core content tables",
		Postgres: []string{
			`CREATE TABLE IF NOT EXISTS chapters (
				id SERIAL PRIMARY KEY,
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE TABLE IF NOT EXISTS vocabularies (
				id SERIAL PRIMARY KEY,
				chapter_id INTEGER NOT NULL REFERENCES chapters(id) ON DELETE CASCADE,
				content TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE TABLE IF NOT EXISTS grammar_patterns (
				id SERIAL PRIMARY KEY,
				chapter_id INTEGER NOT NULL REFERENCES chapters(id) ON DELETE CASCADE,
				pattern TEXT NOT NULL DEFAULT '',
				explanation TEXT NOT NULL DEFAULT '',
				example TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE TABLE IF NOT EXISTS quizzes (
				id SERIAL PRIMARY KEY,
				chapter_id INTEGER NOT NULL REFERENCES chapters(id) ON DELETE CASCADE,
				question TEXT NOT NULL DEFAULT '',
				option_a TEXT NOT NULL DEFAULT '',
				option_b TEXT NOT NULL DEFAULT '',
				option_c TEXT NOT NULL DEFAULT '',
				option_d TEXT NOT NULL DEFAULT '',
				correct_answer TEXT NOT NULL DEFAULT ''
			)`,
		},
		SQLite: []string{
			`CREATE TABLE IF NOT EXISTS chapters (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE TABLE IF NOT EXISTS vocabularies (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				chapter_id INTEGER NOT NULL REFERENCES chapters(id) ON DELETE CASCADE,
				content TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE TABLE IF NOT EXISTS grammar_patterns (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				chapter_id INTEGER NOT NULL REFERENCES chapters(id) ON DELETE CASCADE,
				pattern TEXT NOT NULL DEFAULT '',
				explanation TEXT NOT NULL DEFAULT '',
				example TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE TABLE IF NOT EXISTS quizzes (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				chapter_id INTEGER NOT NULL REFERENCES chapters(id) ON DELETE CASCADE,
				question TEXT NOT NULL DEFAULT '',
				option_a TEXT NOT NULL DEFAULT '',
				option_b TEXT NOT NULL DEFAULT '',
				option_c TEXT NOT NULL DEFAULT '',
				option_d TEXT NOT NULL DEFAULT '',
				correct_answer TEXT NOT NULL DEFAULT ''
			)`,
		},
	},
	{
		Version: 2,
		Name:    "reading passages and questions",
		Postgres: []string{
			`CREATE TABLE IF NOT EXISTS reading_passages (
				id SERIAL PRIMARY KEY,
				chapter_id INTEGER NOT NULL REFERENCES chapters(id) ON DELETE CASCADE,
				passage_content TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE TABLE IF NOT EXISTS reading_questions (
				id SERIAL PRIMARY KEY,
				passage_id INTEGER NOT NULL REFERENCES reading_passages(id) ON DELETE CASCADE,
				question_text TEXT NOT NULL DEFAULT '',
				option_a TEXT NOT NULL DEFAULT '',
				option_b TEXT NOT NULL DEFAULT '',
				option_c TEXT NOT NULL DEFAULT '',
				option_d TEXT NOT NULL DEFAULT '',
				correct_answer TEXT NOT NULL DEFAULT ''
			)`,
		},
		SQLite: []string{
			`CREATE TABLE IF NOT EXISTS reading_passages (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				chapter_id INTEGER NOT NULL REFERENCES chapters(id) ON DELETE CASCADE,
				passage_content TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE TABLE IF NOT EXISTS reading_questions (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				passage_id INTEGER NOT NULL REFERENCES reading_passages(id) ON DELETE CASCADE,
				question_text TEXT NOT NULL DEFAULT '',
				option_a TEXT NOT NULL DEFAULT '',
				option_b TEXT NOT NULL DEFAULT '',
				option_c TEXT NOT NULL DEFAULT '',
				option_d TEXT NOT NULL DEFAULT '',
				correct_answer TEXT NOT NULL DEFAULT ''
			)`,
		},
	},
	{
		Version: 3,
		Name:    "listening exercises",
		Postgres: []string{
			`CREATE TABLE IF NOT EXISTS listening_exercises (
				id SERIAL PRIMARY KEY,
				chapter_id INTEGER NOT NULL REFERENCES chapters(id) ON DELETE CASCADE,
				title TEXT NOT NULL DEFAULT '',
				description TEXT NOT NULL DEFAULT '',
				audio_url_1 TEXT NOT NULL DEFAULT ''
			)`,
		},
		SQLite: []string{
			`CREATE TABLE IF NOT EXISTS listening_exercises (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				chapter_id INTEGER NOT NULL REFERENCES chapters(id) ON DELETE CASCADE,
				title TEXT NOT NULL DEFAULT '',
				description TEXT NOT NULL DEFAULT '',
				audio_url_1 TEXT NOT NULL DEFAULT ''
			)`,
		},
	},
	{
		Version: 4,
		Name:    "listening media columns",
		Postgres: []string{
			`ALTER TABLE listening_exercises ADD COLUMN IF NOT EXISTS image_url TEXT NOT NULL DEFAULT ''`,
			`ALTER TABLE listening_exercises ADD COLUMN IF NOT EXISTS audio_url_2 TEXT NOT NULL DEFAULT ''`,
			`ALTER TABLE listening_exercises ADD COLUMN IF NOT EXISTS script TEXT NOT NULL DEFAULT ''`,
		},
		SQLite: []string{
			`ALTER TABLE listening_exercises ADD COLUMN image_url TEXT NOT NULL DEFAULT ''`,
			`ALTER TABLE listening_exercises ADD COLUMN audio_url_2 TEXT NOT NULL DEFAULT ''`,
			`ALTER TABLE listening_exercises ADD COLUMN script TEXT NOT NULL DEFAULT ''`,
		},
	},
	{
		Version: 5,
		Name:    "drop deprecated reading_exercises",
		Postgres: []string{
			`DROP TABLE IF EXISTS reading_exercises`,
		},
		SQLite: []string{
			`DROP TABLE IF EXISTS reading_exercises`,
		},
	},
}

// LatestVersion is the schema version this build of the code expects.
func LatestVersion() int { return migrations[len(migrations)-1].Version }

// Migrate applies all pending migrations in order. Re-running against an
// up-to-date database is a no-op. Each migration runs in its own
// transaction; a failure leaves earlier migrations applied and records
// nothing for the failed one.
func Migrate(ctx context.Context, db *sql.DB, driver Driver) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	current, err := CurrentVersion(ctx, db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		stmts := m.Postgres
		if driver == DriverSQLite {
			stmts = m.SQLite
		}
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				tx.Rollback()
				return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
			}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`,
			m.Version, m.Name); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// CurrentVersion reports the highest applied migration version, 0 when
// the database is empty.
func CurrentVersion(ctx context.Context, db *sql.DB) (int, error) {
	var v sql.NullInt64
	err := db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_migrations`).Scan(&v)
	if err != nil {
		return 0, err
	}
	return int(v.Int64), nil
}

// VerifySchema fails when the database schema is behind the version this
// build expects. The serving process calls this instead of mutating the
// schema itself.
func VerifySchema(ctx context.Context, db *sql.DB) error {
	current, err := CurrentVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("read schema version (did migrations run?): %w", err)
	}
	if current < LatestVersion() {
		return fmt.Errorf("schema at version %d, need %d: run cmd/migrate first", current, LatestVersion())
	}
	return nil
}
