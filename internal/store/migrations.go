package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"vitalis/internal/constants"
)

// Migrations are strictly additive and never edited or reordered once
// shipped. Step i upgrades schema version i to i+1; the stored version is
// advanced inside the same transaction so a crash leaves the database at a
// consistent, resumable version.
type migration struct {
	description string
	apply       func(tx *sqlx.Tx) error
}

const schemaV1 = `
CREATE TABLE IF NOT EXISTS workout_types (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	fields TEXT NOT NULL,
	is_default INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS exercises (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	primary_muscles TEXT NOT NULL,
	equipment TEXT NOT NULL DEFAULT 'none',
	instructions TEXT,
	is_default INTEGER NOT NULL DEFAULT 1,
	archived_at DATETIME,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(name COLLATE NOCASE)
);

CREATE TABLE IF NOT EXISTS workouts (
	id TEXT PRIMARY KEY,
	workout_type_id TEXT NOT NULL REFERENCES workout_types(id),
	name TEXT,
	status TEXT NOT NULL DEFAULT 'in_progress',
	started_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	completed_at DATETIME,
	notes TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS workout_exercises (
	id TEXT PRIMARY KEY,
	workout_id TEXT NOT NULL REFERENCES workouts(id),
	exercise_id TEXT NOT NULL REFERENCES exercises(id),
	sort_order INTEGER NOT NULL DEFAULT 0,
	rest_seconds INTEGER NOT NULL DEFAULT 90,
	notes TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS workout_sets (
	id TEXT PRIMARY KEY,
	workout_exercise_id TEXT NOT NULL REFERENCES workout_exercises(id),
	set_number INTEGER NOT NULL,
	reps INTEGER,
	weight_kg REAL,
	duration_seconds INTEGER,
	distance_meters REAL,
	custom_fields TEXT,
	completed_at DATETIME,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_workouts_status ON workouts(status);
CREATE INDEX IF NOT EXISTS idx_workouts_started_at ON workouts(started_at DESC);
CREATE INDEX IF NOT EXISTS idx_workout_exercises_workout ON workout_exercises(workout_id);
CREATE INDEX IF NOT EXISTS idx_workout_sets_exercise ON workout_sets(workout_exercise_id);
CREATE INDEX IF NOT EXISTS idx_exercises_category ON exercises(category);
CREATE INDEX IF NOT EXISTS idx_exercises_name ON exercises(name);

-- At most one workout may be in progress at any time.
CREATE UNIQUE INDEX IF NOT EXISTS idx_workouts_single_active
	ON workouts(status) WHERE status = 'in_progress';
`

var migrations = []migration{
	{
		description: "initial schema",
		apply: func(tx *sqlx.Tx) error {
			_, err := tx.Exec(schemaV1)
			return err
		},
	},
	{
		description: "add rest_seconds override to exercises",
		apply: func(tx *sqlx.Tx) error {
			_, err := tx.Exec(`ALTER TABLE exercises ADD COLUMN rest_seconds INTEGER DEFAULT NULL`)
			return err
		},
	},
	{
		description: "add target rep range to workout_exercises",
		apply: func(tx *sqlx.Tx) error {
			if _, err := tx.Exec(`ALTER TABLE workout_exercises ADD COLUMN target_reps_min INTEGER DEFAULT NULL`); err != nil {
				return err
			}
			_, err := tx.Exec(`ALTER TABLE workout_exercises ADD COLUMN target_reps_max INTEGER DEFAULT NULL`)
			return err
		},
	},
}

// SchemaVersion returns the persisted schema version counter.
func (db *DB) SchemaVersion() (int, error) {
	var version int
	if err := db.Get(&version, "PRAGMA user_version"); err != nil {
		return 0, fmt.Errorf("failed to read user_version: %w", err)
	}
	return version, nil
}

// RunMigrations applies every missing migration step in order. A failed step
// rolls back alone and aborts the upgrade; the caller must treat this as fatal.
func (db *DB) RunMigrations() error {
	current, err := db.SchemaVersion()
	if err != nil {
		return err
	}

	target := constants.SchemaVersion
	if current >= target {
		return nil
	}
	if target > len(migrations) {
		return fmt.Errorf("missing migration for version %d -> %d", len(migrations), len(migrations)+1)
	}

	for i := current; i < target; i++ {
		m := migrations[i]
		err := db.RunInTx(func(tx *sqlx.Tx) error {
			if err := m.apply(tx); err != nil {
				return err
			}
			// PRAGMA does not accept bind parameters.
			_, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1))
			return err
		})
		if err != nil {
			return fmt.Errorf("migration %d -> %d (%s) failed: %w", i, i+1, m.description, err)
		}
	}
	return nil
}
