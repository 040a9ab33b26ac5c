package store

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"vitalis/internal/domain"
)

const workoutColumns = `id, workout_type_id, name, status, started_at, completed_at, notes, created_at`

// CreateWorkout inserts an in_progress workout. The partial unique index on
// status is the authoritative single-active-workout guard; a violation
// surfaces as a UNIQUE constraint error for the service layer to translate.
func (db *DB) CreateWorkout(w *domain.Workout) error {
	query := `INSERT INTO workouts (id, workout_type_id, name, status, started_at, notes)
		VALUES (:id, :workout_type_id, :name, :status, :started_at, :notes)`

	_, err := db.NamedExec(query, w)
	return err
}

func (db *DB) GetWorkout(id string) (*domain.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE id = ?`

	w := &domain.Workout{}
	err := db.Get(w, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// GetActiveWorkout returns the single in_progress workout, or nil.
func (db *DB) GetActiveWorkout() (*domain.Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE status = ? LIMIT 1`

	w := &domain.Workout{}
	err := db.Get(w, query, domain.StatusInProgress)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (db *DB) CompleteWorkout(id string, at time.Time) error {
	_, err := db.Exec(`UPDATE workouts SET status = ?, completed_at = ? WHERE id = ?`,
		domain.StatusCompleted, at, id)
	return err
}

func (db *DB) ReopenWorkout(id string) error {
	_, err := db.Exec(`UPDATE workouts SET status = ?, completed_at = NULL WHERE id = ?`,
		domain.StatusInProgress, id)
	return err
}

func (db *DB) DiscardWorkout(id string) error {
	_, err := db.Exec(`UPDATE workouts SET status = ? WHERE id = ?`, domain.StatusDiscarded, id)
	return err
}

// DiscardActiveAndReopen is the confirmed "continue this workout" override:
// whatever is currently in progress gets discarded and the given workout
// reopened, atomically. Discard runs first so the partial unique index never
// sees two active rows.
func (db *DB) DiscardActiveAndReopen(id string) error {
	return db.RunInTx(func(tx *sqlx.Tx) error {
		if _, err := tx.Exec(`UPDATE workouts SET status = ? WHERE status = ?`,
			domain.StatusDiscarded, domain.StatusInProgress); err != nil {
			return err
		}
		_, err := tx.Exec(`UPDATE workouts SET status = ?, completed_at = NULL WHERE id = ?`,
			domain.StatusInProgress, id)
		return err
	})
}

func deleteWorkoutTx(tx *sqlx.Tx, id string) error {
	// Sets -> exercise links -> workout, respecting FK order.
	if _, err := tx.Exec(
		`DELETE FROM workout_sets WHERE workout_exercise_id IN
			(SELECT id FROM workout_exercises WHERE workout_id = ?)`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM workout_exercises WHERE workout_id = ?`, id); err != nil {
		return err
	}
	_, err := tx.Exec(`DELETE FROM workouts WHERE id = ?`, id)
	return err
}

// DeleteWorkout hard-deletes a workout and everything it owns.
func (db *DB) DeleteWorkout(id string) error {
	return db.RunInTx(func(tx *sqlx.Tx) error {
		return deleteWorkoutTx(tx, id)
	})
}

// DeleteWorkouts hard-deletes several workouts, each cascade in its own
// transaction so a failure leaves earlier deletions committed.
func (db *DB) DeleteWorkouts(ids []string) error {
	for _, id := range ids {
		if err := db.DeleteWorkout(id); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) CountWorkoutsByTypeAndStatus(typeID string, status domain.WorkoutStatus) (int, error) {
	var count int
	err := db.Get(&count, `SELECT COUNT(*) FROM workouts WHERE workout_type_id = ? AND status = ?`,
		typeID, status)
	return count, err
}

func (db *DB) CountCompletedWorkouts() (int, error) {
	var count int
	err := db.Get(&count, `SELECT COUNT(*) FROM workouts WHERE status = ?`, domain.StatusCompleted)
	return count, err
}

// ListWorkoutSummaries returns completed-workout history rows, newest first.
func (db *DB) ListWorkoutSummaries(limit, offset int) ([]*domain.WorkoutSummary, error) {
	query := `SELECT
			w.id,
			w.name,
			wt.name AS workout_type_name,
			w.status,
			w.started_at,
			w.completed_at,
			COUNT(DISTINCT we.id) AS exercise_count,
			COUNT(ws.id) AS set_count,
			COALESCE(SUM(ws.weight_kg * ws.reps), 0) AS total_volume
		FROM workouts w
		JOIN workout_types wt ON wt.id = w.workout_type_id
		LEFT JOIN workout_exercises we ON we.workout_id = w.id
		LEFT JOIN workout_sets ws ON ws.workout_exercise_id = we.id
		WHERE w.status = ?
		GROUP BY w.id
		ORDER BY w.started_at DESC
		LIMIT ? OFFSET ?`

	var summaries []*domain.WorkoutSummary
	err := db.Select(&summaries, query, domain.StatusCompleted, limit, offset)
	return summaries, err
}

// CloneExercise describes one exercise to carry into a cloned workout, with
// one empty set pre-created per entry of SetIDs.
type CloneExercise struct {
	ID            string
	ExerciseID    string
	RestSeconds   int
	TargetRepsMin *int
	TargetRepsMax *int
	SetIDs        []string
}

// CloneWorkout creates a new workout plus its exercise links and empty sets
// in one transaction. Used by repeat-workout; a failure partway leaves no
// trace of the clone.
func (db *DB) CloneWorkout(w *domain.Workout, exercises []CloneExercise) error {
	return db.RunInTx(func(tx *sqlx.Tx) error {
		if _, err := tx.Exec(
			`INSERT INTO workouts (id, workout_type_id, name, status, started_at)
				VALUES (?, ?, ?, ?, ?)`,
			w.ID, w.WorkoutTypeID, w.Name, w.Status, w.StartedAt); err != nil {
			return err
		}

		for i, ce := range exercises {
			if _, err := tx.Exec(
				`INSERT INTO workout_exercises (id, workout_id, exercise_id, sort_order, rest_seconds, target_reps_min, target_reps_max)
					VALUES (?, ?, ?, ?, ?, ?, ?)`,
				ce.ID, w.ID, ce.ExerciseID, i, ce.RestSeconds, ce.TargetRepsMin, ce.TargetRepsMax); err != nil {
				return err
			}
			for j, setID := range ce.SetIDs {
				if _, err := tx.Exec(
					`INSERT INTO workout_sets (id, workout_exercise_id, set_number) VALUES (?, ?, ?)`,
					setID, ce.ID, j+1); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
