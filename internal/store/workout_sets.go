package store

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"vitalis/internal/domain"
)

const workoutSetColumns = `id, workout_exercise_id, set_number, reps, weight_kg, duration_seconds, distance_meters, custom_fields, completed_at, created_at`

// AddWorkoutSet appends a set to a workout exercise, assigning set_number
// max+1 (1 when the exercise has no sets yet).
func (db *DB) AddWorkoutSet(id, workoutExerciseID string, input domain.SetInput, completedAt time.Time) (*domain.WorkoutSet, error) {
	query := `INSERT INTO workout_sets (
			id, workout_exercise_id, set_number,
			reps, weight_kg, duration_seconds, distance_meters,
			custom_fields, completed_at
		) VALUES (?, ?,
			COALESCE((SELECT MAX(set_number) + 1 FROM workout_sets WHERE workout_exercise_id = ?), 1),
			?, ?, ?, ?, ?, ?)`

	if _, err := db.Exec(query,
		id, workoutExerciseID, workoutExerciseID,
		input.Reps, input.WeightKg, input.DurationSeconds, input.DistanceMeters,
		input.CustomFields, completedAt); err != nil {
		return nil, err
	}
	return db.GetWorkoutSet(id)
}

func (db *DB) GetWorkoutSet(id string) (*domain.WorkoutSet, error) {
	query := `SELECT ` + workoutSetColumns + ` FROM workout_sets WHERE id = ?`

	ws := &domain.WorkoutSet{}
	err := db.Get(ws, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ws, nil
}

// UpdateWorkoutSet replaces the full payload of a set; set_number is untouched.
func (db *DB) UpdateWorkoutSet(id string, input domain.SetInput) (*domain.WorkoutSet, error) {
	query := `UPDATE workout_sets SET
			reps = ?,
			weight_kg = ?,
			duration_seconds = ?,
			distance_meters = ?,
			custom_fields = ?
		WHERE id = ?`

	if _, err := db.Exec(query,
		input.Reps, input.WeightKg, input.DurationSeconds, input.DistanceMeters,
		input.CustomFields, id); err != nil {
		return nil, err
	}
	return db.GetWorkoutSet(id)
}

// RemoveWorkoutSet deletes a set and renumbers its later siblings down by one
// in the same transaction, keeping set numbers dense. Unknown ids are a no-op.
func (db *DB) RemoveWorkoutSet(id string) error {
	return db.RunInTx(func(tx *sqlx.Tx) error {
		var target struct {
			WorkoutExerciseID string `db:"workout_exercise_id"`
			SetNumber         int    `db:"set_number"`
		}
		err := tx.Get(&target, `SELECT workout_exercise_id, set_number FROM workout_sets WHERE id = ?`, id)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}

		if _, err := tx.Exec(`DELETE FROM workout_sets WHERE id = ?`, id); err != nil {
			return err
		}

		_, err = tx.Exec(
			`UPDATE workout_sets SET set_number = set_number - 1
				WHERE workout_exercise_id = ? AND set_number > ?`,
			target.WorkoutExerciseID, target.SetNumber)
		return err
	})
}

func (db *DB) ListSetsByWorkoutExercise(workoutExerciseID string) ([]*domain.WorkoutSet, error) {
	query := `SELECT ` + workoutSetColumns + ` FROM workout_sets WHERE workout_exercise_id = ? ORDER BY set_number`

	var sets []*domain.WorkoutSet
	err := db.Select(&sets, query, workoutExerciseID)
	return sets, err
}

func (db *DB) ListSetsByWorkout(workoutID string) ([]*domain.WorkoutSet, error) {
	query := `SELECT ws.id, ws.workout_exercise_id, ws.set_number, ws.reps, ws.weight_kg,
			ws.duration_seconds, ws.distance_meters, ws.custom_fields, ws.completed_at, ws.created_at
		FROM workout_sets ws
		JOIN workout_exercises we ON we.id = ws.workout_exercise_id
		WHERE we.workout_id = ?
		ORDER BY we.sort_order, ws.set_number`

	var sets []*domain.WorkoutSet
	err := db.Select(&sets, query, workoutID)
	return sets, err
}

func (db *DB) CountSetsByWorkout(workoutID string) (int, error) {
	var count int
	err := db.Get(&count,
		`SELECT COUNT(*) FROM workout_sets ws
			JOIN workout_exercises we ON we.id = ws.workout_exercise_id
			WHERE we.workout_id = ?`, workoutID)
	return count, err
}

// LatestSetsForExercise returns the sets logged for an exercise in the most
// recent completed workout that contains it. Used for "last time" reference
// data when logging new sets.
func (db *DB) LatestSetsForExercise(exerciseID string) ([]*domain.WorkoutSet, error) {
	query := `SELECT ws.id, ws.workout_exercise_id, ws.set_number, ws.reps, ws.weight_kg,
			ws.duration_seconds, ws.distance_meters, ws.custom_fields, ws.completed_at, ws.created_at
		FROM workout_sets ws
		JOIN workout_exercises we ON we.id = ws.workout_exercise_id
		JOIN workouts w ON w.id = we.workout_id
		WHERE we.exercise_id = ? AND w.status = ?
		ORDER BY w.completed_at DESC, ws.set_number ASC`

	var sets []*domain.WorkoutSet
	if err := db.Select(&sets, query, exerciseID, domain.StatusCompleted); err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, nil
	}

	// Rows are ordered newest workout first; keep only sets belonging to it.
	latest := sets[0].WorkoutExerciseID
	var out []*domain.WorkoutSet
	for _, s := range sets {
		if s.WorkoutExerciseID == latest {
			out = append(out, s)
		}
	}
	return out, nil
}
