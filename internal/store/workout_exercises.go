package store

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"vitalis/internal/domain"
)

const workoutExerciseColumns = `id, workout_id, exercise_id, sort_order, rest_seconds, target_reps_min, target_reps_max, notes, created_at`

// AddWorkoutExercise links an exercise into a workout, appending it at
// sort_order max+1 (0 when the workout is empty).
func (db *DB) AddWorkoutExercise(we *domain.WorkoutExercise) error {
	query := `INSERT INTO workout_exercises (id, workout_id, exercise_id, sort_order, rest_seconds, target_reps_min, target_reps_max, notes)
		VALUES (?, ?, ?,
			COALESCE((SELECT MAX(sort_order) + 1 FROM workout_exercises WHERE workout_id = ?), 0),
			?, ?, ?, ?)`

	if _, err := db.Exec(query,
		we.ID, we.WorkoutID, we.ExerciseID, we.WorkoutID,
		we.RestSeconds, we.TargetRepsMin, we.TargetRepsMax, we.Notes); err != nil {
		return err
	}
	return db.Get(we, `SELECT `+workoutExerciseColumns+` FROM workout_exercises WHERE id = ?`, we.ID)
}

func (db *DB) GetWorkoutExercise(id string) (*domain.WorkoutExercise, error) {
	query := `SELECT ` + workoutExerciseColumns + ` FROM workout_exercises WHERE id = ?`

	we := &domain.WorkoutExercise{}
	err := db.Get(we, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return we, nil
}

// ListWorkoutExercises returns a workout's exercises in sort order, joined
// with each exercise's name and category. Sets are not populated here.
func (db *DB) ListWorkoutExercises(workoutID string) ([]*domain.WorkoutExerciseFull, error) {
	query := `SELECT
			we.id, we.workout_id, we.exercise_id, we.sort_order, we.rest_seconds,
			we.target_reps_min, we.target_reps_max, we.notes, we.created_at,
			e.name AS exercise_name,
			e.category AS exercise_category
		FROM workout_exercises we
		JOIN exercises e ON e.id = we.exercise_id
		WHERE we.workout_id = ?
		ORDER BY we.sort_order`

	var exercises []*domain.WorkoutExerciseFull
	err := db.Select(&exercises, query, workoutID)
	return exercises, err
}

// RemoveWorkoutExercise deletes the link row and its sets as one unit.
func (db *DB) RemoveWorkoutExercise(id string) error {
	return db.RunInTx(func(tx *sqlx.Tx) error {
		if _, err := tx.Exec(`DELETE FROM workout_sets WHERE workout_exercise_id = ?`, id); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM workout_exercises WHERE id = ?`, id)
		return err
	})
}

func (db *DB) UpdateWorkoutExerciseRestSeconds(id string, restSeconds int) error {
	_, err := db.Exec(`UPDATE workout_exercises SET rest_seconds = ? WHERE id = ?`, restSeconds, id)
	return err
}

func (db *DB) UpdateWorkoutExerciseTargetReps(id string, min, max *int) error {
	_, err := db.Exec(`UPDATE workout_exercises SET target_reps_min = ?, target_reps_max = ? WHERE id = ?`,
		min, max, id)
	return err
}

// ReorderWorkoutExercises reassigns sort_order to the index of each id in the
// given sequence, all-or-nothing. Safe to call redundantly; the last write
// fully replaces the prior assignment.
func (db *DB) ReorderWorkoutExercises(workoutID string, orderedIDs []string) error {
	return db.RunInTx(func(tx *sqlx.Tx) error {
		for i, id := range orderedIDs {
			if _, err := tx.Exec(
				`UPDATE workout_exercises SET sort_order = ? WHERE id = ? AND workout_id = ?`,
				i, id, workoutID); err != nil {
				return err
			}
		}
		return nil
	})
}
