package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"vitalis/internal/domain"
)

const exerciseColumns = `id, name, category, primary_muscles, equipment, instructions, rest_seconds, is_default, archived_at, created_at`

// ExerciseUpdate is a partial update; nil fields are left unchanged.
type ExerciseUpdate struct {
	Name           *string
	Category       *domain.ExerciseCategory
	PrimaryMuscles domain.MuscleList
	Equipment      *domain.Equipment
	Instructions   *string
	RestSeconds    *int
}

func (db *DB) CreateExercise(e *domain.Exercise) error {
	query := `INSERT INTO exercises (id, name, category, primary_muscles, equipment, instructions, rest_seconds, is_default)
		VALUES (:id, :name, :category, :primary_muscles, :equipment, :instructions, :rest_seconds, :is_default)`

	_, err := db.NamedExec(query, e)
	return err
}

// GetExercise returns nil when no row matches; callers decide how to handle it.
func (db *DB) GetExercise(id string) (*domain.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE id = ?`

	e := &domain.Exercise{}
	err := db.Get(e, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (db *DB) GetExercisesByIDs(ids []string) ([]*domain.Exercise, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT `+exerciseColumns+` FROM exercises WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}

	var exercises []*domain.Exercise
	err = db.Select(&exercises, db.Rebind(query), args...)
	return exercises, err
}

// ListExercises returns all non-archived exercises in name order.
func (db *DB) ListExercises() ([]*domain.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE archived_at IS NULL ORDER BY name`

	var exercises []*domain.Exercise
	err := db.Select(&exercises, query)
	return exercises, err
}

func (db *DB) ListExercisesByCategory(category domain.ExerciseCategory) ([]*domain.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE category = ? AND archived_at IS NULL ORDER BY name`

	var exercises []*domain.Exercise
	err := db.Select(&exercises, query, category)
	return exercises, err
}

// SearchExercises does a case-insensitive substring match on name, excluding
// archived rows.
func (db *DB) SearchExercises(q string) ([]*domain.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE name LIKE ? AND archived_at IS NULL ORDER BY name`

	var exercises []*domain.Exercise
	err := db.Select(&exercises, query, "%"+q+"%")
	return exercises, err
}

func (db *DB) UpdateExercise(id string, u ExerciseUpdate) error {
	var sets []string
	var args []interface{}

	if u.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *u.Name)
	}
	if u.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *u.Category)
	}
	if u.PrimaryMuscles != nil {
		sets = append(sets, "primary_muscles = ?")
		args = append(args, u.PrimaryMuscles)
	}
	if u.Equipment != nil {
		sets = append(sets, "equipment = ?")
		args = append(args, *u.Equipment)
	}
	if u.Instructions != nil {
		sets = append(sets, "instructions = ?")
		args = append(args, *u.Instructions)
	}
	if u.RestSeconds != nil {
		sets = append(sets, "rest_seconds = ?")
		args = append(args, *u.RestSeconds)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := db.Exec(fmt.Sprintf(`UPDATE exercises SET %s WHERE id = ?`, strings.Join(sets, ", ")), args...)
	return err
}

// UpdateExerciseRestSeconds sets or clears the per-exercise rest override.
func (db *DB) UpdateExerciseRestSeconds(id string, restSeconds *int) error {
	_, err := db.Exec(`UPDATE exercises SET rest_seconds = ? WHERE id = ?`, restSeconds, id)
	return err
}

// ArchiveExercise soft-deletes. The row stays so historical workouts keep a
// valid reference.
func (db *DB) ArchiveExercise(id string, at time.Time) error {
	_, err := db.Exec(`UPDATE exercises SET archived_at = ? WHERE id = ?`, at, id)
	return err
}
