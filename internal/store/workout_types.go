package store

import (
	"database/sql"

	"vitalis/internal/domain"
)

func (db *DB) ListWorkoutTypes() ([]*domain.WorkoutType, error) {
	query := `SELECT id, name, fields, is_default, created_at FROM workout_types ORDER BY name`

	var types []*domain.WorkoutType
	err := db.Select(&types, query)
	return types, err
}

func (db *DB) ListDefaultWorkoutTypes() ([]*domain.WorkoutType, error) {
	query := `SELECT id, name, fields, is_default, created_at FROM workout_types WHERE is_default = 1 ORDER BY name`

	var types []*domain.WorkoutType
	err := db.Select(&types, query)
	return types, err
}

func (db *DB) GetWorkoutType(id string) (*domain.WorkoutType, error) {
	query := `SELECT id, name, fields, is_default, created_at FROM workout_types WHERE id = ?`

	wt := &domain.WorkoutType{}
	err := db.Get(wt, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return wt, nil
}

func (db *DB) GetWorkoutTypeByName(name string) (*domain.WorkoutType, error) {
	query := `SELECT id, name, fields, is_default, created_at FROM workout_types WHERE name = ?`

	wt := &domain.WorkoutType{}
	err := db.Get(wt, query, name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return wt, nil
}
