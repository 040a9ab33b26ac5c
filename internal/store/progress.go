package store

import (
	"fmt"

	"vitalis/internal/domain"
)

// Analytics read only completed workouts; in_progress and discarded sessions
// never contribute.

type PersonalRecords struct {
	MaxWeight    *float64 `db:"max_weight"`
	MaxReps      *int     `db:"max_reps"`
	Estimated1RM *float64 `db:"estimated_1rm"`
}

type WeekDataPoint struct {
	Week   string  `db:"week"`
	Volume float64 `db:"volume"`
	Count  int     `db:"count"`
}

func (db *DB) GetPersonalRecords(exerciseID string) (*PersonalRecords, error) {
	pr := &PersonalRecords{}

	err := db.Get(pr, `SELECT
			MAX(ws.weight_kg) AS max_weight,
			MAX(ws.reps) AS max_reps
		FROM workout_sets ws
		JOIN workout_exercises we ON we.id = ws.workout_exercise_id
		JOIN workouts w ON w.id = we.workout_id
		WHERE we.exercise_id = ? AND w.status = ?`,
		exerciseID, domain.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to query max weight/reps: %w", err)
	}

	// Epley estimate is maximized per set across history, not computed from
	// the single heaviest set.
	err = db.Get(&pr.Estimated1RM, `SELECT
			MAX(ws.weight_kg * (1.0 + ws.reps / 30.0)) AS estimated_1rm
		FROM workout_sets ws
		JOIN workout_exercises we ON we.id = ws.workout_exercise_id
		JOIN workouts w ON w.id = we.workout_id
		WHERE we.exercise_id = ? AND w.status = ?
			AND ws.weight_kg IS NOT NULL AND ws.reps IS NOT NULL`,
		exerciseID, domain.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to query estimated 1RM: %w", err)
	}

	return pr, nil
}

// GetVolumeOverTime sums weight*reps per week bucket over the trailing window.
func (db *DB) GetVolumeOverTime(exerciseID string, weeks int) ([]*WeekDataPoint, error) {
	query := `SELECT
			strftime('%Y-W%W', w.completed_at) AS week,
			SUM(ws.weight_kg * ws.reps) AS volume
		FROM workout_sets ws
		JOIN workout_exercises we ON we.id = ws.workout_exercise_id
		JOIN workouts w ON w.id = we.workout_id
		WHERE we.exercise_id = ? AND w.status = ?
			AND w.completed_at >= date('now', ? || ' days')
			AND ws.weight_kg IS NOT NULL AND ws.reps IS NOT NULL
		GROUP BY week
		ORDER BY week`

	var points []*WeekDataPoint
	err := db.Select(&points, query, exerciseID, domain.StatusCompleted, fmt.Sprintf("-%d", weeks*7))
	return points, err
}

// GetWorkoutFrequency counts completed workouts per week bucket, all types.
func (db *DB) GetWorkoutFrequency(weeks int) ([]*WeekDataPoint, error) {
	query := `SELECT
			strftime('%Y-W%W', started_at) AS week,
			COUNT(*) AS count
		FROM workouts
		WHERE status = ? AND started_at >= date('now', ? || ' days')
		GROUP BY week
		ORDER BY week`

	var points []*WeekDataPoint
	err := db.Select(&points, query, domain.StatusCompleted, fmt.Sprintf("-%d", weeks*7))
	return points, err
}

// ListCompletedDays returns the distinct UTC calendar days with at least one
// completed workout, most recent first.
func (db *DB) ListCompletedDays() ([]string, error) {
	var days []string
	err := db.Select(&days,
		`SELECT DISTINCT date(started_at) AS day FROM workouts WHERE status = ? ORDER BY day DESC`,
		domain.StatusCompleted)
	return days, err
}

type PeriodStats struct {
	Workouts int     `db:"workouts"`
	Volume   float64 `db:"volume"`
}

// GetWeeklyStats covers the current calendar week, starting Sunday.
func (db *DB) GetWeeklyStats() (*PeriodStats, error) {
	return db.getPeriodStats(`date(%s) >= date('now', 'weekday 0', '-6 days')`)
}

// GetTodayStats covers the current UTC calendar day.
func (db *DB) GetTodayStats() (*PeriodStats, error) {
	return db.getPeriodStats(`date(%s) = date('now')`)
}

func (db *DB) getPeriodStats(dateCond string) (*PeriodStats, error) {
	stats := &PeriodStats{}

	err := db.Get(&stats.Workouts, fmt.Sprintf(
		`SELECT COUNT(*) FROM workouts WHERE status = ? AND `+dateCond, "started_at"),
		domain.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to count workouts: %w", err)
	}

	err = db.Get(&stats.Volume, fmt.Sprintf(
		`SELECT COALESCE(SUM(ws.weight_kg * ws.reps), 0)
			FROM workout_sets ws
			JOIN workout_exercises we ON we.id = ws.workout_exercise_id
			JOIN workouts w ON w.id = we.workout_id
			WHERE w.status = ? AND `+dateCond+`
				AND ws.weight_kg IS NOT NULL AND ws.reps IS NOT NULL`, "w.started_at"),
		domain.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to sum volume: %w", err)
	}

	return stats, nil
}
