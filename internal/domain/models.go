package domain

import (
	"regexp"
	"time"
)

// Exercise is a catalog entry, either seeded (IsDefault) or user-created.
// Removal is always a soft archive so historical workouts keep their reference.
type Exercise struct {
	ID             string           `json:"id" db:"id"`
	Name           string           `json:"name" db:"name"`
	Category       ExerciseCategory `json:"category" db:"category"`
	PrimaryMuscles MuscleList       `json:"primary_muscles" db:"primary_muscles"`
	Equipment      Equipment        `json:"equipment" db:"equipment"`
	Instructions   *string          `json:"instructions,omitempty" db:"instructions"`
	RestSeconds    *int             `json:"rest_seconds,omitempty" db:"rest_seconds"`
	IsDefault      bool             `json:"is_default" db:"is_default"`
	ArchivedAt     *time.Time       `json:"archived_at,omitempty" db:"archived_at"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
}

// WorkoutType is a session template. Created only by the seeder and immutable after that.
type WorkoutType struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Fields    FieldDefs `json:"fields" db:"fields"`
	IsDefault bool      `json:"is_default" db:"is_default"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Workout is one exercise session with a lifecycle status. At most one workout
// may be in_progress at a time; the partial unique index on the status column
// is the authoritative guard.
type Workout struct {
	ID            string        `json:"id" db:"id"`
	WorkoutTypeID string        `json:"workout_type_id" db:"workout_type_id"`
	Name          *string       `json:"name,omitempty" db:"name"`
	Status        WorkoutStatus `json:"status" db:"status"`
	StartedAt     time.Time     `json:"started_at" db:"started_at"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty" db:"completed_at"`
	Notes         *string       `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

// WorkoutExercise links an Exercise into a Workout. RestSeconds is resolved
// and copied at add time, not a live reference to the exercise override.
type WorkoutExercise struct {
	ID            string    `json:"id" db:"id"`
	WorkoutID     string    `json:"workout_id" db:"workout_id"`
	ExerciseID    string    `json:"exercise_id" db:"exercise_id"`
	SortOrder     int       `json:"sort_order" db:"sort_order"`
	RestSeconds   int       `json:"rest_seconds" db:"rest_seconds"`
	TargetRepsMin *int      `json:"target_reps_min,omitempty" db:"target_reps_min"`
	TargetRepsMax *int      `json:"target_reps_max,omitempty" db:"target_reps_max"`
	Notes         *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// WorkoutSet is one logged attempt. SetNumber is 1-based and dense within its
// parent workout exercise.
type WorkoutSet struct {
	ID                string       `json:"id" db:"id"`
	WorkoutExerciseID string       `json:"workout_exercise_id" db:"workout_exercise_id"`
	SetNumber         int          `json:"set_number" db:"set_number"`
	Reps              *int         `json:"reps,omitempty" db:"reps"`
	WeightKg          *float64     `json:"weight_kg,omitempty" db:"weight_kg"`
	DurationSeconds   *int         `json:"duration_seconds,omitempty" db:"duration_seconds"`
	DistanceMeters    *float64     `json:"distance_meters,omitempty" db:"distance_meters"`
	CustomFields      CustomFields `json:"custom_fields,omitempty" db:"custom_fields"`
	CompletedAt       *time.Time   `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt         time.Time    `json:"created_at" db:"created_at"`
}

// SetInput is the mutable payload of a set. Nil pointers mean "not provided".
type SetInput struct {
	Reps            *int         `json:"reps,omitempty"`
	WeightKg        *float64     `json:"weight_kg,omitempty"`
	DurationSeconds *int         `json:"duration_seconds,omitempty"`
	DistanceMeters  *float64     `json:"distance_meters,omitempty"`
	CustomFields    CustomFields `json:"custom_fields,omitempty"`
}

// WorkoutExerciseFull is a WorkoutExercise joined with its exercise's name and
// category, plus its ordered sets.
type WorkoutExerciseFull struct {
	WorkoutExercise
	ExerciseName     string           `json:"exercise_name" db:"exercise_name"`
	ExerciseCategory ExerciseCategory `json:"exercise_category" db:"exercise_category"`
	Sets             []*WorkoutSet    `json:"sets" db:"-"`
}

// WorkoutFull is a workout with its type and all nested data, for detail views.
type WorkoutFull struct {
	Workout
	WorkoutType *WorkoutType           `json:"workout_type"`
	Exercises   []*WorkoutExerciseFull `json:"exercises"`
}

// WorkoutSummary is a history list row for a completed workout.
type WorkoutSummary struct {
	ID              string        `json:"id" db:"id"`
	Name            *string       `json:"name,omitempty" db:"name"`
	WorkoutTypeName string        `json:"workout_type_name" db:"workout_type_name"`
	Status          WorkoutStatus `json:"status" db:"status"`
	StartedAt       time.Time     `json:"started_at" db:"started_at"`
	CompletedAt     *time.Time    `json:"completed_at,omitempty" db:"completed_at"`
	ExerciseCount   int           `json:"exercise_count" db:"exercise_count"`
	SetCount        int           `json:"set_count" db:"set_count"`
	TotalVolume     float64       `json:"total_volume" db:"total_volume"`
}

// WorkoutGroup collapses repeated sessions of the same named workout into one
// history card. Derived, never persisted.
type WorkoutGroup struct {
	Key             string            `json:"key"`
	DisplayName     string            `json:"display_name"`
	WorkoutTypeName string            `json:"workout_type_name"`
	Latest          *WorkoutSummary   `json:"latest"`
	Sessions        []*WorkoutSummary `json:"sessions"`
}

var repeatSuffix = regexp.MustCompile(`\s*\(#\d+\)$`)

// BaseName strips a trailing "(#N)" repeat suffix so repeated repeats don't
// stack suffixes and grouped sessions share one key.
func BaseName(name string) string {
	return repeatSuffix.ReplaceAllString(name, "")
}

// GroupSummaries buckets summaries by (workout type name, base name). Input is
// expected in started_at descending order; the first summary seen for a key
// becomes the group's latest session.
func GroupSummaries(summaries []*WorkoutSummary) []*WorkoutGroup {
	byKey := make(map[string]*WorkoutGroup)
	var groups []*WorkoutGroup

	for _, s := range summaries {
		base := s.WorkoutTypeName
		if s.Name != nil && *s.Name != "" {
			base = BaseName(*s.Name)
		}
		key := s.WorkoutTypeName + "::" + base

		g, ok := byKey[key]
		if !ok {
			g = &WorkoutGroup{
				Key:             key,
				DisplayName:     base,
				WorkoutTypeName: s.WorkoutTypeName,
				Latest:          s,
			}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.Sessions = append(g.Sessions, s)
	}
	return groups
}
