package services

import (
	"fmt"
	"math"
	"strings"

	"vitalis/internal/constants"
	"vitalis/internal/domain"
)

// Set-payload validators run before any write; a failure produces a
// field-specific ValidationError and no row is touched.

func ValidateWeight(value float64) error {
	if value < constants.MinWeightKg {
		return &domain.ValidationError{Field: "weight", Msg: "weight cannot be negative"}
	}
	if value > constants.MaxWeightKg {
		return &domain.ValidationError{Field: "weight", Msg: fmt.Sprintf("weight cannot exceed %v", constants.MaxWeightKg)}
	}
	return nil
}

func ValidateReps(value float64) error {
	if value != math.Trunc(value) {
		return &domain.ValidationError{Field: "reps", Msg: "reps must be a whole number"}
	}
	if value < constants.MinReps {
		return &domain.ValidationError{Field: "reps", Msg: fmt.Sprintf("reps must be at least %d", constants.MinReps)}
	}
	if value > constants.MaxReps {
		return &domain.ValidationError{Field: "reps", Msg: fmt.Sprintf("reps cannot exceed %d", constants.MaxReps)}
	}
	return nil
}

func ValidateDuration(seconds float64) error {
	if seconds != math.Trunc(seconds) {
		return &domain.ValidationError{Field: "duration", Msg: "duration must be a whole number of seconds"}
	}
	if seconds < constants.MinDurationSeconds {
		return &domain.ValidationError{Field: "duration", Msg: "duration must be at least 1 second"}
	}
	if seconds > constants.MaxDurationSeconds {
		return &domain.ValidationError{Field: "duration", Msg: "duration cannot exceed 99:59:59"}
	}
	return nil
}

func ValidateDistance(meters float64) error {
	if meters < constants.MinDistanceMeters {
		return &domain.ValidationError{Field: "distance", Msg: fmt.Sprintf("distance must be at least %v", constants.MinDistanceMeters)}
	}
	if meters > constants.MaxDistanceMeters {
		return &domain.ValidationError{Field: "distance", Msg: fmt.Sprintf("distance cannot exceed %v", constants.MaxDistanceMeters)}
	}
	return nil
}

func ValidateExerciseName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return &domain.ValidationError{Field: "name", Msg: "exercise name is required"}
	}
	if len(trimmed) > constants.MaxExerciseNameLen {
		return &domain.ValidationError{Field: "name", Msg: fmt.Sprintf("exercise name cannot exceed %d characters", constants.MaxExerciseNameLen)}
	}
	return nil
}

func ValidateWorkoutName(name string) error {
	if len(name) > constants.MaxWorkoutNameLen {
		return &domain.ValidationError{Field: "name", Msg: fmt.Sprintf("workout name cannot exceed %d characters", constants.MaxWorkoutNameLen)}
	}
	return nil
}

func ValidateNotes(notes string) error {
	if len(notes) > constants.MaxNotesLen {
		return &domain.ValidationError{Field: "notes", Msg: fmt.Sprintf("notes cannot exceed %d characters", constants.MaxNotesLen)}
	}
	return nil
}

func validateSetInput(input domain.SetInput) error {
	if input.WeightKg != nil {
		if err := ValidateWeight(*input.WeightKg); err != nil {
			return err
		}
	}
	if input.Reps != nil {
		if err := ValidateReps(float64(*input.Reps)); err != nil {
			return err
		}
	}
	if input.DurationSeconds != nil {
		if err := ValidateDuration(float64(*input.DurationSeconds)); err != nil {
			return err
		}
	}
	if input.DistanceMeters != nil {
		if err := ValidateDistance(*input.DistanceMeters); err != nil {
			return err
		}
	}
	return nil
}
