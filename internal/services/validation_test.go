package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"vitalis/internal/domain"
)

func TestValidateWeight(t *testing.T) {
	assert.NoError(t, ValidateWeight(0))
	assert.NoError(t, ValidateWeight(82.5))
	assert.NoError(t, ValidateWeight(9999))
	assert.Error(t, ValidateWeight(-0.1))
	assert.Error(t, ValidateWeight(10000))
}

func TestValidateReps(t *testing.T) {
	assert.NoError(t, ValidateReps(1))
	assert.NoError(t, ValidateReps(9999))
	assert.Error(t, ValidateReps(0))
	assert.Error(t, ValidateReps(2.5))
	assert.Error(t, ValidateReps(10000))
}

func TestValidateDuration(t *testing.T) {
	assert.NoError(t, ValidateDuration(1))
	assert.NoError(t, ValidateDuration(359999))
	assert.Error(t, ValidateDuration(0))
	assert.Error(t, ValidateDuration(90.5))
	assert.Error(t, ValidateDuration(360000))
}

func TestValidateDistance(t *testing.T) {
	assert.NoError(t, ValidateDistance(0.01))
	assert.NoError(t, ValidateDistance(9999.99))
	assert.Error(t, ValidateDistance(0))
	assert.Error(t, ValidateDistance(10000))
}

func TestValidateExerciseName(t *testing.T) {
	assert.NoError(t, ValidateExerciseName("Bench Press"))
	assert.Error(t, ValidateExerciseName(""))
	assert.Error(t, ValidateExerciseName("   "))
	assert.Error(t, ValidateExerciseName(strings.Repeat("x", 101)))
}

func TestValidationErrorCarriesField(t *testing.T) {
	err := ValidateWeight(-1)
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "weight", verr.Field)
}

func TestValidateSetInputDispatch(t *testing.T) {
	weight := 80.0
	reps := 5
	assert.NoError(t, validateSetInput(domain.SetInput{WeightKg: &weight, Reps: &reps}))

	// Empty payloads are allowed; planned sets have no values yet.
	assert.NoError(t, validateSetInput(domain.SetInput{}))

	bad := -5.0
	assert.Error(t, validateSetInput(domain.SetInput{WeightKg: &bad, Reps: &reps}))
}
