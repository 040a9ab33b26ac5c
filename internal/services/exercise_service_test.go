package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalis/internal/domain"
	"vitalis/internal/store"
)

func TestCreateExercise(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.exercise.Create(ExerciseInput{
		Name:           "Landmine Press",
		Category:       domain.CategoryStrength,
		PrimaryMuscles: domain.MuscleList{domain.MuscleShoulders},
		Equipment:      domain.EquipmentBarbell,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.IsDefault)

	_, err = env.exercise.Create(ExerciseInput{Name: "", Category: domain.CategoryStrength})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestCreateExerciseDuplicateName(t *testing.T) {
	env := newTestEnv(t)

	// The seed catalog already contains this name, differently cased.
	_, err := env.exercise.Create(ExerciseInput{
		Name:     "barbell bench press",
		Category: domain.CategoryStrength,
	})
	require.Error(t, err)
	assert.True(t, domain.IsUniqueness(err))
}

func TestUpdateExercise(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.exercise.Create(ExerciseInput{
		Name:     "Meadows Row",
		Category: domain.CategoryStrength,
	})
	require.NoError(t, err)

	newName := "Meadows Row (Landmine)"
	updated, err := env.exercise.Update(created.ID, store.ExerciseUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)

	_, err = env.exercise.Update("missing", store.ExerciseUpdate{Name: &newName})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestArchiveExercise(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.exercise.Create(ExerciseInput{
		Name:     "Nordic Curl",
		Category: domain.CategoryStrength,
	})
	require.NoError(t, err)
	require.NoError(t, env.exercise.Archive(created.ID))

	fetched, err := env.exercise.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.NotNil(t, fetched.ArchivedAt)

	results, err := env.exercise.Search("Nordic")
	require.NoError(t, err)
	assert.Empty(t, results)
}
