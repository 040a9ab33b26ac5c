package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalis/internal/domain"
)

// insertCompletedOn writes an already-completed workout for the given day,
// sidestepping the single-active rule that only applies to in_progress rows.
func (env *testEnv) insertCompletedOn(t *testing.T, day time.Time) {
	t.Helper()
	wt := env.strengthType(t)
	w := &domain.Workout{
		ID:            uuid.New().String(),
		WorkoutTypeID: wt.ID,
		Status:        domain.StatusCompleted,
		StartedAt:     day,
	}
	require.NoError(t, env.db.CreateWorkout(w))
	require.NoError(t, env.db.CompleteWorkout(w.ID, day))
}

func TestCurrentStreak(t *testing.T) {
	env := newTestEnv(t)

	streak, err := env.progress.CurrentStreak()
	require.NoError(t, err)
	assert.Equal(t, 0, streak)

	now := time.Now().UTC()
	env.insertCompletedOn(t, now)
	env.insertCompletedOn(t, now.AddDate(0, 0, -1))
	env.insertCompletedOn(t, now.AddDate(0, 0, -4))

	// Today and yesterday chain; the gap before day -4 ends the streak.
	streak, err = env.progress.CurrentStreak()
	require.NoError(t, err)
	assert.Equal(t, 2, streak)
}

func TestStreakSurvivesRestOfToday(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now().UTC()

	// Only yesterday: the streak holds until today fully passes.
	env.insertCompletedOn(t, now.AddDate(0, 0, -1))
	streak, err := env.progress.CurrentStreak()
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestStreakBrokenByGap(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now().UTC()

	env.insertCompletedOn(t, now.AddDate(0, 0, -2))
	env.insertCompletedOn(t, now.AddDate(0, 0, -3))

	streak, err := env.progress.CurrentStreak()
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestStreakCountsDaysNotWorkouts(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now().UTC()

	env.insertCompletedOn(t, now)
	env.insertCompletedOn(t, now)

	streak, err := env.progress.CurrentStreak()
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestEstimate1RM(t *testing.T) {
	assert.InDelta(t, 100.0, Estimate1RM(100, 0), 0.001)
	assert.InDelta(t, 116.667, Estimate1RM(100, 5), 0.001)
	assert.InDelta(t, 133.333, Estimate1RM(100, 10), 0.001)
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)
	env.completeWorkout(t, nil)

	overview, err := env.progress.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, 1, overview.Today.Workouts)
	assert.InDelta(t, 400.0, overview.Today.Volume, 0.001)
	assert.Equal(t, 1, overview.Streak)
}

func TestVolumeDefaultsWindow(t *testing.T) {
	env := newTestEnv(t)
	w := env.completeWorkout(t, nil)

	full, err := env.workouts.Full(w.ID)
	require.NoError(t, err)
	exerciseID := full.Exercises[0].ExerciseID

	points, err := env.progress.VolumeOverTime(exerciseID, 0)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.InDelta(t, 400.0, points[0].Volume, 0.001)
}
