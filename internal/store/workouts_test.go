package store

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"vitalis/internal/domain"
)

func strengthTypeID(t *testing.T, db *DB) string {
	t.Helper()
	wt, err := db.GetWorkoutTypeByName("Strength Training")
	if err != nil {
		t.Fatalf("GetWorkoutTypeByName failed: %v", err)
	}
	if wt == nil {
		t.Fatal("Expected seeded Strength Training workout type")
	}
	return wt.ID
}

func startTestWorkout(t *testing.T, db *DB) *domain.Workout {
	t.Helper()
	w := &domain.Workout{
		ID:            uuid.New().String(),
		WorkoutTypeID: strengthTypeID(t, db),
		Status:        domain.StatusInProgress,
		StartedAt:     time.Now().UTC(),
	}
	if err := db.CreateWorkout(w); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}
	return w
}

func anyExerciseID(t *testing.T, db *DB) string {
	t.Helper()
	exercises, err := db.ListExercisesByCategory(domain.CategoryStrength)
	if err != nil || len(exercises) == 0 {
		t.Fatalf("Expected seeded strength exercises: %v", err)
	}
	return exercises[0].ID
}

func TestSingleActiveWorkout(t *testing.T) {
	db := setupTestDB(t)
	first := startTestWorkout(t, db)

	// A second in_progress row must violate the partial unique index.
	second := &domain.Workout{
		ID:            uuid.New().String(),
		WorkoutTypeID: first.WorkoutTypeID,
		Status:        domain.StatusInProgress,
		StartedAt:     time.Now().UTC(),
	}
	err := db.CreateWorkout(second)
	if err == nil {
		t.Fatal("Expected unique violation for second active workout")
	}
	if !domain.IsUniqueViolation(err, "workouts.status") {
		t.Errorf("Expected status unique violation, got: %v", err)
	}

	// Completing the first frees the slot.
	if err := db.CompleteWorkout(first.ID, time.Now().UTC()); err != nil {
		t.Fatalf("CompleteWorkout failed: %v", err)
	}
	if err := db.CreateWorkout(second); err != nil {
		t.Errorf("CreateWorkout after completion failed: %v", err)
	}

	active, err := db.GetActiveWorkout()
	if err != nil {
		t.Fatalf("GetActiveWorkout failed: %v", err)
	}
	if active == nil || active.ID != second.ID {
		t.Error("Expected the second workout to be active")
	}
}

func TestWorkoutLifecycle(t *testing.T) {
	db := setupTestDB(t)
	w := startTestWorkout(t, db)

	if err := db.CompleteWorkout(w.ID, time.Now().UTC()); err != nil {
		t.Fatalf("CompleteWorkout failed: %v", err)
	}
	fetched, _ := db.GetWorkout(w.ID)
	if fetched.Status != domain.StatusCompleted {
		t.Errorf("Expected status completed, got %s", fetched.Status)
	}
	if fetched.CompletedAt == nil {
		t.Error("Expected completed_at to be set")
	}

	if err := db.ReopenWorkout(w.ID); err != nil {
		t.Fatalf("ReopenWorkout failed: %v", err)
	}
	fetched, _ = db.GetWorkout(w.ID)
	if fetched.Status != domain.StatusInProgress {
		t.Errorf("Expected status in_progress, got %s", fetched.Status)
	}
	if fetched.CompletedAt != nil {
		t.Error("Expected completed_at to be cleared on reopen")
	}

	if err := db.DiscardWorkout(w.ID); err != nil {
		t.Fatalf("DiscardWorkout failed: %v", err)
	}
	fetched, _ = db.GetWorkout(w.ID)
	if fetched.Status != domain.StatusDiscarded {
		t.Errorf("Expected status discarded, got %s", fetched.Status)
	}
}

func TestDiscardActiveAndReopen(t *testing.T) {
	db := setupTestDB(t)

	done := startTestWorkout(t, db)
	if err := db.CompleteWorkout(done.ID, time.Now().UTC()); err != nil {
		t.Fatalf("CompleteWorkout failed: %v", err)
	}
	active := startTestWorkout(t, db)

	if err := db.DiscardActiveAndReopen(done.ID); err != nil {
		t.Fatalf("DiscardActiveAndReopen failed: %v", err)
	}

	fetched, _ := db.GetWorkout(active.ID)
	if fetched.Status != domain.StatusDiscarded {
		t.Errorf("Expected old active to be discarded, got %s", fetched.Status)
	}
	fetched, _ = db.GetWorkout(done.ID)
	if fetched.Status != domain.StatusInProgress {
		t.Errorf("Expected reopened workout to be in_progress, got %s", fetched.Status)
	}
}

func TestDeleteWorkoutCascades(t *testing.T) {
	db := setupTestDB(t)
	w := startTestWorkout(t, db)

	we := &domain.WorkoutExercise{
		ID:          uuid.New().String(),
		WorkoutID:   w.ID,
		ExerciseID:  anyExerciseID(t, db),
		RestSeconds: 90,
	}
	if err := db.AddWorkoutExercise(we); err != nil {
		t.Fatalf("AddWorkoutExercise failed: %v", err)
	}
	weight := 60.0
	reps := 8
	set, err := db.AddWorkoutSet(uuid.New().String(), we.ID,
		domain.SetInput{WeightKg: &weight, Reps: &reps}, time.Now().UTC())
	if err != nil {
		t.Fatalf("AddWorkoutSet failed: %v", err)
	}

	if err := db.DeleteWorkout(w.ID); err != nil {
		t.Fatalf("DeleteWorkout failed: %v", err)
	}

	if fetched, _ := db.GetWorkout(w.ID); fetched != nil {
		t.Error("Expected workout to be deleted")
	}
	if fetched, _ := db.GetWorkoutExercise(we.ID); fetched != nil {
		t.Error("Expected workout exercise to be deleted")
	}
	if fetched, _ := db.GetWorkoutSet(set.ID); fetched != nil {
		t.Error("Expected workout set to be deleted")
	}
}

func TestListWorkoutSummaries(t *testing.T) {
	db := setupTestDB(t)
	w := startTestWorkout(t, db)

	we := &domain.WorkoutExercise{
		ID:          uuid.New().String(),
		WorkoutID:   w.ID,
		ExerciseID:  anyExerciseID(t, db),
		RestSeconds: 90,
	}
	if err := db.AddWorkoutExercise(we); err != nil {
		t.Fatalf("AddWorkoutExercise failed: %v", err)
	}
	weight := 100.0
	reps := 5
	for i := 0; i < 3; i++ {
		if _, err := db.AddWorkoutSet(uuid.New().String(), we.ID,
			domain.SetInput{WeightKg: &weight, Reps: &reps}, time.Now().UTC()); err != nil {
			t.Fatalf("AddWorkoutSet failed: %v", err)
		}
	}

	// In-progress workouts never appear in history.
	summaries, err := db.ListWorkoutSummaries(20, 0)
	if err != nil {
		t.Fatalf("ListWorkoutSummaries failed: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("Expected no summaries before completion, got %d", len(summaries))
	}

	if err := db.CompleteWorkout(w.ID, time.Now().UTC()); err != nil {
		t.Fatalf("CompleteWorkout failed: %v", err)
	}

	summaries, err = db.ListWorkoutSummaries(20, 0)
	if err != nil {
		t.Fatalf("ListWorkoutSummaries failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("Expected 1 summary, got %d", len(summaries))
	}
	s := summaries[0]
	if s.ExerciseCount != 1 {
		t.Errorf("Expected 1 exercise, got %d", s.ExerciseCount)
	}
	if s.SetCount != 3 {
		t.Errorf("Expected 3 sets, got %d", s.SetCount)
	}
	if s.TotalVolume != 1500 {
		t.Errorf("Expected volume 1500, got %f", s.TotalVolume)
	}
}

func TestCloneWorkout(t *testing.T) {
	db := setupTestDB(t)
	exerciseID := anyExerciseID(t, db)
	typeID := strengthTypeID(t, db)

	name := "Leg Day (#2)"
	min, max := 8, 12
	clone := &domain.Workout{
		ID:            uuid.New().String(),
		WorkoutTypeID: typeID,
		Name:          &name,
		Status:        domain.StatusInProgress,
		StartedAt:     time.Now().UTC(),
	}
	exercises := []CloneExercise{
		{
			ID:            uuid.New().String(),
			ExerciseID:    exerciseID,
			RestSeconds:   120,
			TargetRepsMin: &min,
			TargetRepsMax: &max,
			SetIDs:        []string{uuid.New().String(), uuid.New().String()},
		},
	}

	if err := db.CloneWorkout(clone, exercises); err != nil {
		t.Fatalf("CloneWorkout failed: %v", err)
	}

	listed, err := db.ListWorkoutExercises(clone.ID)
	if err != nil {
		t.Fatalf("ListWorkoutExercises failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("Expected 1 exercise, got %d", len(listed))
	}
	if listed[0].RestSeconds != 120 {
		t.Errorf("Expected rest 120, got %d", listed[0].RestSeconds)
	}
	if listed[0].TargetRepsMin == nil || *listed[0].TargetRepsMin != 8 {
		t.Error("Expected target reps min to be carried over")
	}

	sets, err := db.ListSetsByWorkoutExercise(listed[0].ID)
	if err != nil {
		t.Fatalf("ListSetsByWorkoutExercise failed: %v", err)
	}
	if len(sets) != 2 {
		t.Fatalf("Expected 2 empty sets, got %d", len(sets))
	}
	for i, set := range sets {
		if set.SetNumber != i+1 {
			t.Errorf("Expected set number %d, got %d", i+1, set.SetNumber)
		}
		if set.WeightKg != nil || set.Reps != nil {
			t.Error("Expected cloned sets to have no values")
		}
	}
}
