package store

import (
	"testing"

	"github.com/google/uuid"

	"vitalis/internal/domain"
)

func TestWorkoutExerciseOrdering(t *testing.T) {
	db := setupTestDB(t)
	w := startTestWorkout(t, db)

	exercises, err := db.ListExercisesByCategory(domain.CategoryStrength)
	if err != nil || len(exercises) < 3 {
		t.Fatalf("Expected at least 3 seeded strength exercises: %v", err)
	}

	var ids []string
	for i := 0; i < 3; i++ {
		we := &domain.WorkoutExercise{
			ID:          uuid.New().String(),
			WorkoutID:   w.ID,
			ExerciseID:  exercises[i].ID,
			RestSeconds: 90,
		}
		if err := db.AddWorkoutExercise(we); err != nil {
			t.Fatalf("AddWorkoutExercise failed: %v", err)
		}
		if we.SortOrder != i {
			t.Errorf("Expected sort order %d, got %d", i, we.SortOrder)
		}
		ids = append(ids, we.ID)
	}

	// Reorder reversed.
	reversed := []string{ids[2], ids[1], ids[0]}
	if err := db.ReorderWorkoutExercises(w.ID, reversed); err != nil {
		t.Fatalf("ReorderWorkoutExercises failed: %v", err)
	}

	listed, err := db.ListWorkoutExercises(w.ID)
	if err != nil {
		t.Fatalf("ListWorkoutExercises failed: %v", err)
	}
	for i, we := range listed {
		if we.ID != reversed[i] {
			t.Errorf("Expected position %d to hold %s, got %s", i, reversed[i], we.ID)
		}
		if we.SortOrder != i {
			t.Errorf("Expected sort order %d, got %d", i, we.SortOrder)
		}
	}
}

func TestRemoveWorkoutExerciseDeletesSets(t *testing.T) {
	db := setupTestDB(t)
	w := startTestWorkout(t, db)
	we := addTestExercise(t, db, w.ID)
	set := addTestSet(t, db, we.ID, 60, 8)

	if err := db.RemoveWorkoutExercise(we.ID); err != nil {
		t.Fatalf("RemoveWorkoutExercise failed: %v", err)
	}

	if fetched, _ := db.GetWorkoutExercise(we.ID); fetched != nil {
		t.Error("Expected workout exercise to be removed")
	}
	if fetched, _ := db.GetWorkoutSet(set.ID); fetched != nil {
		t.Error("Expected its sets to be removed")
	}

	// A fresh add starts again at sort order 0.
	next := addTestExercise(t, db, w.ID)
	if next.SortOrder != 0 {
		t.Errorf("Expected sort order 0, got %d", next.SortOrder)
	}
}

func TestUpdateTargetReps(t *testing.T) {
	db := setupTestDB(t)
	w := startTestWorkout(t, db)
	we := addTestExercise(t, db, w.ID)

	min, max := 8, 12
	if err := db.UpdateWorkoutExerciseTargetReps(we.ID, &min, &max); err != nil {
		t.Fatalf("UpdateWorkoutExerciseTargetReps failed: %v", err)
	}
	fetched, _ := db.GetWorkoutExercise(we.ID)
	if fetched.TargetRepsMin == nil || *fetched.TargetRepsMin != 8 {
		t.Error("Expected target reps min 8")
	}
	if fetched.TargetRepsMax == nil || *fetched.TargetRepsMax != 12 {
		t.Error("Expected target reps max 12")
	}

	// Clearing with nils.
	if err := db.UpdateWorkoutExerciseTargetReps(we.ID, nil, nil); err != nil {
		t.Fatalf("Clearing target reps failed: %v", err)
	}
	fetched, _ = db.GetWorkoutExercise(we.ID)
	if fetched.TargetRepsMin != nil || fetched.TargetRepsMax != nil {
		t.Error("Expected target reps to be cleared")
	}
}

func TestListWorkoutExercisesJoinsCatalog(t *testing.T) {
	db := setupTestDB(t)
	w := startTestWorkout(t, db)
	we := addTestExercise(t, db, w.ID)

	listed, err := db.ListWorkoutExercises(w.ID)
	if err != nil {
		t.Fatalf("ListWorkoutExercises failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("Expected 1 exercise, got %d", len(listed))
	}
	if listed[0].ID != we.ID {
		t.Errorf("Expected %s, got %s", we.ID, listed[0].ID)
	}
	if listed[0].ExerciseName == "" {
		t.Error("Expected joined exercise name")
	}
	if listed[0].ExerciseCategory != domain.CategoryStrength {
		t.Errorf("Expected strength category, got %s", listed[0].ExerciseCategory)
	}
}
