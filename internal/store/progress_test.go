package store

import (
	"math"
	"testing"
	"time"
)

func completedWorkoutWithSets(t *testing.T, db *DB, sets [][2]float64) string {
	t.Helper()
	w := startTestWorkout(t, db)
	we := addTestExercise(t, db, w.ID)
	for _, s := range sets {
		addTestSet(t, db, we.ID, s[0], int(s[1]))
	}
	if err := db.CompleteWorkout(w.ID, time.Now().UTC()); err != nil {
		t.Fatalf("CompleteWorkout failed: %v", err)
	}
	return we.ExerciseID
}

func TestPersonalRecords(t *testing.T) {
	db := setupTestDB(t)
	exerciseID := completedWorkoutWithSets(t, db, [][2]float64{
		{100, 5},
		{80, 12},
		{110, 1},
	})

	pr, err := db.GetPersonalRecords(exerciseID)
	if err != nil {
		t.Fatalf("GetPersonalRecords failed: %v", err)
	}
	if pr.MaxWeight == nil || *pr.MaxWeight != 110 {
		t.Errorf("Expected max weight 110, got %v", pr.MaxWeight)
	}
	if pr.MaxReps == nil || *pr.MaxReps != 12 {
		t.Errorf("Expected max reps 12, got %v", pr.MaxReps)
	}

	// Epley on the best set: 100 * (1 + 5/30) = 116.67, beating both the
	// heaviest single (113.67) and the rep record (112).
	if pr.Estimated1RM == nil {
		t.Fatal("Expected an estimated 1RM")
	}
	want := 100 * (1.0 + 5.0/30.0)
	if math.Abs(*pr.Estimated1RM-want) > 0.01 {
		t.Errorf("Expected estimated 1RM %.2f, got %.2f", want, *pr.Estimated1RM)
	}
}

func TestPersonalRecordsIgnoreIncompleteWorkouts(t *testing.T) {
	db := setupTestDB(t)
	w := startTestWorkout(t, db)
	we := addTestExercise(t, db, w.ID)
	addTestSet(t, db, we.ID, 200, 10)

	pr, err := db.GetPersonalRecords(we.ExerciseID)
	if err != nil {
		t.Fatalf("GetPersonalRecords failed: %v", err)
	}
	if pr.MaxWeight != nil {
		t.Errorf("Expected no records from an in-progress workout, got %v", *pr.MaxWeight)
	}
}

func TestVolumeOverTime(t *testing.T) {
	db := setupTestDB(t)
	exerciseID := completedWorkoutWithSets(t, db, [][2]float64{
		{100, 10},
		{100, 10},
	})

	points, err := db.GetVolumeOverTime(exerciseID, 12)
	if err != nil {
		t.Fatalf("GetVolumeOverTime failed: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("Expected 1 week bucket, got %d", len(points))
	}
	if points[0].Volume != 2000 {
		t.Errorf("Expected volume 2000, got %f", points[0].Volume)
	}
	if points[0].Week == "" {
		t.Error("Expected a week label")
	}
}

func TestWorkoutFrequency(t *testing.T) {
	db := setupTestDB(t)
	completedWorkoutWithSets(t, db, [][2]float64{{60, 8}})
	completedWorkoutWithSets(t, db, [][2]float64{{60, 8}})

	points, err := db.GetWorkoutFrequency(12)
	if err != nil {
		t.Fatalf("GetWorkoutFrequency failed: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("Expected 1 week bucket, got %d", len(points))
	}
	if points[0].Count != 2 {
		t.Errorf("Expected 2 workouts this week, got %d", points[0].Count)
	}
}

func TestPeriodStats(t *testing.T) {
	db := setupTestDB(t)
	completedWorkoutWithSets(t, db, [][2]float64{{100, 10}})

	today, err := db.GetTodayStats()
	if err != nil {
		t.Fatalf("GetTodayStats failed: %v", err)
	}
	if today.Workouts != 1 {
		t.Errorf("Expected 1 workout today, got %d", today.Workouts)
	}
	if today.Volume != 1000 {
		t.Errorf("Expected volume 1000 today, got %f", today.Volume)
	}

	week, err := db.GetWeeklyStats()
	if err != nil {
		t.Fatalf("GetWeeklyStats failed: %v", err)
	}
	if week.Workouts != 1 {
		t.Errorf("Expected 1 workout this week, got %d", week.Workouts)
	}
}

func TestListCompletedDays(t *testing.T) {
	db := setupTestDB(t)

	days, err := db.ListCompletedDays()
	if err != nil {
		t.Fatalf("ListCompletedDays failed: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("Expected no days before any workout, got %d", len(days))
	}

	completedWorkoutWithSets(t, db, [][2]float64{{60, 8}})
	completedWorkoutWithSets(t, db, [][2]float64{{60, 8}})

	days, err = db.ListCompletedDays()
	if err != nil {
		t.Fatalf("ListCompletedDays failed: %v", err)
	}
	// Two workouts on the same calendar day collapse to one entry.
	if len(days) != 1 {
		t.Errorf("Expected 1 distinct day, got %d", len(days))
	}
	if days[0] != time.Now().UTC().Format("2006-01-02") {
		t.Errorf("Expected today's date, got %s", days[0])
	}
}
