package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"vitalis/internal/constants"
	"vitalis/internal/domain"
	"vitalis/internal/logger"
	"vitalis/internal/store"
)

// WorkoutService is the lifecycle state machine for workout sessions:
// in_progress -> completed, in_progress -> discarded, completed -> in_progress
// (reopen). Discarded workouts and deleted workouts are terminal.
type WorkoutService struct {
	Repo *store.DB
	Log  *logger.Logger

	// now is swappable for tests; all timestamps are stored in UTC.
	now func() time.Time
}

func NewWorkoutService(repo *store.DB, log *logger.Logger) *WorkoutService {
	return &WorkoutService{
		Repo: repo,
		Log:  log.WithComponent("workout_service"),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// DefaultRestSeconds returns the fallback rest duration for a category.
func DefaultRestSeconds(category domain.ExerciseCategory) int {
	switch category {
	case domain.CategoryCardio:
		return constants.DefaultRestCardio
	case domain.CategoryFlexibility:
		return constants.DefaultRestFlexibility
	default:
		return constants.DefaultRestStrength
	}
}

// Start creates a new in_progress workout. At most one workout may be active;
// the early read gives a friendly error, the partial unique index is the real
// guard against races.
func (s *WorkoutService) Start(typeID string, name *string) (*domain.Workout, error) {
	if name != nil {
		if err := ValidateWorkoutName(*name); err != nil {
			return nil, err
		}
	}

	wt, err := s.Repo.GetWorkoutType(typeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workout type: %w", err)
	}
	if wt == nil {
		return nil, &domain.NotFoundError{Entity: "workout type", ID: typeID}
	}

	active, err := s.Repo.GetActiveWorkout()
	if err != nil {
		return nil, fmt.Errorf("failed to check for active workout: %w", err)
	}
	if active != nil {
		return nil, &domain.ConflictError{Msg: "a workout is already in progress; complete or discard it before starting a new one"}
	}

	w := &domain.Workout{
		ID:            uuid.New().String(),
		WorkoutTypeID: typeID,
		Name:          name,
		Status:        domain.StatusInProgress,
		StartedAt:     s.now(),
	}

	if err := s.Repo.CreateWorkout(w); err != nil {
		if domain.IsUniqueViolation(err, "workouts.status") {
			return nil, &domain.ConflictError{Msg: "a workout is already in progress; complete or discard it before starting a new one"}
		}
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}

	s.Log.Info("workout started", "workout_id", w.ID, "type_id", typeID)
	return s.Repo.GetWorkout(w.ID)
}

// AddExercise links an exercise into a workout. When restSeconds is nil it is
// resolved from the exercise's override, falling back to the category default.
// The resolved value is copied onto the link, not referenced live.
func (s *WorkoutService) AddExercise(workoutID, exerciseID string, restSeconds *int) (*domain.WorkoutExercise, error) {
	resolved := constants.DefaultRestStrength
	if restSeconds != nil {
		resolved = *restSeconds
	} else {
		ex, err := s.Repo.GetExercise(exerciseID)
		if err != nil {
			return nil, fmt.Errorf("failed to load exercise: %w", err)
		}
		if ex != nil {
			if ex.RestSeconds != nil {
				resolved = *ex.RestSeconds
			} else {
				resolved = DefaultRestSeconds(ex.Category)
			}
		}
	}

	we := &domain.WorkoutExercise{
		ID:          uuid.New().String(),
		WorkoutID:   workoutID,
		ExerciseID:  exerciseID,
		RestSeconds: resolved,
	}
	if err := s.Repo.AddWorkoutExercise(we); err != nil {
		return nil, fmt.Errorf("failed to add exercise to workout: %w", err)
	}
	return we, nil
}

func (s *WorkoutService) UpdateExerciseRestSeconds(workoutExerciseID string, restSeconds int) error {
	return s.Repo.UpdateWorkoutExerciseRestSeconds(workoutExerciseID, restSeconds)
}

// UpdateTargetReps sets or clears the target rep range; min and max must both
// be present or both absent.
func (s *WorkoutService) UpdateTargetReps(workoutExerciseID string, min, max *int) error {
	if (min == nil) != (max == nil) {
		return &domain.ValidationError{Field: "target_reps", Msg: "target rep range requires both min and max"}
	}
	if min != nil && *min > *max {
		return &domain.ValidationError{Field: "target_reps", Msg: "target rep minimum cannot exceed maximum"}
	}
	return s.Repo.UpdateWorkoutExerciseTargetReps(workoutExerciseID, min, max)
}

// LogSet validates the payload and appends a set; nothing is written when
// validation fails.
func (s *WorkoutService) LogSet(workoutExerciseID string, input domain.SetInput) (*domain.WorkoutSet, error) {
	if err := validateSetInput(input); err != nil {
		return nil, err
	}
	return s.Repo.AddWorkoutSet(uuid.New().String(), workoutExerciseID, input, s.now())
}

func (s *WorkoutService) UpdateSet(setID string, input domain.SetInput) (*domain.WorkoutSet, error) {
	if err := validateSetInput(input); err != nil {
		return nil, err
	}
	return s.Repo.UpdateWorkoutSet(setID, input)
}

// RemoveSet deletes a set and closes the numbering gap transactionally.
func (s *WorkoutService) RemoveSet(setID string) error {
	return s.Repo.RemoveWorkoutSet(setID)
}

func (s *WorkoutService) RemoveExercise(workoutExerciseID string) error {
	return s.Repo.RemoveWorkoutExercise(workoutExerciseID)
}

func (s *WorkoutService) ReorderExercises(workoutID string, orderedIDs []string) error {
	return s.Repo.ReorderWorkoutExercises(workoutID, orderedIDs)
}

// Complete marks a workout done. A workout with no recorded effort cannot be
// completed.
func (s *WorkoutService) Complete(workoutID string) error {
	w, err := s.Repo.GetWorkout(workoutID)
	if err != nil {
		return fmt.Errorf("failed to load workout: %w", err)
	}
	if w == nil {
		return &domain.NotFoundError{Entity: "workout", ID: workoutID}
	}

	count, err := s.Repo.CountSetsByWorkout(workoutID)
	if err != nil {
		return fmt.Errorf("failed to count sets: %w", err)
	}
	if count == 0 {
		return &domain.PreconditionError{Msg: "cannot complete a workout with no logged sets"}
	}

	if err := s.Repo.CompleteWorkout(workoutID, s.now()); err != nil {
		return fmt.Errorf("failed to complete workout: %w", err)
	}
	s.Log.Info("workout completed", "workout_id", workoutID, "sets", count)
	return nil
}

func (s *WorkoutService) Discard(workoutID string) error {
	if err := s.Repo.DiscardWorkout(workoutID); err != nil {
		return fmt.Errorf("failed to discard workout: %w", err)
	}
	s.Log.Info("workout discarded", "workout_id", workoutID)
	return nil
}

// Reopen reverts a completed workout to in_progress. Fails with Conflict when
// another workout is active; callers should then confirm with the user and
// call DiscardActiveAndReopen.
func (s *WorkoutService) Reopen(workoutID string) error {
	active, err := s.Repo.GetActiveWorkout()
	if err != nil {
		return fmt.Errorf("failed to check for active workout: %w", err)
	}
	if active != nil && active.ID != workoutID {
		return &domain.ConflictError{Msg: "another workout is in progress; discard it to continue this one"}
	}

	if err := s.Repo.ReopenWorkout(workoutID); err != nil {
		if domain.IsUniqueViolation(err, "workouts.status") {
			return &domain.ConflictError{Msg: "another workout is in progress; discard it to continue this one"}
		}
		return fmt.Errorf("failed to reopen workout: %w", err)
	}
	return nil
}

// DiscardActiveAndReopen is the explicit user-confirmed override for Reopen's
// Conflict: the other active workout is discarded (kept, hidden from history),
// never merged.
func (s *WorkoutService) DiscardActiveAndReopen(workoutID string) error {
	if err := s.Repo.DiscardActiveAndReopen(workoutID); err != nil {
		return fmt.Errorf("failed to discard active and reopen: %w", err)
	}
	s.Log.Info("workout reopened over active", "workout_id", workoutID)
	return nil
}

// Repeat clones a past workout into a fresh in_progress one of the same type:
// same exercises and rest times, and the same count of sets per exercise but
// with values cleared for re-entry. The generated name is
// "<base name> (#N)" where N counts completed workouts of the type; the base
// name strips any existing "(#N)" suffix so repeats don't stack.
func (s *WorkoutService) Repeat(sourceWorkoutID string) (*domain.Workout, error) {
	source, err := s.Full(sourceWorkoutID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, &domain.NotFoundError{Entity: "workout", ID: sourceWorkoutID}
	}

	active, err := s.Repo.GetActiveWorkout()
	if err != nil {
		return nil, fmt.Errorf("failed to check for active workout: %w", err)
	}
	if active != nil {
		return nil, &domain.ConflictError{Msg: "a workout is already in progress; complete or discard it before starting a new one"}
	}

	completed, err := s.Repo.CountWorkoutsByTypeAndStatus(source.WorkoutTypeID, domain.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed workouts: %w", err)
	}

	base := source.WorkoutType.Name
	if source.Name != nil && *source.Name != "" {
		base = domain.BaseName(*source.Name)
	}
	name := fmt.Sprintf("%s (#%d)", base, completed+1)

	clone := &domain.Workout{
		ID:            uuid.New().String(),
		WorkoutTypeID: source.WorkoutTypeID,
		Name:          &name,
		Status:        domain.StatusInProgress,
		StartedAt:     s.now(),
	}

	exercises := make([]store.CloneExercise, 0, len(source.Exercises))
	for _, ex := range source.Exercises {
		ce := store.CloneExercise{
			ID:            uuid.New().String(),
			ExerciseID:    ex.ExerciseID,
			RestSeconds:   ex.RestSeconds,
			TargetRepsMin: ex.TargetRepsMin,
			TargetRepsMax: ex.TargetRepsMax,
		}
		for range ex.Sets {
			ce.SetIDs = append(ce.SetIDs, uuid.New().String())
		}
		exercises = append(exercises, ce)
	}

	if err := s.Repo.CloneWorkout(clone, exercises); err != nil {
		if domain.IsUniqueViolation(err, "workouts.status") {
			return nil, &domain.ConflictError{Msg: "a workout is already in progress; complete or discard it before starting a new one"}
		}
		return nil, fmt.Errorf("failed to clone workout: %w", err)
	}

	s.Log.Info("workout repeated", "source_id", sourceWorkoutID, "workout_id", clone.ID, "name", name)
	return s.Repo.GetWorkout(clone.ID)
}

func (s *WorkoutService) Delete(workoutID string) error {
	if err := s.Repo.DeleteWorkout(workoutID); err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	s.Log.Info("workout deleted", "workout_id", workoutID)
	return nil
}

func (s *WorkoutService) DeleteMany(workoutIDs []string) error {
	return s.Repo.DeleteWorkouts(workoutIDs)
}

func (s *WorkoutService) Active() (*domain.Workout, error) {
	return s.Repo.GetActiveWorkout()
}

// Full returns a workout with its type, exercises and sets, or nil when the
// workout does not exist. A missing workout type signals data corruption and
// is a fatal NotFound.
func (s *WorkoutService) Full(workoutID string) (*domain.WorkoutFull, error) {
	w, err := s.Repo.GetWorkout(workoutID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}

	wt, err := s.Repo.GetWorkoutType(w.WorkoutTypeID)
	if err != nil {
		return nil, err
	}
	if wt == nil {
		return nil, &domain.NotFoundError{Entity: "workout type", ID: w.WorkoutTypeID}
	}

	exercises, err := s.Repo.ListWorkoutExercises(workoutID)
	if err != nil {
		return nil, err
	}
	for _, ex := range exercises {
		sets, err := s.Repo.ListSetsByWorkoutExercise(ex.ID)
		if err != nil {
			return nil, err
		}
		ex.Sets = sets
	}

	return &domain.WorkoutFull{
		Workout:     *w,
		WorkoutType: wt,
		Exercises:   exercises,
	}, nil
}

func (s *WorkoutService) Summaries(limit, offset int) ([]*domain.WorkoutSummary, error) {
	return s.Repo.ListWorkoutSummaries(limit, offset)
}

func (s *WorkoutService) SummaryCount() (int, error) {
	return s.Repo.CountCompletedWorkouts()
}

// GroupedHistory buckets completed-workout summaries so repeated sessions of
// the same named workout collapse into one card.
func (s *WorkoutService) GroupedHistory(limit, offset int) ([]*domain.WorkoutGroup, error) {
	summaries, err := s.Repo.ListWorkoutSummaries(limit, offset)
	if err != nil {
		return nil, err
	}
	return domain.GroupSummaries(summaries), nil
}

// PreviousSets returns, per exercise, the sets from the most recent completed
// workout containing it. Lookups share no mutable state and fan out
// concurrently.
func (s *WorkoutService) PreviousSets(exerciseIDs []string) (map[string][]*domain.WorkoutSet, error) {
	result := make(map[string][]*domain.WorkoutSet, len(exerciseIDs))
	if len(exerciseIDs) == 0 {
		return result, nil
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	for _, id := range exerciseIDs {
		wg.Add(1)
		go func(exerciseID string) {
			defer wg.Done()
			sets, err := s.Repo.LatestSetsForExercise(exerciseID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			if len(sets) > 0 {
				result[exerciseID] = sets
			}
		}(id)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}
