package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"vitalis/internal/domain"
	"vitalis/internal/logger"
	"vitalis/internal/store"
)

type ExerciseService struct {
	Repo *store.DB
	Log  *logger.Logger
}

func NewExerciseService(repo *store.DB, log *logger.Logger) *ExerciseService {
	return &ExerciseService{Repo: repo, Log: log.WithComponent("exercise_service")}
}

// ExerciseInput carries the user-supplied fields for creating an exercise.
type ExerciseInput struct {
	Name           string
	Category       domain.ExerciseCategory
	PrimaryMuscles domain.MuscleList
	Equipment      domain.Equipment
	Instructions   *string
	RestSeconds    *int
}

func (s *ExerciseService) List() ([]*domain.Exercise, error) {
	return s.Repo.ListExercises()
}

func (s *ExerciseService) ListByCategory(category domain.ExerciseCategory) ([]*domain.Exercise, error) {
	return s.Repo.ListExercisesByCategory(category)
}

func (s *ExerciseService) Search(query string) ([]*domain.Exercise, error) {
	return s.Repo.SearchExercises(query)
}

func (s *ExerciseService) Get(id string) (*domain.Exercise, error) {
	return s.Repo.GetExercise(id)
}

func (s *ExerciseService) GetByIDs(ids []string) ([]*domain.Exercise, error) {
	return s.Repo.GetExercisesByIDs(ids)
}

// Create relies on the storage constraint for name uniqueness rather than a
// read-then-write check; a collision is translated to a UniquenessError.
func (s *ExerciseService) Create(input ExerciseInput) (*domain.Exercise, error) {
	if err := ValidateExerciseName(input.Name); err != nil {
		return nil, err
	}

	e := &domain.Exercise{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Category:       input.Category,
		PrimaryMuscles: input.PrimaryMuscles,
		Equipment:      input.Equipment,
		Instructions:   input.Instructions,
		RestSeconds:    input.RestSeconds,
		IsDefault:      false,
	}

	if err := s.Repo.CreateExercise(e); err != nil {
		if domain.IsUniqueViolation(err, "exercises.name") {
			return nil, &domain.UniquenessError{Msg: fmt.Sprintf("an exercise named %q already exists", input.Name)}
		}
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	s.Log.Info("exercise created", "exercise_id", e.ID, "name", e.Name)
	return s.Repo.GetExercise(e.ID)
}

// Update changes only the supplied fields.
func (s *ExerciseService) Update(id string, update store.ExerciseUpdate) (*domain.Exercise, error) {
	if update.Name != nil {
		if err := ValidateExerciseName(*update.Name); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.UpdateExercise(id, update); err != nil {
		if domain.IsUniqueViolation(err, "exercises.name") {
			return nil, &domain.UniquenessError{Msg: fmt.Sprintf("an exercise named %q already exists", *update.Name)}
		}
		return nil, fmt.Errorf("failed to update exercise: %w", err)
	}

	e, err := s.Repo.GetExercise(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, &domain.NotFoundError{Entity: "exercise", ID: id}
	}
	return e, nil
}

// UpdateDefaultRestSeconds is the single-field fast path; nil clears the
// override back to the category default.
func (s *ExerciseService) UpdateDefaultRestSeconds(id string, restSeconds *int) error {
	return s.Repo.UpdateExerciseRestSeconds(id, restSeconds)
}

// Archive soft-deletes; the row is never removed.
func (s *ExerciseService) Archive(id string) error {
	if err := s.Repo.ArchiveExercise(id, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to archive exercise: %w", err)
	}
	s.Log.Info("exercise archived", "exercise_id", id)
	return nil
}
