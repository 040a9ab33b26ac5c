package services

import (
	"fmt"
	"time"

	"vitalis/internal/constants"
	"vitalis/internal/domain"
	"vitalis/internal/logger"
	"vitalis/internal/store"
)

// ProgressService computes analytics over completed workouts.
type ProgressService struct {
	Repo *store.DB
	Log  *logger.Logger

	now func() time.Time
}

func NewProgressService(repo *store.DB, log *logger.Logger) *ProgressService {
	return &ProgressService{
		Repo: repo,
		Log:  log.WithComponent("progress_service"),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *ProgressService) PersonalRecords(exerciseID string) (*store.PersonalRecords, error) {
	return s.Repo.GetPersonalRecords(exerciseID)
}

func (s *ProgressService) VolumeOverTime(exerciseID string, weeks int) ([]*store.WeekDataPoint, error) {
	if weeks <= 0 {
		weeks = constants.DefaultWeeks
	}
	return s.Repo.GetVolumeOverTime(exerciseID, weeks)
}

func (s *ProgressService) WorkoutFrequency(weeks int) ([]*store.WeekDataPoint, error) {
	if weeks <= 0 {
		weeks = constants.DefaultWeeks
	}
	return s.Repo.GetWorkoutFrequency(weeks)
}

func (s *ProgressService) WeeklyStats() (*store.PeriodStats, error) {
	return s.Repo.GetWeeklyStats()
}

func (s *ProgressService) TodayStats() (*store.PeriodStats, error) {
	return s.Repo.GetTodayStats()
}

// Estimate1RM applies the Epley formula to a single set.
func Estimate1RM(weightKg float64, reps int) float64 {
	return weightKg * (1.0 + float64(reps)/30.0)
}

// CurrentStreak counts consecutive UTC calendar days with a completed workout,
// walking backwards from today. A streak survives until a full day is missed,
// so a workout yesterday but not yet today still counts.
func (s *ProgressService) CurrentStreak() (int, error) {
	days, err := s.Repo.ListCompletedDays()
	if err != nil {
		return 0, fmt.Errorf("failed to list workout days: %w", err)
	}
	if len(days) == 0 {
		return 0, nil
	}

	cursor := s.now().Truncate(24 * time.Hour)
	latest, err := time.Parse("2006-01-02", days[0])
	if err != nil {
		return 0, fmt.Errorf("failed to parse workout day %q: %w", days[0], err)
	}

	// No workout today or yesterday means the streak is broken.
	if cursor.Sub(latest) > 24*time.Hour {
		return 0, nil
	}

	streak := 0
	cursor = latest
	for _, day := range days {
		d, err := time.Parse("2006-01-02", day)
		if err != nil {
			return 0, fmt.Errorf("failed to parse workout day %q: %w", day, err)
		}
		if !d.Equal(cursor) {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak, nil
}

// Overview bundles the dashboard numbers into one call.
type Overview struct {
	Week   *store.PeriodStats
	Today  *store.PeriodStats
	Streak int
}

func (s *ProgressService) Dashboard() (*Overview, error) {
	week, err := s.Repo.GetWeeklyStats()
	if err != nil {
		return nil, err
	}
	today, err := s.Repo.GetTodayStats()
	if err != nil {
		return nil, err
	}
	streak, err := s.CurrentStreak()
	if err != nil {
		return nil, err
	}
	return &Overview{Week: week, Today: today, Streak: streak}, nil
}

// BestSet returns the heaviest set from the most recent session of an
// exercise, nil when there is no history.
func (s *ProgressService) BestSet(exerciseID string) (*domain.WorkoutSet, error) {
	sets, err := s.Repo.LatestSetsForExercise(exerciseID)
	if err != nil || len(sets) == 0 {
		return nil, err
	}
	best := sets[0]
	for _, set := range sets[1:] {
		if set.WeightKg != nil && (best.WeightKg == nil || *set.WeightKg > *best.WeightKg) {
			best = set
		}
	}
	return best, nil
}
