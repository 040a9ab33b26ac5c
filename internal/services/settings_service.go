package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"vitalis/internal/constants"
	"vitalis/internal/domain"
	"vitalis/internal/logger"
	"vitalis/internal/store"
)

// SettingsService caches preferences in memory and writes through to the
// settings table, so reads after startup never touch the database.
type SettingsService struct {
	Repo *store.SettingsRepo
	Log  *logger.Logger

	mu     sync.RWMutex
	loaded bool
	units  domain.UnitSystem
	rest   int
}

func NewSettingsService(repo *store.SettingsRepo, log *logger.Logger) *SettingsService {
	return &SettingsService{
		Repo: repo,
		Log:  log.WithComponent("settings_service"),
	}
}

// Load populates the cache. On first run the unit system is derived from the
// process locale and persisted, so later sessions are stable even if the
// locale changes.
func (s *SettingsService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	units, err := s.Repo.Get(constants.SettingUnits)
	if err != nil {
		return fmt.Errorf("failed to read units setting: %w", err)
	}
	if units == "" {
		units = string(localeUnits())
		if err := s.Repo.Set(constants.SettingUnits, units); err != nil {
			return fmt.Errorf("failed to persist units setting: %w", err)
		}
	}

	rest := constants.DefaultRestStrength
	raw, err := s.Repo.Get(constants.SettingDefaultRestSeconds)
	if err != nil {
		return fmt.Errorf("failed to read rest setting: %w", err)
	}
	if raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			rest = n
		}
	}

	s.units = domain.UnitSystem(units)
	s.rest = rest
	s.loaded = true
	s.Log.Debug("settings loaded", "units", units, "rest_seconds", rest)
	return nil
}

func (s *SettingsService) Units() domain.UnitSystem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return domain.UnitsMetric
	}
	return s.units
}

func (s *SettingsService) DefaultRestSeconds() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return constants.DefaultRestStrength
	}
	return s.rest
}

func (s *SettingsService) UpdateUnits(units domain.UnitSystem) error {
	if units != domain.UnitsMetric && units != domain.UnitsImperial {
		return &domain.ValidationError{Field: "units", Msg: fmt.Sprintf("unknown unit system %q", units)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Repo.Set(constants.SettingUnits, string(units)); err != nil {
		return fmt.Errorf("failed to persist units setting: %w", err)
	}
	s.units = units
	s.loaded = true
	s.Log.Info("units updated", "units", units)
	return nil
}

func (s *SettingsService) UpdateDefaultRestSeconds(seconds int) error {
	if seconds < 1 || seconds > constants.MaxDurationSeconds {
		return &domain.ValidationError{Field: "defaultRestSeconds", Msg: "rest must be between 1 second and 99:59:59"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Repo.Set(constants.SettingDefaultRestSeconds, strconv.Itoa(seconds)); err != nil {
		return fmt.Errorf("failed to persist rest setting: %w", err)
	}
	s.rest = seconds
	return nil
}

// Reload drops the cache and re-reads from storage.
func (s *SettingsService) Reload() error {
	s.mu.Lock()
	s.loaded = false
	s.mu.Unlock()
	return s.Load()
}

// localeUnits picks imperial for the three locales that use it, metric for
// everything else.
func localeUnits() domain.UnitSystem {
	locale := os.Getenv("LC_ALL")
	if locale == "" {
		locale = os.Getenv("LANG")
	}
	locale = strings.SplitN(locale, ".", 2)[0]
	switch locale {
	case "en_US", "en_MM", "en_LR":
		return domain.UnitsImperial
	}
	return domain.UnitsMetric
}
