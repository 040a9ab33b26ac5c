package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalis/internal/domain"
	"vitalis/internal/logger"
	"vitalis/internal/store"
)

func newSettingsService(t *testing.T) *SettingsService {
	t.Helper()
	db, err := store.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logger.New(logger.Config{Level: "error", Format: "text"})
	return NewSettingsService(store.NewSettingsRepo(db), log)
}

func TestSettingsDefaults(t *testing.T) {
	t.Setenv("LC_ALL", "de_DE.UTF-8")
	svc := newSettingsService(t)
	require.NoError(t, svc.Load())

	assert.Equal(t, domain.UnitsMetric, svc.Units())
	assert.Equal(t, 90, svc.DefaultRestSeconds())
}

func TestSettingsLocaleImperial(t *testing.T) {
	t.Setenv("LC_ALL", "en_US.UTF-8")
	svc := newSettingsService(t)
	require.NoError(t, svc.Load())

	assert.Equal(t, domain.UnitsImperial, svc.Units())

	// The locale-derived choice is persisted: a later reload under a
	// different locale keeps the original answer.
	t.Setenv("LC_ALL", "de_DE.UTF-8")
	require.NoError(t, svc.Reload())
	assert.Equal(t, domain.UnitsImperial, svc.Units())
}

func TestSettingsUpdateWriteThrough(t *testing.T) {
	t.Setenv("LC_ALL", "de_DE.UTF-8")
	svc := newSettingsService(t)
	require.NoError(t, svc.Load())

	require.NoError(t, svc.UpdateUnits(domain.UnitsImperial))
	assert.Equal(t, domain.UnitsImperial, svc.Units())

	require.NoError(t, svc.UpdateDefaultRestSeconds(120))
	assert.Equal(t, 120, svc.DefaultRestSeconds())

	// Updates survive a cache reload because they were written through.
	require.NoError(t, svc.Reload())
	assert.Equal(t, domain.UnitsImperial, svc.Units())
	assert.Equal(t, 120, svc.DefaultRestSeconds())
}

func TestSettingsValidation(t *testing.T) {
	t.Setenv("LC_ALL", "de_DE.UTF-8")
	svc := newSettingsService(t)
	require.NoError(t, svc.Load())

	err := svc.UpdateUnits("furlongs")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	err = svc.UpdateDefaultRestSeconds(0)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// Failed updates leave the cache untouched.
	assert.Equal(t, domain.UnitsMetric, svc.Units())
	assert.Equal(t, 90, svc.DefaultRestSeconds())
}

func TestLocaleUnits(t *testing.T) {
	cases := map[string]domain.UnitSystem{
		"en_US.UTF-8": domain.UnitsImperial,
		"en_US":       domain.UnitsImperial,
		"en_LR":       domain.UnitsImperial,
		"en_MM":       domain.UnitsImperial,
		"en_GB.UTF-8": domain.UnitsMetric,
		"de_DE.UTF-8": domain.UnitsMetric,
		"":            domain.UnitsMetric,
	}
	for locale, want := range cases {
		t.Setenv("LC_ALL", locale)
		t.Setenv("LANG", "")
		assert.Equal(t, want, localeUnits(), "locale %q", locale)
	}
}
