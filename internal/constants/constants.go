// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

// Application defaults
const (
	DefaultDBPath = "vitalis.db"

	// SchemaVersion is the schema version the migrator brings a database up to.
	SchemaVersion = 3
)

// Default rest seconds per exercise category
const (
	DefaultRestStrength    = 90
	DefaultRestCardio      = 60
	DefaultRestFlexibility = 60
)

// Validation bounds for set payloads
const (
	MinWeightKg = 0.0
	MaxWeightKg = 9999.0

	MinReps = 1
	MaxReps = 9999

	MinDurationSeconds = 1
	MaxDurationSeconds = 359999 // 99:59:59

	MinDistanceMeters = 0.01
	MaxDistanceMeters = 9999.99
)

// Length limits for free-text fields
const (
	MaxExerciseNameLen = 100
	MaxWorkoutNameLen  = 200
	MaxNotesLen        = 1000
)

// UI/UX
const (
	HistoryPageSize = 20
	DefaultWeeks    = 12
)

// Settings keys
const (
	SettingUnits              = "units"
	SettingDefaultRestSeconds = "defaultRestSeconds"
)
