package domain

import (
	"database/sql/driver"
	"encoding/json"
)

// ExerciseCategory classifies an exercise and decides which set payload shape applies.
type ExerciseCategory string

const (
	CategoryStrength    ExerciseCategory = "strength"
	CategoryCardio      ExerciseCategory = "cardio"
	CategoryFlexibility ExerciseCategory = "flexibility"
)

type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "chest"
	MuscleBack       MuscleGroup = "back"
	MuscleShoulders  MuscleGroup = "shoulders"
	MuscleBiceps     MuscleGroup = "biceps"
	MuscleTriceps    MuscleGroup = "triceps"
	MuscleQuads      MuscleGroup = "quads"
	MuscleHamstrings MuscleGroup = "hamstrings"
	MuscleGlutes     MuscleGroup = "glutes"
	MuscleCalves     MuscleGroup = "calves"
	MuscleCore       MuscleGroup = "core"
	MuscleFullBody   MuscleGroup = "full_body"
)

type Equipment string

const (
	EquipmentBarbell       Equipment = "barbell"
	EquipmentDumbbell      Equipment = "dumbbell"
	EquipmentMachine       Equipment = "machine"
	EquipmentCable         Equipment = "cable"
	EquipmentBodyweight    Equipment = "bodyweight"
	EquipmentCardioMachine Equipment = "cardio_machine"
	EquipmentNone          Equipment = "none"
)

type WorkoutStatus string

const (
	StatusInProgress WorkoutStatus = "in_progress"
	StatusCompleted  WorkoutStatus = "completed"
	StatusDiscarded  WorkoutStatus = "discarded"
)

type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)

// FieldType is the value kind of a workout-type field definition.
type FieldType string

const (
	FieldNumber   FieldType = "number"
	FieldDuration FieldType = "duration"
	FieldDistance FieldType = "distance"
	FieldText     FieldType = "text"
)

// FieldDef describes one field a workout type expects its sets to carry.
type FieldDef struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Unit     string    `json:"unit,omitempty"`
	Required bool      `json:"required"`
}

// FieldDefs is stored as a JSON column. Malformed legacy data decodes to an
// empty list rather than failing the whole row scan.
type FieldDefs []FieldDef

func (f FieldDefs) Value() (driver.Value, error) {
	if len(f) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (f *FieldDefs) Scan(value interface{}) error {
	data, ok := scanBytes(value)
	if !ok || len(data) == 0 {
		*f = nil
		return nil
	}
	if err := json.Unmarshal(data, f); err != nil {
		*f = nil
	}
	return nil
}

// MuscleList is stored as a JSON column, with the same tolerant scan behavior.
type MuscleList []MuscleGroup

func (m MuscleList) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *MuscleList) Scan(value interface{}) error {
	data, ok := scanBytes(value)
	if !ok || len(data) == 0 {
		*m = nil
		return nil
	}
	if err := json.Unmarshal(data, m); err != nil {
		*m = nil
	}
	return nil
}

// CustomFields holds type-specific extra set values, serialized as JSON.
type CustomFields map[string]interface{}

func (c CustomFields) Value() (driver.Value, error) {
	if len(c) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *CustomFields) Scan(value interface{}) error {
	data, ok := scanBytes(value)
	if !ok || len(data) == 0 || string(data) == "null" {
		*c = nil
		return nil
	}
	if err := json.Unmarshal(data, c); err != nil {
		*c = nil
	}
	return nil
}

func scanBytes(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}
