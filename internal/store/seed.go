package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"vitalis/internal/domain"
)

type workoutTypeSeed struct {
	name   string
	fields domain.FieldDefs
}

type exerciseSeed struct {
	name         string
	category     domain.ExerciseCategory
	muscles      domain.MuscleList
	equipment    domain.Equipment
	instructions string
}

var defaultWorkoutTypes = []workoutTypeSeed{
	{
		name: "Strength Training",
		fields: domain.FieldDefs{
			{Name: "weight", Type: domain.FieldNumber, Unit: "kg", Required: true},
			{Name: "reps", Type: domain.FieldNumber, Required: true},
		},
	},
	{
		name: "Cardio Session",
		fields: domain.FieldDefs{
			{Name: "duration", Type: domain.FieldDuration, Required: true},
			{Name: "distance", Type: domain.FieldDistance, Unit: "meters", Required: false},
		},
	},
	{
		name: "Flexibility/Stretching",
		fields: domain.FieldDefs{
			{Name: "duration", Type: domain.FieldDuration, Required: true},
		},
	},
}

var seedExercises = []exerciseSeed{
	// Chest
	{"Barbell Bench Press", domain.CategoryStrength, domain.MuscleList{domain.MuscleChest, domain.MuscleTriceps}, domain.EquipmentBarbell, "Lie on a flat bench, grip the bar slightly wider than shoulder-width, lower to chest, press up."},
	{"Incline Barbell Bench Press", domain.CategoryStrength, domain.MuscleList{domain.MuscleChest, domain.MuscleShoulders}, domain.EquipmentBarbell, "Set bench to 30-45 degrees. Lower bar to upper chest, press up."},
	{"Dumbbell Bench Press", domain.CategoryStrength, domain.MuscleList{domain.MuscleChest, domain.MuscleTriceps}, domain.EquipmentDumbbell, "Lie on a flat bench with dumbbells, press up from chest level."},
	{"Dumbbell Fly", domain.CategoryStrength, domain.MuscleList{domain.MuscleChest}, domain.EquipmentDumbbell, "Lie on a flat bench, arms extended, lower dumbbells in a wide arc, squeeze back up."},
	{"Cable Crossover", domain.CategoryStrength, domain.MuscleList{domain.MuscleChest}, domain.EquipmentCable, "Set cables high, step forward, bring handles together in front of chest."},
	{"Push-Up", domain.CategoryStrength, domain.MuscleList{domain.MuscleChest, domain.MuscleTriceps}, domain.EquipmentBodyweight, "Hands shoulder-width apart, lower chest to ground, push up."},
	{"Chest Press Machine", domain.CategoryStrength, domain.MuscleList{domain.MuscleChest, domain.MuscleTriceps}, domain.EquipmentMachine, "Sit upright, grip handles at chest height, press forward, return slowly."},

	// Back
	{"Barbell Deadlift", domain.CategoryStrength, domain.MuscleList{domain.MuscleBack, domain.MuscleHamstrings, domain.MuscleGlutes}, domain.EquipmentBarbell, "Stand with feet hip-width, grip bar, drive through heels, extend hips and knees."},
	{"Barbell Bent-Over Row", domain.CategoryStrength, domain.MuscleList{domain.MuscleBack, domain.MuscleBiceps}, domain.EquipmentBarbell, "Hinge at hips, grip bar, pull to lower chest, lower with control."},
	{"Pull-Up", domain.CategoryStrength, domain.MuscleList{domain.MuscleBack, domain.MuscleBiceps}, domain.EquipmentBodyweight, "Hang from bar, pull chin above bar, lower with control."},
	{"Lat Pulldown", domain.CategoryStrength, domain.MuscleList{domain.MuscleBack, domain.MuscleBiceps}, domain.EquipmentCable, "Grip wide bar, pull down to upper chest, squeeze shoulder blades together."},
	{"Seated Cable Row", domain.CategoryStrength, domain.MuscleList{domain.MuscleBack}, domain.EquipmentCable, "Sit upright, pull handle to torso, squeeze shoulder blades, return slowly."},
	{"Dumbbell Single-Arm Row", domain.CategoryStrength, domain.MuscleList{domain.MuscleBack, domain.MuscleBiceps}, domain.EquipmentDumbbell, "One knee on bench, pull dumbbell to hip, lower with control."},

	// Shoulders
	{"Overhead Press", domain.CategoryStrength, domain.MuscleList{domain.MuscleShoulders, domain.MuscleTriceps}, domain.EquipmentBarbell, "Stand with bar at shoulder height, press overhead, lower with control."},
	{"Dumbbell Lateral Raise", domain.CategoryStrength, domain.MuscleList{domain.MuscleShoulders}, domain.EquipmentDumbbell, "Stand with dumbbells at sides, raise arms to shoulder height, lower slowly."},
	{"Dumbbell Shoulder Press", domain.CategoryStrength, domain.MuscleList{domain.MuscleShoulders, domain.MuscleTriceps}, domain.EquipmentDumbbell, "Sit or stand, press dumbbells from shoulder height overhead."},
	{"Face Pull", domain.CategoryStrength, domain.MuscleList{domain.MuscleShoulders, domain.MuscleBack}, domain.EquipmentCable, "Set cable at face height, pull rope to face with elbows high, squeeze rear delts."},
	{"Dumbbell Front Raise", domain.CategoryStrength, domain.MuscleList{domain.MuscleShoulders}, domain.EquipmentDumbbell, "Stand with dumbbells in front of thighs, raise one or both arms to shoulder height."},

	// Biceps
	{"Barbell Curl", domain.CategoryStrength, domain.MuscleList{domain.MuscleBiceps}, domain.EquipmentBarbell, "Stand with bar at arm length, curl to shoulders keeping elbows stationary."},
	{"Dumbbell Curl", domain.CategoryStrength, domain.MuscleList{domain.MuscleBiceps}, domain.EquipmentDumbbell, "Stand or sit with dumbbells, curl to shoulders, lower with control."},
	{"Hammer Curl", domain.CategoryStrength, domain.MuscleList{domain.MuscleBiceps}, domain.EquipmentDumbbell, "Hold dumbbells with neutral grip (palms facing in), curl to shoulders."},
	{"Cable Bicep Curl", domain.CategoryStrength, domain.MuscleList{domain.MuscleBiceps}, domain.EquipmentCable, "Stand facing cable, grip bar, curl up keeping elbows at sides."},

	// Triceps
	{"Tricep Pushdown", domain.CategoryStrength, domain.MuscleList{domain.MuscleTriceps}, domain.EquipmentCable, "Stand facing cable, grip bar or rope, push down extending elbows fully."},
	{"Overhead Tricep Extension", domain.CategoryStrength, domain.MuscleList{domain.MuscleTriceps}, domain.EquipmentDumbbell, "Hold dumbbell overhead with both hands, lower behind head, extend back up."},
	{"Dip", domain.CategoryStrength, domain.MuscleList{domain.MuscleTriceps, domain.MuscleChest}, domain.EquipmentBodyweight, "Grip parallel bars, lower body by bending elbows, push back up."},
	{"Close-Grip Bench Press", domain.CategoryStrength, domain.MuscleList{domain.MuscleTriceps, domain.MuscleChest}, domain.EquipmentBarbell, "Lie on bench, grip bar with hands close together, lower to chest, press up."},

	// Quads
	{"Barbell Squat", domain.CategoryStrength, domain.MuscleList{domain.MuscleQuads, domain.MuscleGlutes}, domain.EquipmentBarbell, "Bar on upper back, feet shoulder-width, squat until thighs are parallel, stand up."},
	{"Leg Press", domain.CategoryStrength, domain.MuscleList{domain.MuscleQuads, domain.MuscleGlutes}, domain.EquipmentMachine, "Sit in machine, feet shoulder-width on platform, press up, lower with control."},
	{"Leg Extension", domain.CategoryStrength, domain.MuscleList{domain.MuscleQuads}, domain.EquipmentMachine, "Sit in machine, extend legs until straight, lower slowly."},
	{"Bulgarian Split Squat", domain.CategoryStrength, domain.MuscleList{domain.MuscleQuads, domain.MuscleGlutes}, domain.EquipmentDumbbell, "Rear foot on bench, lower into lunge until front thigh is parallel, push up."},
	{"Goblet Squat", domain.CategoryStrength, domain.MuscleList{domain.MuscleQuads, domain.MuscleGlutes}, domain.EquipmentDumbbell, "Hold dumbbell at chest, squat until thighs parallel, stand up."},

	// Hamstrings
	{"Romanian Deadlift", domain.CategoryStrength, domain.MuscleList{domain.MuscleHamstrings, domain.MuscleGlutes}, domain.EquipmentBarbell, "Hold bar at hip level, hinge forward keeping legs nearly straight, return to standing."},
	{"Lying Leg Curl", domain.CategoryStrength, domain.MuscleList{domain.MuscleHamstrings}, domain.EquipmentMachine, "Lie face down on machine, curl heels toward glutes, lower slowly."},
	{"Seated Leg Curl", domain.CategoryStrength, domain.MuscleList{domain.MuscleHamstrings}, domain.EquipmentMachine, "Sit in machine, curl legs back, return slowly."},

	// Glutes
	{"Hip Thrust", domain.CategoryStrength, domain.MuscleList{domain.MuscleGlutes, domain.MuscleHamstrings}, domain.EquipmentBarbell, "Upper back on bench, bar on hips, drive hips up squeezing glutes, lower slowly."},
	{"Cable Kickback", domain.CategoryStrength, domain.MuscleList{domain.MuscleGlutes}, domain.EquipmentCable, "Attach ankle strap to low cable, kick leg back squeezing glute, return slowly."},

	// Calves
	{"Standing Calf Raise", domain.CategoryStrength, domain.MuscleList{domain.MuscleCalves}, domain.EquipmentMachine, "Stand on calf raise machine, rise up on toes, lower slowly below platform level."},
	{"Seated Calf Raise", domain.CategoryStrength, domain.MuscleList{domain.MuscleCalves}, domain.EquipmentMachine, "Sit in machine, rise up on toes, lower slowly."},

	// Core
	{"Plank", domain.CategoryStrength, domain.MuscleList{domain.MuscleCore}, domain.EquipmentBodyweight, "Forearms and toes on ground, keep body straight, hold position."},
	{"Hanging Leg Raise", domain.CategoryStrength, domain.MuscleList{domain.MuscleCore}, domain.EquipmentBodyweight, "Hang from bar, raise legs to parallel or higher, lower with control."},
	{"Cable Crunch", domain.CategoryStrength, domain.MuscleList{domain.MuscleCore}, domain.EquipmentCable, "Kneel facing cable, hold rope behind head, crunch down contracting abs."},
	{"Ab Wheel Rollout", domain.CategoryStrength, domain.MuscleList{domain.MuscleCore}, domain.EquipmentNone, "Kneel with ab wheel, roll forward extending body, pull back using core."},

	// Cardio
	{"Treadmill Running", domain.CategoryCardio, domain.MuscleList{domain.MuscleFullBody}, domain.EquipmentCardioMachine, "Set speed and incline. Maintain steady pace or follow interval program."},
	{"Stationary Bike", domain.CategoryCardio, domain.MuscleList{domain.MuscleQuads, domain.MuscleHamstrings}, domain.EquipmentCardioMachine, "Adjust seat height, pedal at desired resistance and cadence."},
	{"Rowing Machine", domain.CategoryCardio, domain.MuscleList{domain.MuscleFullBody}, domain.EquipmentCardioMachine, "Drive with legs, lean back slightly, pull handle to chest. Return in reverse order."},
	{"Elliptical", domain.CategoryCardio, domain.MuscleList{domain.MuscleFullBody}, domain.EquipmentCardioMachine, "Step on pedals, move in smooth elliptical motion, use handles for upper body."},
	{"Jump Rope", domain.CategoryCardio, domain.MuscleList{domain.MuscleFullBody, domain.MuscleCalves}, domain.EquipmentNone, "Swing rope overhead, jump with both feet, maintain light bouncing rhythm."},

	// Flexibility
	{"Standing Hamstring Stretch", domain.CategoryFlexibility, domain.MuscleList{domain.MuscleHamstrings}, domain.EquipmentNone, "Stand and place one heel on elevated surface, lean forward keeping back straight."},
	{"Hip Flexor Stretch", domain.CategoryFlexibility, domain.MuscleList{domain.MuscleQuads, domain.MuscleGlutes}, domain.EquipmentNone, "Kneel on one knee, push hips forward until you feel a stretch in the front of your hip."},
	{"Chest Doorway Stretch", domain.CategoryFlexibility, domain.MuscleList{domain.MuscleChest}, domain.EquipmentNone, "Place forearm on doorframe, step through until you feel a chest stretch. Hold."},
	{"Cat-Cow Stretch", domain.CategoryFlexibility, domain.MuscleList{domain.MuscleBack, domain.MuscleCore}, domain.EquipmentNone, "On hands and knees, alternate between arching back (cow) and rounding back (cat)."},
}

// Seed inserts the default workout-type and exercise catalogs on first run.
// Idempotent via the existence check on default-flagged exercises, so it is
// safe to call on every startup.
func (db *DB) Seed() error {
	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM exercises WHERE is_default = 1`); err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	return db.RunInTx(func(tx *sqlx.Tx) error {
		for _, wt := range defaultWorkoutTypes {
			_, err := tx.Exec(
				`INSERT INTO workout_types (id, name, fields, is_default) VALUES (?, ?, ?, 1)`,
				uuid.New().String(), wt.name, wt.fields,
			)
			if err != nil {
				return fmt.Errorf("failed to seed workout type %q: %w", wt.name, err)
			}
		}

		for _, ex := range seedExercises {
			_, err := tx.Exec(
				`INSERT INTO exercises (id, name, category, primary_muscles, equipment, instructions, is_default)
				 VALUES (?, ?, ?, ?, ?, ?, 1)`,
				uuid.New().String(), ex.name, ex.category, ex.muscles, ex.equipment, ex.instructions,
			)
			if err != nil {
				return fmt.Errorf("failed to seed exercise %q: %w", ex.name, err)
			}
		}
		return nil
	})
}
