package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vitalis/internal/constants"
	"vitalis/internal/domain"
	"vitalis/internal/services"
)

var (
	startName      string
	addRestSeconds int
	logWeight      string
	logReps        int
	logDuration    int
	logDistance    string
	historyLimit   int
	historyPage    int
	historyGrouped bool
	discardActive  bool
	deleteYes      bool
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workout sessions",
	Long: `Track workout sessions from start to completion.

WORKFLOW:

  1. Start a session:       vitalis workout start "Strength Training"
  2. Add exercises:         vitalis workout add-exercise <exercise-id>
  3. Log sets:              vitalis workout log <workout-exercise-id> --weight 80 --reps 5
  4. Finish:                vitalis workout complete

Only one workout can be in progress at a time. A session with no logged
sets cannot be completed, only discarded. Completed sessions can be
repeated or reopened.`,
}

var workoutStartCmd = &cobra.Command{
	Use:   "start <type>",
	Short: "Start a new workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wt, err := resolveWorkoutType(args[0])
		if err != nil {
			return err
		}

		var name *string
		if startName != "" {
			name = &startName
		}

		w, err := workoutSvc.Start(wt.ID, name)
		if err != nil {
			return err
		}

		color.Green("✓ Started %s", wt.Name)
		fmt.Printf("  ID: %s\n", shortID(w.ID))
		return nil
	},
}

var workoutTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List workout types",
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := db.ListWorkoutTypes()
		if err != nil {
			return err
		}
		faint := color.New(color.Faint)
		for _, wt := range types {
			fmt.Printf("%s %s\n", faint.Sprint(shortID(wt.ID)), wt.Name)
		}
		return nil
	},
}

var workoutStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		active, err := workoutSvc.Active()
		if err != nil {
			return err
		}
		if active == nil {
			fmt.Println("No workout in progress.")
			return nil
		}
		return printWorkout(active.ID)
	},
}

var workoutAddExerciseCmd = &cobra.Command{
	Use:   "add-exercise <exercise-id>",
	Short: "Add an exercise to the active workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		active, err := requireActive()
		if err != nil {
			return err
		}

		var rest *int
		if addRestSeconds > 0 {
			rest = &addRestSeconds
		}

		we, err := workoutSvc.AddExercise(active.ID, args[0], rest)
		if err != nil {
			return err
		}

		color.Green("✓ Added exercise")
		fmt.Printf("  ID: %s  rest: %s\n", shortID(we.ID), services.FormatDuration(we.RestSeconds))
		return nil
	},
}

var workoutLogCmd = &cobra.Command{
	Use:   "log <workout-exercise-id>",
	Short: "Log a set",
	Long: `Log a set against an exercise in the active workout.

Weight and distance are entered in your configured unit system and
stored metric. Examples:

  vitalis workout log abc123 --weight 80 --reps 5
  vitalis workout log abc123 --duration 600 --distance 2.5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := buildSetInput()
		if err != nil {
			return err
		}

		set, err := workoutSvc.LogSet(args[0], input)
		if err != nil {
			return err
		}

		color.Green("✓ Set %d logged", set.SetNumber)
		return nil
	},
}

var workoutUpdateSetCmd = &cobra.Command{
	Use:   "update-set <set-id>",
	Short: "Replace a logged set's values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := buildSetInput()
		if err != nil {
			return err
		}

		set, err := workoutSvc.UpdateSet(args[0], input)
		if err != nil {
			return err
		}

		color.Green("✓ Set %d updated", set.SetNumber)
		return nil
	},
}

var workoutRemoveSetCmd = &cobra.Command{
	Use:   "remove-set <set-id>",
	Short: "Delete a set and renumber the rest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := workoutSvc.RemoveSet(args[0]); err != nil {
			return err
		}
		color.Green("✓ Set removed")
		return nil
	},
}

var workoutRemoveExerciseCmd = &cobra.Command{
	Use:   "remove-exercise <workout-exercise-id>",
	Short: "Remove an exercise and its sets from the workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := workoutSvc.RemoveExercise(args[0]); err != nil {
			return err
		}
		color.Green("✓ Exercise removed")
		return nil
	},
}

var workoutReorderCmd = &cobra.Command{
	Use:   "reorder <workout-exercise-id>...",
	Short: "Reorder the active workout's exercises",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		active, err := requireActive()
		if err != nil {
			return err
		}
		if err := workoutSvc.ReorderExercises(active.ID, args); err != nil {
			return err
		}
		color.Green("✓ Exercises reordered")
		return nil
	},
}

var workoutCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Complete the active workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		active, err := requireActive()
		if err != nil {
			return err
		}
		if err := workoutSvc.Complete(active.ID); err != nil {
			return err
		}
		color.Green("✓ Workout completed")
		return nil
	},
}

var workoutDiscardCmd = &cobra.Command{
	Use:   "discard",
	Short: "Discard the active workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		active, err := requireActive()
		if err != nil {
			return err
		}
		if err := workoutSvc.Discard(active.ID); err != nil {
			return err
		}
		color.Yellow("Workout discarded")
		return nil
	},
}

var workoutContinueCmd = &cobra.Command{
	Use:   "continue <workout-id>",
	Short: "Reopen a completed workout",
	Long: `Reopen a completed workout to keep logging sets.

Fails if another workout is in progress; pass --discard-active to
discard it and continue this one instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if discardActive {
			if err := workoutSvc.DiscardActiveAndReopen(args[0]); err != nil {
				return err
			}
		} else if err := workoutSvc.Reopen(args[0]); err != nil {
			return err
		}
		color.Green("✓ Workout reopened")
		return nil
	},
}

var workoutRepeatCmd = &cobra.Command{
	Use:   "repeat <workout-id>",
	Short: "Start a fresh workout from a past one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := workoutSvc.Repeat(args[0])
		if err != nil {
			return err
		}
		name := ""
		if w.Name != nil {
			name = *w.Name
		}
		color.Green("✓ Started %s", name)
		fmt.Printf("  ID: %s\n", shortID(w.ID))
		return nil
	},
}

var workoutHistoryCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"ls"},
	Short:   "List completed workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		offset := 0
		if historyPage > 1 {
			offset = (historyPage - 1) * historyLimit
		}

		if historyGrouped {
			groups, err := workoutSvc.GroupedHistory(historyLimit, offset)
			if err != nil {
				return err
			}
			if len(groups) == 0 {
				fmt.Println("No completed workouts.")
				return nil
			}
			faint := color.New(color.Faint)
			for _, g := range groups {
				fmt.Printf("%s %s%s\n",
					g.DisplayName,
					faint.Sprintf("(%s)", g.WorkoutTypeName),
					faint.Sprintf(" x%d", len(g.Sessions)))
			}
			return nil
		}

		summaries, err := workoutSvc.Summaries(historyLimit, offset)
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Println("No completed workouts.")
			return nil
		}

		units := settingsSvc.Units()
		faint := color.New(color.Faint)
		for _, s := range summaries {
			name := s.WorkoutTypeName
			if s.Name != nil && *s.Name != "" {
				name = *s.Name
			}
			fmt.Printf("%s %s %s  %d exercises, %d sets, %s\n",
				faint.Sprint(shortID(s.ID)),
				faint.Sprint(s.StartedAt.Format("2006-01-02 15:04")),
				name,
				s.ExerciseCount,
				s.SetCount,
				services.FormatWeight(s.TotalVolume, units))
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <workout-id>",
	Short: "Show a workout with exercises and sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printWorkout(args[0])
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <workout-id>...",
	Short: "Permanently delete workouts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !deleteYes {
			return fmt.Errorf("deletion is permanent; re-run with --yes to confirm")
		}
		if err := workoutSvc.DeleteMany(args); err != nil {
			return err
		}
		color.Yellow("Deleted %d workout(s)", len(args))
		return nil
	},
}

func requireActive() (*domain.Workout, error) {
	active, err := workoutSvc.Active()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, fmt.Errorf("no workout in progress; start one with 'vitalis workout start'")
	}
	return active, nil
}

// resolveWorkoutType accepts an ID, an exact name, or a unique name prefix.
func resolveWorkoutType(arg string) (*domain.WorkoutType, error) {
	wt, err := db.GetWorkoutType(arg)
	if err != nil {
		return nil, err
	}
	if wt != nil {
		return wt, nil
	}

	wt, err = db.GetWorkoutTypeByName(arg)
	if err != nil {
		return nil, err
	}
	if wt != nil {
		return wt, nil
	}

	types, err := db.ListWorkoutTypes()
	if err != nil {
		return nil, err
	}
	var match *domain.WorkoutType
	for _, t := range types {
		if strings.HasPrefix(strings.ToLower(t.Name), strings.ToLower(arg)) {
			if match != nil {
				return nil, fmt.Errorf("workout type %q is ambiguous", arg)
			}
			match = t
		}
	}
	if match == nil {
		return nil, fmt.Errorf("unknown workout type: %s", arg)
	}
	return match, nil
}

func buildSetInput() (domain.SetInput, error) {
	var input domain.SetInput
	units := settingsSvc.Units()

	if logWeight != "" {
		kg, err := services.ParseWeightInput(logWeight, units)
		if err != nil {
			return input, err
		}
		input.WeightKg = &kg
	}
	if logReps > 0 {
		input.Reps = &logReps
	}
	if logDuration > 0 {
		input.DurationSeconds = &logDuration
	}
	if logDistance != "" {
		m, err := services.ParseDistanceInput(logDistance, units)
		if err != nil {
			return input, err
		}
		input.DistanceMeters = &m
	}
	return input, nil
}

func printWorkout(id string) error {
	full, err := workoutSvc.Full(id)
	if err != nil {
		return err
	}
	if full == nil {
		return fmt.Errorf("workout not found: %s", id)
	}

	units := settingsSvc.Units()
	faint := color.New(color.Faint)

	name := full.WorkoutType.Name
	if full.Name != nil && *full.Name != "" {
		name = *full.Name
	}
	fmt.Printf("%s %s\n", name, faint.Sprintf("[%s]", full.Status))
	fmt.Printf("  started %s\n", full.StartedAt.Format("2006-01-02 15:04"))
	if full.CompletedAt != nil {
		fmt.Printf("  completed %s\n", full.CompletedAt.Format("2006-01-02 15:04"))
	}

	for _, ex := range full.Exercises {
		fmt.Printf("\n  %s %s  rest %s\n",
			faint.Sprint(shortID(ex.ID)),
			ex.ExerciseName,
			services.FormatDuration(ex.RestSeconds))
		for _, set := range ex.Sets {
			fmt.Printf("    %d. %s\n", set.SetNumber, formatSet(set, units))
		}
	}
	return nil
}

func formatSet(set *domain.WorkoutSet, units domain.UnitSystem) string {
	var parts []string
	if set.WeightKg != nil {
		parts = append(parts, services.FormatWeight(*set.WeightKg, units))
	}
	if set.Reps != nil {
		parts = append(parts, fmt.Sprintf("x%d", *set.Reps))
	}
	if set.DurationSeconds != nil {
		parts = append(parts, services.FormatDuration(*set.DurationSeconds))
	}
	if set.DistanceMeters != nil {
		parts = append(parts, services.FormatDistance(*set.DistanceMeters, units))
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	workoutStartCmd.Flags().StringVarP(&startName, "name", "n", "", "custom workout name")
	workoutAddExerciseCmd.Flags().IntVar(&addRestSeconds, "rest", 0, "rest seconds between sets")

	for _, c := range []*cobra.Command{workoutLogCmd, workoutUpdateSetCmd} {
		c.Flags().StringVarP(&logWeight, "weight", "w", "", "weight in configured units")
		c.Flags().IntVarP(&logReps, "reps", "r", 0, "repetitions")
		c.Flags().IntVarP(&logDuration, "duration", "d", 0, "duration in seconds")
		c.Flags().StringVar(&logDistance, "distance", "", "distance in configured units")
	}

	workoutContinueCmd.Flags().BoolVar(&discardActive, "discard-active", false, "discard the current active workout first")
	workoutHistoryCmd.Flags().IntVarP(&historyLimit, "limit", "l", constants.HistoryPageSize, "results per page")
	workoutHistoryCmd.Flags().IntVarP(&historyPage, "page", "p", 1, "page number")
	workoutHistoryCmd.Flags().BoolVarP(&historyGrouped, "grouped", "g", false, "group repeated workouts")
	workoutDeleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "confirm permanent deletion")

	workoutCmd.AddCommand(
		workoutTypesCmd,
		workoutStartCmd,
		workoutStatusCmd,
		workoutAddExerciseCmd,
		workoutLogCmd,
		workoutUpdateSetCmd,
		workoutRemoveSetCmd,
		workoutRemoveExerciseCmd,
		workoutReorderCmd,
		workoutCompleteCmd,
		workoutDiscardCmd,
		workoutContinueCmd,
		workoutRepeatCmd,
		workoutHistoryCmd,
		workoutShowCmd,
		workoutDeleteCmd,
	)
}
