package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vitalis/internal/domain"
	"vitalis/internal/services"
)

var (
	exCategory     string
	exMuscles      []string
	exEquipment    string
	exInstructions string
	exRestSeconds  int
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Browse and manage the exercise catalog",
	Long: `Browse the seeded exercise catalog and manage custom exercises.

  vitalis exercise list                     # Full catalog
  vitalis exercise list --category cardio   # One category
  vitalis exercise search bench             # Name search
  vitalis exercise add "Zercher Squat" --category strength --muscles legs

Exercise names are unique regardless of case. Deleting an exercise only
archives it; past workouts keep their history.`,
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			exercises []*domain.Exercise
			err       error
		)
		if exCategory != "" {
			exercises, err = exerciseSvc.ListByCategory(domain.ExerciseCategory(exCategory))
		} else {
			exercises, err = exerciseSvc.List()
		}
		if err != nil {
			return err
		}
		printExercises(exercises)
		return nil
	},
}

var exerciseSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search exercises by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := exerciseSvc.Search(args[0])
		if err != nil {
			return err
		}
		printExercises(exercises)
		return nil
	},
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a custom exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := services.ExerciseInput{
			Name:     args[0],
			Category: domain.ExerciseCategory(exCategory),
		}
		for _, m := range exMuscles {
			input.PrimaryMuscles = append(input.PrimaryMuscles, domain.MuscleGroup(m))
		}
		if exEquipment != "" {
			input.Equipment = domain.Equipment(exEquipment)
		}
		if exInstructions != "" {
			input.Instructions = &exInstructions
		}
		if exRestSeconds > 0 {
			input.RestSeconds = &exRestSeconds
		}

		e, err := exerciseSvc.Create(input)
		if err != nil {
			return err
		}

		color.Green("✓ Added %s", e.Name)
		fmt.Printf("  ID: %s\n", shortID(e.ID))
		return nil
	},
}

var exerciseRestCmd = &cobra.Command{
	Use:   "rest <exercise-id> <seconds>",
	Short: "Set an exercise's default rest time",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var seconds int
		if _, err := fmt.Sscanf(args[1], "%d", &seconds); err != nil || seconds < 1 {
			return fmt.Errorf("rest must be a positive number of seconds")
		}
		if err := exerciseSvc.UpdateDefaultRestSeconds(args[0], &seconds); err != nil {
			return err
		}
		color.Green("✓ Rest updated")
		return nil
	},
}

var exerciseArchiveCmd = &cobra.Command{
	Use:   "archive <exercise-id>",
	Short: "Archive an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := exerciseSvc.Archive(args[0]); err != nil {
			return err
		}
		color.Yellow("Exercise archived")
		return nil
	},
}

func printExercises(exercises []*domain.Exercise) {
	if len(exercises) == 0 {
		fmt.Println("No exercises found.")
		return
	}
	faint := color.New(color.Faint)
	for _, e := range exercises {
		muscles := make([]string, len(e.PrimaryMuscles))
		for i, m := range e.PrimaryMuscles {
			muscles[i] = string(m)
		}
		fmt.Printf("%s %-30s %s %s\n",
			faint.Sprint(shortID(e.ID)),
			e.Name,
			faint.Sprintf("%-12s", e.Category),
			faint.Sprint(strings.Join(muscles, ", ")))
	}
}

func init() {
	exerciseListCmd.Flags().StringVarP(&exCategory, "category", "c", "", "filter by category (strength|cardio|flexibility)")
	exerciseAddCmd.Flags().StringVarP(&exCategory, "category", "c", "strength", "exercise category")
	exerciseAddCmd.Flags().StringSliceVarP(&exMuscles, "muscles", "m", nil, "primary muscle groups")
	exerciseAddCmd.Flags().StringVarP(&exEquipment, "equipment", "e", "", "equipment used")
	exerciseAddCmd.Flags().StringVarP(&exInstructions, "instructions", "i", "", "how to perform the exercise")
	exerciseAddCmd.Flags().IntVar(&exRestSeconds, "rest", 0, "default rest seconds")

	exerciseCmd.AddCommand(
		exerciseListCmd,
		exerciseSearchCmd,
		exerciseAddCmd,
		exerciseRestCmd,
		exerciseArchiveCmd,
	)
}
