package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vitalis/internal/constants"
	"vitalis/internal/services"
)

var progressWeeks int

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show streak and training stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		overview, err := progressSvc.Dashboard()
		if err != nil {
			return err
		}

		units := settingsSvc.Units()
		if overview.Streak > 0 {
			color.Green("🔥 %d day streak", overview.Streak)
		} else {
			fmt.Println("No active streak.")
		}
		fmt.Printf("This week: %d workouts, %s volume\n",
			overview.Week.Workouts, services.FormatWeight(overview.Week.Volume, units))
		fmt.Printf("Today:     %d workouts, %s volume\n",
			overview.Today.Workouts, services.FormatWeight(overview.Today.Volume, units))
		return nil
	},
}

var progressRecordsCmd = &cobra.Command{
	Use:   "records <exercise-id>",
	Short: "Show personal records for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pr, err := progressSvc.PersonalRecords(args[0])
		if err != nil {
			return err
		}

		units := settingsSvc.Units()
		if pr.MaxWeight == nil && pr.MaxReps == nil {
			fmt.Println("No completed history for this exercise.")
			return nil
		}
		if pr.MaxWeight != nil {
			fmt.Printf("Max weight:    %s\n", services.FormatWeight(*pr.MaxWeight, units))
		}
		if pr.MaxReps != nil {
			fmt.Printf("Max reps:      %d\n", *pr.MaxReps)
		}
		if pr.Estimated1RM != nil {
			fmt.Printf("Estimated 1RM: %s\n", services.FormatWeight(*pr.Estimated1RM, units))
		}
		return nil
	},
}

var progressVolumeCmd = &cobra.Command{
	Use:   "volume <exercise-id>",
	Short: "Show weekly training volume for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := progressSvc.VolumeOverTime(args[0], progressWeeks)
		if err != nil {
			return err
		}
		if len(points) == 0 {
			fmt.Println("No volume recorded in this window.")
			return nil
		}

		units := settingsSvc.Units()
		for _, p := range points {
			fmt.Printf("%s  %s\n", p.Week, services.FormatWeight(p.Volume, units))
		}
		return nil
	},
}

var progressFrequencyCmd = &cobra.Command{
	Use:   "frequency",
	Short: "Show workouts per week",
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := progressSvc.WorkoutFrequency(progressWeeks)
		if err != nil {
			return err
		}
		if len(points) == 0 {
			fmt.Println("No workouts in this window.")
			return nil
		}
		for _, p := range points {
			fmt.Printf("%s  %d\n", p.Week, p.Count)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{progressVolumeCmd, progressFrequencyCmd} {
		c.Flags().IntVarP(&progressWeeks, "weeks", "w", constants.DefaultWeeks, "trailing window in weeks")
	}

	progressCmd.AddCommand(
		progressRecordsCmd,
		progressVolumeCmd,
		progressFrequencyCmd,
	)
}
