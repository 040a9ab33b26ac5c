package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vitalis/internal/domain"
	"vitalis/internal/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Units:        %s\n", settingsSvc.Units())
		fmt.Printf("Default rest: %s\n", services.FormatDuration(settingsSvc.DefaultRestSeconds()))
		return nil
	},
}

var settingsUnitsCmd = &cobra.Command{
	Use:   "units <metric|imperial>",
	Short: "Set the display unit system",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := settingsSvc.UpdateUnits(domain.UnitSystem(args[0])); err != nil {
			return err
		}
		color.Green("✓ Units set to %s", args[0])
		return nil
	},
}

var settingsRestCmd = &cobra.Command{
	Use:   "rest <seconds>",
	Short: "Set the default rest time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("rest must be a number of seconds")
		}
		if err := settingsSvc.UpdateDefaultRestSeconds(seconds); err != nil {
			return err
		}
		color.Green("✓ Default rest set to %s", services.FormatDuration(seconds))
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsUnitsCmd, settingsRestCmd)
}
