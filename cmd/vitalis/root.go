package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vitalis/internal/config"
	"vitalis/internal/logger"
	"vitalis/internal/services"
	"vitalis/internal/store"
)

var (
	db          *store.DB
	workoutSvc  *services.WorkoutService
	exerciseSvc *services.ExerciseService
	progressSvc *services.ProgressService
	settingsSvc *services.SettingsService

	flagDBPath string
)

var rootCmd = &cobra.Command{
	Use:   "vitalis",
	Short: "Personal workout tracker",
	Long: `Vitalis tracks workout sessions against a local SQLite database.

WORKFLOW:

  $ vitalis workout start strength          # Begin a session
  $ vitalis workout add-exercise <id>       # Add an exercise to it
  $ vitalis workout log <id> --weight 80 --reps 5
  $ vitalis workout complete                # Finish the session

  $ vitalis exercise list                   # Browse the catalog
  $ vitalis progress                        # Streak and weekly stats
  $ vitalis settings units imperial         # Switch display units

At most one workout is in progress at a time. History, records and
charts only count completed workouts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg := config.Load()
		if flagDBPath != "" {
			cfg.DBPath = flagDBPath
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

		var err error
		db, err = store.NewSQLiteDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}

		workoutSvc = services.NewWorkoutService(db, log)
		exerciseSvc = services.NewExerciseService(db, log)
		progressSvc = services.NewProgressService(db, log)
		settingsSvc = services.NewSettingsService(store.NewSettingsRepo(db), log)
		return settingsSvc.Load()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "path to the database file")
	rootCmd.AddCommand(workoutCmd)
	rootCmd.AddCommand(exerciseCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(settingsCmd)
}
