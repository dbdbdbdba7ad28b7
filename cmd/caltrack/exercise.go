package caltrack

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alex2003763/caltrack/internal/i18n"
	"github.com/Alex2003763/caltrack/internal/store"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Manage exercise entries",
}

var (
	exerciseName     string
	exerciseDuration int
	exerciseCalories int
	exerciseDate     string
)

var exerciseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an exercise entry to a day's log",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(exerciseName)
		if name == "" {
			return fmt.Errorf("exercise name is required")
		}
		if err := validateNonNegativeInt("duration", exerciseDuration); err != nil {
			return err
		}
		if err := validateNonNegativeInt("calories", exerciseCalories); err != nil {
			return err
		}
		date, err := parseDateOrToday(exerciseDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			entry := st.AddExercise(store.ExerciseInput{
				Name:        name,
				DurationMin: exerciseDuration,
				Calories:    exerciseCalories,
			}, date)
			fmt.Fprintln(cmd.OutOrStdout(), tr.T("exercise.added", entry.Name, entry.Calories, date))
			return nil
		})
	},
}

var exerciseListDate string

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a day's exercise entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(exerciseListDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			log := st.LogForDate(date)
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tDURATION_MIN\tKCAL_BURNED")
			for _, entry := range log.Exercise {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%d\n",
					entry.ID, entry.Name, entry.DurationMin, entry.Calories)
			}
			return nil
		})
	},
}

var (
	exerciseRemoveID   string
	exerciseRemoveDate string
)

var exerciseRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove an exercise entry by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		id := strings.TrimSpace(exerciseRemoveID)
		if id == "" {
			return fmt.Errorf("--id is required")
		}
		date, err := parseDateOrToday(exerciseRemoveDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			if !st.RemoveExercise(id, date) {
				fmt.Fprintln(cmd.OutOrStdout(), tr.T("exercise.not_found", id, date))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), tr.T("exercise.removed", id, date))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(exerciseAddCmd, exerciseListCmd, exerciseRemoveCmd)

	exerciseAddCmd.Flags().StringVar(&exerciseName, "name", "", "Exercise name")
	exerciseAddCmd.Flags().IntVar(&exerciseDuration, "duration", 0, "Duration (minutes)")
	exerciseAddCmd.Flags().IntVar(&exerciseCalories, "calories", 0, "Calories burned (kcal)")
	exerciseAddCmd.Flags().StringVar(&exerciseDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = exerciseAddCmd.MarkFlagRequired("name")
	_ = exerciseAddCmd.MarkFlagRequired("calories")

	exerciseListCmd.Flags().StringVar(&exerciseListDate, "date", "", "Date YYYY-MM-DD (default today)")

	exerciseRemoveCmd.Flags().StringVar(&exerciseRemoveID, "id", "", "Entry id")
	exerciseRemoveCmd.Flags().StringVar(&exerciseRemoveDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = exerciseRemoveCmd.MarkFlagRequired("id")
}
