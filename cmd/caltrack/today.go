package caltrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alex2003763/caltrack/internal/i18n"
	"github.com/Alex2003763/caltrack/internal/store"
	"github.com/Alex2003763/caltrack/internal/summary"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show a day's intake, exercise, and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(todayDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			status := summary.ForDate(st.State(), date)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", tr.T("summary.date"), status.Date)
			fmt.Fprintf(out, "%s: %d kcal\n", tr.T("summary.intake"), status.IntakeCalories)
			fmt.Fprintf(out, "%s: %d kcal\n", tr.T("summary.exercise"), status.ExerciseCalories)
			fmt.Fprintf(out, "%s: %d kcal\n", tr.T("summary.net"), status.NetCalories)
			fmt.Fprintf(out, "%s: P %dg | C %dg | F %dg\n", tr.T("summary.macros"), status.ProteinG, status.CarbsG, status.FatG)
			fmt.Fprintf(out, "%s: %d kcal | P %dg | C %dg | F %dg\n", tr.T("summary.goal"), status.GoalCalories, status.GoalProteinG, status.GoalCarbsG, status.GoalFatG)
			fmt.Fprintf(out, "%s: %d kcal | P %dg | C %dg | F %dg\n", tr.T("summary.remaining"), status.RemainingCalories, status.RemainingProteinG, status.RemainingCarbsG, status.RemainingFatG)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
