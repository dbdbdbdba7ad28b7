package caltrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alex2003763/caltrack/internal/i18n"
	"github.com/Alex2003763/caltrack/internal/store"
	"github.com/Alex2003763/caltrack/internal/summary"
)

var weekEndDate string

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the seven days ending at a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		end, err := parseDateOrToday(weekEndDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			report, err := summary.ForWeek(st.State(), end)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tr.T("summary.week_of", report.EndDate))
			fmt.Fprintln(out, "DATE\tINTAKE\tEXERCISE\tNET\tP\tC\tF")
			for _, day := range report.Days {
				fmt.Fprintf(out, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
					day.Date, day.IntakeCalories, day.ExerciseCalories, day.NetCalories,
					day.ProteinG, day.CarbsG, day.FatG)
			}
			fmt.Fprintf(out, "%s: %d kcal | P %dg | C %dg | F %dg\n",
				tr.T("summary.net"), report.NetCalories, report.ProteinG, report.CarbsG, report.FatG)
			fmt.Fprintf(out, "%s: %d kcal\n", tr.T("summary.daily_average"), report.AvgNetCalories)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
	weekCmd.Flags().StringVar(&weekEndDate, "end", "", "End date YYYY-MM-DD (default today)")
}
