package caltrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alex2003763/caltrack/internal/i18n"
	"github.com/Alex2003763/caltrack/internal/model"
	"github.com/Alex2003763/caltrack/internal/store"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage the daily calorie and macro goals",
}

var (
	goalCalories int
	goalProtein  int
	goalCarbs    int
	goalFat      int
)

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the daily calorie goal and/or macro goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		caloriesChanged := cmd.Flags().Changed("calories")
		macrosChanged := cmd.Flags().Changed("protein") || cmd.Flags().Changed("carbs") || cmd.Flags().Changed("fat")
		if !caloriesChanged && !macrosChanged {
			return fmt.Errorf("set at least one of --calories, --protein, --carbs, --fat")
		}
		if caloriesChanged {
			if err := validateNonNegativeInt("calories", goalCalories); err != nil {
				return err
			}
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			if caloriesChanged {
				st.SetDailyGoal(goalCalories)
				fmt.Fprintln(cmd.OutOrStdout(), tr.T("goal.updated", goalCalories))
			}
			if macrosChanged {
				goals := st.State().MacronutrientGoals
				if cmd.Flags().Changed("protein") {
					if err := validateNonNegativeInt("protein", goalProtein); err != nil {
						return err
					}
					goals.ProteinG = goalProtein
				}
				if cmd.Flags().Changed("carbs") {
					if err := validateNonNegativeInt("carbs", goalCarbs); err != nil {
						return err
					}
					goals.CarbsG = goalCarbs
				}
				if cmd.Flags().Changed("fat") {
					if err := validateNonNegativeInt("fat", goalFat); err != nil {
						return err
					}
					goals.FatG = goalFat
				}
				st.SetMacronutrientGoals(goals)
				fmt.Fprintln(cmd.OutOrStdout(), tr.T("goal.macros_updated", goals.ProteinG, goals.CarbsG, goals.FatG))
			}
			return nil
		})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			state := st.State()
			printGoals(cmd, state.DailyGoal, state.MacronutrientGoals, tr)
			return nil
		})
	},
}

func printGoals(cmd *cobra.Command, dailyGoal int, goals model.MacronutrientGoals, tr *i18n.Translator) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d kcal | P %dg | C %dg | F %dg\n",
		tr.T("summary.goal"), dailyGoal, goals.ProteinG, goals.CarbsG, goals.FatG)
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd, goalShowCmd)

	goalSetCmd.Flags().IntVar(&goalCalories, "calories", 0, "Daily calorie goal (kcal)")
	goalSetCmd.Flags().IntVar(&goalProtein, "protein", 0, "Protein goal (g)")
	goalSetCmd.Flags().IntVar(&goalCarbs, "carbs", 0, "Carbs goal (g)")
	goalSetCmd.Flags().IntVar(&goalFat, "fat", 0, "Fat goal (g)")
}
