package caltrack

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alex2003763/caltrack/internal/i18n"
	"github.com/Alex2003763/caltrack/internal/store"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage food entries",
}

var (
	foodName     string
	foodCalories int
	foodProtein  int
	foodCarbs    int
	foodFat      int
	foodMeal     string
	foodDate     string
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food entry to a day's log",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(foodName)
		if name == "" {
			return fmt.Errorf("food name is required")
		}
		if err := validateNonNegativeInt("calories", foodCalories); err != nil {
			return err
		}
		if err := validateNonNegativeInt("protein", foodProtein); err != nil {
			return err
		}
		if err := validateNonNegativeInt("carbs", foodCarbs); err != nil {
			return err
		}
		if err := validateNonNegativeInt("fat", foodFat); err != nil {
			return err
		}
		meal, err := parseMeal(foodMeal)
		if err != nil {
			return err
		}
		date, err := parseDateOrToday(foodDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			entry := st.AddFood(store.FoodInput{
				Name:     name,
				Calories: foodCalories,
				ProteinG: foodProtein,
				CarbsG:   foodCarbs,
				FatG:     foodFat,
				Meal:     meal,
			}, date)
			fmt.Fprintln(cmd.OutOrStdout(), tr.T("food.added", entry.Name, entry.Calories, entry.Meal, date))
			return nil
		})
	},
}

var foodListDate string

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a day's food entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(foodListDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			log := st.LogForDate(date)
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tMEAL\tNAME\tKCAL\tP\tC\tF")
			for _, entry := range log.Food {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
					entry.ID, entry.Meal, entry.Name, entry.Calories, entry.ProteinG, entry.CarbsG, entry.FatG)
			}
			return nil
		})
	},
}

var (
	foodRemoveID   string
	foodRemoveDate string
)

var foodRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a food entry by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		id := strings.TrimSpace(foodRemoveID)
		if id == "" {
			return fmt.Errorf("--id is required")
		}
		date, err := parseDateOrToday(foodRemoveDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			if !st.RemoveFood(id, date) {
				fmt.Fprintln(cmd.OutOrStdout(), tr.T("food.not_found", id, date))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), tr.T("food.removed", id, date))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodListCmd, foodRemoveCmd)

	foodAddCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodAddCmd.Flags().IntVar(&foodCalories, "calories", 0, "Calories (kcal)")
	foodAddCmd.Flags().IntVar(&foodProtein, "protein", 0, "Protein (g)")
	foodAddCmd.Flags().IntVar(&foodCarbs, "carbs", 0, "Carbs (g)")
	foodAddCmd.Flags().IntVar(&foodFat, "fat", 0, "Fat (g)")
	foodAddCmd.Flags().StringVar(&foodMeal, "meal", "", "Meal (breakfast, lunch, dinner, snack)")
	foodAddCmd.Flags().StringVar(&foodDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = foodAddCmd.MarkFlagRequired("name")
	_ = foodAddCmd.MarkFlagRequired("calories")
	_ = foodAddCmd.MarkFlagRequired("meal")

	foodListCmd.Flags().StringVar(&foodListDate, "date", "", "Date YYYY-MM-DD (default today)")

	foodRemoveCmd.Flags().StringVar(&foodRemoveID, "id", "", "Entry id")
	foodRemoveCmd.Flags().StringVar(&foodRemoveDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = foodRemoveCmd.MarkFlagRequired("id")
}
