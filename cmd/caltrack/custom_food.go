package caltrack

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alex2003763/caltrack/internal/i18n"
	"github.com/Alex2003763/caltrack/internal/model"
	"github.com/Alex2003763/caltrack/internal/store"
)

var customFoodCmd = &cobra.Command{
	Use:   "custom-food",
	Short: "Manage reusable food templates",
}

var (
	customFoodName     string
	customFoodCalories int
	customFoodProtein  int
	customFoodCarbs    int
	customFoodFat      int
)

var customFoodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a food template for reuse",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(customFoodName)
		if name == "" {
			return fmt.Errorf("custom food name is required")
		}
		if err := validateNonNegativeInt("calories", customFoodCalories); err != nil {
			return err
		}
		if err := validateNonNegativeInt("protein", customFoodProtein); err != nil {
			return err
		}
		if err := validateNonNegativeInt("carbs", customFoodCarbs); err != nil {
			return err
		}
		if err := validateNonNegativeInt("fat", customFoodFat); err != nil {
			return err
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			st.AddCustomFood(model.CustomFood{
				Name:     name,
				Calories: customFoodCalories,
				ProteinG: customFoodProtein,
				CarbsG:   customFoodCarbs,
				FatG:     customFoodFat,
			})
			fmt.Fprintln(cmd.OutOrStdout(), tr.T("custom_food.added", name))
			return nil
		})
	},
}

var customFoodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved food templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			fmt.Fprintln(cmd.OutOrStdout(), "NAME\tKCAL\tP\tC\tF")
			for _, food := range st.State().CustomFoods {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%d\t%d\t%d\n",
					food.Name, food.Calories, food.ProteinG, food.CarbsG, food.FatG)
			}
			return nil
		})
	},
}

var customFoodRemoveName string

var customFoodRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a saved food template",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(customFoodRemoveName)
		if name == "" {
			return fmt.Errorf("--name is required")
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			if !st.RemoveCustomFood(name) {
				fmt.Fprintln(cmd.OutOrStdout(), tr.T("custom_food.not_found", name))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), tr.T("custom_food.removed", name))
			return nil
		})
	},
}

var (
	customFoodLogName string
	customFoodLogMeal string
	customFoodLogDate string
)

var customFoodLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a saved template as a food entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(customFoodLogName)
		if name == "" {
			return fmt.Errorf("--name is required")
		}
		meal, err := parseMeal(customFoodLogMeal)
		if err != nil {
			return err
		}
		date, err := parseDateOrToday(customFoodLogDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			var template *model.CustomFood
			for _, food := range st.State().CustomFoods {
				if food.Name == name {
					f := food
					template = &f
					break
				}
			}
			if template == nil {
				fmt.Fprintln(cmd.OutOrStdout(), tr.T("custom_food.not_found", name))
				return nil
			}
			st.AddFood(store.FoodInput{
				Name:     template.Name,
				Calories: template.Calories,
				ProteinG: template.ProteinG,
				CarbsG:   template.CarbsG,
				FatG:     template.FatG,
				Meal:     meal,
			}, date)
			fmt.Fprintln(cmd.OutOrStdout(), tr.T("custom_food.logged", name, meal, date))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(customFoodCmd)
	customFoodCmd.AddCommand(customFoodAddCmd, customFoodListCmd, customFoodRemoveCmd, customFoodLogCmd)

	customFoodAddCmd.Flags().StringVar(&customFoodName, "name", "", "Template name")
	customFoodAddCmd.Flags().IntVar(&customFoodCalories, "calories", 0, "Calories (kcal)")
	customFoodAddCmd.Flags().IntVar(&customFoodProtein, "protein", 0, "Protein (g)")
	customFoodAddCmd.Flags().IntVar(&customFoodCarbs, "carbs", 0, "Carbs (g)")
	customFoodAddCmd.Flags().IntVar(&customFoodFat, "fat", 0, "Fat (g)")
	_ = customFoodAddCmd.MarkFlagRequired("name")
	_ = customFoodAddCmd.MarkFlagRequired("calories")

	customFoodRemoveCmd.Flags().StringVar(&customFoodRemoveName, "name", "", "Template name")
	_ = customFoodRemoveCmd.MarkFlagRequired("name")

	customFoodLogCmd.Flags().StringVar(&customFoodLogName, "name", "", "Template name")
	customFoodLogCmd.Flags().StringVar(&customFoodLogMeal, "meal", "", "Meal (breakfast, lunch, dinner, snack)")
	customFoodLogCmd.Flags().StringVar(&customFoodLogDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = customFoodLogCmd.MarkFlagRequired("name")
	_ = customFoodLogCmd.MarkFlagRequired("meal")
}
