package caltrack

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alex2003763/caltrack/internal/i18n"
	"github.com/Alex2003763/caltrack/internal/model"
	"github.com/Alex2003763/caltrack/internal/store"
	"github.com/Alex2003763/caltrack/internal/summary"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile",
}

var (
	profileAge      int
	profileWeight   float64
	profileHeight   float64
	profileSex      string
	profileActivity string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields (only given flags change)",
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch model.UserProfile
		changed := false
		if cmd.Flags().Changed("age") {
			if profileAge <= 0 {
				return fmt.Errorf("age must be > 0")
			}
			age := profileAge
			patch.Age = &age
			changed = true
		}
		if cmd.Flags().Changed("weight") {
			if profileWeight <= 0 {
				return fmt.Errorf("weight must be > 0")
			}
			weight := profileWeight
			patch.WeightKg = &weight
			changed = true
		}
		if cmd.Flags().Changed("height") {
			if profileHeight <= 0 {
				return fmt.Errorf("height must be > 0")
			}
			height := profileHeight
			patch.HeightCm = &height
			changed = true
		}
		if cmd.Flags().Changed("sex") {
			sex := strings.ToLower(strings.TrimSpace(profileSex))
			if sex != model.SexMale && sex != model.SexFemale {
				return fmt.Errorf("invalid --sex %q (use male or female)", profileSex)
			}
			patch.Sex = &sex
			changed = true
		}
		if cmd.Flags().Changed("activity") {
			level := strings.ToLower(strings.TrimSpace(profileActivity))
			switch level {
			case model.ActivitySedentary, model.ActivityLight, model.ActivityModerate,
				model.ActivityActive, model.ActivityVeryActive:
			default:
				return fmt.Errorf("invalid --activity %q (use sedentary, light, moderate, active, or very_active)", profileActivity)
			}
			patch.ActivityLevel = level
			changed = true
		}
		if !changed {
			return fmt.Errorf("set at least one of --age, --weight, --height, --sex, --activity")
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			st.UpdateUserProfile(patch)
			fmt.Fprintln(cmd.OutOrStdout(), tr.T("profile.updated"))
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile and recommended calorie budget",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			profile := st.State().UserProfile
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Age: %s\n", formatOptionalInt(profile.Age))
			fmt.Fprintf(out, "Weight: %s kg\n", formatOptionalFloat(profile.WeightKg))
			fmt.Fprintf(out, "Height: %s cm\n", formatOptionalFloat(profile.HeightCm))
			fmt.Fprintf(out, "Sex: %s\n", formatOptionalString(profile.Sex))
			fmt.Fprintf(out, "Activity: %s\n", profile.ActivityLevel)
			budget, ok := summary.RecommendedBudget(profile)
			if !ok {
				fmt.Fprintln(out, tr.T("profile.incomplete"))
				return nil
			}
			fmt.Fprintln(out, tr.T("profile.budget", budget.Kcal, budget.BMR, budget.TDEE))
			return nil
		})
	},
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func formatOptionalString(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age (years)")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight (kg)")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height (cm)")
	profileSetCmd.Flags().StringVar(&profileSex, "sex", "", "Sex (male or female)")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "Activity level (sedentary, light, moderate, active, very_active)")
}
