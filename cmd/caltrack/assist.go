package caltrack

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alex2003763/caltrack/internal/assistant"
	"github.com/Alex2003763/caltrack/internal/i18n"
	"github.com/Alex2003763/caltrack/internal/store"
	"github.com/Alex2003763/caltrack/internal/summary"
)

var estimateLog struct {
	enabled bool
	meal    string
	date    string
}

var estimateCmd = &cobra.Command{
	Use:   "estimate <description>",
	Short: "Estimate the nutrition of a food description with the assistant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.TrimSpace(args[0])
		if description == "" {
			return fmt.Errorf("description is required")
		}
		var meal, date string
		if estimateLog.enabled {
			var err error
			if meal, err = parseMeal(estimateLog.meal); err != nil {
				return err
			}
			if date, err = parseDateOrToday(estimateLog.date); err != nil {
				return err
			}
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			client, err := newAssistantClient(cmd, st)
			if err != nil {
				return assistantError(tr, err)
			}
			est, err := client.EstimateCalories(cmd.Context(), description)
			if err != nil {
				return assistantError(tr, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tr.T("assistant.estimated",
				est.Name, est.Calories, est.ProteinG, est.CarbsG, est.FatG))
			if estimateLog.enabled {
				st.AddFood(store.FoodInput{
					Name:     est.Name,
					Calories: est.Calories,
					ProteinG: est.ProteinG,
					CarbsG:   est.CarbsG,
					FatG:     est.FatG,
					Meal:     meal,
				}, date)
				fmt.Fprintln(cmd.OutOrStdout(), tr.T("food.added", est.Name, est.Calories, meal, date))
			}
			return nil
		})
	},
}

var analyzeImagePath string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Identify foods in a photo and estimate their nutrition",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := strings.TrimSpace(analyzeImagePath)
		if path == "" {
			return fmt.Errorf("--image is required")
		}
		imageData, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read image file: %w", err)
		}
		mimeType := mime.TypeByExtension(filepath.Ext(path))
		if !strings.HasPrefix(mimeType, "image/") {
			return fmt.Errorf("unsupported image type %q (use a jpg, png, or webp file)", filepath.Ext(path))
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			client, err := newAssistantClient(cmd, st)
			if err != nil {
				return assistantError(tr, err)
			}
			estimates, err := client.AnalyzeFoodImage(cmd.Context(), imageData, mimeType)
			if err != nil {
				return assistantError(tr, err)
			}
			for _, est := range estimates {
				fmt.Fprintln(cmd.OutOrStdout(), tr.T("assistant.estimated",
					est.Name, est.Calories, est.ProteinG, est.CarbsG, est.FatG))
			}
			return nil
		})
	},
}

func newAssistantClient(cmd *cobra.Command, st *store.Store) (*assistant.Client, error) {
	state := st.State()
	today := summary.ForDate(state, time.Now().Format("2006-01-02"))
	dayContext := fmt.Sprintf(
		"intake %d kcal, exercise %d kcal, net %d kcal against a %d kcal goal; protein %dg/%dg, carbs %dg/%dg, fat %dg/%dg.",
		today.IntakeCalories, today.ExerciseCalories, today.NetCalories, today.GoalCalories,
		today.ProteinG, today.GoalProteinG, today.CarbsG, today.GoalCarbsG, today.FatG, today.GoalFatG)
	return assistant.New(cmd.Context(), assistant.Config{
		APIKey:     resolveAPIKey(state),
		Model:      state.AIModel,
		Language:   state.Language,
		DayContext: dayContext,
		Timeout:    2 * time.Minute,
	})
}

func init() {
	rootCmd.AddCommand(estimateCmd, analyzeCmd)

	estimateCmd.Flags().BoolVar(&estimateLog.enabled, "log", false, "Log the estimate as a food entry")
	estimateCmd.Flags().StringVar(&estimateLog.meal, "meal", "", "Meal for --log (breakfast, lunch, dinner, snack)")
	estimateCmd.Flags().StringVar(&estimateLog.date, "date", "", "Date for --log YYYY-MM-DD (default today)")

	analyzeCmd.Flags().StringVar(&analyzeImagePath, "image", "", "Path to a food photo")
	_ = analyzeCmd.MarkFlagRequired("image")
}
