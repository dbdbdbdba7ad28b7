package summary_test

import (
	"testing"

	"github.com/Alex2003763/caltrack/internal/model"
	"github.com/Alex2003763/caltrack/internal/summary"
)

func sampleState() model.AppState {
	return model.AppState{
		DailyGoal:          2000,
		MacronutrientGoals: model.MacronutrientGoals{ProteinG: 150, CarbsG: 250, FatG: 60},
		Logs: map[string]model.DailyLog{
			"2024-05-01": {
				Food: []model.FoodEntry{
					{ID: "a", Name: "Oats", Calories: 380, ProteinG: 13, CarbsG: 67, FatG: 7, Meal: model.MealBreakfast},
					{ID: "b", Name: "Chicken", Calories: 420, ProteinG: 40, CarbsG: 5, FatG: 18, Meal: model.MealLunch},
				},
				Exercise: []model.ExerciseEntry{
					{ID: "c", Name: "Running", DurationMin: 30, Calories: 300},
				},
			},
			"2024-05-02": {
				Food: []model.FoodEntry{
					{ID: "d", Name: "Rice", Calories: 200, CarbsG: 45, Meal: model.MealDinner},
				},
			},
		},
	}
}

func TestForDateTotals(t *testing.T) {
	t.Parallel()
	status := summary.ForDate(sampleState(), "2024-05-01")

	if status.IntakeCalories != 800 {
		t.Fatalf("expected intake 800, got %d", status.IntakeCalories)
	}
	if status.ExerciseCalories != 300 {
		t.Fatalf("expected exercise 300, got %d", status.ExerciseCalories)
	}
	if status.NetCalories != 500 {
		t.Fatalf("expected net 500, got %d", status.NetCalories)
	}
	if status.ProteinG != 53 || status.CarbsG != 72 || status.FatG != 25 {
		t.Fatalf("unexpected macros %d/%d/%d", status.ProteinG, status.CarbsG, status.FatG)
	}
	if status.RemainingCalories != 1500 {
		t.Fatalf("expected remaining 1500, got %d", status.RemainingCalories)
	}
}

func TestForDateEmptyDay(t *testing.T) {
	t.Parallel()
	status := summary.ForDate(sampleState(), "2024-05-09")

	if status.IntakeCalories != 0 || status.NetCalories != 0 {
		t.Fatalf("expected zero totals, got %+v", status)
	}
	if status.RemainingCalories != 2000 {
		t.Fatalf("expected full remaining budget, got %d", status.RemainingCalories)
	}
}

func TestForWeekAggregates(t *testing.T) {
	t.Parallel()
	report, err := summary.ForWeek(sampleState(), "2024-05-02")
	if err != nil {
		t.Fatalf("week report: %v", err)
	}

	if len(report.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(report.Days))
	}
	if report.Days[0].Date != "2024-04-26" || report.Days[6].Date != "2024-05-02" {
		t.Fatalf("expected oldest-first window, got %s..%s", report.Days[0].Date, report.Days[6].Date)
	}
	if report.IntakeCalories != 1000 {
		t.Fatalf("expected weekly intake 1000, got %d", report.IntakeCalories)
	}
	if report.NetCalories != 700 {
		t.Fatalf("expected weekly net 700, got %d", report.NetCalories)
	}
	if report.AvgNetCalories != 100 {
		t.Fatalf("expected daily average 100, got %d", report.AvgNetCalories)
	}
}

func TestForWeekRejectsBadDate(t *testing.T) {
	t.Parallel()
	if _, err := summary.ForWeek(sampleState(), "05/02/2024"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}
