package store_test

import (
	"testing"

	"github.com/Alex2003763/caltrack/internal/model"
	"github.com/Alex2003763/caltrack/internal/store"
)

func TestDiagnoseCleanState(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	s.AddFood(store.FoodInput{Name: "Yogurt", Calories: 120, Meal: model.MealBreakfast}, "2024-01-01")
	s.AddExercise(store.ExerciseInput{Name: "Walk", DurationMin: 30, Calories: 120}, "2024-01-01")

	report := store.Diagnose(s.State())
	if !report.Clean() {
		t.Fatalf("expected clean report, got %+v", report)
	}
}

func TestDiagnoseFindsHandEditedIssues(t *testing.T) {
	t.Parallel()
	state := model.AppState{
		Logs: map[string]model.DailyLog{
			"2024-01-01": {
				Food: []model.FoodEntry{
					{ID: "dup", Name: "A", Calories: -5, Meal: "brunch"},
					{ID: "dup", Name: "B", Calories: 100, Meal: model.MealLunch},
				},
			},
		},
		ChatHistory: []model.ChatMessage{{Role: "system", Text: "x"}},
	}

	report := store.Diagnose(state)
	if report.DuplicateEntryIDs != 1 {
		t.Fatalf("expected 1 duplicate id, got %d", report.DuplicateEntryIDs)
	}
	if report.NegativeValues != 1 {
		t.Fatalf("expected 1 negative value, got %d", report.NegativeValues)
	}
	if report.InvalidMeals != 1 {
		t.Fatalf("expected 1 invalid meal, got %d", report.InvalidMeals)
	}
	if report.InvalidChatRoles != 1 {
		t.Fatalf("expected 1 invalid chat role, got %d", report.InvalidChatRoles)
	}
}
