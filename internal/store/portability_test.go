package store_test

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Alex2003763/caltrack/internal/model"
	"github.com/Alex2003763/caltrack/internal/store"
)

func TestImportDataRejectsMissingLogs(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	s.AddFood(store.FoodInput{Name: "Pasta", Calories: 400, Meal: model.MealDinner}, "2024-01-05")
	before := s.State()

	if s.ImportData([]byte(`{"dailyGoal": 1500}`)) {
		t.Fatalf("expected import without logs to fail")
	}
	if s.ImportData([]byte(`{"logs": {}, "dailyGoal": "nope"}`)) {
		t.Fatalf("expected import with non-numeric dailyGoal to fail")
	}
	if s.ImportData([]byte(`{"logs": {}, "dailyGoal": 1600.5}`)) {
		t.Fatalf("expected import with fractional dailyGoal to fail")
	}
	if s.ImportData([]byte(`not json at all`)) {
		t.Fatalf("expected unparseable import to fail")
	}

	if !reflect.DeepEqual(before, s.State()) {
		t.Fatalf("expected state unchanged after failed imports")
	}
}

func TestImportDataReplacesEveryField(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	s := store.Open(sqldb, zap.NewNop())
	s.SetChatHistory([]model.ChatMessage{{Role: model.RoleUser, Text: "old"}})
	age := 50
	s.UpdateUserProfile(model.UserProfile{Age: &age})

	payload := `{
		"dailyGoal": 1600,
		"logs": {"2024-01-01": {"food": [{"id": "f1", "name": "Apple", "calories": 95, "protein": 0, "carbs": 25, "fat": 0, "meal": "snack"}], "exercise": []}},
		"chatHistory": [{"role": "user", "text": "new"}],
		"userProfile": {"age": 25, "activityLevel": "active"}
	}`
	if !s.ImportData([]byte(payload)) {
		t.Fatalf("expected well-formed import to succeed")
	}

	state := s.State()
	if state.DailyGoal != 1600 {
		t.Fatalf("expected imported daily goal 1600, got %d", state.DailyGoal)
	}
	if len(state.ChatHistory) != 1 || state.ChatHistory[0].Text != "new" {
		t.Fatalf("expected chat history replaced, got %+v", state.ChatHistory)
	}
	if state.UserProfile.Age == nil || *state.UserProfile.Age != 25 {
		t.Fatalf("expected profile replaced, got %+v", state.UserProfile)
	}
	if len(s.LogForDate("2024-01-01").Food) != 1 {
		t.Fatalf("expected imported log entry")
	}

	// The import must have been written through to storage.
	reopened := store.Open(sqldb, zap.NewNop())
	if reopened.State().DailyGoal != 1600 {
		t.Fatalf("expected import persisted, got goal %d", reopened.State().DailyGoal)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	s.SetDailyGoal(2200)
	s.AddFood(store.FoodInput{Name: "Salmon", Calories: 350, ProteinG: 34, FatG: 20, Meal: model.MealDinner}, "2024-04-01")
	s.AddExercise(store.ExerciseInput{Name: "Cycling", DurationMin: 45, Calories: 400}, "2024-04-01")

	raw, err := s.ExportJSON()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var exported map[string]json.RawMessage
	if err := json.Unmarshal(raw, &exported); err != nil {
		t.Fatalf("exported blob is not valid JSON: %v", err)
	}

	other := newTestStore(t)
	if !other.ImportData(raw) {
		t.Fatalf("expected exported blob to import cleanly")
	}
	if !reflect.DeepEqual(s.State(), other.State()) {
		t.Fatalf("expected round-tripped state to match")
	}
}

func TestExportFilenameUsesDate(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	got := store.ExportFilename(now)
	want := "caltrack-backup-2024-06-15.json"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
