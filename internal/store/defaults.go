package store

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Alex2003763/caltrack/internal/i18n"
	"github.com/Alex2003763/caltrack/internal/model"
)

const (
	// storageKey is the fixed key the whole AppState blob lives under.
	storageKey = "app_state"

	defaultDailyGoal = 2000
	defaultAIModel   = "gemini-2.5-flash"
)

var defaultMacroGoals = model.MacronutrientGoals{ProteinG: 150, CarbsG: 250, FatG: 60}

// Defaults returns the initial AppState used when no stored state exists.
// Language follows the device-locale heuristic.
func Defaults() model.AppState {
	return model.AppState{
		DailyGoal:          defaultDailyGoal,
		MacronutrientGoals: defaultMacroGoals,
		Logs:               map[string]model.DailyLog{},
		CustomFoods:        []model.CustomFood{},
		AIModel:            defaultAIModel,
		Language:           i18n.DetectLanguage(),
		UserProfile:        model.UserProfile{ActivityLevel: model.ActivityModerate},
		ChatHistory:        []model.ChatMessage{},
	}
}

// mergeState merges a stored JSON blob onto the defaults. Every top-level
// field that is absent or fails to decode independently keeps its default;
// a blob that is not a JSON object at all yields pure defaults.
func mergeState(raw []byte, logger *zap.Logger) model.AppState {
	state := Defaults()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		logger.Warn("stored state is not a JSON object, using defaults", zap.Error(err))
		return state
	}

	warn := func(field string, err error) {
		logger.Warn("stored state field is malformed, keeping default",
			zap.String("field", field), zap.Error(err))
	}

	if raw, ok := fields["dailyGoal"]; ok {
		var v int
		if err := json.Unmarshal(raw, &v); err != nil {
			warn("dailyGoal", err)
		} else {
			state.DailyGoal = v
		}
	}
	if raw, ok := fields["macronutrientGoals"]; ok {
		var v model.MacronutrientGoals
		if err := json.Unmarshal(raw, &v); err != nil {
			warn("macronutrientGoals", err)
		} else {
			state.MacronutrientGoals = v
		}
	}
	if raw, ok := fields["logs"]; ok {
		var v map[string]model.DailyLog
		if err := json.Unmarshal(raw, &v); err != nil {
			warn("logs", err)
		} else if v != nil {
			state.Logs = v
		}
	}
	if raw, ok := fields["customFoods"]; ok {
		var v []model.CustomFood
		if err := json.Unmarshal(raw, &v); err != nil {
			warn("customFoods", err)
		} else if v != nil {
			state.CustomFoods = v
		}
	}
	if raw, ok := fields["apiKey"]; ok {
		var v *string
		if err := json.Unmarshal(raw, &v); err != nil {
			warn("apiKey", err)
		} else {
			state.APIKey = v
		}
	}
	if raw, ok := fields["aiModel"]; ok {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			warn("aiModel", err)
		} else if v != "" {
			state.AIModel = v
		}
	}
	if raw, ok := fields["language"]; ok {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			warn("language", err)
		} else if v == i18n.LangEN || v == i18n.LangZhTW {
			state.Language = v
		}
	}
	if raw, ok := fields["userProfile"]; ok {
		var v model.UserProfile
		if err := json.Unmarshal(raw, &v); err != nil {
			warn("userProfile", err)
		} else {
			if v.ActivityLevel == "" {
				v.ActivityLevel = model.ActivityModerate
			}
			state.UserProfile = v
		}
	}
	if raw, ok := fields["chatHistory"]; ok {
		var v []model.ChatMessage
		if err := json.Unmarshal(raw, &v); err != nil {
			warn("chatHistory", err)
		} else if v != nil {
			state.ChatHistory = v
		}
	}

	return state
}
