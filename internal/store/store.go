package store

import (
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Alex2003763/caltrack/internal/model"
)

// Store owns the single AppState snapshot. Every mutation applies as a pure
// function of the current snapshot under the mutex, replaces the snapshot
// wholesale, and then writes the whole state back to durable storage.
// In-memory state is authoritative for the session; persistence is
// best-effort and its failures are logged, never propagated.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	logger *zap.Logger
	state  model.AppState
}

// Open loads the persisted AppState from the app_state table, merging it
// onto the defaults. A missing row, malformed blob, or unreadable storage
// degrades to defaults; Open never fails, and the returned store is fully
// initialized.
func Open(sqldb *sql.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{db: sqldb, logger: logger}

	var raw string
	err := sqldb.QueryRow(`SELECT value FROM app_state WHERE key = ?`, storageKey).Scan(&raw)
	switch {
	case err == sql.ErrNoRows:
		s.state = Defaults()
	case err != nil:
		logger.Warn("read stored state, falling back to defaults", zap.Error(err))
		s.state = Defaults()
	default:
		s.state = mergeState([]byte(raw), logger)
	}
	return s
}

// State returns the current snapshot. Mutations never modify reachable maps
// or slices in place, so a returned snapshot stays internally consistent.
func (s *Store) State() model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LogForDate returns the DailyLog for a YYYY-MM-DD date, or an empty log
// (never nil slices) when no entries exist for that date.
func (s *Store) LogForDate(date string) model.DailyLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return normalizeLog(s.state.Logs[date])
}

// FoodInput holds the caller-supplied fields of a food entry; the id is
// generated on insert.
type FoodInput struct {
	Name     string
	Calories int
	ProteinG int
	CarbsG   int
	FatG     int
	Meal     string
}

// ExerciseInput holds the caller-supplied fields of an exercise entry.
type ExerciseInput struct {
	Name        string
	DurationMin int
	Calories    int
}

// AddFood appends a food entry to the date's log, creating the DailyLog on
// first use, and returns the stored entry with its generated id.
func (s *Store) AddFood(in FoodInput, date string) model.FoodEntry {
	entry := model.FoodEntry{
		ID:       newEntryID(),
		Name:     in.Name,
		Calories: in.Calories,
		ProteinG: in.ProteinG,
		CarbsG:   in.CarbsG,
		FatG:     in.FatG,
		Meal:     in.Meal,
	}
	s.mutate(func(st model.AppState) model.AppState {
		log := normalizeLog(st.Logs[date])
		log.Food = append(log.Food, entry)
		st.Logs = withLog(st.Logs, date, log)
		return st
	})
	return entry
}

// AddExercise appends an exercise entry to the date's log and returns the
// stored entry with its generated id.
func (s *Store) AddExercise(in ExerciseInput, date string) model.ExerciseEntry {
	entry := model.ExerciseEntry{
		ID:          newEntryID(),
		Name:        in.Name,
		DurationMin: in.DurationMin,
		Calories:    in.Calories,
	}
	s.mutate(func(st model.AppState) model.AppState {
		log := normalizeLog(st.Logs[date])
		log.Exercise = append(log.Exercise, entry)
		st.Logs = withLog(st.Logs, date, log)
		return st
	})
	return entry
}

// RemoveFood removes the food entry with the given id from the date's log.
// It reports whether an entry was removed; a missing date or id is a no-op.
func (s *Store) RemoveFood(id, date string) bool {
	removed := false
	s.mutate(func(st model.AppState) model.AppState {
		log, ok := st.Logs[date]
		if !ok {
			return st
		}
		kept := make([]model.FoodEntry, 0, len(log.Food))
		for _, entry := range log.Food {
			if entry.ID == id {
				removed = true
				continue
			}
			kept = append(kept, entry)
		}
		if !removed {
			return st
		}
		log = normalizeLog(log)
		log.Food = kept
		st.Logs = withLog(st.Logs, date, log)
		return st
	})
	return removed
}

// RemoveExercise is symmetric to RemoveFood.
func (s *Store) RemoveExercise(id, date string) bool {
	removed := false
	s.mutate(func(st model.AppState) model.AppState {
		log, ok := st.Logs[date]
		if !ok {
			return st
		}
		kept := make([]model.ExerciseEntry, 0, len(log.Exercise))
		for _, entry := range log.Exercise {
			if entry.ID == id {
				removed = true
				continue
			}
			kept = append(kept, entry)
		}
		if !removed {
			return st
		}
		log = normalizeLog(log)
		log.Exercise = kept
		st.Logs = withLog(st.Logs, date, log)
		return st
	})
	return removed
}

func (s *Store) SetDailyGoal(goal int) {
	s.mutate(func(st model.AppState) model.AppState {
		st.DailyGoal = goal
		return st
	})
}

func (s *Store) SetMacronutrientGoals(goals model.MacronutrientGoals) {
	s.mutate(func(st model.AppState) model.AppState {
		st.MacronutrientGoals = goals
		return st
	})
}

func (s *Store) SetAPIKey(key *string) {
	s.mutate(func(st model.AppState) model.AppState {
		st.APIKey = key
		return st
	})
}

func (s *Store) SetAIModel(aiModel string) {
	s.mutate(func(st model.AppState) model.AppState {
		st.AIModel = aiModel
		return st
	})
}

func (s *Store) SetLanguage(lang string) {
	s.mutate(func(st model.AppState) model.AppState {
		st.Language = lang
		return st
	})
}

// UpdateUserProfile shallow-merges the patch into the existing profile:
// nil pointer fields and an empty activity level leave the current values
// untouched.
func (s *Store) UpdateUserProfile(patch model.UserProfile) {
	s.mutate(func(st model.AppState) model.AppState {
		profile := st.UserProfile
		if patch.Age != nil {
			profile.Age = patch.Age
		}
		if patch.WeightKg != nil {
			profile.WeightKg = patch.WeightKg
		}
		if patch.HeightCm != nil {
			profile.HeightCm = patch.HeightCm
		}
		if patch.Sex != nil {
			profile.Sex = patch.Sex
		}
		if patch.ActivityLevel != "" {
			profile.ActivityLevel = patch.ActivityLevel
		}
		st.UserProfile = profile
		return st
	})
}

// SetChatHistory replaces the conversation wholesale.
func (s *Store) SetChatHistory(history []model.ChatMessage) {
	copied := append([]model.ChatMessage{}, history...)
	s.mutate(func(st model.AppState) model.AppState {
		st.ChatHistory = copied
		return st
	})
}

func (s *Store) ClearChatHistory() {
	s.mutate(func(st model.AppState) model.AppState {
		st.ChatHistory = []model.ChatMessage{}
		return st
	})
}

// AddCustomFood stores a reusable food template, replacing any existing
// template with the same name.
func (s *Store) AddCustomFood(food model.CustomFood) {
	s.mutate(func(st model.AppState) model.AppState {
		kept := make([]model.CustomFood, 0, len(st.CustomFoods)+1)
		for _, existing := range st.CustomFoods {
			if existing.Name != food.Name {
				kept = append(kept, existing)
			}
		}
		st.CustomFoods = append(kept, food)
		return st
	})
}

// RemoveCustomFood removes the template with the given name, reporting
// whether one existed.
func (s *Store) RemoveCustomFood(name string) bool {
	removed := false
	s.mutate(func(st model.AppState) model.AppState {
		kept := make([]model.CustomFood, 0, len(st.CustomFoods))
		for _, existing := range st.CustomFoods {
			if existing.Name == name {
				removed = true
				continue
			}
			kept = append(kept, existing)
		}
		st.CustomFoods = kept
		return st
	})
	return removed
}

// mutate serializes writers: apply is a pure function of the latest
// snapshot, never of a stale captured copy, and the result is persisted
// write-through before the lock is released.
func (s *Store) mutate(apply func(model.AppState) model.AppState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = apply(s.state)
	s.persist()
}

// persist writes the whole AppState under the fixed storage key. Failures
// are logged only; the in-memory snapshot stays authoritative.
func (s *Store) persist() {
	raw, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Warn("marshal state for persistence", zap.Error(err))
		return
	}
	_, err = s.db.Exec(`
INSERT INTO app_state(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, storageKey, string(raw))
	if err != nil {
		s.logger.Warn("persist state", zap.Error(err))
	}
}

func newEntryID() string {
	return uuid.NewString()
}

func normalizeLog(log model.DailyLog) model.DailyLog {
	out := model.DailyLog{
		Food:     make([]model.FoodEntry, len(log.Food)),
		Exercise: make([]model.ExerciseEntry, len(log.Exercise)),
	}
	copy(out.Food, log.Food)
	copy(out.Exercise, log.Exercise)
	return out
}

func withLog(logs map[string]model.DailyLog, date string, log model.DailyLog) map[string]model.DailyLog {
	next := make(map[string]model.DailyLog, len(logs)+1)
	for k, v := range logs {
		next[k] = v
	}
	next[date] = log
	return next
}
