package caltrack

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Alex2003763/caltrack/internal/app"
	"github.com/Alex2003763/caltrack/internal/assistant"
	"github.com/Alex2003763/caltrack/internal/db"
	"github.com/Alex2003763/caltrack/internal/i18n"
	"github.com/Alex2003763/caltrack/internal/model"
	"github.com/Alex2003763/caltrack/internal/store"
)

func withStore(run func(*store.Store, *i18n.Translator) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	st := store.Open(sqldb, logger)
	tr, err := i18n.New(st.State().Language, logger)
	if err != nil {
		return err
	}
	return run(st, tr)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

// parseDateOrToday validates a YYYY-MM-DD local date; empty means today.
func parseDateOrToday(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.ParseInLocation("2006-01-02", value, time.Local); err != nil {
		return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", value)
	}
	return value, nil
}

func parseMeal(value string) (string, error) {
	meal := strings.ToLower(strings.TrimSpace(value))
	switch meal {
	case model.MealBreakfast, model.MealLunch, model.MealDinner, model.MealSnack:
		return meal, nil
	}
	return "", fmt.Errorf("invalid --meal %q (use breakfast, lunch, dinner, or snack)", value)
}

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

// resolveAPIKey prefers the key stored in AppState, falling back to the
// GEMINI_API_KEY environment variable.
func resolveAPIKey(state model.AppState) string {
	if state.APIKey != nil && strings.TrimSpace(*state.APIKey) != "" {
		return strings.TrimSpace(*state.APIKey)
	}
	return strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
}

// assistantError translates collaborator failures into localized
// user-facing messages.
func assistantError(tr *i18n.Translator, err error) error {
	switch {
	case errors.Is(err, assistant.ErrMissingAPIKey):
		return errors.New(tr.T("assistant.missing_key"))
	case errors.Is(err, assistant.ErrBadResponse):
		return errors.New(tr.T("assistant.bad_response"))
	default:
		return errors.New(tr.T("assistant.request_failed"))
	}
}
