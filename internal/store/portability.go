package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Alex2003763/caltrack/internal/model"
)

// ExportJSON serializes the full AppState for a backup file.
func (s *Store) ExportJSON() ([]byte, error) {
	raw, err := json.MarshalIndent(s.State(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export json: %w", err)
	}
	return raw, nil
}

// ExportFilename names a backup file with the given day's date.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("caltrack-backup-%s.json", now.Format("2006-01-02"))
}

// ImportData validates a candidate AppState blob and, when valid, replaces
// the entire state (missing optional fields take their defaults, as on
// startup) and persists it. It reports false on validation failure and
// leaves the state untouched; it never panics or returns an error.
func (s *Store) ImportData(raw []byte) bool {
	if !validImportPayload(raw) {
		return false
	}
	s.mutate(func(model.AppState) model.AppState {
		return mergeState(raw, s.logger)
	})
	return true
}

// validImportPayload requires a `logs` object mapping dates to DailyLogs
// and an integer `dailyGoal`; everything else is optional. The dailyGoal
// check mirrors mergeState's decoding so a payload accepted here can never
// have its goal silently dropped during the merge.
func validImportPayload(raw []byte) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false
	}
	logsRaw, ok := fields["logs"]
	if !ok {
		return false
	}
	var logs map[string]model.DailyLog
	if err := json.Unmarshal(logsRaw, &logs); err != nil || logs == nil {
		return false
	}
	goalRaw, ok := fields["dailyGoal"]
	if !ok {
		return false
	}
	var goal int
	if err := json.Unmarshal(goalRaw, &goal); err != nil {
		return false
	}
	return true
}
