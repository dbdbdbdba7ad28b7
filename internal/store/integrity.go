package store

import (
	"github.com/Alex2003763/caltrack/internal/model"
)

// DoctorReport counts integrity issues found in a state snapshot.
type DoctorReport struct {
	DuplicateEntryIDs int
	NegativeValues    int
	InvalidMeals      int
	InvalidChatRoles  int
}

func (r DoctorReport) Clean() bool {
	return r.DuplicateEntryIDs == 0 && r.NegativeValues == 0 && r.InvalidMeals == 0 && r.InvalidChatRoles == 0
}

// Diagnose scans a snapshot for invariant violations: duplicate entry ids,
// negative nutrition values, unknown meal names, and unknown chat roles.
// Violations can only come from hand-edited or imported data.
func Diagnose(st model.AppState) DoctorReport {
	var report DoctorReport
	seen := map[string]bool{}

	for _, log := range st.Logs {
		for _, entry := range log.Food {
			if seen[entry.ID] {
				report.DuplicateEntryIDs++
			}
			seen[entry.ID] = true
			if entry.Calories < 0 || entry.ProteinG < 0 || entry.CarbsG < 0 || entry.FatG < 0 {
				report.NegativeValues++
			}
			switch entry.Meal {
			case model.MealBreakfast, model.MealLunch, model.MealDinner, model.MealSnack:
			default:
				report.InvalidMeals++
			}
		}
		for _, entry := range log.Exercise {
			if seen[entry.ID] {
				report.DuplicateEntryIDs++
			}
			seen[entry.ID] = true
			if entry.Calories < 0 || entry.DurationMin < 0 {
				report.NegativeValues++
			}
		}
	}

	for _, turn := range st.ChatHistory {
		if turn.Role != model.RoleUser && turn.Role != model.RoleModel {
			report.InvalidChatRoles++
		}
	}

	return report
}
