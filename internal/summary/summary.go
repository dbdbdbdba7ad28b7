package summary

import (
	"fmt"
	"time"

	"github.com/Alex2003763/caltrack/internal/model"
)

// DayStatus aggregates one date's intake, exercise, and goal progress.
type DayStatus struct {
	Date              string `json:"date"`
	IntakeCalories    int    `json:"intake_calories"`
	ExerciseCalories  int    `json:"exercise_calories"`
	NetCalories       int    `json:"net_calories"`
	ProteinG          int    `json:"protein_g"`
	CarbsG            int    `json:"carbs_g"`
	FatG              int    `json:"fat_g"`
	GoalCalories      int    `json:"goal_calories"`
	GoalProteinG      int    `json:"goal_protein_g"`
	GoalCarbsG        int    `json:"goal_carbs_g"`
	GoalFatG          int    `json:"goal_fat_g"`
	RemainingCalories int    `json:"remaining_calories"`
	RemainingProteinG int    `json:"remaining_protein_g"`
	RemainingCarbsG   int    `json:"remaining_carbs_g"`
	RemainingFatG     int    `json:"remaining_fat_g"`
}

// WeekReport covers the seven days ending at EndDate, oldest first.
type WeekReport struct {
	EndDate          string      `json:"end_date"`
	Days             []DayStatus `json:"days"`
	IntakeCalories   int         `json:"intake_calories"`
	ExerciseCalories int         `json:"exercise_calories"`
	NetCalories      int         `json:"net_calories"`
	ProteinG         int         `json:"protein_g"`
	CarbsG           int         `json:"carbs_g"`
	FatG             int         `json:"fat_g"`
	AvgNetCalories   int         `json:"avg_net_calories"`
}

// ForDate computes the daily totals for a YYYY-MM-DD date against the
// state's goals. Dates with no log yield a zeroed status with full
// remaining budgets.
func ForDate(st model.AppState, date string) DayStatus {
	status := DayStatus{
		Date:         date,
		GoalCalories: st.DailyGoal,
		GoalProteinG: st.MacronutrientGoals.ProteinG,
		GoalCarbsG:   st.MacronutrientGoals.CarbsG,
		GoalFatG:     st.MacronutrientGoals.FatG,
	}
	log := st.Logs[date]
	for _, f := range log.Food {
		status.IntakeCalories += f.Calories
		status.ProteinG += f.ProteinG
		status.CarbsG += f.CarbsG
		status.FatG += f.FatG
	}
	for _, e := range log.Exercise {
		status.ExerciseCalories += e.Calories
	}
	status.NetCalories = status.IntakeCalories - status.ExerciseCalories
	status.RemainingCalories = status.GoalCalories - status.NetCalories
	status.RemainingProteinG = status.GoalProteinG - status.ProteinG
	status.RemainingCarbsG = status.GoalCarbsG - status.CarbsG
	status.RemainingFatG = status.GoalFatG - status.FatG
	return status
}

// ForWeek aggregates the seven days ending at end (YYYY-MM-DD).
func ForWeek(st model.AppState, end string) (WeekReport, error) {
	endDay, err := time.ParseInLocation("2006-01-02", end, time.Local)
	if err != nil {
		return WeekReport{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", end)
	}

	report := WeekReport{EndDate: end}
	for offset := 6; offset >= 0; offset-- {
		date := endDay.AddDate(0, 0, -offset).Format("2006-01-02")
		day := ForDate(st, date)
		report.Days = append(report.Days, day)
		report.IntakeCalories += day.IntakeCalories
		report.ExerciseCalories += day.ExerciseCalories
		report.ProteinG += day.ProteinG
		report.CarbsG += day.CarbsG
		report.FatG += day.FatG
	}
	report.NetCalories = report.IntakeCalories - report.ExerciseCalories
	report.AvgNetCalories = report.NetCalories / 7
	return report, nil
}
