package summary

import (
	"math"

	"github.com/Alex2003763/caltrack/internal/model"
)

// activityMultipliers maps activity levels to their TDEE multiplier.
var activityMultipliers = map[string]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

// Budget is a recommended daily calorie budget derived from the profile.
type Budget struct {
	BMR  int `json:"bmr"`
	TDEE int `json:"tdee"`
	Kcal int `json:"kcal"`
}

// RecommendedBudget computes BMR (Mifflin-St Jeor) and TDEE from the user
// profile. It reports ok=false when age, weight, height, or sex is missing,
// the age is implausible, or the activity level is unknown.
func RecommendedBudget(p model.UserProfile) (Budget, bool) {
	if p.Age == nil || p.WeightKg == nil || p.HeightCm == nil || p.Sex == nil {
		return Budget{}, false
	}
	age := *p.Age
	if age <= 0 || age > 130 {
		return Budget{}, false
	}

	bmr := 10**p.WeightKg + 6.25**p.HeightCm - 5*float64(age)
	if *p.Sex == model.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		return Budget{}, false
	}
	tdee := bmr * mult

	return Budget{
		BMR:  int(math.Round(bmr)),
		TDEE: int(math.Round(tdee)),
		// suggested goal, rounded to the nearest 50 kcal
		Kcal: int(math.Round(tdee/50)) * 50,
	}, true
}
