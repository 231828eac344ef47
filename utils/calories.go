package utils

import (
	"math"
	"strings"
)

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// RecommendedDailyCalories applies the Harris-Benedict equation with a
// fixed activity multiplier table. Anything that isn't "male"
// (case-insensitively) takes the female coefficient set; unrecognized
// activity levels fall back to sedentary.
func RecommendedDailyCalories(age int, gender, activityLevel string, weightKg, heightCm float64) int {
	var bmr float64
	if strings.EqualFold(gender, "male") {
		bmr = 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	} else {
		bmr = 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
	}

	mult, ok := activityMultipliers[strings.ToLower(activityLevel)]
	if !ok {
		mult = 1.2
	}

	return int(math.Round(bmr * mult))
}
