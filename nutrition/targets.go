package nutrition

import (
	"errors"
	"fmt"
	"math"
)

// Gender values accepted in Metrics.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Fitness goals.
const (
	GoalWeightLoss  = "weight_loss"
	GoalMuscleGain  = "muscle_gain"
	GoalMaintenance = "maintenance"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
// Levels not in this table fall back to sedentary (1.2) — the app treats a
// missing or unknown level as a quiet default, not an error.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extra_active":      1.9,
}

const sedentaryMultiplier = 1.2

// Calories per gram of each macronutrient.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarb    = 4
	KcalPerGramFat     = 9
)

const (
	proteinGramsPerKg  = 2.0
	fatCalorieFraction = 0.3
)

// ErrInvalidMetrics is wrapped by all input-validation failures from
// ComputeTargets.
var ErrInvalidMetrics = errors.New("invalid profile metrics")

// Metrics is the biometric snapshot the target engine works from.
type Metrics struct {
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
	FitnessGoal   string  `json:"fitness_goal"`
}

// Targets is a computed daily calorie and macro budget. Each field is
// rounded independently, so Calories only approximately equals
// Protein*4 + Carbs*4 + Fat*9 (within a few kcal).
type Targets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// ComputeTargets derives a daily target from biometrics: Mifflin-St Jeor
// BMR, a fixed activity multiplier table, a goal-based calorie adjustment,
// protein at 2 g/kg, fat at 30% of calories, carbs as the remainder.
//
// Carbs can come out negative for extreme low-calorie inputs; the value is
// returned as-is and surfaced to callers via Warnings.
func ComputeTargets(m Metrics) (Targets, error) {
	if m.HeightCm <= 0 {
		return Targets{}, fmt.Errorf("%w: height_cm must be positive", ErrInvalidMetrics)
	}
	if m.WeightKg <= 0 {
		return Targets{}, fmt.Errorf("%w: weight_kg must be positive", ErrInvalidMetrics)
	}
	if m.Age <= 0 {
		return Targets{}, fmt.Errorf("%w: age must be positive", ErrInvalidMetrics)
	}

	// Mifflin-St Jeor
	bmr := 10*m.WeightKg + 6.25*m.HeightCm - 5*float64(m.Age)
	if m.Gender == GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[m.ActivityLevel]
	if !ok {
		mult = sedentaryMultiplier
	}
	tdee := bmr * mult

	target := tdee
	switch m.FitnessGoal {
	case GoalWeightLoss:
		target = tdee * 0.8
	case GoalMuscleGain:
		target = tdee * 1.1
	}

	proteinG := m.WeightKg * proteinGramsPerKg
	proteinKcal := proteinG * KcalPerGramProtein
	fatKcal := target * fatCalorieFraction
	fatG := fatKcal / KcalPerGramFat
	carbG := (target - proteinKcal - fatKcal) / KcalPerGramCarb

	return Targets{
		Calories: int(math.Round(target)),
		Protein:  int(math.Round(proteinG)),
		Carbs:    int(math.Round(carbG)),
		Fat:      int(math.Round(fatG)),
	}, nil
}

// Warnings reports conditions a caller should surface to the user before
// persisting the target. The engine itself never clamps or rejects them.
func Warnings(t Targets) []string {
	var out []string
	if t.Carbs < 0 {
		out = append(out, fmt.Sprintf(
			"carb target is negative (%dg): the calorie goal is too low to cover the protein and fat floors", t.Carbs))
	}
	return out
}
