package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseMetrics() Metrics {
	return Metrics{
		HeightCm:      180,
		WeightKg:      80,
		Age:           30,
		Gender:        GenderMale,
		ActivityLevel: "moderately_active",
		FitnessGoal:   GoalMaintenance,
	}
}

func TestComputeTargetsKnownScenario(t *testing.T) {
	got, err := ComputeTargets(baseMetrics())
	require.NoError(t, err)

	// BMR 1780, TDEE 1780*1.55 = 2759
	assert.Equal(t, 2759, got.Calories)
	assert.Equal(t, 160, got.Protein) // 2 g/kg
	assert.Equal(t, 92, got.Fat)      // 30% of kcal / 9
	assert.Equal(t, 323, got.Carbs)   // remainder / 4
}

func TestComputeTargetsDeterministic(t *testing.T) {
	m := baseMetrics()
	first, err := ComputeTargets(m)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ComputeTargets(m)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComputeTargetsCalorieMacroConsistency(t *testing.T) {
	goals := []string{GoalMaintenance, GoalWeightLoss, GoalMuscleGain}
	levels := []string{"sedentary", "lightly_active", "moderately_active", "very_active", "extra_active"}

	for _, goal := range goals {
		for _, level := range levels {
			m := baseMetrics()
			m.FitnessGoal = goal
			m.ActivityLevel = level

			got, err := ComputeTargets(m)
			require.NoError(t, err)

			// each field rounds independently, so allow a few kcal of drift
			recomposed := got.Protein*KcalPerGramProtein + got.Carbs*KcalPerGramCarb + got.Fat*KcalPerGramFat
			assert.InDelta(t, got.Calories, recomposed, 5, "goal=%s level=%s", goal, level)
		}
	}
}

func TestComputeTargetsActivityOrdering(t *testing.T) {
	levels := []string{"sedentary", "lightly_active", "moderately_active", "very_active", "extra_active"}

	prev := 0
	for _, level := range levels {
		m := baseMetrics()
		m.ActivityLevel = level
		got, err := ComputeTargets(m)
		require.NoError(t, err)
		assert.Greater(t, got.Calories, prev, "level=%s", level)
		prev = got.Calories
	}
}

func TestComputeTargetsGoalOrdering(t *testing.T) {
	calories := func(goal string) int {
		m := baseMetrics()
		m.FitnessGoal = goal
		got, err := ComputeTargets(m)
		require.NoError(t, err)
		return got.Calories
	}

	loss := calories(GoalWeightLoss)
	maint := calories(GoalMaintenance)
	gain := calories(GoalMuscleGain)

	assert.Less(t, loss, maint)
	assert.Less(t, maint, gain)
}

func TestComputeTargetsUnknownActivityFallsBackToSedentary(t *testing.T) {
	m := baseMetrics()
	m.ActivityLevel = "sedentary"
	sedentary, err := ComputeTargets(m)
	require.NoError(t, err)

	for _, level := range []string{"", "couch_potato", "ACTIVE"} {
		m.ActivityLevel = level
		got, err := ComputeTargets(m)
		require.NoError(t, err)
		assert.Equal(t, sedentary, got, "level=%q", level)
	}
}

func TestComputeTargetsGenderOffset(t *testing.T) {
	male := baseMetrics()
	female := baseMetrics()
	female.Gender = GenderFemale

	mt, err := ComputeTargets(male)
	require.NoError(t, err)
	ft, err := ComputeTargets(female)
	require.NoError(t, err)

	// female BMR is 166 kcal lower before the activity multiplier
	assert.Greater(t, mt.Calories, ft.Calories)
	assert.Equal(t, mt.Protein, ft.Protein) // protein depends on weight only
}

func TestComputeTargetsInvalidMetrics(t *testing.T) {
	cases := map[string]func(*Metrics){
		"zero height":     func(m *Metrics) { m.HeightCm = 0 },
		"negative height": func(m *Metrics) { m.HeightCm = -1 },
		"zero weight":     func(m *Metrics) { m.WeightKg = 0 },
		"zero age":        func(m *Metrics) { m.Age = 0 },
		"negative age":    func(m *Metrics) { m.Age = -5 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			m := baseMetrics()
			mutate(&m)
			_, err := ComputeTargets(m)
			require.ErrorIs(t, err, ErrInvalidMetrics)
		})
	}
}

func TestWarningsNegativeCarbs(t *testing.T) {
	// very heavy + aggressive deficit: protein floor alone exceeds the
	// calorie budget left after fat
	m := Metrics{
		HeightCm:      100,
		WeightKg:      200,
		Age:           30,
		Gender:        GenderFemale,
		ActivityLevel: "sedentary",
		FitnessGoal:   GoalWeightLoss,
	}
	got, err := ComputeTargets(m)
	require.NoError(t, err)
	require.Negative(t, got.Carbs, "scenario should produce a negative carb target")

	warnings := Warnings(got)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "negative")
}

func TestWarningsEmptyForNormalTargets(t *testing.T) {
	got, err := ComputeTargets(baseMetrics())
	require.NoError(t, err)
	assert.Empty(t, Warnings(got))
}
