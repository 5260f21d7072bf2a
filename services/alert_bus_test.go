package services

import (
	"testing"

	"github.com/jamiepatterson123/leenaai-sub001/models"

	"github.com/stretchr/testify/assert"
)

func TestEmitAlertNoopBeforeInit(t *testing.T) {
	prev := _alert
	_alert = alertDeps{}
	defer func() { _alert = prev }()

	assert.NotPanics(t, func() {
		EmitAlert(1, "warning", "carb target is negative")
	})
}

func TestTargetWarningMessage(t *testing.T) {
	msg := targetWarningMessage([]string{"carb target is negative (-11g)", "calorie goal very low"})
	assert.Equal(t, "Check your targets: carb target is negative (-11g); calorie goal very low", msg)
}

func TestIncompleteEntriesMessage(t *testing.T) {
	entries := []models.FoodEntry{
		{FoodName: "chicken breast"},
		{FoodName: "mystery stew", Incomplete: true},
		{FoodName: "soup of the day", Incomplete: true},
	}
	n := incompleteCount(entries)
	assert.Equal(t, 2, n)

	assert.Equal(t,
		"2 logged foods are missing nutrition data. Tap them in your diary to fill them in.",
		incompleteEntriesMessage(n))
	assert.Equal(t,
		"1 logged food is missing nutrition data. Tap it in your diary to fill it in.",
		incompleteEntriesMessage(1))

	assert.Zero(t, incompleteCount([]models.FoodEntry{{FoodName: "rice"}}))
}
