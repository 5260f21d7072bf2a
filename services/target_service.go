package services

import (
	"errors"
	"strings"

	"github.com/jamiepatterson123/leenaai-sub001/config"
	"github.com/jamiepatterson123/leenaai-sub001/logger"
	"github.com/jamiepatterson123/leenaai-sub001/models"
	"github.com/jamiepatterson123/leenaai-sub001/nutrition"
	"github.com/jamiepatterson123/leenaai-sub001/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// metricsFromUser snapshots the profile fields the target engine needs.
func metricsFromUser(u *models.User) nutrition.Metrics {
	age := 0
	if !u.Birthday.IsZero() {
		age = utils.CalculateAge(u.Birthday)
	}
	return nutrition.Metrics{
		HeightCm:      u.HeightCm,
		WeightKg:      u.WeightKg,
		Age:           age,
		Gender:        u.Gender,
		ActivityLevel: u.ActivityLevel,
		FitnessGoal:   u.FitnessGoal,
	}
}

// RecalculateTargets recomputes the user's daily targets from their current
// biometrics and upserts the single NutritionTarget row (latest wins).
// Invalid metrics return the engine's error and persist nothing.
func RecalculateTargets(userID uint) (*models.NutritionTarget, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	t, err := nutrition.ComputeTargets(metricsFromUser(&user))
	if err != nil {
		return nil, err
	}

	warnings := nutrition.Warnings(t)
	if len(warnings) > 0 {
		logger.Warn("computed target has warnings",
			zap.Uint("user_id", userID),
			zap.Strings("warnings", warnings))
		EmitAlert(userID, "warning", targetWarningMessage(warnings))
	}

	target := models.NutritionTarget{
		UserID:   userID,
		Calories: t.Calories,
		Protein:  t.Protein,
		Carbs:    t.Carbs,
		Fat:      t.Fat,
		Warning:  strings.Join(warnings, "; "),
	}

	var existing models.NutritionTarget
	err = config.DB.Where("user_id = ?", userID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := config.DB.Create(&target).Error; err != nil {
			return nil, err
		}
		return &target, nil
	}
	if err != nil {
		return nil, err
	}

	existing.Calories = target.Calories
	existing.Protein = target.Protein
	existing.Carbs = target.Carbs
	existing.Fat = target.Fat
	existing.Warning = target.Warning
	if err := config.DB.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// targetWarningMessage flattens engine warnings into one alert body.
func targetWarningMessage(warnings []string) string {
	return "Check your targets: " + strings.Join(warnings, "; ")
}

// GetTargets returns the stored target row, or a zero-value one if the user
// has not completed their profile yet.
func GetTargets(userID uint) (*models.NutritionTarget, error) {
	var target models.NutritionTarget
	err := config.DB.Where("user_id = ?", userID).First(&target).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.NutritionTarget{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &target, nil
}
