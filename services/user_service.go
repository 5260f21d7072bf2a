package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/jamiepatterson123/leenaai-sub001/config"
	"github.com/jamiepatterson123/leenaai-sub001/models"
	"github.com/jamiepatterson123/leenaai-sub001/nutrition"
	"github.com/jamiepatterson123/leenaai-sub001/utils"
)

type ProfileInput struct {
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Birthday       string   `json:"birthday"` // YYYY-MM-DD
	Gender         string   `json:"gender"`
	HeightCm       float64  `json:"height_cm"`
	WeightKg       float64  `json:"weight_kg"`
	ActivityLevel  string   `json:"activity_level"`
	FitnessGoal    string   `json:"fitness_goal"`
	ProfilePicture string   `json:"profile_picture"`
	Onboarded      *bool    `json:"onboarded"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}
	bmi := nutrition.BMI(user.HeightCm, user.WeightKg)

	return map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"birthday":        user.Birthday.Format("2006-01-02"),
		"age":             age,
		"gender":          user.Gender,
		"height_cm":       user.HeightCm,
		"weight_kg":       user.WeightKg,
		"activity_level":  user.ActivityLevel,
		"fitness_goal":    user.FitnessGoal,
		"bmi":             bmi,
		"bmi_category":    nutrition.BMICategory(bmi),
		"profile_picture": user.ProfilePicture,
		"mfa_enabled":     user.MFAEnabled,
		"onboarded":       user.Onboarded,
	}, nil
}

// UpdateUserProfile applies partial profile edits. Any biometric change
// triggers a target recompute; if the resulting metrics are invalid the
// engine's error is returned and the new target is simply not written (the
// profile edit itself still sticks, matching the app's save-then-warn flow).
func UpdateUserProfile(userID uint, input ProfileInput) (*models.NutritionTarget, error) {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	biometricsChanged := false

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			user.Birthday = birthday
			biometricsChanged = true
		}
	}
	if input.Gender != "" {
		user.Gender = input.Gender
		biometricsChanged = true
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
		biometricsChanged = true
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
		biometricsChanged = true
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
		biometricsChanged = true
	}
	if input.FitnessGoal != "" {
		user.FitnessGoal = input.FitnessGoal
		biometricsChanged = true
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, "profile-pictures")
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		user.ProfilePicture = url
	}
	if input.Onboarded != nil {
		user.Onboarded = *input.Onboarded
	}

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}

	if !biometricsChanged {
		return nil, nil
	}
	return RecalculateTargets(user.ID)
}

func DeleteUser(userID uint) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
