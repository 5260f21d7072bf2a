package services

import (
	"fmt"
	"time"

	"github.com/jamiepatterson123/leenaai-sub001/config"
	"github.com/jamiepatterson123/leenaai-sub001/models"
	"github.com/jamiepatterson123/leenaai-sub001/utils"
	"github.com/jamiepatterson123/leenaai-sub001/vision"
)

// SaveMealPhoto archives the analyzed photo so the user can revisit it.
func SaveMealPhoto(base64Data string) (string, error) {
	return utils.UploadBase64ImageToS3(base64Data, "meal-photos")
}

func dayStartLocal(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

// LogAnalyzedItems writes one diary row per pipeline item. Callers invoke
// this only after the pipeline returned a fully merged list — a failed
// analysis never produces partial rows. Items with no nutrition match are
// stored with zero macros and flagged Incomplete.
func LogAnalyzedItems(userID uint, items []vision.FoodItem, date time.Time, category, source string) ([]models.FoodEntry, error) {
	entries := make([]models.FoodEntry, 0, len(items))
	for _, it := range items {
		e := models.FoodEntry{
			UserID:     userID,
			Date:       date,
			FoodName:   it.Name,
			WeightG:    it.WeightG,
			Category:   category,
			Source:     source,
			Incomplete: it.Incomplete(),
		}
		if it.Nutrition != nil {
			e.Calories = it.Nutrition.Calories
			e.Protein = it.Nutrition.Protein
			e.Carbs = it.Nutrition.Carbs
			e.Fat = it.Nutrition.Fat
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return entries, nil
	}
	if err := config.DB.Create(&entries).Error; err != nil {
		return nil, err
	}
	if n := incompleteCount(entries); n > 0 {
		EmitAlert(userID, "info", incompleteEntriesMessage(n))
	}
	return entries, nil
}

func incompleteCount(entries []models.FoodEntry) int {
	n := 0
	for _, e := range entries {
		if e.Incomplete {
			n++
		}
	}
	return n
}

// incompleteEntriesMessage prompts the user to fill in entries whose
// nutrition lookup found no match.
func incompleteEntriesMessage(n int) string {
	if n == 1 {
		return "1 logged food is missing nutrition data. Tap it in your diary to fill it in."
	}
	return fmt.Sprintf("%d logged foods are missing nutrition data. Tap them in your diary to fill them in.", n)
}

type ManualFoodInput struct {
	FoodName string  `json:"food_name" binding:"required"`
	WeightG  float64 `json:"weight_g"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Category string  `json:"category"`
	Date     string  `json:"date"` // YYYY-MM-DD, defaults to today
}

func LogManualFood(userID uint, in ManualFoodInput) (*models.FoodEntry, error) {
	date := dayStartLocal(time.Now())
	if in.Date != "" {
		if d, err := time.ParseInLocation("2006-01-02", in.Date, time.Local); err == nil {
			date = d
		}
	}
	entry := models.FoodEntry{
		UserID:   userID,
		Date:     date,
		FoodName: in.FoodName,
		WeightG:  in.WeightG,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Category: in.Category,
		Source:   "manual",
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func ListFoodEntries(userID uint, from, to time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := config.DB.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date DESC, created_at DESC").
		Find(&entries).Error
	return entries, err
}

// UpdateFoodEntry lets the user correct an entry, typically to fill in an
// incomplete one. Clears the Incomplete flag once macros are provided.
func UpdateFoodEntry(userID, entryID uint, in ManualFoodInput) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	if err := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}

	if in.FoodName != "" {
		entry.FoodName = in.FoodName
	}
	if in.WeightG > 0 {
		entry.WeightG = in.WeightG
	}
	entry.Calories = in.Calories
	entry.Protein = in.Protein
	entry.Carbs = in.Carbs
	entry.Fat = in.Fat
	if in.Category != "" {
		entry.Category = in.Category
	}
	if entry.Calories > 0 || entry.Protein > 0 || entry.Carbs > 0 || entry.Fat > 0 {
		entry.Incomplete = false
	}

	if err := config.DB.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func DeleteFoodEntry(userID, entryID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.FoodEntry{}).Error
}

// LogWeight appends to the weight log and mirrors the new weight onto the
// profile so the next target recompute uses it.
func LogWeight(userID uint, weightKg float64, at time.Time) (*models.WeightEntry, error) {
	entry := models.WeightEntry{
		UserID:   userID,
		Date:     at,
		WeightKg: weightKg,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}

	if err := config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("weight_kg", weightKg).Error; err != nil {
		return nil, err
	}
	if _, err := RecalculateTargets(userID); err != nil {
		// profile may be incomplete during onboarding; the weight row itself is fine
		return &entry, nil
	}
	return &entry, nil
}

func ListWeightEntries(userID uint, limit int) ([]models.WeightEntry, error) {
	if limit <= 0 {
		limit = 30
	}
	var entries []models.WeightEntry
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
