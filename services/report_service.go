package services

import (
	"time"

	"github.com/jamiepatterson123/leenaai-sub001/config"
	"github.com/jamiepatterson123/leenaai-sub001/models"
)

// DailyReport aggregates one day's diary rows against the user's current
// targets. The summary row is upserted as a cache for history queries.
func DailyReport(userID uint, date time.Time) (map[string]interface{}, error) {
	start := dayStartLocal(date)
	end := start.Add(24 * time.Hour)

	entries, err := ListFoodEntries(userID, start, end)
	if err != nil {
		return nil, err
	}

	var cals, prot, carbs, fat float64
	for _, e := range entries {
		cals += e.Calories
		prot += e.Protein
		carbs += e.Carbs
		fat += e.Fat
	}

	target, err := GetTargets(userID)
	if err != nil {
		return nil, err
	}

	var weight models.WeightEntry
	_ = config.DB.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date DESC").
		First(&weight).Error

	summary := models.DailySummary{
		UserID:   userID,
		Date:     start,
		Calories: cals,
		Protein:  prot,
		Carbs:    carbs,
		Fat:      fat,
		WeightKg: weight.WeightKg,
	}
	config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		Assign(summary).
		FirstOrCreate(&summary)

	pct := func(consumed float64, goal int) float64 {
		if goal <= 0 {
			return 0
		}
		p := consumed / float64(goal)
		if p > 1 {
			return 1
		}
		return p
	}

	progress := map[string]interface{}{
		"calories": map[string]float64{"consumed": cals, "goal": float64(target.Calories), "percent": pct(cals, target.Calories)},
		"protein":  map[string]float64{"consumed": prot, "goal": float64(target.Protein), "percent": pct(prot, target.Protein)},
		"carbs":    map[string]float64{"consumed": carbs, "goal": float64(target.Carbs), "percent": pct(carbs, target.Carbs)},
		"fat":      map[string]float64{"consumed": fat, "goal": float64(target.Fat), "percent": pct(fat, target.Fat)},
	}

	return map[string]interface{}{
		"date":     start.Format("2006-01-02"),
		"targets":  target,
		"progress": progress,
		"entries":  entries,
	}, nil
}

// ReportHistory returns cached daily summaries for the reports screen,
// newest first.
func ReportHistory(userID uint, from, to time.Time) ([]models.DailySummary, error) {
	var rows []models.DailySummary
	err := config.DB.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStartLocal(from), dayStartLocal(to).Add(24*time.Hour)).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}
