package models

import (
	"time"

	"gorm.io/gorm"
)

// DailySummary caches one day's consumed totals for the reports screen.
// Upserted by the report service whenever the day is recomputed.
type DailySummary struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"`

	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	WeightKg float64
}
