package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodEntry is one diary row, either confirmed from a photo analysis or
// entered manually. Immutable once logged except via explicit edit/delete.
type FoodEntry struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Date     time.Time `gorm:"index;not null"`
	FoodName string    `gorm:"not null"`
	WeightG  float64
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Category string `gorm:"size:32"` // "Breakfast"|"Lunch"|"Dinner"|"Snack"
	Source   string `gorm:"size:16"` // "manual" | "photo" | "voice"

	// Incomplete marks entries whose nutrition lookup found no match;
	// the client prompts the user to fill these in.
	Incomplete bool
}

// WeightEntry is the append-only weight log.
type WeightEntry struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Date     time.Time `gorm:"index;not null"`
	WeightKg float64
}
