package models

import (
	"gorm.io/gorm"
)

// NutritionTarget holds the daily calorie/macro targets derived from the
// user's biometrics. Recomputed and saved whenever the profile changes;
// latest value wins, no history.
type NutritionTarget struct {
	gorm.Model
	UserID   uint `gorm:"uniqueIndex;not null"`
	Calories int  // kcal
	Protein  int  // g
	Carbs    int  // g, may be negative for extreme low-calorie inputs
	Fat      int  // g
	Warning  string
}
