package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FirstName string
	LastName  string
	Birthday  time.Time

	// Biometrics and goals consumed by the target engine
	Gender        string `gorm:"size:16"` // "male" | "female"
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string `gorm:"size:32"` // sedentary … extra_active
	FitnessGoal   string `gorm:"size:32"` // weight_loss | muscle_gain | maintenance

	ProfilePicture string
	Onboarded      bool

	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
	Disabled      bool
}
