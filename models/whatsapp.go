package models

import "time"

// WhatsAppPreference stores a user's opt-in for WhatsApp reminders.
type WhatsAppPreference struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"uniqueIndex"`
	Enabled      bool   `gorm:"default:false"`
	PhoneNumber  string `gorm:"size:32"` // E.164
	ReminderHour int    // local hour 0-23 for the daily summary message
	UpdatedAt    time.Time
	CreatedAt    time.Time
}
