package models

import "time"

// Alert is an in-app notification row, mirrored to websocket clients and
// push/WhatsApp channels by the notifier.
type Alert struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Type      string    `gorm:"size:20"` // "reminder" | "warning" | "info"
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
}
