package services

import (
	"fmt"
	"time"

	"github.com/jamiepatterson123/leenaai-sub001/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
	wa *WhatsAppService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService, wa *WhatsAppService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps, wa: wa}
}

// EmitAlert persists an alert and mirrors it to every enabled channel:
// websocket, mobile push, WhatsApp. Safe to call anywhere; a nil channel is
// skipped.
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return // not initialized
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, "alert.created", a)
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "Leena", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
	if _alert.wa != nil {
		_ = _alert.wa.NotifyUser(userID, message)
	}
}
