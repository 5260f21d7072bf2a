package controllers

import (
	"net/http"

	"github.com/jamiepatterson123/leenaai-sub001/config"
	"github.com/jamiepatterson123/leenaai-sub001/models"
	"github.com/jamiepatterson123/leenaai-sub001/services"

	"github.com/gin-gonic/gin"
)

// GET /user/notifications/whatsapp
func GetWhatsAppPreference(c *gin.Context) {
	uid := c.GetUint("userID")
	pref, err := services.GetWhatsAppPreference(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pref)
}

type whatsAppPrefReq struct {
	Enabled      bool   `json:"enabled"`
	PhoneNumber  string `json:"phone_number"`
	ReminderHour int    `json:"reminder_hour"`
}

// PUT /user/notifications/whatsapp
func UpdateWhatsAppPreference(c *gin.Context) {
	uid := c.GetUint("userID")

	var req whatsAppPrefReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.ReminderHour < 0 || req.ReminderHour > 23 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reminder_hour must be 0-23"})
		return
	}

	pref, err := services.UpsertWhatsAppPreference(uid, req.Enabled, req.PhoneNumber, req.ReminderHour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pref)
}

type toggleReq struct {
	Enabled bool `json:"enabled"`
}

// POST /user/notifications/toggle — enable/disable mobile push across all
// of the user's devices.
func ToggleNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := config.DB.Model(&models.UserDevice{}).
		Where("user_id = ?", uid).
		Update("enabled", req.Enabled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notifications updated",
		"enabled": req.Enabled,
	})
}

// GET /user/notifications/alerts — recent alert history.
func ListAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	var alerts []models.Alert
	if err := config.DB.
		Where("user_id = ?", uid).
		Order("created_at DESC").
		Limit(50).
		Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}
