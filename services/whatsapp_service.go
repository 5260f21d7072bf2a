package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/jamiepatterson123/leenaai-sub001/config"
	"github.com/jamiepatterson123/leenaai-sub001/models"

	"gorm.io/gorm"
)

// WhatsAppService sends messages through the Meta Graph API Cloud endpoint.
type WhatsAppService struct {
	client     *http.Client
	token      string
	phoneID    string // sending phone-number id, not the user's number
	apiVersion string
}

func NewWhatsAppService() *WhatsAppService {
	return &WhatsAppService{
		client:     &http.Client{Timeout: 10 * time.Second},
		token:      os.Getenv("WHATSAPP_TOKEN"),
		phoneID:    os.Getenv("WHATSAPP_PHONE_ID"),
		apiVersion: "v19.0",
	}
}

type whatsAppMessage struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

func (w *WhatsAppService) SendText(toE164, body string) error {
	if w.token == "" || w.phoneID == "" {
		return fmt.Errorf("WHATSAPP_TOKEN / WHATSAPP_PHONE_ID not set")
	}

	msg := whatsAppMessage{MessagingProduct: "whatsapp", To: toE164, Type: "text"}
	msg.Text.Body = body
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal whatsapp payload: %w", err)
	}

	u := fmt.Sprintf("https://graph.facebook.com/%s/%s/messages", w.apiVersion, w.phoneID)
	req, err := http.NewRequest(http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("failed to create whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+w.token)

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call whatsapp API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("whatsapp API error %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// NotifyUser sends to the user's registered number if they opted in.
// Silently a no-op otherwise.
func (w *WhatsAppService) NotifyUser(userID uint, body string) error {
	pref, err := GetWhatsAppPreference(userID)
	if err != nil {
		return err
	}
	if !pref.Enabled || pref.PhoneNumber == "" {
		return nil
	}
	return w.SendText(pref.PhoneNumber, body)
}

func GetWhatsAppPreference(userID uint) (*models.WhatsAppPreference, error) {
	var pref models.WhatsAppPreference
	err := config.DB.Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.WhatsAppPreference{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func UpsertWhatsAppPreference(userID uint, enabled bool, phone string, reminderHour int) (*models.WhatsAppPreference, error) {
	var pref models.WhatsAppPreference
	err := config.DB.Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pref = models.WhatsAppPreference{
			UserID:       userID,
			Enabled:      enabled,
			PhoneNumber:  phone,
			ReminderHour: reminderHour,
		}
		if err := config.DB.Create(&pref).Error; err != nil {
			return nil, err
		}
		return &pref, nil
	}
	if err != nil {
		return nil, err
	}

	pref.Enabled = enabled
	if phone != "" {
		pref.PhoneNumber = phone
	}
	pref.ReminderHour = reminderHour
	if err := config.DB.Save(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}
