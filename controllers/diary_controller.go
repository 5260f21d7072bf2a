package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jamiepatterson123/leenaai-sub001/services"
	"github.com/jamiepatterson123/leenaai-sub001/vision"

	"github.com/gin-gonic/gin"
)

type logFoodRequest struct {
	Items    []vision.FoodItem `json:"items" binding:"required"`
	Date     string            `json:"date"`     // YYYY-MM-DD, defaults to today
	Category string            `json:"category"` // "Breakfast"|"Lunch"|...
	Source   string            `json:"source"`   // "photo" | "voice"
	PhotoB64 string            `json:"photo_base64"`
}

// POST /diary/food — persist confirmed analysis items, one row per item.
func LogFood(c *gin.Context) {
	uid := c.GetUint("userID")

	var req logFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if req.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = d
	}
	source := req.Source
	if source == "" {
		source = "photo"
	}

	entries, err := services.LogAnalyzedItems(uid, req.Items, date, req.Category, source)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"entries": entries}
	if req.PhotoB64 != "" {
		if url, err := services.SaveMealPhoto(req.PhotoB64); err == nil {
			resp["photo_url"] = url
		}
	}

	if hub := services.Hub(); hub != nil {
		hub.Broadcast(uid, "diary.updated", entries)
	}

	c.JSON(http.StatusCreated, resp)
}

// POST /diary/food/manual — a hand-entered diary row.
func LogManualFood(c *gin.Context) {
	uid := c.GetUint("userID")

	var req services.ManualFoodInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.LogManualFood(uid, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if hub := services.Hub(); hub != nil {
		hub.Broadcast(uid, "diary.updated", entry)
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /diary/food?date=YYYY-MM-DD
func ListFood(c *gin.Context) {
	uid := c.GetUint("userID")

	date := time.Now()
	if v := c.Query("date"); v != "" {
		d, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = d
	}
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)

	entries, err := services.ListFoodEntries(uid, start, start.Add(24*time.Hour))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// PUT /diary/food/:id
func UpdateFood(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	var req services.ManualFoodInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.UpdateFoodEntry(uid, uint(id), req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DELETE /diary/food/:id
func DeleteFood(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := services.DeleteFoodEntry(uid, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /diary/weight  { "weight_kg": 80.5 }
func LogWeight(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		WeightKg float64 `json:"weight_kg" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.WeightKg <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weight_kg must be positive"})
		return
	}

	entry, err := services.LogWeight(uid, req.WeightKg, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /diary/weight?limit=30
func ListWeight(c *gin.Context) {
	uid := c.GetUint("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	entries, err := services.ListWeightEntries(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
