package controllers

import (
	"net/http"

	"github.com/jamiepatterson123/leenaai-sub001/services"
	"github.com/jamiepatterson123/leenaai-sub001/vision"

	"github.com/gin-gonic/gin"
)

// GET /coach/suggestions — short, actionable tips based on today's intake
// versus the user's targets.
func GetCoachSuggestions(c *gin.Context) {
	uid := c.GetUint("userID")

	coach := services.NewCoachService(vision.NewClient())
	recs, err := coach.GetSuggestions(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "coach suggestions are unavailable right now"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": recs})
}
