package controllers

import (
	"errors"
	"net/http"

	"github.com/jamiepatterson123/leenaai-sub001/logger"
	"github.com/jamiepatterson123/leenaai-sub001/vision"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// POST /food/analyze  { "image_base64": "data:image/jpeg;base64,..." }
//
// Returns the normalized food-item list. Nothing is persisted here; the
// client confirms the items and then posts them to /diary/food.
func AnalyzeFoodImage(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	pipeline := vision.NewPipeline(vision.NewClient())
	items, err := pipeline.AnalyzeImage(c.Request.Context(), req.ImageBase64)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// POST /food/analyze-text  { "description": "200g chicken and rice" }
func AnalyzeFoodText(c *gin.Context) {
	var req struct {
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	pipeline := vision.NewPipeline(vision.NewClient())
	items, err := pipeline.AnalyzeText(c.Request.Context(), req.Description)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// respondAnalysisError maps pipeline failures to short user-facing messages.
// Raw model output is logged, never returned.
func respondAnalysisError(c *gin.Context, err error) {
	var malformed *vision.MalformedResponseError
	var invalid *vision.ItemValidationError

	switch {
	case errors.As(err, &malformed):
		logger.Error("unparseable model response", zap.String("raw", malformed.Raw))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not read the analysis result, please try again"})
	case errors.As(err, &invalid):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, vision.ErrVisionCallFailed), errors.Is(err, vision.ErrEnrichmentCallFailed):
		logger.Error("food analysis call failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "food analysis is unavailable right now"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
