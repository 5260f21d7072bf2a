package controllers

import (
	"errors"
	"net/http"

	"github.com/jamiepatterson123/leenaai-sub001/nutrition"
	"github.com/jamiepatterson123/leenaai-sub001/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	uid := c.GetUint("userID")
	profile, err := services.GetUserProfile(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile applies profile edits and returns the recomputed targets
// when biometrics changed.
func UpdateProfile(c *gin.Context) {
	uid := c.GetUint("userID")
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target, err := services.UpdateUserProfile(uid, input)
	if err != nil {
		if errors.Is(err, nutrition.ErrInvalidMetrics) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"message": "profile updated successfully"}
	if target != nil {
		resp["targets"] = target
	}
	c.JSON(http.StatusOK, resp)
}

func GetTargets(c *gin.Context) {
	uid := c.GetUint("userID")
	target, err := services.GetTargets(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, target)
}

// RecalculateTargets forces a recompute, used after onboarding completes.
func RecalculateTargets(c *gin.Context) {
	uid := c.GetUint("userID")
	target, err := services.RecalculateTargets(uid)
	if err != nil {
		if errors.Is(err, nutrition.ErrInvalidMetrics) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, target)
}
